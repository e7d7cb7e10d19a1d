package types

import (
	"github.com/cosmos/gogoproto/proto"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// The compute messages below mirror the secret.compute.v1beta1 wire format.
// Senders of instantiate/execute are raw canonical addresses (bytes fields),
// while migrate/update-admin/clear-admin carry bech32 strings. The enclave
// parses these straight out of the signed transaction body, so field numbers
// here must stay frozen.

// MsgInstantiateContract creates a new contract instance from uploaded code
type MsgInstantiateContract struct {
	Sender           []byte     `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	CallbackCodeHash string     `protobuf:"bytes,2,opt,name=callback_code_hash,json=callbackCodeHash,proto3" json:"callback_code_hash,omitempty"`
	CodeID           uint64     `protobuf:"varint,3,opt,name=code_id,json=codeId,proto3" json:"code_id,omitempty"`
	Label            string     `protobuf:"bytes,4,opt,name=label,proto3" json:"label,omitempty"`
	InitMsg          []byte     `protobuf:"bytes,5,opt,name=init_msg,json=initMsg,proto3" json:"init_msg,omitempty"`
	InitFunds        []sdk.Coin `protobuf:"bytes,6,rep,name=init_funds,json=initFunds,proto3" json:"init_funds"`
	CallbackSig      []byte     `protobuf:"bytes,7,opt,name=callback_sig,json=callbackSig,proto3" json:"callback_sig,omitempty"`
	Admin            string     `protobuf:"bytes,8,opt,name=admin,proto3" json:"admin,omitempty"`
}

func (m *MsgInstantiateContract) Reset()         { *m = MsgInstantiateContract{} }
func (m *MsgInstantiateContract) String() string { return proto.CompactTextString(m) }
func (*MsgInstantiateContract) ProtoMessage()    {}

// MsgExecuteContract submits a (encrypted) message to a contract
type MsgExecuteContract struct {
	Sender           []byte     `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Contract         []byte     `protobuf:"bytes,2,opt,name=contract,proto3" json:"contract,omitempty"`
	Msg              []byte     `protobuf:"bytes,3,opt,name=msg,proto3" json:"msg,omitempty"`
	CallbackCodeHash string     `protobuf:"bytes,4,opt,name=callback_code_hash,json=callbackCodeHash,proto3" json:"callback_code_hash,omitempty"`
	SentFunds        []sdk.Coin `protobuf:"bytes,5,rep,name=sent_funds,json=sentFunds,proto3" json:"sent_funds"`
	CallbackSig      []byte     `protobuf:"bytes,6,opt,name=callback_sig,json=callbackSig,proto3" json:"callback_sig,omitempty"`
}

func (m *MsgExecuteContract) Reset()         { *m = MsgExecuteContract{} }
func (m *MsgExecuteContract) String() string { return proto.CompactTextString(m) }
func (*MsgExecuteContract) ProtoMessage()    {}

// MsgMigrateContract runs a code upgrade for a contract
type MsgMigrateContract struct {
	Sender           string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Contract         string `protobuf:"bytes,2,opt,name=contract,proto3" json:"contract,omitempty"`
	CodeID           uint64 `protobuf:"varint,3,opt,name=code_id,json=codeId,proto3" json:"code_id,omitempty"`
	Msg              []byte `protobuf:"bytes,4,opt,name=msg,proto3" json:"msg,omitempty"`
	CallbackSig      []byte `protobuf:"bytes,7,opt,name=callback_sig,json=callbackSig,proto3" json:"callback_sig,omitempty"`
	CallbackCodeHash string `protobuf:"bytes,8,opt,name=callback_code_hash,json=callbackCodeHash,proto3" json:"callback_code_hash,omitempty"`
}

func (m *MsgMigrateContract) Reset()         { *m = MsgMigrateContract{} }
func (m *MsgMigrateContract) String() string { return proto.CompactTextString(m) }
func (*MsgMigrateContract) ProtoMessage()    {}

// MsgUpdateAdmin sets a new admin for a contract
type MsgUpdateAdmin struct {
	Sender      string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	NewAdmin    string `protobuf:"bytes,2,opt,name=new_admin,json=newAdmin,proto3" json:"new_admin,omitempty"`
	Contract    string `protobuf:"bytes,3,opt,name=contract,proto3" json:"contract,omitempty"`
	CallbackSig []byte `protobuf:"bytes,7,opt,name=callback_sig,json=callbackSig,proto3" json:"callback_sig,omitempty"`
}

func (m *MsgUpdateAdmin) Reset()         { *m = MsgUpdateAdmin{} }
func (m *MsgUpdateAdmin) String() string { return proto.CompactTextString(m) }
func (*MsgUpdateAdmin) ProtoMessage()    {}

// MsgClearAdmin removes any admin from a contract
type MsgClearAdmin struct {
	Sender      string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender,omitempty"`
	Contract    string `protobuf:"bytes,3,opt,name=contract,proto3" json:"contract,omitempty"`
	CallbackSig []byte `protobuf:"bytes,7,opt,name=callback_sig,json=callbackSig,proto3" json:"callback_sig,omitempty"`
}

func (m *MsgClearAdmin) Reset()         { *m = MsgClearAdmin{} }
func (m *MsgClearAdmin) String() string { return proto.CompactTextString(m) }
func (*MsgClearAdmin) ProtoMessage()    {}

func init() {
	proto.RegisterType((*MsgInstantiateContract)(nil), "secret.compute.v1beta1.MsgInstantiateContract")
	proto.RegisterType((*MsgExecuteContract)(nil), "secret.compute.v1beta1.MsgExecuteContract")
	proto.RegisterType((*MsgMigrateContract)(nil), "secret.compute.v1beta1.MsgMigrateContract")
	proto.RegisterType((*MsgUpdateAdmin)(nil), "secret.compute.v1beta1.MsgUpdateAdmin")
	proto.RegisterType((*MsgClearAdmin)(nil), "secret.compute.v1beta1.MsgClearAdmin")
}
