package types

import (
	"encoding/base64"
	"encoding/json"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/cosmos/gogoproto/proto"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	computetypes "github.com/bytetigers/SecretNetwork/x/compute/internal/types"
)

// IBC type URLs the pipeline recognizes inside a transaction body.
const (
	typeURLMsgRecvPacket      = "/ibc.core.channel.v1.MsgRecvPacket"
	typeURLMsgAcknowledgement = "/ibc.core.channel.v1.MsgAcknowledgement"
	typeURLMsgTimeout         = "/ibc.core.channel.v1.MsgTimeout"
)

// DirectSdkMsg is the canonical representation of one on-chain message,
// recovered from the transaction's wire bytes and never from decrypted
// payloads. Exactly one field is set; the zero value means "a message kind
// this pipeline does not verify".
type DirectSdkMsg struct {
	Instantiate *computetypes.MsgInstantiateContract
	Execute     *computetypes.MsgExecuteContract
	Migrate     *computetypes.MsgMigrateContract
	UpdateAdmin *computetypes.MsgUpdateAdmin
	ClearAdmin  *computetypes.MsgClearAdmin

	RecvPacket      *channeltypes.MsgRecvPacket
	Acknowledgement *channeltypes.MsgAcknowledgement
	Timeout         *channeltypes.MsgTimeout
}

// DirectSdkMsgFromBytes decodes one message by its type URL. Unknown type
// URLs decode to the zero DirectSdkMsg rather than an error so that mixed
// transactions can still be scanned for the message under verification.
func DirectSdkMsgFromBytes(typeURL string, bz []byte) (DirectSdkMsg, error) {
	var out DirectSdkMsg
	var msg proto.Message
	switch typeURL {
	case computetypes.TypeURLMsgInstantiateContract:
		out.Instantiate = &computetypes.MsgInstantiateContract{}
		msg = out.Instantiate
	case computetypes.TypeURLMsgExecuteContract:
		out.Execute = &computetypes.MsgExecuteContract{}
		msg = out.Execute
	case computetypes.TypeURLMsgMigrateContract:
		out.Migrate = &computetypes.MsgMigrateContract{}
		msg = out.Migrate
	case computetypes.TypeURLMsgUpdateAdmin:
		out.UpdateAdmin = &computetypes.MsgUpdateAdmin{}
		msg = out.UpdateAdmin
	case computetypes.TypeURLMsgClearAdmin:
		out.ClearAdmin = &computetypes.MsgClearAdmin{}
		msg = out.ClearAdmin
	case typeURLMsgRecvPacket:
		out.RecvPacket = &channeltypes.MsgRecvPacket{}
		msg = out.RecvPacket
	case typeURLMsgAcknowledgement:
		out.Acknowledgement = &channeltypes.MsgAcknowledgement{}
		msg = out.Acknowledgement
	case typeURLMsgTimeout:
		out.Timeout = &channeltypes.MsgTimeout{}
		msg = out.Timeout
	default:
		return out, nil
	}

	if err := proto.Unmarshal(bz, msg); err != nil {
		return DirectSdkMsg{}, errorsmod.Wrapf(ErrDeserialization, "malformed %s", typeURL)
	}
	return out, nil
}

// Sender returns the canonical sender of the message, or nil for message
// kinds that carry no verifiable sender (IBC packets, unrecognized kinds).
func (m DirectSdkMsg) Sender() sdk.AccAddress {
	switch {
	case m.Instantiate != nil:
		return sdk.AccAddress(m.Instantiate.Sender)
	case m.Execute != nil:
		return sdk.AccAddress(m.Execute.Sender)
	case m.Migrate != nil:
		return accAddressFromBech32OrNil(m.Migrate.Sender)
	case m.UpdateAdmin != nil:
		return accAddressFromBech32OrNil(m.UpdateAdmin.Sender)
	case m.ClearAdmin != nil:
		return accAddressFromBech32OrNil(m.ClearAdmin.Sender)
	}
	return nil
}

func accAddressFromBech32OrNil(addr string) sdk.AccAddress {
	acc, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		return nil
	}
	return acc
}

// TxBody is the parsed message list of a transaction.
type TxBody struct {
	Messages []DirectSdkMsg
}

func TxBodyFromBytes(bz []byte) (TxBody, error) {
	var raw txtypes.TxBody
	if err := proto.Unmarshal(bz, &raw); err != nil {
		return TxBody{}, errorsmod.Wrap(ErrDeserialization, "malformed transaction body")
	}

	msgs := make([]DirectSdkMsg, 0, len(raw.Messages))
	for _, any := range raw.Messages {
		msg, err := DirectSdkMsgFromBytes(any.TypeUrl, any.Value)
		if err != nil {
			return TxBody{}, err
		}
		msgs = append(msgs, msg)
	}
	return TxBody{Messages: msgs}, nil
}

// SignerInfo is one signer of the transaction: its public key and sequence.
type SignerInfo struct {
	PublicKey CosmosPubKey
	Sequence  uint64
}

// AuthInfo is the parsed signer list of a transaction.
type AuthInfo struct {
	SignerInfos []SignerInfo
}

func AuthInfoFromBytes(bz []byte) (AuthInfo, error) {
	var raw txtypes.AuthInfo
	if err := proto.Unmarshal(bz, &raw); err != nil {
		return AuthInfo{}, errorsmod.Wrap(ErrDeserialization, "malformed auth info")
	}

	infos := make([]SignerInfo, 0, len(raw.SignerInfos))
	for _, si := range raw.SignerInfos {
		pubKey, err := PubKeyFromAny(si.PublicKey)
		if err != nil {
			return AuthInfo{}, err
		}
		infos = append(infos, SignerInfo{PublicKey: pubKey, Sequence: si.Sequence})
	}
	if len(infos) == 0 {
		return AuthInfo{}, errorsmod.Wrap(ErrDeserialization, "transaction has no signer info")
	}
	return AuthInfo{SignerInfos: infos}, nil
}

// SenderPublicKey finds the signer whose derived address equals sender.
func (a AuthInfo) SenderPublicKey(sender sdk.AccAddress) (CosmosPubKey, bool) {
	for _, si := range a.SignerInfos {
		if si.PublicKey.Address().Equals(sender) {
			return si.PublicKey, true
		}
	}
	return nil, false
}

// SignDoc is the parsed protobuf signing envelope.
type SignDoc struct {
	Body          TxBody
	AuthInfo      AuthInfo
	ChainID       string
	AccountNumber uint64
}

func SignDocFromBytes(bz []byte) (SignDoc, error) {
	var raw txtypes.SignDoc
	if err := proto.Unmarshal(bz, &raw); err != nil {
		return SignDoc{}, errorsmod.Wrap(ErrDeserialization, "malformed sign doc")
	}

	body, err := TxBodyFromBytes(raw.BodyBytes)
	if err != nil {
		return SignDoc{}, err
	}
	authInfo, err := AuthInfoFromBytes(raw.AuthInfoBytes)
	if err != nil {
		return SignDoc{}, err
	}
	return SignDoc{
		Body:          body,
		AuthInfo:      authInfo,
		ChainID:       raw.ChainId,
		AccountNumber: raw.AccountNumber,
	}, nil
}

// TxFromBytes parses a full signed transaction (TxRaw) into its body and
// auth info. This is the independent source of truth the decrypted payload
// is validated against.
func TxFromBytes(bz []byte) (TxBody, AuthInfo, error) {
	var raw txtypes.TxRaw
	if err := proto.Unmarshal(bz, &raw); err != nil {
		return TxBody{}, AuthInfo{}, errorsmod.Wrap(ErrDeserialization, "malformed transaction envelope")
	}
	body, err := TxBodyFromBytes(raw.BodyBytes)
	if err != nil {
		return TxBody{}, AuthInfo{}, err
	}
	authInfo, err := AuthInfoFromBytes(raw.AuthInfoBytes)
	if err != nil {
		return TxBody{}, AuthInfo{}, err
	}
	return body, authInfo, nil
}

// StdSignDoc is the legacy-amino signing envelope, kept in sync with the
// SDK's x/auth encoding.
type StdSignDoc struct {
	AccountNumber string        `json:"account_number"`
	ChainID       string        `json:"chain_id"`
	Memo          string        `json:"memo"`
	Msgs          []AminoSdkMsg `json:"msgs"`
	Sequence      string        `json:"sequence"`
}

// AminoSdkMsg is one amino-encoded message: a type tag plus its raw value.
// The core IBC messages never come in over amino.
type AminoSdkMsg struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// StdSignDocFromBytes parses amino sign bytes.
func StdSignDocFromBytes(bz []byte) (StdSignDoc, error) {
	var doc StdSignDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return StdSignDoc{}, errorsmod.Wrap(ErrDeserialization, "malformed amino sign doc")
	}
	return doc, nil
}

// Messages converts the amino messages into their canonical direct form so
// the rest of the pipeline is sign-mode agnostic.
func (d StdSignDoc) Messages() ([]DirectSdkMsg, error) {
	out := make([]DirectSdkMsg, 0, len(d.Msgs))
	for _, m := range d.Msgs {
		direct, err := m.intoDirectMsg()
		if err != nil {
			return nil, err
		}
		out = append(out, direct)
	}
	return out, nil
}

func (m AminoSdkMsg) intoDirectMsg() (DirectSdkMsg, error) {
	switch m.Type {
	case "wasm/MsgExecuteContract":
		var v struct {
			Sender    string `json:"sender"`
			Contract  string `json:"contract"`
			Msg       string `json:"msg"`
			SentFunds []Coin `json:"sent_funds"`
		}
		if err := json.Unmarshal(m.Value, &v); err != nil {
			return DirectSdkMsg{}, errorsmod.Wrap(ErrDeserialization, "malformed amino execute msg")
		}
		sender, err := sdk.AccAddressFromBech32(v.Sender)
		if err != nil {
			return DirectSdkMsg{}, errorsmod.Wrap(ErrDeserialization, "amino execute sender is not bech32")
		}
		msg, err := base64.StdEncoding.DecodeString(v.Msg)
		if err != nil {
			return DirectSdkMsg{}, errorsmod.Wrap(ErrDeserialization, "amino execute msg is not base64")
		}
		funds, err := aminoFundsToSdk(v.SentFunds)
		if err != nil {
			return DirectSdkMsg{}, err
		}
		return DirectSdkMsg{Execute: &computetypes.MsgExecuteContract{
			Sender:    sender,
			Contract:  accAddressFromBech32OrNil(v.Contract),
			Msg:       msg,
			SentFunds: funds,
		}}, nil
	case "wasm/MsgInstantiateContract":
		var v struct {
			Sender    string `json:"sender"`
			CodeID    string `json:"code_id"`
			InitMsg   string `json:"init_msg"`
			InitFunds []Coin `json:"init_funds"`
			Label     string `json:"label"`
			Admin     string `json:"admin"`
		}
		if err := json.Unmarshal(m.Value, &v); err != nil {
			return DirectSdkMsg{}, errorsmod.Wrap(ErrDeserialization, "malformed amino instantiate msg")
		}
		sender, err := sdk.AccAddressFromBech32(v.Sender)
		if err != nil {
			return DirectSdkMsg{}, errorsmod.Wrap(ErrDeserialization, "amino instantiate sender is not bech32")
		}
		initMsg, err := base64.StdEncoding.DecodeString(v.InitMsg)
		if err != nil {
			return DirectSdkMsg{}, errorsmod.Wrap(ErrDeserialization, "amino instantiate msg is not base64")
		}
		codeID, err := strconv.ParseUint(v.CodeID, 10, 64)
		if err != nil {
			return DirectSdkMsg{}, errorsmod.Wrap(ErrDeserialization, "amino instantiate code_id is not numeric")
		}
		funds, err := aminoFundsToSdk(v.InitFunds)
		if err != nil {
			return DirectSdkMsg{}, err
		}
		return DirectSdkMsg{Instantiate: &computetypes.MsgInstantiateContract{
			Sender:    sender,
			CodeID:    codeID,
			InitMsg:   initMsg,
			InitFunds: funds,
			Label:     v.Label,
			Admin:     v.Admin,
		}}, nil
	case "wasm/MsgMigrateContract":
		var v struct {
			Sender   string `json:"sender"`
			Contract string `json:"contract"`
			CodeID   string `json:"code_id"`
			Msg      string `json:"msg"`
		}
		if err := json.Unmarshal(m.Value, &v); err != nil {
			return DirectSdkMsg{}, errorsmod.Wrap(ErrDeserialization, "malformed amino migrate msg")
		}
		msg, err := base64.StdEncoding.DecodeString(v.Msg)
		if err != nil {
			return DirectSdkMsg{}, errorsmod.Wrap(ErrDeserialization, "amino migrate msg is not base64")
		}
		codeID, err := strconv.ParseUint(v.CodeID, 10, 64)
		if err != nil {
			return DirectSdkMsg{}, errorsmod.Wrap(ErrDeserialization, "amino migrate code_id is not numeric")
		}
		return DirectSdkMsg{Migrate: &computetypes.MsgMigrateContract{
			Sender:   v.Sender,
			Contract: v.Contract,
			CodeID:   codeID,
			Msg:      msg,
		}}, nil
	case "wasm/MsgUpdateAdmin":
		var v struct {
			Sender   string `json:"sender"`
			NewAdmin string `json:"new_admin"`
			Contract string `json:"contract"`
		}
		if err := json.Unmarshal(m.Value, &v); err != nil {
			return DirectSdkMsg{}, errorsmod.Wrap(ErrDeserialization, "malformed amino update-admin msg")
		}
		return DirectSdkMsg{UpdateAdmin: &computetypes.MsgUpdateAdmin{
			Sender:   v.Sender,
			NewAdmin: v.NewAdmin,
			Contract: v.Contract,
		}}, nil
	case "wasm/MsgClearAdmin":
		var v struct {
			Sender   string `json:"sender"`
			Contract string `json:"contract"`
		}
		if err := json.Unmarshal(m.Value, &v); err != nil {
			return DirectSdkMsg{}, errorsmod.Wrap(ErrDeserialization, "malformed amino clear-admin msg")
		}
		return DirectSdkMsg{ClearAdmin: &computetypes.MsgClearAdmin{
			Sender:   v.Sender,
			Contract: v.Contract,
		}}, nil
	default:
		return DirectSdkMsg{}, nil
	}
}

func aminoFundsToSdk(coins []Coin) ([]sdk.Coin, error) {
	out := make([]sdk.Coin, 0, len(coins))
	for _, c := range coins {
		amt, ok := sdkmath.NewIntFromString(c.Amount)
		if !ok {
			return nil, errorsmod.Wrapf(ErrDeserialization, "coin amount %q is not numeric", c.Amount)
		}
		out = append(out, sdk.NewCoin(c.Denom, amt))
	}
	return out, nil
}
