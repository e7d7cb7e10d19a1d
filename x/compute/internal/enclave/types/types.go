package types

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/crypto"
)

// Binary is a byte slice that marshals to/from base64 in JSON, matching the
// encoding contracts and the chain use for all opaque fields.
type Binary []byte

func (b Binary) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(b))
}

func (b *Binary) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return err
	}
	*b = raw
	return nil
}

// ContractCode is an immutable view over raw contract bytecode and its
// content hash. Constructed once per call.
type ContractCode struct {
	code []byte
	hash [crypto.HashSize]byte
}

func NewContractCode(code []byte) ContractCode {
	return ContractCode{code: code, hash: crypto.Sha256(code)}
}

func (c ContractCode) Code() []byte                { return c.code }
func (c ContractCode) Hash() [crypto.HashSize]byte { return c.hash }

// ContractKey is the per-contract secret all message encryption keys for the
// instance derive from.
type ContractKey = [crypto.ContractKeySize]byte

// HandleType classifies a non-instantiate, non-migrate, non-query
// invocation. The numeric values are wire constants shared with the chain.
type HandleType uint8

const (
	HandleTypeExecute HandleType = iota
	HandleTypeReply
	HandleTypeIbcChannelOpen
	HandleTypeIbcChannelConnect
	HandleTypeIbcChannelClose
	HandleTypeIbcPacketReceive
	HandleTypeIbcPacketAck
	HandleTypeIbcPacketTimeout
	HandleTypeIbcWasmHooksIncomingTransfer
	HandleTypeIbcWasmHooksOutgoingTransferAck
	HandleTypeIbcWasmHooksOutgoingTransferTimeout
)

// ParseHandleType converts the wire byte into a HandleType.
func ParseHandleType(value uint8) (HandleType, error) {
	ht := HandleType(value)
	if ht > HandleTypeIbcWasmHooksOutgoingTransferTimeout {
		return 0, errorsmod.Wrapf(ErrUnsupportedHandleType, "%d", value)
	}
	return ht, nil
}

// ExportName is the contract entry point invoked for this handle type.
func (h HandleType) ExportName() string {
	switch h {
	case HandleTypeExecute, HandleTypeIbcWasmHooksIncomingTransfer:
		return "execute"
	case HandleTypeReply:
		return "reply"
	case HandleTypeIbcChannelOpen:
		return "ibc_channel_open"
	case HandleTypeIbcChannelConnect:
		return "ibc_channel_connect"
	case HandleTypeIbcChannelClose:
		return "ibc_channel_close"
	case HandleTypeIbcPacketReceive:
		return "ibc_packet_receive"
	case HandleTypeIbcPacketAck:
		return "ibc_packet_ack"
	case HandleTypeIbcPacketTimeout:
		return "ibc_packet_timeout"
	case HandleTypeIbcWasmHooksOutgoingTransferAck, HandleTypeIbcWasmHooksOutgoingTransferTimeout:
		return "sudo"
	}
	return ""
}

// IsIbc reports whether the invocation came in over an IBC path.
func (h HandleType) IsIbc() bool {
	switch h {
	case HandleTypeIbcChannelOpen, HandleTypeIbcChannelConnect, HandleTypeIbcChannelClose,
		HandleTypeIbcPacketReceive, HandleTypeIbcPacketAck, HandleTypeIbcPacketTimeout,
		HandleTypeIbcWasmHooksIncomingTransfer, HandleTypeIbcWasmHooksOutgoingTransferAck,
		HandleTypeIbcWasmHooksOutgoingTransferTimeout:
		return true
	case HandleTypeExecute, HandleTypeReply:
		return false
	}
	return false
}

func (h HandleType) String() string {
	return fmt.Sprintf("HandleType(%d:%s)", uint8(h), h.ExportName())
}

// VerifyParamsType selects the verification policy for a lifecycle call.
type VerifyParamsType struct {
	// exactly one of the fields below is meaningful
	Init        bool
	Migrate     bool
	UpdateAdmin bool
	Handle      *HandleType
}

func VerifyInit() VerifyParamsType        { return VerifyParamsType{Init: true} }
func VerifyMigrate() VerifyParamsType     { return VerifyParamsType{Migrate: true} }
func VerifyUpdateAdmin() VerifyParamsType { return VerifyParamsType{UpdateAdmin: true} }
func VerifyHandle(h HandleType) VerifyParamsType {
	return VerifyParamsType{Handle: &h}
}

// SignMode is the canonicalization rule applied to transaction bytes before
// signature verification. String values match the chain's JSON encoding.
type SignMode string

const (
	SignModeUnspecified     SignMode = "SIGN_MODE_UNSPECIFIED"
	SignModeDirect          SignMode = "SIGN_MODE_DIRECT"
	SignModeTextual         SignMode = "SIGN_MODE_TEXTUAL"
	SignModeLegacyAminoJSON SignMode = "SIGN_MODE_LEGACY_AMINO_JSON"
	SignModeEip191          SignMode = "SIGN_MODE_EIP_191"
)

// SigInfo carries the raw signing artifacts of the transaction wrapping the
// current call, JSON-encoded by the keeper.
type SigInfo struct {
	TxBytes     Binary   `json:"tx_bytes"`
	SignBytes   Binary   `json:"sign_bytes"`
	SignMode    SignMode `json:"sign_mode"`
	ModeInfo    Binary   `json:"mode_info"`
	PublicKey   Binary   `json:"public_key"`
	Signature   Binary   `json:"signature"`
	CallbackSig Binary   `json:"callback_sig,omitempty"`
}

// Coin is the JSON coin shape used inside the contract environment. Amounts
// are decimal strings.
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// ToSdkCoins converts env coins into sdk.Coins for canonical comparison.
func ToSdkCoins(coins []Coin) (sdk.Coins, error) {
	out := sdk.NewCoins()
	for _, c := range coins {
		amt, ok := sdkmath.NewIntFromString(c.Amount)
		if !ok {
			return nil, errorsmod.Wrapf(ErrDeserialization, "coin amount %q is not numeric", c.Amount)
		}
		out = out.Add(sdk.NewCoin(c.Denom, amt))
	}
	return out, nil
}

// BlockInfo is the block context of the call.
type BlockInfo struct {
	Height  uint64 `json:"height"`
	Time    uint64 `json:"time"`
	ChainID string `json:"chain_id"`
	Random  Binary `json:"random,omitempty"`
}

// MessageInfo names the sender and the funds attached to the call.
type MessageInfo struct {
	Sender    string `json:"sender"`
	SentFunds []Coin `json:"sent_funds"`
}

// ContractInfo identifies the target contract. CodeHash is annotated by the
// pipeline before the environment reaches the engine.
type ContractInfo struct {
	Address  string `json:"address"`
	CodeHash string `json:"code_hash,omitempty"`
}

// TransactionInfo is the position of the transaction within the block.
type TransactionInfo struct {
	Index uint32 `json:"index"`
}

// ContractKeyInfo carries the contract's key material through the
// environment: the genesis key, and for migrated contracts the current key
// plus the proof chaining it to the genesis key.
type ContractKeyInfo struct {
	OgContractKey           Binary `json:"og_contract_key"`
	CurrentContractKey      Binary `json:"current_contract_key,omitempty"`
	CurrentContractKeyProof Binary `json:"current_contract_key_proof,omitempty"`
}

// BaseEnv is the blockchain execution context, parsed once per call from the
// env JSON and read-only afterwards except for the code hash annotation and
// sender nulling.
type BaseEnv struct {
	Block       BlockInfo        `json:"block"`
	Message     MessageInfo      `json:"message"`
	Contract    ContractInfo     `json:"contract"`
	ContractKey *ContractKeyInfo `json:"contract_key,omitempty"`
	QueryDepth  uint32           `json:"query_depth"`
	Transaction *TransactionInfo `json:"transaction,omitempty"`
}

// VerificationParams returns the fields every verification path needs.
func (e *BaseEnv) VerificationParams() (sender, contract string, height uint64, funds []Coin) {
	return e.Message.Sender, e.Contract.Address, e.Block.Height, e.Message.SentFunds
}

// OgContractKey returns the genesis contract key carried in the environment.
func (e *BaseEnv) OgContractKey() (ContractKey, error) {
	var key ContractKey
	if e.ContractKey == nil || len(e.ContractKey.OgContractKey) != crypto.ContractKeySize {
		return key, errorsmod.Wrap(ErrDeserialization, "env carries no contract key")
	}
	copy(key[:], e.ContractKey.OgContractKey)
	return key, nil
}

// LatestContractKey returns the current key for a migrated contract, or the
// genesis key when the contract was never migrated.
func (e *BaseEnv) LatestContractKey() (ContractKey, error) {
	var key ContractKey
	if e.ContractKey == nil {
		return key, errorsmod.Wrap(ErrDeserialization, "env carries no contract key")
	}
	if len(e.ContractKey.CurrentContractKey) == crypto.ContractKeySize {
		copy(key[:], e.ContractKey.CurrentContractKey)
		return key, nil
	}
	return e.OgContractKey()
}

// SetContractHash annotates the environment with the hex content hash of the
// code about to run.
func (e *BaseEnv) SetContractHash(hash string) {
	e.Contract.CodeHash = hash
}

// SetMsgSender overrides the sender. Used to null the sender on synthetic
// invocations that carry no on-chain signer.
func (e *BaseEnv) SetMsgSender(sender string) {
	e.Message.Sender = sender
}

// SetRandom replaces the per-call randomness seed; nil clears it.
func (e *BaseEnv) SetRandom(random Binary) {
	e.Block.Random = random
}
