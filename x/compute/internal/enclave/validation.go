package enclave

import (
	"bytes"
	"crypto/hmac"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	"github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/crypto"
	types "github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/types"
)

// VerifyParams authenticates one lifecycle call against the transaction it
// claims to come from. A callback signature replaces transaction
// verification entirely: contract-emitted sub-messages never appear in any
// transaction, the HMAC is their proof of origin. Everything else walks the
// sign-mode specific path to recover the signer set and the canonical
// message list, verifies the signature, and cross-checks the call
// parameters against the message actually signed.
func (e *Enclave) VerifyParams(
	sigInfo *types.SigInfo,
	sender sdk.AccAddress,
	contract sdk.AccAddress,
	sentFunds []types.Coin,
	secretMsg SecretMessage,
	parsedMsg []byte,
	shouldVerifySigInfo bool,
	shouldVerifyInput bool,
	op types.VerifyParamsType,
	admin sdk.AccAddress,
	newAdmin sdk.AccAddress,
) error {
	if len(sigInfo.CallbackSig) > 0 {
		return e.verifyCallbackSig(sigInfo.CallbackSig, sender, secretMsg.Ciphertext, sentFunds)
	}
	if !shouldVerifySigInfo && !shouldVerifyInput {
		return nil
	}

	messages, pubKey, err := e.parseSignedTx(sigInfo, sender)
	if err != nil {
		return err
	}

	if shouldVerifySigInfo {
		if pubKey == nil {
			return errorsmod.Wrap(types.ErrValidation, "transaction carries no signature")
		}
		if err := pubKey.VerifyBytes(sigInfo.SignBytes, sigInfo.Signature, sigInfo.SignMode, sigInfo.ModeInfo); err != nil {
			return errorsmod.Wrap(types.ErrValidation, err.Error())
		}
	}

	if shouldVerifyInput {
		if op.Handle != nil && op.Handle.IsIbc() {
			return e.verifyIbcInput(messages, *op.Handle, contract, parsedMsg, secretMsg)
		}
		return verifySignedInput(messages, op, sender, contract, sentFunds, secretMsg, admin, newAdmin)
	}
	return nil
}

// parseSignedTx recovers the canonical message list and the sender's public
// key for the transaction's sign mode. The message list always comes from
// signed material: tx_bytes for protobuf modes, the sign doc itself for
// amino.
func (e *Enclave) parseSignedTx(sigInfo *types.SigInfo, sender sdk.AccAddress) ([]types.DirectSdkMsg, types.CosmosPubKey, error) {
	switch sigInfo.SignMode {
	case types.SignModeDirect, types.SignModeTextual, types.SignModeEip191:
		body, authInfo, err := types.TxFromBytes(sigInfo.TxBytes)
		if err != nil {
			return nil, nil, err
		}
		pubKey, found := authInfo.SenderPublicKey(sender)
		if !found {
			return nil, nil, errorsmod.Wrapf(types.ErrValidation, "message sender %s is not a transaction signer", sender.String())
		}
		return body.Messages, pubKey, nil

	case types.SignModeLegacyAminoJSON:
		doc, err := types.StdSignDocFromBytes(sigInfo.SignBytes)
		if err != nil {
			return nil, nil, err
		}
		pubKey, err := types.PubKeyFromProtoBytes(sigInfo.PublicKey)
		if err != nil {
			return nil, nil, err
		}
		if !pubKey.Address().Equals(sender) {
			return nil, nil, errorsmod.Wrapf(types.ErrValidation, "message sender %s is not the transaction signer", sender.String())
		}
		messages, err := doc.Messages()
		if err != nil {
			return nil, nil, err
		}
		return messages, pubKey, nil

	case types.SignModeUnspecified:
		return nil, nil, nil

	default:
		return nil, nil, errorsmod.Wrapf(types.ErrValidation, "unsupported sign mode %s", sigInfo.SignMode)
	}
}

// verifySignedInput scans the signed message list for the one message that
// matches every call parameter: kind, sender, target contract, the exact
// ciphertext bytes, funds, and admin where applicable. Matching against the
// full encrypted framing is what binds the decrypted payload to the chain:
// an attacker replaying a ciphertext under a different transaction fails
// here, not at decryption.
func verifySignedInput(
	messages []types.DirectSdkMsg,
	op types.VerifyParamsType,
	sender sdk.AccAddress,
	contract sdk.AccAddress,
	sentFunds []types.Coin,
	secretMsg SecretMessage,
	admin sdk.AccAddress,
	newAdmin sdk.AccAddress,
) error {
	wireMsg := secretMsg.ToSlice()
	for _, m := range messages {
		switch {
		case op.Init && m.Instantiate != nil:
			if !sdk.AccAddress(m.Instantiate.Sender).Equals(sender) {
				continue
			}
			if !bytes.Equal(m.Instantiate.InitMsg, wireMsg) {
				continue
			}
			if !fundsMatch(sentFunds, m.Instantiate.InitFunds) {
				return errorsmod.Wrap(types.ErrValidation, "sent funds do not match signed message")
			}
			if !adminMatches(m.Instantiate.Admin, admin) {
				return errorsmod.Wrap(types.ErrValidation, "admin does not match signed message")
			}
			return nil

		case op.Handle != nil && *op.Handle == types.HandleTypeExecute && m.Execute != nil:
			if !sdk.AccAddress(m.Execute.Sender).Equals(sender) {
				continue
			}
			if !sdk.AccAddress(m.Execute.Contract).Equals(contract) {
				continue
			}
			if !bytes.Equal(m.Execute.Msg, wireMsg) {
				continue
			}
			if !fundsMatch(sentFunds, m.Execute.SentFunds) {
				return errorsmod.Wrap(types.ErrValidation, "sent funds do not match signed message")
			}
			return nil

		case op.Migrate && m.Migrate != nil:
			if m.Migrate.Contract != contract.String() {
				continue
			}
			if !m.Sender().Equals(sender) {
				continue
			}
			if !bytes.Equal(m.Migrate.Msg, wireMsg) {
				continue
			}
			return nil

		case op.UpdateAdmin && m.UpdateAdmin != nil:
			if m.UpdateAdmin.Contract != contract.String() {
				continue
			}
			if !m.Sender().Equals(sender) {
				continue
			}
			if len(newAdmin) == 0 || m.UpdateAdmin.NewAdmin != newAdmin.String() {
				return errorsmod.Wrap(types.ErrValidation, "new admin does not match signed message")
			}
			return nil

		case op.UpdateAdmin && m.ClearAdmin != nil:
			if m.ClearAdmin.Contract != contract.String() {
				continue
			}
			if !m.Sender().Equals(sender) {
				continue
			}
			if len(newAdmin) != 0 {
				return errorsmod.Wrap(types.ErrValidation, "new admin does not match signed message")
			}
			return nil
		}
	}
	return errorsmod.Wrap(types.ErrValidation, "no signed message matches the call")
}

// ibcPacketAckMsg and ibcPacketTimeoutMsg mirror the contract-facing JSON
// shapes for packet lifecycle callbacks.
type ibcPacketAckMsg struct {
	Acknowledgement struct {
		Data types.Binary `json:"data"`
	} `json:"acknowledgement"`
	OriginalPacket ibcPacket `json:"original_packet"`
	Relayer        string    `json:"relayer,omitempty"`
}

type ibcPacketTimeoutMsg struct {
	Packet  ibcPacket `json:"packet"`
	Relayer string    `json:"relayer,omitempty"`
}

// ibcLifecycleComplete is the sudo message delivered for wasm-hook transfer
// outcomes.
type ibcLifecycleComplete struct {
	IBCLifecycleComplete struct {
		IBCAck *struct {
			Channel  string `json:"channel"`
			Sequence uint64 `json:"sequence"`
			Ack      string `json:"ack"`
			Success  bool   `json:"success"`
		} `json:"ibc_ack,omitempty"`
		IBCTimeout *struct {
			Channel  string `json:"channel"`
			Sequence uint64 `json:"sequence"`
		} `json:"ibc_timeout,omitempty"`
	} `json:"ibc_lifecycle_complete"`
}

// fungibleTokenPacketData is the ics20 packet payload, needed to rebuild
// the wasm-hook call from the transfer memo.
type fungibleTokenPacketData struct {
	Denom    string `json:"denom"`
	Amount   string `json:"amount"`
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Memo     string `json:"memo,omitempty"`
}

type wasmHookMemo struct {
	Wasm struct {
		Contract string          `json:"contract"`
		Msg      json.RawMessage `json:"msg"`
	} `json:"wasm"`
}

// verifyIbcInput checks an IBC-delivered msg against the relayer's signed
// transaction. IBC calls carry no user signature to verify; the guarantee
// is that the payload handed to the contract is exactly what the light
// client accepted on-chain.
func (e *Enclave) verifyIbcInput(
	messages []types.DirectSdkMsg,
	handleType types.HandleType,
	contract sdk.AccAddress,
	parsedMsg []byte,
	secretMsg SecretMessage,
) error {
	switch handleType {
	case types.HandleTypeIbcPacketReceive:
		var receive ibcPacketReceiveMsg
		if err := json.Unmarshal(parsedMsg, &receive); err != nil {
			return errorsmod.Wrap(types.ErrDeserialization, err.Error())
		}
		wantData := []byte(receive.Packet.Data)
		if len(secretMsg.Ciphertext) > 0 || secretMsg.Nonce != [32]byte{} {
			wantData = secretMsg.ToSlice()
		}
		for _, m := range messages {
			if m.RecvPacket == nil {
				continue
			}
			if m.RecvPacket.Packet.Sequence == receive.Packet.Sequence &&
				bytes.Equal(m.RecvPacket.Packet.Data, wantData) {
				return nil
			}
		}
		return errorsmod.Wrap(types.ErrValidation, "packet does not match signed transaction")

	case types.HandleTypeIbcWasmHooksIncomingTransfer:
		for _, m := range messages {
			if m.RecvPacket == nil {
				continue
			}
			if matchWasmHookCall(m.RecvPacket.Packet.Data, contract, parsedMsg) {
				return nil
			}
		}
		return errorsmod.Wrap(types.ErrValidation, "wasm hook call does not match signed transfer")

	case types.HandleTypeIbcPacketAck:
		var ack ibcPacketAckMsg
		if err := json.Unmarshal(parsedMsg, &ack); err != nil {
			return errorsmod.Wrap(types.ErrDeserialization, err.Error())
		}
		for _, m := range messages {
			if m.Acknowledgement == nil {
				continue
			}
			if m.Acknowledgement.Packet.Sequence == ack.OriginalPacket.Sequence &&
				bytes.Equal(m.Acknowledgement.Packet.Data, ack.OriginalPacket.Data) &&
				bytes.Equal(m.Acknowledgement.Acknowledgement, ack.Acknowledgement.Data) {
				return nil
			}
		}
		return errorsmod.Wrap(types.ErrValidation, "acknowledgement does not match signed transaction")

	case types.HandleTypeIbcPacketTimeout:
		var timeout ibcPacketTimeoutMsg
		if err := json.Unmarshal(parsedMsg, &timeout); err != nil {
			return errorsmod.Wrap(types.ErrDeserialization, err.Error())
		}
		for _, m := range messages {
			if m.Timeout == nil {
				continue
			}
			if m.Timeout.Packet.Sequence == timeout.Packet.Sequence &&
				bytes.Equal(m.Timeout.Packet.Data, timeout.Packet.Data) {
				return nil
			}
		}
		return errorsmod.Wrap(types.ErrValidation, "timeout does not match signed transaction")

	case types.HandleTypeIbcWasmHooksOutgoingTransferAck:
		var sudo ibcLifecycleComplete
		if err := json.Unmarshal(parsedMsg, &sudo); err != nil || sudo.IBCLifecycleComplete.IBCAck == nil {
			return errorsmod.Wrap(types.ErrValidation, "malformed transfer ack callback")
		}
		got := sudo.IBCLifecycleComplete.IBCAck
		for _, m := range messages {
			if m.Acknowledgement == nil {
				continue
			}
			if matchOutgoingPacket(m.Acknowledgement.Packet, contract, got.Channel, got.Sequence) &&
				got.Ack == string(m.Acknowledgement.Acknowledgement) &&
				got.Success != isAckError(m.Acknowledgement.Acknowledgement) {
				return nil
			}
		}
		return errorsmod.Wrap(types.ErrValidation, "transfer ack callback does not match signed transaction")

	case types.HandleTypeIbcWasmHooksOutgoingTransferTimeout:
		var sudo ibcLifecycleComplete
		if err := json.Unmarshal(parsedMsg, &sudo); err != nil || sudo.IBCLifecycleComplete.IBCTimeout == nil {
			return errorsmod.Wrap(types.ErrValidation, "malformed transfer timeout callback")
		}
		got := sudo.IBCLifecycleComplete.IBCTimeout
		for _, m := range messages {
			if m.Timeout == nil {
				continue
			}
			if matchOutgoingPacket(m.Timeout.Packet, contract, got.Channel, got.Sequence) {
				return nil
			}
		}
		return errorsmod.Wrap(types.ErrValidation, "transfer timeout callback does not match signed transaction")
	}

	// channel lifecycle handshakes carry nothing to cross-check
	return nil
}

// matchWasmHookCall rebuilds the wasm call a transfer memo requests and
// compares it to the msg about to run.
func matchWasmHookCall(packetData []byte, contract sdk.AccAddress, parsedMsg []byte) bool {
	var transfer fungibleTokenPacketData
	if err := json.Unmarshal(packetData, &transfer); err != nil {
		return false
	}
	if transfer.Receiver != contract.String() {
		return false
	}
	var memo wasmHookMemo
	if err := json.Unmarshal([]byte(transfer.Memo), &memo); err != nil {
		return false
	}
	if memo.Wasm.Contract != contract.String() {
		return false
	}
	return jsonEqual(memo.Wasm.Msg, parsedMsg)
}

func matchOutgoingPacket(packet channeltypes.Packet, contract sdk.AccAddress, channel string, sequence uint64) bool {
	if packet.SourceChannel != channel || packet.Sequence != sequence {
		return false
	}
	var transfer fungibleTokenPacketData
	if err := json.Unmarshal(packet.Data, &transfer); err != nil {
		return false
	}
	return transfer.Sender == contract.String()
}

// isAckError reports whether an ics20 acknowledgement carries an error.
func isAckError(ack []byte) bool {
	var parsed struct {
		Error json.RawMessage `json:"error"`
	}
	return json.Unmarshal(ack, &parsed) != nil || len(parsed.Error) > 0
}

// jsonEqual compares two JSON documents structurally.
func jsonEqual(a, b []byte) bool {
	var av, bv interface{}
	if json.Unmarshal(a, &av) != nil || json.Unmarshal(b, &bv) != nil {
		return false
	}
	ac, errA := json.Marshal(av)
	bc, errB := json.Marshal(bv)
	return errA == nil && errB == nil && bytes.Equal(ac, bc)
}

func fundsMatch(envFunds []types.Coin, msgFunds []sdk.Coin) bool {
	want, err := types.ToSdkCoins(envFunds)
	if err != nil {
		return false
	}
	return want.Equal(sdk.NewCoins(msgFunds...))
}

func adminMatches(msgAdmin string, admin sdk.AccAddress) bool {
	if len(admin) == 0 {
		return msgAdmin == ""
	}
	parsed, err := sdk.AccAddressFromBech32(msgAdmin)
	if err != nil {
		return false
	}
	return parsed.Equals(admin)
}

// computeCallbackSig derives the HMAC a contract-emitted sub-message must
// carry. The bytes cover the emitting contract, the sub-message payload and
// the attached funds, so none of the three can be swapped in transit
// between the dispatcher and the next call.
func (e *Enclave) computeCallbackSig(sender sdk.AccAddress, msg []byte, funds []types.Coin) []byte {
	secret := e.keys.CallbackSecret()
	chunks := [][]byte{sender.Bytes(), msg}
	for _, c := range funds {
		chunks = append(chunks, []byte(c.Amount), []byte(c.Denom))
	}
	sig := crypto.HmacSha256(secret[:], chunks...)
	return sig[:]
}

func (e *Enclave) verifyCallbackSig(callbackSig []byte, sender sdk.AccAddress, msg []byte, funds []types.Coin) error {
	expected := e.computeCallbackSig(sender, msg, funds)
	if !hmac.Equal(callbackSig, expected) {
		return errorsmod.Wrap(types.ErrValidation, "callback signature mismatch")
	}
	return nil
}

// ValidatedMessage is a decrypted payload that passed cross-validation,
// with its code-hash prefix stripped.
type ValidatedMessage struct {
	Msg         []byte
	ReplyParams []ReplyParams
}

// ReplyParams bind a future reply to the call that spawned it.
type ReplyParams struct {
	RecipientContractHash []byte
	SubMsgID              uint64
}

// ValidateMsg checks the code-hash prefix of a decrypted payload against
// the code actually stored for the contract. The prefix is what the user
// signed into the ciphertext; a mismatch means the chain swapped code under
// them and execution must not proceed.
func (e *Enclave) ValidateMsg(
	contract sdk.AccAddress,
	decrypted []byte,
	codeHash [crypto.HashSize]byte,
	handleType *types.HandleType,
) (ValidatedMessage, error) {
	hexHash := []byte(hex.EncodeToString(codeHash[:]))
	if len(decrypted) < len(hexHash) {
		return ValidatedMessage{}, errorsmod.Wrap(types.ErrValidation, "decrypted message carries no code hash")
	}

	prefix := decrypted[:len(hexHash)]
	if !bytes.Equal(prefix, hexHash) {
		legacyHash, ok := AllowedContractCodeHash(contract)
		if !ok || !bytes.Equal(prefix, []byte(hex.EncodeToString(legacyHash[:]))) {
			return ValidatedMessage{}, errorsmod.Wrap(types.ErrValidation, "code hash mismatch")
		}
	}
	body := decrypted[len(hexHash):]

	if handleType != nil && *handleType == types.HandleTypeReply {
		// a reply binds the caller's code hash and the sub-message id
		// that were sealed into the output which produced it
		if len(body) < replyBindingSize {
			return ValidatedMessage{}, errorsmod.Wrap(types.ErrValidation, "reply carries no sub-message binding")
		}
		if !bytes.Equal(body[:len(hexHash)], hexHash) {
			return ValidatedMessage{}, errorsmod.Wrap(types.ErrValidation, "reply is bound to another contract")
		}
		subMsgID := binary.BigEndian.Uint64(body[len(hexHash) : len(hexHash)+8])
		return ValidatedMessage{
			Msg:         body[replyBindingSize:],
			ReplyParams: []ReplyParams{{RecipientContractHash: prefix, SubMsgID: subMsgID}},
		}, nil
	}

	// a sub-message expecting a reply carries the emitter's hash and the
	// sub-message id after the code hash; plain calls start straight at
	// the JSON body
	if len(body) >= replyBindingSize && body[0] != '{' && body[0] != '[' && body[0] != '"' {
		return ValidatedMessage{
			Msg: body[replyBindingSize:],
			ReplyParams: []ReplyParams{{
				RecipientContractHash: body[:len(hexHash)],
				SubMsgID:              binary.BigEndian.Uint64(body[len(hexHash) : len(hexHash)+8]),
			}},
		}, nil
	}

	return ValidatedMessage{Msg: body}, nil
}

// replyBindingSize is a hex-encoded code hash plus a big-endian sub-message
// id.
const replyBindingSize = 2*crypto.HashSize + 8
