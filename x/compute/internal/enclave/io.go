package enclave

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	types "github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/types"
)

// wasmOutput is the engine's raw result envelope.
type wasmOutput struct {
	Ok  *contractResponse `json:"ok,omitempty"`
	Err json.RawMessage   `json:"err,omitempty"`
}

// queryOutput is the engine's raw result envelope for queries: the data is
// the whole payload.
type queryOutput struct {
	Ok  *types.Binary   `json:"ok,omitempty"`
	Err json.RawMessage `json:"err,omitempty"`
}

type contractResponse struct {
	Messages   []subMsg       `json:"messages"`
	Attributes []logAttribute `json:"attributes,omitempty"`
	Events     []event        `json:"events,omitempty"`
	Data       *types.Binary  `json:"data,omitempty"`
}

type event struct {
	Type       string         `json:"type"`
	Attributes []logAttribute `json:"attributes"`
}

type logAttribute struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	Encrypted bool   `json:"encrypted"`
}

// subMsg is one contract-emitted sub-message. The inner cosmos msg is kept
// as a raw key map so unrecognized variants pass through untouched.
type subMsg struct {
	ID       uint64                     `json:"id"`
	Msg      map[string]json.RawMessage `json:"msg"`
	GasLimit *uint64                    `json:"gas_limit,omitempty"`
	ReplyOn  string                     `json:"reply_on"`
}

type wasmSubMsg struct {
	Execute     *wasmCall `json:"execute,omitempty"`
	Instantiate *wasmCall `json:"instantiate,omitempty"`
}

// wasmCall is the shared shape of wasm execute and instantiate
// sub-messages; instantiate carries extra fields the pipeline passes
// through.
type wasmCall struct {
	ContractAddr string       `json:"contract_addr,omitempty"`
	CodeID       uint64       `json:"code_id,omitempty"`
	Label        string       `json:"label,omitempty"`
	CodeHash     string       `json:"code_hash"`
	Msg          types.Binary `json:"msg"`
	Send         []types.Coin `json:"send"`
	CallbackSig  types.Binary `json:"callback_sig,omitempty"`
}

const replyOnNever = "never"

// PostProcessOutput seals the engine's output back onto the caller's
// channel: the data field, error payloads, and every wasm sub-message get
// encrypted, and sub-messages get their callback signature attached so the
// next call in the chain can prove its origin.
func (e *Enclave) PostProcessOutput(
	output []byte,
	secretMsg SecretMessage,
	contract sdk.AccAddress,
	codeHash [32]byte,
	replyParams []ReplyParams,
	isQuery bool,
) ([]byte, error) {
	if isQuery {
		return e.encryptQueryOutput(output, secretMsg)
	}

	var parsed wasmOutput
	if err := json.Unmarshal(output, &parsed); err != nil {
		return nil, errorsmod.Wrap(types.ErrDeserialization, err.Error())
	}

	if parsed.Err != nil {
		sealed, err := e.Encrypt(secretMsg, parsed.Err)
		if err != nil {
			return nil, err
		}
		enc := types.Binary(sealed)
		return json.Marshal(wasmOutput{Err: mustJSON(enc)})
	}
	if parsed.Ok == nil {
		return nil, errorsmod.Wrap(types.ErrDeserialization, "engine output carries neither ok nor err")
	}

	for i := range parsed.Ok.Messages {
		if err := e.sealSubMsg(&parsed.Ok.Messages[i], secretMsg, contract, codeHash); err != nil {
			return nil, err
		}
	}

	if parsed.Ok.Data != nil {
		plaintext := *parsed.Ok.Data
		if len(replyParams) > 0 {
			// bind the data to the caller's future reply
			plaintext = appendReplyBinding(replyParams[0], plaintext)
		}
		sealed, err := e.Encrypt(secretMsg, plaintext)
		if err != nil {
			return nil, err
		}
		enc := types.Binary(sealed)
		parsed.Ok.Data = &enc
	}

	for i := range parsed.Ok.Attributes {
		parsed.Ok.Attributes[i].Encrypted = true
	}
	for i := range parsed.Ok.Events {
		for j := range parsed.Ok.Events[i].Attributes {
			parsed.Ok.Events[i].Attributes[j].Encrypted = true
		}
	}

	return json.Marshal(parsed)
}

// PostProcessPlaintextOutput rewrites the output of a plaintext invocation:
// nothing gets encrypted, but sub-messages still need valid callback
// signatures and every log must be marked plaintext so the chain does not
// try to decrypt it.
func (e *Enclave) PostProcessPlaintextOutput(output []byte, contract sdk.AccAddress) ([]byte, error) {
	var parsed wasmOutput
	if err := json.Unmarshal(output, &parsed); err != nil {
		return nil, errorsmod.Wrap(types.ErrDeserialization, err.Error())
	}
	if parsed.Ok == nil {
		return output, nil
	}

	for i := range parsed.Ok.Messages {
		if err := e.signPlaintextSubMsg(&parsed.Ok.Messages[i], contract); err != nil {
			return nil, err
		}
	}
	for i := range parsed.Ok.Attributes {
		parsed.Ok.Attributes[i].Encrypted = false
	}
	for i := range parsed.Ok.Events {
		for j := range parsed.Ok.Events[i].Attributes {
			parsed.Ok.Events[i].Attributes[j].Encrypted = false
		}
	}

	return json.Marshal(parsed)
}

func (e *Enclave) encryptQueryOutput(output []byte, secretMsg SecretMessage) ([]byte, error) {
	var parsed queryOutput
	if err := json.Unmarshal(output, &parsed); err != nil {
		return nil, errorsmod.Wrap(types.ErrDeserialization, err.Error())
	}

	if parsed.Err != nil {
		sealed, err := e.Encrypt(secretMsg, parsed.Err)
		if err != nil {
			return nil, err
		}
		enc := types.Binary(sealed)
		return json.Marshal(queryOutput{Err: mustJSON(enc)})
	}
	if parsed.Ok == nil {
		return nil, errorsmod.Wrap(types.ErrDeserialization, "engine output carries neither ok nor err")
	}

	sealed, err := e.Encrypt(secretMsg, *parsed.Ok)
	if err != nil {
		return nil, err
	}
	enc := types.Binary(sealed)
	return json.Marshal(queryOutput{Ok: &enc})
}

// sealSubMsg encrypts a wasm sub-message for its recipient and signs it.
// The plaintext gains the recipient's code-hash prefix, and when a reply is
// expected also the emitter's own hash and the sub-message id, so the reply
// can later be bound back to this call. Non-wasm sub-messages only get a
// pass-through.
func (e *Enclave) sealSubMsg(sub *subMsg, secretMsg SecretMessage, contract sdk.AccAddress, codeHash [32]byte) error {
	raw, ok := sub.Msg["wasm"]
	if !ok {
		return nil
	}
	var wasm wasmSubMsg
	if err := json.Unmarshal(raw, &wasm); err != nil {
		return errorsmod.Wrap(types.ErrDeserialization, err.Error())
	}
	call := wasm.Execute
	if call == nil {
		call = wasm.Instantiate
	}
	if call == nil {
		return nil
	}

	plaintext := []byte(call.CodeHash)
	if sub.ReplyOn != replyOnNever && sub.ReplyOn != "" {
		plaintext = appendReplyBinding(ReplyParams{
			RecipientContractHash: []byte(hex.EncodeToString(codeHash[:])),
			SubMsgID:              sub.ID,
		}, nil)
		plaintext = append([]byte(call.CodeHash), plaintext...)
	}
	plaintext = append(plaintext, call.Msg...)

	sealed, err := e.Encrypt(secretMsg, plaintext)
	if err != nil {
		return err
	}
	framed := SecretMessage{
		Nonce:         secretMsg.Nonce,
		UserPublicKey: secretMsg.UserPublicKey,
		Ciphertext:    sealed,
	}
	call.Msg = framed.ToSlice()
	call.CallbackSig = e.computeCallbackSig(contract, sealed, call.Send)

	updated, err := json.Marshal(wasm)
	if err != nil {
		return err
	}
	sub.Msg["wasm"] = updated
	return nil
}

func (e *Enclave) signPlaintextSubMsg(sub *subMsg, contract sdk.AccAddress) error {
	raw, ok := sub.Msg["wasm"]
	if !ok {
		return nil
	}
	var wasm wasmSubMsg
	if err := json.Unmarshal(raw, &wasm); err != nil {
		return errorsmod.Wrap(types.ErrDeserialization, err.Error())
	}
	call := wasm.Execute
	if call == nil {
		call = wasm.Instantiate
	}
	if call == nil {
		return nil
	}

	call.CallbackSig = e.computeCallbackSig(contract, call.Msg, call.Send)

	updated, err := json.Marshal(wasm)
	if err != nil {
		return err
	}
	sub.Msg["wasm"] = updated
	return nil
}

// appendReplyBinding serializes a reply binding in front of data.
func appendReplyBinding(params ReplyParams, data []byte) []byte {
	var id [8]byte
	binary.BigEndian.PutUint64(id[:], params.SubMsgID)
	out := make([]byte, 0, len(params.RecipientContractHash)+8+len(data))
	out = append(out, params.RecipientContractHash...)
	out = append(out, id[:]...)
	out = append(out, data...)
	return out
}

func mustJSON(v interface{}) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return raw
}
