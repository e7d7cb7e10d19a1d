package enclave

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/crypto"
	types "github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/types"
)

func TestPostProcessOutputSealsData(t *testing.T) {
	e := newTestEnclave(t, &fakeEngine{})
	contract := testAddr(2)
	codeHash := crypto.Sha256([]byte("emitter code"))
	secretMsg := encryptForEnclave(t, e, []byte("request"))

	data := types.Binary("secret result")
	raw := mustJSON(wasmOutput{Ok: &contractResponse{
		Messages: []subMsg{},
		Data:     &data,
		Attributes: []logAttribute{
			{Key: "action", Value: "transfer"},
		},
	}})

	out, err := e.PostProcessOutput(raw, secretMsg, contract, codeHash, nil, false)
	require.NoError(t, err)

	var parsed wasmOutput
	require.NoError(t, json.Unmarshal(out, &parsed))
	require.NotNil(t, parsed.Ok)
	require.NotNil(t, parsed.Ok.Data)

	plaintext := decryptFromEnclave(t, e, secretMsg, *parsed.Ok.Data)
	assert.Equal(t, []byte("secret result"), plaintext)

	require.Len(t, parsed.Ok.Attributes, 1)
	assert.True(t, parsed.Ok.Attributes[0].Encrypted)
}

func TestPostProcessOutputBindsDataToReply(t *testing.T) {
	e := newTestEnclave(t, &fakeEngine{})
	contract := testAddr(2)
	codeHash := crypto.Sha256([]byte("emitter code"))
	secretMsg := encryptForEnclave(t, e, []byte("request"))

	callerHash := []byte(hex.EncodeToString(codeHash[:]))
	data := types.Binary("sub call result")
	raw := mustJSON(wasmOutput{Ok: &contractResponse{
		Messages: []subMsg{},
		Data:     &data,
	}})

	out, err := e.PostProcessOutput(raw, secretMsg, contract, codeHash, []ReplyParams{
		{RecipientContractHash: callerHash, SubMsgID: 7},
	}, false)
	require.NoError(t, err)

	var parsed wasmOutput
	require.NoError(t, json.Unmarshal(out, &parsed))
	require.NotNil(t, parsed.Ok.Data)

	plaintext := decryptFromEnclave(t, e, secretMsg, *parsed.Ok.Data)
	var id [8]byte
	binary.BigEndian.PutUint64(id[:], 7)
	expected := append(append(append([]byte{}, callerHash...), id[:]...), []byte("sub call result")...)
	assert.Equal(t, expected, plaintext)
}

func TestPostProcessOutputSealsError(t *testing.T) {
	e := newTestEnclave(t, &fakeEngine{})
	secretMsg := encryptForEnclave(t, e, []byte("request"))

	raw := []byte(`{"err":{"generic_err":{"msg":"boom"}}}`)
	out, err := e.PostProcessOutput(raw, secretMsg, testAddr(2), crypto.Sha256(nil), nil, false)
	require.NoError(t, err)

	var parsed struct {
		Err types.Binary `json:"err"`
	}
	require.NoError(t, json.Unmarshal(out, &parsed))
	plaintext := decryptFromEnclave(t, e, secretMsg, parsed.Err)
	assert.JSONEq(t, `{"generic_err":{"msg":"boom"}}`, string(plaintext))
}

func TestSealSubMsg(t *testing.T) {
	e := newTestEnclave(t, &fakeEngine{})
	emitter := testAddr(2)
	emitterHash := crypto.Sha256([]byte("emitter code"))
	recipient := testAddr(3)
	recipientHash := crypto.Sha256([]byte("recipient code"))
	secretMsg := encryptForEnclave(t, e, []byte("request"))

	send := []types.Coin{{Denom: "uscrt", Amount: "100"}}
	newWasmSub := func(id uint64, replyOn string) subMsg {
		return subMsg{
			ID: id,
			Msg: map[string]json.RawMessage{
				"wasm": mustJSON(wasmSubMsg{Execute: &wasmCall{
					ContractAddr: recipient.String(),
					CodeHash:     hex.EncodeToString(recipientHash[:]),
					Msg:          types.Binary(`{"deposit":{}}`),
					Send:         send,
				}}),
			},
			ReplyOn: replyOn,
		}
	}
	unsealCall := func(t *testing.T, sub subMsg) (wasmCall, []byte) {
		var wasm wasmSubMsg
		require.NoError(t, json.Unmarshal(sub.Msg["wasm"], &wasm))
		require.NotNil(t, wasm.Execute)

		framed, err := SecretMessageFromSlice(wasm.Execute.Msg)
		require.NoError(t, err)
		assert.Equal(t, secretMsg.Nonce, framed.Nonce, "sub-message rides the caller's channel")
		assert.Equal(t, secretMsg.UserPublicKey, framed.UserPublicKey)

		plaintext, err := e.Decrypt(framed)
		require.NoError(t, err)
		return *wasm.Execute, plaintext
	}

	t.Run("no reply expected", func(t *testing.T) {
		raw := mustJSON(wasmOutput{Ok: &contractResponse{Messages: []subMsg{newWasmSub(0, replyOnNever)}}})
		out, err := e.PostProcessOutput(raw, secretMsg, emitter, emitterHash, nil, false)
		require.NoError(t, err)

		var parsed wasmOutput
		require.NoError(t, json.Unmarshal(out, &parsed))
		require.Len(t, parsed.Ok.Messages, 1)
		call, plaintext := unsealCall(t, parsed.Ok.Messages[0])

		expected := append([]byte(hex.EncodeToString(recipientHash[:])), []byte(`{"deposit":{}}`)...)
		assert.Equal(t, expected, plaintext)

		framed, err := SecretMessageFromSlice(call.Msg)
		require.NoError(t, err)
		assert.Equal(t, e.computeCallbackSig(emitter, framed.Ciphertext, send), []byte(call.CallbackSig))
	})

	t.Run("reply expected carries the binding", func(t *testing.T) {
		raw := mustJSON(wasmOutput{Ok: &contractResponse{Messages: []subMsg{newWasmSub(9, "always")}}})
		out, err := e.PostProcessOutput(raw, secretMsg, emitter, emitterHash, nil, false)
		require.NoError(t, err)

		var parsed wasmOutput
		require.NoError(t, json.Unmarshal(out, &parsed))
		require.Len(t, parsed.Ok.Messages, 1)
		_, plaintext := unsealCall(t, parsed.Ok.Messages[0])

		// the recipient validates the payload and recovers the binding
		handleType := types.HandleTypeExecute
		validated, err := e.ValidateMsg(recipient, plaintext, recipientHash, &handleType)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"deposit":{}}`), validated.Msg)
		require.Len(t, validated.ReplyParams, 1)
		assert.Equal(t, []byte(hex.EncodeToString(emitterHash[:])), validated.ReplyParams[0].RecipientContractHash)
		assert.Equal(t, uint64(9), validated.ReplyParams[0].SubMsgID)
	})

	t.Run("non-wasm sub-messages pass through", func(t *testing.T) {
		bank := json.RawMessage(`{"send":{"to_address":"secret1abc","amount":[]}}`)
		raw := mustJSON(wasmOutput{Ok: &contractResponse{Messages: []subMsg{{
			ID:      0,
			Msg:     map[string]json.RawMessage{"bank": bank},
			ReplyOn: replyOnNever,
		}}}})
		out, err := e.PostProcessOutput(raw, secretMsg, emitter, emitterHash, nil, false)
		require.NoError(t, err)

		var parsed wasmOutput
		require.NoError(t, json.Unmarshal(out, &parsed))
		require.Len(t, parsed.Ok.Messages, 1)
		assert.JSONEq(t, string(bank), string(parsed.Ok.Messages[0].Msg["bank"]))
	})
}

func TestPostProcessPlaintextOutput(t *testing.T) {
	e := newTestEnclave(t, &fakeEngine{})
	emitter := testAddr(2)
	recipientHash := crypto.Sha256([]byte("recipient code"))

	msgBody := types.Binary(`{"deposit":{}}`)
	raw := mustJSON(wasmOutput{Ok: &contractResponse{
		Messages: []subMsg{{
			ID: 0,
			Msg: map[string]json.RawMessage{
				"wasm": mustJSON(wasmSubMsg{Execute: &wasmCall{
					CodeHash: hex.EncodeToString(recipientHash[:]),
					Msg:      msgBody,
				}}),
			},
			ReplyOn: replyOnNever,
		}},
		Attributes: []logAttribute{
			{Key: "action", Value: "ack", Encrypted: true},
		},
	}})

	out, err := e.PostProcessPlaintextOutput(raw, emitter)
	require.NoError(t, err)

	var parsed wasmOutput
	require.NoError(t, json.Unmarshal(out, &parsed))
	require.NotNil(t, parsed.Ok)

	// logs of plaintext invocations must never be marked for decryption
	require.Len(t, parsed.Ok.Attributes, 1)
	assert.False(t, parsed.Ok.Attributes[0].Encrypted)

	// the sub-message stays plaintext but is still signed
	var wasm wasmSubMsg
	require.NoError(t, json.Unmarshal(parsed.Ok.Messages[0].Msg["wasm"], &wasm))
	require.NotNil(t, wasm.Execute)
	assert.Equal(t, msgBody, wasm.Execute.Msg)
	assert.Equal(t, e.computeCallbackSig(emitter, msgBody, nil), []byte(wasm.Execute.CallbackSig))
}
