package enclave

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"testing"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/crypto"
	types "github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/types"
	computetypes "github.com/bytetigers/SecretNetwork/x/compute/internal/types"
)

func TestValidateMsg(t *testing.T) {
	e := newTestEnclave(t, &fakeEngine{})
	contract := testAddr(2)
	codeHash := crypto.Sha256([]byte("contract code"))
	otherHash := crypto.Sha256([]byte("other code"))

	t.Run("matching code hash", func(t *testing.T) {
		validated, err := e.ValidateMsg(contract, contractPayload(codeHash, `{"increment":{}}`), codeHash, nil)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"increment":{}}`), validated.Msg)
		assert.Empty(t, validated.ReplyParams)
	})

	t.Run("code hash mismatch", func(t *testing.T) {
		_, err := e.ValidateMsg(contract, contractPayload(otherHash, `{"increment":{}}`), codeHash, nil)
		require.ErrorIs(t, err, types.ErrValidation)
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := e.ValidateMsg(contract, []byte("abc"), codeHash, nil)
		require.ErrorIs(t, err, types.ErrValidation)
	})

	t.Run("sub-message with reply binding", func(t *testing.T) {
		callerHash := crypto.Sha256([]byte("caller code"))
		payload := contractPayload(codeHash, "")
		payload = append(payload, appendReplyBinding(ReplyParams{
			RecipientContractHash: []byte(hexHashString(callerHash)),
			SubMsgID:              42,
		}, []byte(`{"do_thing":{}}`))...)

		validated, err := e.ValidateMsg(contract, payload, codeHash, nil)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"do_thing":{}}`), validated.Msg)
		require.Len(t, validated.ReplyParams, 1)
		assert.Equal(t, uint64(42), validated.ReplyParams[0].SubMsgID)
		assert.Equal(t, []byte(hexHashString(callerHash)), validated.ReplyParams[0].RecipientContractHash)
	})

	t.Run("reply bound to this contract", func(t *testing.T) {
		handleType := types.HandleTypeReply
		payload := contractPayload(codeHash, "")
		var id [8]byte
		binary.BigEndian.PutUint64(id[:], 7)
		payload = append(payload, []byte(hexHashString(codeHash))...)
		payload = append(payload, id[:]...)
		payload = append(payload, []byte(`{"id":7,"result":{"ok":{}}}`)...)

		validated, err := e.ValidateMsg(contract, payload, codeHash, &handleType)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"id":7,"result":{"ok":{}}}`), validated.Msg)
		require.Len(t, validated.ReplyParams, 1)
		assert.Equal(t, uint64(7), validated.ReplyParams[0].SubMsgID)
	})

	t.Run("reply bound to another contract", func(t *testing.T) {
		handleType := types.HandleTypeReply
		payload := contractPayload(codeHash, "")
		payload = append(payload, appendReplyBinding(ReplyParams{
			RecipientContractHash: []byte(hexHashString(otherHash)),
			SubMsgID:              7,
		}, []byte(`{"id":7}`))...)

		_, err := e.ValidateMsg(contract, payload, codeHash, &handleType)
		require.ErrorIs(t, err, types.ErrValidation)
	})
}

func TestCallbackSig(t *testing.T) {
	e := newTestEnclave(t, &fakeEngine{})
	sender := testAddr(3)
	msg := []byte("sealed sub-message bytes")
	funds := []types.Coin{{Denom: "uscrt", Amount: "100"}}

	sig := e.computeCallbackSig(sender, msg, funds)
	require.NoError(t, e.verifyCallbackSig(sig, sender, msg, funds))

	specs := map[string]struct {
		sender sdk.AccAddress
		msg    []byte
		funds  []types.Coin
	}{
		"different sender": {testAddr(4), msg, funds},
		"different msg":    {sender, []byte("other bytes"), funds},
		"different funds":  {sender, msg, []types.Coin{{Denom: "uscrt", Amount: "101"}}},
		"dropped funds":    {sender, msg, nil},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			err := e.verifyCallbackSig(sig, spec.sender, spec.msg, spec.funds)
			require.ErrorIs(t, err, types.ErrValidation)
		})
	}
}

func TestVerifyParamsDirectExecute(t *testing.T) {
	e := newTestEnclave(t, &fakeEngine{})
	priv := secp256k1.GenPrivKey()
	sender := sdk.AccAddress(priv.PubKey().Address())
	contract := testAddr(2)
	secretMsg := encryptForEnclave(t, e, []byte("payload"))
	funds := []types.Coin{{Denom: "uscrt", Amount: "100"}}
	sdkFunds := []sdk.Coin{sdk.NewInt64Coin("uscrt", 100)}

	executeMsg := func() *computetypes.MsgExecuteContract {
		return &computetypes.MsgExecuteContract{
			Sender:    sender,
			Contract:  contract,
			Msg:       secretMsg.ToSlice(),
			SentFunds: sdkFunds,
		}
	}

	verify := func(t *testing.T, sigInfoJSON []byte, sentFunds []types.Coin) error {
		t.Helper()
		sigInfo, err := parseSigInfo(sigInfoJSON)
		require.NoError(t, err)
		ht := types.HandleTypeExecute
		return e.VerifyParams(
			sigInfo, sender, contract, sentFunds, secretMsg, nil,
			true, true, types.VerifyHandle(ht), nil, nil,
		)
	}

	t.Run("valid transaction", func(t *testing.T) {
		sigInfo := directSigInfo(t, priv, []*codectypes.Any{
			anyMsg(t, computetypes.TypeURLMsgExecuteContract, executeMsg()),
		})
		require.NoError(t, verify(t, sigInfo, funds))
	})

	t.Run("tx with unrelated extra message", func(t *testing.T) {
		other := executeMsg()
		other.Contract = testAddr(9)
		sigInfo := directSigInfo(t, priv, []*codectypes.Any{
			anyMsg(t, computetypes.TypeURLMsgExecuteContract, other),
			anyMsg(t, computetypes.TypeURLMsgExecuteContract, executeMsg()),
		})
		require.NoError(t, verify(t, sigInfo, funds))
	})

	t.Run("ciphertext not in transaction", func(t *testing.T) {
		tampered := executeMsg()
		tampered.Msg = append([]byte(nil), tampered.Msg...)
		tampered.Msg[80] ^= 0x01
		sigInfo := directSigInfo(t, priv, []*codectypes.Any{
			anyMsg(t, computetypes.TypeURLMsgExecuteContract, tampered),
		})
		err := verify(t, sigInfo, funds)
		require.ErrorIs(t, err, types.ErrValidation)
	})

	t.Run("funds mismatch", func(t *testing.T) {
		sigInfo := directSigInfo(t, priv, []*codectypes.Any{
			anyMsg(t, computetypes.TypeURLMsgExecuteContract, executeMsg()),
		})
		err := verify(t, sigInfo, []types.Coin{{Denom: "uscrt", Amount: "999"}})
		require.ErrorIs(t, err, types.ErrValidation)
	})

	t.Run("sender is not a signer", func(t *testing.T) {
		otherPriv := secp256k1.GenPrivKey()
		sigInfo := directSigInfo(t, otherPriv, []*codectypes.Any{
			anyMsg(t, computetypes.TypeURLMsgExecuteContract, executeMsg()),
		})
		err := verify(t, sigInfo, funds)
		require.ErrorIs(t, err, types.ErrValidation)
	})

	t.Run("signature over different bytes", func(t *testing.T) {
		sigInfoJSON := directSigInfo(t, priv, []*codectypes.Any{
			anyMsg(t, computetypes.TypeURLMsgExecuteContract, executeMsg()),
		})
		var sigInfo types.SigInfo
		require.NoError(t, json.Unmarshal(sigInfoJSON, &sigInfo))
		sigInfo.Signature[10] ^= 0x01
		err := verify(t, marshalSigInfo(t, sigInfo), funds)
		require.ErrorIs(t, err, types.ErrValidation)
	})

	t.Run("callback sig replaces tx verification", func(t *testing.T) {
		callbackSig := e.computeCallbackSig(sender, secretMsg.Ciphertext, funds)
		sigInfo := marshalSigInfo(t, types.SigInfo{
			SignMode:    types.SignModeUnspecified,
			CallbackSig: callbackSig,
		})
		require.NoError(t, verify(t, sigInfo, funds))
	})
}

func TestVerifyParamsAminoExecute(t *testing.T) {
	e := newTestEnclave(t, &fakeEngine{})
	priv := secp256k1.GenPrivKey()
	sender := sdk.AccAddress(priv.PubKey().Address())
	contract := testAddr(2)
	secretMsg := encryptForEnclave(t, e, []byte("payload"))
	funds := []types.Coin{{Denom: "uscrt", Amount: "25"}}

	doc := types.StdSignDoc{
		AccountNumber: "7",
		ChainID:       "secret-testing",
		Sequence:      "1",
		Msgs: []types.AminoSdkMsg{{
			Type: "wasm/MsgExecuteContract",
			Value: mustJSON(map[string]interface{}{
				"sender":     sender.String(),
				"contract":   contract.String(),
				"msg":        base64.StdEncoding.EncodeToString(secretMsg.ToSlice()),
				"sent_funds": funds,
			}),
		}},
	}
	signBytes, err := json.Marshal(doc)
	require.NoError(t, err)
	signature, err := priv.Sign(signBytes)
	require.NoError(t, err)

	pubKeyBytes, err := anyMsg(t, "/cosmos.crypto.secp256k1.PubKey", priv.PubKey().(*secp256k1.PubKey)).Marshal()
	require.NoError(t, err)

	sigInfo := &types.SigInfo{
		SignBytes: signBytes,
		SignMode:  types.SignModeLegacyAminoJSON,
		PublicKey: pubKeyBytes,
		Signature: signature,
	}

	ht := types.HandleTypeExecute
	err = e.VerifyParams(
		sigInfo, sender, contract, funds, secretMsg, nil,
		true, true, types.VerifyHandle(ht), nil, nil,
	)
	require.NoError(t, err)

	// flipping one ciphertext byte must break the match
	secretMsg.Ciphertext[0] ^= 0x01
	err = e.VerifyParams(
		sigInfo, sender, contract, funds, secretMsg, nil,
		true, true, types.VerifyHandle(ht), nil, nil,
	)
	require.ErrorIs(t, err, types.ErrValidation)
}

func hexHashString(hash [crypto.HashSize]byte) string {
	return hex.EncodeToString(hash[:])
}
