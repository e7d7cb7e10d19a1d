package enclave

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"cosmossdk.io/log"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/crypto"
	types "github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/types"
	computetypes "github.com/bytetigers/SecretNetwork/x/compute/internal/types"
)

const emptyOkOutput = `{"ok":{"messages":[]}}`

func TestInitMigrateExecuteLifecycle(t *testing.T) {
	engine := &fakeEngine{response: emptyOkOutput, gas: 5000, refund: 500}
	e := newTestEnclave(t, engine)

	priv := secp256k1.GenPrivKey()
	sender := sdk.AccAddress(priv.PubKey().Address())
	contract := testAddr(2)
	admin := testAddr(5)

	codeV1 := []byte("counter contract v1")
	hashV1 := crypto.Sha256(codeV1)

	// instantiate
	initMsg := encryptForEnclave(t, e, contractPayload(hashV1, `{"count":0}`))
	initSigInfo := directSigInfo(t, priv, []*codectypes.Any{
		anyMsg(t, computetypes.TypeURLMsgInstantiateContract, &computetypes.MsgInstantiateContract{
			Sender:  sender,
			CodeID:  1,
			Label:   "counter",
			InitMsg: initMsg.ToSlice(),
			Admin:   admin.String(),
		}),
	})
	initEnv := testEnv(t, sender, contract, 100, nil, nil)

	initRes, err := e.Init(codeV1, initEnv, initMsg.ToSlice(), initSigInfo, admin, 200_000)
	require.NoError(t, err)

	assert.Equal(t, e.GenerateContractKey(sender, 100, hashV1, contract, nil), initRes.ContractKey)
	assert.Equal(t, e.GenerateAdminProof(admin, initRes.ContractKey), initRes.AdminProof)
	assert.Equal(t, uint64(4500), initRes.UsedGas)
	assert.JSONEq(t, emptyOkOutput, string(initRes.Output))

	// the engine saw the decrypted body without the code hash prefix
	assert.Equal(t, []byte(`{"count":0}`), engine.lastMsg)
	var seenEnv types.BaseEnv
	require.NoError(t, json.Unmarshal(engine.lastEnv, &seenEnv))
	assert.Equal(t, hex.EncodeToString(hashV1[:]), seenEnv.Contract.CodeHash)
	assert.Equal(t, sender.String(), seenEnv.Message.Sender)

	// migrate to v2 with the stored admin proof
	codeV2 := []byte("counter contract v2")
	hashV2 := crypto.Sha256(codeV2)
	migrateMsg := encryptForEnclave(t, e, contractPayload(hashV2, `{"migrate":{}}`))
	migrateSigInfo := directSigInfo(t, priv, []*codectypes.Any{
		anyMsg(t, computetypes.TypeURLMsgMigrateContract, &computetypes.MsgMigrateContract{
			Sender:   sender.String(),
			Contract: contract.String(),
			CodeID:   2,
			Msg:      migrateMsg.ToSlice(),
		}),
	})
	migrateEnv := testEnv(t, sender, contract, 200, nil, &types.ContractKeyInfo{
		OgContractKey: initRes.ContractKey[:],
	})

	migrateRes, err := e.Migrate(codeV2, migrateEnv, migrateMsg.ToSlice(), migrateSigInfo, admin, initRes.AdminProof, 200_000)
	require.NoError(t, err)

	expNewKey := e.GenerateContractKey(sender, 200, hashV2, contract, &initRes.ContractKey)
	assert.Equal(t, expNewKey, migrateRes.NewContractKey)
	assert.NotEqual(t, initRes.ContractKey, migrateRes.NewContractKey)
	assert.Equal(t, []byte(`{"migrate":{}}`), engine.lastMsg)

	// the rotated key validates against the genesis key
	postMigrateKeyInfo := &types.ContractKeyInfo{
		OgContractKey:           initRes.ContractKey[:],
		CurrentContractKey:      migrateRes.NewContractKey[:],
		CurrentContractKeyProof: migrateRes.NewContractKeyProof,
	}
	env := &types.BaseEnv{ContractKey: postMigrateKeyInfo}
	key, err := e.ValidateContractKey(env, contract, types.NewContractCode(codeV2))
	require.NoError(t, err)
	assert.Equal(t, migrateRes.NewContractKey, key)

	// execute against v2 under the migrated key
	execMsg := encryptForEnclave(t, e, contractPayload(hashV2, `{"increment":{}}`))
	execSigInfo := directSigInfo(t, priv, []*codectypes.Any{
		anyMsg(t, computetypes.TypeURLMsgExecuteContract, &computetypes.MsgExecuteContract{
			Sender:   sender,
			Contract: contract,
			Msg:      execMsg.ToSlice(),
		}),
	})
	execEnv := testEnv(t, sender, contract, 201, nil, postMigrateKeyInfo)

	execRes, err := e.Handle(codeV2, execEnv, execMsg.ToSlice(), execSigInfo, uint8(types.HandleTypeExecute), 200_000)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"increment":{}}`), engine.lastMsg)
	assert.JSONEq(t, emptyOkOutput, string(execRes.Output))

	require.NoError(t, json.Unmarshal(engine.lastEnv, &seenEnv))
	assert.Equal(t, sender.String(), seenEnv.Message.Sender, "execute keeps the verified sender")
}

func TestMigrateRejectsBadAdminProof(t *testing.T) {
	engine := &fakeEngine{response: emptyOkOutput, gas: 1000}
	e := newTestEnclave(t, engine)

	priv := secp256k1.GenPrivKey()
	sender := sdk.AccAddress(priv.PubKey().Address())
	contract := testAddr(2)
	admin := testAddr(5)

	var ogKey types.ContractKey
	copy(ogKey[:], []byte("genesis contract key genesis contract key genesis contract key!"))

	code := []byte("counter contract v2")
	msg := encryptForEnclave(t, e, contractPayload(crypto.Sha256(code), `{"migrate":{}}`))
	sigInfo := directSigInfo(t, priv, []*codectypes.Any{
		anyMsg(t, computetypes.TypeURLMsgMigrateContract, &computetypes.MsgMigrateContract{
			Sender:   sender.String(),
			Contract: contract.String(),
			CodeID:   2,
			Msg:      msg.ToSlice(),
		}),
	})
	env := testEnv(t, sender, contract, 200, nil, &types.ContractKeyInfo{OgContractKey: ogKey[:]})

	specs := map[string][]byte{
		"proof for another admin":            e.GenerateAdminProof(testAddr(9), ogKey),
		"zero proof without hardcoded entry": make([]byte, crypto.HashSize),
		"empty proof":                        nil,
	}
	for name, proof := range specs {
		t.Run(name, func(t *testing.T) {
			_, err := e.Migrate(code, env, msg.ToSlice(), sigInfo, admin, proof, 200_000)
			require.ErrorIs(t, err, types.ErrValidation)
		})
	}

	t.Run("valid proof passes", func(t *testing.T) {
		_, err := e.Migrate(code, env, msg.ToSlice(), sigInfo, admin, e.GenerateAdminProof(admin, ogKey), 200_000)
		require.NoError(t, err)
	})
}

func TestMigrateStartsEngineWithOriginalKey(t *testing.T) {
	engine := &fakeEngine{response: emptyOkOutput, gas: 1000}
	keys, err := crypto.New(testSeed)
	require.NoError(t, err)

	var startedWith types.ContractKey
	starter := EngineStarterFunc(func(p EngineParams) (Engine, error) {
		startedWith = p.ContractKey
		return engine, nil
	})
	e := New(keys, starter, log.NewNopLogger())

	priv := secp256k1.GenPrivKey()
	sender := sdk.AccAddress(priv.PubKey().Address())
	contract := testAddr(2)
	admin := testAddr(5)

	var ogKey types.ContractKey
	copy(ogKey[:], []byte("genesis contract key genesis contract key genesis contract key!"))

	code := []byte("counter contract v2")
	msg := encryptForEnclave(t, e, contractPayload(crypto.Sha256(code), `{"migrate":{}}`))
	sigInfo := directSigInfo(t, priv, []*codectypes.Any{
		anyMsg(t, computetypes.TypeURLMsgMigrateContract, &computetypes.MsgMigrateContract{
			Sender:   sender.String(),
			Contract: contract.String(),
			CodeID:   2,
			Msg:      msg.ToSlice(),
		}),
	})
	env := testEnv(t, sender, contract, 200, nil, &types.ContractKeyInfo{OgContractKey: ogKey[:]})

	res, err := e.Migrate(code, env, msg.ToSlice(), sigInfo, admin, e.GenerateAdminProof(admin, ogKey), 200_000)
	require.NoError(t, err)

	// existing state was written under the original key; the rotated key
	// only takes effect for subsequent calls
	assert.Equal(t, ogKey, startedWith)
	assert.NotEqual(t, res.NewContractKey, startedWith)
}

func TestHandleNullsSenderForSyntheticCalls(t *testing.T) {
	engine := &fakeEngine{response: emptyOkOutput, gas: 1000}
	e := newTestEnclave(t, engine)
	contract := testAddr(2)

	var ogKey types.ContractKey
	copy(ogKey[:], []byte("genesis contract key genesis contract key genesis contract key!"))
	keyInfo := &types.ContractKeyInfo{OgContractKey: ogKey[:]}

	// plaintext reply, marked by the unspecified sign mode
	env := testEnv(t, testAddr(3), contract, 300, nil, keyInfo)
	sigInfo := marshalSigInfo(t, types.SigInfo{SignMode: types.SignModeUnspecified})
	replyMsg := []byte(`{"id":1,"result":{"ok":{"events":[]}}}`)

	res, err := e.Handle([]byte("code"), env, replyMsg, sigInfo, uint8(types.HandleTypeReply), 200_000)
	require.NoError(t, err)

	var seenEnv types.BaseEnv
	require.NoError(t, json.Unmarshal(engine.lastEnv, &seenEnv))
	assert.Empty(t, seenEnv.Message.Sender)
	assert.Equal(t, replyMsg, engine.lastMsg)
	assert.JSONEq(t, emptyOkOutput, string(res.Output))

	// IBC channel connect behaves the same
	env = testEnv(t, testAddr(3), contract, 300, nil, keyInfo)
	connectMsg := []byte(`{"open_ack":{"channel":{}}}`)
	_, err = e.Handle([]byte("code"), env, connectMsg, sigInfo, uint8(types.HandleTypeIbcChannelConnect), 200_000)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(engine.lastEnv, &seenEnv))
	assert.Empty(t, seenEnv.Message.Sender)
}

func TestUpdateAdmin(t *testing.T) {
	e := newTestEnclave(t, &fakeEngine{})

	priv := secp256k1.GenPrivKey()
	sender := sdk.AccAddress(priv.PubKey().Address())
	contract := testAddr(2)
	currentAdmin := testAddr(5)
	newAdmin := testAddr(6)

	var ogKey types.ContractKey
	copy(ogKey[:], []byte("genesis contract key genesis contract key genesis contract key!"))
	env := testEnv(t, sender, contract, 400, nil, &types.ContractKeyInfo{OgContractKey: ogKey[:]})
	currentProof := e.GenerateAdminProof(currentAdmin, ogKey)

	sigInfo := directSigInfo(t, priv, []*codectypes.Any{
		anyMsg(t, computetypes.TypeURLMsgUpdateAdmin, &computetypes.MsgUpdateAdmin{
			Sender:   sender.String(),
			NewAdmin: newAdmin.String(),
			Contract: contract.String(),
		}),
	})

	t.Run("valid proof rotates the admin", func(t *testing.T) {
		res, err := e.UpdateAdmin(env, sigInfo, currentAdmin, currentProof, newAdmin)
		require.NoError(t, err)
		assert.Equal(t, e.GenerateAdminProof(newAdmin, ogKey), res.AdminProof)
	})

	t.Run("zero proof sentinel is not accepted", func(t *testing.T) {
		// unlike migrate there is no hardcoded override on this path
		_, err := e.UpdateAdmin(env, sigInfo, currentAdmin, make([]byte, crypto.HashSize), newAdmin)
		require.ErrorIs(t, err, types.ErrValidation)
	})

	t.Run("proof for another admin", func(t *testing.T) {
		_, err := e.UpdateAdmin(env, sigInfo, currentAdmin, e.GenerateAdminProof(testAddr(9), ogKey), newAdmin)
		require.ErrorIs(t, err, types.ErrValidation)
	})

	t.Run("new admin must match the signed message", func(t *testing.T) {
		_, err := e.UpdateAdmin(env, sigInfo, currentAdmin, currentProof, testAddr(9))
		require.ErrorIs(t, err, types.ErrValidation)
	})

	t.Run("clear admin", func(t *testing.T) {
		clearSigInfo := directSigInfo(t, priv, []*codectypes.Any{
			anyMsg(t, computetypes.TypeURLMsgClearAdmin, &computetypes.MsgClearAdmin{
				Sender:   sender.String(),
				Contract: contract.String(),
			}),
		})
		res, err := e.UpdateAdmin(env, clearSigInfo, currentAdmin, currentProof, nil)
		require.NoError(t, err)
		assert.Equal(t, e.GenerateAdminProof(nil, ogKey), res.AdminProof)
	})
}

func TestQuery(t *testing.T) {
	engine := &fakeEngine{response: `{"ok":"eyJjb3VudCI6MX0="}`, gas: 1000}
	e := newTestEnclave(t, engine)
	contract := testAddr(2)

	code := []byte("counter contract v1")
	codeHash := crypto.Sha256(code)
	var ogKey types.ContractKey
	copy(ogKey[:], []byte("genesis contract key genesis contract key genesis contract key!"))

	env := testEnv(t, testAddr(3), contract, 500, nil, &types.ContractKeyInfo{OgContractKey: ogKey[:]})
	queryMsg := encryptForEnclave(t, e, contractPayload(codeHash, `{"get_count":{}}`))

	res, err := e.Query(code, env, queryMsg.ToSlice(), 200_000)
	require.NoError(t, err)

	// queries run without a sender
	var seenEnv types.BaseEnv
	require.NoError(t, json.Unmarshal(engine.lastEnv, &seenEnv))
	assert.Empty(t, seenEnv.Message.Sender)
	assert.Equal(t, []byte(`{"get_count":{}}`), engine.lastMsg)

	// the response data is sealed onto the caller's channel
	var out queryOutput
	require.NoError(t, json.Unmarshal(res.Output, &out))
	require.NotNil(t, out.Ok)
	plaintext := decryptFromEnclave(t, e, queryMsg, *out.Ok)
	assert.Equal(t, []byte(`{"count":1}`), plaintext)
}

func TestHandleRejectsUnknownHandleType(t *testing.T) {
	e := newTestEnclave(t, &fakeEngine{})
	_, err := e.Handle([]byte("code"), nil, nil, nil, 42, 200_000)
	require.ErrorIs(t, err, types.ErrUnsupportedHandleType)
}
