package enclave

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"testing"

	"cosmossdk.io/log"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/cosmos/gogoproto/proto"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/curve25519"

	"github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/crypto"
	types "github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/types"
)

func TestMain(m *testing.M) {
	cfg := sdk.GetConfig()
	cfg.SetBech32PrefixForAccount("secret", "secretpub")
	os.Exit(m.Run())
}

var testSeed = []byte("0123456789abcdef0123456789abcdef")

// fakeEngine is a canned-response engine for pipeline tests.
type fakeEngine struct {
	response string
	gas      uint64
	refund   uint64
	features []ContractFeature

	lastEnv []byte
	lastMsg []byte
}

func (f *fakeEngine) Init(env, msg []byte) ([]byte, error)    { return f.record(env, msg) }
func (f *fakeEngine) Migrate(env, msg []byte) ([]byte, error) { return f.record(env, msg) }
func (f *fakeEngine) Query(env, msg []byte) ([]byte, error)   { return f.record(env, msg) }
func (f *fakeEngine) Handle(env, msg []byte, _ types.HandleType) ([]byte, error) {
	return f.record(env, msg)
}

func (f *fakeEngine) record(env, msg []byte) ([]byte, error) {
	f.lastEnv = env
	f.lastMsg = msg
	return []byte(f.response), nil
}

func (f *fakeEngine) GasUsed() uint64 { return f.gas }
func (f *fakeEngine) FlushCache() (uint64, error) { return f.refund, nil }
func (f *fakeEngine) SupportedFeatures() []ContractFeature { return f.features }
func (f *fakeEngine) APIVersion() string { return "v1" }

func newTestEnclave(t *testing.T, engine Engine) *Enclave {
	t.Helper()
	keys, err := crypto.New(testSeed)
	require.NoError(t, err)
	starter := EngineStarterFunc(func(EngineParams) (Engine, error) {
		return engine, nil
	})
	return New(keys, starter, log.NewNopLogger())
}

// encryptForEnclave builds the message a client would send: plaintext
// sealed onto a fresh channel against the enclave's io key.
func encryptForEnclave(t *testing.T, e *Enclave, plaintext []byte) SecretMessage {
	t.Helper()
	var nonce, userPriv [32]byte
	copy(nonce[:], []byte("such nonce, very random, wow 123"))
	copy(userPriv[:], []byte("test user x25519 private key 456"))
	userPub := x25519Public(t, userPriv)

	txKey, err := e.keys.TxKey(nonce, userPub)
	require.NoError(t, err)
	ct, err := crypto.Seal(txKey, nonce, plaintext)
	require.NoError(t, err)
	return SecretMessage{Nonce: nonce, UserPublicKey: userPub, Ciphertext: ct}
}

func x25519Public(t *testing.T, priv [32]byte) [32]byte {
	t.Helper()
	pub, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	require.NoError(t, err)
	var out [32]byte
	copy(out[:], pub)
	return out
}

// decryptFromEnclave opens output the enclave sealed onto msg's channel.
func decryptFromEnclave(t *testing.T, e *Enclave, msg SecretMessage, sealed []byte) []byte {
	t.Helper()
	txKey, err := e.keys.TxKey(msg.Nonce, msg.UserPublicKey)
	require.NoError(t, err)
	plaintext, err := crypto.Open(txKey, msg.Nonce, sealed)
	require.NoError(t, err)
	return plaintext
}

func anyMsg(t *testing.T, typeURL string, msg proto.Message) *codectypes.Any {
	t.Helper()
	bz, err := proto.Marshal(msg)
	require.NoError(t, err)
	return &codectypes.Any{TypeUrl: typeURL, Value: bz}
}

// buildSignedTx assembles and signs a protobuf transaction the way a direct
// signer would, returning the artifacts sig_info carries.
func buildSignedTx(t *testing.T, priv *secp256k1.PrivKey, msgs []*codectypes.Any) (txBytes, signBytes, signature []byte) {
	t.Helper()
	body := &txtypes.TxBody{Messages: msgs}
	bodyBytes, err := proto.Marshal(body)
	require.NoError(t, err)

	pubKey := priv.PubKey().(*secp256k1.PubKey)
	authInfo := &txtypes.AuthInfo{
		SignerInfos: []*txtypes.SignerInfo{{
			PublicKey: anyMsg(t, "/cosmos.crypto.secp256k1.PubKey", pubKey),
			Sequence:  1,
		}},
	}
	authBytes, err := proto.Marshal(authInfo)
	require.NoError(t, err)

	signDoc := &txtypes.SignDoc{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authBytes,
		ChainId:       "secret-testing",
		AccountNumber: 7,
	}
	signBytes, err = proto.Marshal(signDoc)
	require.NoError(t, err)

	signature, err = priv.Sign(signBytes)
	require.NoError(t, err)

	txRaw := &txtypes.TxRaw{
		BodyBytes:     bodyBytes,
		AuthInfoBytes: authBytes,
		Signatures:    [][]byte{signature},
	}
	txBytes, err = proto.Marshal(txRaw)
	require.NoError(t, err)
	return txBytes, signBytes, signature
}

func directSigInfo(t *testing.T, priv *secp256k1.PrivKey, msgs []*codectypes.Any) []byte {
	t.Helper()
	txBytes, signBytes, signature := buildSignedTx(t, priv, msgs)
	return marshalSigInfo(t, types.SigInfo{
		TxBytes:   txBytes,
		SignBytes: signBytes,
		SignMode:  types.SignModeDirect,
		Signature: signature,
	})
}

func marshalSigInfo(t *testing.T, info types.SigInfo) []byte {
	t.Helper()
	bz, err := json.Marshal(info)
	require.NoError(t, err)
	return bz
}

// testEnv builds the env JSON for one call.
func testEnv(t *testing.T, sender, contract sdk.AccAddress, height uint64, funds []types.Coin, keyInfo *types.ContractKeyInfo) []byte {
	t.Helper()
	senderStr := ""
	if len(sender) > 0 {
		senderStr = sender.String()
	}
	env := types.BaseEnv{
		Block:   types.BlockInfo{Height: height, Time: 1700000000, ChainID: "secret-testing"},
		Message: types.MessageInfo{Sender: senderStr, SentFunds: funds},
		Contract: types.ContractInfo{
			Address: contract.String(),
		},
		ContractKey: keyInfo,
	}
	bz, err := json.Marshal(env)
	require.NoError(t, err)
	return bz
}

// contractPayload prefixes a JSON body with the hex code hash, the framing
// every encrypted contract message uses.
func contractPayload(codeHash [crypto.HashSize]byte, body string) []byte {
	return append([]byte(hex.EncodeToString(codeHash[:])), []byte(body)...)
}

func testAddr(seed byte) sdk.AccAddress {
	addr := make([]byte, 20)
	for i := range addr {
		addr[i] = seed
	}
	return addr
}
