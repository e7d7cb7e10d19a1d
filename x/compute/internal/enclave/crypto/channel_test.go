package crypto

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/curve25519"
)

func testKeyChain(t *testing.T) *KeyChain {
	t.Helper()
	seed := bytes.Repeat([]byte{0x42}, SeedSize)
	k, err := New(seed)
	require.NoError(t, err)
	return k
}

func userKeyPair(t *testing.T) (priv, pub [32]byte) {
	t.Helper()
	_, err := rand.Read(priv[:])
	require.NoError(t, err)
	p, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	require.NoError(t, err)
	copy(pub[:], p)
	return priv, pub
}

func TestNewKeyChainRejectsShortSeed(t *testing.T) {
	_, err := New([]byte("too short"))
	require.Error(t, err)
}

func TestKeyChainDeterminism(t *testing.T) {
	a := testKeyChain(t)
	b := testKeyChain(t)
	assert.Equal(t, a.IoPublicKey(), b.IoPublicKey())
	assert.Equal(t, a.StateIkm(), b.StateIkm())
	assert.Equal(t, a.CallbackSecret(), b.CallbackSecret())

	// distinct secrets per label
	assert.NotEqual(t, a.StateIkm(), a.CallbackSecret())
	assert.NotEqual(t, a.StateIkm(), a.ProofSecret())
}

func TestSealOpenRoundTrip(t *testing.T) {
	k := testKeyChain(t)
	_, userPub := userKeyPair(t)

	var nonce [32]byte
	_, err := rand.Read(nonce[:])
	require.NoError(t, err)

	txKey, err := k.TxKey(nonce, userPub)
	require.NoError(t, err)

	plaintext := []byte(`{"transfer":{"amount":"100"}}`)
	ct, err := Seal(txKey, nonce, plaintext)
	require.NoError(t, err)

	got, err := Open(txKey, nonce, ct)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestTamperedCiphertextFailsAuthentication(t *testing.T) {
	k := testKeyChain(t)
	_, userPub := userKeyPair(t)

	var nonce [32]byte
	_, err := rand.Read(nonce[:])
	require.NoError(t, err)

	txKey, err := k.TxKey(nonce, userPub)
	require.NoError(t, err)

	ct, err := Seal(txKey, nonce, []byte("attack at dawn"))
	require.NoError(t, err)

	// flipping any single bit must be rejected
	for _, pos := range []int{0, len(ct) / 2, len(ct) - 1} {
		tampered := append([]byte(nil), ct...)
		tampered[pos] ^= 0x01
		_, err := Open(txKey, nonce, tampered)
		require.ErrorIs(t, err, ErrAuthentication, "bit flip at %d", pos)
	}
}

func TestTxKeyBindsNonceAndPubKey(t *testing.T) {
	k := testKeyChain(t)
	_, userPub := userKeyPair(t)
	_, otherPub := userKeyPair(t)

	var nonce, otherNonce [32]byte
	nonce[0], otherNonce[0] = 1, 2

	k1, err := k.TxKey(nonce, userPub)
	require.NoError(t, err)
	k2, err := k.TxKey(otherNonce, userPub)
	require.NoError(t, err)
	k3, err := k.TxKey(nonce, otherPub)
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}
