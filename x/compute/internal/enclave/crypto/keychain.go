package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/hkdf"
)

const (
	// SeedSize is the size of the consensus seed shared between enclaves
	SeedSize = 32
	// HashSize is the width of all digests used by the enclave
	HashSize = sha256.Size
	// ContractKeySize is the width of a per-contract encryption key
	ContractKeySize = 64
)

// Domain separation labels for the secrets derived from the consensus seed.
var (
	labelIoKey          = []byte("secret_io_exchange_key")
	labelStateIkm       = []byte("secret_contract_state_ikm")
	labelCallbackSecret = []byte("secret_callback_signature_secret")
	labelProofSecret    = []byte("secret_contract_key_proof_secret")
)

// KeyChain holds every secret the enclave derives from the consensus seed at
// process start. All fields are read-only after New.
type KeyChain struct {
	ioPriv         [32]byte
	ioPub          [32]byte
	stateIkm       [32]byte
	callbackSecret [32]byte
	proofSecret    [32]byte
}

// New derives the full key chain from the consensus seed. The seed itself is
// provisioned by the attestation layer and never leaves the trusted
// environment.
func New(consensusSeed []byte) (*KeyChain, error) {
	if len(consensusSeed) != SeedSize {
		return nil, errors.New("consensus seed must be 32 bytes")
	}

	k := &KeyChain{}
	for _, d := range []struct {
		label []byte
		out   *[32]byte
	}{
		{labelIoKey, &k.ioPriv},
		{labelStateIkm, &k.stateIkm},
		{labelCallbackSecret, &k.callbackSecret},
		{labelProofSecret, &k.proofSecret},
	} {
		r := hkdf.New(sha256.New, consensusSeed, nil, d.label)
		if _, err := io.ReadFull(r, d.out[:]); err != nil {
			return nil, err
		}
	}

	pub, err := curve25519.X25519(k.ioPriv[:], curve25519.Basepoint)
	if err != nil {
		return nil, err
	}
	copy(k.ioPub[:], pub)

	return k, nil
}

// IoPublicKey returns the x25519 public key users encrypt their messages to.
func (k *KeyChain) IoPublicKey() [32]byte {
	return k.ioPub
}

// StateIkm returns the input key material for contract key derivation.
func (k *KeyChain) StateIkm() [32]byte {
	return k.stateIkm
}

// CallbackSecret returns the key for callback signature HMACs.
func (k *KeyChain) CallbackSecret() [32]byte {
	return k.callbackSecret
}

// ProofSecret returns the key for admin and migration proof commitments.
func (k *KeyChain) ProofSecret() [32]byte {
	return k.proofSecret
}

// HmacSha256 computes HMAC-SHA256 of the concatenated data chunks under key.
func HmacSha256(key []byte, data ...[]byte) [HashSize]byte {
	mac := hmac.New(sha256.New, key)
	for _, d := range data {
		mac.Write(d)
	}
	var out [HashSize]byte
	copy(out[:], mac.Sum(nil))
	return out
}

// Sha256 hashes data with SHA-256.
func Sha256(data []byte) [HashSize]byte {
	return sha256.Sum256(data)
}
