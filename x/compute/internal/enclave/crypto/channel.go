package crypto

import (
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/hkdf"
)

var (
	// ErrKeyDerivation is returned when the ECDH+KDF step fails, which only
	// happens for degenerate user public keys.
	ErrKeyDerivation = errors.New("failed to derive symmetric channel key")
	// ErrAuthentication is returned when the AEAD tag does not verify. This is
	// deliberately distinct from any formatting error.
	ErrAuthentication = errors.New("ciphertext authentication failed")
)

var labelChannelKey = []byte("secret_io_encryption_key")

// TxKey derives the per-message symmetric key from the enclave io secret, the
// caller's ephemeral x25519 public key and the message nonce. The same key is
// used to decrypt the inbound message and encrypt the response, so the caller
// alone can read the output.
func (k *KeyChain) TxKey(nonce [32]byte, userPubKey [32]byte) ([32]byte, error) {
	var key [32]byte

	shared, err := curve25519.X25519(k.ioPriv[:], userPubKey[:])
	if err != nil {
		return key, ErrKeyDerivation
	}

	r := hkdf.New(sha256.New, append(shared, nonce[:]...), nil, labelChannelKey)
	if _, err := io.ReadFull(r, key[:]); err != nil {
		return key, ErrKeyDerivation
	}
	return key, nil
}

// Seal encrypts and authenticates plaintext under the per-message key. The
// nonce doubles as the AEAD nonce; callers guarantee it never repeats for the
// same user public key.
func Seal(txKey [32]byte, nonce [32]byte, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(txKey[:])
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce[:chacha20poly1305.NonceSizeX], plaintext, nil), nil
}

// Open authenticates and decrypts ciphertext produced by Seal. A tampered
// ciphertext fails with ErrAuthentication, never with corrupted plaintext.
func Open(txKey [32]byte, nonce [32]byte, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(txKey[:])
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, nonce[:chacha20poly1305.NonceSizeX], ciphertext, nil)
	if err != nil {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}
