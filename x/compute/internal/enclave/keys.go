package enclave

import (
	"bytes"
	"crypto/hmac"
	"encoding/binary"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/crypto"
	types "github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/types"
)

// Domain bytes separating the two HMAC invocations that expand a contract
// key to its full width.
var (
	contractKeyDomainLo = []byte{0x01}
	contractKeyDomainHi = []byte{0x02}
)

// GenerateContractKey derives the 64-byte per-contract key from the creation
// context. A non-nil predecessor chains the new key to the key that was
// current before a migration, so every migration step stays bound to the
// genesis key through the proof chain.
func (e *Enclave) GenerateContractKey(
	sender sdk.AccAddress,
	blockHeight uint64,
	codeHash [crypto.HashSize]byte,
	contractAddress sdk.AccAddress,
	predecessor *types.ContractKey,
) types.ContractKey {
	var height [8]byte
	binary.BigEndian.PutUint64(height[:], blockHeight)

	ikm := e.keys.StateIkm()
	chunks := [][]byte{sender.Bytes(), height[:], codeHash[:], contractAddress.Bytes()}
	if predecessor != nil {
		chunks = append(chunks, predecessor[:])
	}

	var key types.ContractKey
	lo := crypto.HmacSha256(ikm[:], append([][]byte{contractKeyDomainLo}, chunks...)...)
	hi := crypto.HmacSha256(ikm[:], append([][]byte{contractKeyDomainHi}, chunks...)...)
	copy(key[:crypto.HashSize], lo[:])
	copy(key[crypto.HashSize:], hi[:])
	return key
}

// GenerateAdminProof commits an admin address to a contract key. The proof
// is stored on-chain next to the contract and checked on migrate and
// update-admin, so an attacker who rewrites the stored admin field still
// cannot produce a matching proof.
func (e *Enclave) GenerateAdminProof(admin sdk.AccAddress, contractKey types.ContractKey) []byte {
	secret := e.keys.ProofSecret()
	proof := crypto.HmacSha256(secret[:], []byte("contract_admin_proof"), admin.Bytes(), contractKey[:])
	return proof[:]
}

// GenerateContractKeyProof commits a post-migration contract key to the
// contract's genesis key and the code hash it was rotated under.
func (e *Enclave) GenerateContractKeyProof(
	contractAddress sdk.AccAddress,
	codeHash [crypto.HashSize]byte,
	ogContractKey types.ContractKey,
	newContractKey types.ContractKey,
) []byte {
	secret := e.keys.ProofSecret()
	proof := crypto.HmacSha256(
		secret[:],
		[]byte("contract_key_proof"),
		contractAddress.Bytes(),
		codeHash[:],
		ogContractKey[:],
		newContractKey[:],
	)
	return proof[:]
}

// ValidateContractKey resolves the key the current call must use and checks
// the proof chain carried in the environment. For never-migrated contracts
// the genesis key is authoritative on its own. For migrated contracts the
// current key must be proven against the genesis key; when the stored proof
// was produced under a code hash that predates the proof chain, the
// contract's registered legacy hash is tried as a fallback.
func (e *Enclave) ValidateContractKey(
	env *types.BaseEnv,
	contractAddress sdk.AccAddress,
	code types.ContractCode,
) (types.ContractKey, error) {
	ogKey, err := env.OgContractKey()
	if err != nil {
		return types.ContractKey{}, err
	}
	if env.ContractKey == nil || len(env.ContractKey.CurrentContractKey) == 0 {
		return ogKey, nil
	}

	currentKey, err := env.LatestContractKey()
	if err != nil {
		return types.ContractKey{}, err
	}
	if bytes.Equal(currentKey[:], ogKey[:]) {
		return ogKey, nil
	}

	proof := env.ContractKey.CurrentContractKeyProof
	expected := e.GenerateContractKeyProof(contractAddress, code.Hash(), ogKey, currentKey)
	if hmac.Equal(proof, expected) {
		return currentKey, nil
	}

	// Contracts migrated before their current code upload carry proofs
	// bound to the hash they ran at migration time.
	if legacyHash, ok := AllowedContractCodeHash(contractAddress); ok {
		expected = e.GenerateContractKeyProof(contractAddress, legacyHash, ogKey, currentKey)
		if hmac.Equal(proof, expected) {
			return currentKey, nil
		}
	}

	return types.ContractKey{}, errorsmod.Wrapf(
		types.ErrValidation, "contract key proof mismatch for %s", contractAddress.String(),
	)
}
