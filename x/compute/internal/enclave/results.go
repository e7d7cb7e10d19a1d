package enclave

import (
	types "github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/types"
)

// InitSuccess is returned by Init. AdminProof commits the instantiating
// admin to the freshly derived contract key.
type InitSuccess struct {
	Output      []byte
	ContractKey types.ContractKey
	AdminProof  []byte
	UsedGas     uint64
}

// HandleSuccess is returned by Handle.
type HandleSuccess struct {
	Output  []byte
	UsedGas uint64
}

// MigrateSuccess carries the rotated contract key and the proof chaining it
// to the original key.
type MigrateSuccess struct {
	Output              []byte
	NewContractKey      types.ContractKey
	NewContractKeyProof []byte
	UsedGas             uint64
}

// UpdateAdminSuccess carries the proof committing the new admin to the
// contract's original key.
type UpdateAdminSuccess struct {
	AdminProof []byte
}

// QuerySuccess is returned by Query.
type QuerySuccess struct {
	Output  []byte
	UsedGas uint64
}
