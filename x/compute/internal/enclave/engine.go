package enclave

import (
	types "github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/types"
)

// ContractOperation tells the engine which entry point family is running.
type ContractOperation int

const (
	OperationInit ContractOperation = iota
	OperationHandle
	OperationMigrate
	OperationQuery
)

// ContractFeature is a capability a contract declares support for.
type ContractFeature string

// FeatureRandom marks contracts that consume per-call randomness from the
// environment.
const FeatureRandom ContractFeature = "random"

// EngineParams is everything the execution engine needs to set up one call.
type EngineParams struct {
	Code          types.ContractCode
	ContractKey   types.ContractKey
	Operation     ContractOperation
	GasLimit      uint64
	QueryDepth    uint32
	Nonce         [32]byte
	UserPublicKey [32]byte
	Timestamp     uint64
}

// Engine is the deterministic contract-execution engine. Interpretation of
// the bytecode, gas metering and state caching all live behind it.
type Engine interface {
	Init(env, msg []byte) ([]byte, error)
	Handle(env, msg []byte, handleType types.HandleType) ([]byte, error)
	Migrate(env, msg []byte) ([]byte, error)
	Query(env, msg []byte) ([]byte, error)

	// GasUsed reports gas consumed so far, valid even after a failed call.
	GasUsed() uint64
	// FlushCache commits the engine's state cache and returns the gas to
	// refund for it (the SDK charges it again later).
	FlushCache() (uint64, error)
	// SupportedFeatures lists the capabilities the loaded contract declared.
	SupportedFeatures() []ContractFeature
	// APIVersion is the contract API generation the code was built against.
	APIVersion() string
}

// EngineStarter builds an engine instance for a single call.
type EngineStarter interface {
	StartEngine(params EngineParams) (Engine, error)
}

// EngineStarterFunc adapts a function to the EngineStarter interface.
type EngineStarterFunc func(params EngineParams) (Engine, error)

func (f EngineStarterFunc) StartEngine(params EngineParams) (Engine, error) {
	return f(params)
}

func engineSupports(engine Engine, feature ContractFeature) bool {
	for _, f := range engine.SupportedFeatures() {
		if f == feature {
			return true
		}
	}
	return false
}
