package types

import (
	errorsmod "cosmossdk.io/errors"
)

// EnclaveCodespace scopes the error codes surfaced by the enclave pipeline.
// Every failure in the pipeline is terminal; the codes only exist so the
// caller can tell malformed input apart from failed authentication and from
// contract logic errors. Error messages never carry key material or
// decrypted plaintext.
const EnclaveCodespace = "enclave"

var (
	// ErrDeserialization error for malformed env/msg/sig_info bytes or an
	// unparseable transaction envelope
	ErrDeserialization = errorsmod.Register(EnclaveCodespace, 2, "failed to deserialize data")

	// ErrDecryption error for an authentication tag mismatch or a failed
	// symmetric key derivation
	ErrDecryption = errorsmod.Register(EnclaveCodespace, 3, "failed to decrypt data")

	// ErrValidation error for any authentication failure: payload/tx
	// cross-validation mismatch, signature mismatch, admin proof mismatch or
	// funds mismatch
	ErrValidation = errorsmod.Register(EnclaveCodespace, 4, "failed to validate transaction")

	// ErrUnsupportedHandleType error for an unrecognized handle-type byte
	ErrUnsupportedHandleType = errorsmod.Register(EnclaveCodespace, 5, "unsupported handle type")

	// ErrExecution error for the engine returning an error or failing to
	// flush its cache
	ErrExecution = errorsmod.Register(EnclaveCodespace, 6, "contract execution failed")

	// ErrEncryption error for a failed channel key derivation while sealing
	// output back to the caller
	ErrEncryption = errorsmod.Register(EnclaveCodespace, 7, "failed to encrypt data")
)
