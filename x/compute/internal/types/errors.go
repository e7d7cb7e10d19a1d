package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Codes for compute contract errors
var (
	DefaultCodespace = ModuleName

	// ErrInstantiateFailed error for contract instantiation failure
	ErrInstantiateFailed = errorsmod.Register(DefaultCodespace, 2, "instantiate contract failed")

	// ErrExecuteFailed error for contract execution failure
	ErrExecuteFailed = errorsmod.Register(DefaultCodespace, 3, "execute contract failed")

	// ErrMigrationFailed error for contract migration failure
	ErrMigrationFailed = errorsmod.Register(DefaultCodespace, 4, "migrate contract failed")

	// ErrQueryFailed error for contract query failure
	ErrQueryFailed = errorsmod.Register(DefaultCodespace, 5, "query contract failed")

	// ErrNotFound error for an entry not found in the store
	ErrNotFound = errorsmod.Register(DefaultCodespace, 6, "not found")

	// ErrInvalid error for content that is invalid in this context
	ErrInvalid = errorsmod.Register(DefaultCodespace, 7, "invalid")

	// ErrUpdateAdminFailed error for a failed admin update or transfer
	ErrUpdateAdminFailed = errorsmod.Register(DefaultCodespace, 8, "update contract admin failed")
)
