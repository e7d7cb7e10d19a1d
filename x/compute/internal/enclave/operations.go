package enclave

import (
	"crypto/hmac"
	"encoding/hex"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/crypto"
	types "github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/types"
)

// Enclave is the message-authentication and key-management pipeline sitting
// between the chain and the contract execution engine. Every lifecycle call
// runs decrypt, verify, execute, re-encrypt in that order; a failure at any
// stage aborts the call before the contract sees a single byte.
type Enclave struct {
	keys    *crypto.KeyChain
	engines EngineStarter
	logger  log.Logger
	counter msgCounter
}

func New(keys *crypto.KeyChain, engines EngineStarter, logger log.Logger) *Enclave {
	return &Enclave{
		keys:    keys,
		engines: engines,
		logger:  logger.With("module", "enclave"),
	}
}

// KeyChain exposes the enclave's derived secrets, mainly so callers can
// fetch the io public key for clients.
func (e *Enclave) KeyChain() *crypto.KeyChain {
	return e.keys
}

// Init runs a contract instantiation. On success it returns the contract's
// freshly derived key and the proof committing admin to it; both are meant
// to be stored on-chain next to the contract.
func (e *Enclave) Init(code, envBytes, msg, sigInfoBytes, admin []byte, gasLimit uint64) (*InitSuccess, error) {
	contractCode := types.NewContractCode(code)
	env, err := parseEnv(envBytes)
	if err != nil {
		return nil, err
	}
	sigInfo, err := parseSigInfo(sigInfoBytes)
	if err != nil {
		return nil, err
	}

	senderStr, contractStr, height, funds := env.VerificationParams()
	sender, err := sdk.AccAddressFromBech32(senderStr)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrDeserialization, "sender is not bech32")
	}
	contract, err := sdk.AccAddressFromBech32(contractStr)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrDeserialization, "contract address is not bech32")
	}
	canonicalAdmin := sdk.AccAddress(admin)

	contractKey := e.GenerateContractKey(sender, height, contractCode.Hash(), contract, nil)

	secretMsg, err := SecretMessageFromSlice(msg)
	if err != nil {
		return nil, err
	}
	err = e.VerifyParams(
		sigInfo, sender, contract, funds, secretMsg, nil,
		true, true, types.VerifyInit(), canonicalAdmin, nil,
	)
	if err != nil {
		return nil, err
	}

	decrypted, err := e.Decrypt(secretMsg)
	if err != nil {
		return nil, err
	}
	validated, err := e.ValidateMsg(contract, decrypted, contractCode.Hash(), nil)
	if err != nil {
		return nil, err
	}

	engine, err := e.startEngine(contractCode, contractKey, OperationInit, env, secretMsg, gasLimit)
	if err != nil {
		return nil, err
	}
	codeHash := contractCode.Hash()
	env.SetContractHash(hex.EncodeToString(codeHash[:]))
	e.setRandomInEnv(env, contractKey, engine)

	out, usedGas, err := e.runEngine(env, engine, func(envJSON []byte) ([]byte, error) {
		return engine.Init(envJSON, validated.Msg)
	})
	if err != nil {
		return nil, err
	}

	output, err := e.PostProcessOutput(out, secretMsg, contract, contractCode.Hash(), validated.ReplyParams, false)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("contract instantiated", "contract", contract.String(), "gas", usedGas)
	return &InitSuccess{
		Output:      output,
		ContractKey: contractKey,
		AdminProof:  e.GenerateAdminProof(canonicalAdmin, contractKey),
		UsedGas:     usedGas,
	}, nil
}

// Handle runs an execute, reply, or IBC invocation. The handle type drives
// the whole verification policy: a direct execute is fully verified against
// its transaction, while replies and IBC callbacks are authenticated by
// construction and run with a nulled sender.
func (e *Enclave) Handle(code, envBytes, msg, sigInfoBytes []byte, handleTypeValue uint8, gasLimit uint64) (*HandleSuccess, error) {
	handleType, err := types.ParseHandleType(handleTypeValue)
	if err != nil {
		return nil, err
	}
	contractCode := types.NewContractCode(code)
	env, err := parseEnv(envBytes)
	if err != nil {
		return nil, err
	}
	sigInfo, err := parseSigInfo(sigInfoBytes)
	if err != nil {
		return nil, err
	}

	senderStr, contractStr, _, funds := env.VerificationParams()
	contract, err := sdk.AccAddressFromBech32(contractStr)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrDeserialization, "contract address is not bech32")
	}
	sender, err := sdk.AccAddressFromBech32(senderStr)
	if err != nil && handleType == types.HandleTypeExecute {
		return nil, errorsmod.Wrap(types.ErrDeserialization, "sender is not bech32")
	}

	contractKey, err := e.ValidateContractKey(env, contract, contractCode)
	if err != nil {
		return nil, err
	}

	parsed, err := e.ParseMessage(msg, sigInfo, handleType)
	if err != nil {
		return nil, err
	}

	err = e.VerifyParams(
		sigInfo, sender, contract, funds, parsed.SecretMsg, parsed.DecryptedMsg,
		parsed.ShouldVerifySigInfo, parsed.ShouldVerifyInput,
		types.VerifyHandle(handleType), nil, nil,
	)
	if err != nil {
		return nil, err
	}

	validated := ValidatedMessage{Msg: parsed.DecryptedMsg}
	if parsed.WasEncrypted && !handleType.IsIbc() {
		validated, err = e.ValidateMsg(contract, parsed.DecryptedMsg, contractCode.Hash(), &handleType)
		if err != nil {
			return nil, err
		}
	}

	// only a direct execute carries a signer the contract may trust
	if handleType != types.HandleTypeExecute {
		env.SetMsgSender("")
	}

	engine, err := e.startEngine(contractCode, contractKey, OperationHandle, env, parsed.SecretMsg, gasLimit)
	if err != nil {
		return nil, err
	}
	codeHash := contractCode.Hash()
	env.SetContractHash(hex.EncodeToString(codeHash[:]))
	e.setRandomInEnv(env, contractKey, engine)

	out, usedGas, err := e.runEngine(env, engine, func(envJSON []byte) ([]byte, error) {
		return engine.Handle(envJSON, validated.Msg, handleType)
	})
	if err != nil {
		return nil, err
	}

	var output []byte
	if parsed.ShouldEncryptOutput {
		output, err = e.PostProcessOutput(out, parsed.SecretMsg, contract, contractCode.Hash(), validated.ReplyParams, false)
	} else {
		output, err = e.PostProcessPlaintextOutput(out, contract)
	}
	if err != nil {
		return nil, err
	}

	return &HandleSuccess{Output: output, UsedGas: usedGas}, nil
}

// Migrate rotates a contract to new code. The caller must prove admin
// rights either with the stored admin proof or, for contracts predating
// on-chain admin tracking, the hardcoded override with its zero-proof
// sentinel. On success the contract key is rotated and chained to the
// genesis key.
func (e *Enclave) Migrate(code, envBytes, msg, sigInfoBytes, admin, adminProof []byte, gasLimit uint64) (*MigrateSuccess, error) {
	contractCode := types.NewContractCode(code)
	env, err := parseEnv(envBytes)
	if err != nil {
		return nil, err
	}
	sigInfo, err := parseSigInfo(sigInfoBytes)
	if err != nil {
		return nil, err
	}

	senderStr, contractStr, height, funds := env.VerificationParams()
	sender, err := sdk.AccAddressFromBech32(senderStr)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrDeserialization, "sender is not bech32")
	}
	contract, err := sdk.AccAddressFromBech32(contractStr)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrDeserialization, "contract address is not bech32")
	}
	canonicalAdmin := sdk.AccAddress(admin)

	ogKey, err := env.OgContractKey()
	if err != nil {
		return nil, err
	}

	if !IsHardcodedContractAdmin(contract, canonicalAdmin, adminProof) {
		expected := e.GenerateAdminProof(canonicalAdmin, ogKey)
		if !hmac.Equal(adminProof, expected) {
			return nil, errorsmod.Wrap(types.ErrValidation, "admin proof mismatch")
		}
	}

	secretMsg, err := SecretMessageFromSlice(msg)
	if err != nil {
		return nil, err
	}
	err = e.VerifyParams(
		sigInfo, sender, contract, funds, secretMsg, nil,
		true, true, types.VerifyMigrate(), canonicalAdmin, nil,
	)
	if err != nil {
		return nil, err
	}

	decrypted, err := e.Decrypt(secretMsg)
	if err != nil {
		return nil, err
	}
	validated, err := e.ValidateMsg(contract, decrypted, contractCode.Hash(), nil)
	if err != nil {
		return nil, err
	}

	newKey := e.GenerateContractKey(sender, height, contractCode.Hash(), contract, &ogKey)
	newKeyProof := e.GenerateContractKeyProof(contract, contractCode.Hash(), ogKey, newKey)

	// the engine keeps running under the key the existing state was
	// written with; only randomness switches to the rotated key
	engine, err := e.startEngine(contractCode, ogKey, OperationMigrate, env, secretMsg, gasLimit)
	if err != nil {
		return nil, err
	}
	codeHash := contractCode.Hash()
	env.SetContractHash(hex.EncodeToString(codeHash[:]))
	e.setRandomInEnv(env, newKey, engine)

	out, usedGas, err := e.runEngine(env, engine, func(envJSON []byte) ([]byte, error) {
		return engine.Migrate(envJSON, validated.Msg)
	})
	if err != nil {
		return nil, err
	}

	output, err := e.PostProcessOutput(out, secretMsg, contract, contractCode.Hash(), validated.ReplyParams, false)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("contract migrated", "contract", contract.String(), "gas", usedGas)
	return &MigrateSuccess{
		Output:              output,
		NewContractKey:      newKey,
		NewContractKeyProof: newKeyProof,
		UsedGas:             usedGas,
	}, nil
}

// UpdateAdmin rotates the stored admin proof to a new admin. An empty
// newAdmin clears the admin. Unlike Migrate there is no hardcoded override
// here: only the holder of a valid current proof may hand the contract
// over.
func (e *Enclave) UpdateAdmin(envBytes, sigInfoBytes, currentAdmin, currentAdminProof, newAdmin []byte) (*UpdateAdminSuccess, error) {
	env, err := parseEnv(envBytes)
	if err != nil {
		return nil, err
	}
	sigInfo, err := parseSigInfo(sigInfoBytes)
	if err != nil {
		return nil, err
	}

	senderStr, contractStr, _, funds := env.VerificationParams()
	sender, err := sdk.AccAddressFromBech32(senderStr)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrDeserialization, "sender is not bech32")
	}
	contract, err := sdk.AccAddressFromBech32(contractStr)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrDeserialization, "contract address is not bech32")
	}

	ogKey, err := env.OgContractKey()
	if err != nil {
		return nil, err
	}

	expected := e.GenerateAdminProof(sdk.AccAddress(currentAdmin), ogKey)
	if !hmac.Equal(currentAdminProof, expected) {
		return nil, errorsmod.Wrap(types.ErrValidation, "admin proof mismatch")
	}

	// the call carries no contract payload, only the signed transaction
	err = e.VerifyParams(
		sigInfo, sender, contract, funds, SecretMessage{}, nil,
		true, true, types.VerifyUpdateAdmin(), nil, sdk.AccAddress(newAdmin),
	)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("contract admin updated", "contract", contract.String())
	return &UpdateAdminSuccess{
		AdminProof: e.GenerateAdminProof(sdk.AccAddress(newAdmin), ogKey),
	}, nil
}

// Query runs a read-only invocation. Queries are unsigned; the caller is
// authenticated only by their ability to decrypt the response, and the
// contract sees no sender at all.
func (e *Enclave) Query(code, envBytes, msg []byte, gasLimit uint64) (*QuerySuccess, error) {
	contractCode := types.NewContractCode(code)
	env, err := parseEnv(envBytes)
	if err != nil {
		return nil, err
	}
	contract, err := sdk.AccAddressFromBech32(env.Contract.Address)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrDeserialization, "contract address is not bech32")
	}

	contractKey, err := e.ValidateContractKey(env, contract, contractCode)
	if err != nil {
		return nil, err
	}

	secretMsg, err := SecretMessageFromSlice(msg)
	if err != nil {
		return nil, err
	}
	decrypted, err := e.Decrypt(secretMsg)
	if err != nil {
		return nil, err
	}
	validated, err := e.ValidateMsg(contract, decrypted, contractCode.Hash(), nil)
	if err != nil {
		return nil, err
	}

	env.SetMsgSender("")

	engine, err := e.startEngine(contractCode, contractKey, OperationQuery, env, secretMsg, gasLimit)
	if err != nil {
		return nil, err
	}
	codeHash := contractCode.Hash()
	env.SetContractHash(hex.EncodeToString(codeHash[:]))

	out, usedGas, err := e.runEngine(env, engine, func(envJSON []byte) ([]byte, error) {
		return engine.Query(envJSON, validated.Msg)
	})
	if err != nil {
		return nil, err
	}

	output, err := e.PostProcessOutput(out, secretMsg, contract, contractCode.Hash(), nil, true)
	if err != nil {
		return nil, err
	}

	return &QuerySuccess{Output: output, UsedGas: usedGas}, nil
}

func (e *Enclave) startEngine(
	code types.ContractCode,
	contractKey types.ContractKey,
	op ContractOperation,
	env *types.BaseEnv,
	secretMsg SecretMessage,
	gasLimit uint64,
) (Engine, error) {
	engine, err := e.engines.StartEngine(EngineParams{
		Code:          code,
		ContractKey:   contractKey,
		Operation:     op,
		GasLimit:      gasLimit,
		QueryDepth:    env.QueryDepth,
		Nonce:         secretMsg.Nonce,
		UserPublicKey: secretMsg.UserPublicKey,
		Timestamp:     env.Block.Time,
	})
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrExecution, err.Error())
	}
	return engine, nil
}

// runEngine serializes the environment, invokes the entry point and settles
// gas. The state cache flush happens even though the call may later fail
// output post-processing; by then all state writes are final anyway.
func (e *Enclave) runEngine(
	env *types.BaseEnv,
	engine Engine,
	invoke func(envJSON []byte) ([]byte, error),
) ([]byte, uint64, error) {
	envJSON, err := json.Marshal(env)
	if err != nil {
		return nil, 0, errorsmod.Wrap(types.ErrDeserialization, err.Error())
	}

	out, err := invoke(envJSON)
	usedGas := engine.GasUsed()
	if err != nil {
		return nil, usedGas, errorsmod.Wrap(types.ErrExecution, err.Error())
	}

	refund, err := engine.FlushCache()
	if err != nil {
		return nil, usedGas, errorsmod.Wrap(types.ErrExecution, err.Error())
	}
	if refund > usedGas {
		refund = usedGas
	}
	return out, usedGas - refund, nil
}

func parseEnv(bz []byte) (*types.BaseEnv, error) {
	var env types.BaseEnv
	if err := json.Unmarshal(bz, &env); err != nil {
		return nil, errorsmod.Wrap(types.ErrDeserialization, "malformed env")
	}
	return &env, nil
}

func parseSigInfo(bz []byte) (*types.SigInfo, error) {
	var sigInfo types.SigInfo
	if err := json.Unmarshal(bz, &sigInfo); err != nil {
		return nil, errorsmod.Wrap(types.ErrDeserialization, "malformed sig info")
	}
	return &sigInfo, nil
}
