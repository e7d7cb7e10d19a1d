package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	kmultisig "github.com/cosmos/cosmos-sdk/crypto/keys/multisig"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/cosmos/gogoproto/proto"
	dsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	decdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"
)

const (
	typeURLSecp256k1PubKey           = "/cosmos.crypto.secp256k1.PubKey"
	typeURLMultisigLegacyAminoPubKey = "/cosmos.crypto.multisig.LegacyAminoPubKey"
)

// CosmosPubKey abstracts over the two public key flavours a transaction
// signer may use: a plain secp256k1 key or a legacy-amino threshold multisig
// of such keys.
type CosmosPubKey interface {
	// Address is the account address derived from this key.
	Address() sdk.AccAddress
	// VerifyBytes checks sig over bytes under the given sign-mode
	// canonicalization. modeInfo carries the multisig bit array when needed.
	VerifyBytes(bytes, sig []byte, mode SignMode, modeInfo []byte) error
}

// PubKeyFromAny parses a CosmosPubKey out of a protobuf Any, recursing into
// multisig member keys.
func PubKeyFromAny(any *codectypes.Any) (CosmosPubKey, error) {
	if any == nil {
		return nil, errorsmod.Wrap(ErrDeserialization, "signer has no public key")
	}
	switch any.TypeUrl {
	case typeURLSecp256k1PubKey:
		var pk secp256k1.PubKey
		if err := proto.Unmarshal(any.Value, &pk); err != nil {
			return nil, errorsmod.Wrap(ErrDeserialization, "malformed secp256k1 public key")
		}
		return Secp256k1PubKey{key: &pk}, nil
	case typeURLMultisigLegacyAminoPubKey:
		var mk kmultisig.LegacyAminoPubKey
		if err := proto.Unmarshal(any.Value, &mk); err != nil {
			return nil, errorsmod.Wrap(ErrDeserialization, "malformed multisig public key")
		}
		members := make([]CosmosPubKey, len(mk.PubKeys))
		for i, member := range mk.PubKeys {
			sub, err := PubKeyFromAny(member)
			if err != nil {
				return nil, err
			}
			members[i] = sub
		}
		return MultisigThresholdPubKey{raw: &mk, members: members}, nil
	default:
		return nil, errorsmod.Wrapf(ErrDeserialization, "public key of unsupported type %q", any.TypeUrl)
	}
}

// PubKeyFromProtoBytes parses a CosmosPubKey from serialized Any bytes, the
// form sig_info carries it in.
func PubKeyFromProtoBytes(bz []byte) (CosmosPubKey, error) {
	var any codectypes.Any
	if err := proto.Unmarshal(bz, &any); err != nil {
		return nil, errorsmod.Wrap(ErrDeserialization, "malformed public key envelope")
	}
	return PubKeyFromAny(&any)
}

// Secp256k1PubKey wraps the SDK secp256k1 key with per-sign-mode
// verification.
type Secp256k1PubKey struct {
	key *secp256k1.PubKey
}

func NewSecp256k1PubKey(key *secp256k1.PubKey) Secp256k1PubKey {
	return Secp256k1PubKey{key: key}
}

func (p Secp256k1PubKey) Address() sdk.AccAddress {
	return sdk.AccAddress(p.key.Address())
}

func (p Secp256k1PubKey) VerifyBytes(bytes, sig []byte, mode SignMode, _ []byte) error {
	switch mode {
	case SignModeDirect, SignModeLegacyAminoJSON, SignModeTextual:
		// each mode fixes its own canonicalization of `bytes` upstream; the
		// signature itself is always secp256k1 over sha256(bytes)
		if !p.key.VerifySignature(bytes, sig) {
			return errorsmod.Wrap(ErrValidation, "signature mismatch")
		}
		return nil
	case SignModeEip191:
		if !verifyEip191(p.key.Key, bytes, sig) {
			return errorsmod.Wrap(ErrValidation, "eip-191 signature mismatch")
		}
		return nil
	default:
		return errorsmod.Wrapf(ErrValidation, "cannot verify signature in mode %q", mode)
	}
}

// verifyEip191 verifies sig over the Ethereum personal-message
// canonicalization of msg: keccak256("\x19Ethereum Signed Message:\n" + len +
// msg), with a raw 64-byte r||s signature.
func verifyEip191(pubKey, msg, sig []byte) bool {
	if len(sig) != 64 {
		return false
	}
	pk, err := dsecp.ParsePubKey(pubKey)
	if err != nil {
		return false
	}

	h := sha3.NewLegacyKeccak256()
	fmt.Fprintf(h, "\x19Ethereum Signed Message:\n%d", len(msg))
	h.Write(msg)
	digest := h.Sum(nil)

	var r, s dsecp.ModNScalar
	if overflow := r.SetByteSlice(sig[:32]); overflow {
		return false
	}
	if overflow := s.SetByteSlice(sig[32:]); overflow {
		return false
	}
	return decdsa.NewSignature(&r, &s).Verify(digest, pk)
}

// MultisigThresholdPubKey is a legacy-amino threshold multisig. Verification
// succeeds when at least Threshold member signatures verify; it never
// requires all members to have signed.
type MultisigThresholdPubKey struct {
	raw     *kmultisig.LegacyAminoPubKey
	members []CosmosPubKey
}

func (p MultisigThresholdPubKey) Address() sdk.AccAddress {
	return sdk.AccAddress(p.raw.Address())
}

func (p MultisigThresholdPubKey) VerifyBytes(bytes, sig []byte, mode SignMode, modeInfo []byte) error {
	var multiSig cryptotypes.MultiSignature
	if err := proto.Unmarshal(sig, &multiSig); err != nil {
		return errorsmod.Wrap(ErrDeserialization, "malformed multisig signature")
	}

	var mi txtypes.ModeInfo
	if err := proto.Unmarshal(modeInfo, &mi); err != nil {
		return errorsmod.Wrap(ErrDeserialization, "malformed multisig mode info")
	}
	multi := mi.GetMulti()
	if multi == nil || multi.Bitarray == nil {
		return errorsmod.Wrap(ErrValidation, "multisig signature without bit array")
	}
	if multi.Bitarray.Count() != len(p.members) {
		return errorsmod.Wrapf(ErrValidation,
			"multisig bit array length %d does not match %d member keys",
			multi.Bitarray.Count(), len(p.members))
	}

	verified := uint32(0)
	sigIndex := 0
	for i, member := range p.members {
		if !multi.Bitarray.GetIndex(i) {
			continue
		}
		if sigIndex >= len(multiSig.Signatures) {
			return errorsmod.Wrap(ErrValidation, "multisig carries fewer signatures than its bit array declares")
		}
		if err := member.VerifyBytes(bytes, multiSig.Signatures[sigIndex], mode, nil); err == nil {
			verified++
		}
		sigIndex++
	}

	if verified < p.raw.Threshold {
		return errorsmod.Wrapf(ErrValidation,
			"multisig verified %d of required %d signatures", verified, p.raw.Threshold)
	}
	return nil
}
