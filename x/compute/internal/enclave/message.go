package enclave

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"

	"github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/crypto"
	types "github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/types"
)

// secretMessageHeaderSize is the nonce plus the user's ephemeral x25519
// public key. Every encrypted message starts with it.
const secretMessageHeaderSize = 64

// SecretMessage is the wire format of an encrypted contract message:
// a 32-byte nonce, the user's 32-byte x25519 public key, and the
// AEAD ciphertext.
type SecretMessage struct {
	Nonce         [32]byte
	UserPublicKey [32]byte
	Ciphertext    []byte
}

// SecretMessageFromSlice parses the message framing. The ciphertext may be
// empty, the header may not.
func SecretMessageFromSlice(data []byte) (SecretMessage, error) {
	var m SecretMessage
	if len(data) < secretMessageHeaderSize {
		return m, errorsmod.Wrapf(
			types.ErrDeserialization, "encrypted message too short: %d bytes", len(data),
		)
	}
	copy(m.Nonce[:], data[:32])
	copy(m.UserPublicKey[:], data[32:64])
	m.Ciphertext = data[64:]
	return m, nil
}

// ToSlice re-serializes the message into its wire framing.
func (m SecretMessage) ToSlice() []byte {
	out := make([]byte, 0, secretMessageHeaderSize+len(m.Ciphertext))
	out = append(out, m.Nonce[:]...)
	out = append(out, m.UserPublicKey[:]...)
	out = append(out, m.Ciphertext...)
	return out
}

// Decrypt opens the ciphertext with the channel key derived from the
// message header.
func (e *Enclave) Decrypt(m SecretMessage) ([]byte, error) {
	txKey, err := e.keys.TxKey(m.Nonce, m.UserPublicKey)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrDecryption, err.Error())
	}
	plaintext, err := crypto.Open(txKey, m.Nonce, m.Ciphertext)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrDecryption, err.Error())
	}
	return plaintext, nil
}

// Encrypt seals plaintext onto the channel of m, so the user who sent m can
// open the result.
func (e *Enclave) Encrypt(m SecretMessage, plaintext []byte) ([]byte, error) {
	txKey, err := e.keys.TxKey(m.Nonce, m.UserPublicKey)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrEncryption, err.Error())
	}
	ciphertext, err := crypto.Seal(txKey, m.Nonce, plaintext)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrEncryption, err.Error())
	}
	return ciphertext, nil
}

// ParsedMessage is the outcome of classifying and (when applicable)
// decrypting an incoming handle message. The Should* flags drive the rest
// of the pipeline.
type ParsedMessage struct {
	ShouldVerifySigInfo bool
	ShouldVerifyInput   bool
	WasEncrypted        bool
	ShouldEncryptOutput bool

	// SecretMsg carries the channel header used for output encryption.
	// Only meaningful when WasEncrypted is set.
	SecretMsg    SecretMessage
	DecryptedMsg []byte
}

// ibcPacket is the subset of the IBC packet shape the parser needs.
type ibcPacket struct {
	Data     types.Binary    `json:"data"`
	Src      json.RawMessage `json:"src,omitempty"`
	Dest     json.RawMessage `json:"dest,omitempty"`
	Sequence uint64          `json:"sequence"`
	Timeout  json.RawMessage `json:"timeout,omitempty"`
}

type ibcPacketReceiveMsg struct {
	Packet  ibcPacket `json:"packet"`
	Relayer string    `json:"relayer,omitempty"`
}

// ParseMessage classifies msg for its handle type. Execute messages must be
// encrypted; replies are encrypted unless the transaction carries the
// plaintext sign-mode marker; IBC packet data is decrypted in place when it
// turns out to be an encrypted payload, and everything else passes through
// as plaintext.
func (e *Enclave) ParseMessage(msg []byte, sigInfo *types.SigInfo, handleType types.HandleType) (ParsedMessage, error) {
	switch handleType {
	case types.HandleTypeExecute:
		secretMsg, err := SecretMessageFromSlice(msg)
		if err != nil {
			return ParsedMessage{}, err
		}
		decrypted, err := e.Decrypt(secretMsg)
		if err != nil {
			return ParsedMessage{}, err
		}
		return ParsedMessage{
			ShouldVerifySigInfo: true,
			ShouldVerifyInput:   true,
			WasEncrypted:        true,
			ShouldEncryptOutput: true,
			SecretMsg:           secretMsg,
			DecryptedMsg:        decrypted,
		}, nil

	case types.HandleTypeReply:
		// The dispatcher marks replies to plaintext sub-messages with
		// the unspecified sign mode.
		if sigInfo.SignMode == types.SignModeUnspecified {
			return ParsedMessage{DecryptedMsg: msg}, nil
		}
		secretMsg, err := SecretMessageFromSlice(msg)
		if err != nil {
			return ParsedMessage{}, err
		}
		decrypted, err := e.Decrypt(secretMsg)
		if err != nil {
			return ParsedMessage{}, err
		}
		return ParsedMessage{
			WasEncrypted:        true,
			ShouldEncryptOutput: true,
			SecretMsg:           secretMsg,
			DecryptedMsg:        decrypted,
		}, nil

	case types.HandleTypeIbcPacketReceive, types.HandleTypeIbcWasmHooksIncomingTransfer:
		return e.parsePacketReceive(msg, handleType)

	case types.HandleTypeIbcChannelOpen, types.HandleTypeIbcChannelConnect, types.HandleTypeIbcChannelClose:
		return ParsedMessage{DecryptedMsg: msg}, nil

	case types.HandleTypeIbcPacketAck, types.HandleTypeIbcPacketTimeout,
		types.HandleTypeIbcWasmHooksOutgoingTransferAck, types.HandleTypeIbcWasmHooksOutgoingTransferTimeout:
		return ParsedMessage{ShouldVerifyInput: true, DecryptedMsg: msg}, nil
	}

	return ParsedMessage{}, errorsmod.Wrapf(types.ErrUnsupportedHandleType, "%d", uint8(handleType))
}

// parsePacketReceive inspects the packet data of an incoming IBC packet. A
// payload carrying the encrypted-message framing is decrypted in place and
// its channel is reused for the acknowledgement; anything else stays
// plaintext. Wasm-hook transfers always carry plaintext packet data.
func (e *Enclave) parsePacketReceive(msg []byte, handleType types.HandleType) (ParsedMessage, error) {
	if handleType == types.HandleTypeIbcWasmHooksIncomingTransfer {
		return ParsedMessage{ShouldVerifyInput: true, DecryptedMsg: msg}, nil
	}

	var receive ibcPacketReceiveMsg
	if err := json.Unmarshal(msg, &receive); err != nil {
		return ParsedMessage{}, errorsmod.Wrap(types.ErrDeserialization, err.Error())
	}

	secretMsg, err := SecretMessageFromSlice(receive.Packet.Data)
	if err != nil {
		// short packet data means a plaintext packet, not an error
		return ParsedMessage{ShouldVerifyInput: true, DecryptedMsg: msg}, nil
	}
	decryptedData, err := e.Decrypt(secretMsg)
	if err != nil {
		return ParsedMessage{ShouldVerifyInput: true, DecryptedMsg: msg}, nil
	}

	receive.Packet.Data = decryptedData
	decryptedMsg, err := json.Marshal(receive)
	if err != nil {
		return ParsedMessage{}, errorsmod.Wrap(types.ErrDeserialization, err.Error())
	}
	return ParsedMessage{
		ShouldVerifyInput:   true,
		WasEncrypted:        true,
		ShouldEncryptOutput: true,
		SecretMsg:           secretMsg,
		DecryptedMsg:        decryptedMsg,
	}, nil
}
