package enclave

import (
	"encoding/binary"
	"sync"

	"github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/crypto"
	types "github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/types"
)

// msgCounter numbers the calls within a block so that two identical calls
// in the same block still see distinct randomness. The counter resets on
// the first call of each new height.
type msgCounter struct {
	mu      sync.Mutex
	height  uint64
	counter uint64
}

// Next returns the call's position within the block and advances the
// counter.
func (c *msgCounter) Next(height uint64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if height != c.height {
		c.height = height
		c.counter = 0
	}
	n := c.counter
	c.counter++
	return n
}

// deriveRandom stretches the block's randomness beacon into a per-call
// value bound to the contract key, the height and the call's position in
// the block.
func deriveRandom(blockRandom types.Binary, contractKey types.ContractKey, height, counter uint64) types.Binary {
	var heightBytes, counterBytes [8]byte
	binary.BigEndian.PutUint64(heightBytes[:], height)
	binary.BigEndian.PutUint64(counterBytes[:], counter)

	out := crypto.HmacSha256(contractKey[:], []byte("contract_random"), blockRandom, heightBytes[:], counterBytes[:])
	return out[:]
}

// setRandomInEnv injects per-call randomness for contracts that declared
// the capability and clears the beacon for everyone else, so contracts
// never observe the raw block value. The counter advances on every call
// regardless of capability, so a contract's position in the block does not
// depend on what ran before it.
func (e *Enclave) setRandomInEnv(env *types.BaseEnv, contractKey types.ContractKey, engine Engine) {
	counter := e.counter.Next(env.Block.Height)
	if !engineSupports(engine, FeatureRandom) {
		env.SetRandom(nil)
		return
	}
	env.SetRandom(deriveRandom(env.Block.Random, contractKey, env.Block.Height, counter))
}
