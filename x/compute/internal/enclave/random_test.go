package enclave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/bytetigers/SecretNetwork/x/compute/internal/enclave/types"
)

func TestMsgCounterResetsPerHeight(t *testing.T) {
	var c msgCounter

	assert.Equal(t, uint64(0), c.Next(100))
	assert.Equal(t, uint64(1), c.Next(100))
	assert.Equal(t, uint64(2), c.Next(100))

	// a new block starts counting from zero again
	assert.Equal(t, uint64(0), c.Next(101))
	assert.Equal(t, uint64(1), c.Next(101))

	// heights are not required to be monotonic, only different
	assert.Equal(t, uint64(0), c.Next(100))
}

func TestDeriveRandom(t *testing.T) {
	var key, otherKey types.ContractKey
	copy(key[:], []byte("first contract key first contract key first contract key first!"))
	copy(otherKey[:], []byte("other contract key other contract key other contract key other!"))
	beacon := types.Binary("block randomness beacon value 32")

	base := deriveRandom(beacon, key, 100, 0)
	require.Len(t, base, 32)
	assert.Equal(t, base, deriveRandom(beacon, key, 100, 0), "same inputs derive the same value")

	specs := map[string]types.Binary{
		"different counter": deriveRandom(beacon, key, 100, 1),
		"different height":  deriveRandom(beacon, key, 101, 0),
		"different key":     deriveRandom(beacon, otherKey, 100, 0),
		"different beacon":  deriveRandom(types.Binary("another beacon"), key, 100, 0),
	}
	for name, got := range specs {
		t.Run(name, func(t *testing.T) {
			assert.NotEqual(t, base, got)
		})
	}
}

func TestSetRandomInEnv(t *testing.T) {
	var key types.ContractKey
	copy(key[:], []byte("first contract key first contract key first contract key first!"))
	beacon := types.Binary("block randomness beacon value 32")

	t.Run("engine without the capability sees no randomness", func(t *testing.T) {
		e := newTestEnclave(t, &fakeEngine{})
		env := &types.BaseEnv{}
		env.Block.Height = 100
		env.Block.Random = beacon

		e.setRandomInEnv(env, key, &fakeEngine{})
		assert.Nil(t, env.Block.Random)
	})

	t.Run("raw beacon never reaches the contract", func(t *testing.T) {
		engine := &fakeEngine{features: []ContractFeature{FeatureRandom}}
		e := newTestEnclave(t, engine)

		first := &types.BaseEnv{}
		first.Block.Height = 100
		first.Block.Random = beacon
		e.setRandomInEnv(first, key, engine)
		require.Len(t, []byte(first.Block.Random), 32)
		assert.NotEqual(t, beacon, first.Block.Random)

		// a second call in the same block derives a fresh value
		second := &types.BaseEnv{}
		second.Block.Height = 100
		second.Block.Random = beacon
		e.setRandomInEnv(second, key, engine)
		assert.NotEqual(t, first.Block.Random, second.Block.Random)
	})

	t.Run("every call consumes a counter position", func(t *testing.T) {
		withRandom := &fakeEngine{features: []ContractFeature{FeatureRandom}}
		e := newTestEnclave(t, withRandom)

		// a call without the capability still advances the counter
		plain := &types.BaseEnv{}
		plain.Block.Height = 100
		plain.Block.Random = beacon
		e.setRandomInEnv(plain, key, &fakeEngine{})
		assert.Nil(t, plain.Block.Random)

		env := &types.BaseEnv{}
		env.Block.Height = 100
		env.Block.Random = beacon
		e.setRandomInEnv(env, key, withRandom)
		assert.Equal(t, deriveRandom(beacon, key, 100, 1), env.Block.Random)
	})
}
