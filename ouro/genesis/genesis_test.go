package genesis

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestFakeGenesisIsDeterministic(t *testing.T) {
	require := require.New(t)

	a := FakeGenesis(3)
	b := FakeGenesis(3)

	require.Equal(a.Validators, b.Validators)
	require.Equal(a.Hash(), b.Hash())

	// A different validator count produces a different chain.
	c := FakeGenesis(4)
	require.NotEqual(a.Hash(), c.Hash())
}

func TestFakeGenesisKeysMatchValidators(t *testing.T) {
	require := require.New(t)

	g := FakeGenesis(3)
	require.Len(g.Validators, 3)

	for i, addr := range g.Validators {
		key := FakeKey(i)
		require.Equal(crypto.PubkeyToAddress(key.PublicKey), addr)

		acc, ok := g.Accounts[addr]
		require.True(ok)
		require.NotNil(acc.Balance)
		require.True(acc.Balance.Sign() > 0)

		derived, err := acc.PvssKey.Address()
		require.NoError(err)
		require.Equal(addr, derived)
	}
}

func TestSeedBytes(t *testing.T) {
	require := require.New(t)

	g := FakeGenesis(1)
	require.Equal([]byte(Seed), g.SeedBytes())

	g.ExtraSeed = []byte("custom")
	require.Equal([]byte("custom"), g.SeedBytes())
}
