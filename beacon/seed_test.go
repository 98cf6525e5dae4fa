package beacon

import (
	"testing"

	"github.com/Fantom-foundation/lachesis-base/hash"
	"github.com/stretchr/testify/require"

	"github.com/ouroboros-network/go-ouroboros/inter"
)

func TestSharedSeedNoReveals(t *testing.T) {
	require := require.New(t)
	store, holders := fakeEnv(t, 3)

	seed, n := SharedSeed(store, 1, holders.Addresses())
	require.Equal(0, n)
	require.Equal(hash.Hash{}, seed)
}

func TestSharedSeedFold(t *testing.T) {
	require := require.New(t)
	store, holders := fakeEnv(t, 3)

	addrs := holders.Addresses()
	store.SetRevealRecord(1, addrs[0], inter.RevealRecord{Secret: []byte("s0")})
	store.SetRevealRecord(1, addrs[1], inter.RevealRecord{Secret: []byte("s1")})
	// addrs[2] never reveals.

	seed, n := SharedSeed(store, 1, addrs)
	require.Equal(2, n)

	// The fold is XOR over sha256 digests of the secrets.
	var want hash.Hash
	for _, s := range [][]byte{[]byte("s0"), []byte("s1")} {
		d := hash.Of(s)
		for i := range want {
			want[i] ^= d[i]
		}
	}
	require.Equal(want, seed)

	// XOR is order-independent: reversing the fold order changes nothing.
	seed2, _ := SharedSeed(store, 1, []inter.StakeholderID{addrs[1], addrs[0], addrs[2]})
	require.Equal(seed, seed2)
}

func TestSharedSeedIsPerEpoch(t *testing.T) {
	require := require.New(t)
	store, holders := fakeEnv(t, 2)

	addrs := holders.Addresses()
	store.SetRevealRecord(1, addrs[0], inter.RevealRecord{Secret: []byte("epoch1")})
	store.SetRevealRecord(2, addrs[0], inter.RevealRecord{Secret: []byte("epoch2")})

	seed1, _ := SharedSeed(store, 1, addrs)
	seed2, _ := SharedSeed(store, 2, addrs)
	require.NotEqual(seed1, seed2)
}
