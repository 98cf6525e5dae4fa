package ouro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDerivedParams(t *testing.T) {
	require := require.New(t)

	r := MainNetRules()
	// slotSecurityParam = 2k, epochSlots = 10k, matching the cardano
	// derivation.
	require.Equal(2*r.SecurityParameterK, r.SlotSecurityParam())
	require.Equal(10*r.SecurityParameterK, r.EpochSlots())
}

func TestValidate(t *testing.T) {
	require := require.New(t)

	require.NoError(MainNetRules().Validate())
	require.NoError(TestNetRules().Validate())
	require.NoError(FakeNetRules().Validate())

	r := FakeNetRules()
	r.SlotDuration = 0
	require.Equal(ErrZeroSlotDuration, r.Validate())

	r = FakeNetRules()
	r.SecurityParameterK = 0
	require.Equal(ErrZeroSecurityK, r.Validate())
}

func TestNetworkIDsAreDistinct(t *testing.T) {
	ids := map[uint64]string{}
	for _, r := range []Rules{MainNetRules(), TestNetRules(), FakeNetRules()} {
		if prev, ok := ids[r.NetworkID]; ok {
			t.Fatalf("networks %q and %q share ID %#x", prev, r.Name, r.NetworkID)
		}
		ids[r.NetworkID] = r.Name
	}
}

func TestSlotAt(t *testing.T) {
	require := require.New(t)

	r := FakeNetRules()
	r.NetworkWideStartTime = 1000

	// Before the chain start every time maps to slot 0.
	require.Equal(uint64(0), r.SlotAt(time.Unix(999, 0)))
	require.Equal(uint64(0), r.SlotAt(time.Unix(1000, 0)))

	// FakeNet slots are 1 second long.
	require.Equal(uint64(5), r.SlotAt(time.Unix(1005, 0)))

	remaining := r.RemainingSlotDuration(time.Unix(1005, 0))
	require.Equal(time.Second, remaining)
}
