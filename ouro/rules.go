// Package ouro defines the network rules for an Ouroboros deployment.
//
// This package provides:
//   - Network identification constants (main, test, fake networks)
//   - Slot and epoch timing parameters
//   - The security parameter k and the slot/epoch values derived from it
//   - The PVSS stage machine driving commit/reveal writes
//
// The Rules type is the central configuration structure: every
// consensus-critical parameter of a deployment lives here. Epoch and slot
// numbers are produced from these rules by the engine's scheduler; the
// certificate store itself consumes them as opaque values.
package ouro

import (
	"encoding/json"
	"errors"
	"time"
)

// Network identification constants.
const (
	// MainNetworkID is the chain ID of the Ouroboros mainnet.
	MainNetworkID uint64 = 0x96

	// TestNetworkID is the chain ID of the public testnet.
	TestNetworkID uint64 = 0x962

	// FakeNetworkID is the chain ID of local fake networks used in testing.
	FakeNetworkID uint64 = 0x963
)

const (
	// MainNetSecurityParameterK is the mainnet security parameter. A
	// transaction is stable once it is more than k blocks deep.
	MainNetSecurityParameterK uint64 = 2160

	// FakeNetSecurityParameterK keeps fake-net epochs short so tests cross
	// epoch boundaries quickly.
	FakeNetSecurityParameterK uint64 = 2
)

var (
	ErrZeroSlotDuration = errors.New("slot duration must be positive")
	ErrZeroSecurityK    = errors.New("security parameter k must be positive")
)

// Rules describes the consensus-critical parameters of a network.
type Rules struct {
	// Name is the human-readable network name.
	Name string
	// NetworkID identifies the chain.
	NetworkID uint64

	// SlotDuration is the wall-clock length of one slot. Equivalent to the
	// slot duration of the Ouroboros paper.
	SlotDuration time.Duration

	// SecurityParameterK is the security parameter k. The slot security
	// parameter (2k) and the number of slots per epoch (10k) are derived
	// from it, matching the cardano derivation.
	SecurityParameterK uint64

	// NetworkWideStartTime is the unix time (seconds) the chain began.
	// Zero means slots are counted from the unix epoch.
	NetworkWideStartTime uint64
}

// SlotSecurityParam returns the security parameter expressed in slots (2k).
func (r Rules) SlotSecurityParam() uint64 {
	return 2 * r.SecurityParameterK
}

// EpochSlots returns the number of slots in one epoch (10k).
func (r Rules) EpochSlots() uint64 {
	return 10 * r.SecurityParameterK
}

// MainNetRules returns the rules of the Ouroboros mainnet.
func MainNetRules() Rules {
	return Rules{
		Name:               "main",
		NetworkID:          MainNetworkID,
		SlotDuration:       20 * time.Second,
		SecurityParameterK: MainNetSecurityParameterK,
	}
}

// TestNetRules returns the rules of the public testnet.
func TestNetRules() Rules {
	return Rules{
		Name:               "test",
		NetworkID:          TestNetworkID,
		SlotDuration:       4 * time.Second,
		SecurityParameterK: MainNetSecurityParameterK,
	}
}

// FakeNetRules returns rules for a local fake network.
func FakeNetRules() Rules {
	return Rules{
		Name:               "fake",
		NetworkID:          FakeNetworkID,
		SlotDuration:       time.Second,
		SecurityParameterK: FakeNetSecurityParameterK,
	}
}

// Validate checks the rules for internal consistency.
func (r Rules) Validate() error {
	if r.SlotDuration <= 0 {
		return ErrZeroSlotDuration
	}
	if r.SecurityParameterK == 0 {
		return ErrZeroSecurityK
	}
	return nil
}

// Copy returns a deep copy of the rules.
func (r Rules) Copy() Rules {
	cp := r
	return cp
}

// String returns the JSON representation of the rules.
func (r Rules) String() string {
	b, _ := json.Marshal(&r)
	return string(b)
}
