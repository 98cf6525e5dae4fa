// Package inter defines the core data structures shared between the Ouroboros
// consensus engine and the certificate store. This file contains the base
// scalar types: epochs, timestamps and stakeholder identities.
//
// Key concepts:
//   - Epoch: externally-numbered protocol round; the store treats it as opaque
//   - StakeholderID: a stakeholder's stable on-chain identity (its address)
//   - Timestamp: unix-nano wall time used for slot arithmetic
package inter

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Epoch is a discrete round of the leader-election protocol. Epoch numbers
// are assigned by the engine's slot scheduler and never generated, parsed or
// validated by the certificate store.
//
// Note: this is deliberately a uint64 counter of its own, not the uint32
// idx.Epoch of lachesis-base, so epoch numbers are never narrowed.
type Epoch uint64

// StakeholderID identifies a stakeholder (validator) by its address.
// Write operations on the certificate store are keyed by the caller's
// authenticated StakeholderID, never by a free-form argument.
type StakeholderID = common.Address

// Timestamp is a UNIX nanoseconds timestamp.
type Timestamp uint64

// Time decodes the timestamp into a standard time.Time.
func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t/1e9), int64(t%1e9))
}

// FromTime converts a standard time.Time into a Timestamp.
func FromTime(t time.Time) Timestamp {
	return Timestamp(t.UnixNano())
}
