// Slot arithmetic and the PVSS stage machine.
//
// Each epoch runs the PVSS process through three stages. A stakeholder
// broadcasts its commitments and encrypted shares at the start of the epoch
// (Commit), waits out the stabilization window (CommitBroadcast), and
// discloses its secret once 4k slots have passed (Reveal). At the first slot
// of the next epoch the machine wraps back to Commit.
//
// The recover stage for offline stakeholders is intentionally absent.
package ouro

import (
	"time"

	"github.com/ouroboros-network/go-ouroboros/inter"
)

// Stage is a stakeholder's position in the per-epoch PVSS process.
type Stage int

const (
	// StageCommit: the commitments and shares for this epoch are not yet
	// broadcast.
	StageCommit Stage = iota
	// StageCommitBroadcast: commit data is out; waiting for the reveal
	// cutoff.
	StageCommitBroadcast
	// StageReveal: the secret is out; waiting for the epoch boundary.
	StageReveal
)

func (s Stage) String() string {
	switch s {
	case StageCommit:
		return "commit"
	case StageCommitBroadcast:
		return "commit-broadcast"
	case StageReveal:
		return "reveal"
	}
	return "unknown"
}

// EpochOfSlot returns the epoch the given slot belongs to.
func (r Rules) EpochOfSlot(slot uint64) inter.Epoch {
	return inter.Epoch(slot / r.EpochSlots())
}

// SlotInEpoch returns the slot's offset within its epoch.
func (r Rules) SlotInEpoch(slot uint64) uint64 {
	return slot % r.EpochSlots()
}

// FirstSlotInEpoch reports whether the slot opens a new epoch.
func (r Rules) FirstSlotInEpoch(slot uint64) bool {
	return r.SlotInEpoch(slot) == 0
}

// AfterRevealCutoff reports whether the slot is past the 4k-slot point of its
// epoch, after which commit data is considered stable and secrets may be
// revealed.
func (r Rules) AfterRevealCutoff(slot uint64) bool {
	return r.SlotInEpoch(slot) > 4*r.SecurityParameterK
}

// NextStage advances the stage machine for the given slot. The transitions
// mirror the engine's step handler: Commit moves on as soon as the commit
// broadcast is done, CommitBroadcast holds until the reveal cutoff, and
// Reveal holds until the epoch boundary.
func (r Rules) NextStage(cur Stage, slot uint64) Stage {
	switch {
	case cur == StageCommit:
		return StageCommitBroadcast
	case cur == StageCommitBroadcast && r.AfterRevealCutoff(slot):
		return StageReveal
	case cur == StageReveal && r.FirstSlotInEpoch(slot):
		return StageCommit
	}
	return cur
}

// SlotAt returns the slot number at the given wall-clock time. Before the
// network-wide start time the slot is 0.
func (r Rules) SlotAt(t time.Time) uint64 {
	start := int64(r.NetworkWideStartTime)
	if t.Unix() <= start {
		return 0
	}
	elapsed := time.Duration(t.Unix()-start) * time.Second
	return uint64(elapsed / r.SlotDuration)
}

// RemainingSlotDuration returns the time left until the next slot boundary.
func (r Rules) RemainingSlotDuration(t time.Time) time.Duration {
	start := time.Unix(int64(r.NetworkWideStartTime), 0)
	if start.After(t) {
		return start.Sub(t)
	}
	slotEnd := start.Add(time.Duration(r.SlotAt(t)+1) * r.SlotDuration)
	if slotEnd.After(t) {
		return slotEnd.Sub(t)
	}
	return 0
}
