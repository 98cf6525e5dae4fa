// Record accessors. Every operation addresses exactly one (epoch,
// stakeholder) key; a write replaces the prior record for that key in full.
//
// Deliberately permissive, matching the contract this store descends from:
// epochs are not required to be monotonic across a stakeholder's writes, and
// a reveal record may be written before (or without) a commit record for the
// same key. Content is never validated or interpreted.
package certstore

import (
	"github.com/Fantom-foundation/lachesis-base/kvdb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/ouroboros-network/go-ouroboros/inter"
)

// SetCommitRecord upserts the commit-phase record at (epoch, stakeholder).
// Both fields update together; there is no partial-field write.
func (s *Store) SetCommitRecord(epoch inter.Epoch, stakeholder common.Address, rec inter.CommitRecord) {
	s.set(s.table.Commits, certKey(epoch, stakeholder), &rec)
}

// GetCommitRecord returns the commit-phase record at (epoch, stakeholder).
// The second return is false if no record was ever written there.
func (s *Store) GetCommitRecord(epoch inter.Epoch, stakeholder common.Address) (inter.CommitRecord, bool) {
	rec := inter.CommitRecord{}
	ok := s.get(s.table.Commits, certKey(epoch, stakeholder), &rec)
	return rec, ok
}

// SetRevealRecord upserts the reveal-phase record at (epoch, stakeholder).
func (s *Store) SetRevealRecord(epoch inter.Epoch, stakeholder common.Address, rec inter.RevealRecord) {
	s.set(s.table.Reveals, certKey(epoch, stakeholder), &rec)
}

// GetRevealRecord returns the reveal-phase record at (epoch, stakeholder).
func (s *Store) GetRevealRecord(epoch inter.Epoch, stakeholder common.Address) (inter.RevealRecord, bool) {
	rec := inter.RevealRecord{}
	ok := s.get(s.table.Reveals, certKey(epoch, stakeholder), &rec)
	return rec, ok
}

// GetCommitmentsAndShares returns the stored commitments and shares, or empty
// byte strings if absent. Absence is not a distinct error: an empty result
// may equally be a legitimately empty write.
func (s *Store) GetCommitmentsAndShares(epoch inter.Epoch, stakeholder common.Address) ([]byte, []byte) {
	rec, _ := s.GetCommitRecord(epoch, stakeholder)
	return rec.Commitments, rec.Shares
}

// GetSecret returns the stored secret, or an empty byte string if absent.
func (s *Store) GetSecret(epoch inter.Epoch, stakeholder common.Address) []byte {
	rec, _ := s.GetRevealRecord(epoch, stakeholder)
	return rec.Secret
}

func (s *Store) set(t kvdb.Store, key []byte, rec interface{}) {
	buf, err := rlp.EncodeToBytes(rec)
	if err != nil {
		s.Log.WithError(err).Panic("Failed to encode record")
	}
	if err := t.Put(key, buf); err != nil {
		s.Log.WithError(err).Panic("Failed to put key-value")
	}
}

func (s *Store) get(t kvdb.Store, key []byte, rec interface{}) bool {
	buf, err := t.Get(key)
	if err != nil {
		s.Log.WithError(err).Panic("Failed to get key-value")
	}
	if buf == nil {
		return false
	}
	if err := rlp.DecodeBytes(buf, rec); err != nil {
		s.Log.WithError(err).Panic("Failed to decode record")
	}
	return true
}
