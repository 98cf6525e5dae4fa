// Package beacon is the boundary layer between the consensus engine and the
// certificate store.
//
// Write operations on the store are implicitly keyed by the caller's
// authenticated identity: a Session is bound to one stakeholder at
// construction time, validated against the fixed stakeholder registry, and
// can only write records at its own (epoch, identity) keys. There is no
// operation to write on behalf of another stakeholder. Reads accept an
// arbitrary stakeholder and are unrestricted.
package beacon

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/ouroboros-network/go-ouroboros/certstore"
	"github.com/ouroboros-network/go-ouroboros/inter"
	"github.com/ouroboros-network/go-ouroboros/valset"
)

// ErrNotStakeholder is returned when a session identity is not in the
// stakeholder registry.
var ErrNotStakeholder = errors.New("identity is not a registered stakeholder")

// Session is one stakeholder's authenticated handle on the certificate store.
type Session struct {
	store   *certstore.Store
	holders *valset.Stakeholders
	id      common.Address

	Log *logrus.Entry
}

// NewSession binds the store to the given authenticated identity. The
// identity is checked against the registry here, once, so the store itself
// never sees unchecked input.
func NewSession(store *certstore.Store, holders *valset.Stakeholders, id common.Address) (*Session, error) {
	if !holders.Contains(id) {
		return nil, ErrNotStakeholder
	}
	return &Session{
		store:   store,
		holders: holders,
		id:      id,
		Log:     logrus.WithField("module", "beacon").WithField("id", id.Hex()),
	}, nil
}

// ID returns the session's stakeholder identity.
func (s *Session) ID() common.Address {
	return s.id
}

// Stakeholders returns the registry the session validates against.
func (s *Session) Stakeholders() *valset.Stakeholders {
	return s.holders
}

// SaveCommitmentsAndShares upserts this stakeholder's commit-phase record for
// the epoch. Content and epoch ordering are not validated.
func (s *Session) SaveCommitmentsAndShares(epoch inter.Epoch, commitments []byte, shares []byte) {
	s.store.SetCommitRecord(epoch, s.id, inter.CommitRecord{
		Commitments: commitments,
		Shares:      shares,
	})
	s.Log.WithField("epoch", epoch).Debug("Broadcast commitments and shares")
}

// SaveSecret upserts this stakeholder's reveal-phase record for the epoch.
func (s *Session) SaveSecret(epoch inter.Epoch, secret []byte) {
	s.store.SetRevealRecord(epoch, s.id, inter.RevealRecord{
		Secret: secret,
	})
	s.Log.WithField("epoch", epoch).Debug("Broadcast secret")
}

// GetCommitmentsAndShares reads any stakeholder's commit-phase data for the
// epoch; empty byte strings if absent.
func (s *Session) GetCommitmentsAndShares(epoch inter.Epoch, stakeholder common.Address) ([]byte, []byte) {
	return s.store.GetCommitmentsAndShares(epoch, stakeholder)
}

// GetSecret reads any stakeholder's revealed secret for the epoch; an empty
// byte string if absent.
func (s *Session) GetSecret(epoch inter.Epoch, stakeholder common.Address) []byte {
	return s.store.GetSecret(epoch, stakeholder)
}
