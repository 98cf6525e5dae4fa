package beacon

import (
	"github.com/ouroboros-network/go-ouroboros/inter"
)

// Material carries one stakeholder's PVSS blobs for one epoch: the serialized
// commitments, the encrypted shares for the other stakeholders, and the
// secret to be revealed later. The beacon treats all three as opaque bytes;
// producing and verifying them is the crypto layer's business.
type Material struct {
	Commitments []byte
	Shares      []byte
	Secret      []byte
}

// Empty reports whether no material was generated.
func (m Material) Empty() bool {
	return len(m.Commitments) == 0 && len(m.Shares) == 0 && len(m.Secret) == 0
}

// BroadcastCommit publishes the commit-phase part of the material.
func (s *Session) BroadcastCommit(epoch inter.Epoch, m Material) {
	s.SaveCommitmentsAndShares(epoch, m.Commitments, m.Shares)
}

// BroadcastReveal publishes the reveal-phase part of the material.
func (s *Session) BroadcastReveal(epoch inter.Epoch, m Material) {
	s.SaveSecret(epoch, m.Secret)
}
