// This file defines the two record kinds held by the certificate store.
//
// Commit-phase data and reveal-phase data are kept as two independent record
// types on purpose. An earlier combined layout forced every commit-phase write
// to also carry (or blank) the reveal field and vice versa, coupling two
// operations that happen at different points of the epoch and risking
// accidental loss of previously-written sub-fields. Splitting the records
// removes that coupling: each write replaces exactly one record in full.
package inter

import (
	"github.com/Fantom-foundation/lachesis-base/hash"
	"github.com/ethereum/go-ethereum/rlp"
)

// CommitRecord is the commit-phase artifact of one stakeholder for one epoch:
// the serialized PVSS commitments and the encrypted shares addressed to the
// other stakeholders. Both fields are opaque byte strings to the store; no
// length limits, no structural validation, no interpretation of content.
type CommitRecord struct {
	Commitments []byte
	Shares      []byte
}

// RevealRecord is the reveal-phase artifact of one stakeholder for one epoch:
// the disclosed PVSS secret. Opaque to the store.
type RevealRecord struct {
	Secret []byte
}

// Empty reports whether the record carries no data at all. An empty record is
// indistinguishable from an absent one on read; that ambiguity is inherited
// from the original contract layout and kept deliberately.
func (r CommitRecord) Empty() bool {
	return len(r.Commitments) == 0 && len(r.Shares) == 0
}

// Empty reports whether the record carries no data at all.
func (r RevealRecord) Empty() bool {
	return len(r.Secret) == 0
}

// Hash returns the SHA256 fingerprint of the RLP-encoded record.
func (r CommitRecord) Hash() hash.Hash {
	b, err := rlp.EncodeToBytes(&r)
	if err != nil {
		panic("can't hash: " + err.Error())
	}
	return hash.Of(b)
}

// Hash returns the SHA256 fingerprint of the RLP-encoded record.
func (r RevealRecord) Hash() hash.Hash {
	b, err := rlp.EncodeToBytes(&r)
	if err != nil {
		panic("can't hash: " + err.Error())
	}
	return hash.Of(b)
}
