// Package valset maintains the fixed stakeholder registry the PVSS boundary
// layer validates writers against.
//
// The registry is built once from genesis and never changes during operation:
// validators without a genesis account or without stake are excluded, the
// remaining addresses are sorted ascending, and each gets a sequential
// validator ID. Stake weights are additionally exposed as a lachesis
// pos.Validators so stake-proportional consumers (the leader-election client)
// can reuse the standard weight arithmetic.
package valset

import (
	"bytes"
	"math/big"
	"sort"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/Fantom-foundation/lachesis-base/inter/pos"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ouroboros-network/go-ouroboros/ouro/genesis"
)

// Stakeholders is the immutable stakeholder registry of one deployment.
type Stakeholders struct {
	list       []common.Address
	stake      map[common.Address]*big.Int
	ids        map[common.Address]idx.ValidatorID
	validators *pos.Validators
	total      *big.Int
}

// New builds the registry from a validator list and the genesis accounts.
// Validators with no account or with zero stake are excluded, matching the
// original stakeholder derivation.
func New(validators []common.Address, accounts genesis.Accounts) *Stakeholders {
	s := &Stakeholders{
		stake: make(map[common.Address]*big.Int),
		ids:   make(map[common.Address]idx.ValidatorID),
		total: new(big.Int),
	}

	for _, addr := range validators {
		acc, ok := accounts[addr]
		if !ok || acc.Balance == nil || acc.Balance.Sign() <= 0 {
			continue
		}
		if _, ok := s.stake[addr]; ok {
			continue // duplicate validator entry
		}
		s.stake[addr] = new(big.Int).Set(acc.Balance)
		s.list = append(s.list, addr)
		s.total.Add(s.total, acc.Balance)
	}

	sort.Slice(s.list, func(i, j int) bool {
		return bytes.Compare(s.list[i].Bytes(), s.list[j].Bytes()) < 0
	})

	builder := pos.NewBigBuilder()
	for i, addr := range s.list {
		id := idx.ValidatorID(i + 1)
		s.ids[addr] = id
		builder.Set(id, s.stake[addr])
	}
	s.validators = builder.Build()

	return s
}

// FromGenesis builds the registry straight from a genesis.
func FromGenesis(g genesis.Genesis) *Stakeholders {
	return New(g.Validators, g.Accounts)
}

// Len returns the number of registered stakeholders.
func (s *Stakeholders) Len() int {
	return len(s.list)
}

// Contains reports whether addr is a registered stakeholder.
func (s *Stakeholders) Contains(addr common.Address) bool {
	_, ok := s.stake[addr]
	return ok
}

// StakeOf returns addr's stake, or nil if addr is not registered.
func (s *Stakeholders) StakeOf(addr common.Address) *big.Int {
	stake, ok := s.stake[addr]
	if !ok {
		return nil
	}
	return new(big.Int).Set(stake)
}

// TotalStake returns the sum of all registered stakes.
func (s *Stakeholders) TotalStake() *big.Int {
	return new(big.Int).Set(s.total)
}

// Addresses returns the registered stakeholders sorted ascending.
// The returned slice is a copy.
func (s *Stakeholders) Addresses() []common.Address {
	out := make([]common.Address, len(s.list))
	copy(out, s.list)
	return out
}

// IDOf returns the sequential validator ID assigned to addr.
func (s *Stakeholders) IDOf(addr common.Address) (idx.ValidatorID, bool) {
	id, ok := s.ids[addr]
	return id, ok
}

// Validators returns the stake weights as a lachesis validator set.
func (s *Stakeholders) Validators() *pos.Validators {
	return s.validators
}

// Threshold returns the PVSS reconstruction threshold, calculated the same
// way as cardano does: n/2 + n%2.
func (s *Stakeholders) Threshold() int {
	n := len(s.list)
	return n/2 + n%2
}
