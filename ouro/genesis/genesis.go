// Package genesis defines the deployment-time state of an Ouroboros network:
// the fixed validator list, the stakeholder accounts with their balances and
// PVSS public keys, and the hardcoded seed for epoch 0.
//
// The epoch-0 seed must be hardcoded because slot leaders for the first ever
// epoch have to be determined before any secrets were revealed; stakes are
// hardcoded for the same reason.
package genesis

import (
	"bytes"
	"crypto/ecdsa"
	"math/big"
	"sort"

	"github.com/Fantom-foundation/lachesis-base/common/bigendian"
	"github.com/Fantom-foundation/lachesis-base/hash"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/ouroboros-network/go-ouroboros/inter/validatorpk"
	"github.com/ouroboros-network/go-ouroboros/ouro"
)

// Seed is the seed used for the 0th epoch.
// Value from cardano-sl, kept for cross-implementation comparability.
const Seed = "vasa opasa skovoroda Ggurda boroda provoda"

// Account is the genesis state of one account.
type Account struct {
	// Balance is the account's stake, in whole coins.
	Balance *big.Int
	// PvssKey is the public key other stakeholders encrypt PVSS shares to.
	// Empty for accounts that are not validators.
	PvssKey validatorpk.PubKey
}

// Accounts maps addresses to their genesis state.
type Accounts map[common.Address]Account

// Genesis bundles everything needed to start a network from scratch.
type Genesis struct {
	Rules      ouro.Rules
	Validators []common.Address
	Accounts   Accounts
	ExtraSeed  []byte
}

// SeedBytes returns the epoch-0 seed: ExtraSeed when set, the hardcoded
// cardano seed otherwise.
func (g Genesis) SeedBytes() []byte {
	if len(g.ExtraSeed) > 0 {
		return g.ExtraSeed
	}
	return []byte(Seed)
}

// Hash returns a deterministic fingerprint of the genesis content.
// Accounts are folded in address order so that map iteration order cannot
// leak into the hash.
func (g Genesis) Hash() hash.Hash {
	type accountEntry struct {
		Addr    common.Address
		Balance *big.Int
		PvssKey []byte
	}
	entries := make([]accountEntry, 0, len(g.Accounts))
	for addr, acc := range g.Accounts {
		balance := acc.Balance
		if balance == nil {
			balance = new(big.Int)
		}
		entries = append(entries, accountEntry{addr, balance, acc.PvssKey.Bytes()})
	}
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].Addr.Bytes(), entries[j].Addr.Bytes()) < 0
	})

	enc, err := rlp.EncodeToBytes(struct {
		NetworkID  uint64
		SecurityK  uint64
		Validators []common.Address
		Accounts   []accountEntry
		Seed       []byte
	}{
		NetworkID:  g.Rules.NetworkID,
		SecurityK:  g.Rules.SecurityParameterK,
		Validators: g.Validators,
		Accounts:   entries,
		Seed:       g.SeedBytes(),
	})
	if err != nil {
		panic("can't hash genesis: " + err.Error())
	}
	return hash.Of(enc)
}

// FakeKey returns a deterministic private key for fake networks.
// Key n is stable across runs, so every fake node derives the same
// stakeholder set.
func FakeKey(n int) *ecdsa.PrivateKey {
	d := crypto.Keccak256([]byte("fake-validator"), bigendian.Uint64ToBytes(uint64(n+1)))
	key, err := crypto.ToECDSA(d)
	if err != nil {
		panic(err)
	}
	return key
}

// FakeGenesis creates a genesis for a local fake network with num equally
// staked validators.
func FakeGenesis(num int) Genesis {
	accounts := make(Accounts, num)
	validators := make([]common.Address, 0, num)

	for i := 0; i < num; i++ {
		key := FakeKey(i)
		addr := crypto.PubkeyToAddress(key.PublicKey)
		validators = append(validators, addr)
		accounts[addr] = Account{
			Balance: big.NewInt(1000000),
			PvssKey: validatorpk.PubKey{
				Type: validatorpk.Types.Secp256k1,
				Raw:  crypto.FromECDSAPub(&key.PublicKey),
			},
		}
	}

	return Genesis{
		Rules:      ouro.FakeNetRules(),
		Validators: validators,
		Accounts:   accounts,
	}
}
