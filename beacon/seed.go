// Shared seed derivation for the randomness beacon.
//
// At the end of an epoch the revealed secrets are folded into one seed, which
// the leader-election client feeds into the next epoch's slot-leader draw.
// Secrets are opaque and of arbitrary length, so each is first compressed to
// a sha256 digest and the digests are XOR-folded into a fixed 32-byte seed.
package beacon

import (
	"github.com/Fantom-foundation/lachesis-base/hash"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ouroboros-network/go-ouroboros/certstore"
	"github.com/ouroboros-network/go-ouroboros/inter"
)

// SharedSeed folds the secrets revealed for the epoch by the given
// stakeholders into a 32-byte seed. Stakeholders that have not revealed are
// skipped; the second return is the number of contributors. With zero
// contributors the seed is all zeroes, and whether that is acceptable is the
// caller's call (the honest-majority assumption of the surrounding protocol
// expects every stakeholder to reveal).
func SharedSeed(store *certstore.Store, epoch inter.Epoch, stakeholders []common.Address) (hash.Hash, int) {
	var seed hash.Hash
	contributors := 0

	for _, addr := range stakeholders {
		secret := store.GetSecret(epoch, addr)
		if len(secret) == 0 {
			continue
		}
		digest := hash.Of(secret)
		for i := range seed {
			seed[i] ^= digest[i]
		}
		contributors++
	}

	return seed, contributors
}
