// Package certstore implements the certificate store: a durable key/value
// store of per-epoch PVSS artifacts, keyed by (epoch, stakeholder).
//
// The store holds two independent record kinds in two separate tables:
// commit-phase data (commitments + encrypted shares) and reveal-phase data
// (the disclosed secret). Each write upserts one record in full; there is no
// field-level merge, no version history and no delete operation. Reads of an
// absent record return the zero record, indistinguishable from a
// legitimately-empty write.
//
// The store has no internal concurrency control: every operation touches
// exactly one key, writes are partitioned by caller identity at the boundary
// layer (package beacon), and the host's apply order serializes same-key
// writes (last applied wins).
package certstore

import (
	"github.com/Fantom-foundation/lachesis-base/common/bigendian"
	"github.com/Fantom-foundation/lachesis-base/kvdb"
	"github.com/Fantom-foundation/lachesis-base/kvdb/table"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/ouroboros-network/go-ouroboros/inter"
)

// Store is a node's certificate store, backed by an injected key-value
// database. The database starts empty at deployment and lives for the node's
// whole operating lifetime; the store never deletes from it.
type Store struct {
	mainDB kvdb.Store

	table struct {
		// (epoch, stakeholder) -> CommitRecord
		Commits kvdb.Store `table:"c"`
		// (epoch, stakeholder) -> RevealRecord
		Reveals kvdb.Store `table:"r"`
	}

	Log *logrus.Entry
}

// NewStore wraps the given database. The store's logic is independent of the
// durability mechanism behind db (leveldb in production, memorydb in tests).
func NewStore(db kvdb.Store) *Store {
	s := &Store{
		mainDB: db,
		Log:    logrus.WithField("module", "certstore"),
	}
	table.MigrateTables(&s.table, s.mainDB)
	return s
}

// Close releases the underlying database.
func (s *Store) Close() error {
	table.MigrateTables(&s.table, nil)
	return s.mainDB.Close()
}

// certKey encodes the (epoch, stakeholder) key: 8 bytes of big-endian epoch
// followed by the 20-byte address. Big-endian keeps keys of one epoch
// adjacent in iteration order.
func certKey(epoch inter.Epoch, stakeholder common.Address) []byte {
	key := make([]byte, 0, 8+common.AddressLength)
	key = append(key, bigendian.Uint64ToBytes(uint64(epoch))...)
	key = append(key, stakeholder.Bytes()...)
	return key
}
