// Database assembly: opens the key-value database behind the certificate
// store. The store's logic never depends on which producer backs it; leveldb
// is used for durable deployments and memorydb for volatile ones.
package integration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Fantom-foundation/lachesis-base/kvdb"
	"github.com/Fantom-foundation/lachesis-base/kvdb/leveldb"
	"github.com/Fantom-foundation/lachesis-base/kvdb/memorydb"

	"github.com/ouroboros-network/go-ouroboros/certstore"
)

// certificatesDBName is the database the certificate store lives in.
const certificatesDBName = "certificates"

// MakeCertStore opens (creating if necessary) the certificate store under
// datadir with the given preset. The database starts empty at deployment;
// there is no teardown besides Close.
func MakeCertStore(datadir string, preset PresetConfig) (*certstore.Store, error) {
	db, err := makeDB(datadir, preset)
	if err != nil {
		return nil, err
	}
	return certstore.NewStore(db), nil
}

func makeDB(datadir string, preset PresetConfig) (kvdb.Store, error) {
	if preset.InMemory {
		return memorydb.New(), nil
	}

	dbsDir := filepath.Join(datadir, "chaindata")
	if err := os.MkdirAll(dbsDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create DB dir: %w", err)
	}

	producer := leveldb.NewProducer(dbsDir, func(string) (int, int) {
		return preset.CacheMB * 1024 * 1024, preset.Handles
	})
	db, err := producer.OpenDB(certificatesDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q DB: %w", certificatesDBName, err)
	}
	return db, nil
}
