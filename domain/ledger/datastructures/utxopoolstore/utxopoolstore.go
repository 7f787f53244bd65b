package utxopoolstore

import (
	"github.com/kaspanet/utxosettle/domain/ledger/model"
	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/utxo"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/utxopool"
	"github.com/kaspanet/utxosettle/infrastructure/db/database/ldb"
	"github.com/kaspanet/utxosettle/infrastructure/logger"
	"github.com/pkg/errors"
)

var utxoBucket = []byte("utxo-pool/entries/")
var commitmentKey = []byte("utxo-pool/commitment")

// UTXOPoolStore persists a whole UTXO pool in leveldb. Every entry is stored
// under its serialized outpoint, alongside the commitment of the pool so
// that a loaded pool can be checked against what was saved.
type UTXOPoolStore struct {
	db *ldb.LevelDB
}

// New instantiates a new UTXOPoolStore over db
func New(db *ldb.LevelDB) *UTXOPoolStore {
	return &UTXOPoolStore{db: db}
}

// Save replaces whatever pool was stored with pool, atomically
func (ups *UTXOPoolStore) Save(pool model.ReadOnlyUTXOPool) error {
	onEnd := logger.LogAndMeasureExecutionTime(log, "UTXOPoolStore.Save")
	defer onEnd()

	dbTx, err := ups.db.Begin()
	if err != nil {
		return err
	}
	defer dbTx.RollbackUnlessClosed()

	err = deleteAllEntries(dbTx)
	if err != nil {
		return err
	}

	it := pool.Iterator()
	for ok := it.First(); ok; ok = it.Next() {
		outpoint, entry, err := it.Get()
		if err != nil {
			return err
		}
		key, err := entryKey(outpoint)
		if err != nil {
			return err
		}
		value, err := utxo.SerializeUTXOEntry(entry)
		if err != nil {
			return err
		}
		err = dbTx.Put(key, value)
		if err != nil {
			return err
		}
	}

	err = dbTx.Put(commitmentKey, pool.Commitment().ByteSlice())
	if err != nil {
		return err
	}

	err = dbTx.Commit()
	if err != nil {
		return err
	}
	log.Debugf("Saved a pool of %d UTXOs with commitment %s", pool.Len(), pool.Commitment())
	return nil
}

// Load rebuilds the stored pool. It returns an error if nothing was saved or
// if the rebuilt pool does not match the stored commitment.
func (ups *UTXOPoolStore) Load() (model.UTXOPool, error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "UTXOPoolStore.Load")
	defer onEnd()

	expectedCommitment, err := ups.Commitment()
	if err != nil {
		return nil, err
	}

	pool := utxopool.New()
	cursor := ups.db.Cursor(utxoBucket)
	defer cursor.Close()
	for ok := cursor.First(); ok; ok = cursor.Next() {
		key, err := cursor.Key()
		if err != nil {
			return nil, err
		}
		outpoint, err := utxo.DeserializeOutpoint(key)
		if err != nil {
			return nil, errors.Wrapf(err, "failed deserializing stored outpoint %x", key)
		}
		value, err := cursor.Value()
		if err != nil {
			return nil, err
		}
		entry, err := utxo.DeserializeUTXOEntry(value)
		if err != nil {
			return nil, errors.Wrapf(err, "failed deserializing the stored entry of %s", outpoint)
		}
		pool.Add(outpoint, entry)
	}

	if !pool.Commitment().Equal(expectedCommitment) {
		return nil, errors.Errorf("loaded pool has commitment %s while %s was stored",
			pool.Commitment(), expectedCommitment)
	}
	log.Debugf("Loaded a pool of %d UTXOs with commitment %s", pool.Len(), expectedCommitment)
	return pool, nil
}

// Commitment returns the commitment of the stored pool
func (ups *UTXOPoolStore) Commitment() (*externalapi.DomainHash, error) {
	commitmentBytes, err := ups.db.Get(commitmentKey)
	if err != nil {
		if ldb.IsNotFoundError(err) {
			return nil, errors.Wrap(ErrNoStoredPool, "no commitment found")
		}
		return nil, err
	}
	return externalapi.NewDomainHashFromByteSlice(commitmentBytes)
}

// Exists returns whether a pool was ever saved
func (ups *UTXOPoolStore) Exists() (bool, error) {
	return ups.db.Has(commitmentKey)
}

// ErrNoStoredPool indicates that no pool was saved into the store yet
var ErrNoStoredPool = errors.New("no stored UTXO pool")

func deleteAllEntries(dbTx *ldb.LevelDBTransaction) error {
	cursor, err := dbTx.Cursor(utxoBucket)
	if err != nil {
		return err
	}
	defer cursor.Close()

	for ok := cursor.First(); ok; ok = cursor.Next() {
		key, err := cursor.Key()
		if err != nil {
			return err
		}
		err = dbTx.Delete(append(append([]byte{}, utxoBucket...), key...))
		if err != nil {
			return err
		}
	}
	return nil
}

func entryKey(outpoint *externalapi.DomainOutpoint) ([]byte, error) {
	serializedOutpoint, err := utxo.SerializeOutpoint(outpoint)
	if err != nil {
		return nil, err
	}
	return append(append([]byte{}, utxoBucket...), serializedOutpoint...), nil
}
