package utxopool

import (
	"github.com/kaspanet/utxosettle/domain/ledger/model"
	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/multiset"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/utxo"
	"github.com/pkg/errors"
)

type utxoCollection map[externalapi.DomainOutpoint]externalapi.UTXOEntry

// utxoPool is an in-memory model.UTXOPool. Alongside its entries it
// maintains a multiset of all serialized (outpoint, entry) pairs, so that
// pools with equal content have equal commitments no matter how they were
// built.
type utxoPool struct {
	collection utxoCollection
	multiset   model.Multiset
}

// New returns an empty model.UTXOPool
func New() model.UTXOPool {
	return &utxoPool{
		collection: utxoCollection{},
		multiset:   multiset.New(),
	}
}

// NewFromPairs returns a model.UTXOPool holding the given pairs. Later pairs
// overwrite earlier pairs with the same outpoint.
func NewFromPairs(pairs []*externalapi.OutpointAndUTXOEntryPair) model.UTXOPool {
	pool := New()
	for _, pair := range pairs {
		pool.Add(pair.Outpoint, pair.UTXOEntry)
	}
	return pool
}

func (up *utxoPool) Contains(outpoint *externalapi.DomainOutpoint) bool {
	_, ok := up.collection[*outpoint]
	return ok
}

func (up *utxoPool) Get(outpoint *externalapi.DomainOutpoint) (externalapi.UTXOEntry, bool) {
	entry, ok := up.collection[*outpoint]
	return entry, ok
}

func (up *utxoPool) Len() int {
	return len(up.collection)
}

func (up *utxoPool) Add(outpoint *externalapi.DomainOutpoint, entry externalapi.UTXOEntry) {
	if existing, ok := up.collection[*outpoint]; ok {
		up.multiset.Remove(mustSerializeUTXO(existing, outpoint))
	}
	up.collection[*outpoint] = entry
	up.multiset.Add(mustSerializeUTXO(entry, outpoint))
}

func (up *utxoPool) Remove(outpoint *externalapi.DomainOutpoint) {
	existing, ok := up.collection[*outpoint]
	if !ok {
		return
	}
	delete(up.collection, *outpoint)
	up.multiset.Remove(mustSerializeUTXO(existing, outpoint))
}

// Clone copies the collection map. Entries are immutable, so they are shared
// between the copies.
func (up *utxoPool) Clone() model.UTXOPool {
	collectionClone := make(utxoCollection, len(up.collection))
	for outpoint, entry := range up.collection {
		collectionClone[outpoint] = entry
	}
	return &utxoPool{
		collection: collectionClone,
		multiset:   up.multiset.Clone(),
	}
}

func (up *utxoPool) Commitment() *externalapi.DomainHash {
	return up.multiset.Hash()
}

func (up *utxoPool) Iterator() model.ReadOnlyUTXOPoolIterator {
	return newIterator(up.collection)
}

func mustSerializeUTXO(entry externalapi.UTXOEntry, outpoint *externalapi.DomainOutpoint) []byte {
	serialized, err := utxo.SerializeUTXO(entry, outpoint)
	if err != nil {
		// Serializing into a bytes.Buffer can only fail on unknown element
		// types, which would be a programming error
		panic(errors.Wrapf(err, "failed serializing UTXO %s", outpoint))
	}
	return serialized
}
