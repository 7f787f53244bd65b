package utxopool

import (
	"sort"

	"github.com/kaspanet/utxosettle/domain/ledger/model"
	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/pkg/errors"
)

// iterator walks a snapshot of the pool's outpoints in ascending outpoint
// order, so that dumps and stores are deterministic
type iterator struct {
	collection utxoCollection
	outpoints  []externalapi.DomainOutpoint
	index      int
}

func newIterator(collection utxoCollection) model.ReadOnlyUTXOPoolIterator {
	outpoints := make([]externalapi.DomainOutpoint, 0, len(collection))
	for outpoint := range collection {
		outpoints = append(outpoints, outpoint)
	}
	sort.Slice(outpoints, func(i, j int) bool {
		return outpoints[i].Less(&outpoints[j])
	})
	return &iterator{
		collection: collection,
		outpoints:  outpoints,
		index:      -1,
	}
}

func (it *iterator) First() bool {
	it.index = 0
	return len(it.outpoints) > 0
}

func (it *iterator) Next() bool {
	it.index++
	return it.index < len(it.outpoints)
}

func (it *iterator) Get() (outpoint *externalapi.DomainOutpoint, utxoEntry externalapi.UTXOEntry, err error) {
	if it.index < 0 || it.index >= len(it.outpoints) {
		return nil, nil, errors.Errorf("iterator is out of range at index %d", it.index)
	}
	current := it.outpoints[it.index]
	entry, ok := it.collection[current]
	if !ok {
		return nil, nil, errors.Errorf("outpoint %s was removed from the pool during iteration", current)
	}
	return &current, entry, nil
}
