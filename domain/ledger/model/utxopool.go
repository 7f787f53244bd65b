package model

import "github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"

// ReadOnlyUTXOPool represents a UTXOPool that can only be read from
type ReadOnlyUTXOPool interface {
	Contains(outpoint *externalapi.DomainOutpoint) bool
	Get(outpoint *externalapi.DomainOutpoint) (externalapi.UTXOEntry, bool)
	Len() int
	Iterator() ReadOnlyUTXOPoolIterator
	Commitment() *externalapi.DomainHash
}

// UTXOPool is the authoritative, mutable record of currently spendable outputs.
// A UTXOPool is not safe for concurrent use.
type UTXOPool interface {
	ReadOnlyUTXOPool

	// Add adds the given entry, overwriting any entry already mapped to outpoint
	Add(outpoint *externalapi.DomainOutpoint, entry externalapi.UTXOEntry)

	// Remove removes the entry mapped to outpoint. Removing an absent outpoint
	// is a no-op
	Remove(outpoint *externalapi.DomainOutpoint)

	// Clone returns a deep copy of the pool. Mutating either copy never
	// affects the other
	Clone() UTXOPool
}

// ReadOnlyUTXOPoolIterator is an iterator over all entries in a
// ReadOnlyUTXOPool
type ReadOnlyUTXOPoolIterator interface {
	First() bool
	Next() bool
	Get() (outpoint *externalapi.DomainOutpoint, utxoEntry externalapi.UTXOEntry, err error)
}
