package model

import "github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"

// Multiset is used to hash a set of elements independently of their order
type Multiset interface {
	Add(data []byte)
	Remove(data []byte)
	Hash() *externalapi.DomainHash
	Serialize() []byte
	Clone() Multiset
}
