package model

import "github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"

// TransactionValidator decides, against a given pool snapshot, whether one
// transaction may be accepted. It never mutates the pool.
type TransactionValidator interface {
	// ValidateTransaction returns nil if transaction is valid against pool,
	// and a ruleerrors.RuleError describing the first violated rule otherwise
	ValidateTransaction(transaction *externalapi.DomainTransaction, pool ReadOnlyUTXOPool) error
	IsValid(transaction *externalapi.DomainTransaction, pool ReadOnlyUTXOPool) bool
}
