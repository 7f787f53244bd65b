package model

import "github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"

// TransactionCommitter applies an accepted transaction to pool
type TransactionCommitter func(pool UTXOPool, transaction *externalapi.DomainTransaction)

// SelectionPolicy decides which transactions of a batch are accepted, and
// in which order they are committed into pool.
//
// Every accepted transaction must be valid against the pool state at the
// moment it is evaluated, and must be committed with commit before any other
// transaction is evaluated.
type SelectionPolicy interface {
	Name() string
	Select(transactions []*externalapi.DomainTransaction, pool UTXOPool,
		validator TransactionValidator, commit TransactionCommitter) (
		accepted []*externalapi.DomainTransaction, rejected []*RejectedTransaction)
}

// RejectedTransaction is a transaction that a SelectionPolicy did not accept,
// along with the reason it was rejected
type RejectedTransaction struct {
	Transaction *externalapi.DomainTransaction
	Error       error
}
