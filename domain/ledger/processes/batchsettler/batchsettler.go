package batchsettler

import (
	"github.com/kaspanet/utxosettle/domain/ledger/model"
	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/utxopool"
	"github.com/kaspanet/utxosettle/infrastructure/logger"
)

// batchSettler settles batches of candidate transactions into a caller-owned
// pool. The pool is mutated in place and must not be used by anyone else
// while a batch is being settled.
type batchSettler struct {
	transactionValidator model.TransactionValidator
	selectionPolicy      model.SelectionPolicy
}

// New instantiates a new BatchSettler
func New(transactionValidator model.TransactionValidator, selectionPolicy model.SelectionPolicy) model.BatchSettler {
	return &batchSettler{
		transactionValidator: transactionValidator,
		selectionPolicy:      selectionPolicy,
	}
}

// SettleBatch returns the transactions of the batch that were accepted, in
// the order they were accepted. Upon return pool reflects every accepted
// transaction.
func (bs *batchSettler) SettleBatch(transactions []*externalapi.DomainTransaction,
	pool model.UTXOPool) []*externalapi.DomainTransaction {

	accepted, _ := bs.SettleBatchWithRejections(transactions, pool)
	return accepted
}

// SettleBatchWithRejections is SettleBatch that additionally returns every
// rejected transaction along with the reason it was rejected
func (bs *batchSettler) SettleBatchWithRejections(transactions []*externalapi.DomainTransaction,
	pool model.UTXOPool) (accepted []*externalapi.DomainTransaction, rejected []*model.RejectedTransaction) {

	onEnd := logger.LogAndMeasureExecutionTime(log, "SettleBatchWithRejections")
	defer onEnd()

	log.Debugf("Settling a batch of %d transactions into a pool of %d UTXOs using policy %s",
		len(transactions), pool.Len(), bs.selectionPolicy.Name())

	accepted, rejected = bs.selectionPolicy.Select(transactions, pool, bs.transactionValidator,
		utxopool.ApplyTransaction)

	log.Debugf("Accepted %d and rejected %d transactions. The pool now holds %d UTXOs",
		len(accepted), len(rejected), pool.Len())
	return accepted, rejected
}
