package model

import "github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"

// BatchSettler settles batches of candidate transactions into a UTXOPool
type BatchSettler interface {
	SettleBatch(transactions []*externalapi.DomainTransaction, pool UTXOPool) []*externalapi.DomainTransaction
	SettleBatchWithRejections(transactions []*externalapi.DomainTransaction, pool UTXOPool) (
		accepted []*externalapi.DomainTransaction, rejected []*RejectedTransaction)
}
