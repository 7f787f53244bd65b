package selectionpolicy

import (
	"github.com/kaspanet/utxosettle/domain/ledger/model"
	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/ruleerrors"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/consensushashing"
	"github.com/kaspanet/utxosettle/infrastructure/logger"
)

const firstComeFirstServedName = "fcfs"

// firstComeFirstServed walks the batch in the order it was supplied and
// commits every transaction that is valid against the pool as it is at that
// moment. When transactions conflict, the first one in the batch wins. This
// does not necessarily accept the largest consistent subset of the batch.
type firstComeFirstServed struct{}

// NewFirstComeFirstServed returns the greedy, order-dependent selection policy
func NewFirstComeFirstServed() model.SelectionPolicy {
	return &firstComeFirstServed{}
}

func (p *firstComeFirstServed) Name() string {
	return firstComeFirstServedName
}

func (p *firstComeFirstServed) Select(transactions []*externalapi.DomainTransaction, pool model.UTXOPool,
	validator model.TransactionValidator, commit model.TransactionCommitter) (
	accepted []*externalapi.DomainTransaction, rejected []*model.RejectedTransaction) {

	accepted = make([]*externalapi.DomainTransaction, 0, len(transactions))
	for i, transaction := range transactions {
		err := validator.ValidateTransaction(transaction, pool)
		if err != nil {
			log.Debugf("Rejecting transaction #%d (%s) with reason %s: %s",
				i, transactionIDClosure(transaction), ruleerrors.Reason(err), err)
			rejected = append(rejected, &model.RejectedTransaction{
				Transaction: transaction,
				Error:       err,
			})
			continue
		}

		commit(pool, transaction)
		accepted = append(accepted, transaction)
		log.Tracef("Accepted transaction #%d (%s)", i, transactionIDClosure(transaction))
	}
	return accepted, rejected
}

func transactionIDClosure(transaction *externalapi.DomainTransaction) logger.LogClosure {
	return logger.NewLogClosure(func() string {
		return consensushashing.TransactionID(transaction).String()
	})
}
