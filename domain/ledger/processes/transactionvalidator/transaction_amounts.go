package transactionvalidator

import (
	"math/big"

	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/ruleerrors"
	"github.com/pkg/errors"
)

func (v *transactionValidator) checkTransactionOutputValues(transaction *externalapi.DomainTransaction) error {
	for i, output := range transaction.Outputs {
		if output.Value < 0 {
			return errors.Wrapf(ruleerrors.ErrNegativeTxOutValue, "transaction output %d "+
				"has negative value of %d", i, output.Value)
		}
	}
	return nil
}

// checkValueConservation ensures the transaction does not spend more than its
// inputs. Totals are accumulated as big integers so that no combination of
// int64 amounts can overflow them.
func (v *transactionValidator) checkValueConservation(transaction *externalapi.DomainTransaction,
	referencedEntries []externalapi.UTXOEntry) error {

	totalSompiIn := new(big.Int)
	for _, utxoEntry := range referencedEntries {
		totalSompiIn.Add(totalSompiIn, big.NewInt(utxoEntry.Amount()))
	}

	totalSompiOut := new(big.Int)
	for _, output := range transaction.Outputs {
		totalSompiOut.Add(totalSompiOut, big.NewInt(output.Value))
	}

	if totalSompiIn.Cmp(totalSompiOut) < 0 {
		return errors.Wrapf(ruleerrors.ErrSpendTooHigh, "total value of all transaction inputs for "+
			"the transaction is %s which is less than the amount spent of %s", totalSompiIn, totalSompiOut)
	}
	return nil
}
