package transactionvalidator

import (
	"github.com/kaspanet/utxosettle/domain/ledger/model"
	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/consensushashing"
	"github.com/kaspanet/utxosettle/infrastructure/logger"
)

// transactionValidator exposes a set of validation classes, after which
// it's possible to determine whether a transaction is valid against a pool
type transactionValidator struct {
	signatureVerifier model.SignatureVerifier
}

// New instantiates a new TransactionValidator
func New(signatureVerifier model.SignatureVerifier) model.TransactionValidator {
	return &transactionValidator{
		signatureVerifier: signatureVerifier,
	}
}

// ValidateTransaction validates transaction against pool without mutating it.
// Inputs are checked one at a time, each for existence, then authenticity,
// then duplicate claims. Outputs are checked for negative values and the
// transaction as a whole for value conservation.
func (v *transactionValidator) ValidateTransaction(transaction *externalapi.DomainTransaction,
	pool model.ReadOnlyUTXOPool) error {

	referencedEntries, err := v.checkTransactionInputs(transaction, pool)
	if err != nil {
		return err
	}

	err = v.checkTransactionOutputValues(transaction)
	if err != nil {
		return err
	}

	err = v.checkValueConservation(transaction, referencedEntries)
	if err != nil {
		return err
	}

	log.Tracef("Transaction %s is valid", transactionIDClosure(transaction))
	return nil
}

// IsValid is the boolean view of ValidateTransaction
func (v *transactionValidator) IsValid(transaction *externalapi.DomainTransaction, pool model.ReadOnlyUTXOPool) bool {
	err := v.ValidateTransaction(transaction, pool)
	if err != nil {
		log.Debugf("Transaction %s is invalid: %s", transactionIDClosure(transaction), err)
		return false
	}
	return true
}

func transactionIDClosure(transaction *externalapi.DomainTransaction) logger.LogClosure {
	return logger.NewLogClosure(func() string {
		return consensushashing.TransactionID(transaction).String()
	})
}
