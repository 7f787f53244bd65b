package main

import (
	"fmt"
	"os"

	"github.com/kaspanet/utxosettle/domain/ledger/ruleerrors"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/consensushashing"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/txjson"
	"github.com/pkg/errors"
)

func validate(conf *validateConfig) error {
	data, err := os.ReadFile(conf.Transaction)
	if err != nil {
		return errors.Wrapf(err, "failed reading %s", conf.Transaction)
	}
	transactions, err := txjson.UnmarshalBatch(data)
	if err != nil {
		return err
	}

	l, teardown, err := openLedger(&conf.LedgerFlags)
	if err != nil {
		return err
	}
	defer teardown()

	for _, transaction := range transactions {
		transactionID := consensushashing.TransactionID(transaction)
		err := l.ValidateTransaction(transaction)
		reason := ruleerrors.Reason(err)
		switch reason {
		case ruleerrors.ReasonNone:
			fmt.Printf("%s: valid\n", transactionID)
		case ruleerrors.ReasonUnknown:
			return err
		default:
			fmt.Printf("%s: invalid (%s): %s\n", transactionID, reason, err)
		}
	}
	return nil
}
