package main

import (
	"fmt"
	"os"

	"github.com/kaspanet/utxosettle/domain/ledger/ruleerrors"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/consensushashing"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/txjson"
	"github.com/pkg/errors"
)

func settle(conf *settleConfig) error {
	data, err := os.ReadFile(conf.Batch)
	if err != nil {
		return errors.Wrapf(err, "failed reading %s", conf.Batch)
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

	result, err := l.SettleBatch(transactions)
	if err != nil {
		return err
	}

	fmt.Printf("Accepted %d of %d transactions:\n", len(result.Accepted), len(transactions))
	for _, transaction := range result.Accepted {
		fmt.Printf("\t%s\n", consensushashing.TransactionID(transaction))
	}
	if len(result.Rejected) > 0 {
		fmt.Printf("Rejected %d transactions:\n", len(result.Rejected))
		for _, rejected := range result.Rejected {
			fmt.Printf("\t%s\t%s\t%s\n", consensushashing.TransactionID(rejected.Transaction),
				ruleerrors.Reason(rejected.Error), rejected.Error)
		}
	}
	fmt.Printf("Pool commitment: %s\n", result.Commitment)
	return nil
}
