package main

import (
	"fmt"

	"github.com/kaspanet/utxosettle/domain/ledger/utils/consensushashing"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/utxopool"
)

func genesis(conf *genesisConfig) error {
	outputs, err := parseOutputs(conf.Outputs)
	if err != nil {
		return err
	}

	l, teardown, err := openLedger(&conf.LedgerFlags)
	if err != nil {
		return err
	}
	defer teardown()

	commitment, err := l.Init(outputs)
	if err != nil {
		return err
	}

	genesisID := consensushashing.TransactionID(utxopool.GenesisTransaction(outputs))
	fmt.Printf("Genesis transaction ID: %s\n", genesisID)
	for i, output := range outputs {
		fmt.Printf("\t%s:%d\t%s coins\n", genesisID, i, formatCoins(output.Value))
	}
	fmt.Printf("Pool commitment: %s\n", commitment)
	return nil
}
