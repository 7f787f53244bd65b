package main

import (
	"fmt"

	"github.com/kaspanet/utxosettle/domain/ledger/utils/txjson"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/utxopool"
)

func dump(conf *dumpConfig) error {
	l, teardown, err := openLedger(&conf.LedgerFlags)
	if err != nil {
		return err
	}
	defer teardown()

	pool, err := l.Pool()
	if err != nil {
		return err
	}

	if conf.JSON {
		data, err := txjson.MarshalPool(pool)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	pairs, err := utxopool.Pairs(pool)
	if err != nil {
		return err
	}
	total, err := utxopool.TotalAmount(pool)
	if err != nil {
		return err
	}
	for _, pair := range pairs {
		fmt.Printf("%s:%d\t%s coins\t%x\n", pair.Outpoint.TransactionID, pair.Outpoint.Index,
			formatCoins(pair.UTXOEntry.Amount()), pair.UTXOEntry.PublicKey())
	}
	fmt.Printf("%d UTXOs holding %s coins\n", len(pairs), formatBigCoins(total))
	fmt.Printf("Pool commitment: %s\n", pool.Commitment())
	return nil
}
