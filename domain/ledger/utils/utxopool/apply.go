package utxopool

import (
	"math/big"

	"github.com/kaspanet/utxosettle/domain/ledger/model"
	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/consensushashing"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/utxo"
)

// ApplyTransaction commits transaction into pool: every outpoint it claims is
// removed, then every output it creates is added under
// (TransactionID(transaction), output position).
// ApplyTransaction does not validate transaction.
func ApplyTransaction(pool model.UTXOPool, transaction *externalapi.DomainTransaction) {
	for _, input := range transaction.Inputs {
		pool.Remove(&input.PreviousOutpoint)
	}

	transactionID := consensushashing.TransactionID(transaction)
	for i, output := range transaction.Outputs {
		pool.Add(externalapi.NewDomainOutpoint(transactionID, uint32(i)), utxo.NewUTXOEntryFromOutput(output))
	}
}

var _ model.TransactionCommitter = ApplyTransaction

// Pairs returns all the entries of pool, in iteration order
func Pairs(pool model.ReadOnlyUTXOPool) ([]*externalapi.OutpointAndUTXOEntryPair, error) {
	pairs := make([]*externalapi.OutpointAndUTXOEntryPair, 0, pool.Len())
	it := pool.Iterator()
	for ok := it.First(); ok; ok = it.Next() {
		outpoint, entry, err := it.Get()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, &externalapi.OutpointAndUTXOEntryPair{
			Outpoint:  outpoint,
			UTXOEntry: entry,
		})
	}
	return pairs, nil
}

// TotalAmount returns the sum of the amounts of all the entries in pool
func TotalAmount(pool model.ReadOnlyUTXOPool) (*big.Int, error) {
	pairs, err := Pairs(pool)
	if err != nil {
		return nil, err
	}
	total := new(big.Int)
	for _, pair := range pairs {
		total.Add(total, big.NewInt(pair.UTXOEntry.Amount()))
	}
	return total, nil
}
