package utxopool

import (
	"github.com/kaspanet/utxosettle/domain/ledger/model"
	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/constants"
)

// GenesisTransaction returns the input-less transaction that creates the
// initial outputs of a ledger
func GenesisTransaction(outputs []*externalapi.DomainTransactionOutput) *externalapi.DomainTransaction {
	outputsClone := make([]*externalapi.DomainTransactionOutput, len(outputs))
	for i, output := range outputs {
		outputsClone[i] = output.Clone()
	}
	return &externalapi.DomainTransaction{
		Version: constants.MaxTransactionVersion,
		Inputs:  []*externalapi.DomainTransactionInput{},
		Outputs: outputsClone,
	}
}

// NewGenesisPool returns a pool holding exactly the outputs of the genesis
// transaction built out of outputs
func NewGenesisPool(outputs []*externalapi.DomainTransactionOutput) model.UTXOPool {
	pool := New()
	ApplyTransaction(pool, GenesisTransaction(outputs))
	return pool
}
