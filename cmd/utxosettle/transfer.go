package main

import (
	"fmt"

	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/constants"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/txjson"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/txsigning"
)

func transfer(conf *transferConfig) error {
	keyPair, err := txsigning.KeyPairFromMnemonic(conf.Mnemonic)
	if err != nil {
		return err
	}

	inputs := make([]*externalapi.DomainTransactionInput, len(conf.Outpoints))
	for i, outpointString := range conf.Outpoints {
		outpoint, err := parseOutpoint(outpointString)
		if err != nil {
			return err
		}
		inputs[i] = &externalapi.DomainTransactionInput{PreviousOutpoint: *outpoint}
	}
	outputs, err := parseOutputs(conf.Outputs)
	if err != nil {
		return err
	}

	transaction := &externalapi.DomainTransaction{
		Version: constants.MaxTransactionVersion,
		Inputs:  inputs,
		Outputs: outputs,
	}
	err = txsigning.SignAllInputs(transaction, keyPair)
	if err != nil {
		return err
	}

	data, err := txjson.MarshalBatch([]*externalapi.DomainTransaction{transaction})
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
