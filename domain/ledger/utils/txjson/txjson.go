package txjson

import (
	"encoding/hex"

	jsoniter "github.com/json-iterator/go"
	"github.com/kaspanet/utxosettle/domain/ledger/model"
	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/ruleerrors"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/consensushashing"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/utxo"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/utxopool"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DomainTransactionToJSON converts a DomainTransaction to its JSON representation
func DomainTransactionToJSON(transaction *externalapi.DomainTransaction) *Transaction {
	inputs := make([]*Input, len(transaction.Inputs))
	for i, input := range transaction.Inputs {
		inputs[i] = &Input{
			TransactionID: input.PreviousOutpoint.TransactionID.String(),
			Index:         input.PreviousOutpoint.Index,
			Signature:     hex.EncodeToString(input.Signature),
		}
	}
	outputs := make([]*Output, len(transaction.Outputs))
	for i, output := range transaction.Outputs {
		outputs[i] = &Output{
			Value:     output.Value,
			PublicKey: hex.EncodeToString(output.PublicKey),
		}
	}
	return &Transaction{
		ID:      consensushashing.TransactionID(transaction).String(),
		Version: transaction.Version,
		Inputs:  inputs,
		Outputs: outputs,
	}
}

// JSONToDomainTransaction converts a JSON transaction to a DomainTransaction
func JSONToDomainTransaction(transaction *Transaction) (*externalapi.DomainTransaction, error) {
	if transaction == nil {
		return nil, errors.New("transaction is null")
	}
	inputs := make([]*externalapi.DomainTransactionInput, len(transaction.Inputs))
	for i, input := range transaction.Inputs {
		if input == nil {
			return nil, errors.Errorf("input %d is null", i)
		}
		transactionID, err := externalapi.NewDomainTransactionIDFromString(input.TransactionID)
		if err != nil {
			return nil, errors.Wrapf(err, "input %d has a malformed transaction ID", i)
		}
		signature, err := hex.DecodeString(input.Signature)
		if err != nil {
			return nil, errors.Wrapf(err, "input %d has a malformed signature", i)
		}
		inputs[i] = &externalapi.DomainTransactionInput{
			PreviousOutpoint: *externalapi.NewDomainOutpoint(transactionID, input.Index),
			Signature:        signature,
		}
	}
	outputs := make([]*externalapi.DomainTransactionOutput, len(transaction.Outputs))
	for i, output := range transaction.Outputs {
		if output == nil {
			return nil, errors.Errorf("output %d is null", i)
		}
		publicKey, err := hex.DecodeString(output.PublicKey)
		if err != nil {
			return nil, errors.Wrapf(err, "output %d has a malformed public key", i)
		}
		outputs[i] = &externalapi.DomainTransactionOutput{
			Value:     output.Value,
			PublicKey: publicKey,
		}
	}
	return &externalapi.DomainTransaction{
		Version: transaction.Version,
		Inputs:  inputs,
		Outputs: outputs,
	}, nil
}

// MarshalBatch encodes transactions as an indented JSON array
func MarshalBatch(transactions []*externalapi.DomainTransaction) ([]byte, error) {
	jsonTransactions := make([]*Transaction, len(transactions))
	for i, transaction := range transactions {
		jsonTransactions[i] = DomainTransactionToJSON(transaction)
	}
	data, err := json.MarshalIndent(jsonTransactions, "", "  ")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}

// UnmarshalBatch decodes a JSON array of transactions. A single JSON
// transaction object is accepted as a batch of one.
func UnmarshalBatch(data []byte) ([]*externalapi.DomainTransaction, error) {
	var jsonTransactions []*Transaction
	err := json.Unmarshal(data, &jsonTransactions)
	if err != nil {
		single := &Transaction{}
		singleErr := json.Unmarshal(data, single)
		if singleErr != nil {
			return nil, errors.Wrap(err, "failed decoding transaction batch")
		}
		jsonTransactions = []*Transaction{single}
	}

	transactions := make([]*externalapi.DomainTransaction, len(jsonTransactions))
	for i, jsonTransaction := range jsonTransactions {
		transaction, err := JSONToDomainTransaction(jsonTransaction)
		if err != nil {
			return nil, errors.Wrapf(err, "failed decoding transaction #%d of the batch", i)
		}
		transactions[i] = transaction
	}
	return transactions, nil
}

// PoolToJSON converts pool to its JSON representation, in the pool's
// iteration order
func PoolToJSON(pool model.ReadOnlyUTXOPool) (*Pool, error) {
	pairs, err := utxopool.Pairs(pool)
	if err != nil {
		return nil, err
	}
	utxos := make([]*UTXO, len(pairs))
	for i, pair := range pairs {
		utxos[i] = &UTXO{
			TransactionID: pair.Outpoint.TransactionID.String(),
			Index:         pair.Outpoint.Index,
			Amount:        pair.UTXOEntry.Amount(),
			PublicKey:     hex.EncodeToString(pair.UTXOEntry.PublicKey()),
		}
	}
	return &Pool{
		Commitment: pool.Commitment().String(),
		UTXOs:      utxos,
	}, nil
}

// MarshalPool encodes pool as indented JSON
func MarshalPool(pool model.ReadOnlyUTXOPool) ([]byte, error) {
	jsonPool, err := PoolToJSON(pool)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(jsonPool, "", "  ")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}

// UnmarshalPool decodes a JSON pool. The commitment field, if present, must
// match the decoded entries.
func UnmarshalPool(data []byte) (model.UTXOPool, error) {
	jsonPool := &Pool{}
	err := json.Unmarshal(data, jsonPool)
	if err != nil {
		return nil, errors.Wrap(err, "failed decoding UTXO pool")
	}

	pool := utxopool.New()
	for i, jsonUTXO := range jsonPool.UTXOs {
		if jsonUTXO == nil {
			return nil, errors.Errorf("UTXO #%d is null", i)
		}
		if jsonUTXO.Amount < 0 {
			return nil, errors.Wrapf(ruleerrors.ErrNegativeTxOutValue, "UTXO #%d has negative amount %d",
				i, jsonUTXO.Amount)
		}
		transactionID, err := externalapi.NewDomainTransactionIDFromString(jsonUTXO.TransactionID)
		if err != nil {
			return nil, errors.Wrapf(err, "UTXO #%d has a malformed transaction ID", i)
		}
		publicKey, err := hex.DecodeString(jsonUTXO.PublicKey)
		if err != nil {
			return nil, errors.Wrapf(err, "UTXO #%d has a malformed public key", i)
		}
		outpoint := externalapi.NewDomainOutpoint(transactionID, jsonUTXO.Index)
		if pool.Contains(outpoint) {
			return nil, errors.Errorf("UTXO #%d duplicates outpoint %s", i, outpoint)
		}
		pool.Add(outpoint, utxo.NewUTXOEntry(jsonUTXO.Amount, publicKey))
	}

	if jsonPool.Commitment != "" && jsonPool.Commitment != pool.Commitment().String() {
		return nil, errors.Errorf("decoded pool has commitment %s while the file states %s",
			pool.Commitment(), jsonPool.Commitment)
	}
	return pool, nil
}
