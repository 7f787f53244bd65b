package consensushashing

import (
	"bytes"
	"io"

	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/hashes"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/serialization"
	"github.com/pkg/errors"
)

// TransactionID generates the ID of a transaction: the hash of its
// serialization, excluding the input signatures.
func TransactionID(tx *externalapi.DomainTransaction) *externalapi.DomainTransactionID {
	writer := hashes.NewTransactionIDWriter()
	err := serializeTransaction(writer, tx)
	if err != nil {
		// It seems like this could only happen if the writer returned an error.
		// and this writer should never return an error (no allocations or possible failures)
		// the only non-writer error path here is unknown types in `WriteElement`
		panic(errors.Wrap(err, "TransactionID() failed. this should never fail for structurally-valid transactions"))
	}
	hash := writer.Finalize()
	return (*externalapi.DomainTransactionID)(hash)
}

// SignablePayload returns the canonical encoding of tx that the signature of
// input inputIndex must sign. It binds the signature to the transaction's
// outputs, to every claimed outpoint, and to the position of the input, so a
// signature can't be moved to another input.
func SignablePayload(tx *externalapi.DomainTransaction, inputIndex int) ([]byte, error) {
	if inputIndex < 0 || inputIndex >= len(tx.Inputs) {
		return nil, errors.Errorf("input index %d is out of range for a transaction "+
			"with %d inputs", inputIndex, len(tx.Inputs))
	}

	w := &bytes.Buffer{}
	err := serialization.WriteElements(w, tx.Version, uint32(inputIndex))
	if err != nil {
		return nil, err
	}
	err = writeOutpoint(w, &tx.Inputs[inputIndex].PreviousOutpoint)
	if err != nil {
		return nil, err
	}
	err = serializeTransaction(w, tx)
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func serializeTransaction(w io.Writer, tx *externalapi.DomainTransaction) error {
	err := serialization.WriteElements(w, tx.Version, uint64(len(tx.Inputs)))
	if err != nil {
		return err
	}
	for _, input := range tx.Inputs {
		err = writeOutpoint(w, &input.PreviousOutpoint)
		if err != nil {
			return err
		}
	}

	err = serialization.WriteElement(w, uint64(len(tx.Outputs)))
	if err != nil {
		return err
	}
	for _, output := range tx.Outputs {
		err = serialization.WriteElement(w, output.Value)
		if err != nil {
			return err
		}
		err = serialization.WriteVarBytes(w, output.PublicKey)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeOutpoint(w io.Writer, outpoint *externalapi.DomainOutpoint) error {
	return serialization.WriteElements(w, &outpoint.TransactionID, outpoint.Index)
}
