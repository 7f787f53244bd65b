package transactionvalidator

import (
	"github.com/kaspanet/utxosettle/domain/ledger/model"
	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/ruleerrors"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/consensushashing"
	"github.com/pkg/errors"
)

// checkTransactionInputs runs the per-input rules and returns the pool
// entries referenced by the inputs, in input order
func (v *transactionValidator) checkTransactionInputs(transaction *externalapi.DomainTransaction,
	pool model.ReadOnlyUTXOPool) ([]externalapi.UTXOEntry, error) {

	referencedEntries := make([]externalapi.UTXOEntry, len(transaction.Inputs))
	claimedOutpoints := make(map[externalapi.DomainOutpoint]struct{}, len(transaction.Inputs))
	for i, input := range transaction.Inputs {
		outpoint := input.PreviousOutpoint

		utxoEntry, ok := pool.Get(&outpoint)
		if !ok {
			return nil, ruleerrors.NewErrMissingTxOut([]*externalapi.DomainOutpoint{&outpoint})
		}

		err := v.checkInputSignature(transaction, i, utxoEntry)
		if err != nil {
			return nil, err
		}

		if _, exists := claimedOutpoints[outpoint]; exists {
			return nil, errors.Wrapf(ruleerrors.ErrDuplicateTxInputs, "input %d claims outpoint "+
				"%s which was already claimed by a previous input", i, outpoint)
		}
		claimedOutpoints[outpoint] = struct{}{}

		referencedEntries[i] = utxoEntry
	}
	return referencedEntries, nil
}

func (v *transactionValidator) checkInputSignature(transaction *externalapi.DomainTransaction,
	inputIndex int, utxoEntry externalapi.UTXOEntry) error {

	input := transaction.Inputs[inputIndex]
	payload, err := consensushashing.SignablePayload(transaction, inputIndex)
	if err != nil {
		return errors.Wrapf(ruleerrors.ErrBadSignature, "failed building the signable payload "+
			"of input %d: %s", inputIndex, err)
	}

	if !v.signatureVerifier.Verify(utxoEntry.PublicKey(), payload, input.Signature) {
		return errors.Wrapf(ruleerrors.ErrBadSignature, "signature of input %d does not verify "+
			"against the owner of outpoint %s", inputIndex, input.PreviousOutpoint)
	}
	return nil
}
