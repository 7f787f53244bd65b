package txsigning

import (
	"github.com/kaspanet/go-secp256k1"
	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/consensushashing"
	"github.com/pkg/errors"
)

// RawTxInSignature returns the serialized Schnorr signature for the input idx of
// the given transaction.
func RawTxInSignature(tx *externalapi.DomainTransaction, idx int, keyPair *secp256k1.SchnorrKeyPair) ([]byte, error) {
	payload, err := consensushashing.SignablePayload(tx, idx)
	if err != nil {
		return nil, err
	}
	signature, err := keyPair.SchnorrSign(messageHash(payload))
	if err != nil {
		return nil, errors.Errorf("cannot sign tx input: %s", err)
	}

	return signature.Serialize()[:], nil
}

// SignInput signs the input idx of tx with keyPair and sets its signature
func SignInput(tx *externalapi.DomainTransaction, idx int, keyPair *secp256k1.SchnorrKeyPair) error {
	signature, err := RawTxInSignature(tx, idx, keyPair)
	if err != nil {
		return err
	}
	tx.Inputs[idx].Signature = signature
	return nil
}

// SignAllInputs signs every input of tx with keyPair. Since signatures are
// not part of the signable payload, the order in which inputs are signed
// doesn't matter.
func SignAllInputs(tx *externalapi.DomainTransaction, keyPair *secp256k1.SchnorrKeyPair) error {
	for i := range tx.Inputs {
		err := SignInput(tx, i, keyPair)
		if err != nil {
			return err
		}
	}
	return nil
}

// PublicKey returns the serialized Schnorr public key of keyPair, as recorded
// on the outputs it owns
func PublicKey(keyPair *secp256k1.SchnorrKeyPair) ([]byte, error) {
	publicKey, err := keyPair.SchnorrPublicKey()
	if err != nil {
		return nil, err
	}
	serialized, err := publicKey.Serialize()
	if err != nil {
		return nil, err
	}
	return serialized[:], nil
}
