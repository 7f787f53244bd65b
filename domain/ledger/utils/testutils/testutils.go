// Package testutils provides deterministic keys, outpoints and transactions
// for tests of the ledger packages.
package testutils

import (
	"testing"

	"github.com/kaspanet/go-secp256k1"
	"github.com/kaspanet/utxosettle/domain/ledger/model"
	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/constants"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/txsigning"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/utxo"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/utxopool"
)

// TestKey is a deterministic key pair along with its serialized public key
type TestKey struct {
	KeyPair   *secp256k1.SchnorrKeyPair
	PublicKey []byte
}

// NewTestKey returns the key pair derived from seed. The same seed always
// yields the same key.
func NewTestKey(t *testing.T, seed byte) *TestKey {
	keyPair, err := txsigning.KeyPairFromSeed([]byte{'t', 'e', 's', 't', seed})
	if err != nil {
		t.Fatalf("KeyPairFromSeed: %+v", err)
	}
	publicKey, err := txsigning.PublicKey(keyPair)
	if err != nil {
		t.Fatalf("PublicKey: %+v", err)
	}
	return &TestKey{KeyPair: keyPair, PublicKey: publicKey}
}

// Coins converts whole coins into sompi
func Coins(coins int64) int64 {
	return coins * constants.SompiPerCoin
}

// Outpoint returns an outpoint of a made-up previous transaction identified by seed
func Outpoint(seed byte, index uint32) *externalapi.DomainOutpoint {
	transactionID := externalapi.NewDomainTransactionIDFromByteArray(&[externalapi.DomainHashSize]byte{seed})
	return externalapi.NewDomainOutpoint(transactionID, index)
}

// UTXO describes one entry of a test pool
type UTXO struct {
	Outpoint *externalapi.DomainOutpoint
	Amount   int64
	Owner    *TestKey
}

// NewPool returns a pool holding the given UTXOs
func NewPool(utxos ...UTXO) model.UTXOPool {
	pool := utxopool.New()
	for _, u := range utxos {
		pool.Add(u.Outpoint, utxo.NewUTXOEntry(u.Amount, u.Owner.PublicKey))
	}
	return pool
}

// Output returns an output paying value to owner
func Output(value int64, owner *TestKey) *externalapi.DomainTransactionOutput {
	return &externalapi.DomainTransactionOutput{
		Value:     value,
		PublicKey: owner.PublicKey,
	}
}

// UnsignedTransaction returns a transaction claiming outpoints and creating
// outputs, without signatures
func UnsignedTransaction(outpoints []*externalapi.DomainOutpoint,
	outputs ...*externalapi.DomainTransactionOutput) *externalapi.DomainTransaction {

	inputs := make([]*externalapi.DomainTransactionInput, len(outpoints))
	for i, outpoint := range outpoints {
		inputs[i] = &externalapi.DomainTransactionInput{PreviousOutpoint: *outpoint}
	}
	return &externalapi.DomainTransaction{
		Version: constants.MaxTransactionVersion,
		Inputs:  inputs,
		Outputs: outputs,
	}
}

// SignedTransaction returns a transaction claiming outpoints and creating
// outputs, with every input signed by signer
func SignedTransaction(t *testing.T, signer *TestKey, outpoints []*externalapi.DomainOutpoint,
	outputs ...*externalapi.DomainTransactionOutput) *externalapi.DomainTransaction {

	tx := UnsignedTransaction(outpoints, outputs...)
	err := txsigning.SignAllInputs(tx, signer.KeyPair)
	if err != nil {
		t.Fatalf("SignAllInputs: %+v", err)
	}
	return tx
}

// Outpoints is a shorthand for building a slice of outpoints
func Outpoints(outpoints ...*externalapi.DomainOutpoint) []*externalapi.DomainOutpoint {
	return outpoints
}
