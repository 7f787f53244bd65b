package txsigning_test

import (
	"testing"

	"github.com/kaspanet/utxosettle/domain/ledger/utils/consensushashing"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/testutils"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/txsigning"
)

func TestSchnorrVerifier(t *testing.T) {
	owner := testutils.NewTestKey(t, 1)
	stranger := testutils.NewTestKey(t, 2)
	verifier := txsigning.NewSchnorrVerifier()

	tx := testutils.SignedTransaction(t, owner,
		testutils.Outpoints(testutils.Outpoint(1, 0), testutils.Outpoint(1, 1)),
		testutils.Output(testutils.Coins(1), stranger))

	payload0, err := consensushashing.SignablePayload(tx, 0)
	if err != nil {
		t.Fatalf("SignablePayload: %+v", err)
	}
	payload1, err := consensushashing.SignablePayload(tx, 1)
	if err != nil {
		t.Fatalf("SignablePayload: %+v", err)
	}

	if !verifier.Verify(owner.PublicKey, payload0, tx.Inputs[0].Signature) {
		t.Fatalf("TestSchnorrVerifier: a valid signature was not verified")
	}
	if verifier.Verify(stranger.PublicKey, payload0, tx.Inputs[0].Signature) {
		t.Fatalf("TestSchnorrVerifier: a signature verified against the wrong public key")
	}
	if verifier.Verify(owner.PublicKey, payload1, tx.Inputs[0].Signature) {
		t.Fatalf("TestSchnorrVerifier: a signature verified against the payload of another input")
	}

	for i := range tx.Inputs[0].Signature {
		mutated := append([]byte{}, tx.Inputs[0].Signature...)
		mutated[i] ^= 0x01
		if verifier.Verify(owner.PublicKey, payload0, mutated) {
			t.Fatalf("TestSchnorrVerifier: a signature with byte %d mutated was verified", i)
		}
	}

	if verifier.Verify(owner.PublicKey, payload0, tx.Inputs[0].Signature[:10]) {
		t.Fatalf("TestSchnorrVerifier: a truncated signature was verified")
	}
	if verifier.Verify([]byte{1, 2, 3}, payload0, tx.Inputs[0].Signature) {
		t.Fatalf("TestSchnorrVerifier: a malformed public key was verified")
	}
}

func TestKeyPairFromMnemonic(t *testing.T) {
	mnemonic, err := txsigning.CreateMnemonic()
	if err != nil {
		t.Fatalf("CreateMnemonic: %+v", err)
	}

	first, err := txsigning.KeyPairFromMnemonic(mnemonic)
	if err != nil {
		t.Fatalf("KeyPairFromMnemonic: %+v", err)
	}
	second, err := txsigning.KeyPairFromMnemonic(mnemonic)
	if err != nil {
		t.Fatalf("KeyPairFromMnemonic: %+v", err)
	}

	firstPublicKey, err := txsigning.PublicKey(first)
	if err != nil {
		t.Fatalf("PublicKey: %+v", err)
	}
	secondPublicKey, err := txsigning.PublicKey(second)
	if err != nil {
		t.Fatalf("PublicKey: %+v", err)
	}
	if string(firstPublicKey) != string(secondPublicKey) {
		t.Fatalf("TestKeyPairFromMnemonic: derivation is expected to be deterministic")
	}

	_, err = txsigning.KeyPairFromMnemonic("not a valid mnemonic")
	if err == nil {
		t.Fatalf("TestKeyPairFromMnemonic: expected an error for an invalid mnemonic")
	}
}
