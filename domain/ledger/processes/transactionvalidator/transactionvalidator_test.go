package transactionvalidator_test

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/processes/transactionvalidator"
	"github.com/kaspanet/utxosettle/domain/ledger/ruleerrors"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/testutils"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/txsigning"
	"github.com/pkg/errors"
)

func TestValidateTransaction(t *testing.T) {
	alice := testutils.NewTestKey(t, 1)
	bob := testutils.NewTestKey(t, 2)

	tenCoins := testutils.Outpoint(1, 0)
	fiveCoins := testutils.Outpoint(1, 1)
	maxAmount := testutils.Outpoint(2, 0)
	anotherMaxAmount := testutils.Outpoint(2, 1)
	absent := testutils.Outpoint(9, 0)
	pool := testutils.NewPool(
		testutils.UTXO{Outpoint: tenCoins, Amount: testutils.Coins(10), Owner: alice},
		testutils.UTXO{Outpoint: fiveCoins, Amount: testutils.Coins(5), Owner: alice},
		testutils.UTXO{Outpoint: maxAmount, Amount: math.MaxInt64, Owner: alice},
		testutils.UTXO{Outpoint: anotherMaxAmount, Amount: math.MaxInt64, Owner: alice},
	)
	// 0.0001 coins
	const tenThousandth = 10_000

	mutatedSignature := testutils.SignedTransaction(t, alice, testutils.Outpoints(tenCoins),
		testutils.Output(testutils.Coins(10), bob))
	mutatedSignature.Inputs[0].Signature[5] ^= 0xff

	swappedSignatures := testutils.SignedTransaction(t, alice, testutils.Outpoints(tenCoins, fiveCoins),
		testutils.Output(testutils.Coins(15), bob))
	swappedSignatures.Inputs[0].Signature, swappedSignatures.Inputs[1].Signature =
		swappedSignatures.Inputs[1].Signature, swappedSignatures.Inputs[0].Signature

	missingWithBadSignature := testutils.UnsignedTransaction(testutils.Outpoints(absent),
		testutils.Output(0, bob))

	tests := []struct {
		name        string
		transaction *externalapi.DomainTransaction
		expectedErr error
	}{
		{
			name: "inputs equal to outputs",
			transaction: testutils.SignedTransaction(t, alice, testutils.Outpoints(tenCoins),
				testutils.Output(testutils.Coins(4), bob), testutils.Output(testutils.Coins(6), alice)),
			expectedErr: nil,
		},
		{
			name: "inputs greater than outputs",
			transaction: testutils.SignedTransaction(t, alice, testutils.Outpoints(tenCoins),
				testutils.Output(testutils.Coins(9), bob)),
			expectedErr: nil,
		},
		{
			name: "outputs exceed inputs by a ten thousandth of a coin",
			transaction: testutils.SignedTransaction(t, alice, testutils.Outpoints(tenCoins),
				testutils.Output(testutils.Coins(10)+tenThousandth, bob)),
			expectedErr: ruleerrors.ErrSpendTooHigh,
		},
		{
			name: "several inputs",
			transaction: testutils.SignedTransaction(t, alice, testutils.Outpoints(tenCoins, fiveCoins),
				testutils.Output(testutils.Coins(15), bob)),
			expectedErr: nil,
		},
		{
			name: "totals beyond int64",
			transaction: testutils.SignedTransaction(t, alice, testutils.Outpoints(maxAmount, anotherMaxAmount),
				testutils.Output(math.MaxInt64, bob), testutils.Output(math.MaxInt64, bob)),
			expectedErr: nil,
		},
		{
			name: "outputs beyond int64 exceed inputs",
			transaction: testutils.SignedTransaction(t, alice, testutils.Outpoints(maxAmount),
				testutils.Output(math.MaxInt64, bob), testutils.Output(1, bob)),
			expectedErr: ruleerrors.ErrSpendTooHigh,
		},
		{
			name: "missing UTXO",
			transaction: testutils.SignedTransaction(t, alice, testutils.Outpoints(tenCoins, absent),
				testutils.Output(testutils.Coins(1), bob)),
			expectedErr: ruleerrors.ErrMissingTxOut,
		},
		{
			name:        "missing UTXO with an invalid signature",
			transaction: missingWithBadSignature,
			expectedErr: ruleerrors.ErrMissingTxOut,
		},
		{
			name:        "mutated signature",
			transaction: mutatedSignature,
			expectedErr: ruleerrors.ErrBadSignature,
		},
		{
			name:        "signatures swapped between inputs",
			transaction: swappedSignatures,
			expectedErr: ruleerrors.ErrBadSignature,
		},
		{
			name: "signed by someone other than the owner",
			transaction: testutils.SignedTransaction(t, bob, testutils.Outpoints(tenCoins),
				testutils.Output(testutils.Coins(10), bob)),
			expectedErr: ruleerrors.ErrBadSignature,
		},
		{
			name: "unsigned",
			transaction: testutils.UnsignedTransaction(testutils.Outpoints(tenCoins),
				testutils.Output(testutils.Coins(10), bob)),
			expectedErr: ruleerrors.ErrBadSignature,
		},
		{
			name: "the same outpoint claimed twice",
			transaction: testutils.SignedTransaction(t, alice, testutils.Outpoints(tenCoins, tenCoins),
				testutils.Output(testutils.Coins(10), bob)),
			expectedErr: ruleerrors.ErrDuplicateTxInputs,
		},
		{
			name: "negative output covered by the inputs",
			transaction: testutils.SignedTransaction(t, alice, testutils.Outpoints(tenCoins),
				testutils.Output(testutils.Coins(11), bob), testutils.Output(-1, bob)),
			expectedErr: ruleerrors.ErrNegativeTxOutValue,
		},
		{
			name:        "no inputs creating value",
			transaction: testutils.UnsignedTransaction(nil, testutils.Output(1, bob)),
			expectedErr: ruleerrors.ErrSpendTooHigh,
		},
		{
			name:        "no inputs and no outputs",
			transaction: testutils.UnsignedTransaction(nil),
			expectedErr: nil,
		},
	}

	validator := transactionvalidator.New(txsigning.NewSchnorrVerifier())
	commitmentBefore := pool.Commitment()
	for _, test := range tests {
		err := validator.ValidateTransaction(test.transaction, pool)
		if !errors.Is(err, test.expectedErr) {
			t.Errorf("TestValidateTransaction: %s: expected error %v, got %+v. Transaction: %s",
				test.name, test.expectedErr, err, spew.Sdump(test.transaction))
		}
		isValid := validator.IsValid(test.transaction, pool)
		if isValid != (test.expectedErr == nil) {
			t.Errorf("TestValidateTransaction: %s: IsValid returned %t while ValidateTransaction returned %v",
				test.name, isValid, err)
		}
	}

	if pool.Len() != 4 || !pool.Commitment().Equal(commitmentBefore) {
		t.Fatalf("TestValidateTransaction: validation mutated the pool")
	}
}

// verifierFunc adapts a function to model.SignatureVerifier
type verifierFunc func(publicKey []byte, message []byte, signature []byte) bool

func (f verifierFunc) Verify(publicKey []byte, message []byte, signature []byte) bool {
	return f(publicKey, message, signature)
}

func TestValidateTransactionRuleOrder(t *testing.T) {
	alice := testutils.NewTestKey(t, 1)
	bob := testutils.NewTestKey(t, 2)
	first := testutils.Outpoint(1, 0)
	second := testutils.Outpoint(1, 1)
	absent := testutils.Outpoint(9, 0)
	pool := testutils.NewPool(
		testutils.UTXO{Outpoint: first, Amount: testutils.Coins(1), Owner: alice},
		testutils.UTXO{Outpoint: second, Amount: testutils.Coins(1), Owner: bob},
	)

	// Rejects every signature made for the second input's owner
	rejectBob := verifierFunc(func(publicKey []byte, _ []byte, _ []byte) bool {
		return string(publicKey) != string(bob.PublicKey)
	})
	validator := transactionvalidator.New(rejectBob)

	tests := []struct {
		name           string
		outpoints      []*externalapi.DomainOutpoint
		outputValue    int64
		expectedReason ruleerrors.RejectReason
	}{
		{"bad signature on an input before a missing one", testutils.Outpoints(second, absent),
			0, ruleerrors.ReasonBadSignature},
		{"missing input before a bad signature", testutils.Outpoints(absent, second),
			0, ruleerrors.ReasonMissingUTXO},
		{"bad signature on a duplicate claim", testutils.Outpoints(second, second),
			0, ruleerrors.ReasonBadSignature},
		{"duplicate claim before a missing input", testutils.Outpoints(first, first, absent),
			0, ruleerrors.ReasonDuplicateClaim},
		{"missing input before a negative output", testutils.Outpoints(absent),
			-1, ruleerrors.ReasonMissingUTXO},
		{"negative output before value imbalance", testutils.Outpoints(first),
			-testutils.Coins(2), ruleerrors.ReasonNegativeOutput},
		{"value imbalance", testutils.Outpoints(first),
			testutils.Coins(2), ruleerrors.ReasonValueImbalance},
	}

	for _, test := range tests {
		transaction := testutils.UnsignedTransaction(test.outpoints, testutils.Output(test.outputValue, alice))
		err := validator.ValidateTransaction(transaction, pool)
		reason := ruleerrors.Reason(err)
		if reason != test.expectedReason {
			t.Errorf("TestValidateTransactionRuleOrder: %s: expected reason %s, got %s (%v)",
				test.name, test.expectedReason, reason, err)
		}
	}
}
