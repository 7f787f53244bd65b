package ruleerrors

import (
	"testing"

	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/pkg/errors"
)

func TestNewErrMissingTxOut(t *testing.T) {
	transactionID := externalapi.NewDomainTransactionIDFromByteArray(&[externalapi.DomainHashSize]byte{255, 255, 255})
	outer := NewErrMissingTxOut([]*externalapi.DomainOutpoint{externalapi.NewDomainOutpoint(transactionID, 5)})
	expectedOuterErr := "ErrMissingTxOut: missing the following outpoint: " +
		"[(ffffff0000000000000000000000000000000000000000000000000000000000: 5)]"
	inner := &ErrMissingTxOutDetails{}
	if !errors.As(outer, inner) {
		t.Fatal("TestNewErrMissingTxOut: Outer should contain ErrMissingTxOutDetails in it")
	}

	if len(inner.MissingOutpoints) != 1 {
		t.Fatalf("TestNewErrMissingTxOut: Expected len(inner.MissingOutpoints) 1, found: %d", len(inner.MissingOutpoints))
	}
	if inner.MissingOutpoints[0].Index != 5 {
		t.Fatalf("TestNewErrMissingTxOut: Expected 5. found: %d", inner.MissingOutpoints[0].Index)
	}

	rule := &RuleError{}
	if !errors.As(outer, rule) {
		t.Fatal("TestNewErrMissingTxOut: Outer should contain RuleError in it")
	}
	if rule.message != "ErrMissingTxOut" {
		t.Fatalf("TestNewErrMissingTxOut: Expected message = 'ErrMissingTxOut', found: '%s'", rule.message)
	}
	if !errors.Is(outer, ErrMissingTxOut) {
		t.Fatal("TestNewErrMissingTxOut: Outer should match the ErrMissingTxOut sentinel")
	}
	if errors.Is(outer, ErrSpendTooHigh) {
		t.Fatal("TestNewErrMissingTxOut: Outer should not match the ErrSpendTooHigh sentinel")
	}

	if outer.Error() != expectedOuterErr {
		t.Fatalf("TestNewErrMissingTxOut: Expected %s. found: %s", expectedOuterErr, outer.Error())
	}
}

func TestReason(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedReason RejectReason
		expectedString string
	}{
		{"nil", nil, ReasonNone, "None"},
		{"missing", NewErrMissingTxOut(nil), ReasonMissingUTXO, "MissingUtxo"},
		{"bad signature", errors.Wrapf(ErrBadSignature, "input %d", 0), ReasonBadSignature, "BadSignature"},
		{"duplicate", errors.Wrap(ErrDuplicateTxInputs, "dup"), ReasonDuplicateClaim, "DuplicateClaim"},
		{"negative", errors.WithStack(ErrNegativeTxOutValue), ReasonNegativeOutput, "NegativeOutput"},
		{"imbalance", ErrSpendTooHigh, ReasonValueImbalance, "ValueImbalance"},
		{"other", errors.New("something else"), ReasonUnknown, "Unknown"},
	}

	for _, test := range tests {
		reason := Reason(test.err)
		if reason != test.expectedReason {
			t.Fatalf("TestReason: test %s: expected reason %s but got %s", test.name, test.expectedReason, reason)
		}
		if reason.String() != test.expectedString {
			t.Fatalf("TestReason: test %s: expected string %s but got %s", test.name, test.expectedString, reason)
		}
	}

	if RejectReason(200).String() != "Unknown" {
		t.Fatalf("TestReason: out of range reasons should stringify as Unknown")
	}
}
