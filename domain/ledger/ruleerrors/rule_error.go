package ruleerrors

import (
	"fmt"

	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/pkg/errors"
)

// These constants are used to identify a specific RuleError.
var (
	// ErrBadSignature indicates that the signature of some input does not
	// verify against the public key of the output it claims.
	ErrBadSignature = newRuleError("ErrBadSignature")

	// ErrDuplicateTxInputs indicates a transaction references the same
	// output more than once.
	ErrDuplicateTxInputs = newRuleError("ErrDuplicateTxInputs")

	// ErrNegativeTxOutValue indicates an output value for a transaction is
	// negative.
	ErrNegativeTxOutValue = newRuleError("ErrNegativeTxOutValue")

	// ErrSpendTooHigh indicates a transaction is attempting to spend more
	// value than the sum of all of its inputs.
	ErrSpendTooHigh = newRuleError("ErrSpendTooHigh")

	// ErrMissingTxOut indicates a transaction output referenced by an input
	// either does not exist or has already been spent.
	// Errors returned by NewErrMissingTxOut match ErrMissingTxOut with errors.Is.
	ErrMissingTxOut = newRuleError("ErrMissingTxOut")
)

// RuleError identifies a rule violation. It is used to indicate that
// validation of a transaction failed due to one of the validation rules.
// The caller can use errors.Is or errors.As to determine if a failure was
// specifically due to a rule violation.
type RuleError struct {
	message string
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

// Is makes two RuleErrors match when they carry the same message, so that a
// RuleError with details matches its bare sentinel
func (e RuleError) Is(target error) bool {
	var targetRuleError RuleError
	if !errors.As(target, &targetRuleError) {
		return false
	}
	return e.message == targetRuleError.message
}

func newRuleError(message string) RuleError {
	return RuleError{message: message, inner: nil}
}

// ErrMissingTxOutDetails lists the outpoints that an input referenced and
// that were not found in the pool
type ErrMissingTxOutDetails struct {
	MissingOutpoints []*externalapi.DomainOutpoint
}

func (e ErrMissingTxOutDetails) Error() string {
	return fmt.Sprintf("missing the following outpoint: %v", e.MissingOutpoints)
}

// NewErrMissingTxOut Creates a new ErrMissingTxOut error wrapped in a RuleError
func NewErrMissingTxOut(missingOutpoints []*externalapi.DomainOutpoint) error {
	return errors.WithStack(RuleError{
		message: ErrMissingTxOut.message,
		inner:   ErrMissingTxOutDetails{missingOutpoints},
	})
}
