package ruleerrors

import "github.com/pkg/errors"

// RejectReason is a closed classification of why a transaction was rejected
type RejectReason uint8

// RejectReason values
const (
	ReasonNone RejectReason = iota
	ReasonMissingUTXO
	ReasonBadSignature
	ReasonDuplicateClaim
	ReasonNegativeOutput
	ReasonValueImbalance
	ReasonUnknown
)

var reasonStrings = [...]string{
	ReasonNone:           "None",
	ReasonMissingUTXO:    "MissingUtxo",
	ReasonBadSignature:   "BadSignature",
	ReasonDuplicateClaim: "DuplicateClaim",
	ReasonNegativeOutput: "NegativeOutput",
	ReasonValueImbalance: "ValueImbalance",
	ReasonUnknown:        "Unknown",
}

func (r RejectReason) String() string {
	if int(r) >= len(reasonStrings) {
		return reasonStrings[ReasonUnknown]
	}
	return reasonStrings[r]
}

// Reason classifies err. A nil error yields ReasonNone, and an error that is
// not a known RuleError yields ReasonUnknown.
func Reason(err error) RejectReason {
	switch {
	case err == nil:
		return ReasonNone
	case errors.Is(err, ErrMissingTxOut):
		return ReasonMissingUTXO
	case errors.Is(err, ErrBadSignature):
		return ReasonBadSignature
	case errors.Is(err, ErrDuplicateTxInputs):
		return ReasonDuplicateClaim
	case errors.Is(err, ErrNegativeTxOutValue):
		return ReasonNegativeOutput
	case errors.Is(err, ErrSpendTooHigh):
		return ReasonValueImbalance
	default:
		return ReasonUnknown
	}
}
