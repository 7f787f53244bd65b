package ledger

import (
	"github.com/kaspanet/utxosettle/domain/ledger/datastructures/utxopoolstore"
	"github.com/kaspanet/utxosettle/domain/ledger/model"
	"github.com/kaspanet/utxosettle/domain/ledger/processes/batchsettler"
	"github.com/kaspanet/utxosettle/domain/ledger/processes/selectionpolicy"
	"github.com/kaspanet/utxosettle/domain/ledger/processes/transactionvalidator"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/txsigning"
	"github.com/kaspanet/utxosettle/infrastructure/db/database/ldb"
)

// Factory instantiates new Ledgers
type Factory interface {
	NewLedger(policyName string, db *ldb.LevelDB) (Ledger, error)

	SetSignatureVerifier(signatureVerifier model.SignatureVerifier)
}

type factory struct {
	signatureVerifier model.SignatureVerifier
}

// NewFactory creates a new Ledger factory
func NewFactory() Factory {
	return &factory{
		signatureVerifier: txsigning.NewSchnorrVerifier(),
	}
}

// NewLedger instantiates a new Ledger over db, settling batches with the
// selection policy registered under policyName
func (f *factory) NewLedger(policyName string, db *ldb.LevelDB) (Ledger, error) {
	selectionPolicy, err := selectionpolicy.ByName(policyName)
	if err != nil {
		return nil, err
	}

	transactionValidator := transactionvalidator.New(f.signatureVerifier)
	batchSettler := batchsettler.New(transactionValidator, selectionPolicy)
	utxoPoolStore := utxopoolstore.New(db)

	return &ledger{
		transactionValidator: transactionValidator,
		batchSettler:         batchSettler,
		utxoPoolStore:        utxoPoolStore,
	}, nil
}

// SetSignatureVerifier replaces the Schnorr verifier used by ledgers created
// from now on
func (f *factory) SetSignatureVerifier(signatureVerifier model.SignatureVerifier) {
	f.signatureVerifier = signatureVerifier
}
