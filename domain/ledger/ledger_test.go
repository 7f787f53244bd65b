package ledger_test

import (
	"os"
	"testing"

	"github.com/kaspanet/utxosettle/domain/ledger"
	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/ruleerrors"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/consensushashing"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/testutils"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/utxopool"
	"github.com/kaspanet/utxosettle/infrastructure/db/database/ldb"
	"github.com/pkg/errors"
)

func prepareLedgerForTest(t *testing.T, testName string) (l ledger.Ledger, teardownFunc func()) {
	path, err := os.MkdirTemp("", testName)
	if err != nil {
		t.Fatalf("%s: MkdirTemp: %s", testName, err)
	}
	db, err := ldb.NewLevelDB(path)
	if err != nil {
		t.Fatalf("%s: NewLevelDB: %s", testName, err)
	}
	l, err = ledger.NewFactory().NewLedger("fcfs", db)
	if err != nil {
		t.Fatalf("%s: NewLedger: %+v", testName, err)
	}
	return l, func() {
		err := db.Close()
		if err != nil {
			t.Fatalf("%s: Close: %s", testName, err)
		}
		_ = os.RemoveAll(path)
	}
}

func TestLedger(t *testing.T) {
	l, teardownFunc := prepareLedgerForTest(t, "TestLedger")
	defer teardownFunc()

	alice := testutils.NewTestKey(t, 1)
	bob := testutils.NewTestKey(t, 2)
	genesisOutputs := []*externalapi.DomainTransactionOutput{testutils.Output(testutils.Coins(10), alice)}

	_, err := l.Pool()
	if err == nil {
		t.Fatalf("TestLedger: loading the pool of an uninitialized ledger is expected to fail")
	}

	commitment, err := l.Init(genesisOutputs)
	if err != nil {
		t.Fatalf("Init: %+v", err)
	}
	if !commitment.Equal(utxopool.NewGenesisPool(genesisOutputs).Commitment()) {
		t.Fatalf("TestLedger: unexpected genesis commitment %s", commitment)
	}
	_, err = l.Init(genesisOutputs)
	if !errors.Is(err, ledger.ErrAlreadyInitialized) {
		t.Fatalf("TestLedger: expected ErrAlreadyInitialized, got %+v", err)
	}

	genesisID := consensushashing.TransactionID(utxopool.GenesisTransaction(genesisOutputs))
	genesisOutpoint := externalapi.NewDomainOutpoint(genesisID, 0)
	payBob := testutils.SignedTransaction(t, alice, testutils.Outpoints(genesisOutpoint),
		testutils.Output(testutils.Coins(4), bob), testutils.Output(testutils.Coins(6), alice))
	doubleSpend := testutils.SignedTransaction(t, alice, testutils.Outpoints(genesisOutpoint),
		testutils.Output(testutils.Coins(10), alice))

	err = l.ValidateTransaction(payBob)
	if err != nil {
		t.Fatalf("ValidateTransaction: %+v", err)
	}

	result, err := l.SettleBatch([]*externalapi.DomainTransaction{payBob, doubleSpend})
	if err != nil {
		t.Fatalf("SettleBatch: %+v", err)
	}
	if len(result.Accepted) != 1 || result.Accepted[0] != payBob {
		t.Fatalf("TestLedger: expected only payBob to be accepted")
	}
	if len(result.Rejected) != 1 || ruleerrors.Reason(result.Rejected[0].Error) != ruleerrors.ReasonMissingUTXO {
		t.Fatalf("TestLedger: expected the double spend to be rejected as a missing UTXO")
	}

	pool, err := l.Pool()
	if err != nil {
		t.Fatalf("Pool: %+v", err)
	}
	if !pool.Commitment().Equal(result.Commitment) {
		t.Fatalf("TestLedger: the stored pool does not match the settlement result")
	}
	if pool.Contains(genesisOutpoint) || pool.Len() != 2 {
		t.Fatalf("TestLedger: the settled pool was not saved")
	}

	err = l.ValidateTransaction(doubleSpend)
	if !errors.Is(err, ruleerrors.ErrMissingTxOut) {
		t.Fatalf("TestLedger: expected ErrMissingTxOut after settlement, got %+v", err)
	}
}

func TestNewLedgerUnknownPolicy(t *testing.T) {
	_, err := ledger.NewFactory().NewLedger("optimal", nil)
	if err == nil {
		t.Fatalf("TestNewLedgerUnknownPolicy: expected an error for an unknown policy")
	}
}

func TestInitRejectsNegativeGenesisOutputs(t *testing.T) {
	l, teardownFunc := prepareLedgerForTest(t, "TestInitRejectsNegativeGenesisOutputs")
	defer teardownFunc()

	alice := testutils.NewTestKey(t, 1)
	genesisOutputs := []*externalapi.DomainTransactionOutput{
		testutils.Output(testutils.Coins(10), alice),
		testutils.Output(-5, alice),
	}

	_, err := l.Init(genesisOutputs)
	if !errors.Is(err, ruleerrors.ErrNegativeTxOutValue) {
		t.Fatalf("TestInitRejectsNegativeGenesisOutputs: expected ErrNegativeTxOutValue, got %+v", err)
	}
	_, err = l.Pool()
	if err == nil {
		t.Fatalf("TestInitRejectsNegativeGenesisOutputs: a pool was stored despite the rejected genesis")
	}

	_, err = l.Init(genesisOutputs[:1])
	if err != nil {
		t.Fatalf("TestInitRejectsNegativeGenesisOutputs: Init with valid outputs failed: %+v", err)
	}
}
