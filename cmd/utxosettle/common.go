package main

import (
	"fmt"
	"os"

	"github.com/kaspanet/utxosettle/domain/ledger"
	"github.com/kaspanet/utxosettle/infrastructure/config"
	"github.com/kaspanet/utxosettle/infrastructure/db/database/ldb"
	"github.com/kaspanet/utxosettle/infrastructure/logger"
)

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	closeLog()
	os.Exit(1)
}

func closeLog() {
	logger.CloseLog()
}

// openLedger starts the logs and opens the ledger stored under the
// configured app directory. The caller must call the returned teardown
// function once done with the ledger.
func openLedger(ledgerFlags *config.LedgerFlags) (l ledger.Ledger, teardown func(), err error) {
	err = logger.InitLog(ledgerFlags.LogFile(), ledgerFlags.ErrLogFile())
	if err != nil {
		return nil, nil, err
	}
	err = ledgerFlags.ApplyLogLevel()
	if err != nil {
		return nil, nil, err
	}

	databaseDir := ledgerFlags.DatabaseDir()
	err = os.MkdirAll(databaseDir, 0700)
	if err != nil {
		return nil, nil, err
	}
	db, err := ldb.NewLevelDB(databaseDir)
	if err != nil {
		return nil, nil, err
	}
	log.Debugf("Opened the ledger database at %s", databaseDir)

	l, err = ledger.NewFactory().NewLedger(ledgerFlags.Policy, db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	teardown = func() {
		err := db.Close()
		if err != nil {
			log.Errorf("Error closing the ledger database: %s", err)
		}
	}
	return l, teardown, nil
}
