package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/utxosettle/infrastructure/config"
	"github.com/kaspanet/utxosettle/version"
	"github.com/pkg/errors"
)

const (
	genKeyPairSubCmd = "genkeypair"
	genesisSubCmd    = "genesis"
	transferSubCmd   = "transfer"
	validateSubCmd   = "validate"
	settleSubCmd     = "settle"
	dumpSubCmd       = "dump"
)

type configFlags struct {
	ShowVersion bool `short:"V" long:"version" description:"Display version information and exit"`
}

type genKeyPairConfig struct {
	Mnemonic string `long:"mnemonic" short:"m" description:"Derive the key pair from this mnemonic instead of creating a new one"`
}

type genesisConfig struct {
	Outputs []string `long:"output" short:"o" description:"A genesis output in the form <public key hex>:<amount in coins>. May be repeated" required:"true"`
	config.LedgerFlags
}

type transferConfig struct {
	Mnemonic  string   `long:"mnemonic" short:"m" description:"The mnemonic of the owner of the spent outpoints" required:"true"`
	Outpoints []string `long:"outpoint" short:"i" description:"An outpoint to spend in the form <transaction ID>:<index>. May be repeated" required:"true"`
	Outputs   []string `long:"output" short:"o" description:"An output in the form <public key hex>:<amount in coins>. May be repeated" required:"true"`
}

type validateConfig struct {
	Transaction string `long:"transaction" short:"t" description:"A JSON file holding the transaction to validate" required:"true"`
	config.LedgerFlags
}

type settleConfig struct {
	Batch string `long:"batch" short:"f" description:"A JSON file holding the batch of transactions to settle" required:"true"`
	config.LedgerFlags
}

type dumpConfig struct {
	JSON bool `long:"json" description:"Print the pool as JSON"`
	config.LedgerFlags
}

func parseCommandLine() (subCommand string, config interface{}) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	parser.SubcommandsOptional = true

	genKeyPairConf := &genKeyPairConfig{}
	parser.AddCommand(genKeyPairSubCmd, "Generates a key pair",
		"Generates a new mnemonic, or takes an existing one, and prints the public key derived from it", genKeyPairConf)

	genesisConf := &genesisConfig{}
	parser.AddCommand(genesisSubCmd, "Initializes the ledger",
		"Initializes the ledger with a pool holding the given genesis outputs", genesisConf)

	transferConf := &transferConfig{}
	parser.AddCommand(transferSubCmd, "Creates a signed transaction",
		"Creates a transaction spending the given outpoints into the given outputs, signs it and prints it as JSON", transferConf)

	validateConf := &validateConfig{}
	parser.AddCommand(validateSubCmd, "Validates a transaction against the ledger",
		"Validates a transaction against the current pool, without settling it", validateConf)

	settleConf := &settleConfig{}
	parser.AddCommand(settleSubCmd, "Settles a batch of transactions",
		"Settles a batch of transactions into the ledger and prints which were accepted and which were rejected", settleConf)

	dumpConf := &dumpConfig{}
	parser.AddCommand(dumpSubCmd, "Prints the pool",
		"Prints every UTXO of the pool and the pool's commitment", dumpConf)

	_, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil
	}

	if cfg.ShowVersion {
		fmt.Println("utxosettle version", version.Version())
		os.Exit(0)
	}
	if parser.Command.Active == nil {
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	switch parser.Command.Active.Name {
	case genKeyPairSubCmd:
		config = genKeyPairConf
	case genesisSubCmd:
		resolveLedgerFlagsOrExit(&genesisConf.LedgerFlags)
		config = genesisConf
	case transferSubCmd:
		config = transferConf
	case validateSubCmd:
		resolveLedgerFlagsOrExit(&validateConf.LedgerFlags)
		config = validateConf
	case settleSubCmd:
		resolveLedgerFlagsOrExit(&settleConf.LedgerFlags)
		config = settleConf
	case dumpSubCmd:
		resolveLedgerFlagsOrExit(&dumpConf.LedgerFlags)
		config = dumpConf
	}

	return parser.Command.Active.Name, config
}

func resolveLedgerFlagsOrExit(ledgerFlags *config.LedgerFlags) {
	err := ledgerFlags.ResolveLedgerFlags()
	if err != nil {
		printErrorAndExit(err)
	}
}
