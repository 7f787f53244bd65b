package main

import (
	"github.com/kaspanet/utxosettle/util/panics"
	"github.com/pkg/errors"
)

func main() {
	defer panics.HandlePanic(log, nil)

	subCmd, config := parseCommandLine()

	var err error
	switch subCmd {
	case genKeyPairSubCmd:
		err = genKeyPair(config.(*genKeyPairConfig))
	case genesisSubCmd:
		err = genesis(config.(*genesisConfig))
	case transferSubCmd:
		err = transfer(config.(*transferConfig))
	case validateSubCmd:
		err = validate(config.(*validateConfig))
	case settleSubCmd:
		err = settle(config.(*settleConfig))
	case dumpSubCmd:
		err = dump(config.(*dumpConfig))
	default:
		err = errors.Errorf("Unknown sub-command '%s'\n", subCmd)
	}

	if err != nil {
		printErrorAndExit(err)
	}
	closeLog()
}
