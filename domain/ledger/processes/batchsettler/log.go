package batchsettler

import (
	"github.com/kaspanet/utxosettle/infrastructure/logger"
)

var log = logger.RegisterSubSystem("STLR")
