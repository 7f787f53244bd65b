package ledger

import (
	"github.com/kaspanet/utxosettle/infrastructure/logger"
)

var log = logger.RegisterSubSystem("LDGR")
