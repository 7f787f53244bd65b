package main

import (
	"github.com/kaspanet/utxosettle/infrastructure/logger"
)

var log = logger.RegisterSubSystem("USTL")
