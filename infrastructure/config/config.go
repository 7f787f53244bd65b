package config

import (
	"path/filepath"

	"github.com/kaspanet/utxosettle/domain/ledger/processes/selectionpolicy"
	"github.com/kaspanet/utxosettle/infrastructure/logger"
	"github.com/kaspanet/utxosettle/util"
	"github.com/pkg/errors"
)

const (
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "utxosettle.log"
	defaultErrLogFilename = "utxosettle_err.log"
	defaultDataDirname    = "data"
)

var (
	// DefaultAppDir is the default home directory for utxosettle.
	DefaultAppDir = util.AppDir("utxosettle", false)
)

// LedgerFlags holds the configuration shared by every command that works
// on a stored ledger
type LedgerFlags struct {
	AppDir   string `long:"appdir" short:"b" description:"Directory to store data"`
	LogDir   string `long:"logdir" description:"Directory to log output"`
	LogLevel string `long:"loglevel" short:"d" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	Policy   string `long:"policy" description:"Selection policy used when settling batches"`
}

// ResolveLedgerFlags fills defaults for every flag that was not set and
// validates the rest
func (flags *LedgerFlags) ResolveLedgerFlags() error {
	if flags.AppDir == "" {
		flags.AppDir = DefaultAppDir
	}
	flags.AppDir = cleanAndExpandPath(flags.AppDir)

	if flags.LogDir == "" {
		flags.LogDir = filepath.Join(flags.AppDir, defaultLogDirname)
	}
	flags.LogDir = cleanAndExpandPath(flags.LogDir)

	if flags.LogLevel == "" {
		flags.LogLevel = defaultLogLevel
	}

	if flags.Policy == "" {
		flags.Policy = selectionpolicy.DefaultPolicyName
	}
	_, err := selectionpolicy.ByName(flags.Policy)
	if err != nil {
		return err
	}
	return nil
}

// ApplyLogLevel sets the log levels of all registered subsystems according
// to the loglevel flag
func (flags *LedgerFlags) ApplyLogLevel() error {
	err := logger.ParseAndSetLogLevels(flags.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid loglevel '%s'", flags.LogLevel)
	}
	return nil
}

// DatabaseDir returns the directory of the ledger database
func (flags *LedgerFlags) DatabaseDir() string {
	return filepath.Join(flags.AppDir, defaultDataDirname)
}

// LogFile returns the path of the main log file
func (flags *LedgerFlags) LogFile() string {
	return filepath.Join(flags.LogDir, defaultLogFilename)
}

// ErrLogFile returns the path of the error log file
func (flags *LedgerFlags) ErrLogFile() string {
	return filepath.Join(flags.LogDir, defaultErrLogFilename)
}
