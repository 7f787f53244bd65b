package logger

import (
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// BackendLog is the logging backend used to create all subsystem loggers.
var BackendLog = NewBackend()

var (
	subsystemLoggers      = make(map[string]*Logger)
	subsystemLoggersMutex sync.Mutex
)

// RegisterSubSystem registers a new subsystem logger, should be called in a
// global variable, returns the existing one if the subsystem is already
// registered
func RegisterSubSystem(subsystem string) *Logger {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()
	logger, exists := subsystemLoggers[subsystem]
	if !exists {
		logger = BackendLog.Logger(subsystem)
		subsystemLoggers[subsystem] = logger
	}
	return logger
}

const (
	logFileThresholdKB    = 280 * 1000 // 280 MB, MB=1000^2 bytes
	logFileMaxRolls       = 64
	errLogFileThresholdKB = 100 * 1000
	errLogFileMaxRolls    = 8
)

// InitLog attaches log file and error log file to the backend log, along with
// stderr for warnings and above, and starts the backend. Stdout is left to
// the program's own output.
func InitLog(logFile, errLogFile string) error {
	err := BackendLog.AddLogFile(logFile, LevelTrace, logFileThresholdKB, logFileMaxRolls)
	if err != nil {
		return errors.Wrapf(err, "error adding log file %s as log rotator for level %s", logFile, LevelTrace)
	}
	err = BackendLog.AddLogFile(errLogFile, LevelWarn, errLogFileThresholdKB, errLogFileMaxRolls)
	if err != nil {
		return errors.Wrapf(err, "error adding log file %s as log rotator for level %s", errLogFile, LevelWarn)
	}
	err = BackendLog.AddLogWriter(nopCloser{os.Stderr}, LevelWarn)
	if err != nil {
		return errors.Wrap(err, "error adding stderr to the logger")
	}
	return BackendLog.Run()
}

// CloseLog flushes and closes the backend log if it is running
func CloseLog() {
	if BackendLog.IsRunning() {
		BackendLog.Close()
	}
}

// SetLogLevel sets the logging level for provided subsystem. Invalid
// subsystems are ignored. Uninitialized subsystems are dynamically created as
// needed.
func SetLogLevel(subsystemID string, logLevel string) error {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return errors.Errorf("'%s' Isn't a valid subsystem", subsystemID)
	}
	level, ok := LevelFromString(logLevel)
	if !ok {
		return errors.Errorf("'%s' Isn't a valid log level", logLevel)
	}
	logger.SetLevel(level)
	return nil
}

// SetLogLevelsString the same as SetLogLevels but also parses the level from
// a string
func SetLogLevelsString(logLevel string) error {
	level, ok := LevelFromString(logLevel)
	if !ok {
		return errors.Errorf("Invalid loglevel: %s", logLevel)
	}
	SetLogLevels(level)
	return nil
}

// SetLogLevels sets the log level for all subsystem loggers to the passed
// level.
func SetLogLevels(logLevel Level) {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()
	for _, logger := range subsystemLoggers {
		logger.SetLevel(logLevel)
	}
}

// SupportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func SupportedSubsystems() []string {
	subsystemLoggersMutex.Lock()
	defer subsystemLoggersMutex.Unlock()
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}
	sort.Strings(subsystems)
	return subsystems
}

// ParseAndSetLogLevels attempts to parse the specified log level and set the
// levels accordingly. An appropriate error is returned if anything is
// invalid.
//
// The level is either a single level applied to all subsystems, or a comma
// separated list of <subsystem>=<level> pairs.
func ParseAndSetLogLevels(logLevel string) error {
	if !strings.Contains(logLevel, ",") && !strings.Contains(logLevel, "=") {
		return SetLogLevelsString(logLevel)
	}

	for _, logLevelPair := range strings.Split(logLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			return errors.Errorf("the specified log level contains an invalid subsystem/level pair [%s]", logLevelPair)
		}

		fields := strings.Split(logLevelPair, "=")
		subsysID, levelString := fields[0], fields[1]
		err := SetLogLevel(subsysID, levelString)
		if err != nil {
			return errors.Wrapf(err, "the specified subsystem [%s] is invalid -- "+
				"supported subsystems are %s", subsysID, strings.Join(SupportedSubsystems(), ", "))
		}
	}
	return nil
}

// nopCloser keeps the backend from closing writers it does not own
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
