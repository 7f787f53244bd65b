package panics

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/kaspanet/utxosettle/infrastructure/logger"
)

const exitHandlerTimeout = 5 * time.Second

// HandlePanic recovers a panic, logs it along with the stack trace and exits.
// It must be deferred directly. goroutineStackTrace, when not nil, is the
// stack trace of where the panicking goroutine was spawned.
func HandlePanic(log *logger.Logger, goroutineStackTrace []byte) {
	err := recover()
	if err == nil {
		return
	}

	reason := fmt.Sprintf("Fatal error: %+v", err)
	exit(log, reason, debug.Stack(), goroutineStackTrace)
}

// exit logs reason and whichever stack traces are not nil, waits for the log
// to be flushed, and exits. The log may not be running, in which case the
// reason is written to stderr.
func exit(log *logger.Logger, reason string, currentThreadStackTrace []byte, goroutineStackTrace []byte) {
	if !log.Backend().IsRunning() {
		fmt.Fprintf(os.Stderr, "Exiting: %s\n", reason)
		if currentThreadStackTrace != nil {
			fmt.Fprintf(os.Stderr, "Stack trace: %s\n", currentThreadStackTrace)
		}
		os.Exit(1)
	}

	exitHandlerDone := make(chan struct{})
	go func() {
		log.Criticalf("Exiting: %s", reason)
		if goroutineStackTrace != nil {
			log.Criticalf("Goroutine stack trace: %s", goroutineStackTrace)
		}
		if currentThreadStackTrace != nil {
			log.Criticalf("Stack trace: %s", currentThreadStackTrace)
		}
		log.Backend().Close()
		close(exitHandlerDone)
	}()

	select {
	case <-time.After(exitHandlerTimeout):
		fmt.Fprintln(os.Stderr, "Couldn't exit gracefully.")
	case <-exitHandlerDone:
	}
	fmt.Fprintln(os.Stderr, "Exiting...")
	os.Exit(1)
}
