package main

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/pagebotio/pagebot/pkg/logger"

	"github.com/pagebotio/pagebot/cmd"
	errUtils "github.com/pagebotio/pagebot/errors"
)

func main() {
	// Set up signal handling so CI cancellation produces the right exit code.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		// Exit with correct POSIX exit code (128 + signal number).
		if s, ok := sig.(syscall.Signal); ok {
			errUtils.OsExit(128 + int(s))
		}
		errUtils.OsExit(130)
	}()

	// Timestamps add nothing in CI logs; the runner prefixes its own.
	log.Default().SetReportTimestamp(false)

	errUtils.OsExit(run())
}

// run executes the root command and returns the process exit code.
// Keeping os.Exit out of main's call path makes the exit code testable.
func run() int {
	err := cmd.Execute()
	if err != nil {
		log.Error(err.Error())
		exitCode := errUtils.GetExitCode(err)
		log.Debug("Exiting with exit code", "code", exitCode)
		return exitCode
	}

	return 0
}
