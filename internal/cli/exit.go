package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit statuses of the commands.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// UsageError is returned when a command is invoked with the wrong arguments.
type UsageError struct {
	Usage  string
	Reason string
}

func (e *UsageError) Error() string {
	if e.Reason == "" {
		return e.Usage
	}
	return e.Reason + "\n" + e.Usage
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var u *UsageError
	if errors.As(err, &u) {
		return ExitUsage
	}
	return ExitFailure
}

// ExactArgs is like cobra.ExactArgs but fails with a *UsageError.
func ExactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &UsageError{Usage: usage, Reason: fmt.Sprintf("expected %d arguments, got %d", n, len(args))}
		}
		return nil
	}
}

// UsageOnFlagError makes cmd report bad flags as a *UsageError.
func UsageOnFlagError(cmd *cobra.Command, usage string) {
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Usage: usage, Reason: err.Error()}
	})
}

// Report prints err to stderr and returns the exit status for it. Usage errors
// are printed as plain text; other errors go through logger as one entry, or
// as one plain line if there is no logger yet.
func Report(err error, logger *zap.Logger, stderr io.Writer, command string) int {
	code := ExitCode(err)
	switch {
	case code == ExitOK:
	case code == ExitUsage:
		fmt.Fprintln(stderr, err.Error())
	case logger != nil:
		logger.Error(command+" failed", zap.Error(err))
	default:
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
	}
	if logger != nil {
		_ = logger.Sync()
	}
	return code
}
