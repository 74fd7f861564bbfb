package cli

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// UsageError marks a bad invocation: unknown flags or commands, wrong
// arguments, or an invalid configuration.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }
func (e *UsageError) Cause() error  { return e.Err }

func usage(err error) error {
	if err == nil {
		return nil
	}
	return &UsageError{Err: err}
}

func usagef(format string, args ...any) error { return usage(errors.Errorf(format, args...)) }

// IsUsage reports whether err came from a bad invocation.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// usageArgs wraps a cobra positional-argument validator.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error { return usage(fn(cmd, args)) }
}

// cobra reports an unknown subcommand as a plain error.
func classify(err error) error {
	if err != nil && !IsUsage(err) && strings.HasPrefix(err.Error(), "unknown command") {
		return usage(err)
	}
	return err
}
