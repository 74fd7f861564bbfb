// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"dbgwalk/internal/cli"
	"dbgwalk/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitRuntime   = 3
	ExitCancelled = 130
)

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	defer klog.Flush()
	return exitCode(ctx, cli.Execute(ctx, argv, stdout, stderr), stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func exitCode(ctx context.Context, err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return ExitOK
	case writers.IsBrokenPipe(err):
		// downstream (e.g. `head`) closed early
		return ExitOK
	case ctx.Err() != nil || errors.Is(err, context.Canceled):
		_, _ = fmt.Fprintln(stderr, "dbgwalk: interrupted")
		return ExitCancelled
	case cli.IsUsage(err):
		_, _ = fmt.Fprintf(stderr, "dbgwalk: %v\nRun 'dbgwalk --help' for usage.\n", err)
		return ExitUsage
	default:
		_, _ = fmt.Fprintf(stderr, "dbgwalk: %v\n", err)
		return ExitRuntime
	}
}
