// inputctl configures and exercises input processor pipelines.
//
// It lists the registered processors, runs values through a processors
// string, and manages the per-control profiles stored in SQLite.
//
//	inputctl processors --match '*deadzone*'
//	inputctl process --type stick --processors 'stickDeadzone(min=0.2)' 0.1,0.05 0.7,0.7
//	inputctl profile set leftTrigger --type axis --processors 'axisDeadzone, scale(factor=2)'
//	inputctl profile apply leftTrigger 0.3 0.9
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the command line in args, separated from main for
// testability.
func run(ctx context.Context, args []string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
