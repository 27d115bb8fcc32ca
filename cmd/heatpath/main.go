// Command heatpath finds minimum-cost routes through grayscale cost fields,
// both single images and ordered frame sequences.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heatpath/heatpath/internal/cli"
	"github.com/heatpath/heatpath/search"
)

// Populated via -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version, commit, date)
	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "heatpath:", err)
		switch {
		case errors.Is(err, search.ErrCanceled) || errors.Is(err, context.Canceled):
			os.Exit(130)
		case errors.Is(err, search.ErrNoPath):
			os.Exit(2)
		default:
			os.Exit(1)
		}
	}
}
