// Command labscan extracts lab parameters from scanned reports.
//
// Usage:
//
//	labscan extract report.pdf --format markdown
//	labscan serve --addr :8000
//	labscan mcp
//	labscan catalog
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
