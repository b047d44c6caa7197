// Command shieldchart derives, analyses and draws geomantic shield charts.
//
// Usage:
//
//	shieldchart chart 1 2 4 8            # houses, partitions and tours as YAML
//	shieldchart render 1 2 4 8 -o c.svg  # one drawing
//	shieldchart batch --out sdi          # all 65 536 drawings
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
