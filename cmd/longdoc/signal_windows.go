//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext cancels the assembly on Ctrl-C, so no partial document is
// written. syscall.SIGTERM is not available on Windows.
func notifyContext(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
