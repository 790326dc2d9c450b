package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/timescale/examplecheck/internal/examplecheck/logging"
)

// NotifyContext returns a context cancelled on the first SIGINT or SIGTERM.
// Unlike [signal.NotifyContext] it logs the signal and restores default
// signal handling, so a second interrupt kills the process.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigChan:
			logging.Info("Received interrupt signal, press control-C again to exit", zap.Stringer("signal", sig))
			signal.Stop(sigChan)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		cancel()
		signal.Stop(sigChan)
	}
}

// Main runs execute under a signal-aware context, recovering panics, and
// returns the process exit code.
func Main(execute func(context.Context) error) (code int) {
	ctx, cancel := NotifyContext(context.Background())
	defer func() {
		cancel()
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "panic: %v\n", r)
			code = ExitGeneralError
		}
	}()

	return exitCode(execute(ctx))
}
