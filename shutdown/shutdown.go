// Package shutdown ties process signals to context cancellation and runs
// registered cleanup hooks (flushing telemetry, writing partial reports)
// before the top-level context is canceled.
package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Hook is a cleanup step. The context passed in is still alive.
type Hook func(ctx context.Context) error

type namedHook struct {
	name string
	hook Hook
}

var (
	mut     sync.Mutex     //nolint:gochecknoglobals
	hooks   []namedHook    //nolint:gochecknoglobals
	trigger chan os.Signal //nolint:gochecknoglobals
)

// BeforeShutdown registers a hook to run once shutdown begins. Hooks run in
// reverse registration order, like deferred calls, so something registered
// later (a tracer using the exporter) is torn down first. A failing hook is
// logged and does not stop the others.
func BeforeShutdown(name string, h Hook) {
	mut.Lock()
	defer mut.Unlock()

	hooks = append(hooks, namedHook{name: name, hook: h})
}

// Shutdown triggers the shutdown process programmatically. It is a no-op
// if SetupHandler was never called or shutdown has already started.
func Shutdown() {
	mut.Lock()
	defer mut.Unlock()

	if trigger == nil {
		return
	}

	select {
	case trigger <- os.Interrupt:
	default:
	}
}

// SetupHandler listens for SIGINT and SIGTERM and returns a child of parent
// that is canceled after every hook has run.
func SetupHandler(parent context.Context) context.Context {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	mut.Lock()
	trigger = ch
	mut.Unlock()

	ctx, cancel := context.WithCancel(parent)

	go func() {
		var sig os.Signal

		select {
		case sig = <-ch:
		case <-parent.Done():
		}

		signal.Stop(ch)

		mut.Lock()
		trigger = nil
		mut.Unlock()

		if sig != nil {
			slog.Warn("received "+sig.String()+", shutting down")
		}

		cleanup(ctx)
		cancel()
	}()

	return ctx
}

func cleanup(ctx context.Context) {
	mut.Lock()
	pending := hooks
	hooks = nil
	mut.Unlock()

	for i := len(pending) - 1; i >= 0; i-- {
		if err := pending[i].hook(ctx); err != nil {
			slog.Error("shutdown hook failed", "hook", pending[i].name, "error", err)
		}
	}
}
