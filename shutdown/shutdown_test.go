package shutdown

import (
	"context"
	"errors"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset() {
	mut.Lock()
	defer mut.Unlock()

	hooks = nil
	trigger = nil
}

func waitDone(t *testing.T, ctx context.Context) {
	t.Helper()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not canceled")
	}
}

func TestCleanup_ReverseOrder(t *testing.T) { //nolint:paralleltest
	reset()

	var order []string

	for _, name := range []string{"exporter", "tracer", "report"} {
		BeforeShutdown(name, func(context.Context) error {
			order = append(order, name)

			return nil
		})
	}

	cleanup(t.Context())

	assert.Equal(t, []string{"report", "tracer", "exporter"}, order)

	mut.Lock()
	assert.Nil(t, hooks)
	mut.Unlock()
}

func TestCleanup_FailingHookDoesNotStopOthers(t *testing.T) { //nolint:paralleltest
	reset()

	called := false

	BeforeShutdown("first", func(context.Context) error {
		called = true

		return nil
	})
	BeforeShutdown("broken", func(context.Context) error {
		return errors.New("flush failed") //nolint:err113
	})

	cleanup(t.Context())

	assert.True(t, called)
}

func TestSetupHandler_Signal(t *testing.T) { //nolint:paralleltest
	reset()

	ctx := SetupHandler(t.Context())

	select {
	case <-ctx.Done():
		t.Fatal("context should not be canceled initially")
	default:
	}

	var (
		wg          sync.WaitGroup
		aliveInHook bool
	)

	wg.Add(1)

	BeforeShutdown("probe", func(hookCtx context.Context) error {
		defer wg.Done()

		aliveInHook = hookCtx.Err() == nil

		return nil
	})

	mut.Lock()
	ch := trigger
	mut.Unlock()
	require.NotNil(t, ch)

	ch <- syscall.SIGTERM

	waitDone(t, ctx)
	wg.Wait()

	assert.True(t, aliveInHook)

	mut.Lock()
	assert.Nil(t, trigger)
	mut.Unlock()
}

func TestShutdown_Programmatic(t *testing.T) { //nolint:paralleltest
	reset()

	ctx := SetupHandler(t.Context())

	done := make(chan struct{})

	BeforeShutdown("probe", func(context.Context) error {
		close(done)

		return nil
	})

	Shutdown()

	waitDone(t, ctx)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("hook did not run")
	}
}

func TestShutdown_WithoutSetup(t *testing.T) { //nolint:paralleltest
	reset()

	assert.NotPanics(t, Shutdown)
}

func TestSetupHandler_ParentCanceled(t *testing.T) { //nolint:paralleltest
	reset()

	parent, cancel := context.WithCancel(t.Context())
	ctx := SetupHandler(parent)

	cancel()

	waitDone(t, ctx)
}
