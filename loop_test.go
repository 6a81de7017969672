package evmgr

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitFor polls cond until it's true or the deadline passes, to avoid
// sleeping a fixed duration for an event that usually happens instantly.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	tick := time.NewTicker(time.Millisecond)
	defer tick.Stop()
	for {
		if cond() {
			return
		}
		select {
		case <-tick.C:
		case <-deadline:
			t.Fatal("condition was not met before timeout")
		}
	}
}

func TestRunLoop_ProcessesQueuedEventsAndStopsOnStopLoop(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	var delivered int32
	require.NoError(t, m.Subscribe(0, "h", func(EventID, any, any) {
		atomic.AddInt32(&delivered, 1)
	}, nil, PriorityNormal))

	loopErr := make(chan error, 1)
	go func() { loopErr <- m.RunLoop(context.Background()) }()

	require.NoError(t, m.PublishAsync(0, nil, PriorityHigh))
	require.NoError(t, m.PublishAsync(0, nil, PriorityNormal))

	waitFor(t, time.Second, func() bool { return atomic.LoadInt32(&delivered) == 2 })

	require.NoError(t, m.StopLoop())
	select {
	case err := <-loopErr:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("RunLoop did not return after StopLoop")
	}
}

func TestRunLoop_ExitsOnContextCancellation(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	loopErr := make(chan error, 1)
	go func() { loopErr <- m.RunLoop(ctx) }()

	// Give RunLoop a chance to reach its wait before cancelling, though
	// correctness does not depend on this: cancellation must win even if
	// it races the first Wait.
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-loopErr:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("RunLoop did not return after context cancellation")
	}
}

func TestRunLoop_ReturnsOnClose(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	loopErr := make(chan error, 1)
	go func() { loopErr <- m.RunLoop(context.Background()) }()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, m.Close())

	select {
	case err := <-loopErr:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("RunLoop did not return after Close")
	}
}

func TestRunLoop_OnClosedManagerReturnsImmediately(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	require.NoError(t, m.Close())

	err = m.RunLoop(context.Background())
	assert.ErrorIs(t, err, ErrManagerClosed)
}

func TestStopLoop_IsSafeWithoutARunningLoop(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	assert.NoError(t, m.StopLoop())
}

func TestProcessAll_DrainsEveryPriorityInOneCall(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	var delivered []EventID
	handler := func(id EventID, _ any, _ any) { delivered = append(delivered, id) }
	for _, id := range []EventID{0, 1, 2} {
		require.NoError(t, m.Subscribe(id, "h", handler, nil, PriorityNormal))
	}

	require.NoError(t, m.PublishAsync(1, nil, PriorityNormal))
	require.NoError(t, m.PublishAsync(0, nil, PriorityHigh))
	require.NoError(t, m.PublishAsync(2, nil, PriorityLow))

	drained, err := m.ProcessAll()
	require.NoError(t, err)
	assert.Equal(t, 3, drained)
	assert.Equal(t, []EventID{0, 1, 2}, delivered)
	assert.Equal(t, 0, m.QueueSize())
}
