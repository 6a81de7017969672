package evmgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityRing_FIFOOrder(t *testing.T) {
	ring := newPriorityRing(4)
	for i := EventID(0); i < 3; i++ {
		require.NoError(t, ring.enqueue(queuedEvent{id: i}))
	}

	for i := EventID(0); i < 3; i++ {
		ev, err := ring.dequeue()
		require.NoError(t, err)
		assert.Equal(t, i, ev.id)
	}
}

func TestPriorityRing_FullAndEmpty(t *testing.T) {
	ring := newPriorityRing(2)
	require.NoError(t, ring.enqueue(queuedEvent{id: 1}))
	require.NoError(t, ring.enqueue(queuedEvent{id: 2}))

	err := ring.enqueue(queuedEvent{id: 3})
	assert.ErrorIs(t, err, ErrQueueFull)

	_, _ = ring.dequeue()
	_, _ = ring.dequeue()
	_, err = ring.dequeue()
	assert.ErrorIs(t, err, ErrQueueEmpty)
}

func TestPriorityRing_WrapsAroundCapacity(t *testing.T) {
	ring := newPriorityRing(3)
	require.NoError(t, ring.enqueue(queuedEvent{id: 1}))
	require.NoError(t, ring.enqueue(queuedEvent{id: 2}))
	ev, err := ring.dequeue()
	require.NoError(t, err)
	assert.EqualValues(t, 1, ev.id)

	require.NoError(t, ring.enqueue(queuedEvent{id: 3}))
	require.NoError(t, ring.enqueue(queuedEvent{id: 4}))

	for _, want := range []EventID{2, 3, 4} {
		ev, err := ring.dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, ev.id)
	}
}

func TestPriorityRing_ClearReleasesOwnedCopies(t *testing.T) {
	ring := newPriorityRing(4)
	require.NoError(t, ring.enqueue(queuedEvent{id: 1, payload: []byte("abc"), owned: true}))
	require.NoError(t, ring.enqueue(queuedEvent{id: 2, payload: []byte("def"), owned: true}))

	ring.clear()
	assert.Equal(t, 0, ring.count)
	for _, node := range ring.nodes {
		assert.Nil(t, node.payload)
	}
	_, err := ring.dequeue()
	assert.ErrorIs(t, err, ErrQueueEmpty)
}

func TestPriorityQueueSet_StrictPriorityOrder(t *testing.T) {
	set := newPriorityQueueSet(4)
	require.NoError(t, set.enqueue(PriorityLow, queuedEvent{id: 2}))
	require.NoError(t, set.enqueue(PriorityNormal, queuedEvent{id: 1}))
	require.NoError(t, set.enqueue(PriorityHigh, queuedEvent{id: 0}))

	for _, want := range []EventID{0, 1, 2} {
		id, _, ok := set.dequeueNext()
		require.True(t, ok)
		assert.Equal(t, want, id)
	}

	_, _, ok := set.dequeueNext()
	assert.False(t, ok)
}

func TestPriorityQueueSet_TotalSizeAndClear(t *testing.T) {
	set := newPriorityQueueSet(4)
	require.NoError(t, set.enqueue(PriorityHigh, queuedEvent{id: 0}))
	require.NoError(t, set.enqueue(PriorityLow, queuedEvent{id: 1}))
	assert.Equal(t, 2, set.totalSize())

	set.clear()
	assert.Equal(t, 0, set.totalSize())
}
