package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lesionfront/frontier"
)

func TestMask_MarkUnmark(t *testing.T) {
	m := frontier.NewMask(4)
	require.True(t, m.Mark(2))
	require.False(t, m.Mark(2), "second Mark must report already marked")
	require.True(t, m.IsMarked(2))
	require.Equal(t, 1, m.Count())

	require.True(t, m.Unmark(2))
	require.False(t, m.Unmark(2))
	require.False(t, m.IsMarked(2))
	require.Zero(t, m.Count())

	m.Mark(0)
	m.Reset(8)
	require.Equal(t, 8, m.Len())
	require.False(t, m.IsMarked(0))
	require.Zero(t, m.Count())
}

func TestQueues_PushRejectsDuplicates(t *testing.T) {
	q := frontier.NewQueues(10)
	require.True(t, q.PushCurrent(3))
	require.False(t, q.PushCurrent(3))
	require.False(t, q.PushNext(3), "a pixel may live in only one queue")
	require.True(t, q.PushNext(4))
	require.Equal(t, 1, q.Len())
	require.Equal(t, 1, q.NextLen())
	require.True(t, q.Consistent())
}

func TestQueues_DrainSwapLifecycle(t *testing.T) {
	q := frontier.NewQueues(10)
	for _, idx := range []int{1, 2, 3} {
		q.PushCurrent(idx)
	}
	require.True(t, q.Consistent())

	popped := q.Drain()
	assert.Equal(t, []int{1, 2, 3}, popped)
	assert.Zero(t, q.Len())
	for _, idx := range popped {
		assert.False(t, q.IsQueued(idx), "popped pixel %d must be unmarked", idx)
	}
	require.True(t, q.Consistent())

	// A popped pixel can be re-queued for the next wavefront.
	require.True(t, q.PushNext(2))
	require.True(t, q.PushNext(7))
	require.True(t, q.Consistent())

	q.SwapAndClear()
	require.Equal(t, []int{2, 7}, q.Current())
	require.Zero(t, q.NextLen())
	require.True(t, q.Consistent())
}

func TestQueues_ResetKeepsInvariant(t *testing.T) {
	q := frontier.NewQueues(5)
	q.PushCurrent(0)
	q.PushNext(1)
	q.Reset(12)
	require.Zero(t, q.Len())
	require.Zero(t, q.NextLen())
	require.Zero(t, q.Mask().Count())
	require.Equal(t, 12, q.Mask().Len())
	require.True(t, q.Consistent())
}

func TestQueues_ConsistentDetectsDrift(t *testing.T) {
	q := frontier.NewQueues(5)
	q.PushCurrent(0)
	q.Mask().Mark(4) // marked but not queued
	require.False(t, q.Consistent())
}
