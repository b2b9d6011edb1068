//go:build unit

package history_test

import (
	"testing"

	"meeting-scheduler/internal/pkg/history"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker(t *testing.T) {
	t.Run("undo returns the last pushed snapshot", func(t *testing.T) {
		tr := history.NewTracker[int](0)
		tr.Push(1)
		tr.Push(2)

		prev, ok := tr.Undo(3)
		require.True(t, ok)
		assert.Equal(t, 2, prev)
		assert.Equal(t, 1, tr.UndoDepth())
		assert.Equal(t, 1, tr.RedoDepth())
	})

	t.Run("redo restores the state parked by undo", func(t *testing.T) {
		tr := history.NewTracker[string](5)
		tr.Push("a")

		prev, ok := tr.Undo("b")
		require.True(t, ok)
		assert.Equal(t, "a", prev)

		next, ok := tr.Redo(prev)
		require.True(t, ok)
		assert.Equal(t, "b", next)
		assert.True(t, tr.CanUndo())
		assert.False(t, tr.CanRedo())
	})

	t.Run("empty stacks report nothing to do", func(t *testing.T) {
		tr := history.NewTracker[int](3)
		_, ok := tr.Undo(1)
		assert.False(t, ok)
		_, ok = tr.Redo(1)
		assert.False(t, ok)
	})

	t.Run("push after undo invalidates redo", func(t *testing.T) {
		tr := history.NewTracker[int](3)
		tr.Push(1)
		_, _ = tr.Undo(2)
		require.True(t, tr.CanRedo())

		tr.Push(5)
		assert.False(t, tr.CanRedo())
	})

	t.Run("oldest entry is evicted beyond the limit", func(t *testing.T) {
		tr := history.NewTracker[int](3)
		for i := 1; i <= 5; i++ {
			tr.Push(i)
		}
		assert.Equal(t, 3, tr.UndoDepth())

		var got []int
		cur := 6
		for tr.CanUndo() {
			prev, _ := tr.Undo(cur)
			got = append(got, prev)
			cur = prev
		}
		assert.Equal(t, []int{5, 4, 3}, got)
	})

	t.Run("default limit is 20", func(t *testing.T) {
		tr := history.NewTracker[int](-1)
		assert.Equal(t, history.DefaultLimit, tr.Limit())
		for i := 0; i < 25; i++ {
			tr.Push(i)
		}
		assert.Equal(t, 20, tr.UndoDepth())
	})

	t.Run("clear empties both stacks", func(t *testing.T) {
		tr := history.NewTracker[int](3)
		tr.Push(1)
		tr.Push(2)
		_, _ = tr.Undo(3)

		tr.Clear()
		assert.False(t, tr.CanUndo())
		assert.False(t, tr.CanRedo())
	})
}
