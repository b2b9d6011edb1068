// Package history keeps a bounded undo/redo stack of full-state snapshots.
//
// A Tracker holds no domain knowledge. It is not safe for concurrent use: the
// caller serializes Push/Undo/Redo together with the mutation they belong to.
package history

import "slices"

const DefaultLimit = 20

type Tracker[T any] struct {
	past   []T
	future []T
	limit  int
}

func NewTracker[T any](limit int) *Tracker[T] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Tracker[T]{limit: limit}
}

// Push records the state as it was before a new action. Any redo entries are dropped.
func (t *Tracker[T]) Push(snapshot T) {
	t.past = t.pushBounded(t.past, snapshot)
	t.future = nil
}

// Undo returns the most recent past snapshot and parks current on the redo stack.
func (t *Tracker[T]) Undo(current T) (T, bool) {
	var zero T
	if len(t.past) == 0 {
		return zero, false
	}
	prev := t.past[len(t.past)-1]
	t.past[len(t.past)-1] = zero
	t.past = t.past[:len(t.past)-1]
	t.future = t.pushBounded(t.future, current)
	return prev, true
}

// Redo is the mirror of Undo.
func (t *Tracker[T]) Redo(current T) (T, bool) {
	var zero T
	if len(t.future) == 0 {
		return zero, false
	}
	next := t.future[len(t.future)-1]
	t.future[len(t.future)-1] = zero
	t.future = t.future[:len(t.future)-1]
	t.past = t.pushBounded(t.past, current)
	return next, true
}

func (t *Tracker[T]) Clear() {
	t.past = nil
	t.future = nil
}

func (t *Tracker[T]) CanUndo() bool  { return len(t.past) > 0 }
func (t *Tracker[T]) CanRedo() bool  { return len(t.future) > 0 }
func (t *Tracker[T]) UndoDepth() int { return len(t.past) }
func (t *Tracker[T]) RedoDepth() int { return len(t.future) }
func (t *Tracker[T]) Limit() int     { return t.limit }

func (t *Tracker[T]) pushBounded(stack []T, v T) []T {
	stack = append(stack, v)
	if over := len(stack) - t.limit; over > 0 {
		stack = slices.Delete(stack, 0, over)
	}
	return stack
}
