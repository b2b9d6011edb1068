//go:build unit

package shared_test

import (
	"testing"

	"meeting-scheduler/internal/domain/schedule"
	"meeting-scheduler/internal/pkg/config"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspace(t *testing.T) {
	t.Run("no active project", func(t *testing.T) {
		w := shared.NewWorkspace(config.NewTestConfig())
		_, ok := w.Active()
		assert.False(t, ok)

		err := w.Write(func(shared.Session) error { return nil })
		assert.ErrorIs(t, err, errs.ErrNoActiveProject)
		err = w.Read(func(shared.Session) error { return nil })
		assert.ErrorIs(t, err, errs.ErrNoActiveProject)
	})

	t.Run("opening another project clears both stacks", func(t *testing.T) {
		w := shared.NewWorkspace(config.NewTestConfig())
		first := uuid.New()
		w.Open(first)

		require.NoError(t, w.Write(func(s shared.Session) error {
			assert.Equal(t, first, s.ActiveID)
			s.History.Push(schedule.Empty(nil))
			s.History.Push(schedule.Empty(nil))
			_, ok := s.History.Undo(schedule.Empty(nil))
			require.True(t, ok)
			return nil
		}))

		w.Open(uuid.New())

		require.NoError(t, w.Read(func(s shared.Session) error {
			assert.False(t, s.History.CanUndo())
			assert.False(t, s.History.CanRedo())
			return nil
		}))
	})

	t.Run("history depth follows configuration", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Scheduler.HistoryLimit = 3
		w := shared.NewWorkspace(cfg)
		w.Open(uuid.New())

		require.NoError(t, w.Write(func(s shared.Session) error {
			for range 5 {
				s.History.Push(schedule.Empty(nil))
			}
			assert.Equal(t, 3, s.History.UndoDepth())
			return nil
		}))
	})
}
