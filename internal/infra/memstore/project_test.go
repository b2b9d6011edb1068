//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"meeting-scheduler/internal/domain/project"
	"meeting-scheduler/internal/infra"
	"meeting-scheduler/internal/infra/memstore"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProject(t *testing.T, name string) *project.Project {
	t.Helper()
	p, err := project.NewProject(name, builder.NewEventBuilder().Build(), builder.Suppliers(1), builder.Buyers(1), time.Now())
	require.NoError(t, err)
	return p
}

func TestProjectRepository(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("save and find", func(t *testing.T) {
		repo := memstore.NewProjectRepository(logger)
		p := newProject(t, "Expo")
		require.NoError(t, repo.Save(ctx, p))

		got, err := repo.FindByID(ctx, p.ID())
		require.NoError(t, err)
		assert.Same(t, p, got)
	})

	t.Run("not found is a repository error", func(t *testing.T) {
		repo := memstore.NewProjectRepository(logger)
		_, err := repo.FindByID(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.True(t, errors.Is(err, errs.ErrProjectNotFound))
	})

	t.Run("list keeps creation order and saving twice does not duplicate", func(t *testing.T) {
		repo := memstore.NewProjectRepository(logger)
		a, b := newProject(t, "A"), newProject(t, "B")
		require.NoError(t, repo.Save(ctx, a))
		require.NoError(t, repo.Save(ctx, b))
		require.NoError(t, repo.Save(ctx, a))

		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "A", list[0].Name())
		assert.Equal(t, "B", list[1].Name())
	})

	t.Run("nil project is rejected", func(t *testing.T) {
		repo := memstore.NewProjectRepository(logger)
		err := repo.Save(ctx, nil)
		assert.True(t, infra.IsKind(err, infra.KindInvalidInput))
	})
}
