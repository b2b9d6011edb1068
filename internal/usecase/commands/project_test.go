//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	reqdto "meeting-scheduler/internal/handler/dto/request"
	"meeting-scheduler/internal/infra/memstore"
	"meeting-scheduler/internal/pkg/clock"
	"meeting-scheduler/internal/pkg/config"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/pkg/ptr"
	"meeting-scheduler/internal/usecase/commands"
	"meeting-scheduler/internal/usecase/shared"
	"meeting-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type projectFixture struct {
	repo      shared.ProjectRepository
	workspace *shared.Workspace
	projects  commands.ProjectCommands
	schedules commands.ScheduleCommands
}

func newProjectFixture() *projectFixture {
	cfg := config.NewTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	repo := memstore.NewProjectRepository(logger)
	ws := shared.NewWorkspace(cfg)
	return &projectFixture{
		repo:      repo,
		workspace: ws,
		projects:  commands.NewProjectCommands(repo, ws, clk, cfg, logger),
		schedules: commands.NewScheduleCommands(repo, ws, &syncGenerator{}, clk, cfg, logger),
	}
}

func TestProjectCommands_CreateProject(t *testing.T) {
	t.Run("作成したプロジェクトがアクティブになる", func(t *testing.T) {
		f := newProjectFixture()
		ctx := context.Background()

		id, err := f.projects.CreateProject(ctx, builder.NewProjectBuilder().WithName("Expo").BuildCreateRequestDTO())
		require.NoError(t, err)

		active, ok := f.workspace.Active()
		require.True(t, ok)
		assert.Equal(t, id, active)

		p, err := f.repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Expo", p.Name())
		// 2日 x (09:00-12:00 の30分枠6つ)、うち1枠は休憩
		assert.Equal(t, 12, p.Schedule().SlotCount())
		assert.Zero(t, p.Schedule().MeetingCount())
	})

	t.Run("不正なイベント設定はバリデーションエラー", func(t *testing.T) {
		f := newProjectFixture()
		req := builder.NewProjectBuilder().WithName("Expo").BuildCreateRequestDTO()
		req.Event.DayEnd = "08:00"

		_, err := f.projects.CreateProject(context.Background(), req)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		_, ok := f.workspace.Active()
		assert.False(t, ok)
	})

	t.Run("別プロジェクトを開くと履歴が消える", func(t *testing.T) {
		f := newProjectFixture()
		ctx := context.Background()

		first, err := f.projects.CreateProject(ctx, builder.NewProjectBuilder().WithName("First").BuildCreateRequestDTO())
		require.NoError(t, err)
		_, err = f.schedules.Generate(ctx, reqdto.GenerateScheduleRequest{})
		require.NoError(t, err)

		_, err = f.projects.CreateProject(ctx, builder.NewProjectBuilder().WithName("Second").BuildCreateRequestDTO())
		require.NoError(t, err)
		require.NoError(t, f.projects.OpenProject(ctx, first))

		_, err = f.schedules.Undo(ctx)
		assert.ErrorIs(t, err, errs.ErrNothingToUndo)
		p, err := f.repo.FindByID(ctx, first)
		require.NoError(t, err)
		assert.NotZero(t, p.Schedule().MeetingCount())
	})
}

func TestProjectCommands_OpenProject(t *testing.T) {
	f := newProjectFixture()
	err := f.projects.OpenProject(context.Background(), uuid.New())
	assert.True(t, errs.Is(err, errs.ErrProjectNotFound))
}

func TestProjectCommands_UpdateSupplier(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()
	id, err := f.projects.CreateProject(ctx, builder.NewProjectBuilder().WithName("Expo").BuildCreateRequestDTO())
	require.NoError(t, err)
	p, err := f.repo.FindByID(ctx, id)
	require.NoError(t, err)
	supplier := p.Directory().Suppliers()[0]
	buyer := p.Directory().Buyers()[1]
	duration := supplier.MeetingDuration()

	t.Run("省略したフィールドは維持される", func(t *testing.T) {
		err := f.projects.UpdateSupplier(ctx, supplier.ID(), reqdto.UpdateSupplierRequest{
			Name: ptr.To("Acme Corp"),
			Preference: &reqdto.PatchPreferenceRequest{
				Mode:     ptr.To("exclude"),
				BuyerIDs: []uuid.UUID{buyer.ID()},
			},
		})
		require.NoError(t, err)

		updated, ok := p.Directory().Supplier(supplier.ID())
		require.True(t, ok)
		assert.Equal(t, "Acme Corp", updated.Name())
		assert.Equal(t, duration, updated.MeetingDuration())
		assert.False(t, p.Directory().Permits(supplier.ID(), buyer.ID()))
	})

	t.Run("unknown supplier", func(t *testing.T) {
		err := f.projects.UpdateSupplier(ctx, uuid.New(), reqdto.UpdateSupplierRequest{Name: ptr.To("x")})
		assert.ErrorIs(t, err, errs.ErrSupplierNotFound)
	})

	t.Run("invalid preference mode", func(t *testing.T) {
		err := f.projects.UpdateSupplier(ctx, supplier.ID(), reqdto.UpdateSupplierRequest{
			Preference: &reqdto.PatchPreferenceRequest{Mode: ptr.To("some")},
		})
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}
