//go:build unit

package project_test

import (
	"testing"
	"time"

	"meeting-scheduler/internal/domain/grid"
	"meeting-scheduler/internal/domain/participant"
	"meeting-scheduler/internal/domain/project"
	"meeting-scheduler/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	suppliers, buyers := builder.Suppliers(2), builder.Buyers(2)

	t.Run("正常系: グリッドを作成しミーティングは空", func(t *testing.T) {
		cfg := builder.NewEventBuilder().WithHours("09:00", "10:00").Build()

		p, err := project.NewProject("  Expo  ", cfg, suppliers, buyers, now)
		require.NoError(t, err)

		assert.Equal(t, "Expo", p.Name())
		assert.Equal(t, 2, p.Schedule().SlotCount())
		assert.Zero(t, p.Schedule().MeetingCount())
		assert.Equal(t, now, p.CreatedAt())
	})

	t.Run("異常系: 名前が空", func(t *testing.T) {
		_, err := project.NewProject(" ", builder.NewEventBuilder().Build(), suppliers, buyers, now)
		assert.ErrorIs(t, err, project.ErrEmptyName)
	})

	t.Run("異常系: 不正なイベント設定", func(t *testing.T) {
		cfg := builder.NewEventBuilder().WithHours("12:00", "09:00").Build()
		_, err := project.NewProject("Expo", cfg, suppliers, buyers, now)
		assert.ErrorIs(t, err, grid.ErrInvalidConfig)
	})

	t.Run("異常系: 参加者の重複", func(t *testing.T) {
		dup := append(builder.Suppliers(1), suppliers[0], suppliers[0])
		_, err := project.NewProject("Expo", builder.NewEventBuilder().Build(), dup, buyers, now)
		assert.ErrorIs(t, err, participant.ErrDuplicateParticipant)
	})
}

func TestProject_UpdateSupplier(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)
	suppliers, buyers := builder.Suppliers(1), builder.Buyers(2)
	p, err := project.NewProject("Expo", builder.NewEventBuilder().Build(), suppliers, buyers, now)
	require.NoError(t, err)

	updated, err := p.UpdateSupplier(suppliers[0].ID(), "Renamed", 45, participant.ExcludeOnly(buyers[0].ID()), later)
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name())
	assert.Equal(t, 45, updated.MeetingDuration())
	assert.False(t, p.Directory().Permits(suppliers[0].ID(), buyers[0].ID()))
	assert.True(t, p.Directory().Permits(suppliers[0].ID(), buyers[1].ID()))
	assert.Equal(t, later, p.UpdatedAt())

	_, err = p.UpdateSupplier(uuid.New(), "x", 30, participant.MeetAll(), later)
	assert.ErrorIs(t, err, project.ErrSupplierNotFound)
}
