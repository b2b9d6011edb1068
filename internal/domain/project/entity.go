package project

import (
	"errors"
	"strings"
	"time"

	"meeting-scheduler/internal/domain/grid"
	"meeting-scheduler/internal/domain/participant"
	"meeting-scheduler/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("project name cannot be empty")
	ErrSupplierNotFound = errors.New("supplier not found in project")
)

// Project is one event: its configuration, participants and current schedule.
type Project struct {
	id        uuid.UUID
	name      string
	config    grid.EventConfig
	directory *participant.Directory
	schedule  *schedule.Schedule
	createdAt time.Time
	updatedAt time.Time
}

// NewProject validates the configuration and lays out the slot grid with no meetings.
func NewProject(name string, cfg grid.EventConfig, suppliers []*participant.Supplier, buyers []*participant.Buyer, now time.Time) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	dir, err := participant.NewDirectory(suppliers, buyers)
	if err != nil {
		return nil, err
	}
	slots, err := grid.Build(cfg)
	if err != nil {
		return nil, err
	}

	return &Project{
		id:        uuid.New(),
		name:      name,
		config:    cfg,
		directory: dir,
		schedule:  schedule.Empty(slots),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (p *Project) ReplaceSchedule(s *schedule.Schedule, now time.Time) {
	p.schedule = s
	p.updatedAt = now
}

func (p *Project) UpdateSupplier(id uuid.UUID, name string, meetingDuration int, pref participant.Preference, now time.Time) (*participant.Supplier, error) {
	supplier, ok := p.directory.Supplier(id)
	if !ok {
		return nil, ErrSupplierNotFound
	}
	if err := supplier.Update(name, meetingDuration, pref); err != nil {
		return nil, err
	}
	p.updatedAt = now
	return supplier, nil
}

func (p *Project) ID() uuid.UUID                     { return p.id }
func (p *Project) Name() string                      { return p.name }
func (p *Project) Config() grid.EventConfig          { return p.config }
func (p *Project) Directory() *participant.Directory { return p.directory }
func (p *Project) Schedule() *schedule.Schedule      { return p.schedule }
func (p *Project) CreatedAt() time.Time              { return p.createdAt }
func (p *Project) UpdatedAt() time.Time              { return p.updatedAt }
