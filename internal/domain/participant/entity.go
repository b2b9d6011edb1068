package participant

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrNameTooLong     = errors.New("name is too long (max 255 characters)")
	ErrInvalidDuration = errors.New("meeting duration must be positive")
)

const (
	MaxNameLength          = 255
	DefaultMeetingDuration = 30
)

type Supplier struct {
	id              uuid.UUID
	name            string
	company         string
	meetingDuration int
	preference      Preference
}

func NewSupplier(id uuid.UUID, name, company string, meetingDuration int, preference Preference) (*Supplier, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if meetingDuration == 0 {
		meetingDuration = DefaultMeetingDuration
	}
	if meetingDuration < 0 {
		return nil, ErrInvalidDuration
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Supplier{
		id:              id,
		name:            strings.TrimSpace(name),
		company:         strings.TrimSpace(company),
		meetingDuration: meetingDuration,
		preference:      preference,
	}, nil
}

// Update is the only way a supplier's preference changes.
func (s *Supplier) Update(name string, meetingDuration int, preference Preference) error {
	if err := validateName(name); err != nil {
		return err
	}
	if meetingDuration <= 0 {
		return ErrInvalidDuration
	}
	s.name = strings.TrimSpace(name)
	s.meetingDuration = meetingDuration
	s.preference = preference
	return nil
}

func (s *Supplier) Permits(buyerID uuid.UUID) bool {
	return s.preference.Permits(buyerID)
}

func (s *Supplier) Clone() *Supplier {
	c := *s
	return &c
}

func (s *Supplier) ID() uuid.UUID          { return s.id }
func (s *Supplier) Name() string           { return s.name }
func (s *Supplier) Company() string        { return s.company }
func (s *Supplier) MeetingDuration() int   { return s.meetingDuration }
func (s *Supplier) Preference() Preference { return s.preference }

type Buyer struct {
	id      uuid.UUID
	name    string
	company string
}

func NewBuyer(id uuid.UUID, name, company string) (*Buyer, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Buyer{
		id:      id,
		name:    strings.TrimSpace(name),
		company: strings.TrimSpace(company),
	}, nil
}

func (b *Buyer) ID() uuid.UUID   { return b.id }
func (b *Buyer) Name() string    { return b.name }
func (b *Buyer) Company() string { return b.company }

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
