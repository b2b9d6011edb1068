package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"meeting-scheduler/internal/domain/grid"
	"meeting-scheduler/internal/domain/participant"
	reqdto "meeting-scheduler/internal/handler/dto/request"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

var (
	ErrDuplicateName   = errors.New("duplicate participant name")
	ErrUnknownBuyer    = errors.New("preference references an unknown buyer")
	ErrMixedPreference = errors.New("supplier cannot set both include and exclude")
)

// EventFile is the YAML event definition read by schedulectl.
type EventFile struct {
	Name      string          `yaml:"name"`
	TimeZone  string          `yaml:"timezone"`
	Event     EventSection    `yaml:"event"`
	Suppliers []SupplierEntry `yaml:"suppliers"`
	Buyers    []BuyerEntry    `yaml:"buyers"`
}

type EventSection struct {
	StartDate       string       `yaml:"start_date"`
	EndDate         string       `yaml:"end_date"`
	DayStart        string       `yaml:"day_start"`
	DayEnd          string       `yaml:"day_end"`
	MeetingDuration int          `yaml:"meeting_duration"`
	Breaks          []BreakEntry `yaml:"breaks"`
}

type BreakEntry struct {
	Label string `yaml:"label"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// SupplierEntry refers to buyers by name in include/exclude.
type SupplierEntry struct {
	Name            string   `yaml:"name"`
	Company         string   `yaml:"company"`
	MeetingDuration int      `yaml:"meeting_duration"`
	Include         []string `yaml:"include"`
	Exclude         []string `yaml:"exclude"`
}

type BuyerEntry struct {
	Name    string `yaml:"name"`
	Company string `yaml:"company"`
}

// Event is a resolved event file, ready for generation.
type Event struct {
	Name      string
	Config    grid.EventConfig
	Suppliers []*participant.Supplier
	Buyers    []*participant.Buyer
}

func LoadEventFile(path string) (*EventFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event file: %w", err)
	}
	return ParseEventFile(data)
}

// ParseEventFile rejects unknown keys so typos do not silently drop settings.
func ParseEventFile(data []byte) (*EventFile, error) {
	var f EventFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &f, nil
}

// participant ids are derived from names so repeated runs order ties the same way
func participantID(kind, name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+name))
}

func (f *EventFile) Resolve() (*Event, error) {
	loc := time.UTC
	if f.TimeZone != "" {
		l, err := time.LoadLocation(f.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("timezone: %w", err)
		}
		loc = l
	}

	cfg, err := f.eventRequest().ToDomain(loc)
	if err != nil {
		return nil, err
	}

	buyerIDs := make(map[string]uuid.UUID, len(f.Buyers))
	buyers := make([]*participant.Buyer, 0, len(f.Buyers))
	for i, b := range f.Buyers {
		if _, dup := buyerIDs[b.Name]; dup {
			return nil, fmt.Errorf("buyers[%d]: %w: %q", i, ErrDuplicateName, b.Name)
		}
		buyer, err := participant.NewBuyer(participantID("buyer", b.Name), b.Name, b.Company)
		if err != nil {
			return nil, fmt.Errorf("buyers[%d]: %w", i, err)
		}
		buyerIDs[b.Name] = buyer.ID()
		buyers = append(buyers, buyer)
	}

	seen := make(map[string]bool, len(f.Suppliers))
	suppliers := make([]*participant.Supplier, 0, len(f.Suppliers))
	for i, s := range f.Suppliers {
		if seen[s.Name] {
			return nil, fmt.Errorf("suppliers[%d]: %w: %q", i, ErrDuplicateName, s.Name)
		}
		seen[s.Name] = true

		pref, err := s.preference(buyerIDs)
		if err != nil {
			return nil, fmt.Errorf("suppliers[%d]: %w", i, err)
		}
		supplier, err := participant.NewSupplier(participantID("supplier", s.Name), s.Name, s.Company, s.MeetingDuration, pref)
		if err != nil {
			return nil, fmt.Errorf("suppliers[%d]: %w", i, err)
		}
		suppliers = append(suppliers, supplier)
	}

	return &Event{Name: f.Name, Config: cfg, Suppliers: suppliers, Buyers: buyers}, nil
}

func (f *EventFile) eventRequest() reqdto.EventConfigRequest {
	breaks := make([]reqdto.BreakRequest, 0, len(f.Event.Breaks))
	for _, b := range f.Event.Breaks {
		breaks = append(breaks, reqdto.BreakRequest{Label: b.Label, Start: b.Start, End: b.End})
	}
	return reqdto.EventConfigRequest{
		StartDate:       f.Event.StartDate,
		EndDate:         f.Event.EndDate,
		DayStart:        f.Event.DayStart,
		DayEnd:          f.Event.DayEnd,
		MeetingDuration: f.Event.MeetingDuration,
		Breaks:          breaks,
	}
}

func (s SupplierEntry) preference(buyerIDs map[string]uuid.UUID) (participant.Preference, error) {
	if len(s.Include) > 0 && len(s.Exclude) > 0 {
		return participant.Preference{}, ErrMixedPreference
	}
	mode, names := string(participant.ModeAll), []string(nil)
	switch {
	case len(s.Include) > 0:
		mode, names = string(participant.ModeInclude), s.Include
	case len(s.Exclude) > 0:
		mode, names = string(participant.ModeExclude), s.Exclude
	}

	ids := make([]uuid.UUID, 0, len(names))
	for _, n := range names {
		id, ok := buyerIDs[n]
		if !ok {
			return participant.Preference{}, fmt.Errorf("%w: %q", ErrUnknownBuyer, n)
		}
		ids = append(ids, id)
	}
	return participant.NewPreference(mode, ids)
}
