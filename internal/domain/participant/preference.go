package participant

import (
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidPreferenceMode = errors.New("invalid preference mode")

type PreferenceMode string

const (
	ModeAll     PreferenceMode = "all"
	ModeInclude PreferenceMode = "include"
	ModeExclude PreferenceMode = "exclude"
)

func (m PreferenceMode) String() string {
	return string(m)
}

func (m PreferenceMode) IsValid() bool {
	switch m {
	case ModeAll, ModeInclude, ModeExclude:
		return true
	default:
		return false
	}
}

// Priority ranks desired meetings: explicit include requests are placed first.
func (m PreferenceMode) Priority() int {
	switch m {
	case ModeInclude:
		return 3
	case ModeExclude:
		return 1
	default:
		return 2
	}
}

// Preference is one of All, Include(set) or Exclude(set). The zero value meets everyone.
type Preference struct {
	mode   PreferenceMode
	buyers map[uuid.UUID]struct{}
}

func MeetAll() Preference {
	return Preference{mode: ModeAll}
}

func IncludeOnly(buyerIDs ...uuid.UUID) Preference {
	return Preference{mode: ModeInclude, buyers: toSet(buyerIDs)}
}

func ExcludeOnly(buyerIDs ...uuid.UUID) Preference {
	return Preference{mode: ModeExclude, buyers: toSet(buyerIDs)}
}

func NewPreference(mode string, buyerIDs []uuid.UUID) (Preference, error) {
	switch PreferenceMode(strings.ToLower(strings.TrimSpace(mode))) {
	case ModeAll, "":
		return MeetAll(), nil
	case ModeInclude:
		return IncludeOnly(buyerIDs...), nil
	case ModeExclude:
		return ExcludeOnly(buyerIDs...), nil
	default:
		return Preference{}, ErrInvalidPreferenceMode
	}
}

func (p Preference) Mode() PreferenceMode {
	if p.mode == "" {
		return ModeAll
	}
	return p.mode
}

// BuyerIDs is sorted so that two equal preferences render identically.
func (p Preference) BuyerIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.buyers))
	for id := range p.buyers {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids
}

func (p Preference) Permits(buyerID uuid.UUID) bool {
	_, listed := p.buyers[buyerID]
	switch p.Mode() {
	case ModeInclude:
		return listed
	case ModeExclude:
		return !listed
	case ModeAll:
		return true
	default:
		return false
	}
}

func toSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
