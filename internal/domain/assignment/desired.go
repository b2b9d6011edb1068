package assignment

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"meeting-scheduler/internal/domain/participant"

	"github.com/google/uuid"
)

// DesiredMeeting is a supplier/buyer pair the supplier's preferences permit.
type DesiredMeeting struct {
	SupplierID uuid.UUID
	BuyerID    uuid.UUID
	Priority   int
}

// DesiredMeetings enumerates every permitted pair, ranked by the supplier's preference mode.
func DesiredMeetings(suppliers []*participant.Supplier, buyers []*participant.Buyer) []DesiredMeeting {
	var out []DesiredMeeting
	for _, s := range suppliers {
		priority := s.Preference().Mode().Priority()
		for _, b := range buyers {
			if !s.Permits(b.ID()) {
				continue
			}
			out = append(out, DesiredMeeting{SupplierID: s.ID(), BuyerID: b.ID(), Priority: priority})
		}
	}
	return out
}

// Order sorts by priority descending. Ties fall back to supplier then buyer id, or
// to a shuffle when rng is given.
func Order(desired []DesiredMeeting, rng *rand.Rand) []DesiredMeeting {
	out := slices.Clone(desired)
	if rng != nil {
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		slices.SortStableFunc(out, func(a, b DesiredMeeting) int {
			return cmp.Compare(b.Priority, a.Priority)
		})
		return out
	}

	slices.SortStableFunc(out, func(a, b DesiredMeeting) int {
		return cmp.Or(
			cmp.Compare(b.Priority, a.Priority),
			cmp.Compare(a.SupplierID.String(), b.SupplierID.String()),
			cmp.Compare(a.BuyerID.String(), b.BuyerID.String()),
		)
	})
	return out
}
