package schedule

import (
	"slices"

	"meeting-scheduler/internal/domain/meeting"

	"github.com/google/uuid"
)

// slotKey pairs a party with a slot, or a supplier with a buyer.
type slotKey struct {
	a uuid.UUID
	b uuid.UUID
}

// Index maps (supplier, slot) and (buyer, slot) to the active meetings occupying them,
// in schedule order. Cancelled and bumped meetings are never indexed.
type Index struct {
	bySupplier map[slotKey][]uuid.UUID
	byBuyer    map[slotKey][]uuid.UUID
	pairs      map[slotKey][]uuid.UUID
}

func NewIndex(meetings []meeting.Meeting) *Index {
	ix := &Index{
		bySupplier: make(map[slotKey][]uuid.UUID),
		byBuyer:    make(map[slotKey][]uuid.UUID),
		pairs:      make(map[slotKey][]uuid.UUID),
	}
	for _, m := range meetings {
		if !m.IsActive() {
			continue
		}
		ix.add(m)
	}
	return ix
}

func (ix *Index) add(m meeting.Meeting) {
	supplierKey := slotKey{m.SupplierID(), m.TimeSlotID()}
	buyerKey := slotKey{m.BuyerID(), m.TimeSlotID()}
	pairKey := slotKey{m.SupplierID(), m.BuyerID()}

	ix.bySupplier[supplierKey] = append(ix.bySupplier[supplierKey], m.ID())
	ix.byBuyer[buyerKey] = append(ix.byBuyer[buyerKey], m.ID())
	ix.pairs[pairKey] = append(ix.pairs[pairKey], m.ID())
}

// SupplierMeetings lists the active meetings of supplierID in slotID.
func (ix *Index) SupplierMeetings(supplierID, slotID uuid.UUID) []uuid.UUID {
	return slices.Clone(ix.bySupplier[slotKey{supplierID, slotID}])
}

// BuyerMeetings lists the active meetings of buyerID in slotID.
func (ix *Index) BuyerMeetings(buyerID, slotID uuid.UUID) []uuid.UUID {
	return slices.Clone(ix.byBuyer[slotKey{buyerID, slotID}])
}

func (ix *Index) SupplierBusy(supplierID, slotID uuid.UUID, exclude ...uuid.UUID) bool {
	return anyExcept(ix.bySupplier[slotKey{supplierID, slotID}], exclude)
}

func (ix *Index) BuyerBusy(buyerID, slotID uuid.UUID, exclude ...uuid.UUID) bool {
	return anyExcept(ix.byBuyer[slotKey{buyerID, slotID}], exclude)
}

// Paired reports whether supplier and buyer already share an active meeting anywhere.
func (ix *Index) Paired(supplierID, buyerID uuid.UUID) bool {
	return len(ix.pairs[slotKey{supplierID, buyerID}]) > 0
}

func anyExcept(ids, exclude []uuid.UUID) bool {
	for _, id := range ids {
		if !slices.Contains(exclude, id) {
			return true
		}
	}
	return false
}
