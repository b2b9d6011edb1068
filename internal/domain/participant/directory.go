package participant

import (
	"errors"

	"github.com/google/uuid"
)

var ErrDuplicateParticipant = errors.New("duplicate participant id")

// Directory is the roster of one event. Suppliers and buyers keep their input order,
// which is the order auto-fill considers buyers in.
type Directory struct {
	suppliers  []*Supplier
	buyers     []*Buyer
	supplierBy map[uuid.UUID]*Supplier
	buyerBy    map[uuid.UUID]*Buyer
}

func NewDirectory(suppliers []*Supplier, buyers []*Buyer) (*Directory, error) {
	d := &Directory{
		supplierBy: make(map[uuid.UUID]*Supplier, len(suppliers)),
		buyerBy:    make(map[uuid.UUID]*Buyer, len(buyers)),
	}
	for _, s := range suppliers {
		if _, dup := d.supplierBy[s.ID()]; dup {
			return nil, ErrDuplicateParticipant
		}
		d.supplierBy[s.ID()] = s
		d.suppliers = append(d.suppliers, s)
	}
	for _, b := range buyers {
		if _, dup := d.buyerBy[b.ID()]; dup {
			return nil, ErrDuplicateParticipant
		}
		d.buyerBy[b.ID()] = b
		d.buyers = append(d.buyers, b)
	}
	return d, nil
}

func (d *Directory) Supplier(id uuid.UUID) (*Supplier, bool) {
	s, ok := d.supplierBy[id]
	return s, ok
}

func (d *Directory) Buyer(id uuid.UUID) (*Buyer, bool) {
	b, ok := d.buyerBy[id]
	return b, ok
}

func (d *Directory) Suppliers() []*Supplier { return d.suppliers }
func (d *Directory) Buyers() []*Buyer       { return d.buyers }

// Permits reports false for unknown suppliers.
func (d *Directory) Permits(supplierID, buyerID uuid.UUID) bool {
	s, ok := d.supplierBy[supplierID]
	if !ok {
		return false
	}
	return s.Permits(buyerID)
}

func (d *Directory) SupplierName(id uuid.UUID) string {
	if s, ok := d.supplierBy[id]; ok {
		return s.Name()
	}
	return id.String()
}

func (d *Directory) BuyerName(id uuid.UUID) string {
	if b, ok := d.buyerBy[id]; ok {
		return b.Name()
	}
	return id.String()
}

// Snapshot copies the suppliers so a background job never observes a later Update.
func (d *Directory) Snapshot() *Directory {
	suppliers := make([]*Supplier, len(d.suppliers))
	for i, s := range d.suppliers {
		suppliers[i] = s.Clone()
	}
	buyers := make([]*Buyer, len(d.buyers))
	copy(buyers, d.buyers)
	snap, _ := NewDirectory(suppliers, buyers)
	return snap
}
