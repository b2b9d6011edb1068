//go:build unit || e2e

package builder

import (
	"fmt"

	"meeting-scheduler/internal/domain/participant"

	"github.com/google/uuid"
)

type SupplierBuilder struct {
	ID         uuid.UUID
	Name       string
	Company    string
	Duration   int
	Preference participant.Preference
}

func NewSupplierBuilder() *SupplierBuilder {
	return &SupplierBuilder{
		ID:         uuid.New(),
		Name:       "Test Supplier",
		Company:    "Supplier Inc.",
		Duration:   30,
		Preference: participant.MeetAll(),
	}
}

func (s *SupplierBuilder) With(mutate func(*SupplierBuilder)) *SupplierBuilder {
	mutate(s)
	return s
}

func (s *SupplierBuilder) Named(name string) *SupplierBuilder {
	s.Name = name
	return s
}

func (s *SupplierBuilder) Including(buyerIDs ...uuid.UUID) *SupplierBuilder {
	s.Preference = participant.IncludeOnly(buyerIDs...)
	return s
}

func (s *SupplierBuilder) Excluding(buyerIDs ...uuid.UUID) *SupplierBuilder {
	s.Preference = participant.ExcludeOnly(buyerIDs...)
	return s
}

func (s *SupplierBuilder) BuildDomain() *participant.Supplier {
	supplier, err := participant.NewSupplier(s.ID, s.Name, s.Company, s.Duration, s.Preference)
	if err != nil {
		panic(err)
	}
	return supplier
}

type BuyerBuilder struct {
	ID      uuid.UUID
	Name    string
	Company string
}

func NewBuyerBuilder() *BuyerBuilder {
	return &BuyerBuilder{
		ID:      uuid.New(),
		Name:    "Test Buyer",
		Company: "Buyer Ltd.",
	}
}

func (b *BuyerBuilder) With(mutate func(*BuyerBuilder)) *BuyerBuilder {
	mutate(b)
	return b
}

func (b *BuyerBuilder) Named(name string) *BuyerBuilder {
	b.Name = name
	return b
}

func (b *BuyerBuilder) BuildDomain() *participant.Buyer {
	buyer, err := participant.NewBuyer(b.ID, b.Name, b.Company)
	if err != nil {
		panic(err)
	}
	return buyer
}

// Suppliers builds n meet-all suppliers named "S1".."Sn".
func Suppliers(n int) []*participant.Supplier {
	out := make([]*participant.Supplier, n)
	for i := range out {
		out[i] = NewSupplierBuilder().Named(fmt.Sprintf("S%d", i+1)).BuildDomain()
	}
	return out
}

// Buyers builds n buyers named "B1".."Bn".
func Buyers(n int) []*participant.Buyer {
	out := make([]*participant.Buyer, n)
	for i := range out {
		out[i] = NewBuyerBuilder().Named(fmt.Sprintf("B%d", i+1)).BuildDomain()
	}
	return out
}

func Directory(suppliers []*participant.Supplier, buyers []*participant.Buyer) *participant.Directory {
	dir, err := participant.NewDirectory(suppliers, buyers)
	if err != nil {
		panic(err)
	}
	return dir
}
