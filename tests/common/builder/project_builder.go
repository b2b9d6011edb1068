//go:build unit || e2e

package builder

import (
	reqdto "meeting-scheduler/internal/handler/dto/request"
)

type ProjectBuilder struct {
	Name      string
	Event     reqdto.EventConfigRequest
	Suppliers []reqdto.SupplierRequest
	Buyers    []reqdto.BuyerRequest
}

// NewProjectBuilder describes a two-day event, 09:00-12:00 with a 10:30-11:00 break,
// two suppliers and two buyers.
func NewProjectBuilder() *ProjectBuilder {
	return &ProjectBuilder{
		Name: "Spring Expo",
		Event: reqdto.EventConfigRequest{
			StartDate:       "2025-06-02",
			EndDate:         "2025-06-03",
			DayStart:        "09:00",
			DayEnd:          "12:00",
			MeetingDuration: 30,
			Breaks:          []reqdto.BreakRequest{{Label: "Coffee", Start: "10:30", End: "11:00"}},
		},
		Suppliers: []reqdto.SupplierRequest{{Name: "Acme", Company: "Acme Corp"}, {Name: "Globex", Company: "Globex Inc."}},
		Buyers:    []reqdto.BuyerRequest{{Name: "Initech", Company: "Initech LLC"}, {Name: "Umbrella", Company: "Umbrella Ltd."}},
	}
}

func (p *ProjectBuilder) With(mutate func(*ProjectBuilder)) *ProjectBuilder {
	mutate(p)
	return p
}

func (p *ProjectBuilder) WithName(name string) *ProjectBuilder {
	p.Name = name
	return p
}

func (p *ProjectBuilder) WithSuppliers(names ...string) *ProjectBuilder {
	p.Suppliers = p.Suppliers[:0]
	for _, n := range names {
		p.Suppliers = append(p.Suppliers, reqdto.SupplierRequest{Name: n})
	}
	return p
}

func (p *ProjectBuilder) WithBuyers(names ...string) *ProjectBuilder {
	p.Buyers = p.Buyers[:0]
	for _, n := range names {
		p.Buyers = append(p.Buyers, reqdto.BuyerRequest{Name: n})
	}
	return p
}

func (p *ProjectBuilder) BuildCreateRequestDTO() reqdto.CreateProjectRequest {
	return reqdto.CreateProjectRequest{
		Name:      p.Name,
		Event:     p.Event,
		Suppliers: append([]reqdto.SupplierRequest(nil), p.Suppliers...),
		Buyers:    append([]reqdto.BuyerRequest(nil), p.Buyers...),
	}
}
