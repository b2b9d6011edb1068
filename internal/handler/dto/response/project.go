package response

import (
	"time"

	"meeting-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateProjectResponse struct {
	ID uuid.UUID `json:"id"`
}

type ProjectResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Active        bool      `json:"active"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	SupplierCount int       `json:"supplierCount"`
	BuyerCount    int       `json:"buyerCount"`
	MeetingCount  int       `json:"meetingCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromProjectViews(vs []*queries.ProjectView) ([]ProjectResponse, error) {
	resp := make([]ProjectResponse, 0, len(vs))
	if err := copier.Copy(&resp, &vs); err != nil {
		return nil, err
	}
	return resp, nil
}
