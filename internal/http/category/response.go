package category

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/category"
)

type categoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Recurring bool      `json:"recurring"`
	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(c *category.Category) categoryResponse {
	return categoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Recurring: c.Recurring,
		CreatedAt: c.CreatedAt,
	}
}

func toResponseList(categories []*category.Category) []categoryResponse {
	resp := make([]categoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = toResponse(c)
	}

	return resp
}
