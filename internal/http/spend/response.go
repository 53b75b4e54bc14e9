package spend

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/spend"
)

type spendResponse struct {
	ID           uuid.UUID   `json:"id"`
	CategoryID   uuid.UUID   `json:"categoryId"`
	Category     categoryRef `json:"category"`
	Amount       int64       `json:"amount"`
	SpentAt      time.Time   `json:"spentAt"`
	Notes        *string     `json:"notes"`
	Recurring    bool        `json:"recurring"`
	PayeeName    *string     `json:"payeeName"`
	PayeeDisplay *string     `json:"payeeDisplay"`
	CreatedAt    time.Time   `json:"createdAt"`
}

type categoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func toResponse(sp *spend.Spend) spendResponse {
	return spendResponse{
		ID:           sp.ID,
		CategoryID:   sp.CategoryID,
		Category:     categoryRef{ID: sp.CategoryID, Name: sp.CategoryName},
		Amount:       sp.Amount,
		SpentAt:      sp.SpentAt,
		Notes:        sp.Notes,
		Recurring:    sp.Recurring,
		PayeeName:    sp.PayeeName,
		PayeeDisplay: sp.PayeeDisplay,
		CreatedAt:    sp.CreatedAt,
	}
}
