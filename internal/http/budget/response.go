package budget

import (
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/budget"
	"github.com/MrJamesThe3rd/budgeter/internal/month"
)

type lineResponse struct {
	// ID is "recurring-<categoryId>" for lines carried from an earlier month.
	ID              string        `json:"id"`
	CategoryID      uuid.UUID     `json:"categoryId"`
	Category        categoryRef   `json:"category"`
	Month           string        `json:"month"`
	Amount          int64         `json:"amount"`
	TargetAmount    *int64        `json:"targetAmount"`
	Source          budget.Source `json:"source"`
	CarriedFrom     *string       `json:"carriedFrom"`
	RolloverAmount  int64         `json:"rolloverAmount"`
	EffectiveAmount int64         `json:"effectiveAmount"`
}

type categoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func toResponse(l *budget.Line) lineResponse {
	resp := lineResponse{
		ID:              l.ID.String(),
		CategoryID:      l.CategoryID,
		Category:        categoryRef{ID: l.CategoryID, Name: l.CategoryName},
		Month:           month.Format(l.Month),
		Amount:          l.Amount,
		TargetAmount:    l.TargetAmount,
		Source:          l.Source,
		RolloverAmount:  l.RolloverAmount,
		EffectiveAmount: l.EffectiveAmount,
	}

	if l.Synthesized() {
		resp.ID = "recurring-" + l.CategoryID.String()
	}

	if l.CarriedFrom != nil {
		resp.CarriedFrom = new(month.Format(*l.CarriedFrom))
	}

	return resp
}
