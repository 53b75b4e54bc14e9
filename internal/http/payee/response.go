package payee

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/payee"
)

type ruleResponse struct {
	ID         uuid.UUID   `json:"id"`
	MatchText  string      `json:"matchText"`
	CategoryID uuid.UUID   `json:"categoryId"`
	Category   categoryRef `json:"category"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type categoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type renameResponse struct {
	ID        uuid.UUID `json:"id"`
	MatchText string    `json:"matchText"`
	RenameTo  string    `json:"renameTo"`
	CreatedAt time.Time `json:"createdAt"`
}

func toRuleResponse(r *payee.Rule) ruleResponse {
	return ruleResponse{
		ID:         r.ID,
		MatchText:  r.MatchText,
		CategoryID: r.CategoryID,
		Category:   categoryRef{ID: r.CategoryID, Name: r.CategoryName},
		CreatedAt:  r.CreatedAt,
	}
}

func toRenameResponse(r *payee.Rename) renameResponse {
	return renameResponse{
		ID:        r.ID,
		MatchText: r.MatchText,
		RenameTo:  r.RenameTo,
		CreatedAt: r.CreatedAt,
	}
}
