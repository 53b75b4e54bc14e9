package account

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/account"
)

type accountResponse struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Type      account.Type `json:"type"`
	Balance   int64        `json:"balance"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type balanceResponse struct {
	ID         uuid.UUID `json:"id"`
	AccountID  uuid.UUID `json:"accountId"`
	Balance    int64     `json:"balance"`
	RecordedAt time.Time `json:"recordedAt"`
}

func toResponse(a *account.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Type:      a.Type,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
