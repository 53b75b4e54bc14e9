package account

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/apperr"
)

var ErrNotFound = fmt.Errorf("account %w", apperr.ErrNotFound)

// Type separates what the owner holds from what they owe.
type Type string

const (
	TypeAsset     Type = "ASSET"
	TypeLiability Type = "LIABILITY"
)

func (t Type) Valid() bool {
	return t == TypeAsset || t == TypeLiability
}

// Account is a place money is held or owed. Balance is the current value;
// its history lives in Balance rows.
type Account struct {
	ID        uuid.UUID
	Name      string
	Type      Type
	Balance   int64 // Amount in cents
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Balance is an immutable snapshot appended whenever an account's balance is set.
type Balance struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Balance    int64
	RecordedAt time.Time
}
