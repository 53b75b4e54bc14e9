package income

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/apperr"
)

var ErrNotFound = fmt.Errorf("income %w", apperr.ErrNotFound)

// Income is money received. Entries are append/delete only.
type Income struct {
	ID         uuid.UUID
	Amount     int64 // Amount in cents
	ReceivedAt time.Time
	Notes      *string
	CreatedAt  time.Time
}
