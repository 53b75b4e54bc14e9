package spend

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/apperr"
)

var ErrNotFound = fmt.Errorf("spend %w", apperr.ErrNotFound)

// Spend is a single outgoing payment. Spends are append/delete only.
type Spend struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	CategoryName string // Loaded via JOIN
	Amount       int64  // Amount in cents
	SpentAt      time.Time
	Notes        *string
	Recurring    bool // Informational only
	PayeeName    *string
	PayeeDisplay *string // Computed on read from payee renames, never stored
	CreatedAt    time.Time
}
