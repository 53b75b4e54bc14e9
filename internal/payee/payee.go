package payee

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/apperr"
)

var (
	ErrRuleNotFound   = fmt.Errorf("payee rule %w", apperr.ErrNotFound)
	ErrRenameNotFound = fmt.Errorf("payee rename %w", apperr.ErrNotFound)
)

// Rule assigns a default category to spends whose payee contains MatchText.
type Rule struct {
	ID           uuid.UUID
	MatchText    string
	CategoryID   uuid.UUID
	CategoryName string // Loaded via JOIN
	CreatedAt    time.Time
}

// Rename replaces the display name of payees containing MatchText.
// It never alters stored spends.
type Rename struct {
	ID        uuid.UUID
	MatchText string
	RenameTo  string
	CreatedAt time.Time
}
