package category

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/apperr"
)

var (
	ErrNotFound = fmt.Errorf("category %w", apperr.ErrNotFound)
	// ErrInUse is returned when deleting a category that spends still reference.
	ErrInUse = fmt.Errorf("category has spends: %w", apperr.ErrConflict)
)

// Category groups spends and owns one budget per month.
// A recurring category reuses its latest budget for months without one.
type Category struct {
	ID        uuid.UUID
	Name      string
	Recurring bool
	CreatedAt time.Time
}
