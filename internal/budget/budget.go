package budget

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/apperr"
)

var ErrNotFound = fmt.Errorf("budget %w", apperr.ErrNotFound)

// MonthlyBudget is a stored budget row. (CategoryID, Month) is unique.
type MonthlyBudget struct {
	ID           uuid.UUID
	CategoryID   uuid.UUID
	Month        time.Time // First instant of the month, UTC
	Amount       int64
	TargetAmount *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Source tells whether a Line comes from a stored row or was synthesized
// from a recurring category's history.
type Source string

const (
	SourceStored    Source = "stored"
	SourceRecurring Source = "recurring"
)

// Line is one budget as seen for a given month.
//
// A SourceRecurring line has no ID and is never persisted. Its Month is the
// requested month and CarriedFrom is the month of the row it was copied from.
type Line struct {
	MonthlyBudget

	CategoryName    string
	Source          Source
	CarriedFrom     *time.Time
	RolloverAmount  int64
	EffectiveAmount int64
}

func (l *Line) Synthesized() bool {
	return l.Source == SourceRecurring
}
