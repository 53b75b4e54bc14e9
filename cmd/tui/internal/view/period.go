package view

import (
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/budgeter/internal/month"
)

// Period is a window of Months whole months ending with the month of End.
type Period struct {
	End    time.Time
	Months int
}

func NewPeriod(now time.Time, months int) Period {
	return Period{End: month.Start(now), Months: max(months, 1)}
}

func (p Period) Start() time.Time {
	return month.Add(p.End, 1-p.Months)
}

// Tokens returns the from and to month tokens of p.
func (p Period) Tokens() (string, string) {
	return month.Format(p.Start()), month.Format(p.End)
}

// Shift moves the window n months.
func (p Period) Shift(n int) Period {
	p.End = month.Add(p.End, n)
	return p
}

func (p Period) String() string {
	from, to := p.Tokens()
	if from == to {
		return from
	}

	return fmt.Sprintf("%s → %s", from, to)
}

// PeriodPreset is a named window relative to the current month.
type PeriodPreset int

const (
	PresetThisMonth PeriodPreset = iota
	PresetLastMonth
	PresetLastQuarter
	PresetLastYear
)

func (p PeriodPreset) String() string {
	switch p {
	case PresetThisMonth:
		return "This Month"
	case PresetLastMonth:
		return "Last Month"
	case PresetLastQuarter:
		return "Last 3 Months"
	case PresetLastYear:
		return "Last 12 Months"
	}

	return "Unknown"
}

func (p PeriodPreset) Period(now time.Time) Period {
	switch p {
	case PresetLastMonth:
		return NewPeriod(now, 1).Shift(-1)
	case PresetLastQuarter:
		return NewPeriod(now, 3)
	case PresetLastYear:
		return NewPeriod(now, 12)
	default:
		return NewPeriod(now, 1)
	}
}
