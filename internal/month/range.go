package month

import "time"

// Range is a half-open interval of whole months: [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
}

// ParseRange resolves from/to tokens into a Range. The to month is inclusive,
// so End is the first instant after it. Empty tokens default to the month containing now.
func ParseRange(from, to string, now time.Time) (Range, error) {
	start, err := ParseOrCurrent(from, now)
	if err != nil {
		return Range{}, err
	}

	last, err := ParseOrCurrent(to, now)
	if err != nil {
		return Range{}, err
	}

	if start.After(last) {
		return Range{}, ErrInvalidRange
	}

	return Range{Start: start, End: Add(last, 1)}, nil
}

// Single returns the one-month range starting at m's month.
func Single(m time.Time) Range {
	s := Start(m)
	return Range{Start: s, End: Add(s, 1)}
}

// Months lists the first instant of every month in the range, ascending.
func (r Range) Months() []time.Time {
	var months []time.Time

	for cursor := Start(r.Start); cursor.Before(r.End); cursor = Add(cursor, 1) {
		months = append(months, cursor)
	}

	return months
}

// Contains reports whether t falls inside [Start, End).
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}
