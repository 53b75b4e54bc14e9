// Package month handles the YYYY-MM month tokens used throughout the API and
// the first-of-month UTC instants every aggregation is keyed on.
package month

import (
	"errors"
	"regexp"
	"time"
)

const layout = "2006-01"

var (
	ErrInvalidMonth = errors.New("month must be YYYY-MM")
	ErrInvalidRange = errors.New("from must not be after to")
)

var tokenPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Start returns the first instant of the month containing t, in UTC.
func Start(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Parse converts a YYYY-MM token into the first instant of that month in UTC.
func Parse(token string) (time.Time, error) {
	if !tokenPattern.MatchString(token) {
		return time.Time{}, ErrInvalidMonth
	}

	t, err := time.ParseInLocation(layout, token, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidMonth
	}

	return t, nil
}

// ParseOrCurrent behaves like Parse but treats an empty token as the month containing now.
func ParseOrCurrent(token string, now time.Time) (time.Time, error) {
	if token == "" {
		return Start(now), nil
	}

	return Parse(token)
}

// Format renders t as a YYYY-MM token in UTC.
func Format(t time.Time) string {
	return t.UTC().Format(layout)
}

// Add returns the first instant of the month n calendar months away from t's month.
func Add(t time.Time, n int) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
}
