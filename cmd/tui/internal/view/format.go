package view

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dbTimeout = 5 * time.Second

var printer = message.NewPrinter(language.English)

// FormatAmount formats cents with grouped thousands, e.g. 123456 -> "1,234.56".
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return sign + printer.Sprintf("%d", cents/100) + fmt.Sprintf(".%02d", cents%100)
}

// ParseAmount reads a non-negative amount with at most two decimals, e.g.
// "1,234.5" -> 123450.
func ParseAmount(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, errors.New("amount is required")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	if d.IsNegative() {
		return 0, errors.New("amount must not be negative")
	}

	if !d.Equal(d.Round(2)) {
		return 0, errors.New("amount has more than two decimals")
	}

	return d.Shift(2).IntPart(), nil
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
