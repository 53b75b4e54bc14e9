package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MrJamesThe3rd/budgeter/internal/month"
	"github.com/MrJamesThe3rd/budgeter/internal/payee"
	"github.com/MrJamesThe3rd/budgeter/internal/spend"
)

var header = []string{"date", "category", "payee", "payee_display", "amount", "notes", "recurring"}

type SpendSource interface {
	ListRange(ctx context.Context, r month.Range) ([]*spend.Spend, error)
}

type MatcherSource interface {
	Matcher(ctx context.Context) (*payee.Matcher, error)
}

// Service exports spends as CSV.
type Service struct {
	spends SpendSource
	payees MatcherSource
	now    func() time.Time
}

// NewService creates a new export Service.
func NewService(spends SpendSource, payees MatcherSource) *Service {
	return &Service{
		spends: spends,
		payees: payees,
		now:    time.Now,
	}
}

// Export collects the spends of the from..to months, oldest first, with the
// payee display names in effect right now.
func (s *Service) Export(ctx context.Context, from, to string) (month.Range, []*spend.Spend, error) {
	r, err := month.ParseRange(from, to, s.now())
	if err != nil {
		return month.Range{}, nil, err
	}

	spends, err := s.spends.ListRange(ctx, r)
	if err != nil {
		return month.Range{}, nil, fmt.Errorf("listing spends: %w", err)
	}

	matcher, err := s.payees.Matcher(ctx)
	if err != nil {
		return month.Range{}, nil, err
	}

	// Listing is newest first.
	out := make([]*spend.Spend, len(spends))
	for i, sp := range spends {
		sp.PayeeDisplay = matcher.Display(sp.PayeeName)
		out[len(spends)-1-i] = sp
	}

	return r, out, nil
}

// WriteCSV writes spends with a header row.
func WriteCSV(w io.Writer, spends []*spend.Spend) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, sp := range spends {
		record := []string{
			sp.SpentAt.UTC().Format(time.DateOnly),
			sp.CategoryName,
			deref(sp.PayeeName),
			deref(sp.PayeeDisplay),
			strconv.FormatInt(sp.Amount, 10),
			deref(sp.Notes),
			strconv.FormatBool(sp.Recurring),
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing spend %s: %w", sp.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// Filename names the export of r, e.g. spends_2024-01_2024-03.csv.
func Filename(r month.Range) string {
	return fmt.Sprintf("spends_%s_%s.csv", month.Format(r.Start), month.Format(month.Add(r.End, -1)))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
