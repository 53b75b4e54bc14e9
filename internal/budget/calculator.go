package budget

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/category"
	"github.com/MrJamesThe3rd/budgeter/internal/spend"
)

// Inputs is everything Compute needs for one month. All rows are read-only.
type Inputs struct {
	Month      time.Time
	Categories []*category.Category

	// Budgets are the stored rows for Month.
	Budgets []*MonthlyBudget
	// History holds, per category, the latest row with month at or before Month.
	// Rows of non-recurring categories are ignored.
	History []*MonthlyBudget

	// PriorBudgets are the stored rows for the month before Month.
	PriorBudgets []*MonthlyBudget
	// PriorSpends are the spends in [Month-1, Month).
	PriorSpends []*spend.Spend
}

// Compute resolves the budget lines for in.Month, filling recurring categories
// from their history and applying last month's rollover to every line.
func Compute(in Inputs) []*Line {
	names := make(map[uuid.UUID]string, len(in.Categories))
	for _, c := range in.Categories {
		names[c.ID] = c.Name
	}

	lines := make([]*Line, 0, len(in.Budgets))
	explicit := make(map[uuid.UUID]bool, len(in.Budgets))

	for _, b := range in.Budgets {
		explicit[b.CategoryID] = true
		lines = append(lines, &Line{
			MonthlyBudget: *b,
			CategoryName:  names[b.CategoryID],
			Source:        SourceStored,
		})
	}

	latest := latestByCategory(in.History, in.Month)

	for _, c := range in.Categories {
		if !c.Recurring || explicit[c.ID] {
			continue
		}

		src, ok := latest[c.ID]
		if !ok {
			continue
		}

		carriedFrom := src.Month
		lines = append(lines, &Line{
			MonthlyBudget: MonthlyBudget{
				CategoryID:   c.ID,
				Month:        in.Month,
				Amount:       src.Amount,
				TargetAmount: src.TargetAmount,
			},
			CategoryName: c.Name,
			Source:       SourceRecurring,
			CarriedFrom:  &carriedFrom,
		})
	}

	priorBudget := make(map[uuid.UUID]int64, len(in.PriorBudgets))
	for _, b := range in.PriorBudgets {
		priorBudget[b.CategoryID] = b.Amount
	}

	priorSpent := make(map[uuid.UUID]int64)
	for _, s := range in.PriorSpends {
		priorSpent[s.CategoryID] += s.Amount
	}

	for _, l := range lines {
		l.RolloverAmount = priorBudget[l.CategoryID] - priorSpent[l.CategoryID]
		l.EffectiveAmount = l.Amount + l.RolloverAmount
	}

	slices.SortStableFunc(lines, func(a, b *Line) int {
		if c := cmp.Compare(a.CategoryName, b.CategoryName); c != 0 {
			return c
		}

		return cmp.Compare(a.CategoryID.String(), b.CategoryID.String())
	})

	return lines
}

// latestByCategory keeps the most recent row per category not after m.
func latestByCategory(rows []*MonthlyBudget, m time.Time) map[uuid.UUID]*MonthlyBudget {
	latest := make(map[uuid.UUID]*MonthlyBudget, len(rows))

	for _, b := range rows {
		if b.Month.After(m) {
			continue
		}

		if cur, ok := latest[b.CategoryID]; !ok || b.Month.After(cur.Month) {
			latest[b.CategoryID] = b
		}
	}

	return latest
}
