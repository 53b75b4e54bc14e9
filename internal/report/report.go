// Package report folds ledger rows into per-month figures. The functions here
// are pure: they take row snapshots and never touch storage.
package report

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/account"
	"github.com/MrJamesThe3rd/budgeter/internal/budget"
	"github.com/MrJamesThe3rd/budgeter/internal/income"
	"github.com/MrJamesThe3rd/budgeter/internal/month"
	"github.com/MrJamesThe3rd/budgeter/internal/spend"
)

type SpendingPoint struct {
	Month time.Time
	Total int64
}

type CategoryTotal struct {
	CategoryID   uuid.UUID
	CategoryName string
	Total        int64
}

type CashflowPoint struct {
	Month   time.Time
	Income  int64
	Spend   int64
	Net     int64
	Rolling int64
}

type NetWorthPoint struct {
	Month       time.Time
	Assets      int64
	Liabilities int64
	Net         int64
}

// Spending sums spends per month of r. Months without spends report 0.
func Spending(r month.Range, spends []*spend.Spend) []SpendingPoint {
	totals := make(map[time.Time]int64)
	for _, s := range spends {
		totals[month.Start(s.SpentAt)] += s.Amount
	}

	months := r.Months()
	points := make([]SpendingPoint, 0, len(months))

	for _, m := range months {
		points = append(points, SpendingPoint{Month: m, Total: totals[m]})
	}

	return points
}

// SpendingByCategory totals the spends that fall in month m per category,
// largest first. Ties are ordered by name, then id.
func SpendingByCategory(m time.Time, spends []*spend.Spend) []CategoryTotal {
	r := month.Single(m)
	byID := make(map[uuid.UUID]*CategoryTotal)

	for _, s := range spends {
		if !r.Contains(s.SpentAt) {
			continue
		}

		ct, ok := byID[s.CategoryID]
		if !ok {
			ct = &CategoryTotal{CategoryID: s.CategoryID, CategoryName: s.CategoryName}
			byID[s.CategoryID] = ct
		}

		ct.Total += s.Amount
	}

	totals := make([]CategoryTotal, 0, len(byID))
	for _, ct := range byID {
		totals = append(totals, *ct)
	}

	slices.SortFunc(totals, func(a, b CategoryTotal) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}

		if c := cmp.Compare(a.CategoryName, b.CategoryName); c != 0 {
			return c
		}

		return cmp.Compare(a.CategoryID.String(), b.CategoryID.String())
	})

	return totals
}

// Cashflow reports income, spend and net per month of r. Rolling is the
// running sum of Net starting from the first month of r.
func Cashflow(r month.Range, incomes []*income.Income, spends []*spend.Spend) []CashflowPoint {
	in := make(map[time.Time]int64)
	for _, i := range incomes {
		in[month.Start(i.ReceivedAt)] += i.Amount
	}

	out := make(map[time.Time]int64)
	for _, s := range spends {
		out[month.Start(s.SpentAt)] += s.Amount
	}

	months := r.Months()
	points := make([]CashflowPoint, 0, len(months))

	var rolling int64

	for _, m := range months {
		net := in[m] - out[m]
		rolling += net

		points = append(points, CashflowPoint{
			Month:   m,
			Income:  in[m],
			Spend:   out[m],
			Net:     net,
			Rolling: rolling,
		})
	}

	return points
}

// NetWorth values every account at each month end of r using its latest
// balance recorded strictly before that month end. Accounts with no balance
// yet count as 0.
func NetWorth(r month.Range, accounts []*account.Account, balances []*account.Balance) []NetWorthPoint {
	history := make(map[uuid.UUID][]*account.Balance, len(accounts))
	for _, b := range balances {
		history[b.AccountID] = append(history[b.AccountID], b)
	}

	for _, h := range history {
		slices.SortStableFunc(h, func(a, b *account.Balance) int {
			return a.RecordedAt.Compare(b.RecordedAt)
		})
	}

	months := r.Months()
	points := make([]NetWorthPoint, 0, len(months))

	for _, m := range months {
		end := month.Add(m, 1)

		var p NetWorthPoint
		p.Month = m

		for _, a := range accounts {
			value := asOf(history[a.ID], end)

			switch a.Type {
			case account.TypeAsset:
				p.Assets += value
			case account.TypeLiability:
				p.Liabilities += value
			}
		}

		p.Net = p.Assets - p.Liabilities
		points = append(points, p)
	}

	return points
}

// asOf returns the last balance recorded before end. h is sorted ascending.
func asOf(h []*account.Balance, end time.Time) int64 {
	i, _ := slices.BinarySearchFunc(h, end, func(b *account.Balance, t time.Time) int {
		if b.RecordedAt.Before(t) {
			return -1
		}

		return 1
	})

	if i == 0 {
		return 0
	}

	return h[i-1].Balance
}

// Summary is the overview of one month.
type Summary struct {
	Month    time.Time
	Budgeted int64 // Sum of effective budget amounts
	Spent    int64
	Income   int64
	Net      int64
	// Trailing is the cashflow of the twelve months ending with Month.
	Trailing []CashflowPoint
}

// Summarize builds the overview of month m. spends and incomes may cover
// more than m; only rows inside m count toward Spent and Income.
func Summarize(m time.Time, lines []*budget.Line, spends []*spend.Spend, incomes []*income.Income, trailing []CashflowPoint) Summary {
	r := month.Single(m)
	s := Summary{Month: m, Trailing: trailing}

	for _, l := range lines {
		s.Budgeted += l.EffectiveAmount
	}

	for _, sp := range spends {
		if r.Contains(sp.SpentAt) {
			s.Spent += sp.Amount
		}
	}

	for _, in := range incomes {
		if r.Contains(in.ReceivedAt) {
			s.Income += in.Amount
		}
	}

	s.Net = s.Income - s.Spent

	return s
}
