package report

import (
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/month"
	"github.com/MrJamesThe3rd/budgeter/internal/report"
)

type trendResponse[T any] struct {
	Trend []T `json:"trend"`
}

type spendingResponse struct {
	Trend      []spendingPoint `json:"trend"`
	ByCategory []categoryTotal `json:"byCategory"`
}

type spendingPoint struct {
	Month string `json:"month"`
	Total int64  `json:"total"`
}

type categoryTotal struct {
	CategoryID   uuid.UUID `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	Total        int64     `json:"total"`
}

type cashflowPoint struct {
	Month   string `json:"month"`
	Income  int64  `json:"income"`
	Spend   int64  `json:"spend"`
	Net     int64  `json:"net"`
	Rolling int64  `json:"rolling"`
}

type netWorthPoint struct {
	Month       string `json:"month"`
	Assets      int64  `json:"assets"`
	Liabilities int64  `json:"liabilities"`
	Net         int64  `json:"net"`
}

type summaryResponse struct {
	Month    string          `json:"month"`
	Budgeted int64           `json:"budgeted"`
	Spent    int64           `json:"spent"`
	Income   int64           `json:"income"`
	Net      int64           `json:"net"`
	Trailing []cashflowPoint `json:"trailing"`
}

func toSpendingPoint(p report.SpendingPoint) spendingPoint {
	return spendingPoint{Month: month.Format(p.Month), Total: p.Total}
}

func toCashflowPoints(points []report.CashflowPoint) []cashflowPoint {
	resp := make([]cashflowPoint, len(points))
	for i, p := range points {
		resp[i] = cashflowPoint{
			Month:   month.Format(p.Month),
			Income:  p.Income,
			Spend:   p.Spend,
			Net:     p.Net,
			Rolling: p.Rolling,
		}
	}

	return resp
}

func toNetWorthPoint(p report.NetWorthPoint) netWorthPoint {
	return netWorthPoint{
		Month:       month.Format(p.Month),
		Assets:      p.Assets,
		Liabilities: p.Liabilities,
		Net:         p.Net,
	}
}

func toSummaryResponse(s *report.Summary) summaryResponse {
	return summaryResponse{
		Month:    month.Format(s.Month),
		Budgeted: s.Budgeted,
		Spent:    s.Spent,
		Income:   s.Income,
		Net:      s.Net,
		Trailing: toCashflowPoints(s.Trailing),
	}
}
