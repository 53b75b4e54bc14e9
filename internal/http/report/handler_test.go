package report_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/budgeter/internal/account"
	reportHandler "github.com/MrJamesThe3rd/budgeter/internal/http/report"
	"github.com/MrJamesThe3rd/budgeter/internal/income"
	"github.com/MrJamesThe3rd/budgeter/internal/month"
	"github.com/MrJamesThe3rd/budgeter/internal/report"
	"github.com/MrJamesThe3rd/budgeter/internal/spend"
)

type mocks struct {
	spends   *report.MockSpendSource
	incomes  *report.MockIncomeSource
	accounts *report.MockAccountSource
	budgets  *report.MockBudgetSource
}

func newRouter(t *testing.T) (http.Handler, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		spends:   report.NewMockSpendSource(ctrl),
		incomes:  report.NewMockIncomeSource(ctrl),
		accounts: report.NewMockAccountSource(ctrl),
		budgets:  report.NewMockBudgetSource(ctrl),
	}

	svc := report.NewService(m.spends, m.incomes, m.accounts, m.budgets)

	r := chi.NewRouter()
	r.Route("/reports", reportHandler.NewHandler(svc).Routes)

	return r, m
}

func utc(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func TestHandler_Spending(t *testing.T) {
	router, m := newRouter(t)

	food := uuid.MustParse("9a0d3c57-6a1e-4f3b-8b7d-2c4e5f6a7b8c")
	r, _ := month.ParseRange("2024-01", "2024-02", time.Now())

	m.spends.EXPECT().ListRange(gomock.Any(), r).Return([]*spend.Spend{
		{CategoryID: food, CategoryName: "Food", Amount: 300, SpentAt: utc(2024, 2, 3)},
	}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/spending?from=2024-01&to=2024-02&month=2024-02", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"trend": [{"month":"2024-01","total":0},{"month":"2024-02","total":300}],
		"byCategory": [{"categoryId":"9a0d3c57-6a1e-4f3b-8b7d-2c4e5f6a7b8c","categoryName":"Food","total":300}]
	}`, w.Body.String())
}

func TestHandler_Spending_InvalidRange(t *testing.T) {
	router, _ := newRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/spending?from=2024-05&to=2024-02", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"from must not be after to"}`, w.Body.String())
}

func TestHandler_Cashflow(t *testing.T) {
	router, m := newRouter(t)

	r, _ := month.ParseRange("2024-01", "2024-02", time.Now())
	m.incomes.EXPECT().ListRange(gomock.Any(), r).Return([]*income.Income{{Amount: 1000, ReceivedAt: utc(2024, 1, 25)}}, nil)
	m.spends.EXPECT().ListRange(gomock.Any(), r).Return([]*spend.Spend{{Amount: 400, SpentAt: utc(2024, 2, 2)}}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/cashflow?from=2024-01&to=2024-02", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"trend":[
		{"month":"2024-01","income":1000,"spend":0,"net":1000,"rolling":1000},
		{"month":"2024-02","income":0,"spend":400,"net":-400,"rolling":600}
	]}`, w.Body.String())
}

func TestHandler_NetWorth(t *testing.T) {
	router, m := newRouter(t)

	checking := &account.Account{ID: uuid.New(), Type: account.TypeAsset}
	card := &account.Account{ID: uuid.New(), Type: account.TypeLiability}

	m.accounts.EXPECT().List(gomock.Any()).Return([]*account.Account{checking, card}, nil)
	m.accounts.EXPECT().BalancesBefore(gomock.Any(), utc(2024, 3, 1)).Return([]*account.Balance{
		{AccountID: checking.ID, Balance: 1000, RecordedAt: utc(2023, 12, 5)},
		{AccountID: card.ID, Balance: 200, RecordedAt: utc(2024, 2, 10)},
	}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/net-worth?from=2024-01&to=2024-02", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"trend":[
		{"month":"2024-01","assets":1000,"liabilities":0,"net":1000},
		{"month":"2024-02","assets":1000,"liabilities":200,"net":800}
	]}`, w.Body.String())
}
