package export_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/budgeter/internal/export"
	exportHandler "github.com/MrJamesThe3rd/budgeter/internal/http/export"
	"github.com/MrJamesThe3rd/budgeter/internal/month"
	"github.com/MrJamesThe3rd/budgeter/internal/payee"
	"github.com/MrJamesThe3rd/budgeter/internal/spend"
)

type stubSpends []*spend.Spend

func (s stubSpends) ListRange(context.Context, month.Range) ([]*spend.Spend, error) { return s, nil }

type stubPayees struct{}

func (stubPayees) Matcher(context.Context) (*payee.Matcher, error) { return payee.NewMatcher(nil, nil), nil }

func TestHandler_Spends(t *testing.T) {
	svc := export.NewService(stubSpends{
		{CategoryName: "Rent", Amount: 90000, SpentAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), Recurring: true},
	}, stubPayees{})

	r := chi.NewRouter()
	r.Route("/export", exportHandler.NewHandler(svc).Routes)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export/spends?from=2024-04&to=2024-04", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="spends_2024-04_2024-04.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "date,category,payee,payee_display,amount,notes,recurring\n2024-04-01,Rent,,,90000,,true\n", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export/spends?from=2024-13", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
