package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/budgeter/internal/http/respond"
	"github.com/MrJamesThe3rd/budgeter/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/spending", h.spending)
	r.Get("/cashflow", h.cashflow)
	r.Get("/net-worth", h.netWorth)
	r.Get("/summary", h.summary)
}

func (h *Handler) spending(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rep, err := h.svc.Spending(r.Context(), q.Get("from"), q.Get("to"), q.Get("month"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := spendingResponse{
		Trend:      make([]spendingPoint, len(rep.Trend)),
		ByCategory: make([]categoryTotal, len(rep.ByCategory)),
	}

	for i, p := range rep.Trend {
		resp.Trend[i] = toSpendingPoint(p)
	}

	for i, c := range rep.ByCategory {
		resp.ByCategory[i] = categoryTotal{CategoryID: c.CategoryID, CategoryName: c.CategoryName, Total: c.Total}
	}

	respond.JSON(w, r, http.StatusOK, resp)
}

func (h *Handler) cashflow(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	points, err := h.svc.Cashflow(r.Context(), q.Get("from"), q.Get("to"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, trendResponse[cashflowPoint]{Trend: toCashflowPoints(points)})
}

func (h *Handler) netWorth(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	points, err := h.svc.NetWorth(r.Context(), q.Get("from"), q.Get("to"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := trendResponse[netWorthPoint]{Trend: make([]netWorthPoint, len(points))}
	for i, p := range points {
		resp.Trend[i] = toNetWorthPoint(p)
	}

	respond.JSON(w, r, http.StatusOK, resp)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, toSummaryResponse(s))
}
