package budget

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/budget"
	"github.com/MrJamesThe3rd/budgeter/internal/http/respond"
	"github.com/MrJamesThe3rd/budgeter/internal/metrics"
)

type Handler struct {
	svc *budget.Service
}

func NewHandler(svc *budget.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.upsert)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	lines, err := h.svc.ForMonth(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]lineResponse, len(lines))
	for i, l := range lines {
		resp[i] = toResponse(l)
	}

	respond.JSON(w, r, http.StatusOK, resp)
}

type upsertBudgetRequest struct {
	CategoryID uuid.UUID `json:"categoryId"`
	Month      string    `json:"month"`
	Amount     *int64    `json:"amount"`
	// TargetAmount is absent to keep the stored target, null to clear it.
	TargetAmount json.RawMessage `json:"targetAmount"`
}

func (h *Handler) upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertBudgetRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	target, ok := targetUpdate(req.TargetAmount)
	if !ok {
		respond.BadRequest(w, r, "targetAmount must be a number")
		return
	}

	line, err := h.svc.Upsert(r.Context(), budget.UpsertParams{
		CategoryID: req.CategoryID,
		Month:      req.Month,
		Amount:     req.Amount,
		Target:     target,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	metrics.BudgetUpserted()

	respond.JSON(w, r, http.StatusCreated, toResponse(line))
}

func targetUpdate(raw json.RawMessage) (*budget.TargetUpdate, bool) {
	if len(raw) == 0 {
		return nil, true
	}

	var v *int64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}

	return &budget.TargetUpdate{Value: v}, true
}
