package income

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/apperr"
	"github.com/MrJamesThe3rd/budgeter/internal/http/respond"
	"github.com/MrJamesThe3rd/budgeter/internal/income"
	"github.com/MrJamesThe3rd/budgeter/internal/month"
)

type Handler struct {
	svc *income.Service
}

func NewHandler(svc *income.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	m, err := month.ParseOrCurrent(r.URL.Query().Get("month"), time.Now())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	incomes, err := h.svc.ListMonth(r.Context(), m)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]incomeResponse, len(incomes))
	for i, in := range incomes {
		resp[i] = toResponse(in)
	}

	respond.JSON(w, r, http.StatusOK, resp)
}

type createIncomeRequest struct {
	Amount     *int64 `json:"amount"`
	ReceivedAt string `json:"receivedAt"`
	Notes      string `json:"notes"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createIncomeRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if req.Amount == nil {
		respond.Error(w, r, apperr.Invalid("amount", "is required"))
		return
	}

	in, err := h.svc.Create(r.Context(), income.CreateParams{
		Amount:     *req.Amount,
		ReceivedAt: respond.ParseDate(req.ReceivedAt),
		Notes:      req.Notes,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, toResponse(in))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type incomeResponse struct {
	ID         uuid.UUID `json:"id"`
	Amount     int64     `json:"amount"`
	ReceivedAt time.Time `json:"receivedAt"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toResponse(in *income.Income) incomeResponse {
	return incomeResponse{
		ID:         in.ID,
		Amount:     in.Amount,
		ReceivedAt: in.ReceivedAt,
		Notes:      in.Notes,
		CreatedAt:  in.CreatedAt,
	}
}
