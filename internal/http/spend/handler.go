package spend

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/apperr"
	"github.com/MrJamesThe3rd/budgeter/internal/http/respond"
	"github.com/MrJamesThe3rd/budgeter/internal/metrics"
	"github.com/MrJamesThe3rd/budgeter/internal/month"
	"github.com/MrJamesThe3rd/budgeter/internal/spend"
)

type Handler struct {
	svc *spend.Service
}

func NewHandler(svc *spend.Service) *Handler {
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

	spends, err := h.svc.ListMonth(r.Context(), m)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]spendResponse, len(spends))
	for i, sp := range spends {
		resp[i] = toResponse(sp)
	}

	respond.JSON(w, r, http.StatusOK, resp)
}

type createSpendRequest struct {
	CategoryID *uuid.UUID `json:"categoryId"`
	Amount     *int64     `json:"amount"`
	SpentAt    string     `json:"spentAt"`
	Notes      string     `json:"notes"`
	Recurring  bool       `json:"recurring"`
	PayeeName  string     `json:"payeeName"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createSpendRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if req.Amount == nil {
		respond.Error(w, r, apperr.Invalid("amount", "is required"))
		return
	}

	sp, err := h.svc.Create(r.Context(), spend.CreateParams{
		CategoryID: req.CategoryID,
		Amount:     *req.Amount,
		SpentAt:    respond.ParseDate(req.SpentAt),
		Notes:      req.Notes,
		Recurring:  req.Recurring,
		PayeeName:  req.PayeeName,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	metrics.SpendCreated()

	respond.JSON(w, r, http.StatusCreated, toResponse(sp))
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
