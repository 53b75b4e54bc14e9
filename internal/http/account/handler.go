package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/budgeter/internal/account"
	"github.com/MrJamesThe3rd/budgeter/internal/http/respond"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Get("/{id}/balances", h.balances)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = toResponse(a)
	}

	respond.JSON(w, r, http.StatusOK, resp)
}

type createAccountRequest struct {
	Name    string       `json:"name"`
	Type    account.Type `json:"type"`
	Balance int64        `json:"balance"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	a, err := h.svc.Create(r.Context(), account.CreateParams{
		Name:    req.Name,
		Type:    req.Type,
		Balance: req.Balance,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, toResponse(a))
}

type updateAccountRequest struct {
	Name    *string       `json:"name,omitempty"`
	Type    *account.Type `json:"type,omitempty"`
	Balance *int64        `json:"balance,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}

	var req updateAccountRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	a, err := h.svc.Update(r.Context(), id, account.UpdateParams{
		Name:    req.Name,
		Type:    req.Type,
		Balance: req.Balance,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, toResponse(a))
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

func (h *Handler) balances(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}

	balances, err := h.svc.Balances(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]balanceResponse, len(balances))
	for i, b := range balances {
		resp[i] = balanceResponse{
			ID:         b.ID,
			AccountID:  b.AccountID,
			Balance:    b.Balance,
			RecordedAt: b.RecordedAt,
		}
	}

	respond.JSON(w, r, http.StatusOK, resp)
}
