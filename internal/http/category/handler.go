package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/budgeter/internal/category"
	"github.com/MrJamesThe3rd/budgeter/internal/http/respond"
)

type Handler struct {
	svc *category.Service
}

func NewHandler(svc *category.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, toResponseList(categories))
}

type createCategoryRequest struct {
	Name      string `json:"name"`
	Recurring bool   `json:"recurring"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	c, err := h.svc.Create(r.Context(), category.CreateParams{
		Name:      req.Name,
		Recurring: req.Recurring,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, toResponse(c))
}

type updateCategoryRequest struct {
	Recurring *bool `json:"recurring"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}

	var req updateCategoryRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if req.Recurring == nil {
		respond.BadRequest(w, r, "recurring is required")
		return
	}

	c, err := h.svc.SetRecurring(r.Context(), id, *req.Recurring)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, toResponse(c))
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
