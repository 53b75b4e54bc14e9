package payee

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/http/respond"
	"github.com/MrJamesThe3rd/budgeter/internal/payee"
)

type Handler struct {
	svc *payee.Service
}

func NewHandler(svc *payee.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RuleRoutes(r chi.Router) {
	r.Get("/", h.listRules)
	r.Post("/", h.createRule)
	r.Delete("/{id}", h.deleteRule)
}

func (h *Handler) RenameRoutes(r chi.Router) {
	r.Get("/", h.listRenames)
	r.Post("/", h.createRename)
	r.Delete("/{id}", h.deleteRename)
}

func (h *Handler) listRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.svc.ListRules(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]ruleResponse, len(rules))
	for i, rule := range rules {
		resp[i] = toRuleResponse(rule)
	}

	respond.JSON(w, r, http.StatusOK, resp)
}

type createRuleRequest struct {
	MatchText  string    `json:"matchText"`
	CategoryID uuid.UUID `json:"categoryId"`
}

func (h *Handler) createRule(w http.ResponseWriter, r *http.Request) {
	var req createRuleRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	rule, err := h.svc.CreateRule(r.Context(), req.MatchText, req.CategoryID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, toRuleResponse(rule))
}

func (h *Handler) deleteRule(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteRule(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listRenames(w http.ResponseWriter, r *http.Request) {
	renames, err := h.svc.ListRenames(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]renameResponse, len(renames))
	for i, rename := range renames {
		resp[i] = toRenameResponse(rename)
	}

	respond.JSON(w, r, http.StatusOK, resp)
}

type createRenameRequest struct {
	MatchText string `json:"matchText"`
	RenameTo  string `json:"renameTo"`
}

func (h *Handler) createRename(w http.ResponseWriter, r *http.Request) {
	var req createRenameRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	rename, err := h.svc.CreateRename(r.Context(), req.MatchText, req.RenameTo)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, toRenameResponse(rename))
}

func (h *Handler) deleteRename(w http.ResponseWriter, r *http.Request) {
	id, ok := respond.ID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteRename(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
