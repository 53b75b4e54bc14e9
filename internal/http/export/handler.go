package export

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/budgeter/internal/export"
	"github.com/MrJamesThe3rd/budgeter/internal/http/respond"
	"github.com/MrJamesThe3rd/budgeter/internal/logging"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/spends", h.spends)
}

func (h *Handler) spends(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rng, spends, err := h.svc.Export(r.Context(), q.Get("from"), q.Get("to"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(rng)))

	if err := export.WriteCSV(w, spends); err != nil {
		logging.FromContext(r.Context()).Error("failed to write export", "error", err)
	}
}
