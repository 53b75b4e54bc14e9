package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/budgeter/internal/http/account"
	"github.com/MrJamesThe3rd/budgeter/internal/http/auth"
	"github.com/MrJamesThe3rd/budgeter/internal/http/budget"
	"github.com/MrJamesThe3rd/budgeter/internal/http/category"
	"github.com/MrJamesThe3rd/budgeter/internal/http/export"
	"github.com/MrJamesThe3rd/budgeter/internal/http/income"
	"github.com/MrJamesThe3rd/budgeter/internal/http/payee"
	"github.com/MrJamesThe3rd/budgeter/internal/http/report"
	"github.com/MrJamesThe3rd/budgeter/internal/http/respond"
	"github.com/MrJamesThe3rd/budgeter/internal/http/spend"
	"github.com/MrJamesThe3rd/budgeter/internal/logging"
	"github.com/MrJamesThe3rd/budgeter/internal/metrics"
)

type Options struct {
	Logger      *slog.Logger
	FrontendURL string
	Metrics     bool
}

type Handlers struct {
	Auth       *auth.Handler
	Categories *category.Handler
	Payees     *payee.Handler
	Accounts   *account.Handler
	Budgets    *budget.Handler
	Spends     *spend.Handler
	Income     *income.Handler
	Reports    *report.Handler
	Export     *export.Handler
}

func New(opts Options, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logging.Middleware(opts.Logger))
	router.Use(middleware.Recoverer)

	if opts.Metrics {
		router.Use(metrics.Middleware)
		router.Handle("/metrics", metrics.Handler())
	}

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Route("/auth", func(r chi.Router) {
		h.Auth.PublicRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(h.Auth.RequireSession)
			h.Auth.Routes(r)
		})
	})

	router.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireSession)

		r.Route("/categories", h.Categories.Routes)
		r.Route("/payee-rules", h.Payees.RuleRoutes)
		r.Route("/payee-renames", h.Payees.RenameRoutes)
		r.Route("/accounts", h.Accounts.Routes)
		r.Route("/budgets", h.Budgets.Routes)
		r.Route("/spends", h.Spends.Routes)
		r.Route("/income", h.Income.Routes)
		r.Route("/reports", h.Reports.Routes)
		r.Route("/export", h.Export.Routes)
	})

	return router
}
