package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/budgeter/internal/account"
	accountStore "github.com/MrJamesThe3rd/budgeter/internal/account/store"
	"github.com/MrJamesThe3rd/budgeter/internal/auth"
	authStore "github.com/MrJamesThe3rd/budgeter/internal/auth/store"
	"github.com/MrJamesThe3rd/budgeter/internal/budget"
	budgetStore "github.com/MrJamesThe3rd/budgeter/internal/budget/store"
	"github.com/MrJamesThe3rd/budgeter/internal/category"
	categoryStore "github.com/MrJamesThe3rd/budgeter/internal/category/store"
	"github.com/MrJamesThe3rd/budgeter/internal/config"
	"github.com/MrJamesThe3rd/budgeter/internal/database"
	"github.com/MrJamesThe3rd/budgeter/internal/export"
	budgeterHttp "github.com/MrJamesThe3rd/budgeter/internal/http"
	accountHandler "github.com/MrJamesThe3rd/budgeter/internal/http/account"
	authHandler "github.com/MrJamesThe3rd/budgeter/internal/http/auth"
	budgetHandler "github.com/MrJamesThe3rd/budgeter/internal/http/budget"
	categoryHandler "github.com/MrJamesThe3rd/budgeter/internal/http/category"
	exportHandler "github.com/MrJamesThe3rd/budgeter/internal/http/export"
	incomeHandler "github.com/MrJamesThe3rd/budgeter/internal/http/income"
	payeeHandler "github.com/MrJamesThe3rd/budgeter/internal/http/payee"
	reportHandler "github.com/MrJamesThe3rd/budgeter/internal/http/report"
	spendHandler "github.com/MrJamesThe3rd/budgeter/internal/http/spend"
	"github.com/MrJamesThe3rd/budgeter/internal/income"
	incomeStore "github.com/MrJamesThe3rd/budgeter/internal/income/store"
	"github.com/MrJamesThe3rd/budgeter/internal/logging"
	"github.com/MrJamesThe3rd/budgeter/internal/metrics"
	"github.com/MrJamesThe3rd/budgeter/internal/payee"
	payeeStore "github.com/MrJamesThe3rd/budgeter/internal/payee/store"
	"github.com/MrJamesThe3rd/budgeter/internal/report"
	"github.com/MrJamesThe3rd/budgeter/internal/spend"
	spendStore "github.com/MrJamesThe3rd/budgeter/internal/spend/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: logging.Format(strings.ToLower(cfg.Log.Format)),
		Output: os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	slog.SetDefault(logger)

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.DB.Migrate {
		if err := database.Migrate(db); err != nil {
			return err
		}

		logger.Info("database migrated")
	}

	if cfg.Metrics.Enabled {
		if err := metrics.RegisterDB(db, cfg.DB.Name); err != nil {
			return fmt.Errorf("registering database metrics: %w", err)
		}
	}

	var (
		categoryService = category.NewService(categoryStore.New(db))
		payeeService    = payee.NewService(payeeStore.New(db), categoryService)
		spendService    = spend.NewService(spendStore.New(db), categoryService, payeeService)
		incomeService   = income.NewService(incomeStore.New(db))
		accountService  = account.NewService(accountStore.New(db))
		budgetService   = budget.NewService(budgetStore.New(db), categoryService, spendService)
		reportService   = report.NewService(spendService, incomeService, accountService, budgetService)
		exportService   = export.NewService(spendService, payeeService)
		authService     = auth.NewService(
			authStore.New(db),
			auth.NewArgon2Hasher(),
			auth.NewTOTP(cfg.Auth.TOTPIssuer),
			auth.NewTokenIssuer(cfg.Auth.JWTSecret),
		)
	)

	router := budgeterHttp.New(
		budgeterHttp.Options{
			Logger:      logger,
			FrontendURL: cfg.App.FrontendURL,
			Metrics:     cfg.Metrics.Enabled,
		},
		budgeterHttp.Handlers{
			Auth:       authHandler.NewHandler(authService, cfg.App.Production),
			Categories: categoryHandler.NewHandler(categoryService),
			Payees:     payeeHandler.NewHandler(payeeService),
			Accounts:   accountHandler.NewHandler(accountService),
			Budgets:    budgetHandler.NewHandler(budgetService),
			Spends:     spendHandler.NewHandler(spendService),
			Income:     incomeHandler.NewHandler(incomeService),
			Reports:    reportHandler.NewHandler(reportService),
			Export:     exportHandler.NewHandler(exportService),
		},
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		logger.Info("starting server", "addr", srv.Addr, "app", cfg.App.Name)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	return nil
}
