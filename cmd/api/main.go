package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/khata-app/khata/internal/config"
	"github.com/khata-app/khata/internal/database"
	"github.com/khata-app/khata/internal/folio"
	folioStore "github.com/khata-app/khata/internal/folio/store"
	khataHttp "github.com/khata-app/khata/internal/http"
	dashboardHandler "github.com/khata-app/khata/internal/http/dashboard"
	folioHandler "github.com/khata-app/khata/internal/http/folio"
	ledgerHandler "github.com/khata-app/khata/internal/http/ledger"
	txHandler "github.com/khata-app/khata/internal/http/transaction"
	"github.com/khata-app/khata/internal/importer"
	"github.com/khata-app/khata/internal/ledger"
	ledgerStore "github.com/khata-app/khata/internal/ledger/store"
	"github.com/khata-app/khata/internal/transaction"
	txStore "github.com/khata-app/khata/internal/transaction/store"
)

func main() {
	// .env is for local development; in deployment the environment is set
	// by the platform.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Auth.Secret == "" {
		slog.Error("AUTH_SECRET must be set")
		os.Exit(1)
	}

	// The admin connection targets the maintenance database and exists
	// only to create tenant databases on first use.
	admin, err := database.New(cfg.TenantConnectionString("postgres"))
	if err != nil {
		slog.Error("failed to connect to database server", "error", err)
		os.Exit(1)
	}
	defer admin.Close()

	tenants := database.NewRegistry(cfg.App.Env, func(ctx context.Context, dbName string) (*sql.DB, error) {
		if err := database.EnsureDatabase(ctx, admin, dbName); err != nil {
			return nil, err
		}

		db, err := database.New(cfg.TenantConnectionString(dbName))
		if err != nil {
			return nil, err
		}

		if err := database.RunMigrations(db); err != nil {
			db.Close()
			return nil, err
		}

		return db, nil
	})
	defer func() {
		if err := tenants.Close(); err != nil {
			slog.Error("failed to close tenant databases", "error", err)
		}
	}()

	var (
		folioService       = folio.NewService(folioStore.New(tenants))
		transactionService = transaction.NewService(txStore.New(tenants))
		ledgerService      = ledger.NewService(ledgerStore.New(tenants))
		importService      = importer.NewService()
	)

	var (
		folioH       = folioHandler.NewHandler(folioService)
		transactionH = txHandler.NewHandler(transactionService)
		ledgerH      = ledgerHandler.NewHandler(ledgerService, importService)
		dashboardH   = dashboardHandler.NewHandler(ledgerService)
	)

	router := khataHttp.New(cfg.Auth.Secret, folioH, transactionH, ledgerH, dashboardH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("starting server", "app", cfg.App.Name, "env", cfg.App.Env, "addr", server.Addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
