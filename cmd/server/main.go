package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"captura/internal/beneficiary"
	beneficiaryHandler "captura/internal/beneficiary/handler"
	"captura/internal/orgunit"
	orgunitHandler "captura/internal/orgunit/handler"
	"captura/internal/platform/config"
	"captura/internal/platform/httpserver"
	"captura/internal/platform/logger"
	"captura/internal/platform/metrics"
	"captura/internal/registration"
	registrationHandler "captura/internal/registration/handler"
	"captura/internal/store"
	httptransport "captura/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal domain packages.
func main() {
	log := logger.New()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("invalid configuration", "error", err.Error())
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Error("database connection failed", "error", err.Error())
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Error("database ping failed", "error", err.Error())
		os.Exit(1)
	}
	if err := store.CreateSchema(db); err != nil {
		log.Error("schema creation failed", "error", err.Error())
		os.Exit(1)
	}

	m := metrics.New()
	handlers := httptransport.Handlers{
		Beneficiary:  beneficiaryHandler.New(beneficiary.NewPostgresStore(db), log, m),
		Registration: registrationHandler.New(registration.NewPostgresStore(db), log, m),
		OrgUnit:      orgunitHandler.New(orgunit.NewPostgresStore(db), log, m),
	}
	router := httptransport.NewRouter(handlers, log)

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting captura server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err.Error())
		os.Exit(1)
	}
}
