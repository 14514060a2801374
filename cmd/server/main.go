package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"reviewdeck/internal/database"
	"reviewdeck/internal/github"
	"reviewdeck/internal/http/handlers"
	dashh "reviewdeck/internal/http/handlers/dashboard"
	filtersh "reviewdeck/internal/http/handlers/filters"
	pinsh "reviewdeck/internal/http/handlers/pins"
	mw "reviewdeck/internal/http/middleware"
	"reviewdeck/internal/lib/config"
	"reviewdeck/internal/lib/sl"
	"reviewdeck/internal/models"
	repo "reviewdeck/internal/repository"
	"reviewdeck/internal/service/dashboard"
	"reviewdeck/internal/service/pins"
	"reviewdeck/internal/service/status"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("starting review dashboard", slog.String("env", cfg.Env), slog.String("org", cfg.GitHub.Org))

	dsn := os.Getenv("DATABASE_URL")
	if err := database.Migrate("migrations", dsn); err != nil {
		log.Error("failed to migrate database", sl.Err(err))
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}
	defer db.Close()

	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	recordRepo := repo.NewRecordRepo(db, trmsqlx.DefaultCtxGetter)
	pinService := pins.NewPinService(trManager, recordRepo)

	fetcher := github.NewClient(log, github.Config{
		BaseURL: cfg.GitHub.BaseURL,
		Org:     cfg.GitHub.Org,
		Token:   cfg.GitHub.Token,
	})
	classifier := status.New(cfg.GitHub.Viewer, cfg.Dashboard.StaleThresholdDays, nil)
	view := models.View{
		ShowDrafts:  cfg.Dashboard.ShowDrafts,
		PinnedFirst: cfg.Dashboard.PinnedFirst,
	}
	dashService := dashboard.NewService(log, fetcher, classifier, pinService, recordRepo, view)

	dashHandler := dashh.NewDashboardHandler(log, dashService)
	filterHandler := filtersh.NewFilterHandler(log, dashService)
	pinHandler := pinsh.NewPinHandler(log, pinService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/health", handlers.Healthcheck())
	router.Get("/dashboard", dashHandler.Get)
	router.Post("/dashboard/refresh", dashHandler.Refresh)
	router.Get("/filters", filterHandler.Get)
	router.Put("/filters", filterHandler.Put)
	router.Get("/pins", pinHandler.List)
	router.Post("/pins/toggle", pinHandler.Toggle)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go dashService.Run(ctx, cfg.Dashboard.RefreshInterval)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("failed to start http server", sl.Err(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.WriteTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown http server", sl.Err(err))
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}
