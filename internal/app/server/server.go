package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"paycalc/internal/platform/config"
	"paycalc/internal/platform/logger"
	"paycalc/internal/platform/metrics"
	"paycalc/internal/transport/http/api"
	payrollhandler "paycalc/internal/transport/http/handlers/payroll"
	"paycalc/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Log     *logger.Logger
	Metrics *metrics.Collector
	Router  http.Handler
}

func New(cfg config.Config, log *logger.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	api.SetLogger(log)
	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(chimw.Recoverer)
	router.Use(middleware.Logger(log, collector))
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute, middleware.WithRateLimitLogger(log)))

		payrollHandler := payrollhandler.NewHandler(log, collector, cfg.MaxRosterSize, cfg.ReportTitle, cfg.JWTSecret != "")
		payrollHandler.RegisterRoutes(r)
	})

	return &App{Config: cfg, Log: log, Metrics: collector, Router: router}, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("payroll server listening", "addr", a.Config.Addr)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	a.Log.Info("payroll server shutting down")
	return srv.Shutdown(shutdownCtx)
}
