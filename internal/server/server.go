// Package server wires the HTTP server: router, middleware, routes, and the
// dependency chain from database to handlers. main.go stays minimal; all
// composition happens here.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/faculty-appraisal/internal/auth"
	"github.com/sakif/faculty-appraisal/internal/handler"
	"github.com/sakif/faculty-appraisal/internal/middleware"
	"github.com/sakif/faculty-appraisal/internal/model"
	sqliteRepo "github.com/sakif/faculty-appraisal/internal/repository/sqlite"
	"github.com/sakif/faculty-appraisal/internal/service"
)

// Config holds everything the server needs from the environment.
type Config struct {
	Port          int
	DBPath        string
	JWTSecret     string
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// Server owns the router and the database connection. The connection is
// closed during graceful shutdown to flush the WAL and release the file lock.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New assembles the full dependency chain:
// sqlite.DB → token/password services → auth, activity, and report services
// → HTTP handlers → routes. It also seeds the admin account if configured.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	if err := s.setupRoutes(); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// setupRoutes configures middleware, builds the service layer, and maps
// every route.
//
// Route map:
//
//	POST   /api/auth/register                 → create faculty account
//	POST   /api/auth/login                    → authenticate, set session cookie
//	POST   /api/auth/logout                   → clear session cookie
//	GET    /api/auth/me                       → current user           [auth]
//	GET    /api/activities/{type}             → list own records       [faculty]
//	POST   /api/activities/{type}             → add record             [faculty]
//	PUT    /api/activities/{type}/{id}        → update record          [faculty]
//	DELETE /api/activities/{type}/{id}        → remove record          [faculty]
//	GET    /api/admin/faculty                 → faculty directory      [admin]
//	GET    /api/admin/faculty/{id}/stats      → activity counts        [admin]
//	GET    /api/admin/faculty/{id}/report     → single-faculty PDF     [admin]
//	GET    /api/admin/reports                 → whole-roster PDF       [admin]
func (s *Server) setupRoutes() error {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	tokens, err := auth.NewTokenService(s.config.JWTSecret)
	if err != nil {
		return fmt.Errorf("creating token service: %w", err)
	}
	passwords := auth.NewPasswordService()

	authService := service.NewAuthService(s.db, tokens, passwords, s.logger)
	engines := service.NewEngines(s.db, s.logger)
	reportService := service.NewReportService(s.db, engines, s.logger)

	if s.config.AdminEmail != "" && s.config.AdminPassword != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := authService.SeedAdmin(ctx, s.config.AdminName, s.config.AdminEmail, s.config.AdminPassword); err != nil {
			return fmt.Errorf("seeding admin account: %w", err)
		}
	}

	authHandler := handler.NewAuthHandler(authService, s.logger)
	adminHandler := handler.NewAdminHandler(authService, reportService, s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/logout", authHandler.HandleLogout)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(tokens))
			r.Get("/auth/me", authHandler.HandleMe)
		})

		// Faculty record the five activity types against their own account.
		r.Route("/activities", func(r chi.Router) {
			r.Use(auth.RequireAuth(tokens))
			r.Use(auth.RequireRole(model.RoleFaculty))

			r.Route("/publications", handler.NewActivityHandler(engines.Publications, s.logger).Mount)
			r.Route("/seminars", handler.NewActivityHandler(engines.Seminars, s.logger).Mount)
			r.Route("/events", handler.NewActivityHandler(engines.Events, s.logger).Mount)
			r.Route("/lectures", handler.NewActivityHandler(engines.Lectures, s.logger).Mount)
			r.Route("/projects", handler.NewActivityHandler(engines.Projects, s.logger).Mount)

			// Static routes win over the {type} pattern, so only unmatched
			// kind segments land here.
			r.HandleFunc("/{type}", handler.HandleUnknownActivityType)
			r.HandleFunc("/{type}/*", handler.HandleUnknownActivityType)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireAuth(tokens))
			r.Use(auth.RequireRole(model.RoleAdmin))

			r.Get("/faculty", adminHandler.HandleListFaculty)
			r.Get("/faculty/{id}/stats", adminHandler.HandleFacultyStats)
			r.Get("/faculty/{id}/report", adminHandler.HandleFacultyReport)
			r.Get("/reports", adminHandler.HandleAllReports)
		})
	})

	return nil
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: in-flight requests get 30 seconds, then the database closes.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
