package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/blogem/adminaudit/authenticator"
	"github.com/blogem/adminaudit/config"
	"github.com/blogem/adminaudit/controllers"
	"github.com/blogem/adminaudit/database"
	authmiddleware "github.com/blogem/adminaudit/middleware"
	"github.com/blogem/adminaudit/observer"
	"github.com/blogem/adminaudit/repositories"
	"github.com/blogem/adminaudit/services"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg)

	// Initialize database
	if err := database.InitializeDatabase(cfg.DatabasePath); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	// Initialize repositories
	repos := repositories.NewRepositories(database.GetDB())

	// A bad log_changes setting must stop startup rather than surface on the first write
	policy, err := cfg.AuditPolicy()
	if err != nil {
		logger.Fatalf("Invalid audit configuration: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	changes := services.NewChangeService(
		repos.Changes,
		repos.Admins,
		policy,
		services.NewCapturer(cfg.Audit.SensitiveFields...),
		services.NewAuditMetrics(registry),
		logger.WithField("component", "changes"),
	)

	// Initialize services
	srvs := services.NewServices(repos, changes, observer.New(changes, logger.WithField("component", "observer")))

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, logger.WithField("component", "controllers"))

	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	auth, err := authenticator.NewOpenIDProvider(context.Background(), authenticator.OpenIDConfig{
		Domain:       cfg.OIDC.Domain,
		ClientID:     cfg.OIDC.ClientID,
		ClientSecret: cfg.OIDC.ClientSecret,
		CallbackURL:  cfg.OIDC.CallbackURL,
	})
	if err != nil {
		logger.Fatalf("Failed to initialize OpenID provider: %v", err)
	}

	// Set up router
	r, err := setupRouter(cfg, ctrl, srvs, auth, registry, logger)
	if err != nil {
		logger.Fatalf("Failed to setup router: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"port":        cfg.Port,
		"database":    cfg.DatabasePath,
		"log_changes": fmt.Sprintf("%T", cfg.Audit.LogChanges),
	}).Info("Admin panel starting")

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}

// newLogger builds the application logger from the log settings
func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithField("log_level", cfg.LogLevel).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}

// setupRouter configures all routes
func setupRouter(
	cfg *config.Config,
	ctrl *controllers.Controllers,
	srvs *services.Services,
	auth authenticator.Provider,
	registry *prometheus.Registry,
	logger logrus.FieldLogger,
) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(middleware.Compress(5))

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "admin_session",
		Secure:         cfg.UseHTTPS,
		Gclifetime:     3600, // Session lifetime in seconds
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)
	r.Use(authmiddleware.RequestLogger(logger.WithField("component", "http")))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/login", ctrl.Auth.Login(auth))
	r.Get("/callback", ctrl.Auth.Callback(auth))
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "adminaudit"}`)
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth(srvs.Admins))

		r.Get("/", ctrl.Dashboard.Index)

		// Change log routes
		r.Route("/changes", func(r chi.Router) {
			r.Get("/", ctrl.Changes.Index)
			r.Get("/export.xlsx", ctrl.Changes.Export)
			r.Get("/{id}", ctrl.Changes.Show)
		})

		// Article management routes
		r.Route("/articles", func(r chi.Router) {
			r.Get("/", ctrl.Articles.Index)
			r.Post("/", ctrl.Articles.Create)
			r.Get("/{id}/edit", ctrl.Articles.Edit)
			r.Post("/{id}", ctrl.Articles.Update)
			r.Post("/{id}/delete", ctrl.Articles.Delete)
		})
	})

	return r, nil
}
