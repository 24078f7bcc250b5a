package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"deptsite/internal/auth"
	"deptsite/internal/config"
	"deptsite/internal/handler"
	"deptsite/internal/imaging"
	"deptsite/internal/middleware"
	"deptsite/internal/render"
	"deptsite/internal/session"
	"deptsite/internal/store"
	"deptsite/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "deptsite - department website server\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DEPTSITE_SESSION_SECRET  Session key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DEPTSITE_DB_PATH         SQLite database path (default: ./data/deptsite.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DEPTSITE_DATABASE_URL    MySQL DSN; overrides the SQLite file when set\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DEPTSITE_SERVER_PORT     Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DEPTSITE_ENV             Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DEPTSITE_STATIC_DIR      Static assets directory (default: ./static)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  DEPTSITE_DO_SEED         Load demo content on an empty database (default: false)\n")
	}

	flag.Parse()

	if *showVersion {
		_, _ = fmt.Printf("deptsite %s (commit: %s)\n", appVersion, appGitCommit)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Initialize database
	var db *sql.DB
	dialect := store.DialectSQLite
	if cfg.UseMySQL() {
		dialect = store.DialectMySQL
		slog.Info("initializing database", "dialect", dialect)
		db, err = store.NewMySQL(cfg.DatabaseURL)
	} else {
		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
		slog.Info("initializing database", "dialect", dialect, "path", cfg.DBPath)
		db, err = store.NewDB(cfg.DBPath)
	}
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db, dialect); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Seed the first admin account on an empty users table
	ctx := context.Background()
	queries := store.New(db)

	passwordHash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}
	if err := store.SeedAdmin(ctx, queries, cfg.AdminEmail, passwordHash, logger); err != nil {
		return fmt.Errorf("seeding admin account: %w", err)
	}

	if cfg.DoSeed {
		// A broken or missing seed script must not keep the site down.
		if err := store.SeedDemo(ctx, db, cfg.SeedPath, logger); err != nil {
			slog.Error("demo seed skipped", "error", err)
		}
	}

	// Initialize session manager
	sessionManager := session.New(db, dialect, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	// Initialize template renderer
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}
	slog.Info("template renderer initialized")

	// CSRF protection middleware
	csrfConfig := middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment())
	csrfMiddleware := middleware.CSRF(csrfConfig)
	slog.Info("CSRF protection initialized", "secure", !cfg.IsDevelopment())

	// Login protection: per-IP rate limiting on credential submissions
	loginProtection := middleware.NewLoginProtection(0.5, 5)
	slog.Info("login protection initialized", "ip_rate_limit", "0.5 req/s", "burst", 5)

	// Initialize handlers
	processor := imaging.NewProcessor(cfg.StaticDir)
	frontendHandler := handler.NewFrontendHandler(db, renderer)
	authHandler := handler.NewAuthHandler(db, renderer, sessionManager)
	crudHandler := handler.NewCrudHandler(renderer, processor)
	handler.RegisterResources(crudHandler, db)
	adminHandler := handler.NewAdminHandler(db, renderer, crudHandler)

	// Create router
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(sessionManager.LoadAndSave)

	// Public frontend routes
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)

		r.Get(handler.RouteRoot, frontendHandler.Home)
		r.Get("/p/{slug}", frontendHandler.Page)
		r.Get("/about", frontendHandler.About)
		r.Get("/academics", frontendHandler.Academics)
		r.Get("/faculty", frontendHandler.Faculty)
		r.Get("/research", frontendHandler.Research)
		r.Get("/placements", frontendHandler.Placements)
		r.Get("/news", frontendHandler.NewsList)
		r.Get("/news/{slug}", frontendHandler.NewsDetail)
		r.Get("/events", frontendHandler.EventsList)
		r.Get("/newsletter", frontendHandler.Newsletters)
		r.Get("/gallery", frontendHandler.Gallery)
		r.Get("/gallery/{id}", frontendHandler.GalleryAlbum)
		r.Get("/alumni", frontendHandler.Alumni)
		r.Get("/contact", frontendHandler.ContactForm)
		r.Post("/contact", frontendHandler.ContactSubmit)
	})

	// Auth routes (public, with CSRF and rate limiting)
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Get(handler.RouteLogin, authHandler.LoginForm)
		r.With(loginProtection.Middleware()).Post(handler.RouteLogin, authHandler.Login)
		r.Get(handler.RouteLogout, authHandler.Logout)
		r.Post(handler.RouteLogout, authHandler.Logout)
	})

	// Admin routes (protected with CSRF)
	r.Route(handler.RouteAdmin, func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Use(middleware.RequireAdmin(sessionManager, db))

		r.Get("/", adminHandler.Dashboard)
		crudHandler.Mount(r)
	})

	// Static file serving (stylesheets, banners, uploaded images)
	staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
	r.Handle("/static/*", staticHandler)

	// 404 handler renders the public not-found page
	r.NotFound(frontendHandler.NotFound)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
