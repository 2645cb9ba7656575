// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/dgoss28/clear-match-ai/internal/auth"
	"github.com/dgoss28/clear-match-ai/internal/config"
	"github.com/dgoss28/clear-match-ai/internal/handler"
	"github.com/dgoss28/clear-match-ai/internal/middleware"
	"github.com/dgoss28/clear-match-ai/internal/outreach"
	"github.com/dgoss28/clear-match-ai/internal/repository"
	"github.com/dgoss28/clear-match-ai/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// The activity log keeps its own pgx pool; it never goes through the ORM.
	pool, err := setupActivityPool(cfg)
	if err != nil {
		return fmt.Errorf("setting up activity pool: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	tagRepo := repository.NewTagRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	activityRepo := repository.NewActivityRepository(pool)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize cache service
	cacheService := service.NewCacheService(service.CacheConfig{
		TTL:         5 * time.Minute,
		CleanupFreq: 1 * time.Minute,
	})
	defer cacheService.Close()

	// Initialize services
	profileService := service.NewProfileService(profileRepo, orgRepo, passwordHasher, tokenManager)
	candidateService := service.NewCandidateService(candidateRepo, activityRepo)
	activityService := service.NewActivityService(activityRepo, candidateRepo)
	tagService := service.NewTagService(tagRepo, candidateRepo)
	templateService := service.NewTemplateService(templateRepo)
	dashboardService := service.NewDashboardService(candidateRepo, activityRepo, cacheService)
	outreachService := outreach.NewService(templateRepo, candidateRepo, activityRepo, outreach.NewSendgridSender(cfg))

	// Initialize handlers
	authHandler := handler.NewAuthHandler(profileService)
	candidateHandler := handler.NewCandidateHandler(candidateService, activityService, tagService)
	tagHandler := handler.NewTagHandler(tagService)
	templateHandler := handler.NewTemplateHandler(templateService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	outreachHandler := handler.NewOutreachHandler(outreachService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))

			r.Post("/signup", authHandler.SignupHandler)
			r.Post("/login", authHandler.LoginHandler)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager, profileRepo))

			r.Get("/me", authHandler.MeHandler)
			r.Put("/me", authHandler.UpdateMeHandler)

			r.Get("/dashboard", dashboardHandler.Overview)

			r.Route("/candidates", func(r chi.Router) {
				r.Get("/", candidateHandler.List)
				r.Post("/", candidateHandler.Create)
				r.Get("/{id}", candidateHandler.Get)
				r.Put("/{id}", candidateHandler.Update)
				r.Delete("/{id}", candidateHandler.Delete)
				r.Get("/{id}/activities", candidateHandler.ListActivities)
				r.Post("/{id}/activities", candidateHandler.RecordActivity)
				r.Post("/{id}/tags/{tagID}", candidateHandler.AssignTag)
				r.Delete("/{id}/tags/{tagID}", candidateHandler.UnassignTag)
			})

			r.Route("/tags", func(r chi.Router) {
				r.Get("/", tagHandler.List)
				r.Post("/", tagHandler.Create)
				r.Delete("/{id}", tagHandler.Delete)
			})

			r.Route("/templates", func(r chi.Router) {
				r.Get("/", templateHandler.List)
				r.Post("/", templateHandler.Create)
				r.Get("/{id}", templateHandler.Get)
				r.Put("/{id}", templateHandler.Update)
				r.Post("/{id}/duplicate", templateHandler.Duplicate)
				r.Delete("/{id}", templateHandler.Delete)
			})

			r.Post("/outreach/send", outreachHandler.Send)
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// newGormConfig builds the ORM configuration for the main connection.
// TranslateError must stay on: the duplicate-key branches in the
// repositories match on gorm.ErrDuplicatedKey, and without translation
// the postgres driver surfaces unique violations as raw pgconn errors
// that never hit those branches.
func newGormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	}
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	db, err := gorm.Open(postgres.Open(dsn), newGormConfig())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func setupActivityPool(cfg *config.Config) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging activity pool: %w", err)
	}

	return pool, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"error encountered"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
