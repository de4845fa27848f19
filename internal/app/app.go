package app

import (
	"context"
	"fmt"
	"net/http"

	"blogger/internal/auth"
	"blogger/internal/config"
	"blogger/internal/db"
	"blogger/internal/handlers"
	"blogger/internal/logger"
	"blogger/internal/middleware"
	"blogger/internal/repository"
	"blogger/internal/routes"
	"blogger/internal/services"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type App struct {
	Handler http.Handler
	Pool    *pgxpool.Pool
	Auth    *services.AuthService
}

func (a *App) Close() {
	if a.Pool != nil {
		a.Pool.Close()
	}
}

// InitApp connects to the database, optionally migrates it, checks the schema
// and wires repositories, services and handlers into one http.Handler.
func InitApp(ctx context.Context, cfg *config.Config) (*App, error) {
	pool, err := db.NewPostgresConnection(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.GetDSNSafe(), err)
	}
	logger.Log.Info("database connected", zap.String("dsn", cfg.GetDSNSafe()), zap.Int32("max_conns", cfg.DbMaxConns))

	if cfg.DbAutoMigrate {
		if err := db.Migrate(ctx, pool, "up"); err != nil {
			pool.Close()
			return nil, err
		}
	}
	if err := db.VerifyTables(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	// Repositories
	userRepo := repository.NewUserRepository(pool)
	blogRepo := repository.NewBlogRepo(pool)
	categoryRepo := repository.NewCategoryRepo(pool)
	vendorRepo := repository.NewVendorRepo(pool)
	adRepo := repository.NewAdRepo(pool)

	// Services
	verifier := auth.NewVerifier(cfg)
	authService := services.NewAuthService(userRepo, verifier)
	blogService := services.NewBlogService(blogRepo, cfg.SanitizeHTML)
	categoryService := services.NewCategoryService(categoryRepo)
	vendorService := services.NewVendorService(vendorRepo)
	adService := services.NewAdService(adRepo)

	// Handlers
	h := routes.Handlers{
		Auth:     handlers.NewAuthHandler(authService),
		Blog:     handlers.NewBlogHandler(blogService),
		Category: handlers.NewCategoryHandler(categoryService),
		Vendor:   handlers.NewVendorHandler(vendorService),
		Ad:       handlers.NewAdHandler(adService),
	}

	return &App{
		Handler: NewHandler(cfg, h, verifier),
		Pool:    pool,
		Auth:    authService,
	}, nil
}

// NewHandler builds the router and wraps it in the middleware chain:
// CORS, request id, access log, panic recovery.
func NewHandler(cfg *config.Config, h routes.Handlers, verifier auth.Verifier) http.Handler {
	router := mux.NewRouter()
	routes.InitRoutes(router, h, verifier)

	var handler http.Handler = router
	handler = middleware.Recoverer(handler)
	handler = middleware.Logging(handler)
	handler = middleware.RequestID(handler)
	return corsFor(cfg).Handler(handler)
}

func corsFor(cfg *config.Config) *cors.Cors {
	opts := cors.Options{
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
	}
	if cfg.IsDev() {
		opts.AllowOriginFunc = func(string) bool { return true }
	} else {
		opts.AllowedOrigins = cfg.AllowedOrigins()
	}
	return cors.New(opts)
}
