// Package server wires configuration, stores and handlers into a running
// HTTP server.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/panpal-app/backend/config"
	"github.com/panpal-app/backend/internal/api"
	"github.com/panpal-app/backend/internal/database"
	"github.com/panpal-app/backend/internal/middleware"
	"github.com/panpal-app/backend/internal/planner"
	"github.com/panpal-app/backend/internal/router"
	"github.com/panpal-app/backend/internal/service"
	"github.com/panpal-app/backend/internal/shopping"
)

// Server represents the HTTP server and its backing connections.
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	engine *gin.Engine
	http   *http.Server
	db     *database.DB
	gorm   *gorm.DB
	redis  *redis.Client
}

// New builds the full service graph. Redis and S3 are optional: without
// Redis the catalog cache and rate limiting are disabled, without S3
// check-in photo uploads are.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	db, err := database.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	gormDB, err := db.Gorm()
	if err != nil {
		return nil, err
	}

	if err := database.RunMigrations(gormDB, cfg.MigrationsDir, logger); err != nil {
		return nil, err
	}

	redisClient, err := database.NewRedisClient(cfg, logger)
	if err != nil {
		logger.Warn("redis unavailable, catalog cache and rate limiting disabled", zap.Error(err))
		redisClient = nil
	}

	var photos service.PhotoStore
	if cfg.AWSRegion != "" {
		s3Client, err := config.NewS3Client(context.Background(), cfg)
		if err != nil {
			logger.Warn("s3 unavailable, check-in photo uploads disabled", zap.Error(err))
		} else {
			photos = service.NewS3PhotoStore(s3Client, cfg.S3Bucket)
		}
	}

	authService := service.NewAuthService(gormDB, cfg.JWTSecret)
	profileService := service.NewProfileService(gormDB)
	catalogService := service.NewCatalogService(gormDB, redisClient, logger)
	checkInService := service.NewCheckInService(gormDB, photos, logger)

	planStore := service.NewPlanRepository(gormDB)
	listStore := service.NewShoppingListRepository(gormDB)

	mealPlanner := planner.New(catalogService, planStore, profileService, logger)
	shoppingService := shopping.NewService(listStore, planStore, logger)

	var limiter *middleware.RateLimiter
	if redisClient != nil {
		limiter = middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     10,
			KeyPrefix: "ratelimit:mealplan",
		})
	}

	engine := router.SetupRouter(logger, router.Handlers{
		Auth:     api.NewAuthHandler(authService),
		Profile:  api.NewProfileHandler(profileService),
		MealPlan: api.NewMealPlanHandler(mealPlanner, profileService),
		Recipe:   api.NewRecipeHandler(catalogService),
		Shopping: api.NewShoppingHandler(shoppingService),
		CheckIn:  api.NewCheckInHandler(checkInService),
		Health:   api.NewHealthHandler(db, redisClient),
	}, authService, limiter, cfg.AllowedOrigins)

	return &Server{
		cfg:    cfg,
		logger: logger,
		engine: engine,
		db:     db,
		gorm:   gormDB,
		redis:  redisClient,
	}, nil
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.engine,
	}

	s.logger.Info("server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and closes the backing connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			return err
		}
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Warn("closing redis failed", zap.Error(err))
		}
	}
	return s.db.Close()
}
