package router

import (
	"context"
	"fmt"
	"time"

	"github.com/anonto42/y2k-space/backend/internal/handlers"
	"github.com/anonto42/y2k-space/backend/internal/middleware"
	"github.com/anonto42/y2k-space/backend/internal/models"
	"github.com/anonto42/y2k-space/backend/internal/repositories"
	"github.com/anonto42/y2k-space/backend/pkg/config"
	"github.com/anonto42/y2k-space/backend/pkg/firebase"
	"github.com/anonto42/y2k-space/backend/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Migrate creates or updates the PostgreSQL tables and the MongoDB indexes.
func Migrate(ctx context.Context, db *config.DB, cfg *config.Config) error {
	err := db.Postgres.AutoMigrate(
		&models.User{},
		&models.Comment{},
		&models.Like{},
		&models.Friendship{},
		&models.Block{},
		&models.Message{},
		&models.ConversationSettings{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.Log.Info("PostgreSQL auto-migrations completed")

	postRepo := repositories.NewMongoPostRepository(db.Mongo.Database(cfg.MongoDatabase))
	if err := postRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure post indexes: %w", err)
	}
	return nil
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *config.DB, cfg *config.Config, verifier firebase.TokenVerifier) {
	// Health check - always accessible
	e.GET("/health", handlers.NewHealthHandler(healthChecks(db)).HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"message": "welcome to y2k space"})
	})

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db.Postgres)
	postRepo := repositories.NewMongoPostRepository(db.Mongo.Database(cfg.MongoDatabase))
	commentRepo := repositories.NewPostgresCommentRepository(db.Postgres)
	likeRepo := repositories.NewPostgresLikeRepository(db.Postgres)
	relationshipRepo := repositories.NewCachedRelationshipRepository(
		repositories.NewPostgresRelationshipRepository(db.Postgres), db.Redis, cfg.RelationCacheTTL)
	messageRepo := repositories.NewPostgresMessageRepository(db.Postgres)
	settingsRepo := repositories.NewPostgresConversationSettingsRepository(db.Postgres)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(userRepo, verifier, cfg.JWTSecret, cfg.JWTTTL)
	userHandler := handlers.NewUserHandler(userRepo, postRepo, commentRepo, likeRepo, relationshipRepo)
	postHandler := handlers.NewPostHandler(postRepo, userRepo, commentRepo, likeRepo, relationshipRepo)
	feedHandler := handlers.NewFeedHandler(postRepo, userRepo, commentRepo, likeRepo, relationshipRepo)
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo, userRepo, likeRepo, relationshipRepo)
	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo, commentRepo, relationshipRepo)
	friendshipHandler := handlers.NewFriendshipHandler(relationshipRepo, userRepo)
	messageHandler := handlers.NewMessageHandler(userRepo, relationshipRepo, messageRepo, settingsRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler.RegisterAuthRoutes(authGroup)
	logger.Log.Info("Auth routes configured")

	// --- Routes where a token is optional ---
	public := e.Group("/api/v1",
		middleware.OptionalJWTMiddleware(cfg.JWTSecret),
		middleware.LastActiveMiddleware(userRepo, time.Now),
	)
	feedHandler.RegisterFeedRoutes(public)
	userHandler.RegisterPublicRoutes(public)
	postHandler.RegisterPublicRoutes(public)
	commentHandler.RegisterPublicRoutes(public)
	logger.Log.Info("Public routes configured")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1",
		middleware.JWTAuthMiddleware(cfg.JWTSecret),
		middleware.LastActiveMiddleware(userRepo, time.Now),
	)
	userHandler.RegisterProfileRoutes(api)
	postHandler.RegisterPostRoutes(api)
	commentHandler.RegisterCommentRoutes(api)
	likeHandler.RegisterLikeRoutes(api)
	friendshipHandler.RegisterFriendshipRoutes(api)
	messageHandler.RegisterMessageRoutes(api)

	logger.Log.Info("All routes configured", zap.Int("routes", len(e.Routes())))
}

func healthChecks(db *config.DB) map[string]handlers.Pinger {
	checks := map[string]handlers.Pinger{
		"postgres": func(ctx context.Context) error {
			sqlDB, err := db.Postgres.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		"mongo": func(ctx context.Context) error {
			return db.Mongo.Ping(ctx, nil)
		},
	}
	if db.Redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return db.Redis.Ping(ctx).Err()
		}
	}
	return checks
}
