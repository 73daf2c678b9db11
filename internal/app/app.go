package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	photoHTTP "photoshare/internal/controller/http"
	"photoshare/internal/repo/persistent"
	"photoshare/internal/usecase"
	"photoshare/internal/vision"
	"photoshare/pkg/config"
	"photoshare/pkg/jwt"
	"photoshare/pkg/logger"
	"photoshare/pkg/middleware"
	"photoshare/pkg/queue"
	"photoshare/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "photoshare/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, visionClient *vision.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTExpiry)

	// Repositories
	userRepo := persistent.NewUserRepository(db)
	photoRepo := persistent.NewPhotoRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	interactionRepo := persistent.NewInteractionRepository(db)

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, photoRepo, commentRepo, jwtService, log)
	photoUseCase := usecase.NewPhotoUseCase(photoRepo, userRepo, interactionRepo, s3Client, visionClient, queueClient, cfg.SignedURLExpiry, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, photoRepo, userRepo, log)
	interactionUseCase := usecase.NewInteractionUseCase(interactionRepo, photoRepo, log)
	statsUseCase := usecase.NewStatsUseCase(photoRepo, userRepo, redisClient, log)

	// HTTP handlers
	authHandler := photoHTTP.NewAuthHandler(authUseCase, log)
	photoHandler := photoHTTP.NewPhotoHandler(photoUseCase, cfg.MaxUploadSize, log)
	commentHandler := photoHTTP.NewCommentHandler(commentUseCase, log)
	interactionHandler := photoHTTP.NewInteractionHandler(interactionUseCase, log)
	statsHandler := photoHTTP.NewStatsHandler(statsUseCase, log)

	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	// Public routes. Browsing works anonymously, but a valid token personalizes
	// listings with the caller's likes and ratings.
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware(jwtService))
	{
		public.POST("/auth/register", authHandler.Register)
		public.POST("/auth/login", authHandler.Login)

		public.GET("/photos", photoHandler.List)
		public.GET("/search", photoHandler.Search)
		public.GET("/photos/categories", photoHandler.Categories)
		public.GET("/photos/:id", photoHandler.Get)
		public.GET("/photos/:id/comments", commentHandler.List)

		public.GET("/stats", statsHandler.Stats)
	}

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtService))
	{
		authed.GET("/auth/profile", authHandler.Profile)
		authed.PUT("/auth/profile", authHandler.UpdateProfile)

		authed.PUT("/photos/:id", photoHandler.Update)
		authed.DELETE("/photos/:id", photoHandler.Delete)

		authed.POST("/photos/:id/like", interactionHandler.Like)
		authed.DELETE("/photos/:id/like", interactionHandler.Unlike)
		authed.POST("/photos/:id/rate", interactionHandler.Rate)

		authed.POST("/photos/:id/comments", commentHandler.Add)
		authed.DELETE("/photos/:id/comments/:commentId", commentHandler.Delete)
	}

	// Creator-only routes
	creator := api.Group("")
	creator.Use(middleware.AuthMiddleware(jwtService))
	creator.Use(middleware.RequireRole("creator"))
	{
		creator.POST("/photos", photoHandler.Upload)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("Photoshare API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if queueClient != nil {
		queueClient.Close()
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Photoshare API exited")
}
