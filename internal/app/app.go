package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	factHTTP "cat-facts/internal/controller/http"
	"cat-facts/internal/repo/persistent"
	"cat-facts/internal/usecase"
	"cat-facts/pkg/config"
	"cat-facts/pkg/jwt"
	"cat-facts/pkg/logger"
	"cat-facts/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "cat-facts/docs" // Swagger docs
)

// Run wires the application together and serves HTTP until interrupted.
// redisClient may be nil; rate limiting is then disabled.
func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	factRepo := persistent.NewFactRepository(db)
	userRepo := persistent.NewUserRepository(db)

	// Initialize use cases
	factUseCase := usecase.NewFactUseCase(factRepo, cfg.MinFactLength, cfg.MaxFactLength, log)
	importUseCase := usecase.NewImportUseCase(factRepo, cfg.MaxImportFacts, cfg.DefaultImportFacts, log)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, log)

	var aiUseCase usecase.AIUseCase
	if cfg.OpenAIAPIKey != "" {
		aiUseCase = usecase.NewAIUseCase(cfg, log)
	} else {
		log.Warn("OPENAI_API_KEY not set, AI endpoint disabled")
	}

	// Initialize HTTP handlers
	factHandler := factHTTP.NewFactHandler(factUseCase, importUseCase, log)
	aiHandler := factHTTP.NewAIHandler(aiUseCase, log)
	authHandler := factHTTP.NewAuthHandler(authUseCase, log)
	healthHandler := factHTTP.NewHealthHandler(db, aiUseCase != nil, log)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	if redisClient != nil {
		r.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	}

	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.AuthMiddleware(jwtService), authHandler.Me)
	}

	// Likes attribute to the JWT identity when one is presented and fall
	// back to a generated one otherwise.
	optionalAuth := middleware.OptionalAuthMiddleware(jwtService)

	{
		r.GET("/catfacts", factHandler.ListFacts)
		r.GET("/catfacts/random", factHandler.GetRandomFact)
		r.GET("/catfacts/:id", factHandler.GetFact)
		r.POST("/catfacts", factHandler.CreateFact)
		r.DELETE("/catfacts/:id", factHandler.DeleteFact)
		r.POST("/catfacts/:id/like", optionalAuth, factHandler.LikeFact)
		r.DELETE("/catfacts/:id/like", optionalAuth, factHandler.UnlikeFact)
		r.POST("/import-facts", factHandler.ImportFacts)
		r.POST("/api/ask-ai", aiHandler.AskAI)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    cfg.Host + ":" + cfg.Port,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Cat facts service starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down cat facts service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Cat facts service exited")
}
