package main

import (
	"cat-facts/internal/app"
	"cat-facts/internal/model"
	"cat-facts/pkg/cache"
	"cat-facts/pkg/config"
	"cat-facts/pkg/database"
	"cat-facts/pkg/logger"
)

// @title           Cat Facts API
// @version         1.0
// @description     Cat facts service with likes, AI cat care assistant and user accounts.

// @host      localhost:8000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Schema is managed by goose (cmd/migrate); AutoMigrate keeps dev
	// environments usable without running migrations first.
	if err := db.AutoMigrate(&model.FactModel{}, &model.LikeModel{}, &model.UserModel{}); err != nil {
		log.Error("Failed to run auto migration: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, rate limiting disabled: %v", err)
		redisClient = nil
	}

	app.Run(cfg, log, db, redisClient)
}
