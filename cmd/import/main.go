package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cat-facts/internal/repo/persistent"
	"cat-facts/internal/usecase"
	"cat-facts/pkg/config"
	"cat-facts/pkg/database"
	"cat-facts/pkg/logger"
)

func main() {
	var numFacts int
	flag.IntVar(&numFacts, "n", 0, "Number of facts to import (0 uses the configured default)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	factRepo := persistent.NewFactRepository(db)
	importUseCase := usecase.NewImportUseCase(factRepo, cfg.MaxImportFacts, cfg.DefaultImportFacts, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := importUseCase.Import(ctx, numFacts)
	if err != nil {
		log.Error("Import failed: %v", err)
		panic(err)
	}

	log.Info("%s", result.Message)
}
