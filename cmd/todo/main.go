package main

import (
	"context"
	"fmt"
	"os"

	"todoTracker/internal/cli"
	"todoTracker/internal/config"
	"todoTracker/internal/logger"
	"todoTracker/internal/repository"
	"todoTracker/internal/repository/task/inmemory"
	"todoTracker/internal/repository/task/jsonfile"
	"todoTracker/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run())
}

func run() int {
	// .env читается до конфига: TODO_CONFIG и TODO_FILE могут лежать там
	godotenv.Load()

	configPath := os.Getenv("TODO_CONFIG")
	if configPath == "" {
		configPath = "config.yml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Config error:", err)
		return 1
	}

	if cfg.Logging.Enabled {
		if err := logger.Init(cfg.Logging.Development); err != nil {
			fmt.Fprintln(os.Stderr, "✗ Logger error:", err)
			return 1
		}
	}
	defer logger.Sync()

	var storage repository.TaskStorage
	switch cfg.Storage.Type {
	case config.StorageInMemory:
		storage = inmemory.NewTaskStorage()
	default:
		storage = jsonfile.NewTaskStorage(cfg.Storage.File)
	}

	ctx := context.Background()
	store, err := service.NewTaskStore(ctx, storage)
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Storage error:", err)
		return 1
	}

	app := cli.New(store, os.Stdout, os.Stderr)
	return app.Run(ctx, os.Args[1:])
}
