package main

import (
	"context"
	"flag"
	"log/slog"
	"path"

	"github.com/ekisa-team/tensorbridge/internal/config"
	"github.com/ekisa-team/tensorbridge/internal/env"
	"github.com/ekisa-team/tensorbridge/internal/logger"
	"github.com/ekisa-team/tensorbridge/internal/model"
)

func main() {
	var (
		flagConfigPath = flag.String("config", path.Join(config.DefaultConfigPath(), "config.yaml"), "Path to config file")
		flagSchemaPath = flag.String("schema", path.Join(config.DefaultConfigPath(), "tensorbridge.v1.schema.json"), "Path to schema file")
	)
	flag.Parse()

	environment := env.FromEnv()

	slog.SetDefault(
		logger.New(environment,
			logger.WithLogToFile(true),
			logger.WithLogFile("logs/tensorbridge.log"),
		),
	)

	manager := model.NewManager()

	watcher, err := config.NewWatcher(*flagConfigPath, *flagSchemaPath, func(cfg *config.Config, err error) {
		if err != nil {
			slog.Error("Failed to reload config", "error", err)
			return
		}

		if err := manager.LoadFromConfig(context.Background(), cfg); err != nil {
			slog.Error("Failed to load containers from config", "error", err)
			return
		}
	})
	if err != nil {
		slog.Error("Failed to create config watcher", "error", err)
		return
	}

	cfg := watcher.Snapshot()
	if err := manager.LoadFromConfig(context.Background(), cfg); err != nil {
		slog.Error("Failed to load containers from config", "error", err)
		return
	}

	slog.Info("Config loaded successfully", "config", *flagConfigPath, "schema", *flagSchemaPath)

	select {}
}
