package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jrient/text-game/internal/api"
	"github.com/jrient/text-game/internal/catalog"
	"github.com/jrient/text-game/internal/config"
	"github.com/jrient/text-game/internal/constants"
	"github.com/jrient/text-game/internal/engine"
	"github.com/jrient/text-game/internal/logging"
	"github.com/jrient/text-game/internal/service"
	"github.com/jrient/text-game/internal/storage"
)

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP game server",
		Run: func(cmd *cobra.Command, args []string) {
			runServe(configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to the JSON config file")
	return cmd
}

func runServe(configPath string) {
	if configPath == "" {
		configPath = os.Getenv(constants.EnvConfigPath)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		logging.Fatal("invalid configuration", err, logging.Fields{"config_path": configPath})
	}

	db, err := storage.OpenAndMigrate(cfg.DBPath)
	if err != nil {
		logging.Fatal("failed to initialize database", err, logging.Fields{"db_path": cfg.DBPath})
	}
	store := storage.NewSQLiteStore(db)

	deps := service.Deps{
		Store:    store,
		Recorder: store,
		Engine:   engine.New(catalog.New(), rand.New(rand.NewSource(time.Now().UnixNano()))),
	}

	startCleanupSweeper(deps, cfg.CleanupInterval)

	handler := api.NewHandler(deps)
	logging.Info("server starting", logging.Fields{constants.LogFieldAddr: cfg.Addr})
	if err := handler.Router().Run(cfg.Addr); err != nil {
		logging.Fatal("server exited", err, nil)
	}
}

// startCleanupSweeper deletes stale sessions on startup and then on a
// fixed interval.
func startCleanupSweeper(deps service.Deps, interval time.Duration) {
	sweep := func() {
		n, err := deps.CleanupStaleGames()
		if err != nil {
			logging.Error("stale session sweep failed", err, nil)
			return
		}
		if n > 0 {
			logging.Info("stale sessions removed", logging.Fields{"count": n})
		}
	}
	sweep()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			sweep()
		}
	}()
}
