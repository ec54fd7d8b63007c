package main

import (
	"os"
	"path/filepath"

	"github.com/ericogr/robot-arena/internal/api"
	"github.com/ericogr/robot-arena/internal/constants"
	"github.com/ericogr/robot-arena/internal/engine"
	"github.com/ericogr/robot-arena/internal/logging"
	"github.com/ericogr/robot-arena/internal/version"

	"github.com/gin-gonic/gin"
)

func main() {
	logging.Init()
	logging.Info("Starting", logging.Fields{constants.LogFieldBuild: version.String()})

	// ARENA_CONFIG may point at a JSON or YAML file; the default lives in
	// the working directory.
	configPath := envOrDefault(constants.EnvConfigPath, constants.DefaultConfigPath)
	cfg := loadConfigOrExit(configPath)

	dbPath := envOrDefault(constants.EnvDBPath, constants.DefaultDBPath)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		logging.Fatal("Failed to create database directory", err, logging.Fields{constants.LogFieldDBPath: dbPath})
	}
	repo := createRepositoryOrExit(dbPath, cfg)

	eng := engine.New(engine.WithRechargeAmount(cfg.RechargeAmount))
	handler := api.NewArenaHandler(repo, eng, cfg.MaxTurns)

	startContestScanner(repo, eng, cfg.MaxTurns, cfg.ContestScanInterval)

	router := gin.Default()
	api.RegisterRoutes(router, handler)

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
