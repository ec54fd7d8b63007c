package main

import (
	"os"

	"github.com/ericogr/robot-arena/internal/config"
	"github.com/ericogr/robot-arena/internal/constants"
	"github.com/ericogr/robot-arena/internal/logging"
	"github.com/ericogr/robot-arena/internal/storage"
)

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid arena configuration", err, logging.Fields{
			constants.LogFieldConfigPath: path,
			"hint":                       "create an arena_config.json (or .yaml) with a 'weapon_list' array (name,damage,durability,causes_freeze) and optional keys: robot_list, server.address, recharge_amount, max_turns, contest_scan_interval_seconds",
		})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string, cfg *config.LoadedConfig) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath, cfg.Weapons, cfg.Robots)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{constants.LogFieldDBPath: dbPath})
	}
	return storage.NewSQLiteRepository(db)
}
