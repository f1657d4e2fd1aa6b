package main

import (
	"os"

	"github.com/ringside/boxing/internal/api"
	"github.com/ringside/boxing/internal/arena"
	"github.com/ringside/boxing/internal/config"
	"github.com/ringside/boxing/internal/constants"
	"github.com/ringside/boxing/internal/logging"
	"github.com/ringside/boxing/internal/randomsource"
	"github.com/ringside/boxing/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := loadConfig()

	// Allow the DB path to be configured via BOXING_DB. Default to a
	// `data/` directory inside the module for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/boxing.db"
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	repo := storage.NewSQLiteRepository(db)

	random := randomsource.NewClient(cfg.RandomSourceURL, cfg.RandomSourceTimeout)
	ring := arena.NewRing(random, repo)
	handler := api.NewBoxingHandler(repo, ring, cfg.LeaderboardLimit)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteHealth, api.Health)
		apiRoutes.GET(constants.RouteVersion, api.Version)

		apiRoutes.POST(constants.RouteBoxers, handler.CreateBoxer)
		apiRoutes.DELETE(constants.RouteBoxerByID, handler.DeleteBoxer)
		apiRoutes.GET(constants.RouteBoxerByID, handler.GetBoxerByID)
		apiRoutes.GET(constants.RouteBoxerByName, handler.GetBoxerByName)
		apiRoutes.GET(constants.RouteLeaderboard, handler.GetLeaderboard)

		apiRoutes.GET(constants.RouteRing, handler.GetRing)
		apiRoutes.PUT(constants.RouteRingEnter, handler.EnterRing)
		apiRoutes.POST(constants.RouteRingClear, handler.ClearRing)
		apiRoutes.POST(constants.RouteFight, handler.Fight)
	}

	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: cfg.ServerAddress})
	if err := router.Run(cfg.ServerAddress); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}

// loadConfig resolves the configuration: an explicit BOXING_CONFIG path is
// required to exist; the default path is used only when present.
func loadConfig() *config.LoadedConfig {
	path := os.Getenv(constants.EnvConfigPath)
	if path == "" {
		path = "./boxing_config.json"
		if _, err := os.Stat(path); err != nil {
			return config.Default()
		}
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid boxing configuration", err, logging.Fields{"config_path": path})
	}
	return cfg
}
