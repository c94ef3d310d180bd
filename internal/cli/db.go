package cli

import (
	"os"
	"strconv"
	"time"

	"github.com/pankajredekar/taxongorm/internal/category"
	"github.com/pankajredekar/taxongorm/internal/config"
	"github.com/pankajredekar/taxongorm/internal/logger"
	"github.com/pankajredekar/taxongorm/internal/migrations"
	"github.com/pankajredekar/taxongorm/internal/runner"
	"github.com/pankajredekar/taxongorm/internal/store"
	"github.com/pankajredekar/taxongorm/internal/utils"
	"github.com/pankajredekar/taxongorm/internal/versioner"
	"gorm.io/gorm"
)

const slowQueryThreshold = 200 * time.Millisecond

// mustLoadConfig loads and validates the config file or exits
func mustLoadConfig() *config.Config {
	if !utils.FileExists(configPath) {
		utils.PrintError("%s not found. Run 'taxongorm init' first", configPath)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		utils.PrintError("Failed to load config: %v", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		utils.PrintError("Invalid config: %v", err)
		os.Exit(1)
	}
	return cfg
}

// mustConnect opens the configured database with SQL logging routed
// through the configured log level
func mustConnect(cfg *config.Config) (*gorm.DB, *logger.Logger) {
	level, _ := logger.ParseLevel(cfg.LogLevel)
	log := logger.NewConsole(level)

	db, err := store.Connect(cfg.DatabaseURL, log.Gorm(slowQueryThreshold))
	if err != nil {
		utils.PrintError("Failed to connect to database: %v", err)
		os.Exit(1)
	}
	return db, log
}

// mustRunner builds a migration runner over the built-in migrations
func mustRunner(cfg *config.Config, db *gorm.DB) (*runner.Runner, *versioner.Versioner) {
	ver := versioner.NewVersioner(db, cfg.MigrationTable)
	if err := ver.Initialize(); err != nil {
		utils.PrintError("Failed to initialize version table: %v", err)
		os.Exit(1)
	}
	return runner.NewRunner(db, migrations.Registry(), ver), ver
}

// mustService connects and returns the category service
func mustService() *category.Service {
	cfg := mustLoadConfig()
	db, log := mustConnect(cfg)
	return category.NewService(store.NewGormStore(db), category.Options{
		SameTaxonomyParent: cfg.SameTaxonomyParent,
		DeferValidation:    cfg.DeferValidation,
		Logger:             log,
	})
}

// mustID parses a positive numeric id argument or exits
func mustID(arg, what string) uint {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		utils.PrintError("Invalid %s id: %s", what, arg)
		os.Exit(1)
	}
	return uint(id)
}
