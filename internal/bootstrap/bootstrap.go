package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/passboard/internal/app/controllers"
	appMigrations "github.com/yigit/passboard/internal/app/migrations"
	"github.com/yigit/passboard/internal/app/models/dto"
	appRepos "github.com/yigit/passboard/internal/app/repositories"
	appRoutes "github.com/yigit/passboard/internal/app/routes"
	appServices "github.com/yigit/passboard/internal/app/services"
	"github.com/yigit/passboard/internal/config"
	"github.com/yigit/passboard/internal/db"
	appMiddleware "github.com/yigit/passboard/internal/middleware"
	"github.com/yigit/passboard/internal/pkg/logger"
	"github.com/yigit/passboard/internal/seed"
	"github.com/yigit/passboard/internal/source"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Source           source.Source
	RecordService    appServices.RecordService
	RecordController *appControllers.RecordController
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFrom(cfg.Logging.Level, cfg.Logging.Format, os.Stdout))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to Postgres, runs migrations and seeds the record
// table when it is empty. It returns nil when the source is not postgres.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	if strings.ToLower(cfg.Source.Kind) != source.KindPostgres {
		return nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); err != nil {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool, lgr).MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Database.SeedFile != "" {
		repo := appRepos.NewRecordRepository(database.Pool)
		if _, err := seed.ImportIfEmpty(ctx, repo, source.NewFileSource(cfg.Database.SeedFile), lgr); err != nil {
			// the service can still publish whatever the table holds
			lgr.Error().Err(err).Msg("Failed to seed records, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes the source, service and controller.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	if database != nil {
		deps.Source = source.NewPostgresSource(appRepos.NewRecordRepository(database.Pool))
	} else {
		src, err := source.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize data source: %w", err)
		}
		deps.Source = src
	}

	deps.RecordService = appServices.NewRecordService(deps.Source, lgr)
	deps.RecordController = appControllers.NewRecordController(deps.RecordService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router, deps.RecordController)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "pong"}))
	})

	return router
}
