package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	appMigrations "github.com/yigit/unipay/internal/app/migrations"
	appRepos "github.com/yigit/unipay/internal/app/repositories"
	"github.com/yigit/unipay/internal/config"
	"github.com/yigit/unipay/internal/db"
	"github.com/yigit/unipay/internal/pkg/logger"
	"github.com/yigit/unipay/internal/seed"
)

// LoadConfigAndSetupLogger loads .env (when present) and the config file, then configures the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if err := loadDotEnv(".env"); err != nil {
		logger.Error().Err(err).Msg("Failed to load .env file")
		return nil, zerolog.Logger{}, err
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := logger.Get()
	lgr.Debug().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// loadDotEnv loads path into the environment. Variables already set win.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// SetupDatabase establishes the database connection and optionally applies the embedded migrations.
// The caller owns the returned connection and must Close it.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger, migrate bool) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if !migrate {
		return database, nil
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.MigrateFS(ctx, appMigrations.Files()); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// NewStores wires the postgres repositories into the seeder's store set
func NewStores(repos *appRepos.Repositories) seed.Stores {
	return seed.Stores{
		Organizations:   repos.OrganizationRepository,
		Colleges:        repos.CollegeRepository,
		Courses:         repos.CourseRepository,
		Users:           repos.UserRepository,
		Officers:        repos.OfficerRepository,
		Students:        repos.StudentRepository,
		FeeTypes:        repos.FeeTypeRepository,
		PaymentRequests: repos.PaymentRequestRepository,
	}
}
