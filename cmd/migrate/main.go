package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"ark-lookup-api/internal/config"
	"ark-lookup-api/internal/database"
)

func main() {
	var (
		dbPath  = flag.String("db", config.GetEnv("ARK_SQLITE_PATH", "./data/ark.db"), "Database file path")
		action  = flag.String("action", "up", "Migration action: up, down, status, validate")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	absDBPath, err := filepath.Abs(*dbPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to get absolute database path")
	}

	logger.WithFields(logrus.Fields{
		"db_path": absDBPath,
		"action":  *action,
	}).Info("Starting migration tool")

	migrations := database.NewMigrationManager(absDBPath, logger)

	switch *action {
	case "up":
		if err := migrations.RunMigrations(); err != nil {
			logger.WithError(err).Fatal("Migration up failed")
		}
	case "down":
		if err := migrations.RollbackMigration(); err != nil {
			logger.WithError(err).Fatal("Migration down failed")
		}
	case "status":
		if err := showMigrationStatus(migrations); err != nil {
			logger.WithError(err).Fatal("Failed to get migration status")
		}
	case "validate":
		if err := validateSchema(absDBPath, logger); err != nil {
			logger.WithError(err).Fatal("Schema validation failed")
		}
	default:
		logger.WithField("action", *action).Fatal("Unknown action. Use: up, down, status, validate")
	}

	logger.Info("Migration tool completed successfully")
}

func showMigrationStatus(migrations *database.MigrationManager) error {
	status, err := migrations.GetMigrationStatus()
	if err != nil {
		return err
	}

	fmt.Printf("Migration Status:\n")
	fmt.Printf("  Version: %d\n", status.Version)
	fmt.Printf("  Applied: %t\n", status.Applied)
	fmt.Printf("  Dirty: %t\n", status.Dirty)

	return nil
}

func validateSchema(dbPath string, logger *logrus.Logger) error {
	cm := database.NewConnectionManager(&database.ConnectionConfig{
		DatabasePath: dbPath,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		Logger:       logger,
	})
	if err := cm.Connect(context.Background()); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer cm.Close()

	if err := database.ValidateSchema(cm.GetDB()); err != nil {
		return err
	}

	fmt.Println("Schema validation passed successfully")
	return nil
}
