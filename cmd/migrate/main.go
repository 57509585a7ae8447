package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/plastpack/erp/internal/domain/identity"
	"github.com/plastpack/erp/internal/infrastructure/config"
	"github.com/plastpack/erp/internal/infrastructure/logger"
	"github.com/plastpack/erp/internal/infrastructure/persistence"
)

func main() {
	var (
		logLevel      string
		adminUsername string
		adminPassword string
		skipSeed      bool
	)

	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&adminUsername, "admin-user", "admin", "Username for the initial admin account")
	flag.StringVar(&adminPassword, "admin-password", "", "Password for the initial admin account (or ADMIN_PASSWORD env)")
	flag.BoolVar(&skipSeed, "skip-seed", false, "Run schema migration only, without seeding the admin account")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	if err := persistence.Migrate(db.DB); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
	log.Info("Schema migration complete")

	if skipSeed {
		return
	}
	if err := seedAdmin(context.Background(), db, adminUsername, adminPassword, log); err != nil {
		log.Fatal("Admin seeding failed", zap.Error(err))
	}
}

// seedAdmin creates the initial admin account on a fresh database. It is a
// no-op once any user exists, so re-running the migration is safe.
func seedAdmin(ctx context.Context, db *persistence.Database, username, password string, log *zap.Logger) error {
	users := persistence.NewGormUserRepository(db.DB)

	count, err := users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		log.Info("Users already present, skipping admin seed", zap.Int64("count", count))
		return nil
	}

	if password == "" {
		password = os.Getenv("ADMIN_PASSWORD")
	}
	if password == "" {
		return fmt.Errorf("no admin password provided, set -admin-password or ADMIN_PASSWORD")
	}

	admin, err := identity.NewUser(username, password, identity.RoleAdmin)
	if err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	if err := users.Save(ctx, admin); err != nil {
		return fmt.Errorf("save admin user: %w", err)
	}
	log.Info("Admin account created", zap.String("username", username))
	return nil
}
