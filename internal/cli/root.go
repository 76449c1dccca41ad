// Package cli wires the taskhub command tree. Each invocation opens the
// store, runs one operation to completion and exits; failures are printed
// and terminate the command.
package cli

import (
	"fmt"

	"github.com/sawamura/taskhub/internal/config"
	"github.com/sawamura/taskhub/internal/database"
	"github.com/sawamura/taskhub/internal/models"
	"github.com/sawamura/taskhub/internal/repository"
	"github.com/sawamura/taskhub/internal/services"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:           "taskhub",
	Short:         "Team task tracker with workspaces and role-based membership",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

// app bundles the per-invocation dependencies. Everything takes the
// storage handle explicitly; there is no process-wide connection.
type app struct {
	cfg        *config.Config
	db         *gorm.DB
	users      *services.UserService
	namespaces *services.NamespaceService
	reports    *services.ReportService
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	if err := database.Seed(db, cfg.User); err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	nsRepo := repository.NewNamespaceRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	return &app{
		cfg:        cfg,
		db:         db,
		users:      services.NewUserService(userRepo, taskRepo),
		namespaces: services.NewNamespaceService(nsRepo, userRepo, taskRepo),
		reports:    services.NewReportService(userRepo, taskRepo),
	}, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		sqlDB.Close()
	}
}

// currentUser resolves the configured user name against the directory.
func (a *app) currentUser() (*models.User, error) {
	user, err := a.users.GetByName(a.cfg.User)
	if err != nil {
		return nil, fmt.Errorf("current user %q is not registered: %w", a.cfg.User, err)
	}
	return user, nil
}
