package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/careops/wardops/cmd/cli/commands"
	"github.com/careops/wardops/internal/config"
	"github.com/careops/wardops/pkg/postgres"
	"github.com/careops/wardops/pkg/utils/logging"
)

var (
	env     string
	verbose bool
	app     *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wardops",
		Short: "WardOps CLI - Hospital resource allocation",
		Long:  `A CLI tool for allocating hospital beds to waiting patients and generating staff shift schedules under department constraints.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging on the console")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.AllocateBedsCmd(appRef()))
	rootCmd.AddCommand(commands.GenerateScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.AdmitPatientCmd(appRef()))
	rootCmd.AddCommand(commands.AddBedCmd(appRef()))
	rootCmd.AddCommand(commands.AddStaffCmd(appRef()))
	rootCmd.AddCommand(commands.AddEquipmentCmd(appRef()))
	rootCmd.AddCommand(commands.ListBedsCmd(appRef()))
	rootCmd.AddCommand(commands.ListStaffCmd(appRef()))
	rootCmd.AddCommand(commands.ListEquipmentCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext. Commands capture the pointer before
// initApp fills it in, so the struct is allocated once up front.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, and database
func initApp() error {
	a := appRef()
	a.Ctx = context.Background()

	logger, err := logging.New(env, verbose)
	if err != nil {
		return err
	}
	a.Logger = logger

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", zap.Error(err))
		return err
	}
	a.Cfg = cfg

	database, err := postgres.NewDB(a.Ctx, cfg.DatabaseURL, int32(cfg.DatabaseMaxConns))
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return err
	}
	if err := database.Migrate(a.Ctx); err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}
	a.Database = database

	return nil
}
