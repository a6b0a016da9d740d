package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/volunteer-hub/cmd/cli/commands"
	"github.com/jakechorley/volunteer-hub/internal/config"
	"github.com/jakechorley/volunteer-hub/pkg/clients/gmailclient"
	"github.com/jakechorley/volunteer-hub/pkg/notify"
	"github.com/jakechorley/volunteer-hub/pkg/postgres"
	"github.com/jakechorley/volunteer-hub/pkg/utils/logging"
)

var (
	env     string
	verbose bool
	app     *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "volhub",
		Short: "Volunteer Hub CLI - Match volunteers with community events",
		Long:  `A CLI tool for managing volunteer profiles, events, applications, and volunteer history.`,
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
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose console logging")
	rootCmd.MarkPersistentFlagRequired("env")

	// Commands are constructed lazily against the shared app context, which
	// initApp populates before any RunE fires
	app = &commands.AppContext{Ctx: context.Background()}

	rootCmd.AddCommand(commands.AddProfileCmd(app))
	rootCmd.AddCommand(commands.CreateEventCmd(app))
	rootCmd.AddCommand(commands.CreateEventSeriesCmd(app))
	rootCmd.AddCommand(commands.UpdateEventCmd(app))
	rootCmd.AddCommand(commands.PublishEventCmd(app))
	rootCmd.AddCommand(commands.CancelEventCmd(app))
	rootCmd.AddCommand(commands.CompleteEventCmd(app))
	rootCmd.AddCommand(commands.DeleteEventCmd(app))
	rootCmd.AddCommand(commands.ApplyCmd(app))
	rootCmd.AddCommand(commands.DecideCmd(app))
	rootCmd.AddCommand(commands.WithdrawCmd(app))
	rootCmd.AddCommand(commands.OpportunitiesCmd(app))
	rootCmd.AddCommand(commands.ListApplicantsCmd(app))
	rootCmd.AddCommand(commands.HistoryCmd(app))
	rootCmd.AddCommand(commands.AddFeedbackCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, database, and notification sinks
func initApp() error {
	var err error

	app.Logger, err = logging.InitLogger(env, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.Logger.Info("Connecting to database")
	database, err := postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	app.Logger.Info("Running migrations")
	if err := database.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Store = database
	app.Logger.Info("Database initialized successfully")

	// In-app notifications always go to the store. Email delivery is added
	// when a sender address is configured.
	storeSink := notify.NewStoreSink(database)
	if app.Cfg.GmailSender == "" {
		app.Sink = storeSink
		return nil
	}

	app.Logger.Info("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClientWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	app.Logger.Info("Initializing gmail client")
	gmailClient, err := gmailclient.NewClient(app.Ctx, oauthCfg, env)
	if err != nil {
		return fmt.Errorf("failed to create gmail client: %w", err)
	}
	app.Logger.Debug("Gmail client initialized successfully")

	emailSink := notify.NewEmailSink(gmailClient, database, app.Logger)
	app.Sink = notify.NewFanoutSink(app.Logger, storeSink, emailSink)

	return nil
}
