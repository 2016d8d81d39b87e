package main

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun/migrate"

	reconcilerapp "github.com/chainsafe/bridge-reconciler/pkg/app/reconciler"
	"github.com/chainsafe/bridge-reconciler/pkg/config"
	"github.com/chainsafe/bridge-reconciler/pkg/migrations/reconcilerdb"
	"github.com/chainsafe/bridge-reconciler/pkg/pgutil"
	mghelper "github.com/chainsafe/bridge-reconciler/pkg/pgutil/migrations"
)

// runFailure is printed by the one-shot reconcile command when the run fails.
type runFailure struct {
	Error string `json:"error"`
}

type rootOptions struct {
	configPath string
}

func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "bridge-reconciler",
		Short:         "Advances in-flight bridge transfers through their lifecycle",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "path to configuration file")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newReconcileCommand(opts))
	cmd.AddCommand(newMigrateCommand(opts))

	return cmd
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the periodic reconciler and the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return reconcilerapp.NewServer(cfg).Run()
		},
	}
}

func newReconcileCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Run one reconciliation pass and print the result as JSON",
		Long: `Run one reconciliation pass and exit.

Intended for external schedulers such as a Kubernetes CronJob. The run result
is written to stdout as JSON; the exit code is non-zero when the run fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			logger, err := config.NewLogger(cfg.Logging)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			res, err := reconcilerapp.NewServer(cfg).RunOnce(ctx, logger)
			if err != nil {
				_ = enc.Encode(runFailure{Error: err.Error()})
				return err
			}
			return enc.Encode(res)
		},
	}
}

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <init|up|down|status>",
		Short:     "Manage the reconciler database schema",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{mghelper.CommandInit, mghelper.CommandUp, mghelper.CommandDown, mghelper.CommandStatus},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cfg.Database.Driver != config.DriverPostgres {
				return fmt.Errorf("migrations require the %s driver, got %q", config.DriverPostgres, cfg.Database.Driver)
			}
			logger, err := config.NewLogger(cfg.Logging)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			ctx := cmd.Context()

			db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			migrator := migrate.NewMigrator(db, reconcilerdb.Migrations)
			return mghelper.RunMigrations(ctx, migrator, logger, args[0])
		},
	}
}
