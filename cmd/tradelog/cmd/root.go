package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradelog/config"
	"github.com/rustyeddy/tradelog/internal/logger"
	"github.com/rustyeddy/tradelog/journal"
)

// app carries state shared by every subcommand once the root pre-run
// has loaded configuration.
type app struct {
	configPath string
	dbPath     string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log *zap.Logger
}

func (a *app) openJournal() (*journal.SQLite, error) {
	j, err := journal.NewSQLite(a.cfg.Journal.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return j, nil
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "tradelog",
		Short: "Position sizing calculator and trade journal",
		Long: `Tradelog sizes positions from account risk and keeps a journal of trade setups.

It provides tools for:
  - Risk-based position sizing across forex, commodities, stocks, indices and crypto
  - Trade direction detection from target and stop placement
  - A SQLite trade journal with CSV and Org-mode export
  - An HTTP JSON API for the calculator and the journal`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config file (YAML or JSON)")
	cmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "SQLite journal database (overrides config)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: console|json")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		if a.dbPath != "" {
			cfg.Journal.DBPath = a.dbPath
		}
		if a.logLevel != "" {
			cfg.Log.Level = a.logLevel
		}
		if a.logFormat != "" {
			cfg.Log.Format = a.logFormat
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		a.cfg = cfg

		log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		a.log = log
		return nil
	}

	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if a.log != nil {
			_ = a.log.Sync()
		}
	}

	cmd.AddCommand(
		newCalcCmd(a),
		newDirectionCmd(a),
		newInstrumentsCmd(),
		newJournalCmd(a),
		newServeCmd(a),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
