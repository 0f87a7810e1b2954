// Package cli is the indgo-crew command line: rank checks, fleet listings, catalog
// imports, route lookups and the sync daemon.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"indgo_crew/internal/config"
	"indgo_crew/internal/database"
	"indgo_crew/internal/fleet"
	"indgo_crew/internal/fleetfile"
)

// app carries what every subcommand needs once the root command has loaded config
type app struct {
	configPath string
	cfg        *config.Config
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "indgo-crew",
		Short:        "IndGo Air Virtual crew center tools",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (YAML)")

	cmd.AddCommand(
		serveCmd(a),
		canFlyCmd(a),
		fleetCmd(a),
		deduceCmd(a),
		importCmd(a),
		routesCmd(a),
	)
	return cmd
}

func (a *app) setup() error {
	if a.configPath != "" {
		os.Setenv(config.ConfigPathEnv, a.configPath)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.cfg = cfg

	initLogger(cfg)
	return nil
}

// initLogger installs the default slog logger. Logs go to stderr; stdout carries command output.
func initLogger(cfg *config.Config) {
	var logLevel slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Log.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// definition resolves the configured fleet and overlays the catalog mirror when the
// database already exists. Read-only commands never create the database.
func (a *app) definition() (fleet.Definition, error) {
	def, err := fleetfile.Resolve(a.cfg.FleetFile)
	if err != nil {
		return fleet.Definition{}, err
	}

	exists, err := a.databaseExists()
	if err != nil {
		return fleet.Definition{}, err
	}
	if !exists {
		return def, nil
	}

	db, err := database.New(a.cfg.DBPath)
	if err != nil {
		return fleet.Definition{}, fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	return database.MirroredDefinition(db.AircraftRepository(), def)
}

func (a *app) databaseExists() (bool, error) {
	if _, err := os.Stat(a.cfg.DBPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
