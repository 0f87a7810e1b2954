package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"indgo_crew/internal/daemon"
)

func serveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the daemon that mirrors the fleet catalog and route sheet",
		Long: "Run the daemon that mirrors the fleet catalog and route sheet.\n" +
			"SIGHUP forces an immediate route sheet sync; SIGINT or SIGTERM stops it.",
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			def, err := a.definition()
			if err != nil {
				return err
			}

			d, err := daemon.New(daemon.Config{
				DBPath:        a.cfg.DBPath,
				Fleet:         def,
				RouteSheetURL: a.cfg.RouteSheet.URL,
				SyncInterval:  a.cfg.RouteSheet.IntervalDuration(),
				FetchTimeout:  a.cfg.RouteSheet.TimeoutDuration(),
				MaxRetries:    a.cfg.RouteSheet.MaxRetries,
			})
			if err != nil {
				return err
			}

			if err := d.Start(); err != nil {
				return err
			}

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
			defer signal.Stop(sigChan)

			for sig := range sigChan {
				if sig == syscall.SIGHUP {
					if !d.Resync() {
						slog.Warn("Route sync is not configured, ignoring SIGHUP")
					}
					continue
				}
				slog.Info("Received shutdown signal", "signal", sig)
				break
			}

			return d.Stop()
		},
	}
}
