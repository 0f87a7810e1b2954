package cli

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"indgo_crew/internal/database"
	"indgo_crew/internal/fleetfile"
	"indgo_crew/internal/models"
)

func importCmd(a *app) *cobra.Command {
	var batchSize int

	c := &cobra.Command{
		Use:   "import CSV...",
		Short: "Upsert aircraft types from CSV files into the catalog mirror",
		Long: "Upsert aircraft types from CSV files (header code,name,min_rank,operator)\n" +
			"into the catalog mirror. The import is rolled back if any min_rank is not on the ladder.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := fleetfile.Resolve(a.cfg.FleetFile)
			if err != nil {
				return err
			}

			db, err := database.New(a.cfg.DBPath)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer db.Close()

			repo := db.AircraftRepository()
			if _, err := database.SeedCatalog(repo, def); err != nil {
				return err
			}

			previous, err := repo.All()
			if err != nil {
				return err
			}

			if err := repo.LoadFromMultipleCSV(args, batchSize); err != nil {
				return restoreCatalog(repo, previous, err)
			}

			mirrored, err := database.MirroredDefinition(repo, def)
			if err != nil {
				return restoreCatalog(repo, previous, err)
			}

			slog.Info("Imported aircraft types", "files", len(args), "catalog_size", mirrored.Catalog.Len())
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("Fleet catalog now has %d aircraft types", mirrored.Catalog.Len()))
			return nil
		},
	}

	c.Flags().IntVar(&batchSize, "batch-size", 100, "Rows per insert transaction")
	return c
}

// restoreCatalog puts the pre-import catalog back and returns cause
func restoreCatalog(repo database.AircraftRepository, previous []models.AircraftType, cause error) error {
	if err := repo.ReplaceAll(previous); err != nil {
		slog.Error("Failed to restore fleet catalog", "error", err)
	}
	return fmt.Errorf("import rejected: %w", cause)
}
