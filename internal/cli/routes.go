package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"indgo_crew/internal/crew"
	"indgo_crew/internal/database"
	"indgo_crew/internal/fleet"
	"indgo_crew/internal/models"
	"indgo_crew/internal/routesheet"
)

func routesCmd(a *app) *cobra.Command {
	var live bool
	var rank string

	c := &cobra.Command{
		Use:   "routes ICAO",
		Short: "List routes touching an airport with the rank each aircraft requires",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := a.definition()
			if err != nil {
				return err
			}

			icao := strings.ToUpper(strings.TrimSpace(args[0]))

			var routes []models.Route
			if live {
				if a.cfg.RouteSheet.URL == "" {
					return fmt.Errorf("route_sheet.url is not configured")
				}
				client := routesheet.NewClient(a.cfg.RouteSheet.URL, a.cfg.RouteSheet.TimeoutDuration(), a.cfg.RouteSheet.MaxRetries)
				all, err := client.Fetch(cmd.Context())
				if err != nil {
					return err
				}
				routes = routesheet.ForAirport(all, icao)
			} else {
				routes, err = a.storedRoutes(icao)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if len(routes) == 0 {
				fmt.Fprintln(out, color.YellowString("No routes found for %s", icao))
				return nil
			}
			return writeRoutes(out, def, routes, rank)
		},
	}

	c.Flags().BoolVar(&live, "live", false, "Fetch the route sheet instead of reading the local mirror")
	c.Flags().StringVarP(&rank, "rank", "r", "", "Mark routes this rank may fly")
	return c
}

// storedRoutes reads the route mirror; a missing database simply has no routes
func (a *app) storedRoutes(icao string) ([]models.Route, error) {
	exists, err := a.databaseExists()
	if err != nil || !exists {
		return nil, err
	}

	db, err := database.New(a.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	return db.RouteRepository().ForAirport(icao)
}

func writeRoutes(out io.Writer, def fleet.Definition, routes []models.Route, rank string) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	header := "CALLSIGN\tFROM\tTO\tAIRCRAFT\tDISTANCE\tTIME\tREQUIRED RANK"
	if rank != "" {
		header += "\tFLYABLE"
	}
	fmt.Fprintln(w, header)

	for _, r := range routes {
		required, flyable := routeGate(def, r, rank)
		line := fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s\t%s",
			r.Callsign, r.Origin, r.Destination, r.Aircraft, r.Distance, r.FlightTime, required)
		if rank != "" {
			line += "\t" + flyable
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

// routeGate returns the rank shown for a route and the flyable mark for rank.
// Only a catalog code gets a yes/no from the gate; free-text aircraft get the deduced
// badge and "?", since a deduced rank never decides access.
func routeGate(def fleet.Definition, r models.Route, rank string) (required, flyable string) {
	if ac, ok := def.Catalog.Find(strings.TrimSpace(r.Aircraft)); ok {
		if def.Gate.CanFly(rank, ac.Code) {
			return ac.MinRank, color.GreenString("yes")
		}
		return ac.MinRank, color.RedString("no")
	}
	return crew.LegRequiredRank(models.RosterLeg{Aircraft: r.Aircraft}, def.Deducer), color.YellowString("?")
}
