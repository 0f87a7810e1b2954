package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"indgo_crew/internal/fleet"
	"indgo_crew/internal/models"
)

func canFlyCmd(a *app) *cobra.Command {
	var rank string

	c := &cobra.Command{
		Use:   "can-fly AIRCRAFT",
		Short: "Check whether a pilot rank may fly an aircraft type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := a.definition()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), canFlyVerdict(def, rank, args[0]))
			return nil
		},
	}

	c.Flags().StringVarP(&rank, "rank", "r", "", "Pilot rank (required)")
	_ = c.MarkFlagRequired("rank")
	return c
}

// canFlyVerdict explains the gate decision; every denial names its reason
func canFlyVerdict(def fleet.Definition, rank, code string) string {
	if def.Gate.CanFly(rank, code) {
		return color.GreenString("%s: allowed for %s", code, rank)
	}

	ac, ok := def.Catalog.Find(code)
	switch {
	case !ok:
		return color.RedString("%s: not allowed, aircraft is not in the fleet catalog", code)
	case !def.Ladder.Contains(rank):
		return color.RedString("%s: not allowed, %q is not a known rank", code, rank)
	default:
		return color.RedString("%s: not allowed for %s, requires %s", code, rank, ac.MinRank)
	}
}

func fleetCmd(a *app) *cobra.Command {
	var rank string

	c := &cobra.Command{
		Use:   "fleet",
		Short: "List the fleet, or the aircraft a rank may fly",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, err := a.definition()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if rank == "" {
				return writeFleet(out, def.Catalog.All())
			}

			allowed := def.Gate.AllowedFleet(rank)
			if len(allowed) == 0 {
				fmt.Fprintln(out, color.YellowString("No aircraft available for rank %q", rank))
				return nil
			}
			return writeFleet(out, allowed)
		},
	}

	c.Flags().StringVarP(&rank, "rank", "r", "", "Only list aircraft this rank may fly")
	return c
}

func writeFleet(out io.Writer, aircraft []models.AircraftType) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tMIN RANK\tOPERATOR")
	for _, ac := range aircraft {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", ac.Code, ac.Name, ac.MinRank, ac.Operator)
	}
	return w.Flush()
}

func deduceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "deduce TEXT...",
		Short: "Guess the rank required for free-text aircraft descriptions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := a.definition()
			if err != nil {
				return err
			}
			for _, text := range args {
				fmt.Fprintln(cmd.OutOrStdout(), deduceLine(def.Deducer, text))
			}
			return nil
		},
	}
}

func deduceLine(d fleet.Deducer, text string) string {
	rank := d.DeduceRank(text)
	if rank == fleet.UnknownRank {
		return fmt.Sprintf("%s\t%s", text, color.YellowString(rank))
	}
	return fmt.Sprintf("%s\t%s", text, rank)
}
