package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/apportion/census"
	"github.com/katalvlaran/apportion/config"
	"github.com/katalvlaran/apportion/hhill"
	"github.com/katalvlaran/apportion/report"
)

var seatsCmd = &cobra.Command{
	Use:   "seats",
	Short: "Apportion House seats among the states",
	Long: `Runs a Huntington-Hill apportionment over the embedded 2020 census table
and prints each state's delegation alongside its persons-per-seat figure,
followed by a district-size summary.

Flags override values from an optional --config YAML file. A --total of 0
defers to the engine default of 435 seats.`,
	RunE: runSeats,
}

// seatsOutput is the JSON shape of one apportionment run.
type seatsOutput struct {
	Seats   map[string]int `json:"seats"`
	Summary report.Summary `json:"summary"`
}

func runSeats(cmd *cobra.Command, _ []string) error {
	// Start from the config file (if any), then let explicit flags win.
	var run config.Run
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if run, err = config.Load(path); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("total") {
		run.TotalSeats, _ = cmd.Flags().GetInt("total")
	}
	if cmd.Flags().Changed("min-seats") {
		floor, _ := cmd.Flags().GetInt("min-seats")
		run.MinSeats = &floor
	}
	if cmd.Flags().Changed("include-dc") {
		run.IncludeDC, _ = cmd.Flags().GetBool("include-dc")
	}
	if cmd.Flags().Changed("include-pr") {
		run.IncludePR, _ = cmd.Flags().GetBool("include-pr")
	}

	// Flag values bypass config.Parse, so re-check the seat numbers here
	// before they reach an option constructor.
	if run.TotalSeats < 0 {
		return fmt.Errorf("%w: --total must be non-negative, got %d", config.ErrInvalidConfig, run.TotalSeats)
	}
	if run.MinSeats != nil && *run.MinSeats < 0 {
		return fmt.Errorf("%w: --min-seats must be non-negative, got %d", config.ErrInvalidConfig, *run.MinSeats)
	}

	entities := census.Entities(run.CensusOptions()...)
	seats, err := hhill.Apportion(entities, run.EngineOptions()...)
	if err != nil {
		return err
	}

	summary, err := report.Summarize(entities, seats)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(seatsOutput{Seats: seats, Summary: summary})
	}

	return printSeatsTable(entities, seats, summary)
}

// printSeatsTable renders the allocation sorted by entity ID, then the
// district summary.
func printSeatsTable(entities []hhill.Entity, seats map[string]int, summary report.Summary) error {
	sorted := make([]hhill.Entity, len(entities))
	copy(sorted, entities)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATE\tPOPULATION\tSEATS\tPERSONS/SEAT")
	for _, ent := range sorted {
		n := seats[ent.ID]
		perSeat := "-"
		if n > 0 {
			perSeat = fmt.Sprintf("%.0f", float64(ent.Population)/float64(n))
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", ent.ID, ent.Population, n, perSeat)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d seats across %d states\n", summary.TotalSeats, summary.Entities)
	fmt.Printf("mean district %.0f, median %.0f, stddev %.0f\n",
		summary.MeanDistrict, summary.MedianDistrict, summary.StdDevDistrict)
	fmt.Printf("worst disparity %.2f%% (%s vs %s)\n",
		summary.MaxDisparity*100, summary.MaxDisparityPair[0], summary.MaxDisparityPair[1])

	return nil
}

func init() {
	seatsCmd.Flags().Int("total", 0, "target seat total (0 = default 435)")
	seatsCmd.Flags().Int("min-seats", 1, "uniform per-state seat floor")
	seatsCmd.Flags().Bool("include-dc", false, "include the District of Columbia")
	seatsCmd.Flags().Bool("include-pr", false, "include Puerto Rico")
	seatsCmd.Flags().String("config", "", "path to a YAML run configuration")

	rootCmd.AddCommand(seatsCmd)
}
