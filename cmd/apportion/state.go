package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/apportion/census"
)

var stateCmd = &cobra.Command{
	Use:   "state <query>...",
	Short: "Resolve a state by FIPS code, abbreviation, or name",
	Long: `Looks up a state or territory in the embedded 2020 directory. The query
may be a FIPS code ("6", "06"), a USPS abbreviation ("ca"), or a full
name; multi-word names may be passed unquoted ("state new york").`,
	Args: cobra.MinimumNArgs(1),
	RunE: runState,
}

func runState(_ *cobra.Command, args []string) error {
	st, err := census.Lookup(strings.Join(args, " "))
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(st)
	}

	fmt.Printf("FIPS %s %s (%s), population %d\n", st.FIPS, st.Name, st.Abbr, st.Population)

	return nil
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
