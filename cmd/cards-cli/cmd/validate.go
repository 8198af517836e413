package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a catalog file for errors",
	Long: `Load and validate catalog.yaml the same way the server does at startup.

Examples:
  cards-cli validate                  # The embedded catalog
  cards-cli validate --dir ./catalog  # catalog.yaml in ./catalog`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}

		samples := 0
		for _, e := range c.Entries {
			samples += e.SampleCount()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "catalog OK: %d components, %d samples\n", len(c.Entries), samples)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
