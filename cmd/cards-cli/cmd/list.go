package cmd

import (
	"fmt"

	"github.com/nfrund/cardshow/cmd/cards-cli/internal/listing"
	"github.com/spf13/cobra"
)

var (
	listOutputFormat string
	listKindFilter   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the showcased components",
	Long: `List the components of the catalog in catalog order.

Examples:
  cards-cli list                       # Table of all components
  cards-cli list --format json         # Machine-readable output
  cards-cli list --kind pricing        # Only pricing components
  cards-cli list --dir ./catalog       # Use catalog.yaml from a directory

Output formats:
  table - Human-readable table format (default)
  json  - Machine-readable JSON array`,
	RunE: listHandler,
}

func listHandler(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	rows := listing.Rows(c)
	if listKindFilter != "" {
		filtered := rows[:0]
		for _, r := range rows {
			if r.Kind == listKindFilter {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	out := cmd.OutOrStdout()
	switch listOutputFormat {
	case "json":
		return listing.WriteJSON(out, rows)
	case "table":
		if len(rows) == 0 {
			fmt.Fprintln(out, "No components found.")
			return nil
		}
		return listing.WriteTable(out, rows)
	default:
		return fmt.Errorf("invalid format %q, valid formats: table, json", listOutputFormat)
	}
}

func init() {
	listCmd.Flags().StringVarP(&listOutputFormat, "format", "f", "table", "Output format (table, json)")
	listCmd.Flags().StringVarP(&listKindFilter, "kind", "k", "", "Only list components of this kind")
	rootCmd.AddCommand(listCmd)
}
