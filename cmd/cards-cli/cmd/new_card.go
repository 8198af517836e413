package cmd

import (
	"fmt"

	"github.com/nfrund/cardshow/cmd/cards-cli/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var newCardDir string

// cardFs is replaced in tests.
var cardFs = afero.NewOsFs()

var newCardCmd = &cobra.Command{
	Use:   "new-card <name>",
	Short: "Scaffold a new card component",
	Long: `Generate the skeleton of a new card component in internal/cards.

The name is lower-case words separated by dashes. A trailing "-card" is dropped.

Examples:
  cards-cli new-card review        # internal/cards/review.go, ReviewCard
  cards-cli new-card product-tour  # internal/cards/product_tour.go, ProductTourCard`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := scaffold.NewData(args[0])
		if err != nil {
			return err
		}
		path, err := scaffold.Write(cardFs, newCardDir, d)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created %s\n", path)
		fmt.Fprintf(out, "Next: add %sCard to the catalog kinds and write samples in catalog.yaml\n", d.Pascal)
		return nil
	},
}

func init() {
	newCardCmd.Flags().StringVar(&newCardDir, "out", scaffold.DefaultDir, "Directory to write the component to")
	rootCmd.AddCommand(newCardCmd)
}
