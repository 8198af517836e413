package cmd

import (
	"fmt"

	"github.com/nfrund/cardshow/internal/rendering"
	"github.com/spf13/cobra"
	g "maragu.dev/gomponents"
)

var renderSample int

var renderCmd = &cobra.Command{
	Use:   "render <slug>",
	Short: "Render a component's previews to HTML",
	Long: `Render the sample previews of one component to standard output.

Action buttons are rendered inert since no server is attached.

Examples:
  cards-cli render statistics-card                 # All samples
  cards-cli render pricing-card --sample 1         # Only the second sample
  cards-cli render statistics-card --locale de-DE  # German number formatting`,
	Args: cobra.ExactArgs(1),
	RunE: renderHandler,
}

func renderHandler(cmd *cobra.Command, args []string) error {
	tag, err := locale()
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", localeFlag, err)
	}

	c, err := loadCatalog()
	if err != nil {
		return err
	}
	entry, err := c.Get(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	var node g.Node
	if renderSample < 0 {
		node = g.Group(entry.Previews(tag))
	} else {
		node, err = entry.Preview(renderSample, tag)
		if err != nil {
			return fmt.Errorf("%s sample %d: %w", args[0], renderSample, err)
		}
	}

	html, err := rendering.NewUniversalRenderer(nil).RenderComponent(cmd.Context(), node)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(html))
	return err
}

func init() {
	renderCmd.Flags().IntVarP(&renderSample, "sample", "s", -1, "Index of the sample to render (default: all)")
	rootCmd.AddCommand(renderCmd)
}
