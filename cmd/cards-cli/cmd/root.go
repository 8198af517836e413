package cmd

import (
	"os"

	"github.com/nfrund/cardshow/internal/catalog"
	"github.com/nfrund/cardshow/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var (
	catalogDir string
	localeFlag string
)

var rootCmd = &cobra.Command{
	Use:   "cards-cli",
	Short: "Card component showcase CLI",
	Long: `cards-cli works with the card component catalog outside the web server.

Available commands:
  list       List the showcased components
  render     Render a component's previews to HTML
  validate   Check a catalog file for errors
  new-card   Scaffold a new card component

Use "cards-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogDir, "dir", "", "directory holding catalog.yaml (default: the embedded catalog)")
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", config.DefaultLocale, "BCP 47 locale used to format numbers")
}

func catalogFs() afero.Fs {
	if catalogDir != "" {
		return catalog.DirFs(catalogDir)
	}
	return catalog.EmbeddedFs()
}

func loadCatalog() (*catalog.Catalog, error) {
	return catalog.NewLoader(catalogFs()).Load()
}

func locale() (language.Tag, error) {
	return language.Parse(localeFlag)
}
