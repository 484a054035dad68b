// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "windseal-cms",
	Short: "Windseal-CMS serves the Windseal company site and back office",
	Long: `Windseal-CMS serves the Windseal marketing site together with a
password-gated back office for editing categories, products, catalogs,
testimonials, the image gallery and global site settings.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
