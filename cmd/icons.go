package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/DavitTec/node.it/internal/icons"
)

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Rasterizes the site icon SVG into the sized PNG set",
	Long: `The icons command reads the site icon SVG from the static
directory and writes favicon-32.png, apple-touch-icon.png and
icon-192.png into <staticDir>/icons, where the next build picks them up
as ordinary assets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		job := icons.DefaultJob(appConfig.StaticDir)
		outDir := filepath.Join(appConfig.StaticDir, "icons")
		if err := icons.Generate(job, outDir); err != nil {
			return err
		}
		logger.Info("icons generated", "count", len(job.Targets), "output", outDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(iconsCmd)
}
