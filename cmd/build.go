package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/DavitTec/node.it/internal/build"
	"github.com/DavitTec/node.it/internal/config"
	"github.com/DavitTec/node.it/internal/model"
)

// manifestFile, when present in the working directory, replaces the
// built-in page set.
const manifestFile = "pages.yaml"

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Renders every page into the output directory and copies static assets",
	Long: `The build command renders each page of the site manifest into
<outputDir>/<folder>/index.html, then copies the shared static assets
into <outputDir>/public. Every internal link is prefixed with the
configured base path so the output works under a sub-path deployment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(appConfig)
	},
}

func runBuild(cfg config.Config) error {
	manifest, err := siteManifest(cfg)
	if err != nil {
		return err
	}
	b, err := build.New(cfg, logger)
	if err != nil {
		return err
	}
	if err := b.Run(manifest); err != nil {
		return err
	}
	logger.Info("build completed", "pages", len(manifest), "output", cfg.OutputDir)
	return nil
}

func siteManifest(cfg config.Config) ([]model.Page, error) {
	if _, err := os.Stat(manifestFile); err == nil {
		logger.Info("using page manifest override", "path", manifestFile)
		return build.LoadManifest(manifestFile)
	}
	return build.DefaultManifest(cfg), nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
