package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DavitTec/node.it/internal/config"
)

var (
	cfgFile   string
	verbose   bool
	appConfig config.Config
	logger    *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "node.it",
	Short: "Personal site toolkit: build the static site, generate icons, serve locally",
	Long: `node.it renders the site's page templates into a static HTML tree
suitable for clean-URL hosting (every page lands in <folder>/index.html),
copies the shared assets, and rasterizes the site icon. The serve command
runs a local server with rebuild-on-change for development.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func initializeConfig(_ *cobra.Command) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	v := viper.New()

	v.SetDefault("siteTitle", "node.it")
	v.SetDefault("basePath", "")
	v.SetDefault("outputDir", "dist")
	v.SetDefault("templatesDir", "templates")
	v.SetDefault("staticDir", "static")
	v.SetDefault("contentDir", "content")
	v.SetDefault("port", 3000)
	v.SetDefault("user.name", "Joe Bloggs")
	v.SetDefault("user.firstname", "Joe")
	v.SetDefault("user.id", "239482")
	v.SetDefault("user.hobbies", []string{"reading", "gaming", "hiking"})

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SITE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				return fmt.Errorf("config file %s not found: %w", cfgFile, err)
			}
			logger.Debug("no config file found, using defaults and environment")
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		logger.Debug("using config file", "path", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return nil
}
