package config

import "github.com/DavitTec/node.it/internal/model"

// Config is the explicit configuration record passed into the build.
// Defaults live in one place (cmd.initializeConfig); nothing else reads
// the environment.
type Config struct {
	SiteTitle    string     `mapstructure:"siteTitle"`
	BasePath     string     `mapstructure:"basePath"`
	OutputDir    string     `mapstructure:"outputDir"`
	TemplatesDir string     `mapstructure:"templatesDir"`
	StaticDir    string     `mapstructure:"staticDir"`
	ContentDir   string     `mapstructure:"contentDir"`
	Port         int        `mapstructure:"port"`
	User         model.User `mapstructure:"user"`
}
