package cmd

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var serverPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the built site locally and rebuilds on changes",
	Long: `The serve command performs an initial build, then starts a local
web server over the output directory. It watches the templates, static
and content directories and rebuilds the site when any of them change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runBuild(appConfig); err != nil {
			return fmt.Errorf("initial build failed: %w", err)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create file watcher: %w", err)
		}
		defer watcher.Close()

		go watchAndRebuild(watcher)

		pathsToWatch := []string{
			appConfig.TemplatesDir,
			appConfig.StaticDir,
			appConfig.ContentDir,
		}
		for _, rootPath := range pathsToWatch {
			if _, statErr := os.Stat(rootPath); os.IsNotExist(statErr) {
				logger.Debug("directory not found, not watching", "dir", rootPath)
				continue
			}
			err := filepath.WalkDir(rootPath, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					logger.Warn("walk error while setting up watches", "path", path, "error", err)
					return nil
				}
				if d.IsDir() {
					if watchErr := watcher.Add(path); watchErr != nil {
						logger.Warn("failed to watch directory", "dir", path, "error", watchErr)
					}
				}
				return nil
			})
			if err != nil {
				logger.Warn("failed to set up watches", "dir", rootPath, "error", err)
			}
		}

		port := serverPort
		if port == 0 {
			port = appConfig.Port
		}
		addr := fmt.Sprintf(":%d", port)
		logger.Info("serving site", "dir", appConfig.OutputDir, "url", fmt.Sprintf("http://localhost%s", addr))

		fs := http.FileServer(http.Dir(appConfig.OutputDir))
		http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			// Clean URLs only: a directory request must have an index.html.
			if strings.HasSuffix(r.URL.Path, "/") && r.URL.Path != "/" {
				if _, err := os.Stat(filepath.Join(appConfig.OutputDir, r.URL.Path, "index.html")); os.IsNotExist(err) {
					http.NotFound(w, r)
					return
				}
			}
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
			fs.ServeHTTP(w, r)
		})

		return http.ListenAndServe(addr, nil)
	},
}

// watchAndRebuild debounces file events and re-runs the build. New
// directories are added to the watch set as they appear.
func watchAndRebuild(watcher *fsnotify.Watcher) {
	var buildTimer *time.Timer
	const debounce = 500 * time.Millisecond

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("change detected", "path", event.Name, "op", event.Op.String())

			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					logger.Warn("failed to watch new directory", "dir", event.Name, "error", err)
				}
			}

			if buildTimer != nil {
				buildTimer.Stop()
			}
			buildTimer = time.AfterFunc(debounce, func() {
				logger.Info("rebuilding site")
				if err := runBuild(appConfig); err != nil {
					logger.Error("rebuild failed", "error", err)
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher error", "error", err)
		}
	}
}

func isDir(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 0, "port to serve on (default from config)")
	rootCmd.AddCommand(serveCmd)
}
