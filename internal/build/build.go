package build

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DavitTec/node.it/internal/assets"
	"github.com/DavitTec/node.it/internal/config"
	"github.com/DavitTec/node.it/internal/model"
	"github.com/DavitTec/node.it/internal/render"
)

// Builder renders the page manifest into a static tree and mirrors the
// shared assets into <outputDir>/public.
type Builder struct {
	cfg      config.Config
	renderer *render.Renderer
	logger   *slog.Logger
}

// New parses the templates directory and returns a Builder ready to run.
func New(cfg config.Config, logger *slog.Logger) (*Builder, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r, err := render.New(cfg.TemplatesDir)
	if err != nil {
		return nil, err
	}
	return &Builder{cfg: cfg, renderer: r, logger: logger}, nil
}

// Run builds every page in manifest order, then copies the static
// assets. The first page failure aborts the loop before that page's
// output is written. An asset-copy failure is reported but the pages
// already written stay on disk; static output is not transactional.
func (b *Builder) Run(manifest []model.Page) error {
	if err := validateManifest(manifest); err != nil {
		return err
	}
	if err := os.MkdirAll(b.cfg.OutputDir, os.ModePerm); err != nil {
		return fmt.Errorf("create output directory %s: %w", b.cfg.OutputDir, err)
	}

	for _, page := range manifest {
		if err := b.buildPage(page); err != nil {
			return err
		}
	}

	if _, err := os.Stat(b.cfg.StaticDir); os.IsNotExist(err) {
		b.logger.Warn("static directory not found, skipping asset copy", "dir", b.cfg.StaticDir)
		return nil
	}
	publicDir := filepath.Join(b.cfg.OutputDir, "public")
	if err := assets.CopyTree(b.cfg.StaticDir, publicDir); err != nil {
		return fmt.Errorf("copy static assets: %w", err)
	}
	b.logger.Info("static assets copied", "from", b.cfg.StaticDir, "to", publicDir)
	return nil
}

func (b *Builder) buildPage(page model.Page) error {
	data := model.ViewData{
		SiteTitle: b.cfg.SiteTitle,
		Title:     page.Title,
		BasePath:  b.cfg.BasePath,
		User:      &b.cfg.User,
		Params:    page.Params,
	}

	if page.Content != "" {
		html, meta, err := renderContent(filepath.Join(b.cfg.ContentDir, page.Content))
		if err != nil {
			return err
		}
		data.Content = html
		if t, ok := meta["title"].(string); ok && t != "" {
			data.Title = t
		}
	}
	if data.Title == "" {
		data.Title = titleFromFolder(page.Folder)
	}

	out, err := b.renderer.Render(page.Template, data)
	if err != nil {
		return err
	}

	targetDir := filepath.Join(b.cfg.OutputDir, page.Folder)
	if err := os.MkdirAll(targetDir, os.ModePerm); err != nil {
		return fmt.Errorf("create directory %s: %w", targetDir, err)
	}
	outputPath := filepath.Join(targetDir, "index.html")
	if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	b.logger.Info("page built", "template", page.Template, "output", outputPath)
	return nil
}
