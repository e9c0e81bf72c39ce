package icons

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Target is one raster output: a square pixel size and its file name.
type Target struct {
	Size int    `yaml:"size"`
	Name string `yaml:"name"`
}

// Job rasterizes one SVG source into every target, in order.
type Job struct {
	Source  string
	Targets []Target
}

// TargetError reports which icon target failed so the command can name
// it in the fatal error message.
type TargetError struct {
	Size int
	Name string
	Err  error
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("icon %s (%dx%d): %v", e.Name, e.Size, e.Size, e.Err)
}

func (e *TargetError) Unwrap() error { return e.Err }

// DefaultJob covers the favicon plus the touch and PWA icons. Plain
// sized PNGs only; browsers accept them everywhere the legacy ICO
// container was used.
func DefaultJob(staticDir string) Job {
	return Job{
		Source: filepath.Join(staticDir, "icon.svg"),
		Targets: []Target{
			{Size: 32, Name: "favicon-32.png"},
			{Size: 180, Name: "apple-touch-icon.png"},
			{Size: 192, Name: "icon-192.png"},
		},
	}
}

// Generate parses the source SVG once and rasterizes it at every target
// size. The first failing target aborts the remaining ones.
func Generate(job Job, outDir string) error {
	icon, err := oksvg.ReadIcon(job.Source, oksvg.WarnErrorMode)
	if err != nil {
		return fmt.Errorf("parse %s: %w", job.Source, err)
	}
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return fmt.Errorf("create icon directory %s: %w", outDir, err)
	}

	for _, t := range job.Targets {
		if err := rasterize(icon, t, outDir); err != nil {
			return err
		}
		slog.Info("icon generated", "name", t.Name, "size", t.Size)
	}
	return nil
}

func rasterize(icon *oksvg.SvgIcon, t Target, outDir string) error {
	if t.Size <= 0 {
		return &TargetError{Size: t.Size, Name: t.Name, Err: fmt.Errorf("size must be positive")}
	}
	icon.SetTarget(0, 0, float64(t.Size), float64(t.Size))
	img := image.NewRGBA(image.Rect(0, 0, t.Size, t.Size))
	scanner := rasterx.NewScannerGV(t.Size, t.Size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(t.Size, t.Size, scanner), 1)

	path := filepath.Join(outDir, t.Name)
	f, err := os.Create(path)
	if err != nil {
		return &TargetError{Size: t.Size, Name: t.Name, Err: err}
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return &TargetError{Size: t.Size, Name: t.Name, Err: err}
	}
	return nil
}
