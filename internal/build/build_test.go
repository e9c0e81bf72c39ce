package build

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavitTec/node.it/internal/config"
	"github.com/DavitTec/node.it/internal/model"
	"github.com/DavitTec/node.it/internal/render"
)

// siteConfig points at the repository's real templates, static assets
// and content, with the output redirected into a temp dir.
func siteConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		SiteTitle:    "node.it",
		BasePath:     "",
		OutputDir:    filepath.Join(t.TempDir(), "dist"),
		TemplatesDir: filepath.Join("..", "..", "templates"),
		StaticDir:    filepath.Join("..", "..", "static"),
		ContentDir:   filepath.Join("..", "..", "content"),
		User: model.User{
			Name:      "Joe Bloggs",
			FirstName: "Joe",
			ID:        "239482",
			Hobbies:   []string{"reading", "gaming", "hiking"},
		},
	}
}

func runSiteBuild(t *testing.T, cfg config.Config) {
	t.Helper()
	b, err := New(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, b.Run(DefaultManifest(cfg)))
}

func readOutput(t *testing.T, cfg config.Config, parts ...string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(append([]string{cfg.OutputDir}, parts...)...))
	require.NoError(t, err)
	return string(raw)
}

func TestRunWritesIndexPerFolder(t *testing.T) {
	cfg := siteConfig(t)
	runSiteBuild(t, cfg)

	for _, page := range DefaultManifest(cfg) {
		path := filepath.Join(cfg.OutputDir, page.Folder, "index.html")
		info, err := os.Stat(path)
		require.NoError(t, err, "missing output for folder %q", page.Folder)
		assert.Greater(t, info.Size(), int64(0), "empty output for folder %q", page.Folder)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	cfg := siteConfig(t)
	runSiteBuild(t, cfg)
	first := snapshotTree(t, cfg.OutputDir)

	runSiteBuild(t, cfg)
	second := snapshotTree(t, cfg.OutputDir)

	assert.Equal(t, first, second, "re-running the build must produce byte-identical output")
}

func snapshotTree(t *testing.T, root string) map[string]string {
	t.Helper()
	tree := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		tree[rel] = string(raw)
		return nil
	})
	require.NoError(t, err)
	return tree
}

func TestProfilePage(t *testing.T) {
	cfg := siteConfig(t)
	runSiteBuild(t, cfg)

	html := readOutput(t, cfg, "profile", "index.html")
	assert.Contains(t, html, "Joe Bloggs's Profile")
	assert.Contains(t, html, "239482")

	for _, hobby := range cfg.User.Hobbies {
		assert.Equal(t, 1, strings.Count(html, hobby), "hobby %q must appear exactly once", hobby)
		assert.Contains(t, html, "<li>"+hobby+"</li>")
	}
}

var urlAttrRe = regexp.MustCompile(`(?:href|src)="([^"]+)"`)

func TestBasePathPrefixesEveryInternalURL(t *testing.T) {
	cfg := siteConfig(t)
	cfg.BasePath = "/node.it"
	runSiteBuild(t, cfg)

	for _, page := range DefaultManifest(cfg) {
		html := readOutput(t, cfg, page.Folder, "index.html")
		for _, m := range urlAttrRe.FindAllStringSubmatch(html, -1) {
			url := m[1]
			if strings.HasPrefix(url, "mailto:") {
				continue
			}
			assert.True(t, strings.HasPrefix(url, "/node.it"),
				"folder %q: URL %q is not prefixed with the base path", page.Folder, url)
		}
	}
}

func TestMarkdownContentRendered(t *testing.T) {
	cfg := siteConfig(t)
	runSiteBuild(t, cfg)

	html := readOutput(t, cfg, "about", "index.html")
	// Frontmatter title wins over the manifest title.
	assert.Contains(t, html, "<h1>About</h1>")
	assert.Contains(t, html, `<h2 id="why-static">Why static?</h2>`)
}

func TestAssetsMirroredIntoPublic(t *testing.T) {
	cfg := siteConfig(t)
	runSiteBuild(t, cfg)

	err := filepath.WalkDir(cfg.StaticDir, func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err)
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(cfg.StaticDir, path)
		require.NoError(t, err)

		want, err := os.ReadFile(path)
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(cfg.OutputDir, "public", rel))
		require.NoError(t, err, "asset %q not mirrored", rel)
		assert.Equal(t, want, got, "asset %q differs", rel)
		return nil
	})
	require.NoError(t, err)
}

func TestRenderFailureAbortsBeforeWrite(t *testing.T) {
	cfg := siteConfig(t)
	b, err := New(cfg, nil)
	require.NoError(t, err)

	manifest := []model.Page{
		// contact.html needs Params.email; leaving it out fails the render.
		{Folder: "contact", Template: "contact.html", Title: "Contact"},
		{Folder: "about", Template: "about.html", Title: "About", Content: "about.md"},
	}
	err = b.Run(manifest)
	require.Error(t, err)

	var terr *render.TemplateError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "contact.html", terr.Template)

	_, statErr := os.Stat(filepath.Join(cfg.OutputDir, "contact", "index.html"))
	assert.True(t, os.IsNotExist(statErr), "failing page must not be written")
	_, statErr = os.Stat(filepath.Join(cfg.OutputDir, "about", "index.html"))
	assert.True(t, os.IsNotExist(statErr), "pages after the failure must not be built")
}

func TestRunRejectsDuplicateFolders(t *testing.T) {
	cfg := siteConfig(t)
	b, err := New(cfg, nil)
	require.NoError(t, err)

	err = b.Run([]model.Page{
		{Folder: "about", Template: "about.html", Content: "about.md"},
		{Folder: "about", Template: "contact.html"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate output folder")
}
