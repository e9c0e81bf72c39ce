package build

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/DavitTec/node.it/internal/config"
	"github.com/DavitTec/node.it/internal/model"
)

// DefaultManifest is the built-in page set. Its order is the build
// order, which makes the progress log deterministic.
func DefaultManifest(cfg config.Config) []model.Page {
	return []model.Page{
		{Folder: "", Template: "home.html", Title: "Home"},
		{Folder: "about", Template: "about.html", Title: "About", Content: "about.md"},
		{Folder: "contact", Template: "contact.html", Title: "Contact", Params: map[string]interface{}{
			"email": "joe@example.com",
		}},
		{Folder: "profile", Template: "profile.html", Title: "Profile"},
	}
}

// LoadManifest reads a page manifest from a YAML file. A site that
// outgrows the built-in page set drops a pages.yaml next to its config.
func LoadManifest(path string) ([]model.Page, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var pages []model.Page
	if err := yaml.Unmarshal(raw, &pages); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if err := validateManifest(pages); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return pages, nil
}

func validateManifest(pages []model.Page) error {
	if len(pages) == 0 {
		return fmt.Errorf("no pages defined")
	}
	seen := make(map[string]bool, len(pages))
	for _, p := range pages {
		if p.Template == "" {
			return fmt.Errorf("page %q has no template", p.Folder)
		}
		if seen[p.Folder] {
			return fmt.Errorf("duplicate output folder %q", p.Folder)
		}
		seen[p.Folder] = true
	}
	return nil
}
