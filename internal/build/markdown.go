package build

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var mdParser = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		gmhtml.WithHardWraps(),
	),
)

// renderContent converts a markdown page body to HTML and returns its
// frontmatter. A file without frontmatter is treated as pure markdown.
func renderContent(path string) (template.HTML, map[string]interface{}, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read content %s: %w", path, err)
	}

	var meta map[string]interface{}
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		body = raw
		meta = map[string]interface{}{}
	}

	var buf bytes.Buffer
	if err := mdParser.Convert(body, &buf); err != nil {
		return "", nil, fmt.Errorf("convert markdown %s: %w", path, err)
	}
	return template.HTML(buf.String()), meta, nil
}

var titleCaser = cases.Title(language.English)

// titleFromFolder derives a display title from an output folder name
// when neither the manifest nor the frontmatter supplies one.
func titleFromFolder(folder string) string {
	if folder == "" {
		return "Home"
	}
	name := filepath.Base(folder)
	name = strings.ReplaceAll(strings.ReplaceAll(name, "-", " "), "_", " ")
	return titleCaser.String(name)
}
