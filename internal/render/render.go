package render

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
)

// TemplateError reports a failed template parse, lookup, or execution.
// Template names the failing page template so the build command can
// tell the user which page broke.
type TemplateError struct {
	Template string
	Err      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %q: %v", e.Template, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// Renderer holds the parsed partials and page templates for one
// templates directory.
type Renderer struct {
	templates *template.Template
}

// New parses the partials first, then the page templates, so every page
// can reference the shared head/header/footer fragments. Map lookups on
// missing keys fail the render rather than printing "<no value>"; a
// partial static site is worse than none.
func New(dir string) (*Renderer, error) {
	partials, err := filepath.Glob(filepath.Join(dir, "partials", "*.html"))
	if err != nil {
		return nil, &TemplateError{Template: "partials", Err: err}
	}
	pages, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, &TemplateError{Template: dir, Err: err}
	}
	if len(pages) == 0 {
		return nil, &TemplateError{Template: dir, Err: fmt.Errorf("no page templates found")}
	}

	root := template.New("").Option("missingkey=error")
	if len(partials) > 0 {
		if _, err := root.ParseFiles(partials...); err != nil {
			return nil, &TemplateError{Template: "partials", Err: err}
		}
	}
	if _, err := root.ParseFiles(pages...); err != nil {
		return nil, &TemplateError{Template: dir, Err: err}
	}

	return &Renderer{templates: root}, nil
}

// Has reports whether a template with the given name was parsed.
func (r *Renderer) Has(name string) bool {
	return r.templates.Lookup(name) != nil
}

// Render executes the named page template and returns the HTML. The
// output is buffered so a mid-execution failure never reaches disk.
func (r *Renderer) Render(name string, data interface{}) (string, error) {
	if r.templates.Lookup(name) == nil {
		return "", &TemplateError{Template: name, Err: fmt.Errorf("not found")}
	}
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", &TemplateError{Template: name, Err: err}
	}
	return buf.String(), nil
}
