package model

import "html/template"

// ViewData is the context every page template executes against.
type ViewData struct {
	SiteTitle string
	Title     string
	BasePath  string
	Content   template.HTML
	User      *User
	Params    map[string]interface{}
}
