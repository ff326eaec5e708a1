package web

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Templates parses the embedded page templates. Each template is named after
// its file, e.g. "index.tmpl".
func Templates() (*template.Template, error) {
	t, err := template.ParseFS(templates, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}
