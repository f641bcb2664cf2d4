package views

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// PageData carries everything the HTML shell needs.
type PageData struct {
	Title          string
	StylesheetHref string
}

// Render executes the named template into a buffer first, so a template
// failure never emits a half-written page.
func Render(w http.ResponseWriter, name string, data PageData) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := w.Write(buf.Bytes())
	return err
}
