package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer binds page descriptions to the embedded HTML templates.  It
// implements echo.Renderer.  Each page template is parsed into its own
// clone of the shared layout so every page can define its own
// "content" block.
type Renderer struct {
	pages map[string]*template.Template
}

// templateFuncs are the helpers available to all templates.
var templateFuncs = template.FuncMap{
	"usd":      model.FormatCents,
	"longdate": LongDate,
	"mkcats": func() []string {
		return []string{"all", "concerts", "sports", "theater", "movies"}
	},
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	layout, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil, err
	}
	pages := make(map[string]*template.Template)
	for _, entry := range entries {
		name := entry.Name()
		if name == "layout.html" {
			continue
		}
		page, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := page.ParseFS(templateFS, path.Join("templates", name)); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[strings.TrimSuffix(name, ".html")] = page
	}
	return &Renderer{pages: pages}, nil
}

// Render executes the named page template with the layout.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	page, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return page.ExecuteTemplate(w, "layout.html", data)
}

// LongDate formats a catalog date (YYYY-MM-DD) the way receipts and
// detail pages show it, e.g. "Tuesday, July 15, 2025".  Unparseable
// input is shown as-is.
func LongDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}
