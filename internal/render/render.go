// Package render executes the embedded page templates.
package render

import (
	"embed"
	"fmt"
	"html"
	"html/template"
	"io"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/bilgisen/uknews/internal/i18n"
	"github.com/bilgisen/uknews/internal/models"
	"github.com/bilgisen/uknews/internal/slug"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Page template names.
const (
	PageHome      = "home"
	PageArticle   = "article"
	PageListing   = "listing"
	PageDirectory = "directory"
	PageError     = "error"
)

var pageNames = []string{PageHome, PageArticle, PageListing, PageDirectory, PageError}

// View is the data handed to the layout. Data holds the page model.
type View struct {
	Lang        models.Lang
	OtherLang   models.Lang
	Title       string
	Description string
	Image       string
	Path        string
	Year        int
	Data        any
}

// ErrorData is the model of the error page.
type ErrorData struct {
	Heading string
	Message string
}

type Renderer struct {
	pages    map[string]*template.Template
	policy   *bluemonday.Policy
	sanitize bool
}

// New parses the layout once and clones it for every page so each page can
// define its own "content" block. With sanitize set, article HTML bodies are
// passed through a UGC policy before rendering.
func New(texts *i18n.Bundle, sanitize bool) (*Renderer, error) {
	r := &Renderer{
		pages:    make(map[string]*template.Template, len(pageNames)),
		policy:   bluemonday.UGCPolicy(),
		sanitize: sanitize,
	}

	funcs := template.FuncMap{
		"t": func(lang models.Lang, key string) string {
			return texts.T(lang, key)
		},
		"mainCities": func() []string { return slug.MainCities },
		"body":       r.body,
		"temp": func(c float64) string {
			return fmt.Sprintf("%.0f°C", c)
		},
	}

	base, err := template.New("_root").Funcs(funcs).ParseFS(templateFS, "templates/layout.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	for _, name := range pageNames {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := clone.ParseFS(templateFS, "templates/"+name+".tmpl"); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = clone
	}
	return r, nil
}

// Render writes page name with v.
func (r *Renderer) Render(w io.Writer, name string, v View) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page template %q", name)
	}
	if v.OtherLang == "" {
		v.OtherLang = v.Lang.Other()
	}
	if v.Year == 0 {
		v.Year = time.Now().Year()
	}
	return t.ExecuteTemplate(w, "base", v)
}

// body renders a resolved article body. Plain text is escaped and kept
// verbatim; the stylesheet preserves its whitespace.
func (r *Renderer) body(b models.ContentBody) template.HTML {
	switch b.Kind {
	case models.BodyHTML:
		if r.sanitize {
			return template.HTML(r.policy.Sanitize(b.Value))
		}
		return template.HTML(b.Value)
	case models.BodyText:
		return template.HTML(`<div class="plain-text">` + html.EscapeString(b.Value) + `</div>`)
	}
	return ""
}
