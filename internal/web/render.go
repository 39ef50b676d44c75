// Package web carries the presentation glue: template rendering, the
// datetime display filter, flash messages and the request logging
// middleware.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"showbill/internal/logger"
)

//go:embed templates
var templatesFS embed.FS

// GenreOptions is the category list offered by the venue and artist forms.
var GenreOptions = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

// Renderer executes the embedded HTML templates. Every page receives a Page
// wrapper so pending flash notices show up on the next rendered response.
type Renderer struct {
	templates *template.Template
	flash     *Flash
	logger    *logger.Logger
}

func NewRenderer(flash *Flash, log *logger.Logger) (*Renderer, error) {
	funcs := template.FuncMap{
		"datetime":     FormatDatetime,
		"genreOptions": func() []string { return GenreOptions },
		"hasGenre": func(genres []string, genre string) bool {
			for _, g := range genres {
				if g == genre {
					return true
				}
			}
			return false
		},
	}
	templates, err := template.New("showbill").Funcs(funcs).
		ParseFS(templatesFS, "templates/*.html", "templates/errors/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: templates, flash: flash, logger: log}, nil
}

// Page wraps view data with the one-shot flash notices for this response.
type Page struct {
	Flashes []string
	Data    any
}

// HTML renders the named template with the given status code. Flashes are
// popped before headers go out because popping writes the session cookie.
func (rn *Renderer) HTML(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	page := Page{Data: data}
	if rn.flash != nil {
		page.Flashes = rn.flash.Pop(w, r)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := rn.templates.ExecuteTemplate(w, name, page); err != nil {
		rn.logger.Error("RENDER", fmt.Sprintf("failed to render %s: %v", name, err))
	}
}

// Home renders the landing page.
func (rn *Renderer) Home(w http.ResponseWriter, r *http.Request) {
	rn.HTML(w, r, http.StatusOK, "home", nil)
}

// NotFound renders the dedicated 404 view.
func (rn *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	rn.HTML(w, r, http.StatusNotFound, "404", nil)
}

// ServerError renders the dedicated 500 view.
func (rn *Renderer) ServerError(w http.ResponseWriter, r *http.Request) {
	rn.HTML(w, r, http.StatusInternalServerError, "500", nil)
}
