// Package webui serves the embedded interactive page that drives the API:
// a scenario dropdown, the parameter sliders, and the two diagrams.
package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed index.html app.js
var assets embed.FS

type pageData struct {
	Version string
}

// Handler serves the visualizer page and its script.
type Handler struct {
	version string
	tmpl    *template.Template
}

// NewHandler parses the embedded page template.
func NewHandler(version string) (*Handler, error) {
	tmpl, err := template.ParseFS(assets, "index.html")
	if err != nil {
		return nil, err
	}
	return &Handler{version: version, tmpl: tmpl}, nil
}

// Register mounts the UI routes on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.index)
	r.Get("/app.js", h.script)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, pageData{Version: h.version}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) script(w http.ResponseWriter, r *http.Request) {
	script, err := assets.ReadFile("app.js")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	_, _ = w.Write(script)
}
