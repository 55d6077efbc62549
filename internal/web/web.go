// Package web serves the embedded single-page UI. The page talks to the
// JSON API and renders diagrams client-side with mermaid; when the API key
// is missing it shows a setup notice instead of the upload form.
package web

import (
	_ "embed"
	"html/template"
	"log"
	"net/http"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type IndexHandler struct {
	logger  *log.Logger
	enabled bool
}

func NewIndexHandler(logger *log.Logger, enabled bool) *IndexHandler {
	return &IndexHandler{
		logger:  logger,
		enabled: enabled,
	}
}

func (h *IndexHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, struct{ Enabled bool }{h.enabled}); err != nil {
		h.logger.Printf("index render error: %v\n", err)
	}
}
