package server

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/emrgen/pagebuilder/internal/compositor"
	"github.com/emrgen/pagebuilder/internal/page"
	"github.com/emrgen/pagebuilder/internal/render"
	"github.com/emrgen/pagebuilder/internal/service"
	"github.com/sirupsen/logrus"
)

// SiteHandler serves the public pages as HTML.
type SiteHandler struct {
	pages     *service.PageService
	templates *render.Templates
	resolver  compositor.Resolver
}

func NewSiteHandler(pages *service.PageService, templates *render.Templates, resolver compositor.Resolver) *SiteHandler {
	return &SiteHandler{
		pages:     pages,
		templates: templates,
		resolver:  resolver,
	}
}

// Register adds the home page and the slug routes to mux.
func (h *SiteHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		h.serve(w, r, "")
	})
	mux.HandleFunc("GET /p/{slug}", func(w http.ResponseWriter, r *http.Request) {
		h.serve(w, r, r.PathValue("slug"))
	})
}

func (h *SiteHandler) serve(w http.ResponseWriter, r *http.Request, slug string) {
	rendered, err := h.pages.Render(r.Context(), slug)
	if err != nil {
		if errors.Is(err, page.ErrPageNotFound) || errors.Is(err, service.ErrNoHomePage) {
			http.NotFound(w, r)
			return
		}
		logrus.Errorf("error rendering page %q: %v", slug, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	theme := render.Theme{
		Lang:         strings.ReplaceAll(rendered.Theme.Locale, "_", "-"),
		PrimaryColor: rendered.Theme.PrimaryColor,
	}

	var buf bytes.Buffer
	if err := h.templates.Page(&buf, rendered.Composition, h.resolver, rendered.Meta, theme); err != nil {
		logrus.Errorf("error writing page %s: %v", rendered.Page.ID, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
