// Package render turns compositions into HTML for the public site.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/emrgen/pagebuilder/internal/compositor"
	"github.com/emrgen/pagebuilder/internal/page"
	"github.com/emrgen/pagebuilder/internal/registry"
	"github.com/emrgen/pagebuilder/internal/resolver"
	"github.com/emrgen/pagebuilder/internal/seo"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"money": money,
}

// Templates holds the parsed component and page templates.
type Templates struct {
	tmpl *template.Template
}

// LoadTemplates parses the embedded templates.
func LoadTemplates() (*Templates, error) {
	tmpl, err := template.New("site").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Templates{tmpl: tmpl}, nil
}

// Renderer returns the renderer of typeID. Types without a dedicated
// template fall back to the generic property listing.
func (t *Templates) Renderer(typeID string) resolver.Renderer {
	if t.tmpl.Lookup(typeID) != nil {
		return resolver.RendererFunc(func(w io.Writer, props page.Properties) error {
			return t.tmpl.ExecuteTemplate(w, typeID, props)
		})
	}

	return t.generic(typeID)
}

func (t *Templates) generic(typeID string) resolver.Renderer {
	return resolver.RendererFunc(func(w io.Writer, props page.Properties) error {
		return t.tmpl.ExecuteTemplate(w, "generic", struct {
			TypeID string
			Props  page.Properties
		}{typeID, props})
	})
}

// RegisterDefaults binds a renderer to every type of the registry.
func RegisterDefaults(res *resolver.Resolver, reg *registry.Registry, t *Templates) error {
	for _, id := range reg.TypeIDs() {
		if err := res.Register(id, t.Renderer(id)); err != nil {
			return err
		}
	}

	return nil
}

// Theme is the site wide look applied to every page.
type Theme struct {
	Lang         string
	PrimaryColor string
}

type pageView struct {
	Lang         string
	PrimaryColor string
	Meta         seo.Meta
	Sections     []template.HTML
}

// Page writes a full HTML document. A component that fails to render is
// logged and left out; an empty composition renders a placeholder.
func (t *Templates) Page(w io.Writer, comp *compositor.Composition, res compositor.Resolver, meta seo.Meta, theme Theme) error {
	view := pageView{
		Lang:         theme.Lang,
		PrimaryColor: theme.PrimaryColor,
		Meta:         meta,
		Sections:     make([]template.HTML, 0, len(comp.Instructions)),
	}
	if view.Lang == "" {
		view.Lang = "en"
	}

	for _, in := range comp.Instructions {
		handler, ok := res.Resolve(in.TypeID)
		if !ok {
			continue
		}

		var buf bytes.Buffer
		if err := handler.Renderer.Render(&buf, in.Properties); err != nil {
			logrus.WithFields(logrus.Fields{
				"page":     comp.PageID,
				"instance": in.InstanceID,
				"type":     in.TypeID,
			}).Errorf("render component: %v", err)
			continue
		}
		// template output is already escaped
		view.Sections = append(view.Sections, template.HTML(buf.String()))
	}

	return t.tmpl.ExecuteTemplate(w, "page", view)
}

func money(value any, currency string) string {
	var amount float64
	switch v := value.(type) {
	case float64:
		amount = v
	case int:
		amount = float64(v)
	case int64:
		amount = float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return v
		}
		amount = f
	default:
		return fmt.Sprint(value)
	}

	symbol, ok := map[string]string{"EUR": "€", "USD": "$", "GBP": "£"}[currency]
	if !ok {
		return fmt.Sprintf("%.2f %s", amount, currency)
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
