// Package seo resolves the meta tags of a rendered page.
package seo

import (
	"strings"

	"github.com/emrgen/pagebuilder/internal/page"
)

// Site is the site wide data the fallbacks draw from.
type Site struct {
	Name    string
	Locale  string
	BaseURL string
}

// Meta is the resolved set of tags for one page.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords,omitempty"`
	Canonical   string `json:"canonical,omitempty"`
	Robots      string `json:"robots"`
	Viewport    string `json:"viewport"`
	Author      string `json:"author,omitempty"`

	OgTitle       string `json:"ogTitle"`
	OgDescription string `json:"ogDescription"`
	OgImage       string `json:"ogImage,omitempty"`
	OgType        string `json:"ogType"`
	OgURL         string `json:"ogUrl,omitempty"`
	OgSiteName    string `json:"ogSiteName,omitempty"`
	OgLocale      string `json:"ogLocale,omitempty"`

	TwitterCard        string `json:"twitterCard"`
	TwitterCreator     string `json:"twitterCreator,omitempty"`
	TwitterTitle       string `json:"twitterTitle"`
	TwitterDescription string `json:"twitterDescription"`
	TwitterImage       string `json:"twitterImage,omitempty"`
}

// Resolve picks every tag with the priority: type specific field, basic
// field, page field, generated default.
func Resolve(doc *page.Document, site Site) Meta {
	basic := doc.Seo.Basic
	og := doc.Seo.Og

	title := first(basic.Title, doc.Title, defaultTitle(site))
	description := first(basic.Description, doc.Description, defaultDescription(doc, site))

	url := og.URL
	if url == "" {
		url = first(basic.CanonicalURL, pageURL(doc, site))
	}

	m := Meta{
		Title:       title,
		Description: description,
		Keywords:    basic.Keywords,
		Canonical:   first(basic.CanonicalURL, pageURL(doc, site)),
		Robots:      first(basic.Robots, page.DefaultRobots),
		Viewport:    first(basic.Viewport, page.DefaultViewport),
		Author:      first(basic.Author, site.Name),

		OgTitle:       first(og.Title, title),
		OgDescription: first(og.Description, description),
		OgImage:       og.Image,
		OgType:        first(og.Type, page.DefaultOgType),
		OgURL:         url,
		OgSiteName:    first(og.SiteName, site.Name),
		OgLocale:      first(og.Locale, site.Locale),

		TwitterCard:    first(og.TwitterCard, page.DefaultTwitterCard),
		TwitterCreator: og.TwitterCreator,
	}
	m.TwitterTitle = m.OgTitle
	m.TwitterDescription = m.OgDescription
	m.TwitterImage = m.OgImage

	return m
}

// defaultTitle is only reached by pages without a title.
func defaultTitle(site Site) string {
	return first(site.Name, "Untitled page")
}

func defaultDescription(doc *page.Document, site Site) string {
	name := first(site.Name, "us")
	if doc.Title != "" {
		return doc.Title + " - book your ride with " + name + "."
	}
	return "Book your ride with " + name + "."
}

func pageURL(doc *page.Document, site Site) string {
	if site.BaseURL == "" {
		return ""
	}
	base := strings.TrimRight(site.BaseURL, "/")
	if doc.IsHomePage || doc.Slug == "" {
		return base + "/"
	}
	return base + "/p/" + doc.Slug
}

func first(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
