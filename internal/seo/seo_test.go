package seo

import (
	"testing"

	"github.com/emrgen/pagebuilder/internal/page"
	"github.com/stretchr/testify/assert"
)

func TestResolve_FallbackChain(t *testing.T) {
	site := Site{Name: "City Cabs", Locale: "en_GB", BaseURL: "https://citycabs.example/"}

	tests := []struct {
		name string
		doc  *page.Document
		want func(t *testing.T, m Meta)
	}{
		{
			name: "type specific wins",
			doc: &page.Document{Title: "Fares", Slug: "fares", Seo: page.SeoData{
				Basic: page.BasicSeo{Title: "Taxi fares"},
				Og:    page.OgSeo{Title: "Fixed taxi fares", Image: "/media/og.jpg"},
			}},
			want: func(t *testing.T, m Meta) {
				assert.Equal(t, "Taxi fares", m.Title)
				assert.Equal(t, "Fixed taxi fares", m.OgTitle)
				assert.Equal(t, "Fixed taxi fares", m.TwitterTitle)
				assert.Equal(t, "/media/og.jpg", m.TwitterImage)
			},
		},
		{
			name: "basic before page",
			doc: &page.Document{Title: "Fares", Description: "page description", Seo: page.SeoData{
				Basic: page.BasicSeo{Description: "seo description"},
			}},
			want: func(t *testing.T, m Meta) {
				assert.Equal(t, "seo description", m.Description)
				assert.Equal(t, "seo description", m.OgDescription)
				assert.Equal(t, "Fares", m.OgTitle)
			},
		},
		{
			name: "page fields",
			doc:  &page.Document{Title: "Fares", Description: "Prices per route", Slug: "fares"},
			want: func(t *testing.T, m Meta) {
				assert.Equal(t, "Fares", m.Title)
				assert.Equal(t, "Prices per route", m.Description)
				assert.Equal(t, "https://citycabs.example/p/fares", m.Canonical)
				assert.Equal(t, "https://citycabs.example/p/fares", m.OgURL)
				assert.Equal(t, "City Cabs", m.OgSiteName)
				assert.Equal(t, "en_GB", m.OgLocale)
				assert.Equal(t, page.DefaultRobots, m.Robots)
				assert.Equal(t, page.DefaultTwitterCard, m.TwitterCard)
			},
		},
		{
			name: "generated defaults",
			doc:  &page.Document{IsHomePage: true},
			want: func(t *testing.T, m Meta) {
				assert.Equal(t, "City Cabs", m.Title)
				assert.Equal(t, "Book your ride with City Cabs.", m.Description)
				assert.Equal(t, "https://citycabs.example/", m.Canonical)
				assert.Equal(t, page.DefaultOgType, m.OgType)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, Resolve(tt.doc, site))
		})
	}
}

func TestResolve_NoSite(t *testing.T) {
	m := Resolve(&page.Document{}, Site{})

	assert.Equal(t, "Untitled page", m.Title)
	assert.Equal(t, "Book your ride with us.", m.Description)
	assert.Empty(t, m.Canonical)
}

func TestResolve_TitleNeverDecorated(t *testing.T) {
	site := Site{Name: "City Cabs"}

	assert.Equal(t, "Fares", Resolve(&page.Document{Title: "Fares"}, site).Title)
	assert.Equal(t, "City Cabs", Resolve(&page.Document{Title: "  "}, site).Title)
	assert.Equal(t, "City Cabs", defaultTitle(site))
	assert.Equal(t, "Untitled page", defaultTitle(Site{}))
}
