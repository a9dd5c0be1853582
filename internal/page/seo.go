package page

const (
	DefaultRobots      = "index, follow"
	DefaultViewport    = "width=device-width, initial-scale=1"
	DefaultOgType      = "website"
	DefaultTwitterCard = "summary_large_image"
)

// BasicSeo holds the plain meta tags of a page.
type BasicSeo struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Keywords     string `json:"keywords"`
	CanonicalURL string `json:"canonicalUrl"`
	Robots       string `json:"robots"`
	Viewport     string `json:"viewport"`
	Author       string `json:"author"`
}

// OgSeo holds the Open Graph and Twitter tags of a page.
type OgSeo struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Image          string `json:"image"`
	Type           string `json:"type"`
	URL            string `json:"url"`
	SiteName       string `json:"siteName"`
	Locale         string `json:"locale"`
	TwitterCard    string `json:"twitterCard"`
	TwitterCreator string `json:"twitterCreator"`
}

// SeoData is the SEO metadata stored with a page.
type SeoData struct {
	Basic BasicSeo `json:"basicSeo"`
	Og    OgSeo    `json:"ogSeo"`
}

// DefaultSeo returns SEO data seeded from a page title and description.
func DefaultSeo(title, description string) SeoData {
	return SeoData{}.WithDefaults(title, description)
}

// WithDefaults fills unset titles and descriptions of both sub-objects from
// the page, independently of each other, plus the fixed tag defaults.
func (s SeoData) WithDefaults(title, description string) SeoData {
	if s.Basic.Title == "" {
		s.Basic.Title = title
	}
	if s.Basic.Description == "" {
		s.Basic.Description = description
	}
	if s.Basic.Robots == "" {
		s.Basic.Robots = DefaultRobots
	}
	if s.Basic.Viewport == "" {
		s.Basic.Viewport = DefaultViewport
	}

	if s.Og.Title == "" {
		s.Og.Title = title
	}
	if s.Og.Description == "" {
		s.Og.Description = description
	}
	if s.Og.Type == "" {
		s.Og.Type = DefaultOgType
	}
	if s.Og.TwitterCard == "" {
		s.Og.TwitterCard = DefaultTwitterCard
	}

	return s
}
