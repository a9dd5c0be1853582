package v1

import "time"

type ComponentInstance struct {
	InstanceId string         `json:"instanceId"`
	TypeId     string         `json:"typeId"`
	Properties map[string]any `json:"properties"`
}

type BasicSeo struct {
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	Keywords     string `json:"keywords,omitempty"`
	CanonicalUrl string `json:"canonicalUrl,omitempty"`
	Robots       string `json:"robots,omitempty"`
	Viewport     string `json:"viewport,omitempty"`
	Author       string `json:"author,omitempty"`
}

type OgSeo struct {
	Title          string `json:"title,omitempty"`
	Description    string `json:"description,omitempty"`
	Image          string `json:"image,omitempty"`
	Type           string `json:"type,omitempty"`
	Url            string `json:"url,omitempty"`
	SiteName       string `json:"siteName,omitempty"`
	Locale         string `json:"locale,omitempty"`
	TwitterCard    string `json:"twitterCard,omitempty"`
	TwitterCreator string `json:"twitterCreator,omitempty"`
}

type SeoData struct {
	BasicSeo *BasicSeo `json:"basicSeo,omitempty"`
	OgSeo    *OgSeo    `json:"ogSeo,omitempty"`
}

type Page struct {
	Id          string               `json:"id"`
	Title       string               `json:"title"`
	Slug        string               `json:"slug"`
	Description string               `json:"description"`
	ParentId    string               `json:"parentId,omitempty"`
	Components  []*ComponentInstance `json:"components"`
	SeoData     *SeoData             `json:"seoData"`
	IsHomePage  bool                 `json:"isHomePage"`
	Deleted     bool                 `json:"deleted"`
	Version     int64                `json:"version"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

type PageTreeEntry struct {
	Page  *Page  `json:"page"`
	Depth int32  `json:"depth"`
	Path  string `json:"path"`
}

type PageRevision struct {
	PageId    string    `json:"pageId"`
	Version   int64     `json:"version"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

type RenderInstruction struct {
	InstanceId       string         `json:"instanceId"`
	TypeId           string         `json:"typeId"`
	MergedProperties map[string]any `json:"mergedProperties"`
}

type Diagnostic struct {
	InstanceId string `json:"instanceId"`
	TypeId     string `json:"typeId"`
	Reason     string `json:"reason"`
}

type SeoMeta struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	Keywords           string `json:"keywords,omitempty"`
	Canonical          string `json:"canonical,omitempty"`
	Robots             string `json:"robots"`
	Viewport           string `json:"viewport"`
	Author             string `json:"author,omitempty"`
	OgTitle            string `json:"ogTitle"`
	OgDescription      string `json:"ogDescription"`
	OgImage            string `json:"ogImage,omitempty"`
	OgType             string `json:"ogType"`
	OgUrl              string `json:"ogUrl,omitempty"`
	OgSiteName         string `json:"ogSiteName,omitempty"`
	OgLocale           string `json:"ogLocale,omitempty"`
	TwitterCard        string `json:"twitterCard"`
	TwitterCreator     string `json:"twitterCreator,omitempty"`
	TwitterTitle       string `json:"twitterTitle"`
	TwitterDescription string `json:"twitterDescription"`
	TwitterImage       string `json:"twitterImage,omitempty"`
}

type PropertyDefinition struct {
	Name    string                `json:"name"`
	Kind    string                `json:"kind"`
	Label   string                `json:"label"`
	Default any                   `json:"defaultValue,omitempty"`
	Options []string              `json:"options,omitempty"`
	Fields  []*PropertyDefinition `json:"fields,omitempty"`
}

type ComponentType struct {
	TypeId              string                `json:"typeId"`
	DisplayName         string                `json:"displayName"`
	Category            string                `json:"category"`
	Description         string                `json:"description,omitempty"`
	PropertyDefinitions []*PropertyDefinition `json:"propertyDefinitions"`
	DefaultProperties   map[string]any        `json:"defaultProperties"`
}

type SiteTheme struct {
	SelectedHomePage string    `json:"selectedHomePage"`
	SiteName         string    `json:"siteName"`
	Locale           string    `json:"locale"`
	BaseUrl          string    `json:"baseUrl"`
	PrimaryColor     string    `json:"primaryColor"`
	Logo             string    `json:"logo"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
