package model

import "time"

// SiteThemeID is the primary key of the only site theme row.
const SiteThemeID = 1

// SiteTheme holds the site wide settings, including which page is served as
// the home page.
type SiteTheme struct {
	ID               uint    `gorm:"primaryKey"`
	SelectedHomePage *string `gorm:"type:varchar(36)"`
	SiteName         string  `gorm:"not null"`
	Locale           string  `gorm:"not null"`
	BaseURL          string  `gorm:"not null"`
	PrimaryColor     string  `gorm:"not null"`
	Logo             string  `gorm:"not null"`
	UpdatedAt        time.Time
}

func (SiteTheme) TableName() string {
	return "site_themes"
}

// HomePageID returns the selected home page id, or "" when none is set.
func (s *SiteTheme) HomePageID() string {
	if s == nil || s.SelectedHomePage == nil {
		return ""
	}
	return *s.SelectedHomePage
}
