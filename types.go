package siteconfig

import "time"

// Site holds the identity, feature flags and pagination settings of the blog.
type Site struct {
	Website          string // canonical absolute URL of the blog
	Author           string
	Profile          string // author's personal site
	Desc             string
	Title            string
	OGImage          string // opaque file name, existence is not checked
	LightAndDarkMode bool

	PostPerIndex int // posts on the home page
	PostPerPage  int // posts per paginated listing page

	// ScheduledPostMargin is the lead time before a future-dated post is
	// treated as published.
	ScheduledPostMargin time.Duration

	ShowArchives bool
}

// Locale drives date and number formatting. LangTag[0] is the primary tag.
type Locale struct {
	Lang    string   `yaml:"lang" json:"lang"`
	LangTag []string `yaml:"langTag" json:"langTag"`
}

// Logo describes the header logo. SVG, Width and Height only affect
// rendering when Enable is true.
type Logo struct {
	Enable bool `yaml:"enable" json:"enable"`
	SVG    bool `yaml:"svg" json:"svg"`
	Width  int  `yaml:"width" json:"width"`
	Height int  `yaml:"height" json:"height"`
}

// SocialLink is one external profile or contact shown in the site navigation.
// The slice order in Config is the display order.
type SocialLink struct {
	Name      Platform `json:"name"`
	Href      string   `json:"href"`
	LinkTitle string   `json:"linkTitle"`
	Active    bool     `json:"active"`
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string // absolute og:image URL
}
