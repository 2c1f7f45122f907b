package siteconfig

import "time"

// Source is the authored, unvalidated form of the configuration. It is what
// Default returns, what a YAML file decodes into and what ApplyEnv edits.
// New turns it into a frozen *Config.
type Source struct {
	Site    SiteSource     `yaml:"site"`
	Locale  Locale         `yaml:"locale"`
	Logo    Logo           `yaml:"logo"`
	Socials []SocialSource `yaml:"socials"`
}

// SiteSource mirrors Site with the scheduling margin in milliseconds.
type SiteSource struct {
	Website             string `yaml:"website" json:"website"`
	Author              string `yaml:"author" json:"author"`
	Profile             string `yaml:"profile" json:"profile"`
	Desc                string `yaml:"desc" json:"desc"`
	Title               string `yaml:"title" json:"title"`
	OGImage             string `yaml:"ogImage" json:"ogImage"`
	LightAndDarkMode    bool   `yaml:"lightAndDarkMode" json:"lightAndDarkMode"`
	PostPerIndex        int    `yaml:"postPerIndex" json:"postPerIndex"`
	PostPerPage         int    `yaml:"postPerPage" json:"postPerPage"`
	ScheduledPostMargin int64  `yaml:"scheduledPostMargin" json:"scheduledPostMargin"` // ms
	ShowArchives        bool   `yaml:"showArchives" json:"showArchives"`
}

// SocialSource is an authored social link. Its title is composed from the
// site title by New.
type SocialSource struct {
	Name   Platform `yaml:"name"`
	Href   string   `yaml:"href"`
	Active bool     `yaml:"active"`
}

// Default returns the blog's authored configuration. Every call returns a
// fresh value, so callers may edit it before passing it to New.
func Default() Source {
	return Source{
		Site: SiteSource{
			Website:             "https://blogs.ajaymandal.me/",
			Author:              "Ajay Mandal",
			Profile:             "https://ajaymandal.me/",
			Desc:                "A minimal, responsive and SEO-friendly personal blog website.",
			Title:               "Ajay's Space",
			OGImage:             "astropaper-og.jpg",
			LightAndDarkMode:    true,
			PostPerIndex:        4,
			PostPerPage:         3,
			ScheduledPostMargin: (15 * time.Minute).Milliseconds(),
			ShowArchives:        true,
		},
		Locale: Locale{
			Lang:    "en",
			LangTag: []string{"en-EN"},
		},
		Logo: Logo{
			Enable: false,
			SVG:    true,
			Width:  216,
			Height: 46,
		},
		Socials: []SocialSource{
			{Name: Github, Href: "https://github.com/ajay-mandal", Active: true},
			{Name: LinkedIn, Href: "https://www.linkedin.com/in/ajay-mandal", Active: true},
			{Name: Mail, Href: "mailto:ajayrox48@gmail.com", Active: true},
			{Name: Twitter, Href: "https://x.com/lord_zexa", Active: true},
		},
	}
}
