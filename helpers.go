package siteconfig

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
	"time"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// OGImageURL resolves the OG image against the website URL. An OG image that
// is already absolute is returned as is.
func (c *Config) OGImageURL() string {
	img := c.site.OGImage
	if img == "" {
		return ""
	}
	if u, err := url.Parse(img); err == nil && u.IsAbs() {
		return img
	}
	base, err := url.Parse(c.site.Website)
	if err != nil {
		return img
	}
	return base.JoinPath(img).String()
}

// PageMeta builds the head metadata for a page. An empty title or
// description falls back to the site's own.
func (c *Config) PageMeta(title, description, pagePath string) PageMeta {
	s := c.site
	meta := PageMeta{
		Title:       s.Title,
		Description: s.Desc,
		URL:         BuildURL(s.Website),
		OGType:      "website",
		Image:       c.OGImageURL(),
	}
	if title != "" {
		meta.Title = title + " | " + s.Title
	}
	if description != "" {
		meta.Description = description
	}
	if p := strings.Trim(pagePath, "/"); p != "" {
		meta.URL = BuildURL(s.Website, p)
	}
	return meta
}

// IsPublished reports whether a post dated pub is visible at now. A
// future-dated post becomes visible ScheduledPostMargin before its date.
func (c *Config) IsPublished(pub, now time.Time) bool {
	return now.After(pub.Add(-c.site.ScheduledPostMargin))
}

// IndexCount returns how many of n posts the home page shows.
func (c *Config) IndexCount(n int) int {
	return min(n, c.site.PostPerIndex)
}

// TotalPages returns the number of listing pages for n posts. There is always
// at least one page.
func (c *Config) TotalPages(n int) int {
	if n <= 0 {
		return 1
	}
	per := c.site.PostPerPage
	return (n + per - 1) / per
}

// PageBounds returns the slice bounds of 1-based page for n posts. ok is false
// when page is out of range.
func (c *Config) PageBounds(page, n int) (start, end int, ok bool) {
	if page < 1 || page > c.TotalPages(n) {
		return 0, 0, false
	}
	per := c.site.PostPerPage
	start = min((page-1)*per, n)
	end = min(start+per, n)
	return start, end, true
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema. Active
// non-mail social links become the author's sameAs profiles.
func WebsiteJsonLD(cfg *Config) string {
	s := cfg.site
	author := map[string]interface{}{
		"@type": "Person",
		"name":  s.Author,
		"url":   s.Profile,
	}
	var sameAs []string
	for _, l := range cfg.ActiveSocials() {
		if l.Name != Mail {
			sameAs = append(sameAs, l.Href)
		}
	}
	if len(sameAs) > 0 {
		author["sameAs"] = sameAs
	}
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        s.Title,
		"url":         BuildURL(s.Website),
		"description": s.Desc,
		"inLanguage":  cfg.PrimaryLangTag(),
		"author":      author,
	}
	if img := cfg.OGImageURL(); img != "" {
		data["image"] = img
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
