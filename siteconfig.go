// Package siteconfig holds the configuration of a personal blog: site
// identity, feature flags, pagination, locale, logo and social links.
//
// A *Config is built once from a Source, validated up front and never
// mutated afterwards, so any number of renderers may read it concurrently.
// Reloading means building a new *Config and swapping it in through a Holder.
package siteconfig

import (
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Config is the frozen site configuration. Accessors return copies. A Config
// is only meaningful when built by New; the zero value has no locale or links.
type Config struct {
	site    Site
	locale  Locale
	logo    Logo
	socials []SocialLink
}

// New validates src and builds a Config. Link titles are composed from the
// site title here, once. On failure the error is a *ValidationError naming
// every offending field and no Config is returned.
func New(src Source) (*Config, error) {
	v := &validator{}
	s := src.Site

	site := Site{
		Website:          s.Website,
		Author:           s.Author,
		Profile:          s.Profile,
		Desc:             s.Desc,
		Title:            s.Title,
		OGImage:          s.OGImage,
		LightAndDarkMode: s.LightAndDarkMode,
		PostPerIndex:     s.PostPerIndex,
		PostPerPage:      s.PostPerPage,
		ShowArchives:     s.ShowArchives,
	}

	v.requireAbsURL("site.website", site.Website, "http", "https")
	v.requireString("site.author", site.Author)
	v.requireAbsURL("site.profile", site.Profile, "http", "https")
	v.requireString("site.desc", site.Desc)
	v.requireString("site.title", site.Title)
	v.requirePositive("site.postPerIndex", site.PostPerIndex)
	v.requirePositive("site.postPerPage", site.PostPerPage)
	v.requireMillis("site.scheduledPostMargin", s.ScheduledPostMargin)

	v.requireString("locale.lang", src.Locale.Lang)
	if len(src.Locale.LangTag) == 0 {
		v.add("locale.langTag", src.Locale.LangTag, ErrRequired)
	}
	for i, tag := range src.Locale.LangTag {
		v.requireLangTag(fmt.Sprintf("locale.langTag[%d]", i), tag)
	}

	if src.Logo.Enable {
		v.requirePositive("logo.width", src.Logo.Width)
		v.requirePositive("logo.height", src.Logo.Height)
	}

	socials := buildSocials(v, site.Title, src.Socials)

	if err := v.err(); err != nil {
		return nil, err
	}
	site.ScheduledPostMargin = time.Duration(s.ScheduledPostMargin) * time.Millisecond
	return &Config{
		site: site,
		locale: Locale{
			Lang:    src.Locale.Lang,
			LangTag: append([]string(nil), src.Locale.LangTag...),
		},
		logo:    src.Logo,
		socials: socials,
	}, nil
}

// MustNew is like New but panics on an invalid source.
func MustNew(src Source) *Config {
	cfg, err := New(src)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) Site() Site { return c.site }

func (c *Config) Logo() Logo { return c.logo }

func (c *Config) Locale() Locale {
	return Locale{Lang: c.locale.Lang, LangTag: append([]string(nil), c.locale.LangTag...)}
}

// PrimaryLangTag returns the most relevant locale tag, or "" when there is none.
func (c *Config) PrimaryLangTag() string {
	if len(c.locale.LangTag) == 0 {
		return ""
	}
	return c.locale.LangTag[0]
}

// LanguageTags parses the locale tags in relevance order. Unregistered
// subtags are kept on a best-effort basis.
func (c *Config) LanguageTags() []language.Tag {
	out := make([]language.Tag, len(c.locale.LangTag))
	for i, t := range c.locale.LangTag {
		out[i] = language.Make(t)
	}
	return out
}

// Socials returns all social links in display order.
func (c *Config) Socials() []SocialLink {
	return append([]SocialLink(nil), c.socials...)
}

// ActiveSocials returns the links a renderer should show, in display order.
func (c *Config) ActiveSocials() []SocialLink {
	var out []SocialLink
	for _, s := range c.socials {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}

// MarshalJSON writes the configuration in its authored shape, with the
// scheduling margin in milliseconds.
func (c *Config) MarshalJSON() ([]byte, error) {
	s := c.site
	return json.Marshal(struct {
		Site    SiteSource   `json:"site"`
		Locale  Locale       `json:"locale"`
		Logo    Logo         `json:"logo"`
		Socials []SocialLink `json:"socials"`
	}{
		Site: SiteSource{
			Website:             s.Website,
			Author:              s.Author,
			Profile:             s.Profile,
			Desc:                s.Desc,
			Title:               s.Title,
			OGImage:             s.OGImage,
			LightAndDarkMode:    s.LightAndDarkMode,
			PostPerIndex:        s.PostPerIndex,
			PostPerPage:         s.PostPerPage,
			ScheduledPostMargin: s.ScheduledPostMargin.Milliseconds(),
			ShowArchives:        s.ShowArchives,
		},
		Locale:  c.locale,
		Logo:    c.logo,
		Socials: c.socials,
	})
}
