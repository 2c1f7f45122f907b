// Package views renders the parts of a page that come straight from the site
// configuration: head metadata, the header logo, the theme toggle and the
// social links.
package views

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/siteconfig"
)

func write(w io.Writer, buf *bytes.Buffer) error {
	_, err := w.Write(buf.Bytes())
	return err
}

// SocialLinks renders the active links in display order. Inactive links are
// skipped and the order is never changed.
func SocialLinks(links []siteconfig.SocialLink) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<div class="social-icons">`)
		for _, l := range links {
			if !l.Active {
				continue
			}
			title := html.EscapeString(l.LinkTitle)
			fmt.Fprintf(&buf, `<a href="%s" class="link-button" title="%s" aria-label="%s" data-platform="%s">%s</a>`,
				html.EscapeString(string(templ.URL(l.Href))),
				title, title,
				html.EscapeString(string(l.Name)),
				html.EscapeString(string(l.Name)))
		}
		buf.WriteString(`</div>`)
		return write(w, &buf)
	})
}

// LogoSrc returns the logo asset path for the given logo settings.
func LogoSrc(logo siteconfig.Logo) string {
	if logo.SVG {
		return "/assets/logo.svg"
	}
	return "/assets/logo.png"
}

// Logo renders the header logo image when enabled, otherwise the site title
// as text.
func Logo(site siteconfig.Site, logo siteconfig.Logo) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		title := html.EscapeString(site.Title)
		buf.WriteString(`<a href="/" class="logo">`)
		if logo.Enable {
			fmt.Fprintf(&buf, `<img src="%s" alt="%s" width="%d" height="%d" />`,
				LogoSrc(logo), title, logo.Width, logo.Height)
		} else {
			buf.WriteString(title)
		}
		buf.WriteString(`</a>`)
		return write(w, &buf)
	})
}

// ThemeToggle renders the light/dark switch, or nothing when the site has it
// disabled.
func ThemeToggle(site siteconfig.Site) templ.Component {
	if !site.LightAndDarkMode {
		return templ.NopComponent
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<button id="theme-btn" class="focus-outline" title="Toggles light &amp; dark" aria-label="auto" aria-live="polite">`+
			`<span class="icon-moon"></span><span class="icon-sun"></span></button>`)
		return err
	})
}

// Nav renders the header navigation. The archives entry follows ShowArchives.
func Nav(site siteconfig.Site) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<ul id="menu-items">`)
		buf.WriteString(`<li><a href="/posts/">Posts</a></li>`)
		buf.WriteString(`<li><a href="/tags/">Tags</a></li>`)
		buf.WriteString(`<li><a href="/about/">About</a></li>`)
		if site.ShowArchives {
			buf.WriteString(`<li><a href="/archives/" title="Archives" aria-label="archives">Archives</a></li>`)
		}
		buf.WriteString(`</ul>`)
		return write(w, &buf)
	})
}

// Head renders the <head> metadata for a page.
func Head(cfg *siteconfig.Config, meta siteconfig.PageMeta) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		site := cfg.Site()
		fmt.Fprintf(&buf, `<meta charset="UTF-8" /><title>%s</title>`, html.EscapeString(meta.Title))
		metaTag := func(attr, key, val string) {
			if val == "" {
				return
			}
			fmt.Fprintf(&buf, `<meta %s="%s" content="%s" />`, attr, key, html.EscapeString(val))
		}
		metaTag("name", "title", meta.Title)
		metaTag("name", "description", meta.Description)
		metaTag("name", "author", site.Author)
		fmt.Fprintf(&buf, `<link rel="canonical" href="%s" />`, html.EscapeString(meta.URL))
		metaTag("property", "og:title", meta.Title)
		metaTag("property", "og:description", meta.Description)
		metaTag("property", "og:url", meta.URL)
		metaTag("property", "og:type", meta.OGType)
		metaTag("property", "og:image", meta.Image)
		metaTag("property", "og:locale", cfg.PrimaryLangTag())
		metaTag("property", "twitter:card", "summary_large_image")
		metaTag("property", "twitter:image", meta.Image)
		fmt.Fprintf(&buf, `<script type="application/ld+json">%s</script>`, siteconfig.WebsiteJsonLD(cfg))
		return write(w, &buf)
	})
}
