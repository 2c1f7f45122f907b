package views

import (
	"bytes"
	"context"
	"html"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/siteconfig"
)

// Render writes a page as an HTTP 200 HTML response, using the configuration
// pinned on c by siteconfig.Middleware.
func Render(c echo.Context, meta siteconfig.PageMeta, body templ.Component) error {
	return RenderStatus(c, http.StatusOK, meta, body)
}

// RenderStatus is Render with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, meta siteconfig.PageMeta, body templ.Component) error {
	cfg := siteconfig.FromContext(c)
	if cfg == nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "site configuration missing from context")
	}
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return Page(cfg, meta, body).Render(c.Request().Context(), c.Response().Writer)
}

// Page wraps body in the document shell: head metadata, header with logo,
// navigation and theme toggle, and a footer with the social links.
func Page(cfg *siteconfig.Config, meta siteconfig.PageMeta, body templ.Component) templ.Component {
	if body == nil {
		body = templ.NopComponent
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		site := cfg.Site()
		var buf bytes.Buffer
		buf.WriteString(`<!doctype html><html lang="` + html.EscapeString(cfg.Locale().Lang) + `"><head>`)
		sections := []struct {
			cmp   templ.Component
			after string
		}{
			{Head(cfg, meta), `</head><body><header>`},
			{Logo(site, cfg.Logo()), ""},
			{Nav(site), ""},
			{ThemeToggle(site), `</header><main id="main-content">`},
			{body, `</main><footer>`},
			{SocialLinks(cfg.Socials()), `</footer></body></html>`},
		}
		for _, s := range sections {
			if err := s.cmp.Render(ctx, &buf); err != nil {
				return err
			}
			buf.WriteString(s.after)
		}
		return write(w, &buf)
	})
}
