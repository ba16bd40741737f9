package unopro

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/unoproservices/unopro/navigation"
	"github.com/unoproservices/unopro/views"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// isPartial reports whether the request is an HTMX swap of the main region.
// History restores need the whole document.
func isPartial(c echo.Context) bool {
	h := c.Request().Header
	return h.Get("HX-Request") == "true" && h.Get("HX-History-Restore-Request") != "true"
}

// page is a rendered navigation result.
type page struct {
	meta   views.PageMeta
	body   templ.Component
	status int
}

// chrome builds the layout data. A zero State marks no navigation link as
// active.
func (a *App) chrome(st navigation.State, meta views.PageMeta) views.Chrome {
	current := navigation.Resolve(st.Page)
	if st.Page == "" {
		current = ""
	}
	return views.Chrome{
		Site: views.Site{
			Name:        a.Config.Name,
			URL:         a.Config.URL,
			Description: a.Config.Description,
			Info:        a.SiteInfo(),
			Year:        a.now().Year(),
		},
		Meta:    meta,
		Current: current,
	}
}

// renderPage writes p as the whole document, or as the main-region fragment
// for HTMX requests.
func (a *App) renderPage(c echo.Context, st navigation.State, p page) error {
	code := p.status
	if code == 0 {
		code = http.StatusOK
	}
	c.Response().Header().Add(echo.HeaderVary, "HX-Request")
	ch := a.chrome(st, p.meta)
	if isPartial(c) {
		// htmx does not swap error responses by default.
		if code >= 400 {
			code = http.StatusOK
		}
		return RenderStatus(c, code, views.Fragment(ch, p.body))
	}
	return RenderStatus(c, code, views.Layout(ch, p.body))
}
