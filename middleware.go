package unopro

import (
	"errors"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/unoproservices/unopro/forms"
	"github.com/unoproservices/unopro/navigation"
)

const (
	sessionName = "unopro_session"
	routerKey   = "router"
	// swapMain is the swap applied after a navigation: replace the main
	// region and scroll the window to the top-left origin.
	swapMain = "innerHTML show:window:top"
)

func (a *App) setupMiddleware() {
	e := a.Echo

	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)

	e.HTTPErrorHandler = a.httpErrorHandler

	e.Pre(middleware.NonWWWRedirect())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	log := a.Log.WithComponent("http")
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("ip", v.RemoteIP).
				Bool("partial", isPartial(c)).
				Msg("request")
			return nil
		},
	}))

	e.Use(middleware.Recover())

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return strings.HasPrefix(p, "/gallery/thumb/") || isImagePath(p)
		},
	}))

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; script-src 'self' https://unpkg.com; style-src 'self' 'unsafe-inline'; img-src 'self' https: data:; font-src 'self'; connect-src 'self'; form-action 'self'; frame-ancestors 'none'",
		HSTSMaxAge:            31536000,
		HSTSExcludeSubdomains: false,
	}))

	e.Use(session.Middleware(a.newSessionStore()))

	e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		ContextKey:     middleware.DefaultCSRFConfig.ContextKey,
		TokenLookup:    "header:X-CSRF-Token,form:_csrf",
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieSameSite: http.SameSiteLaxMode,
		CookieSecure:   a.Config.CookieSecure,
		ErrorHandler: func(err error, c echo.Context) error {
			return c.String(http.StatusForbidden, "Forbidden")
		},
	}))

	e.Use(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		RedirectCode: http.StatusMovedPermanently,
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return strings.HasPrefix(p, "/public") ||
				strings.HasPrefix(p, "/gallery/thumb/") ||
				path.Ext(p) != ""
		},
	}))

	e.Use(cacheControlMiddleware)
	e.Use(routerMiddleware)
}

// routerMiddleware gives every request its own navigation Router. For HTMX
// requests the Router's scroll side effect is the HX-Reswap header.
func routerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		scroll := func() {}
		if isPartial(c) {
			scroll = func() {
				c.Response().Header().Set("HX-Reswap", swapMain)
			}
		}
		c.Set(routerKey, navigation.NewRouter(navigation.WithScroller(scroll)))
		return next(c)
	}
}

func routerFrom(c echo.Context) *navigation.Router {
	if r, ok := c.Get(routerKey).(*navigation.Router); ok {
		return r
	}
	return navigation.NewRouter()
}

func cacheControlMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p := c.Request().URL.Path
		switch {
		case strings.HasPrefix(p, "/public/"), strings.HasPrefix(p, "/gallery/thumb/"), isImagePath(p):
			c.Response().Header().Set("Cache-Control", "public, max-age=86400")
		case p == "/sitemap.xml" || p == "/feed.xml" || p == "/robots.txt":
			c.Response().Header().Set("Cache-Control", "public, max-age=3600")
		default:
			// Pages carry CSRF tokens and freshly fetched content.
			c.Response().Header().Set("Cache-Control", "no-store")
		}
		return next(c)
	}
}

func isImagePath(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg", ".ico":
		return true
	}
	return false
}

// maxCareersBody is well above forms.MaxResumeSize so an oversized resume
// still reaches Resume.Check with the rest of the form intact.
const maxCareersBody = 4 * forms.MaxResumeSize

// careersBodyLimit caps careers uploads. A body past the cap is answered with
// the resume size message on the careers form instead of a bare 413.
func (a *App) careersBodyLimit(next echo.HandlerFunc) echo.HandlerFunc {
	limited := middleware.BodyLimit(strconv.Itoa(maxCareersBody>>10) + "K")(next)
	return func(c echo.Context) error {
		err := limited(c)
		if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) && !c.Response().Committed {
			return a.resumeTooLarge(c)
		}
		return err
	}
}

func (a *App) newSessionStore() *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(a.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60 * 60 * 12,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	}
	return store
}

// setFlash stores a one-shot notice for the next page view. Each notice has
// its own key so reading one leaves the others pending.
func setFlash(c echo.Context, flash string) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.AddFlash(true, flash)
	return sess.Save(c.Request(), c.Response())
}

// popFlash reports whether flash was pending and consumes it.
func popFlash(c echo.Context, flash string) bool {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return false
	}
	if len(sess.Flashes(flash)) == 0 {
		return false
	}
	_ = sess.Save(c.Request(), c.Response())
	return true
}

// CsrfToken extracts the CSRF token from the Echo context.
func CsrfToken(c echo.Context) string {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return token
}
