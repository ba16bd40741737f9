// Package unopro is the Uno Pro Services website: an Echo server rendering
// templ pages, with HTMX partial navigation, a remotely hosted blog and two
// webhook-backed forms.
package unopro

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/unoproservices/unopro/content"
	"github.com/unoproservices/unopro/forms"
	"github.com/unoproservices/unopro/gallery"
	"github.com/unoproservices/unopro/logging"
	"github.com/unoproservices/unopro/navigation"
)

// App wires together the content sources, handlers, middleware and views.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Posts  PostSource
	Forms  forms.Submitter
	Log    *logging.Logger

	fetcher  *content.Fetcher
	siteMu   sync.RWMutex
	siteInfo content.SiteInfo

	limiter      *SubmissionLimiter
	thumbs       *gallery.Thumbnailer
	pages        *navigation.Table[pageHandler]
	customRoutes []func(*App)
	now          func() time.Time
	ready        bool
}

// New creates an App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	a := &App{
		Config:   cfg,
		Echo:     echo.New(),
		now:      time.Now,
		siteInfo: content.DefaultSiteInfo(),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}
	a.Config.setDefaults()
	if a.Log == nil {
		a.Log = logging.Nop()
	}
	return a
}

// Setup builds the content sources, middleware and routes. Start calls it;
// tests call it directly and drive a.Echo with httptest.
func (a *App) Setup(ctx context.Context) error {
	if a.ready {
		return nil
	}
	if a.Config.SessionSecret == "" {
		return errors.New("unopro: SessionSecret is required")
	}

	a.fetcher = content.NewFetcher(a.Config.HTTP.FetchTimeout)

	if a.Posts == nil {
		layout, err := content.ParseLayout(a.Config.Blog.Layout)
		if err != nil {
			return fmt.Errorf("unopro: %w", err)
		}
		src, err := content.NewBlogSource(a.fetcher, content.BlogSourceConfig{
			Layout:   layout,
			IndexURL: a.Config.Blog.IndexURL,
			PostURL:  a.Config.Blog.PostURL,
		})
		if err != nil {
			return fmt.Errorf("unopro: init blog source: %w", err)
		}
		a.Posts = NewBlogCache(src, a.Config.Blog.CacheTTL)
	}

	if a.Forms == nil {
		a.Forms = forms.NewWebhookClient(forms.WebhookConfig{
			ContactURL: a.Config.Webhooks.Contact,
			CareersURL: a.Config.Webhooks.Careers,
			Timeout:    a.Config.HTTP.WebhookTimeout,
		})
	}

	a.limiter = NewSubmissionLimiter(a.Config.Submissions.Max, a.Config.Submissions.Window)
	a.thumbs = gallery.NewThumbnailer(a.Config.StaticDir, time.Hour)

	pages, err := navigation.NewTable(a.pageHandlers())
	if err != nil {
		return fmt.Errorf("unopro: %w", err)
	}
	a.pages = pages

	if err := a.RefreshSiteInfo(ctx); err != nil {
		a.Log.Warn().Err(err).Str("location", a.Config.SiteInfoURL).Msg("using default business info")
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start sets the app up and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(context.Background()); err != nil {
		return err
	}
	a.Log.Info().Str("addr", a.Config.Addr).Str("url", a.Config.URL).Msg("listening")
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	return nil
}

// SiteInfo returns the current business info snapshot.
func (a *App) SiteInfo() content.SiteInfo {
	a.siteMu.RLock()
	defer a.siteMu.RUnlock()
	return a.siteInfo
}

// RefreshSiteInfo reloads the business config. On failure the defaults are
// installed and the error is returned.
func (a *App) RefreshSiteInfo(ctx context.Context) error {
	info, err := content.LoadSiteInfo(ctx, a.fetcher, a.Config.SiteInfoURL)
	a.siteMu.Lock()
	a.siteInfo = info
	a.siteMu.Unlock()
	return err
}

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/gallery/thumb/*", a.handleThumbnail)

	e.GET("/", a.handleHome)
	e.GET("/services/", a.handleServices)
	e.GET("/services/:section/", a.handleServices)
	e.GET("/gallery/", a.handleGallery)
	e.GET("/about/", a.handleAbout)
	e.GET("/contact/", a.handleContact)
	e.POST("/contact/", a.handleContactSubmit)
	e.GET("/careers/", a.handleCareers)
	e.POST("/careers/", a.handleCareersSubmit, a.careersBodyLimit)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/page/:page/", a.handleBlog)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/p/:page/", a.handleAnyPage)

	// Site images are addressed from the root, e.g. /banner1.jpg.
	e.Static("/", a.Config.StaticDir)
}
