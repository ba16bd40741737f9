package unopro

import (
	"time"

	"github.com/unoproservices/unopro/forms"
	"github.com/unoproservices/unopro/logging"
)

// SiteConfig holds all configuration for the site.
type SiteConfig struct {
	Name        string `mapstructure:"name"`        // default "Uno Pro Services"
	URL         string `mapstructure:"url"`         // canonical URL (default "http://localhost:3000")
	Description string `mapstructure:"description"` // meta description, RSS channel
	Addr        string `mapstructure:"addr"`        // listen address (default ":3000")
	StaticDir   string `mapstructure:"static_dir"`  // default "public"

	// SiteInfoURL is the business config document, a URL or a local path.
	SiteInfoURL string `mapstructure:"site_info_url"`

	Blog        BlogConfig       `mapstructure:"blog"`
	Webhooks    WebhookConfig    `mapstructure:"webhooks"`
	HTTP        HTTPConfig       `mapstructure:"http"`
	Submissions SubmissionConfig `mapstructure:"submissions"`

	SessionSecret string `mapstructure:"session_secret"` // required
	CookieSecure  bool   `mapstructure:"cookie_secure"`  // set true for HTTPS
}

// BlogConfig locates the remote post store.
type BlogConfig struct {
	Layout   string `mapstructure:"layout"`    // "combined" (default) or "per-slug"
	IndexURL string `mapstructure:"index_url"` // default "blog-posts.json" under the static dir
	PostURL  string `mapstructure:"post_url"`  // per-slug only; contains {slug}
	// CacheTTL of zero disables caching: every visit re-fetches.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// Endpoints the forms post to unless configured otherwise.
const (
	DefaultContactWebhook = "https://app.10xspeed.in/webhook/unoproservices-free-quote"
	DefaultCareersWebhook = "https://app.10xspeed.in/webhook/careers-form"
)

type WebhookConfig struct {
	Contact string `mapstructure:"contact"`
	Careers string `mapstructure:"careers"`
}

type HTTPConfig struct {
	FetchTimeout   time.Duration `mapstructure:"fetch_timeout"`   // default 10s
	WebhookTimeout time.Duration `mapstructure:"webhook_timeout"` // default 30s
}

// SubmissionConfig limits form posts per client IP.
type SubmissionConfig struct {
	Max    int           `mapstructure:"max"`    // default 5
	Window time.Duration `mapstructure:"window"` // default 10m
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Uno Pro Services"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Description == "" {
		c.Description = "Lawn care, fertilizing, leaf cleanups, snow shoveling, and gardening for Chicago homes and businesses."
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.SiteInfoURL == "" {
		c.SiteInfoURL = c.StaticDir + "/config.json"
	}
	if c.Blog.Layout == "" {
		c.Blog.Layout = "combined"
	}
	if c.Blog.IndexURL == "" {
		c.Blog.IndexURL = c.StaticDir + "/blog-posts.json"
	}
	if c.Webhooks.Contact == "" {
		c.Webhooks.Contact = DefaultContactWebhook
	}
	if c.Webhooks.Careers == "" {
		c.Webhooks.Careers = DefaultCareersWebhook
	}
	if c.HTTP.FetchTimeout == 0 {
		c.HTTP.FetchTimeout = 10 * time.Second
	}
	if c.HTTP.WebhookTimeout == 0 {
		c.HTTP.WebhookTimeout = 30 * time.Second
	}
	if c.Submissions.Max == 0 {
		c.Submissions.Max = 5
	}
	if c.Submissions.Window == 0 {
		c.Submissions.Window = 10 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithPostSource replaces the configured remote blog store.
func WithPostSource(src PostSource) Option {
	return func(a *App) {
		a.Posts = src
	}
}

// WithSubmitter replaces the webhook client used by the forms.
func WithSubmitter(s forms.Submitter) Option {
	return func(a *App) {
		a.Forms = s
	}
}

// WithLogger sets the application logger.
func WithLogger(l *logging.Logger) Option {
	return func(a *App) {
		a.Log = l
	}
}

// WithClock overrides time.Now, for the footer year and tests.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}
