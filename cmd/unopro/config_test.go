package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unoproservices/unopro"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "Uno Pro Services", cfg.Site.Name)
	assert.Equal(t, ":3000", cfg.Site.Addr)
	assert.Equal(t, "combined", cfg.Site.Blog.Layout)
	assert.Equal(t, time.Duration(0), cfg.Site.Blog.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.Site.HTTP.FetchTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Site.Submissions.Window)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, unopro.DefaultContactWebhook, cfg.Site.Webhooks.Contact)
	assert.Equal(t, unopro.DefaultCareersWebhook, cfg.Site.Webhooks.Careers)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	yaml := `
url: https://unoproservices.com
blog:
  layout: per-slug
  index_url: https://example.com/blogs.json
  post_url: https://example.com/posts/{slug}.json
  cache_ttl: 5m
webhooks:
  contact: https://hooks.example.com/quote
log:
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("UNOPRO_SESSION_SECRET=from-dotenv\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("UNOPRO_SESSION_SECRET") })
	t.Setenv("UNOPRO_WEBHOOKS_CAREERS", "https://hooks.example.com/careers")
	t.Setenv("UNOPRO_SUBMISSIONS_MAX", "9")

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "https://unoproservices.com", cfg.Site.URL)
	assert.Equal(t, "per-slug", cfg.Site.Blog.Layout)
	assert.Equal(t, "https://example.com/posts/{slug}.json", cfg.Site.Blog.PostURL)
	assert.Equal(t, 5*time.Minute, cfg.Site.Blog.CacheTTL)
	assert.Equal(t, "https://hooks.example.com/quote", cfg.Site.Webhooks.Contact)
	assert.Equal(t, "https://hooks.example.com/careers", cfg.Site.Webhooks.Careers)
	assert.Equal(t, 9, cfg.Site.Submissions.Max)
	assert.Equal(t, "from-dotenv", cfg.Site.SessionSecret)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := loadConfig("nope.yaml")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "unopro dev\n", out.String())
}
