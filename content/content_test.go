package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unoproservices/unopro/blog"
)

func serveJSON(t *testing.T, routes map[string]any) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		if raw, isRaw := body.(string); isRaw {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(raw))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestGetJSONSendsNoStore(t *testing.T) {
	var gotCache, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCache = r.Header.Get("Cache-Control")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	var out struct{ OK bool }
	require.NoError(t, NewFetcher(time.Second).GetJSON(context.Background(), srv.URL, &out))
	assert.True(t, out.OK)
	assert.Equal(t, "no-store", gotCache)
	assert.Equal(t, "application/json", gotAccept)
}

func TestGetJSONStatusErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()
	f := NewFetcher(time.Second)

	var v any
	err := f.GetJSON(context.Background(), srv.URL+"/missing", &v)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	err = f.GetJSON(context.Background(), srv.URL+"/broken", &v)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadGateway, se.Code)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestGetJSONMalformed(t *testing.T) {
	srv, _ := serveJSON(t, map[string]any{"/bad": `[{"id": 1,`})
	var posts []blog.Post
	err := NewFetcher(time.Second).GetJSON(context.Background(), srv.URL+"/bad", &posts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestGetJSONHonoursContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var v any
	err := NewFetcher(0).GetJSON(ctx, srv.URL, &v)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestGetJSONLocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"siteInfo":{"name":"Local"}}`), 0o644))

	var doc siteInfoDocument
	require.NoError(t, NewFetcher(0).GetJSON(context.Background(), path, &doc))
	require.NotNil(t, doc.SiteInfo)
	assert.Equal(t, "Local", doc.SiteInfo.Name)

	err := NewFetcher(0).GetJSON(context.Background(), filepath.Join(dir, "nope.json"), &doc)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoadSiteInfo(t *testing.T) {
	srv, _ := serveJSON(t, map[string]any{
		"/config.json": `{"siteInfo":{"name":"Uno Pro","phone":"(312) 555-0199","email":"hi@example.com","hours":["Daily 8-5"]}}`,
		"/empty.json":  `{}`,
	})
	f := NewFetcher(time.Second)

	info, err := LoadSiteInfo(context.Background(), f, srv.URL+"/config.json")
	require.NoError(t, err)
	assert.Equal(t, "Uno Pro", info.Name)
	assert.Equal(t, "13125550199", info.PhoneDigits())
	assert.Equal(t, []string{"Daily 8-5"}, info.Hours)
	assert.Equal(t, DefaultSiteInfo().Address, info.Address, "missing fields fall back to defaults")

	info, err = LoadSiteInfo(context.Background(), f, srv.URL+"/empty.json")
	require.NoError(t, err)
	assert.Equal(t, DefaultSiteInfo(), info)
}

func TestLoadSiteInfoFailureReturnsDefaults(t *testing.T) {
	srv, _ := serveJSON(t, map[string]any{})
	info, err := LoadSiteInfo(context.Background(), NewFetcher(time.Second), srv.URL+"/config.json")
	require.Error(t, err)
	assert.Equal(t, DefaultSiteInfo(), info)
	assert.Equal(t, "(773) 376-8058", info.Phone)
	assert.Equal(t, "17733768058", info.PhoneDigits())
	assert.Equal(t, "unoproservices@gmail.com", info.Email)
}

func TestSanitize(t *testing.T) {
	s := NewSanitizer()
	tests := []struct {
		name    string
		in      string
		keep    []string
		dropped []string
	}{
		{
			name:    "script and style",
			in:      `<p>Hello</p><script>alert(1)</script><style>p{}</style>`,
			keep:    []string{"<p>Hello</p>"},
			dropped: []string{"script", "alert", "style"},
		},
		{
			name:    "event handlers",
			in:      `<img src="/a.jpg" onerror="steal()"><p onclick="x()">Tap</p>`,
			keep:    []string{`src="/a.jpg"`, "Tap"},
			dropped: []string{"onerror", "onclick", "steal"},
		},
		{
			name:    "javascript urls",
			in:      `<a href="java&#x09;script:alert(1)">bad</a><a href="/blog/">good</a>`,
			keep:    []string{`href="/blog/"`, "bad", "good"},
			dropped: []string{"javascript"},
		},
		{
			name:    "frames and forms",
			in:      `<h2>Tips</h2><iframe src="https://evil"></iframe><form><input name="x"></form>`,
			keep:    []string{"<h2>Tips</h2>"},
			dropped: []string{"iframe", "form", "input"},
		},
		{
			name: "ordinary markup",
			in:   `<h2>Spring</h2><ul><li><strong>Rake</strong></li></ul>`,
			keep: []string{"<h2>Spring</h2>", "<li><strong>Rake</strong></li>"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := s.Sanitize(tt.in)
			require.NoError(t, err)
			for _, k := range tt.keep {
				assert.Contains(t, out, k)
			}
			for _, d := range tt.dropped {
				assert.NotContains(t, strings.ToLower(out), d)
			}
		})
	}

	out, err := s.Sanitize("   ")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout("")
	require.NoError(t, err)
	assert.Equal(t, LayoutCombined, l)

	l, err = ParseLayout(" Per-Slug ")
	require.NoError(t, err)
	assert.Equal(t, LayoutPerSlug, l)

	_, err = ParseLayout("sharded")
	assert.Error(t, err)
}

func TestNewBlogSourceValidates(t *testing.T) {
	_, err := NewBlogSource(NewFetcher(0), BlogSourceConfig{})
	assert.Error(t, err)

	_, err = NewBlogSource(NewFetcher(0), BlogSourceConfig{Layout: LayoutPerSlug, IndexURL: "x", PostURL: "y.json"})
	assert.Error(t, err)

	s, err := NewBlogSource(NewFetcher(0), BlogSourceConfig{IndexURL: "x"})
	require.NoError(t, err)
	assert.Equal(t, LayoutCombined, s.Layout())
}

const combinedPosts = `[
 {"id":1,"slug":"spring-cleanup","title":"Spring Cleanup","date":"2024-03-01","intro":"Rake","content":"<p>Rake</p><script>x()</script>"},
 {"id":2,"slug":"","title":"Draft","date":"2024-04-01","intro":"","content":""},
 {"id":3,"slug":"first-mow","title":"First Mow","date":"2024-04-15","intro":"Mow","content":"<p>Mow high</p>"}
]`

func TestBlogSourceCombined(t *testing.T) {
	srv, _ := serveJSON(t, map[string]any{"/blog-posts.json": combinedPosts})
	s, err := NewBlogSource(NewFetcher(time.Second), BlogSourceConfig{IndexURL: srv.URL + "/blog-posts.json"})
	require.NoError(t, err)

	posts, err := s.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2, "posts without a slug are dropped")

	post, all, err := s.GetPost(context.Background(), "spring-cleanup")
	require.NoError(t, err)
	assert.Equal(t, "Spring Cleanup", post.Title)
	assert.Contains(t, post.Content, "<p>Rake</p>")
	assert.NotContains(t, post.Content, "script")
	assert.Len(t, all, 2)

	_, all, err = s.GetPost(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Len(t, all, 2)
}

func TestBlogSourceCombinedFetchFailure(t *testing.T) {
	srv, _ := serveJSON(t, map[string]any{"/blog-posts.json": "oops"})
	s, err := NewBlogSource(NewFetcher(time.Second), BlogSourceConfig{IndexURL: srv.URL + "/blog-posts.json"})
	require.NoError(t, err)

	posts, err := s.ListPosts(context.Background())
	assert.Error(t, err)
	assert.Nil(t, posts)

	_, all, err := s.GetPost(context.Background(), "spring-cleanup")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Nil(t, all)
}

func TestBlogSourcePerSlug(t *testing.T) {
	srv, hits := serveJSON(t, map[string]any{
		"/blogs/blogs.json": []blog.Post{
			{ID: 1, Slug: "spring-cleanup", Title: "Spring Cleanup", Date: "2024-03-01"},
			{ID: 3, Slug: "first-mow", Title: "First Mow", Date: "2024-04-15"},
		},
		"/blogs/first-mow.json": blog.Post{ID: 3, Title: "First Mow", Date: "2024-04-15", Content: `<p onclick="x()">Mow high</p>`},
	})
	s, err := NewBlogSource(NewFetcher(time.Second), BlogSourceConfig{
		Layout:   LayoutPerSlug,
		IndexURL: srv.URL + "/blogs/blogs.json",
		PostURL:  srv.URL + "/blogs/{slug}.json",
	})
	require.NoError(t, err)

	post, all, err := s.GetPost(context.Background(), "first-mow")
	require.NoError(t, err)
	assert.Equal(t, "first-mow", post.Slug, "slug defaults to the requested one")
	assert.Equal(t, "<p>Mow high</p>", post.Content)
	assert.Len(t, all, 2)
	assert.Equal(t, int32(2), atomic.LoadInt32(hits), "index and detail fetched once each")

	_, all, err = s.GetPost(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Len(t, all, 2, "index still available for related posts")

	_, all, err = s.GetPost(context.Background(), "")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Len(t, all, 2)
}

func TestBlogSourcePerSlugIndexFailure(t *testing.T) {
	srv, _ := serveJSON(t, map[string]any{
		"/blogs/first-mow.json": blog.Post{ID: 3, Slug: "first-mow"},
	})
	s, err := NewBlogSource(NewFetcher(time.Second), BlogSourceConfig{
		Layout:   LayoutPerSlug,
		IndexURL: srv.URL + "/blogs/blogs.json",
		PostURL:  srv.URL + "/blogs/{slug}.json",
	})
	require.NoError(t, err)

	_, all, err := s.GetPost(context.Background(), "first-mow")
	require.Error(t, err)
	assert.Nil(t, all)
}
