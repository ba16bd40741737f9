package content

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/unoproservices/unopro/blog"
)

// Layout selects how posts are laid out in the remote store.
type Layout string

const (
	// LayoutCombined is a single JSON array of complete posts.
	LayoutCombined Layout = "combined"
	// LayoutPerSlug is an index array of summaries plus one JSON document per
	// post, addressed by substituting {slug} into a URL template.
	LayoutPerSlug Layout = "per-slug"
)

// ParseLayout maps a configuration value to a Layout. Empty selects combined.
func ParseLayout(s string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case "", LayoutCombined:
		return LayoutCombined, nil
	case LayoutPerSlug:
		return LayoutPerSlug, nil
	}
	return "", fmt.Errorf("content: unknown blog layout %q", s)
}

// BlogSourceConfig describes where posts live.
type BlogSourceConfig struct {
	Layout Layout
	// IndexURL is the listing array (combined: the full post array).
	IndexURL string
	// PostURL is the per-post template, e.g. https://host/blogs/{slug}.json.
	// Only used by LayoutPerSlug.
	PostURL string
}

// BlogSource reads blog posts from the remote store. Every call fetches
// afresh; caching, if wanted, is layered on top.
type BlogSource struct {
	fetcher   *Fetcher
	cfg       BlogSourceConfig
	sanitizer *Sanitizer
}

// NewBlogSource creates a BlogSource.
func NewBlogSource(f *Fetcher, cfg BlogSourceConfig) (*BlogSource, error) {
	if cfg.Layout == "" {
		cfg.Layout = LayoutCombined
	}
	if cfg.IndexURL == "" {
		return nil, errors.New("content: blog index url is required")
	}
	if cfg.Layout == LayoutPerSlug && !strings.Contains(cfg.PostURL, "{slug}") {
		return nil, errors.New("content: per-slug layout needs a post url containing {slug}")
	}
	return &BlogSource{fetcher: f, cfg: cfg, sanitizer: NewSanitizer()}, nil
}

// Layout reports the configured layout.
func (s *BlogSource) Layout() Layout { return s.cfg.Layout }

// ListPosts returns the listing collection, unsorted, without posts lacking a
// slug.
func (s *BlogSource) ListPosts(ctx context.Context) ([]blog.Post, error) {
	var posts []blog.Post
	if err := s.fetcher.GetJSON(ctx, s.cfg.IndexURL, &posts); err != nil {
		return nil, err
	}
	return withSlugs(posts), nil
}

// GetPost returns the post with the given slug together with the listing
// collection its neighbours are taken from. ErrNotFound is returned, with the
// collection, when no post has that slug.
func (s *BlogSource) GetPost(ctx context.Context, slug string) (blog.Post, []blog.Post, error) {
	if s.cfg.Layout == LayoutPerSlug {
		return s.getPerSlug(ctx, slug)
	}
	posts, err := s.ListPosts(ctx)
	if err != nil {
		return blog.Post{}, nil, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return s.clean(p), posts, nil
		}
	}
	return blog.Post{}, posts, ErrNotFound
}

func (s *BlogSource) getPerSlug(ctx context.Context, slug string) (blog.Post, []blog.Post, error) {
	if slug == "" {
		posts, err := s.ListPosts(ctx)
		if err != nil {
			return blog.Post{}, nil, err
		}
		return blog.Post{}, posts, ErrNotFound
	}

	var (
		posts   []blog.Post
		detail  blog.Post
		missing bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = s.ListPosts(gctx)
		return err
	})
	g.Go(func() error {
		loc := strings.ReplaceAll(s.cfg.PostURL, "{slug}", url.PathEscape(slug))
		err := s.fetcher.GetJSON(gctx, loc, &detail)
		if errors.Is(err, ErrNotFound) {
			// Keep the index fetch alive so related posts can still be shown.
			missing = true
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return blog.Post{}, nil, err
	}
	if detail.Slug == "" {
		detail.Slug = slug
	}
	if missing || detail.Slug != slug {
		return blog.Post{}, posts, ErrNotFound
	}
	return s.clean(detail), posts, nil
}

func (s *BlogSource) clean(p blog.Post) blog.Post {
	if p.Content == "" {
		return p
	}
	html, err := s.sanitizer.Sanitize(p.Content)
	if err != nil {
		p.Content = ""
		return p
	}
	p.Content = html
	return p
}

func withSlugs(posts []blog.Post) []blog.Post {
	out := posts[:0:0]
	for _, p := range posts {
		if strings.TrimSpace(p.Slug) == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
