package unopro

import (
	"context"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/unoproservices/unopro/blog"
	"github.com/unoproservices/unopro/content"
)

const listKey = "posts"

type cachedPost struct {
	post  blog.Post
	posts []blog.Post
	found bool
}

// BlogCache is an in-memory TTL cache in front of a PostSource. Failed
// fetches are never cached. A zero TTL makes it a passthrough.
type BlogCache struct {
	src   PostSource
	ttl   time.Duration
	items *cache.Cache
}

// NewBlogCache creates a BlogCache over src.
func NewBlogCache(src PostSource, ttl time.Duration) *BlogCache {
	c := &BlogCache{src: src, ttl: ttl}
	if ttl > 0 {
		c.items = cache.New(ttl, 2*ttl)
	}
	return c
}

func (c *BlogCache) enabled() bool {
	return c.items != nil
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *BlogCache) Invalidate() {
	if c.enabled() {
		c.items.Flush()
	}
}

// ListPosts returns the cached collection, loading it when stale.
func (c *BlogCache) ListPosts(ctx context.Context) ([]blog.Post, error) {
	if !c.enabled() {
		return c.src.ListPosts(ctx)
	}
	if v, ok := c.items.Get(listKey); ok {
		return v.([]blog.Post), nil
	}
	posts, err := c.src.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	c.items.SetDefault(listKey, posts)
	return posts, nil
}

// GetPost returns a cached post lookup. Not-found results are cached too, so
// a missing slug does not hit the store on every visit.
func (c *BlogCache) GetPost(ctx context.Context, slug string) (blog.Post, []blog.Post, error) {
	if !c.enabled() {
		return c.src.GetPost(ctx, slug)
	}
	key := "post:" + slug
	if v, ok := c.items.Get(key); ok {
		cp := v.(cachedPost)
		if !cp.found {
			return blog.Post{}, cp.posts, content.ErrNotFound
		}
		return cp.post, cp.posts, nil
	}
	post, posts, err := c.src.GetPost(ctx, slug)
	switch {
	case err == nil:
		c.items.SetDefault(key, cachedPost{post: post, posts: posts, found: true})
	case errors.Is(err, content.ErrNotFound):
		c.items.SetDefault(key, cachedPost{posts: posts})
	}
	return post, posts, err
}
