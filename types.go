package unopro

import (
	"context"

	"github.com/unoproservices/unopro/blog"
)

// PostSource is the remote blog store. content.BlogSource implements it for
// both storage layouts; BlogCache wraps any PostSource.
type PostSource interface {
	// ListPosts returns the unsorted collection.
	ListPosts(ctx context.Context) ([]blog.Post, error)
	// GetPost returns the post for slug and the collection it is resolved
	// against. A missing slug yields content.ErrNotFound with the collection.
	GetPost(ctx context.Context, slug string) (blog.Post, []blog.Post, error)
}
