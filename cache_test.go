package unopro

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unoproservices/unopro/content"
)

func TestBlogCachePassthrough(t *testing.T) {
	src := &fakePosts{posts: testPosts(3)}
	c := NewBlogCache(src, 0)

	_, err := c.ListPosts(context.Background())
	require.NoError(t, err)
	_, err = c.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestBlogCacheListPosts(t *testing.T) {
	src := &fakePosts{posts: testPosts(3)}
	c := NewBlogCache(src, time.Minute)

	first, err := c.ListPosts(context.Background())
	require.NoError(t, err)
	second, err := c.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.calls)

	c.Invalidate()
	_, err = c.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestBlogCacheDoesNotCacheFailures(t *testing.T) {
	src := &fakePosts{err: errors.New("timeout")}
	c := NewBlogCache(src, time.Minute)

	_, err := c.ListPosts(context.Background())
	require.Error(t, err)
	_, _, err = c.GetPost(context.Background(), "post-1")
	require.Error(t, err)

	src.err = nil
	src.posts = testPosts(1)
	posts, err := c.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 1)
	post, _, err := c.GetPost(context.Background(), "post-1")
	require.NoError(t, err)
	assert.Equal(t, "Post 1", post.Title)
}

func TestBlogCacheGetPost(t *testing.T) {
	src := &fakePosts{posts: testPosts(2)}
	c := NewBlogCache(src, time.Minute)

	post, posts, err := c.GetPost(context.Background(), "post-2")
	require.NoError(t, err)
	assert.Equal(t, "Post 2", post.Title)
	assert.Len(t, posts, 2)

	_, _, err = c.GetPost(context.Background(), "post-2")
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls)
}

func TestBlogCacheRemembersMissingSlug(t *testing.T) {
	src := &fakePosts{posts: testPosts(2)}
	c := NewBlogCache(src, time.Minute)

	_, _, err := c.GetPost(context.Background(), "nope")
	assert.ErrorIs(t, err, content.ErrNotFound)
	_, posts, err := c.GetPost(context.Background(), "nope")
	assert.ErrorIs(t, err, content.ErrNotFound)
	assert.Len(t, posts, 2)
	assert.Equal(t, 1, src.calls)
}
