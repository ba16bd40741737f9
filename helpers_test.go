package unopro

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unoproservices/unopro/blog"
	"github.com/unoproservices/unopro/catalog"
	"github.com/unoproservices/unopro/content"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base string
		segs []string
		want string
	}{
		{"https://example.com", nil, "https://example.com/"},
		{"https://example.com/", []string{"blog", "spring-aeration"}, "https://example.com/blog/spring-aeration/"},
		{"https://example.com/site", []string{"sitemap.xml"}, "https://example.com/site/sitemap.xml/"},
		{"http://localhost:3000", []string{"blog"}, "http://localhost:3000/blog/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BuildURL(tt.base, tt.segs...))
	}
}

func TestLocalBusinessJsonLD(t *testing.T) {
	info := content.DefaultSiteInfo()
	info.Phone = "(312) 555-0100"
	info.Hours = []string{"Mo-Fr 07:00-18:00"}

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(LocalBusinessJsonLD(SiteConfig{URL: "https://example.com"}, info)), &got))

	assert.Equal(t, "LocalBusiness", got["@type"])
	assert.Equal(t, "https://example.com/", got["url"])
	assert.Equal(t, "(312) 555-0100", got["telephone"])
	assert.Equal(t, []interface{}{"Mo-Fr 07:00-18:00"}, got["openingHours"])
	offers, ok := got["makesOffer"].([]interface{})
	require.True(t, ok)
	assert.Len(t, offers, len(catalog.ServiceTitles()))
}

func TestBlogPostingJsonLD(t *testing.T) {
	post := blog.Post{Slug: "fall-cleanup", Title: "Fall Cleanup", Date: "2025-10-01", Intro: "Leaves."}

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(BlogPostingJsonLD(post, SiteConfig{URL: "https://example.com", Name: "Uno Pro Services"})), &got))

	assert.Equal(t, "BlogPosting", got["@type"])
	assert.Equal(t, "Fall Cleanup", got["headline"])
	assert.Equal(t, "2025-10-01", got["datePublished"])
	assert.Equal(t, "https://example.com/blog/fall-cleanup/", got["url"])
	assert.Contains(t, got, "publisher")

	require.NoError(t, json.Unmarshal([]byte(BlogPostingJsonLD(post, SiteConfig{URL: "https://example.com"})), &got))
	assert.Equal(t, "BlogPosting", got["@type"])
}
