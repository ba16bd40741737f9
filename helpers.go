package unopro

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/unoproservices/unopro/blog"
	"github.com/unoproservices/unopro/catalog"
	"github.com/unoproservices/unopro/content"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// LocalBusinessJsonLD returns a JSON-LD string for a LocalBusiness schema
// built from the site config and the business info.
func LocalBusinessJsonLD(cfg SiteConfig, info content.SiteInfo) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "LocalBusiness",
		"name":        info.Name,
		"url":         BuildURL(cfg.URL),
		"description": cfg.Description,
		"telephone":   info.Phone,
		"email":       info.Email,
		"areaServed":  "Chicago, IL",
		"address": map[string]string{
			"@type":           "PostalAddress",
			"addressLocality": info.Address,
		},
		"knowsLanguage": []string{"en", "es"},
	}
	if len(info.Hours) > 0 {
		data["openingHours"] = info.Hours
	}
	if info.MapLink != "" {
		data["hasMap"] = info.MapLink
	}
	services := catalog.ServiceTitles()
	offers := make([]map[string]interface{}, 0, len(services))
	for _, s := range services {
		offers = append(offers, map[string]interface{}{
			"@type":       "Offer",
			"itemOffered": map[string]string{"@type": "Service", "name": s},
		})
	}
	data["makesOffer"] = offers
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJsonLD(post blog.Post, cfg SiteConfig) string {
	postURL := BuildURL(cfg.URL, "blog", post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Intro,
		"datePublished": post.Date,
		"url":           postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if cfg.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		}
		data["author"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
