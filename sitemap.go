package unopro

import (
	"encoding/xml"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/unoproservices/unopro/blog"
	"github.com/unoproservices/unopro/catalog"
	"github.com/unoproservices/unopro/navigation"
	"github.com/unoproservices/unopro/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// sitemapURLs lists the static pages, every blog listing page and every post.
// posts must be sorted.
func (a *App) sitemapURLs(posts []blog.Post) []sitemapURL {
	base := strings.TrimSuffix(a.Config.URL, "/")
	loc := func(id navigation.PageID, param string) string {
		return base + views.PagePath(id, param)
	}
	urls := []sitemapURL{
		{Loc: loc(navigation.Home, "")},
		{Loc: loc(navigation.Services, "")},
		{Loc: loc(navigation.Gallery, "")},
		{Loc: loc(navigation.About, "")},
		{Loc: loc(navigation.Contact, "")},
		{Loc: loc(navigation.Careers, "")},
	}
	for _, s := range catalog.Services() {
		urls = append(urls, sitemapURL{Loc: loc(navigation.Services, s.Slug)})
	}
	pages := blog.Paginate(posts, 1, blog.PageSize).Total
	for n := 1; n <= pages; n++ {
		urls = append(urls, sitemapURL{Loc: loc(navigation.Blog, strconv.Itoa(n))})
	}
	for _, p := range posts {
		lastMod := ""
		if t := p.Time(); !t.IsZero() {
			lastMod = t.Format("2006-01-02")
		}
		urls = append(urls, sitemapURL{
			Loc:     loc(navigation.BlogPost, p.Slug),
			LastMod: lastMod,
		})
	}
	return urls
}

func (a *App) renderSitemap(c echo.Context, posts []blog.Post) error {
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  a.sitemapURLs(posts),
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
