package unopro

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/unoproservices/unopro/blog"
)

// feedSize caps the number of posts in the feed.
const feedSize = 20

type rssFeed struct {
	XMLName   xml.Name   `xml:"rss"`
	Version   string     `xml:"version,attr"`
	AtomNS    string     `xml:"xmlns:atom,attr"`
	ContentNS string     `xml:"xmlns:content,attr"`
	Channel   rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string      `xml:"title"`
	Link          string      `xml:"link"`
	Self          rssAtomLink `xml:"atom:link"`
	Description   string      `xml:"description"`
	Language      string      `xml:"language"`
	Category      string      `xml:"category"`
	LastBuildDate string      `xml:"lastBuildDate,omitempty"`
	Items         []rssItem   `xml:"item"`
}

type rssAtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type rssContent struct {
	Value string `xml:",cdata"`
}

type rssItem struct {
	Title       string      `xml:"title"`
	Link        string      `xml:"link"`
	Description string      `xml:"description"`
	Content     *rssContent `xml:"content:encoded,omitempty"`
	PubDate     string      `xml:"pubDate,omitempty"`
	GUID        rssGUID     `xml:"guid"`
}

func rssDate(p blog.Post) string {
	if t := p.Time(); !t.IsZero() {
		return t.Format(time.RFC1123Z)
	}
	return ""
}

// feed builds the channel for the newest posts. posts must be sorted newest
// first. Post bodies, when the source carries them, go out as content:encoded.
func (a *App) feed(posts []blog.Post) rssFeed {
	if len(posts) > feedSize {
		posts = posts[:feedSize]
	}
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		link := BuildURL(a.Config.URL, "blog", p.Slug)
		item := rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Intro,
			PubDate:     rssDate(p),
			GUID:        rssGUID{IsPermaLink: true, Value: link},
		}
		if p.Content != "" {
			item.Content = &rssContent{Value: p.Content}
		}
		items = append(items, item)
	}

	ch := rssChannel{
		Title: a.Config.Name + " Blog",
		Link:  BuildURL(a.Config.URL, "blog"),
		Self: rssAtomLink{
			Href: BuildURL(a.Config.URL) + "feed.xml",
			Rel:  "self",
			Type: "application/rss+xml",
		},
		Description: a.Config.Description,
		Language:    "en-us",
		Category:    "Lawn Care",
		Items:       items,
	}
	if len(posts) > 0 {
		ch.LastBuildDate = rssDate(posts[0])
	}
	return rssFeed{
		Version:   "2.0",
		AtomNS:    "http://www.w3.org/2005/Atom",
		ContentNS: "http://purl.org/rss/1.0/modules/content/",
		Channel:   ch,
	}
}

func (a *App) renderRSS(c echo.Context, posts []blog.Post) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(a.feed(posts))
}
