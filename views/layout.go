package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/unoproservices/unopro/catalog"
	"github.com/unoproservices/unopro/navigation"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// Layout renders a complete document around body.
func Layout(c Chrome, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw("<!doctype html>")
		h.open("html", "lang", "en")
		head(h, c)
		h.open("body",
			"class", "min-h-screen bg-white text-gray-900 antialiased",
			"hx-sync", "#main:replace",
			"hx-indicator", "#loading",
		)
		header(h, c, false)
		loading(h)
		h.open("main", "id", "main")
		h.child(body)
		h.close("main")
		footer(h, c)
		h.close("body")
		h.close("html")
	})
}

// loading is shown by htmx while a navigation request is in flight. site.js
// swaps in the triggering link's data-loading-text.
func loading(h *htmlWriter) {
	h.open("div", "id", "loading", "class", "htmx-indicator fixed inset-x-0 top-20 z-40 flex justify-center", "role", "status", "aria-live", "polite")
	h.el("span", loadingDefault, "id", "loading-text", "class", "rounded-full bg-white px-6 py-3 text-xl text-gray-600 shadow-lg")
	h.close("div")
}

// Fragment renders body for an HTMX swap into #main, with the new title and
// an out-of-band update of the active navigation link.
func Fragment(c Chrome, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.el("title", title(c))
		h.child(body)
		header(h, c, true)
	})
}

func title(c Chrome) string {
	if c.Meta.Title == "" {
		return c.Site.Name
	}
	return c.Meta.Title
}

func head(h *htmlWriter, c Chrome) {
	h.open("head")
	h.void("meta", "charset", "utf-8")
	h.void("meta", "name", "viewport", "content", "width=device-width, initial-scale=1")
	h.el("title", title(c))
	if c.Meta.Description != "" {
		h.void("meta", "name", "description", "content", c.Meta.Description)
		h.void("meta", "property", "og:description", "content", c.Meta.Description)
	}
	if c.Meta.URL != "" {
		h.void("link", "rel", "canonical", "href", c.Meta.URL)
		h.void("meta", "property", "og:url", "content", c.Meta.URL)
	}
	ogType := c.Meta.OGType
	if ogType == "" {
		ogType = "website"
	}
	h.void("meta", "property", "og:type", "content", ogType)
	h.void("meta", "property", "og:title", "content", title(c))
	h.void("meta", "property", "og:site_name", "content", c.Site.Name)
	h.void("meta", "name", "theme-color", "content", "#B51E1E")
	h.void("link", "rel", "icon", "href", "/favicon.svg", "type", "image/svg+xml")
	h.void("link", "rel", "alternate", "type", "application/rss+xml", "title", c.Site.Name, "href", "/feed.xml")
	h.void("link", "rel", "stylesheet", "href", "/public/styles.css")
	if c.Meta.JSONLD != "" {
		h.open("script", "type", "application/ld+json")
		h.raw(c.Meta.JSONLD)
		h.close("script")
	}
	h.open("script", "src", htmxSrc, "defer", "defer")
	h.close("script")
	h.open("script", "src", "/public/site.js", "defer", "defer")
	h.close("script")
	h.close("head")
}

func header(h *htmlWriter, c Chrome, oob bool) {
	h.open("header", attrs(
		[]string{"id", "site-header", "class", "sticky top-0 z-40 border-b border-gray-100 bg-white/95 backdrop-blur"},
		when(oob, "hx-swap-oob", "true"),
	)...)
	h.open("div", "class", "mx-auto flex max-w-7xl items-center justify-between px-4 py-3")
	h.open("a", attrs(navAttrs("/"), []string{"class", "flex items-center gap-2", "aria-label", c.Site.Name})...)
	h.void("img", "src", "/uno-pro-services-logo.png", "alt", c.Site.Name, "class", "h-12 w-auto")
	h.close("a")

	h.open("nav", "class", "hidden items-center gap-1 md:flex", "aria-label", "Main")
	for _, item := range catalog.Nav() {
		page := navigation.PageID(item.Page)
		active := c.Current == page || (page == navigation.Blog && c.Current == navigation.BlogPost)
		h.el("a", item.Name, attrs(
			navAttrs(PagePath(page, "")),
			[]string{"class", navLinkClass(active)},
			when(active, "aria-current", "page"),
		)...)
	}
	h.el("a", "Get a Free Quote", attrs(
		navAttrs(PagePath(navigation.Contact, "")),
		[]string{"class", "ml-3 rounded-lg bg-brand px-5 py-2.5 text-sm font-bold text-white hover:bg-brand-dark"},
	)...)
	h.close("nav")

	h.open("a", "href", "tel:"+c.Site.Info.PhoneDigits(), "class", "md:hidden rounded-lg bg-brand px-3 py-2 text-sm font-bold text-white")
	h.text("Call " + c.Site.Info.Phone)
	h.close("a")
	h.close("div")
	h.close("header")
}

func footer(h *htmlWriter, c Chrome) {
	info := c.Site.Info
	h.open("footer", "class", "bg-gray-900 text-gray-300")
	h.open("div", "class", "mx-auto grid max-w-7xl gap-10 px-4 py-14 md:grid-cols-4")

	h.open("div")
	h.void("img", "src", "/uno-pro-services-logo-footer.png", "alt", info.Name, "class", "mb-4 h-14 w-auto")
	h.el("p", "Uno Pro Services provides dependable lawn care, fertilizing, leaf cleanups, snow shoveling, and gardening across Chicago and nearby areas. We serve both residential and commercial properties with reliable, affordable service.", "class", "text-sm leading-relaxed")
	h.close("div")

	h.open("div")
	h.el("h3", "Quick Links", "class", "mb-4 text-lg font-bold text-white")
	h.open("ul", "class", "space-y-2")
	for _, item := range catalog.Nav() {
		h.open("li")
		h.el("a", item.Name, attrs(navAttrs(PagePath(navigation.PageID(item.Page), "")), []string{"class", "hover:text-white"})...)
		h.close("li")
	}
	h.open("li")
	h.el("a", "Careers", attrs(navAttrs(PagePath(navigation.Careers, "")), []string{"class", "hover:text-white"})...)
	h.close("li")
	h.close("ul")
	h.close("div")

	h.open("div")
	h.el("h3", "Our Services", "class", "mb-4 text-lg font-bold text-white")
	h.open("ul", "class", "space-y-2")
	for _, s := range catalog.Services() {
		h.open("li")
		h.el("a", s.Title, attrs(navAttrs(PagePath(navigation.Services, s.Slug)), []string{"class", "hover:text-white"})...)
		h.close("li")
	}
	h.close("ul")
	h.close("div")

	h.open("div")
	h.el("h3", "Contact Us", "class", "mb-4 text-lg font-bold text-white")
	h.open("ul", "class", "space-y-3 text-sm")
	h.open("li")
	h.el("a", info.Phone, "href", "tel:"+info.PhoneDigits(), "class", "hover:text-white")
	h.close("li")
	h.open("li")
	h.el("a", info.Email, "href", "mailto:"+info.Email, "class", "hover:text-white")
	h.close("li")
	h.open("li")
	if info.MapLink != "" {
		h.el("a", info.Address, "href", info.MapLink, "target", "_blank", "rel", "noopener noreferrer", "class", "hover:text-white")
	} else {
		h.text(info.Address)
	}
	h.close("li")
	h.el("li", "Se Habla Español", "class", "font-semibold text-white")
	h.close("ul")
	h.close("div")

	h.close("div")
	h.open("div", "class", "border-t border-gray-800 py-6 text-center text-sm")
	h.text("© " + strconv.Itoa(c.Site.Year) + " " + info.Name + ". All rights reserved.")
	h.close("div")
	h.close("footer")
}
