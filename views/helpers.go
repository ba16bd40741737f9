package views

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/unoproservices/unopro/navigation"
)

// PathEscape wraps url.PathEscape.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// PagePath is the address of a page, with its optional parameter.
func PagePath(page navigation.PageID, param string) string {
	switch page {
	case navigation.Home:
		return "/"
	case navigation.Services:
		if param != "" {
			return "/services/" + url.PathEscape(param) + "/"
		}
		return "/services/"
	case navigation.Blog:
		if n, err := strconv.Atoi(param); err == nil && n > 1 {
			return "/blog/page/" + strconv.Itoa(n) + "/"
		}
		return "/blog/"
	case navigation.BlogPost:
		return "/blog/" + url.PathEscape(param) + "/"
	case navigation.Gallery, navigation.About, navigation.Contact, navigation.Careers:
		return "/" + string(page) + "/"
	}
	return "/p/" + url.PathEscape(string(page)) + "/"
}

// navAttrs are the attributes of an in-site link: a plain href for full
// loads plus the HTMX attributes that swap only the main region.
func navAttrs(href string) []string {
	return []string{
		"href", href,
		"hx-get", href,
		"hx-target", "#main",
		"hx-swap", "innerHTML show:window:top",
		"hx-push-url", "true",
		"data-loading-text", loadingText(href),
	}
}

const loadingDefault = "Loading..."

func loadingText(href string) string {
	p := strings.SplitN(href, "?", 2)[0]
	switch {
	case p == "/blog/" || strings.HasPrefix(p, "/blog/page/"):
		return "Loading blog posts..."
	case strings.HasPrefix(p, "/blog/"):
		return "Loading blog post..."
	}
	return loadingDefault
}

func navLinkClass(active bool) string {
	base := "px-3 py-2 text-sm font-semibold transition-colors"
	if active {
		return base + " text-brand"
	}
	return base + " text-gray-800 hover:text-brand"
}

func fieldClass(hasError bool) string {
	base := "w-full rounded-lg border px-4 py-3 focus:outline-none focus:ring-2 focus:ring-brand"
	if hasError {
		return base + " border-red-500"
	}
	return base + " border-gray-300"
}

func pageButtonClass(active bool) string {
	base := "inline-flex h-10 min-w-10 items-center justify-center rounded-lg border px-3 text-sm font-semibold"
	if active {
		return base + " border-brand bg-brand text-white"
	}
	return base + " border-gray-300 bg-white text-gray-800 hover:border-brand"
}
