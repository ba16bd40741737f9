package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/unoproservices/unopro/blog"
	"github.com/unoproservices/unopro/navigation"
)

func blogPageHref(n int) string {
	return PagePath(navigation.Blog, strconv.Itoa(n))
}

// BlogList is one page of the blog index.
func BlogList(d BlogListData) templ.Component {
	return component(func(h *htmlWriter) {
		hero(h, "/banner2.jpg", "Chicago Lawn & Property Blog", "Lawn care, snow service, and seasonal property tips for Chicago homeowners")

		h.open("section", "class", "bg-white py-16")
		h.open("div", "class", "mx-auto max-w-6xl px-4")
		switch {
		case d.Failed:
			h.open("div", "class", "py-16 text-center", "role", "alert")
			h.el("p", "We couldn't load blog posts right now. Please try again shortly.", "class", "text-xl text-gray-600")
			h.close("div")
		case len(d.Page.Items) == 0:
			h.open("div", "class", "py-16 text-center")
			h.el("p", "No blog posts found.", "class", "text-xl text-gray-600")
			h.close("div")
		default:
			h.open("div", "class", "grid gap-8 md:grid-cols-2")
			for _, p := range d.Page.Items {
				postCard(h, p)
			}
			h.close("div")
			pagination(h, d)
		}
		h.close("div")
		h.close("section")

		blogCTA(h)
	})
}

func postCard(h *htmlWriter, p blog.Post) {
	h.open("article", "class", "group rounded-2xl border border-gray-100 p-8 shadow-sm hover:shadow-xl")
	h.open("div", "class", "mb-3 text-sm text-gray-500")
	h.el("time", p.FormatDate(), "datetime", p.Date)
	h.close("div")
	h.open("h2", "class", "mb-3 text-2xl font-bold group-hover:text-brand")
	h.el("a", p.Title, navAttrs(PagePath(navigation.BlogPost, p.Slug))...)
	h.close("h2")
	h.el("p", p.Intro, "class", "mb-4 text-gray-600")
	h.el("a", "Read More", attrs(navAttrs(PagePath(navigation.BlogPost, p.Slug)), []string{"class", "font-semibold text-brand"})...)
	h.close("article")
}

func pagination(h *htmlWriter, d BlogListData) {
	pg := d.Page
	if pg.Total > 1 {
		h.open("nav", "class", "mt-12 flex items-center justify-center gap-2", "aria-label", "Pagination")
		if pg.HasPrev() {
			h.el("a", "‹", attrs(navAttrs(blogPageHref(pg.Current-1)), []string{"class", pageButtonClass(false), "aria-label", "Previous page", "rel", "prev"})...)
		} else {
			h.el("span", "‹", "class", pageButtonClass(false)+" cursor-not-allowed opacity-40", "aria-disabled", "true")
		}
		for _, n := range d.Window {
			active := n == pg.Current
			h.el("a", strconv.Itoa(n), attrs(
				navAttrs(blogPageHref(n)),
				[]string{"class", pageButtonClass(active)},
				when(active, "aria-current", "page"),
			)...)
		}
		if pg.HasNext() {
			h.el("a", "›", attrs(navAttrs(blogPageHref(pg.Current+1)), []string{"class", pageButtonClass(false), "aria-label", "Next page", "rel", "next"})...)
		} else {
			h.el("span", "›", "class", pageButtonClass(false)+" cursor-not-allowed opacity-40", "aria-disabled", "true")
		}
		h.close("nav")
	}
	h.el("p", "Showing "+strconv.Itoa(pg.Start)+"–"+strconv.Itoa(pg.End)+" of "+strconv.Itoa(pg.Count)+" posts",
		"class", "mt-6 text-center text-sm text-gray-500")
}

func blogCTA(h *htmlWriter) {
	h.open("section", "class", "bg-brand py-16 text-center text-white")
	h.el("h2", "Need Lawn Care or Snow Service?", "class", "mb-4 text-3xl font-extrabold")
	h.el("p", "Get a free quote from Uno Pro Services. We serve Chicago and nearby areas.", "class", "mb-8 text-lg")
	h.el("a", "Get Free Quote", attrs(navAttrs(PagePath(navigation.Contact, "")), []string{"class", "rounded-lg bg-white px-8 py-4 font-bold text-brand"})...)
	h.close("section")
}

// BlogPost renders a single post, or the not-found state when the slug did
// not resolve.
func BlogPost(d BlogPostData) templ.Component {
	return component(func(h *htmlWriter) {
		r := d.Resolution
		if !r.Found() {
			postNotFound(h)
			return
		}
		p := r.Post
		h.open("section", "class", "relative flex min-h-[360px] items-center justify-center overflow-hidden")
		h.open("div", "class", "absolute inset-0 bg-cover bg-center", "style", "background-image: url('/banner2.jpg')")
		h.close("div")
		h.open("div", "class", "absolute inset-0 bg-black/50")
		h.close("div")
		h.open("div", "class", "relative z-10 mx-auto max-w-4xl px-4 text-center text-white")
		h.el("h1", p.Title, "class", "mb-4 text-4xl font-extrabold md:text-5xl")
		h.el("time", p.FormatDate(), "datetime", p.Date, "class", "text-lg")
		h.close("div")
		h.close("section")

		h.open("article", "class", "mx-auto max-w-3xl px-4 py-12")
		h.el("a", "← Back to Blog", attrs(navAttrs(PagePath(navigation.Blog, "")), []string{"class", "mb-8 inline-block font-semibold text-brand"})...)
		if p.Intro != "" {
			h.el("p", p.Intro, "class", "mb-8 text-xl text-gray-700")
		}
		h.open("div", "class", "prose prose-lg max-w-none")
		// Content is sanitized when it is fetched.
		h.raw(p.Content)
		h.close("div")

		if r.Prev != nil || r.Next != nil {
			h.open("nav", "class", "mt-12 grid gap-4 border-t border-gray-200 pt-8 md:grid-cols-2", "aria-label", "More posts")
			if r.Prev != nil {
				adjacent(h, "Previous", *r.Prev, "")
			} else {
				h.raw("<div></div>")
			}
			if r.Next != nil {
				adjacent(h, "Next", *r.Next, " md:text-right")
			}
			h.close("nav")
		}
		h.close("article")

		if len(r.Related) > 0 {
			h.open("section", "class", "bg-gray-50 py-12")
			h.open("div", "class", "mx-auto max-w-6xl px-4")
			h.el("h2", "Related Posts", "class", "mb-8 text-2xl font-extrabold")
			h.open("div", "class", "grid gap-6 md:grid-cols-3")
			for _, rp := range r.Related {
				postCard(h, rp)
			}
			h.close("div")
			h.close("div")
			h.close("section")
		}
		blogCTA(h)
	})
}

func adjacent(h *htmlWriter, label string, p blog.Post, extra string) {
	h.open("a", attrs(navAttrs(PagePath(navigation.BlogPost, p.Slug)), []string{"class", "block rounded-xl border border-gray-200 p-5 hover:border-brand" + extra})...)
	h.el("span", label, "class", "block text-sm text-gray-500")
	h.el("span", p.Title, "class", "font-bold")
	h.close("a")
}

func postNotFound(h *htmlWriter) {
	h.open("section", "class", "flex min-h-[60vh] items-center justify-center px-4 py-24")
	h.open("div", "class", "text-center")
	h.el("h1", "Post Not Found", "class", "mb-4 text-4xl font-extrabold")
	h.el("p", "The blog post you're looking for doesn't exist.", "class", "mb-8 text-lg text-gray-600")
	h.el("a", "Back to Blog", attrs(navAttrs(PagePath(navigation.Blog, "")), []string{"class", "rounded-lg bg-brand px-8 py-4 font-bold text-white"})...)
	h.close("div")
	h.close("section")
}
