package views

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/unoproservices/unopro/gallery"
	"github.com/unoproservices/unopro/navigation"
)

func hero(h *htmlWriter, image, heading, sub string) {
	h.open("section", "class", "relative flex min-h-[420px] items-center justify-center overflow-hidden")
	h.open("div", "class", "absolute inset-0 bg-cover bg-center", "style", "background-image: url('"+image+"')")
	h.close("div")
	h.open("div", "class", "absolute inset-0 bg-black/50")
	h.close("div")
	h.open("div", "class", "relative z-10 mx-auto max-w-4xl px-4 text-center text-white")
	h.el("h1", heading, "class", "mb-4 text-4xl font-extrabold md:text-6xl")
	if sub != "" {
		h.el("p", sub, "class", "text-lg md:text-2xl")
	}
	h.close("div")
	h.close("section")
}

func ctaButton(h *htmlWriter, label string, page navigation.PageID, param string) {
	h.el("a", label, attrs(
		navAttrs(PagePath(page, param)),
		[]string{"class", "inline-flex items-center gap-2 rounded-lg bg-brand px-8 py-4 font-bold text-white shadow-lg hover:bg-brand-dark"},
	)...)
}

func sectionHeading(h *htmlWriter, title, sub string) {
	h.open("div", "class", "mb-12 text-center")
	h.el("h2", title, "class", "mb-3 text-3xl font-extrabold md:text-5xl")
	if sub != "" {
		h.el("p", sub, "class", "mx-auto max-w-2xl text-lg text-gray-600")
	}
	h.close("div")
}

// Home is the landing page.
func Home(d HomeData) templ.Component {
	return component(func(h *htmlWriter) {
		hero(h, "/banner1.jpg", "Chicago Lawn Care & Property Services", "Weekly lawn maintenance, fertilizing, cleanups, snow shoveling, and gardening for residential and commercial properties.")

		h.open("section", "class", "bg-white py-16")
		h.open("div", "class", "mx-auto max-w-7xl px-4")
		sectionHeading(h, "Our Services", "Everything your property needs, handled by one reliable team.")
		h.open("div", "class", "grid gap-8 md:grid-cols-2 lg:grid-cols-3")
		for _, s := range d.Services {
			h.open("a", attrs(navAttrs(PagePath(navigation.Services, s.Slug)), []string{"class", "block rounded-2xl border border-gray-100 p-8 shadow-sm hover:shadow-xl"})...)
			h.el("h3", s.Title, "class", "mb-3 text-xl font-bold")
			h.el("p", s.Description, "class", "mb-4 text-gray-600")
			h.el("span", "Learn More", "class", "font-semibold text-brand")
			h.close("a")
		}
		h.close("div")
		h.close("div")
		h.close("section")

		h.open("section", "class", "bg-gray-50 py-16")
		h.open("div", "class", "mx-auto max-w-7xl px-4")
		sectionHeading(h, "Real Results", "See the difference consistent, professional care makes.")
		h.open("div", "class", "grid gap-10 md:grid-cols-2")
		for i, p := range d.Projects {
			compareSlider(h, i, p.Before, p.After, p.Alt, gallery.DefaultSlider)
			h.open("div", "class", "-mt-6")
			h.el("h3", p.Title, "class", "text-xl font-bold")
			h.el("p", p.Description, "class", "text-gray-600")
			h.close("div")
		}
		h.close("div")
		h.open("div", "class", "mt-10 text-center")
		ctaButton(h, "View Full Gallery", navigation.Gallery, "")
		h.close("div")
		h.close("div")
		h.close("section")

		h.open("section", "class", "bg-white py-16")
		h.open("div", "class", "mx-auto max-w-5xl px-4")
		sectionHeading(h, "What Our Clients Say", "")
		h.open("div", "class", "grid gap-6 md:grid-cols-2", "data-carousel", "testimonials")
		for _, t := range d.Testimonials {
			h.open("figure", "class", "rounded-2xl bg-gray-50 p-8")
			h.el("blockquote", "“"+t.Text+"”", "class", "mb-4 text-lg italic text-gray-700")
			h.open("figcaption")
			h.el("span", t.Author, "class", "block font-bold")
			h.el("span", t.Position, "class", "text-sm text-gray-500")
			h.close("figcaption")
			h.close("figure")
		}
		h.close("div")
		h.close("div")
		h.close("section")

		h.open("section", "class", "bg-brand py-16 text-center text-white")
		h.el("h2", "Ready for a Better-Looking Property?", "class", "mb-4 text-3xl font-extrabold md:text-4xl")
		h.el("p", "Get a free, no-obligation quote today. Se Habla Español.", "class", "mb-8 text-lg")
		h.open("div", "class", "flex flex-wrap justify-center gap-4")
		h.el("a", "Get a Free Quote", attrs(navAttrs(PagePath(navigation.Contact, "")), []string{"class", "rounded-lg bg-white px-8 py-4 font-bold text-brand"})...)
		h.el("a", "Call "+d.Info.Phone, "href", "tel:"+d.Info.PhoneDigits(), "class", "rounded-lg border-2 border-white px-8 py-4 font-bold")
		h.close("div")
		h.close("section")
	})
}

// compareSlider renders a before/after image pair. The split starts at value
// percent; site.js moves it as the range input changes.
func compareSlider(h *htmlWriter, idx int, before, after, alt string, value int) {
	id := "compare-" + strconv.Itoa(idx)
	pct := strconv.Itoa(value)
	h.open("div", "class", "relative aspect-[4/3] overflow-hidden rounded-2xl shadow-lg", "data-compare", id)
	h.void("img", "src", after, "alt", alt+" (after)", "class", "absolute inset-0 h-full w-full object-cover", "loading", "lazy")
	h.open("div", "class", "absolute inset-0 overflow-hidden", "data-compare-before", "", "style", "width: "+pct+"%")
	h.void("img", "src", before, "alt", alt+" (before)", "class", "absolute inset-0 h-full w-full max-w-none object-cover", "loading", "lazy")
	h.close("div")
	h.el("span", "Before", "class", "absolute left-3 top-3 rounded bg-black/70 px-2 py-1 text-xs font-bold text-white")
	h.el("span", "After", "class", "absolute right-3 top-3 rounded bg-brand px-2 py-1 text-xs font-bold text-white")
	h.void("input", "type", "range", "min", "0", "max", "100", "value", pct,
		"aria-label", "Before and after comparison", "class", "absolute inset-x-0 bottom-3 mx-auto w-11/12", "data-compare-input", id)
	h.close("div")
}

// Services lists every service as an anchored section.
func Services(d ServicesData) templ.Component {
	return component(func(h *htmlWriter) {
		hero(h, "/banner2.jpg", "Lawn Care & Property Services in Chicago", "Weekly lawn maintenance, fertilizing, cleanups, snow shoveling, and gardening, all handled by one reliable team.")
		h.open("section", attrs(
			[]string{"class", "bg-white py-16"},
			when(d.Section != "", "data-scroll-to", d.Section),
		)...)
		h.open("div", "class", "mx-auto max-w-7xl space-y-16 px-4")
		for i, s := range d.Services {
			cls := "scroll-mt-28 grid items-center gap-10 lg:grid-cols-2"
			if i > 0 {
				cls += " border-t border-gray-200 pt-16"
			}
			h.open("div", "id", s.Slug, "class", cls)
			h.open("div", "class", orderClass(i))
			h.void("img", "src", s.Image, "alt", s.Alt, "loading", "lazy", "class", "h-80 w-full rounded-2xl object-cover shadow-lg")
			h.close("div")
			h.open("div")
			h.el("h2", s.Title, "class", "mb-4 text-3xl font-extrabold")
			h.el("p", s.Description, "class", "mb-6 text-lg text-gray-600")
			h.el("h3", "What’s Included", "class", "mb-3 text-lg font-bold")
			h.open("ul", "class", "mb-6 space-y-2")
			for _, b := range s.Benefits {
				h.el("li", b, "class", "flex items-center gap-2 before:content-['✓'] before:text-brand")
			}
			h.close("ul")
			h.el("h3", "Our Process", "class", "mb-3 text-lg font-bold")
			h.open("ol", "class", "mb-8 space-y-2")
			for j, step := range s.Process {
				h.open("li", "class", "flex items-center gap-3")
				h.el("span", strconv.Itoa(j+1), "class", "flex h-7 w-7 items-center justify-center rounded-full bg-brand text-sm font-bold text-white")
				h.text(step)
				h.close("li")
			}
			h.close("ol")
			ctaButton(h, "Get a Free Quote", navigation.Contact, "")
			h.close("div")
			h.close("div")
		}
		h.close("div")
		h.close("section")
	})
}

func orderClass(i int) string {
	if i%2 == 1 {
		return "lg:order-2"
	}
	return ""
}

// Gallery shows the before/after projects and the photo grid with lightbox.
func Gallery(d GalleryData) templ.Component {
	return component(func(h *htmlWriter) {
		hero(h, "/banner3.jpg", "Our Work", "Real transformations from properties across Chicagoland.")

		h.open("section", "class", "bg-white py-16")
		h.open("div", "class", "mx-auto max-w-7xl px-4")
		sectionHeading(h, "Before & After", "Drag the slider to compare.")
		h.open("div", "class", "grid gap-12 md:grid-cols-2")
		for i, p := range d.Projects {
			h.open("article")
			compareSlider(h, i, p.Before, p.After, p.Alt, d.Split)
			h.el("h3", p.Title, "class", "mt-4 text-xl font-bold")
			h.el("p", p.Description, "class", "text-gray-600")
			h.close("article")
		}
		h.close("div")
		h.close("div")
		h.close("section")

		h.open("section", "class", "bg-gray-50 py-16")
		h.open("div", "class", "mx-auto max-w-7xl px-4")
		sectionHeading(h, "Project Gallery", "")
		h.open("div", "class", "grid grid-cols-2 gap-4 md:grid-cols-3")
		for i, p := range d.Photos {
			href := "/gallery/?photo=" + strconv.Itoa(i)
			h.open("a", attrs(navAttrs(href), []string{"class", "group block overflow-hidden rounded-xl", "aria-label", "Open " + p.Alt})...)
			h.void("img", "src", thumbPath(p.Src), "alt", p.Alt, "loading", "lazy", "class", "h-56 w-full object-cover transition group-hover:scale-105")
			h.close("a")
		}
		h.close("div")
		h.close("div")
		h.close("section")

		if d.Open >= 0 && d.Open < len(d.Photos) {
			lightbox(h, d)
		}

		h.open("section", "class", "py-16 text-center")
		h.el("h2", "Want Results Like These?", "class", "mb-6 text-3xl font-extrabold")
		ctaButton(h, "Get a Free Quote", navigation.Contact, "")
		h.close("section")
	})
}

func thumbPath(src string) string {
	return "/gallery/thumb/" + PathEscape(strings.TrimPrefix(src, "/"))
}

func lightbox(h *htmlWriter, d GalleryData) {
	p := d.Photos[d.Open]
	h.open("div", "class", "fixed inset-0 z-50 flex items-center justify-center bg-black/90", "role", "dialog", "aria-modal", "true", "data-lightbox", "")
	h.el("a", "×", attrs(navAttrs("/gallery/"), []string{"class", "absolute right-6 top-6 text-4xl text-white", "aria-label", "Close", "data-lightbox-close", ""})...)
	h.el("a", "‹", attrs(navAttrs("/gallery/?photo="+strconv.Itoa(d.Prev)), []string{"class", "absolute left-4 text-5xl text-white", "aria-label", "Previous image", "data-lightbox-prev", ""})...)
	h.void("img", "src", p.Src, "alt", p.Alt, "class", "max-h-[85vh] max-w-[90vw] rounded-lg")
	h.el("a", "›", attrs(navAttrs("/gallery/?photo="+strconv.Itoa(d.Next)), []string{"class", "absolute right-4 text-5xl text-white", "aria-label", "Next image", "data-lightbox-next", ""})...)
	h.el("p", strconv.Itoa(d.Open+1)+" / "+strconv.Itoa(len(d.Photos)), "class", "absolute bottom-6 text-sm text-white")
	h.close("div")
}

// About introduces the owner and company values.
func About(d AboutData) templ.Component {
	return component(func(h *htmlWriter) {
		hero(h, "/marcusbhai.png", "Meet Armando | Owner of Uno Pro Services", "Dependable lawn care, cleanups, gardening, and snow service across Chicagoland.")

		h.open("section", "class", "bg-white py-16")
		h.open("div", "class", "mx-auto grid max-w-7xl items-center gap-12 px-4 lg:grid-cols-2")
		h.open("div")
		h.el("h2", "About the Owner", "class", "mb-6 text-3xl font-extrabold")
		h.el("p", "Uno Pro Services is owned and operated by Armando, a hardworking professional who takes pride in providing dependable property services for homeowners and businesses across Chicagoland.", "class", "mb-4 text-lg text-gray-700")
		h.el("p", "The goal is simple: show up on time, do clean and professional work, and leave every property looking better than before, whether it’s a weekly mow, a full leaf cleanup, or snow shoveling during winter.", "class", "mb-4 text-lg text-gray-700")
		h.el("p", "At Uno Pro Services, we focus on consistent quality, fair pricing, and friendly communication. Many of our clients stay with us season after season because they know they can rely on us.", "class", "text-lg text-gray-700")
		h.close("div")
		h.void("img", "src", "/About Us Photo.jpg", "alt", "Uno Pro Services owner working on a property in Chicagoland", "loading", "lazy", "class", "rounded-2xl shadow-xl")
		h.close("div")
		h.close("section")

		h.open("section", "class", "bg-gray-50 py-16")
		h.open("div", "class", "mx-auto max-w-7xl px-4")
		sectionHeading(h, "Our Values", "")
		h.open("div", "class", "grid gap-8 md:grid-cols-2 lg:grid-cols-4")
		for _, v := range d.Values {
			h.open("div", "class", "rounded-2xl bg-white p-8 shadow-sm")
			h.el("h3", v.Title, "class", "mb-3 text-xl font-bold")
			h.el("p", v.Description, "class", "text-gray-600")
			h.close("div")
		}
		h.close("div")
		h.close("div")
		h.close("section")

		h.open("section", "class", "bg-white py-16")
		h.open("div", "class", "mx-auto max-w-4xl px-4")
		sectionHeading(h, "Why Choose Uno Pro Services", "")
		h.open("ul", "class", "grid gap-4 md:grid-cols-2")
		for _, w := range d.WhyChoose {
			h.el("li", w, "class", "rounded-xl border border-gray-100 p-4 font-semibold")
		}
		h.close("ul")
		h.open("div", "class", "mt-10 flex flex-wrap justify-center gap-4")
		ctaButton(h, "Get a Free Quote", navigation.Contact, "")
		ctaButton(h, "Join Our Team", navigation.Careers, "")
		h.close("div")
		h.close("div")
		h.close("section")
	})
}
