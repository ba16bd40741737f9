package views

import (
	"github.com/a-h/templ"

	"github.com/unoproservices/unopro/navigation"
)

// NotFound is shown for unknown paths.
func NotFound() templ.Component {
	return component(func(h *htmlWriter) {
		h.open("section", "class", "flex min-h-[60vh] items-center justify-center px-4 py-24")
		h.open("div", "class", "text-center")
		h.el("p", "404", "class", "mb-2 text-6xl font-extrabold text-brand")
		h.el("h1", "Page Not Found", "class", "mb-4 text-3xl font-extrabold")
		h.el("p", "The page you're looking for doesn't exist or has moved.", "class", "mb-8 text-lg text-gray-600")
		h.el("a", "Back to Home", attrs(navAttrs(PagePath(navigation.Home, "")), []string{"class", "rounded-lg bg-brand px-8 py-4 font-bold text-white"})...)
		h.close("div")
		h.close("section")
	})
}

// ServerError is shown when a handler fails unexpectedly.
func ServerError() templ.Component {
	return component(func(h *htmlWriter) {
		h.open("section", "class", "flex min-h-[60vh] items-center justify-center px-4 py-24")
		h.open("div", "class", "text-center")
		h.el("h1", "Something went wrong", "class", "mb-4 text-3xl font-extrabold")
		h.el("p", "Please try again in a moment, or call us directly.", "class", "mb-8 text-lg text-gray-600")
		h.el("a", "Back to Home", attrs(navAttrs(PagePath(navigation.Home, "")), []string{"class", "rounded-lg bg-brand px-8 py-4 font-bold text-white"})...)
		h.close("div")
		h.close("section")
	})
}
