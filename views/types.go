package views

import (
	"github.com/unoproservices/unopro/blog"
	"github.com/unoproservices/unopro/catalog"
	"github.com/unoproservices/unopro/content"
	"github.com/unoproservices/unopro/forms"
	"github.com/unoproservices/unopro/gallery"
	"github.com/unoproservices/unopro/navigation"
)

// Site holds site-wide settings passed to every page.
type Site struct {
	Name        string
	URL         string
	Description string
	Info        content.SiteInfo
	Year        int
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	JSONLD      string
}

// Chrome is what the layout needs around a page body.
type Chrome struct {
	Site    Site
	Meta    PageMeta
	Current navigation.PageID
}

type HomeData struct {
	Services     []catalog.Service
	Projects     []gallery.Project
	Testimonials []catalog.Testimonial
	Info         content.SiteInfo
}

type ServicesData struct {
	Services []catalog.Service
	// Section is the anchor to scroll to; empty unless it names a service.
	Section string
}

type GalleryData struct {
	Projects []gallery.Project
	Photos   []gallery.Photo
	Split    int
	// Open is the lightbox photo index, or -1 when closed.
	Open int
	Prev int
	Next int
}

type AboutData struct {
	Values    []catalog.Value
	WhyChoose []string
}

// FormState is shared by the contact and careers forms.
type FormState struct {
	CSRF    string
	Errors  forms.FieldErrors
	Success bool
	// Failure is the banner shown when submission failed.
	Failure string
}

type ContactData struct {
	FormState
	Form     forms.Contact
	Services []string
	Info     content.SiteInfo
}

type CareersData struct {
	FormState
	Form             forms.Application
	Positions        []string
	ExperienceLevels []string
	Skills           []string
	ReferralSources  []string
}

type BlogListData struct {
	Page   blog.Page
	Window []int
	Failed bool
}

type BlogPostData struct {
	Resolution blog.Resolution
	Failed     bool
}
