// Package catalog holds the fixed business data shown across the site:
// services, careers options and navigation entries.
package catalog

// Service is one offered service. Slug doubles as the section anchor on the
// services page.
type Service struct {
	Slug        string
	Title       string
	Image       string
	Alt         string
	Description string
	Benefits    []string
	Process     []string
}

var services = []Service{
	{
		Slug:        "lawn-maintenance",
		Title:       "Weekly Lawn Maintenance",
		Image:       "/services-weekly-lawn.jpg",
		Alt:         "Weekly lawn mowing and trimming service in Chicago",
		Description: "Reliable weekly mowing, edging, trimming, and cleanup to keep your lawn looking sharp all season.",
		Benefits:    []string{"Weekly mowing + trimming", "Edging for clean lines", "Blowing + cleanup included"},
		Process:     []string{"Schedule your service", "Weekly maintenance visits", "Consistent results all season"},
	},
	{
		Slug:        "bi-weekly-lawn",
		Title:       "Bi-Weekly Lawn Maintenance",
		Image:       "/services-biweekly-lawn.jpg",
		Alt:         "Bi-weekly lawn maintenance in Chicago",
		Description: "Affordable every-2-week mowing service for properties that need consistent upkeep without weekly visits.",
		Benefits:    []string{"Every 2-week mowing", "Trim + edge included", "Great for low-growth lawns"},
		Process:     []string{"Choose your schedule", "Bi-weekly visits", "Clean finish every time"},
	},
	{
		Slug:        "fertilizing",
		Title:       "Fertilizing",
		Image:       "/services-fertilizing.jpg",
		Alt:         "Lawn fertilizing service in Chicago",
		Description: "Seasonal fertilizing programs designed to strengthen your lawn and improve color, density, and growth.",
		Benefits:    []string{"Seasonal applications", "Healthier grass growth", "Improved lawn color"},
		Process:     []string{"Evaluate lawn needs", "Apply seasonal fertilizer", "Monitor results over time"},
	},
	{
		Slug:        "leaf-cleanup",
		Title:       "Leaf Clean Up",
		Image:       "/services-leaf-cleanup.jpg",
		Alt:         "Leaf cleanup and hauling service in Chicago",
		Description: "Full fall and spring cleanups including leaf removal, hauling, and property refresh for a clean finish.",
		Benefits:    []string{"Leaf removal + hauling", "Yard cleanup + edging", "Spring + fall available"},
		Process:     []string{"Walkthrough + estimate", "Cleanup + removal", "Final detail + haul away"},
	},
	{
		Slug:        "snow-shoveling",
		Title:       "Snow Shoveling",
		Image:       "/services-snow-shoveling.jpg",
		Alt:         "Snow shoveling service in Chicago",
		Description: "Fast and dependable snow shoveling for sidewalks, driveways, and entrances during Chicago winters.",
		Benefits:    []string{"Sidewalk + driveway clearing", "Fast response", "Safer walkways"},
		Process:     []string{"Add your property", "Snow day service", "Clear + safe access restored"},
	},
	{
		Slug:        "gardening",
		Title:       "Gardening",
		Image:       "/services-gardening.jpg",
		Alt:         "Gardening and planting service in Chicago",
		Description: "Garden bed cleanup, planting, mulching, and seasonal refreshes to keep your property looking beautiful.",
		Benefits:    []string{"Bed cleanup + weeding", "Planting + refresh", "Mulch + seasonal care"},
		Process:     []string{"Discuss goals", "Clean + prep beds", "Plant + finish with cleanup"},
	},
}

// Services returns every service in display order.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// ServiceBySlug looks up a service by its anchor slug.
func ServiceBySlug(slug string) (Service, bool) {
	for _, s := range services {
		if s.Slug == slug {
			return s, true
		}
	}
	return Service{}, false
}

// ServiceTitles lists the service names offered in the quote form.
func ServiceTitles() []string {
	out := make([]string, len(services))
	for i, s := range services {
		out[i] = s.Title
	}
	return out
}

var (
	positions = []string{
		"Landscape Laborer",
		"Hardscape Installer",
		"Maintenance Crew Member",
		"Equipment Operator",
		"Other",
	}
	experienceLevels = []string{
		"No experience",
		"Less than 1 year",
		"1–2 years",
		"3–5 years",
		"5+ years",
	}
	skills = []string{
		"Paver installation",
		"Landscape maintenance",
		"Equipment operation",
		"Irrigation systems",
		"Tree/shrub care",
		"Commercial property experience",
		"CDL license",
		"Other",
	}
	referralSources = []string{
		"Indeed / Job Board",
		"Google Search",
		"Facebook / Social Media",
		"Friend / Referral",
		"Saw your crew working",
		"Other",
	}
)

func Positions() []string        { return clone(positions) }
func ExperienceLevels() []string { return clone(experienceLevels) }
func Skills() []string           { return clone(skills) }
func ReferralSources() []string  { return clone(referralSources) }

// Contains reports whether v is one of options.
func Contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

// NavItem is a header/footer link to a top-level page.
type NavItem struct {
	Name string
	Page string
}

var navItems = []NavItem{
	{Name: "Home", Page: "home"},
	{Name: "Services", Page: "services"},
	{Name: "Gallery", Page: "gallery"},
	{Name: "Blog", Page: "blog"},
	{Name: "About", Page: "about"},
	{Name: "Contact", Page: "contact"},
}

// Nav returns the primary navigation entries.
func Nav() []NavItem {
	out := make([]NavItem, len(navItems))
	copy(out, navItems)
	return out
}

// Testimonial is a client quote shown on the home page.
type Testimonial struct {
	Text     string
	Author   string
	Position string
}

var testimonials = []Testimonial{
	{Text: "Quick response, fair pricing, and the lawn looked amazing right after the first visit. Highly recommend.", Author: "Verified Client", Position: "Lawn Maintenance"},
	{Text: "They showed up on time and did a full leaf cleanup fast. Everything looked clean and professional.", Author: "Verified Client", Position: "Leaf Clean Up"},
	{Text: "Very reliable and easy to communicate with. Great service for regular mowing.", Author: "Verified Client", Position: "Bi-Weekly Lawn Service"},
	{Text: "Snow shoveling was done early and the sidewalks were clear before we left for work.", Author: "Verified Client", Position: "Snow Shoveling"},
}

func Testimonials() []Testimonial {
	out := make([]Testimonial, len(testimonials))
	copy(out, testimonials)
	return out
}

// Value is one of the company values on the about page.
type Value struct {
	Title       string
	Description string
}

var values = []Value{
	{Title: "Reliability", Description: "We show up on time, every time. Chicagoland property owners depend on us, and we take that responsibility seriously."},
	{Title: "Quality Work", Description: "We take pride in doing the job right: clean edges, professional results, and attention to detail on every visit."},
	{Title: "Integrity", Description: "Honest communication, fair pricing, and doing exactly what we say we will do. That is our promise to you."},
	{Title: "Fast Service", Description: "When the season hits (leaves or snow), speed matters. We work efficiently so your property stays safe and clean."},
}

func Values() []Value {
	out := make([]Value, len(values))
	copy(out, values)
	return out
}

var whyChoose = []string{
	"Direct owner communication and project oversight",
	"Reliable weekly and bi-weekly lawn maintenance",
	"Seasonal leaf cleanups (spring + fall)",
	"Fast snow shoveling service in winter",
	"Residential + commercial properties",
	"Friendly communication, Se Habla Español",
}

func WhyChoose() []string { return clone(whyChoose) }

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
