// Package gallery holds the before/after projects and photo grid shown on the
// gallery page, plus the thumbnailer used to serve them.
package gallery

// Project is a before/after transformation rendered with a comparison slider.
type Project struct {
	Before      string
	After       string
	Title       string
	Description string
	Alt         string
}

// Photo is one image in the lightbox grid.
type Photo struct {
	Src string
	Alt string
}

// File names are kept as published, including the swapped before/after names.
var projects = []Project{
	{
		Before:      "/After 1.png",
		After:       "/Before 1.jpg",
		Title:       "Seasonal Cleanup Transformation",
		Description: "Full yard cleanup, edging, and refresh to restore curb appeal and prepare for the next season.",
		Alt:         "Before and after yard cleanup in Chicago",
	},
	{
		Before:      "/After 2.jpg",
		After:       "/Before 2.png",
		Title:       "Lawn Maintenance Results",
		Description: "Consistent mowing, trimming, and cleanup that keeps your lawn looking fresh and well maintained.",
		Alt:         "Before and after lawn maintenance in Chicago",
	},
	{
		Before:      "/After 3.jpg",
		After:       "/Before 3.jpg",
		Title:       "Garden Bed Refresh",
		Description: "Cleaned up beds, removed weeds, added mulch, and refreshed planting areas for a clean look.",
		Alt:         "Garden bed cleanup and mulching before and after",
	},
	{
		Before:      "/After 4.jpg",
		After:       "/Before 4.jpg",
		Title:       "Fall Leaf Removal",
		Description: "Leaf cleanup and hauling service that leaves your yard clean, safe, and ready for winter.",
		Alt:         "Leaf removal and yard cleanup in Chicago",
	},
	{
		Before:      "/After 5.png",
		After:       "/Before 5.jpg",
		Title:       "Property Maintenance Cleanup",
		Description: "Seasonal property cleanup including debris removal, trimming, and a full yard reset.",
		Alt:         "Seasonal yard cleanup before and after",
	},
	{
		Before:      "/After 6.png",
		After:       "/Before 6.jpg",
		Title:       "Outdoor Refresh & Detail Work",
		Description: "A complete outdoor refresh with cleanup, edging, and detail work to sharpen the finish.",
		Alt:         "Outdoor landscaping refresh before and after",
	},
}

var photos = []Photo{
	{Src: "/Gallery 1.jpg", Alt: "Uno Pro Services lawn care work in Chicago"},
	{Src: "/Gallery 2.jpg", Alt: "Uno Pro Services cleanup work in Chicagoland"},
	{Src: "/Gallery 3.jpg", Alt: "Uno Pro Services gardening work in Chicago"},
	{Src: "/Gallery 4.jpg", Alt: "Uno Pro Services snow shoveling service"},
	{Src: "/Gallery 5.jpg", Alt: "Uno Pro Services property maintenance"},
}

// Projects returns all before/after projects.
func Projects() []Project {
	out := make([]Project, len(projects))
	copy(out, projects)
	return out
}

// Featured returns the first n projects, for the home page.
func Featured(n int) []Project {
	if n > len(projects) {
		n = len(projects)
	}
	if n < 0 {
		n = 0
	}
	out := make([]Project, n)
	copy(out, projects[:n])
	return out
}

// Photos returns the lightbox photos.
func Photos() []Photo {
	out := make([]Photo, len(photos))
	copy(out, photos)
	return out
}

// DefaultSlider is the initial split of every comparison slider, in percent.
const DefaultSlider = 50

// ClampSlider bounds a slider position to 0..100.
func ClampSlider(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Normalize maps any index onto 0..n-1, wrapping negatives. n must be > 0.
func Normalize(i, n int) int {
	return ((i % n) + n) % n
}

// Lightbox returns the indices reached by the previous and next controls when
// photo i of n is open. Both wrap around.
func Lightbox(n, i int) (prev, next int) {
	if n <= 0 {
		return 0, 0
	}
	i = Normalize(i, n)
	return Normalize(i-1, n), Normalize(i+1, n)
}
