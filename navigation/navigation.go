// Package navigation holds the site's route state: which page is visible and
// the optional parameter that goes with it. A Router is the only thing that
// mutates that state, and a Table maps each page to its renderer.
package navigation

import (
	"strings"
	"sync"
)

// PageID identifies a page. It is a string so that unrecognised ids can be
// stored as-is; they fall back to Home when dispatched.
type PageID string

const (
	Home     PageID = "home"
	Services PageID = "services"
	Gallery  PageID = "gallery"
	About    PageID = "about"
	Contact  PageID = "contact"
	Careers  PageID = "careers"
	Blog     PageID = "blog"
	BlogPost PageID = "blog-post"
)

var pages = []PageID{Home, Services, Gallery, About, Contact, Careers, Blog, BlogPost}

// All returns every known page id in navigation order.
func All() []PageID {
	out := make([]PageID, len(pages))
	copy(out, pages)
	return out
}

// Known reports whether p is one of the fixed page ids.
func (p PageID) Known() bool {
	for _, k := range pages {
		if k == p {
			return true
		}
	}
	return false
}

// Resolve maps unknown ids to Home.
func Resolve(p PageID) PageID {
	if p.Known() {
		return p
	}
	return Home
}

// State is the current page and its optional parameter.
type State struct {
	Page     PageID
	param    string
	hasParam bool
}

// Param returns the stored parameter and whether one was given.
func (s State) Param() (string, bool) {
	return s.param, s.hasParam
}

// Ticket identifies one navigation. Work started under a ticket should only be
// applied while Router.Current still reports it as current.
type Ticket uint64

// Router is the single owner of the route state.
type Router struct {
	mu     sync.Mutex
	state  State
	gen    Ticket
	scroll func()
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithScroller sets the side effect run after every navigation. It is meant to
// move the viewport to the top-left origin.
func WithScroller(fn func()) RouterOption {
	return func(r *Router) {
		r.scroll = fn
	}
}

// NewRouter returns a router positioned on Home with no parameter.
func NewRouter(opts ...RouterOption) *Router {
	r := &Router{state: State{Page: Home}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Navigate replaces the current page. The first element of params, if any,
// becomes the new parameter; without params the stored one is cleared.
// The scroll side effect runs unconditionally.
func (r *Router) Navigate(page PageID, params ...string) Ticket {
	r.mu.Lock()
	next := State{Page: page}
	if len(params) > 0 {
		next.param = params[0]
		next.hasParam = true
	}
	r.state = next
	r.gen++
	t := r.gen
	scroll := r.scroll
	r.mu.Unlock()

	if scroll != nil {
		scroll()
	}
	return t
}

// State returns a snapshot of the route state.
func (r *Router) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Ticket returns the ticket of the latest navigation.
func (r *Router) Ticket() Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen
}

// Current reports whether no navigation has happened since t was issued.
func (r *Router) Current(t Ticket) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen == t
}

// Section returns the services anchor, or "" when none was given.
func Section(s State) string {
	v, _ := s.Param()
	return v
}

// Slug returns the blog post slug, or "" when none was given.
func Slug(s State) string {
	v, _ := s.Param()
	return v
}

// BlogPage returns the requested blog page. A missing or unparsable parameter
// yields 1. Parsing follows leading-integer rules: "3abc" is 3, "abc" is
// unparsable. The result may still be out of range; pagination clamps it.
func BlogPage(s State) int {
	v, ok := s.Param()
	if !ok {
		return 1
	}
	n, ok := leadingInt(v)
	if !ok {
		return 1
	}
	return n
}

const maxPage = 1 << 30

func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\f\v")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		digits++
		if n < maxPage {
			n = n*10 + int(r-'0')
		}
	}
	if digits == 0 {
		return 0, false
	}
	if n > maxPage {
		n = maxPage
	}
	if neg {
		n = -n
	}
	return n, true
}
