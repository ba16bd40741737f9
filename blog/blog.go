// Package blog turns a flat, unordered collection of posts into a sorted,
// paginated view and resolves a single post with its neighbours.
package blog

import (
	"sort"
	"strings"
	"time"
)

// PageSize is the number of posts shown on one listing page.
const PageSize = 10

// RelatedCount is the maximum number of related posts shown under a post.
const RelatedCount = 3

// Post is a blog post as served by the remote content store. Content is only
// present in detail records.
type Post struct {
	ID      int    `json:"id"`
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Intro   string `json:"intro"`
	Content string `json:"content,omitempty"`
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Time parses Date. Unparsable dates return the zero time.
func (p Post) Time() time.Time {
	d := strings.TrimSpace(p.Date)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, d); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatDate renders the post date as "January 2, 2006", or the raw value
// when it cannot be parsed.
func (p Post) FormatDate() string {
	t := p.Time()
	if t.IsZero() {
		return p.Date
	}
	return t.Format("January 2, 2006")
}

// Link is the site path of the post.
func (p Post) Link() string {
	return "/blog/" + p.Slug + "/"
}

// Sort returns a copy of posts ordered newest first. Posts on the same date
// are ordered by descending id.
func Sort(posts []Post) []Post {
	type keyed struct {
		post Post
		at   time.Time
	}
	ks := make([]keyed, len(posts))
	for i, p := range posts {
		ks[i] = keyed{post: p, at: p.Time()}
	}
	sort.SliceStable(ks, func(a, b int) bool {
		if !ks[a].at.Equal(ks[b].at) {
			return ks[a].at.After(ks[b].at)
		}
		return ks[a].post.ID > ks[b].post.ID
	})
	out := make([]Post, len(ks))
	for i := range ks {
		out[i] = ks[i].post
	}
	return out
}

// Page is one listing page over a sorted collection.
type Page struct {
	Items   []Post
	Current int
	Total   int
	// Start and End are the 1-based positions of the first and last item on
	// this page; both are 0 when the collection is empty.
	Start int
	End   int
	Count int
}

// Paginate slices sorted into pages of size and returns the requested page.
// Out-of-range requests are clamped; an empty collection is one empty page.
func Paginate(sorted []Post, requested, size int) Page {
	if size <= 0 {
		size = PageSize
	}
	count := len(sorted)
	total := (count + size - 1) / size
	if total < 1 {
		total = 1
	}
	current := requested
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}
	start := (current - 1) * size
	end := start + size
	if end > count {
		end = count
	}
	p := Page{
		Items:   sorted[start:end:end],
		Current: current,
		Total:   total,
		Count:   count,
	}
	if end > start {
		p.Start = start + 1
		p.End = end
	}
	return p
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Current > 1 }

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool { return p.Current < p.Total }

// Window returns up to n consecutive page numbers around the current page,
// shifted so the window never leaves [1, Total].
func (p Page) Window(n int) []int {
	if n <= 0 || p.Total <= 0 {
		return nil
	}
	start := p.Current - n/2
	if start < 1 {
		start = 1
	}
	end := start + n - 1
	if end > p.Total {
		end = p.Total
	}
	if end-start < n-1 {
		start = end - n + 1
		if start < 1 {
			start = 1
		}
	}
	out := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, i)
	}
	return out
}

// Resolution is a post looked up by slug together with its neighbours in the
// sorted collection.
type Resolution struct {
	Post    *Post
	Prev    *Post
	Next    *Post
	Related []Post
}

// Found reports whether the slug matched a post.
func (r Resolution) Found() bool { return r.Post != nil }

// Resolve finds slug in sorted. Prev is the newer neighbour and Next the older
// one. Related holds the first RelatedCount posts with a different slug.
func Resolve(sorted []Post, slug string) Resolution {
	var res Resolution
	res.Related = []Post{}
	for i := range sorted {
		if sorted[i].Slug != slug {
			continue
		}
		post := sorted[i]
		res.Post = &post
		if i > 0 {
			prev := sorted[i-1]
			res.Prev = &prev
		}
		if i < len(sorted)-1 {
			next := sorted[i+1]
			res.Next = &next
		}
		break
	}
	for _, p := range sorted {
		if len(res.Related) == RelatedCount {
			break
		}
		if p.Slug != slug {
			res.Related = append(res.Related, p)
		}
	}
	return res
}
