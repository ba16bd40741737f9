package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouterStartsHome(t *testing.T) {
	r := NewRouter()
	s := r.State()
	assert.Equal(t, Home, s.Page)
	_, ok := s.Param()
	assert.False(t, ok)
}

func TestNavigateNoParamLeakage(t *testing.T) {
	r := NewRouter()

	steps := []struct {
		page   PageID
		params []string
	}{
		{Services, []string{"fertilizing"}},
		{Blog, nil},
		{Blog, []string{"2"}},
		{BlogPost, []string{"spring-cleanup"}},
		{Services, nil},
		{Contact, []string{""}},
		{About, nil},
	}

	for i, step := range steps {
		r.Navigate(step.page, step.params...)
		s := r.State()
		assert.Equal(t, step.page, s.Page, "step %d", i)
		got, ok := s.Param()
		if len(step.params) == 0 {
			assert.False(t, ok, "step %d: param should be cleared", i)
			assert.Empty(t, got, "step %d", i)
			continue
		}
		assert.True(t, ok, "step %d", i)
		assert.Equal(t, step.params[0], got, "step %d", i)
	}
}

func TestNavigateStoresUnknownPage(t *testing.T) {
	r := NewRouter()
	r.Navigate("pricing", "x")
	assert.Equal(t, PageID("pricing"), r.State().Page)
}

func TestNavigateAlwaysScrolls(t *testing.T) {
	scrolls := 0
	r := NewRouter(WithScroller(func() { scrolls++ }))

	r.Navigate(Home)
	r.Navigate(Home)
	r.Navigate(Gallery)

	assert.Equal(t, 3, scrolls)
}

func TestTickets(t *testing.T) {
	r := NewRouter()
	first := r.Navigate(Blog)
	assert.True(t, r.Current(first))
	assert.Equal(t, first, r.Ticket())

	second := r.Navigate(BlogPost, "a")
	assert.False(t, r.Current(first), "earlier ticket must be stale")
	assert.True(t, r.Current(second))
}

func TestResolve(t *testing.T) {
	for _, p := range All() {
		assert.Equal(t, p, Resolve(p))
	}
	for _, p := range []PageID{"", "HOME", "pricing", "blog_post"} {
		assert.Equal(t, Home, Resolve(p), "page %q", p)
	}
}

func TestBlogPage(t *testing.T) {
	tests := []struct {
		name   string
		params []string
		want   int
	}{
		{"absent", nil, 1},
		{"empty", []string{""}, 1},
		{"number", []string{"3"}, 3},
		{"leading digits", []string{"4abc"}, 4},
		{"not a number", []string{"abc"}, 1},
		{"whitespace", []string{"  2"}, 2},
		{"decimal", []string{"2.7"}, 2},
		{"negative", []string{"-1"}, -1},
		{"zero", []string{"0"}, 0},
		{"sign only", []string{"-"}, 1},
		{"huge", []string{"99999999999999999999"}, maxPage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter()
			r.Navigate(Blog, tt.params...)
			assert.Equal(t, tt.want, BlogPage(r.State()))
		})
	}
}

func TestSlugAndSection(t *testing.T) {
	r := NewRouter()
	r.Navigate(BlogPost)
	assert.Equal(t, "", Slug(r.State()))

	r.Navigate(BlogPost, "winter-prep")
	assert.Equal(t, "winter-prep", Slug(r.State()))

	r.Navigate(Services, "gardening")
	assert.Equal(t, "gardening", Section(r.State()))
}

func TestTableDispatch(t *testing.T) {
	routes := make(map[PageID]string)
	for _, p := range All() {
		routes[p] = string(p)
	}
	table, err := NewTable(routes)
	require.NoError(t, err)

	r := NewRouter()
	for _, p := range All() {
		r.Navigate(p)
		assert.Equal(t, string(p), table.Dispatch(r.State()))
	}

	for _, p := range []PageID{"", "unknown", "Blog"} {
		r.Navigate(p)
		assert.Equal(t, "home", table.Dispatch(r.State()), "page %q", p)
	}
}

func TestNewTableRejectsIncomplete(t *testing.T) {
	_, err := NewTable(map[PageID]int{Home: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "services")

	routes := make(map[PageID]int)
	for _, p := range All() {
		routes[p] = 1
	}
	routes["pricing"] = 2
	_, err = NewTable(routes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pricing")

	assert.Panics(t, func() { MustTable(map[PageID]int{}) })
}
