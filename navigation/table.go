package navigation

import (
	"fmt"
	"strings"
)

// Table maps every known page to a renderer of type T.
type Table[T any] struct {
	routes map[PageID]T
}

// NewTable builds a dispatch table. Every known page must have an entry and
// no unknown page may be listed.
func NewTable[T any](routes map[PageID]T) (*Table[T], error) {
	var missing, extra []string
	for _, p := range pages {
		if _, ok := routes[p]; !ok {
			missing = append(missing, string(p))
		}
	}
	for p := range routes {
		if !p.Known() {
			extra = append(extra, string(p))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("navigation: no renderer for %s", strings.Join(missing, ", "))
	}
	if len(extra) > 0 {
		return nil, fmt.Errorf("navigation: unknown pages in table: %s", strings.Join(extra, ", "))
	}
	t := &Table[T]{routes: make(map[PageID]T, len(routes))}
	for p, r := range routes {
		t.routes[p] = r
	}
	return t, nil
}

// MustTable is NewTable that panics on an incomplete table.
func MustTable[T any](routes map[PageID]T) *Table[T] {
	t, err := NewTable(routes)
	if err != nil {
		panic(err)
	}
	return t
}

// Dispatch returns the renderer for s.Page, or Home's for unknown pages.
func (t *Table[T]) Dispatch(s State) T {
	return t.routes[Resolve(s.Page)]
}
