// Package routes holds the static table mapping URL paths to page views.
package routes

import (
	"fmt"
	"strings"

	"bank_portal_echo/web/templates/pages"
	"bank_portal_echo/web/templates/shared"
)

// Entry maps one literal path segment to the view rendered for it.
// The empty path is the home view.
type Entry struct {
	Path  string
	Label string
	View  pages.View
}

// URL returns the absolute request path for the entry
func (e Entry) URL() string {
	return "/" + e.Path
}

// Table is an immutable, ordered set of route entries
type Table struct {
	entries []Entry
	byPath  map[string]int
}

// New builds a table, rejecting duplicate paths and entries without a view
func New(entries ...Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		byPath:  make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		e.Path = normalize(e.Path)
		if e.View == nil {
			return nil, fmt.Errorf("route %q has no view", e.URL())
		}
		if _, dup := t.byPath[e.Path]; dup {
			return nil, fmt.Errorf("duplicate route %q", e.URL())
		}
		t.byPath[e.Path] = len(t.entries)
		t.entries = append(t.entries, e)
	}
	return t, nil
}

// Default returns the portal's route table
func Default() *Table {
	t, err := New(
		Entry{Path: "", Label: "Home", View: pages.Home},
		Entry{Path: "accounts", Label: "Accounts", View: pages.Accounts},
		Entry{Path: "transactions", Label: "Transactions", View: pages.Transactions},
		Entry{Path: "loans", Label: "Loans", View: pages.Loans},
		Entry{Path: "investments", Label: "Investments", View: pages.Investments},
	)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve finds the entry for a request path. Leading and trailing slashes
// are ignored, so "/accounts/" and "accounts" resolve alike.
func (t *Table) Resolve(path string) (Entry, bool) {
	i, ok := t.byPath[normalize(path)]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Entries returns the entries in declaration order
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Nav builds the header navigation with activePath highlighted
func (t *Table) Nav(activePath string) []shared.NavItem {
	active := normalize(activePath)
	items := make([]shared.NavItem, 0, len(t.entries))
	for _, e := range t.entries {
		items = append(items, shared.NavItem{
			Label:  e.Label,
			URL:    e.URL(),
			Active: e.Path == active,
		})
	}
	return items
}

func normalize(path string) string {
	return strings.Trim(path, "/")
}
