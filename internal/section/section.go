// Package section implements the filterable collection view shared by all
// content kinds, along with its drill-down view-state machine.
package section

import (
	"fmt"

	"github.com/matheuskafuri/folio/internal/content"
	"github.com/matheuskafuri/folio/internal/filter"
)

// Section is one content collection being browsed: its records, the tag and
// category selections, a cursor over the visible records and the drill-down
// state. A Section is created fresh every time it is entered.
type Section[R content.Record] struct {
	kind       content.Kind
	records    []R
	tags       filter.Selection
	categories filter.Selection
	cursor     int
	nav        nav
}

func New[R content.Record](kind content.Kind, records []R) *Section[R] {
	return &Section[R]{kind: kind, records: records}
}

type (
	Articles = Section[content.Article]
	Notes    = Section[content.Note]
)

func NewArticles(store *content.Store) *Articles {
	return New(content.KindArticle, store.Articles())
}

func NewNotes(store *content.Store) *Notes {
	return New(content.KindNote, store.Notes())
}

func (s *Section[R]) Kind() content.Kind { return s.kind }

// View returns the current view-state.
func (s *Section[R]) View() View { return s.nav.current() }

// Criteria combines the shell query with this section's selections.
func (s *Section[R]) Criteria(query string) filter.Criteria {
	return filter.Criteria{Query: query, Tags: s.tags, Categories: s.categories}
}

// Visible returns the records that pass the current filters, in order.
func (s *Section[R]) Visible(query string) []R {
	return filter.Apply(s.records, s.Criteria(query))
}

// AllTags lists every tag in the section, independent of the current
// filters, so a selected tag can always be deselected.
func (s *Section[R]) AllTags() []string { return filter.Tags(s.records) }

// AllCategories lists the categories of categorized records; it is empty for
// kinds without categories.
func (s *Section[R]) AllCategories() []string {
	if podcasts, ok := any(s.records).([]content.Podcast); ok {
		return filter.Categories(podcasts)
	}
	return nil
}

func (s *Section[R]) SelectedTags() filter.Selection       { return s.tags }
func (s *Section[R]) SelectedCategories() filter.Selection { return s.categories }

func (s *Section[R]) ToggleTag(tag string) error {
	if s.View().State != Listing {
		return ErrNotListing
	}
	s.tags = s.tags.Toggle(tag, s.AllTags())
	s.cursor = 0
	return nil
}

func (s *Section[R]) ToggleCategory(category string) error {
	if s.View().State != Listing {
		return ErrNotListing
	}
	s.categories = s.categories.Toggle(category, s.AllCategories())
	s.cursor = 0
	return nil
}

// ClearFilters drops every tag and category selection.
func (s *Section[R]) ClearFilters() error {
	if s.View().State != Listing {
		return ErrNotListing
	}
	s.tags = nil
	s.categories = nil
	s.cursor = 0
	return nil
}

func (s *Section[R]) Cursor() int { return s.cursor }

// MoveCursor moves the cursor by delta within a visible list of n records.
func (s *Section[R]) MoveCursor(delta, n int) {
	s.cursor += delta
	s.ClampCursor(n)
}

// ClampCursor keeps the cursor inside a visible list of n records; the
// visible set shrinks when the query changes.
func (s *Section[R]) ClampCursor(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// AtCursor returns the visible record under the cursor.
func (s *Section[R]) AtCursor(query string) (R, bool) {
	visible := s.Visible(query)
	if s.cursor < 0 || s.cursor >= len(visible) {
		var zero R
		return zero, false
	}
	return visible[s.cursor], true
}

// Lookup finds a record of the section by id.
func (s *Section[R]) Lookup(id int) (R, bool) {
	for _, r := range s.records {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero R
	return zero, false
}

// Select is the default drill-down: open the record in Viewing.
func (s *Section[R]) Select(id int) error {
	return s.open(id)
}

// open moves from Listing to Viewing(id). Kinds with their own drill-down
// reach it only through their Select.
func (s *Section[R]) open(id int) error {
	if _, ok := s.Lookup(id); !ok {
		return fmt.Errorf("%s %d: %w", s.kind, id, ErrNotFound)
	}
	return s.nav.push(View{State: Viewing, ItemID: id})
}

// Back returns to the parent view. It reports false when already listing.
func (s *Section[R]) Back() bool { return s.nav.back() }

// Viewed returns the record open in Viewing.
func (s *Section[R]) Viewed() (R, bool) {
	v := s.View()
	if v.State != Viewing {
		var zero R
		return zero, false
	}
	return s.Lookup(v.ItemID)
}
