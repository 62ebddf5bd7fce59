// Package shell routes between the home screen and the content sections and
// holds the search query they share.
package shell

import (
	"fmt"
	"strings"

	"github.com/matheuskafuri/folio/internal/content"
	"github.com/matheuskafuri/folio/internal/filter"
	"github.com/matheuskafuri/folio/internal/section"
)

// SectionID names a top-level screen.
type SectionID int

const (
	Home SectionID = iota
	Articles
	Notes
	Photos
	Podcasts
)

// Sections lists the content sections in home-screen order.
var Sections = []SectionID{Articles, Notes, Podcasts, Photos}

func (id SectionID) String() string {
	switch id {
	case Home:
		return "home"
	case Articles:
		return "articles"
	case Notes:
		return "notes"
	case Photos:
		return "photos"
	case Podcasts:
		return "podcasts"
	default:
		return fmt.Sprintf("section(%d)", int(id))
	}
}

// ParseSectionID accepts the lower-case section names, case-insensitively.
func ParseSectionID(s string) (SectionID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "home":
		return Home, nil
	case "articles":
		return Articles, nil
	case "notes":
		return Notes, nil
	case "photos":
		return Photos, nil
	case "podcasts":
		return Podcasts, nil
	}
	return Home, fmt.Errorf("unknown section %q (valid: home, articles, notes, photos, podcasts)", s)
}

// Shell owns the active section and the search query. Section state lives
// only as long as the section is active: every Navigate builds it anew.
type Shell struct {
	store  *content.Store
	active SectionID
	query  string

	articles *section.Articles
	notes    *section.Notes
	photos   *section.Photos
	podcasts *section.Podcasts
}

func New(store *content.Store) *Shell {
	return &Shell{store: store}
}

func (s *Shell) Store() *content.Store { return s.store }
func (s *Shell) Active() SectionID     { return s.active }
func (s *Shell) Query() string         { return s.query }

// SetQuery replaces the shared search query. Each section applies it with
// its own predicate.
func (s *Shell) SetQuery(q string) { s.query = q }

// Navigate switches to id. Leaving a section drops its selection and
// drill-down state; entering one starts from Listing with nothing selected.
func (s *Shell) Navigate(id SectionID) {
	s.articles, s.notes, s.photos, s.podcasts = nil, nil, nil, nil
	s.active = id

	switch id {
	case Articles:
		s.articles = section.NewArticles(s.store)
	case Notes:
		s.notes = section.NewNotes(s.store)
	case Photos:
		s.photos = section.NewPhotos(s.store)
	case Podcasts:
		s.podcasts = section.NewPodcasts(s.store)
	default:
		s.active = Home
	}
}

// The section accessors return nil unless that section is active.

func (s *Shell) Articles() *section.Articles { return s.articles }
func (s *Shell) Notes() *section.Notes       { return s.notes }
func (s *Shell) Photos() *section.Photos     { return s.photos }
func (s *Shell) Podcasts() *section.Podcasts { return s.podcasts }

// Current returns the common controls of the active section, or nil on the
// home screen.
func (s *Shell) Current() Controls {
	switch s.active {
	case Articles:
		return s.articles
	case Notes:
		return s.notes
	case Photos:
		return s.photos
	case Podcasts:
		return s.podcasts
	}
	return nil
}

// Controls are the actions every section supports, whatever its record
// type.
type Controls interface {
	Kind() content.Kind
	View() section.View
	Select(id int) error
	Back() bool
	ToggleTag(tag string) error
	ToggleCategory(category string) error
	ClearFilters() error
	AllTags() []string
	AllCategories() []string
	SelectedTags() filter.Selection
	SelectedCategories() filter.Selection
	Cursor() int
	MoveCursor(delta, n int)
	ClampCursor(n int)
}
