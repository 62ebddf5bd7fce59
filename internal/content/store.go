package content

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned when two records of the same kind share an id.
var ErrDuplicateID = errors.New("duplicate id")

// Store holds the content collections. It is built once by Load or Parse and
// never changes afterwards; accessors hand out copies.
type Store struct {
	articles  []Article
	notes     []Note
	photos    []Photo
	galleries []Gallery
	podcasts  []Podcast

	galleryIndex map[int]int
}

// Counts summarises a store for display.
type Counts struct {
	Articles  int
	Notes     int
	Photos    int
	Galleries int
	Podcasts  int
	Tags      int
}

func newStore(doc document) (*Store, error) {
	s := &Store{
		articles:     doc.Articles,
		notes:        doc.Notes,
		podcasts:     doc.Podcasts,
		galleryIndex: make(map[int]int),
	}

	if err := uniqueIDs(KindArticle, s.articles); err != nil {
		return nil, err
	}
	if err := uniqueIDs(KindNote, s.notes); err != nil {
		return nil, err
	}
	if err := uniqueIDs(KindPodcast, s.podcasts); err != nil {
		return nil, err
	}

	for _, p := range doc.Photos {
		s.photos = append(s.photos, p.photo())
	}
	if err := uniqueIDs(KindPhoto, s.photos); err != nil {
		return nil, err
	}

	for _, g := range doc.Galleries {
		if _, dup := s.galleryIndex[g.ID]; dup {
			return nil, fmt.Errorf("gallery %d: %w", g.ID, ErrDuplicateID)
		}
		gallery := g.gallery()
		if err := uniqueIDs(KindPhoto, gallery.Photos); err != nil {
			return nil, fmt.Errorf("gallery %d: %w", g.ID, err)
		}
		s.galleryIndex[g.ID] = len(s.galleries)
		s.galleries = append(s.galleries, gallery)
	}

	return s, nil
}

func uniqueIDs[R Record](kind Kind, records []R) error {
	seen := make(map[int]bool, len(records))
	for _, r := range records {
		id := r.RecordID()
		if seen[id] {
			return fmt.Errorf("%s %d: %w", kind, id, ErrDuplicateID)
		}
		seen[id] = true
	}
	return nil
}

func (s *Store) Articles() []Article { return append([]Article(nil), s.articles...) }
func (s *Store) Notes() []Note       { return append([]Note(nil), s.notes...) }
func (s *Store) Photos() []Photo     { return append([]Photo(nil), s.photos...) }
func (s *Store) Podcasts() []Podcast { return append([]Podcast(nil), s.podcasts...) }

// Gallery looks up a gallery by id. A missing gallery is not an error; the
// caller renders a fallback.
func (s *Store) Gallery(id int) (Gallery, bool) {
	i, ok := s.galleryIndex[id]
	if !ok {
		return Gallery{}, false
	}
	return s.galleries[i], true
}

// DanglingGalleryRefs returns the ids of photos that point at a gallery the
// store does not contain.
func (s *Store) DanglingGalleryRefs() []int {
	var ids []int
	for _, p := range s.photos {
		if ref, ok := p.GalleryRef(); ok {
			if _, found := s.galleryIndex[ref.GalleryID]; !found {
				ids = append(ids, p.ID)
			}
		}
	}
	return ids
}

func (s *Store) Counts() Counts {
	tags := make(map[string]bool)
	collect := func(ts []string) {
		for _, t := range ts {
			tags[t] = true
		}
	}
	for _, a := range s.articles {
		collect(a.Tags)
	}
	for _, n := range s.notes {
		collect(n.Tags)
	}
	for _, p := range s.photos {
		collect(p.Tags)
	}
	for _, p := range s.podcasts {
		collect(p.Tags)
	}

	return Counts{
		Articles:  len(s.articles),
		Notes:     len(s.notes),
		Photos:    len(s.photos),
		Galleries: len(s.galleries),
		Podcasts:  len(s.podcasts),
		Tags:      len(tags),
	}
}
