package section

import (
	"fmt"

	"github.com/matheuskafuri/folio/internal/content"
)

// Photos adds the gallery drill-down to the photo section:
// Listing -> Gallery(id) -> ViewingPhoto(photo).
type Photos struct {
	*Section[content.Photo]
	store         *content.Store
	galleryCursor int
}

func NewPhotos(store *content.Store) *Photos {
	return &Photos{
		Section: New(content.KindPhoto, store.Photos()),
		store:   store,
	}
}

// Select opens a single photo in Viewing, or the gallery a gallery pointer
// refers to.
func (p *Photos) Select(id int) error {
	photo, ok := p.Lookup(id)
	if !ok {
		return fmt.Errorf("photo %d: %w", id, ErrNotFound)
	}
	if ref, ok := photo.GalleryRef(); ok {
		return p.OpenGallery(ref.GalleryID)
	}
	return p.open(id)
}

// OpenGallery enters Gallery(id). The gallery does not have to exist: the
// view then reports not-found through Gallery and only Back is useful.
func (p *Photos) OpenGallery(id int) error {
	if err := p.nav.push(View{State: Gallery, GalleryID: id}); err != nil {
		return err
	}
	p.galleryCursor = 0
	return nil
}

// Gallery resolves the gallery of the current view. ok is false outside the
// gallery states and for unknown gallery ids.
func (p *Photos) Gallery() (content.Gallery, bool) {
	v := p.View()
	if v.State != Gallery && v.State != ViewingPhoto {
		return content.Gallery{}, false
	}
	return p.store.Gallery(v.GalleryID)
}

// OpenPhoto moves from Gallery to ViewingPhoto for a photo of that gallery.
func (p *Photos) OpenPhoto(id int) error {
	v := p.View()
	if v.State != Gallery {
		return fmt.Errorf("%s -> %s: %w", v.State, ViewingPhoto, ErrIllegalTransition)
	}
	g, ok := p.store.Gallery(v.GalleryID)
	if !ok {
		return fmt.Errorf("gallery %d: %w", v.GalleryID, ErrNotFound)
	}
	if _, ok := g.Photo(id); !ok {
		return fmt.Errorf("photo %d in gallery %d: %w", id, g.ID, ErrNotFound)
	}
	return p.nav.push(View{State: ViewingPhoto, ItemID: id, GalleryID: g.ID})
}

// ViewedPhoto returns the photo shown in Viewing or ViewingPhoto.
func (p *Photos) ViewedPhoto() (content.Photo, bool) {
	v := p.View()
	switch v.State {
	case Viewing:
		return p.Lookup(v.ItemID)
	case ViewingPhoto:
		g, ok := p.Gallery()
		if !ok {
			return content.Photo{}, false
		}
		return g.Photo(v.ItemID)
	}
	return content.Photo{}, false
}

func (p *Photos) GalleryCursor() int { return p.galleryCursor }

// MoveGalleryCursor moves the cursor over the photos of the open gallery.
func (p *Photos) MoveGalleryCursor(delta int) {
	g, ok := p.Gallery()
	if !ok {
		return
	}
	p.galleryCursor += delta
	if p.galleryCursor >= len(g.Photos) {
		p.galleryCursor = len(g.Photos) - 1
	}
	if p.galleryCursor < 0 {
		p.galleryCursor = 0
	}
}

// GalleryPhotoAtCursor returns the gallery photo under the gallery cursor.
func (p *Photos) GalleryPhotoAtCursor() (content.Photo, bool) {
	g, ok := p.Gallery()
	if !ok || p.galleryCursor >= len(g.Photos) {
		return content.Photo{}, false
	}
	return g.Photos[p.galleryCursor], true
}
