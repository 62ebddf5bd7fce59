package section

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a selected id is not part of the section.
	ErrNotFound = errors.New("not found")
	// ErrNotListing is returned when filters change outside the listing.
	ErrNotListing = errors.New("filters can only change while listing")
	// ErrIllegalTransition is returned for a drill-down the current view
	// does not allow.
	ErrIllegalTransition = errors.New("illegal view transition")
)

// State is the drill-down level of a section.
type State int

const (
	Listing State = iota
	Viewing
	Gallery
	ViewingPhoto
)

func (s State) String() string {
	switch s {
	case Listing:
		return "listing"
	case Viewing:
		return "viewing"
	case Gallery:
		return "gallery"
	case ViewingPhoto:
		return "viewing-photo"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// View is the current view-state. ItemID is the record shown in Viewing or
// the gallery photo shown in ViewingPhoto; GalleryID is set in Gallery and
// ViewingPhoto.
type View struct {
	State     State
	ItemID    int
	GalleryID int
}

var transitions = map[State][]State{
	Listing: {Viewing, Gallery},
	Gallery: {ViewingPhoto},
}

// nav is a stack of views with Listing at the bottom. Back pops to the
// parent, so ViewingPhoto returns to its Gallery and everything else to
// Listing.
type nav struct {
	stack []View
}

func (n *nav) current() View {
	if len(n.stack) == 0 {
		return View{State: Listing}
	}
	return n.stack[len(n.stack)-1]
}

func (n *nav) push(v View) error {
	from := n.current().State
	for _, to := range transitions[from] {
		if to == v.State {
			n.stack = append(n.stack, v)
			return nil
		}
	}
	return fmt.Errorf("%s -> %s: %w", from, v.State, ErrIllegalTransition)
}

func (n *nav) back() bool {
	if len(n.stack) == 0 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}
