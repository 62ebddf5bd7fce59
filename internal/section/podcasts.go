package section

import (
	"fmt"
	"time"

	"github.com/matheuskafuri/folio/internal/content"
	"github.com/matheuskafuri/folio/internal/playback"
)

// Podcasts never drills down: selecting an episode drives the playback
// sub-state instead.
type Podcasts struct {
	*Section[content.Podcast]
	player playback.Player
}

func NewPodcasts(store *content.Store) *Podcasts {
	return &Podcasts{Section: New(content.KindPodcast, store.Podcasts())}
}

// Select toggles playback of episode id.
func (p *Podcasts) Select(id int) error {
	if _, ok := p.Lookup(id); !ok {
		return fmt.Errorf("podcast %d: %w", id, ErrNotFound)
	}
	p.player.Toggle(id)
	return nil
}

func (p *Podcasts) Player() playback.Player { return p.player }

// Stop unloads the current episode.
func (p *Podcasts) Stop() { p.player.Stop() }

// NowPlaying returns the loaded episode.
func (p *Podcasts) NowPlaying() (content.Podcast, bool) {
	id, ok := p.player.Current()
	if !ok {
		return content.Podcast{}, false
	}
	return p.Lookup(id)
}

// Tick advances the simulated position of the playing episode.
func (p *Podcasts) Tick(d time.Duration) {
	ep, ok := p.NowPlaying()
	if !ok {
		return
	}
	length, err := playback.ParseLength(ep.Duration)
	if err != nil {
		length = 0
	}
	p.player.Advance(d, length)
}
