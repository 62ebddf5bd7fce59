// Package playback simulates a single-track podcast player. Nothing is
// decoded: the player only tracks which episode is loaded, whether it is
// playing and how far along it is, for display.
package playback

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Player is the playback sub-state of the podcasts section. The zero value
// has nothing loaded.
type Player struct {
	current  int
	loaded   bool
	playing  bool
	position time.Duration
}

// Toggle is the play/pause action for episode id. An episode that is not
// loaded replaces the current one, starting from the beginning; the loaded
// episode switches between playing and paused.
func (p *Player) Toggle(id int) {
	if p.loaded && p.current == id {
		p.playing = !p.playing
		return
	}
	p.current = id
	p.loaded = true
	p.playing = true
	p.position = 0
}

// Advance moves the position forward by d while playing. When length is
// known the position stops there and playback pauses.
func (p *Player) Advance(d, length time.Duration) {
	if !p.playing {
		return
	}
	p.position += d
	if length > 0 && p.position >= length {
		p.position = length
		p.playing = false
	}
}

// Stop unloads the current episode.
func (p *Player) Stop() {
	*p = Player{}
}

// Current returns the loaded episode id.
func (p Player) Current() (int, bool) {
	return p.current, p.loaded
}

func (p Player) IsPlaying() bool { return p.playing }

// PlayingID reports whether id is loaded and playing.
func (p Player) PlayingID(id int) bool {
	return p.loaded && p.playing && p.current == id
}

// Position is the elapsed time of the loaded episode, zero when id is not
// the loaded one.
func (p Player) Position(id int) time.Duration {
	if !p.loaded || p.current != id {
		return 0
	}
	return p.position
}

// ParseLength parses an episode length written as "m:ss" or "h:mm:ss".
func ParseLength(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid length %q (want m:ss or h:mm:ss)", s)
	}
	var total time.Duration
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid length %q (want m:ss or h:mm:ss)", s)
		}
		if i > 0 && n >= 60 {
			return 0, fmt.Errorf("invalid length %q: field %q out of range", s, part)
		}
		total = total*60 + time.Duration(n)
	}
	return total * time.Second, nil
}

// FormatPosition renders d as "m:ss".
func FormatPosition(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
