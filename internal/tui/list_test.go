package tui

import (
	"testing"
	"time"

	"github.com/matheuskafuri/folio/internal/content"
	"github.com/matheuskafuri/folio/internal/playback"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		got := truncateStr(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateStrUTF8(t *testing.T) {
	got := truncateStr("日本語テスト", 5)
	want := "日本..."
	if got != want {
		t.Errorf("truncateStr(Japanese, 5) = %q, want %q", got, want)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		t    time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-5 * time.Minute), "5m"},
		{now.Add(-3 * time.Hour), "3h"},
		{now.Add(-2 * 24 * time.Hour), "2d"},
	}
	for _, tt := range tests {
		got := relativeTime(tt.t)
		if got != tt.want {
			t.Errorf("relativeTime(%v ago) = %q, want %q", now.Sub(tt.t), got, tt.want)
		}
	}
}

func TestRelativeTimeOld(t *testing.T) {
	old := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	got := relativeTime(old)
	if got != "Jun 15, 2025" {
		t.Errorf("relativeTime(old date) = %q, want %q", got, "Jun 15, 2025")
	}
}

func TestEmptyMessage(t *testing.T) {
	tests := []struct {
		kind content.Kind
		want string
	}{
		{content.KindArticle, "No articles found matching your criteria."},
		{content.KindNote, "No notes found matching your criteria."},
		{content.KindPhoto, "No photos found matching your criteria."},
		{content.KindPodcast, "No podcasts found matching your criteria."},
	}
	for _, tt := range tests {
		if got := emptyMessage(tt.kind); got != tt.want {
			t.Errorf("emptyMessage(%s) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPhotoItemsMarkGalleries(t *testing.T) {
	items := photoItems([]content.Photo{
		{ID: 1, Title: "Single", Target: content.Single{}},
		{ID: 2, Title: "Set", Target: content.GalleryRef{GalleryID: 7, PhotoCount: 4}},
	})
	if items[0].marker != "" || items[0].meta != "photo" {
		t.Errorf("single photo item = %+v", items[0])
	}
	if items[1].marker == "" || items[1].meta != "gallery · 4 photos" {
		t.Errorf("gallery photo item = %+v", items[1])
	}
}

func TestPodcastItemsMarkLoadedEpisode(t *testing.T) {
	var player playback.Player
	player.Toggle(2)
	eps := []content.Podcast{{ID: 1, Title: "One"}, {ID: 2, Title: "Two"}}

	items := podcastItems(eps, player)
	if items[0].marker != "" {
		t.Errorf("unloaded episode marked %q", items[0].marker)
	}
	if items[1].marker != "▶" {
		t.Errorf("playing episode marker = %q, want ▶", items[1].marker)
	}

	player.Toggle(2)
	items = podcastItems(eps, player)
	if items[1].marker != "❚❚" {
		t.Errorf("paused episode marker = %q, want ❚❚", items[1].marker)
	}
}

func TestNoteItemsUseFirstLine(t *testing.T) {
	items := noteItems([]content.Note{{ID: 1, Content: "  first line\nsecond", Tags: []string{"a", "b"}}})
	if items[0].title != "first line" {
		t.Errorf("title = %q", items[0].title)
	}
	if items[0].meta != "a, b" {
		t.Errorf("meta = %q", items[0].meta)
	}
}

func TestWrapTextKeepsParagraphs(t *testing.T) {
	got := wrapText("one two three\n\nfour", 7)
	want := "one two\nthree\n\nfour"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
}

func TestTagBar(t *testing.T) {
	b := newTagBar("tags", []string{"a", "b", "c"})
	b.move(-1)
	if v, _ := b.current(); v != "a" {
		t.Errorf("current after move(-1) = %q", v)
	}
	b.move(5)
	if v, _ := b.current(); v != "c" {
		t.Errorf("current after move(5) = %q", v)
	}
	if v, ok := b.at(2); !ok || v != "b" {
		t.Errorf("at(2) = %q, %v", v, ok)
	}
	if _, ok := b.at(4); ok {
		t.Error("at(4) should be out of range")
	}

	empty := newTagBar("tags", nil)
	if _, ok := empty.current(); ok {
		t.Error("empty bar has no current value")
	}
}

func TestThemeToggleAndStyles(t *testing.T) {
	if ThemeDark.Toggle() != ThemeLight || ThemeLight.Toggle() != ThemeDark {
		t.Error("Toggle should swap dark and light")
	}
	if newStyles(ThemeLight).markdown != "light" || newStyles(ThemeDark).markdown != "dark" {
		t.Error("markdown style should follow the theme")
	}
	for _, name := range []string{"dark", "light", "auto", ""} {
		if _, err := ResolveTheme(name); err != nil {
			t.Errorf("ResolveTheme(%q): %v", name, err)
		}
	}
	if _, err := ResolveTheme("neon"); err == nil {
		t.Error("ResolveTheme(neon) should fail")
	}
}
