package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/matheuskafuri/folio/internal/content"
	"github.com/matheuskafuri/folio/internal/playback"
	"github.com/matheuskafuri/folio/internal/section"
)

func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}

// listItem is one row of the list pane, already reduced to text.
type listItem struct {
	id     int
	title  string
	meta   string
	date   content.Date
	marker string
}

func articleItems(articles []content.Article) []listItem {
	items := make([]listItem, len(articles))
	for i, a := range articles {
		items[i] = listItem{id: a.ID, title: a.Title, meta: a.ReadTime, date: a.Date}
	}
	return items
}

func noteItems(notes []content.Note) []listItem {
	items := make([]listItem, len(notes))
	for i, n := range notes {
		items[i] = listItem{id: n.ID, title: firstLine(n.Content), meta: strings.Join(n.Tags, ", "), date: n.Date}
	}
	return items
}

func photoItems(photos []content.Photo) []listItem {
	items := make([]listItem, len(photos))
	for i, p := range photos {
		item := listItem{id: p.ID, title: p.Title, meta: "photo", date: p.Date}
		if ref, ok := p.GalleryRef(); ok {
			item.meta = fmt.Sprintf("gallery · %d photos", ref.PhotoCount)
			item.marker = "▦"
		}
		items[i] = item
	}
	return items
}

func podcastItems(podcasts []content.Podcast, player playback.Player) []listItem {
	items := make([]listItem, len(podcasts))
	for i, p := range podcasts {
		item := listItem{id: p.ID, title: p.Title, meta: p.Category + " · " + p.Duration, date: p.Date}
		if id, ok := player.Current(); ok && id == p.ID {
			item.marker = "❚❚"
			if player.IsPlaying() {
				item.marker = "▶"
			}
		}
		items[i] = item
	}
	return items
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func renderListItem(item listItem, selected bool, width int, st styles) string {
	if width < 10 {
		width = 30
	}

	prefix := "  "
	if item.marker != "" {
		prefix = item.marker + " "
	}

	var title string
	if selected {
		title = st.itemSelected.Render("> " + truncateStr(item.title, width-4))
	} else {
		title = st.itemTitle.Render(prefix + truncateStr(item.title, width-4))
	}

	meta := "  " + st.itemMeta.Render(truncateStr(item.meta, width/2)) + " " + st.itemTime.Render("· "+relativeTime(item.date.Time))

	return title + "\n" + meta
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// emptyMessage is shown when the filters leave nothing to list.
func emptyMessage(kind content.Kind) string {
	return fmt.Sprintf("No %ss found matching your criteria.", kind)
}

func renderList(items []listItem, cursor int, kind content.Kind, height, width int, st styles) string {
	if len(items) == 0 {
		return lipglossCenter(emptyMessage(kind), width, height)
	}

	// Each item is 2 lines + 1 blank line = 3 lines
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	// Calculate scroll offset
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(items) {
		end = len(items)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(items[i], i == cursor, width, st))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func lipglossCenter(s string, width, height int) string {
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}

// stateLabel names the drill-down level for the header.
func stateLabel(v section.View) string {
	switch v.State {
	case section.Viewing:
		return fmt.Sprintf("#%d", v.ItemID)
	case section.Gallery:
		return fmt.Sprintf("gallery %d", v.GalleryID)
	case section.ViewingPhoto:
		return fmt.Sprintf("gallery %d › #%d", v.GalleryID, v.ItemID)
	}
	return ""
}
