package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/matheuskafuri/folio/internal/content"
	"github.com/matheuskafuri/folio/internal/playback"
)

func renderTags(tags []string, st styles) string {
	if len(tags) == 0 {
		return ""
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + t
	}
	return st.tag.Render(strings.Join(out, " "))
}

func previewWidth(width int) int {
	w := width - 2
	if w < 10 {
		w = 10
	}
	return w
}

func renderArticlePreview(a content.Article, width, height int, st styles) string {
	w := previewWidth(width)
	title := st.previewTitle.Width(w).Render(a.Title)
	meta := st.previewMeta.Render(fmt.Sprintf("%s · %s", a.Date.Format("Jan 2, 2006"), a.ReadTime))
	body := st.previewBody.Width(w).Render(wrapText(a.Excerpt, w))
	hint := st.previewLink.Width(w).Render("enter to read")
	return fitHeight(lipgloss.JoinVertical(lipgloss.Left, title, meta, body, "", renderTags(a.Tags, st), hint), height, 0)
}

func renderNotePreview(n content.Note, width, height int, st styles) string {
	w := previewWidth(width)
	meta := st.previewMeta.Render(n.Date.Format("Jan 2, 2006"))
	body := st.previewBody.Width(w).Render(wrapText(n.Content, w))
	return fitHeight(lipgloss.JoinVertical(lipgloss.Left, meta, body, "", renderTags(n.Tags, st)), height, 0)
}

func renderPhotoPreview(p content.Photo, width, height int, st styles) string {
	w := previewWidth(width)
	title := st.previewTitle.Width(w).Render(p.Title)
	meta := st.previewMeta.Render(p.Date.Format("Jan 2, 2006"))
	body := st.previewBody.Width(w).Render(wrapText(p.Description, w))

	hint := "enter to view · o to open image"
	if ref, ok := p.GalleryRef(); ok {
		hint = fmt.Sprintf("enter to open gallery (%d photos)", ref.PhotoCount)
	}
	link := st.previewLink.Width(w).Render(hint)
	return fitHeight(lipgloss.JoinVertical(lipgloss.Left, title, meta, body, "", renderTags(p.Tags, st), link), height, 0)
}

func renderPodcastPreview(p content.Podcast, player playback.Player, width, height int, st styles) string {
	w := previewWidth(width)
	title := st.previewTitle.Width(w).Render(p.Title)
	meta := st.previewMeta.Render(fmt.Sprintf("%s · %s · %s", p.Category, p.Duration, p.Date.Format("Jan 2, 2006")))
	body := st.previewBody.Width(w).Render(wrapText(p.Description, w))

	hint := "enter to play · o to open audio"
	if player.PlayingID(p.ID) {
		hint = "enter to pause"
	}
	parts := []string{title, meta, body, "", renderTags(p.Tags, st)}
	if id, ok := player.Current(); ok && id == p.ID {
		parts = append(parts, "", renderPlayerLine(p, player, w, st))
	}
	parts = append(parts, st.previewLink.Width(w).Render(hint))
	return fitHeight(lipgloss.JoinVertical(lipgloss.Left, parts...), height, 0)
}

// renderPlayerLine shows the simulated position of an episode.
func renderPlayerLine(p content.Podcast, player playback.Player, width int, st styles) string {
	icon := "❚❚"
	if player.PlayingID(p.ID) {
		icon = "▶"
	}
	pos := player.Position(p.ID)
	length, err := playback.ParseLength(p.Duration)
	if err != nil || length <= 0 {
		return st.itemSelected.Render(icon) + " " + playback.FormatPosition(pos)
	}

	times := fmt.Sprintf(" %s / %s", playback.FormatPosition(pos), playback.FormatPosition(length))
	barWidth := width - lipgloss.Width(icon) - len(times) - 3
	if barWidth < 5 {
		barWidth = 5
	}
	filled := int(float64(barWidth) * float64(pos) / float64(length))
	if filled > barWidth {
		filled = barWidth
	}
	bar := st.itemSelected.Render(strings.Repeat("━", filled)) + st.tag.Render(strings.Repeat("─", barWidth-filled))
	return st.itemSelected.Render(icon) + " " + bar + st.itemTime.Render(times)
}

// renderMarkdown renders an article body; plain wrapped text is the fallback
// when glamour fails.
func renderMarkdown(body string, width int, st styles) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(st.markdown),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return wrapText(body, width)
	}
	out, err := r.Render(body)
	if err != nil {
		return wrapText(body, width)
	}
	return out
}

func renderArticleHeader(a content.Article, width int, st styles) string {
	title := st.previewTitle.Width(width).Render(a.Title)
	meta := st.previewMeta.Render(fmt.Sprintf("%s · %s  %s", a.Date.Format("Jan 2, 2006"), a.ReadTime, renderTags(a.Tags, st)))
	return lipgloss.JoinVertical(lipgloss.Left, title, meta)
}

func renderNoteDetail(n content.Note, width, height int, st styles) string {
	w := previewWidth(width)
	if w > 72 {
		w = 72
	}
	body := st.label.Width(w).Render(wrapText(n.Content, w))
	meta := st.previewMeta.Render(n.Date.Format("January 2, 2006"))
	card := st.modal.Render(lipgloss.JoinVertical(lipgloss.Left, meta, body, "", renderTags(n.Tags, st)))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderPhotoModal(p content.Photo, position string, width, height int, st styles) string {
	w := previewWidth(width)
	if w > 64 {
		w = 64
	}
	lines := []string{
		st.previewTitle.Width(w).Render(p.Title),
	}
	if p.Description != "" {
		lines = append(lines, st.previewBody.Width(w).Render(wrapText(p.Description, w)))
	}
	if position != "" {
		lines = append(lines, st.itemTime.Render(position))
	}
	lines = append(lines,
		renderTags(p.Tags, st),
		st.previewLink.Width(w).Render(truncateStr(p.URL, w)),
	)
	card := st.modal.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

const galleryColumns = 3

func renderGallery(g content.Gallery, cursor, width, height int, st styles) string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		st.previewTitle.Render(g.Title),
		st.previewBody.Render(wrapText(g.Description, previewWidth(width))),
	)

	cellWidth := width/galleryColumns - 4
	if cellWidth < 12 {
		cellWidth = 12
	}

	var rows []string
	var row []string
	for i, p := range g.Photos {
		style := st.card
		if i == cursor {
			style = st.cardActive
		}
		cell := style.Width(cellWidth).Render(
			st.label.Render(truncateStr(p.Title, cellWidth-4)) + "\n" +
				st.itemTime.Render(p.Date.Format("Jan 2, 2006")),
		)
		row = append(row, cell)
		if len(row) == galleryColumns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	if len(rows) == 0 {
		rows = append(rows, st.headerDim.Render("This gallery is empty."))
	}

	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return fitHeight(lipgloss.JoinVertical(lipgloss.Left, header, "", grid), height, 0)
}

func renderGalleryNotFound(id, width, height int, st styles) string {
	msg := st.errorText.Render(fmt.Sprintf("Gallery %d not found.", id)) + "\n\n" +
		st.headerDim.Render("esc to go back")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// fitHeight scrolls content by scroll lines and pads or cuts it to height.
func fitHeight(content string, height, scroll int) string {
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}

	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				out = append(out, line)
				line = w
			} else {
				line += " " + w
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
