package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/matheuskafuri/folio/internal/filter"
)

// tagBar renders a row of toggleable values over a selection owned by the
// section. It only tracks the cursor.
type tagBar struct {
	label  string
	values []string
	cursor int
}

func newTagBar(label string, values []string) tagBar {
	return tagBar{label: label, values: values}
}

func (b *tagBar) move(delta int) {
	b.cursor += delta
	if b.cursor >= len(b.values) {
		b.cursor = len(b.values) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
}

// current returns the value under the cursor.
func (b *tagBar) current() (string, bool) {
	if b.cursor < 0 || b.cursor >= len(b.values) {
		return "", false
	}
	return b.values[b.cursor], true
}

// at returns the n-th value, 1-based as shown to the user.
func (b *tagBar) at(n int) (string, bool) {
	if n < 1 || n > len(b.values) {
		return "", false
	}
	return b.values[n-1], true
}

func (b *tagBar) render(selected filter.Selection, focused bool, width int, st styles) string {
	sep := st.tabSeparator.Render(" · ")
	var parts []string

	parts = append(parts, st.headerDim.Render(b.label+":"))

	// "All" tab
	if selected.Empty() {
		parts = append(parts, st.tabActive.Render("All"))
	} else {
		parts = append(parts, st.tabInactive.Render("All"))
	}

	for i, v := range b.values {
		style := st.tabInactive
		if selected.Contains(v) {
			style = st.tabActive
		}
		label := v
		if focused && i == b.cursor {
			label = "[" + v + "]"
		}
		parts = append(parts, style.Render(label))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 1 {
			candidate += sep
		} else if i == 1 {
			candidate += " "
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	return st.filterBar.Width(width).Render(row)
}
