package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/matheuskafuri/folio/internal/content"
)

func renderStatusBar(count int, kind content.Kind, filterLabel, query, hints string, width int, st styles) string {
	left := fmt.Sprintf(" %d %ss", count, kind)
	if filterLabel != "All" {
		left += " · " + filterLabel
	}
	if query != "" {
		left += " · " + st.searchPrompt.Render("/") + query
	}

	right := " " + hints + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return st.statusBar.Width(width).Render(bar)
}

func renderBottomBar(left, hints string, width int, st styles) string {
	if left != "" {
		left = " " + left
	}
	right := " " + hints + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return st.statusBar.Width(width).Render(bar)
}
