package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matheuskafuri/folio/internal/content"
	"github.com/matheuskafuri/folio/internal/shell"
)

var asciiLogo = []string{
	`███████╗ ██████╗ ██╗     ██╗ ██████╗ `,
	`██╔════╝██╔═══██╗██║     ██║██╔═══██╗`,
	`█████╗  ██║   ██║██║     ██║██║   ██║`,
	`██╔══╝  ██║   ██║██║     ██║██║   ██║`,
	`██║     ╚██████╔╝███████╗██║╚██████╔╝`,
	`╚═╝      ╚═════╝ ╚══════╝╚═╝ ╚═════╝ `,
}

type homeCard struct {
	id    shell.SectionID
	title string
	blurb string
}

func homeCards(c content.Counts) []homeCard {
	cards := make([]homeCard, len(shell.Sections))
	for i, id := range shell.Sections {
		card := homeCard{id: id}
		switch id {
		case shell.Articles:
			card.title, card.blurb = "Articles", fmt.Sprintf("%d essays", c.Articles)
		case shell.Notes:
			card.title, card.blurb = "Notes", fmt.Sprintf("%d notes", c.Notes)
		case shell.Podcasts:
			card.title, card.blurb = "Podcasts", fmt.Sprintf("%d episodes", c.Podcasts)
		case shell.Photos:
			card.title, card.blurb = "Photos", fmt.Sprintf("%d photos · %d galleries", c.Photos, c.Galleries)
		}
		cards[i] = card
	}
	return cards
}

func renderHomeScreen(title, author string, counts content.Counts, cursor, width, height int, st styles) string {
	var lines []string

	// ASCII logo only for the default title
	if title == "" || strings.EqualFold(title, "folio") {
		for _, l := range asciiLogo {
			lines = append(lines, st.logo.Render(l))
		}
	} else {
		lines = append(lines, st.logo.Bold(true).Render(title))
	}
	if author != "" {
		lines = append(lines, st.headerDim.Render("by "+author))
	}
	lines = append(lines, "", "")

	var cards []string
	for i, c := range homeCards(counts) {
		style := st.card
		if i == cursor {
			style = st.cardActive
		}
		body := st.key.Render(fmt.Sprintf("[%d] ", i+1)) + st.sectionAccent(c.id).Render(c.title) + "\n" +
			st.headerDim.Render(c.blurb)
		cards = append(cards, style.Render(body))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	contentHeight := strings.Count(content, "\n") + 1

	topPad := (height - contentHeight) / 3
	if topPad < 0 {
		topPad = 0
	}

	// Center horizontally
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		strings.Repeat("\n", topPad)+content)
}
