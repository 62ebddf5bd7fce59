package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matheuskafuri/folio/internal/shell"
)

// Theme selects a palette. It is resolved once at startup and carried by the
// App; every render function receives the styles built from it.
type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ResolveTheme maps a config value to a Theme. "auto" asks the terminal.
func ResolveTheme(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	case "", "auto":
		if lipgloss.HasDarkBackground() {
			return ThemeDark, nil
		}
		return ThemeLight, nil
	}
	return ThemeDark, fmt.Errorf("unknown theme %q (valid: dark, light, auto)", name)
}

type palette struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
	text      lipgloss.Color
	dim       lipgloss.Color
	accent    lipgloss.Color
	border    lipgloss.Color
	surface   lipgloss.Color
	statusBg  lipgloss.Color
	statusFg  lipgloss.Color
	tabBg     lipgloss.Color
	green     lipgloss.Color
	errColor  lipgloss.Color

	sections map[shell.SectionID]lipgloss.Color
}

var (
	darkPalette = palette{
		primary:   "#7571F9",
		secondary: "#ABABAB",
		text:      "#E4E4E4",
		dim:       "#626262",
		accent:    "#F25D94",
		border:    "#383838",
		surface:   "#1F1F2E",
		statusBg:  "#16213E",
		statusFg:  "#ABABAB",
		tabBg:     "#2A2A3E",
		green:     "#25D366",
		errColor:  "#FF5F87",
		sections: map[shell.SectionID]lipgloss.Color{
			shell.Articles: "#7571F9",
			shell.Notes:    "#F2C94C",
			shell.Podcasts: "#25D366",
			shell.Photos:   "#F25D94",
		},
	}

	lightPalette = palette{
		primary:   "#5A56E0",
		secondary: "#3D3D3D",
		text:      "#1A1A1A",
		dim:       "#9B9B9B",
		accent:    "#D6336C",
		border:    "#DBDBDB",
		surface:   "#F4F4F4",
		statusBg:  "#E8E8E8",
		statusFg:  "#3D3D3D",
		tabBg:     "#EEEEEE",
		green:     "#04B575",
		errColor:  "#C92A2A",
		sections: map[shell.SectionID]lipgloss.Color{
			shell.Articles: "#5A56E0",
			shell.Notes:    "#B8860B",
			shell.Podcasts: "#04B575",
			shell.Photos:   "#D6336C",
		},
	}
)

type styles struct {
	theme    Theme
	markdown string
	pal      palette

	header     lipgloss.Style
	headerDim  lipgloss.Style
	logo       lipgloss.Style
	key        lipgloss.Style
	label      lipgloss.Style
	card       lipgloss.Style
	cardActive lipgloss.Style

	listPane       lipgloss.Style
	listPaneActive lipgloss.Style
	previewPane    lipgloss.Style

	itemTitle    lipgloss.Style
	itemSelected lipgloss.Style
	itemMeta     lipgloss.Style
	itemTime     lipgloss.Style

	previewTitle lipgloss.Style
	previewMeta  lipgloss.Style
	previewBody  lipgloss.Style
	previewLink  lipgloss.Style
	tag          lipgloss.Style

	tabActive    lipgloss.Style
	tabInactive  lipgloss.Style
	tabSeparator lipgloss.Style
	filterBar    lipgloss.Style

	statusBar    lipgloss.Style
	errorText    lipgloss.Style
	searchPrompt lipgloss.Style
	spinner      lipgloss.Style
	helpCard     lipgloss.Style
	helpDim      lipgloss.Style
	modal        lipgloss.Style
}

func newStyles(t Theme) styles {
	p := darkPalette
	markdown := "dark"
	if t == ThemeLight {
		p = lightPalette
		markdown = "light"
	}

	return styles{
		theme:    t,
		markdown: markdown,
		pal:      p,

		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			PaddingLeft(1),
		headerDim: lipgloss.NewStyle().
			Foreground(p.dim),
		logo: lipgloss.NewStyle().Foreground(p.accent),
		key:  lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		label: lipgloss.NewStyle().
			Foreground(p.text),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 2).
			Width(24),
		cardActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(0, 2).
			Width(24),

		listPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border),
		listPaneActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary),
		previewPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border),

		itemTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true),
		itemSelected: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
		itemMeta: lipgloss.NewStyle().
			Foreground(p.green),
		itemTime: lipgloss.NewStyle().
			Foreground(p.dim),

		previewTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			MarginBottom(1),
		previewMeta: lipgloss.NewStyle().
			Foreground(p.green).
			MarginBottom(1),
		previewBody: lipgloss.NewStyle().
			Foreground(p.secondary),
		previewLink: lipgloss.NewStyle().
			Foreground(p.dim).
			Italic(true).
			MarginTop(1),
		tag: lipgloss.NewStyle().
			Foreground(p.dim),

		tabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.primary).
			Padding(0, 1).
			Bold(true),
		tabInactive: lipgloss.NewStyle().
			Foreground(p.secondary).
			Background(p.tabBg).
			Padding(0, 1),
		tabSeparator: lipgloss.NewStyle().
			Foreground(p.dim),
		filterBar: lipgloss.NewStyle().
			Background(p.surface).
			PaddingLeft(1),

		statusBar: lipgloss.NewStyle().
			Background(p.statusBg).
			Foreground(p.statusFg).
			PaddingLeft(1).
			PaddingRight(1),
		errorText: lipgloss.NewStyle().
			Foreground(p.errColor),
		searchPrompt: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
		spinner: lipgloss.NewStyle().
			Foreground(p.accent),
		helpCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 3),
		helpDim: lipgloss.NewStyle().
			Foreground(p.dim),
		modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.accent).
			Padding(1, 2),
	}
}

// sectionAccent is the color a section is announced in.
func (s styles) sectionAccent(id shell.SectionID) lipgloss.Style {
	c, ok := s.pal.sections[id]
	if !ok {
		c = s.pal.primary
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
