package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/matheuskafuri/folio/internal/browser"
	"github.com/matheuskafuri/folio/internal/content"
	"github.com/matheuskafuri/folio/internal/section"
	"github.com/matheuskafuri/folio/internal/shell"
)

type mode int

const (
	modeHome mode = iota
	modeNormal
	modeSearch
	modeFilter
	modeCategory
	modeHelp
)

// viewportKey identifies what the article viewport was last rendered for.
type viewportKey struct {
	id    int
	width int
	theme Theme
}

type App struct {
	shell  *shell.Shell
	logger *zap.Logger
	title  string
	author string
	theme  Theme
	st     styles
	mode   mode

	// mode to return to when help closes
	helpReturn mode
	homeCursor int

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	spinner     spinner.Model
	viewport    viewport.Model
	viewportFor viewportKey
	tags        tagBar
	categories  tagBar

	// Playback ticking
	tickGen int
	ticking bool

	err    error
	opener func(string) error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Shell  *shell.Shell
	Logger *zap.Logger
	Title  string
	Author string
	Theme  Theme
	Start  shell.SectionID
	// Opener receives asset URLs; browser.Open when nil.
	Opener func(string) error
}

func NewApp(opts RunOpts) *App {
	st := newStyles(opts.Theme)

	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = st.searchPrompt.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = st.spinner

	title := opts.Title
	if title == "" {
		title = "folio"
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	opener := opts.Opener
	if opener == nil {
		opener = browser.Open
	}

	a := &App{
		shell:       opts.Shell,
		logger:      logger,
		title:       title,
		author:      opts.Author,
		theme:       opts.Theme,
		st:          st,
		searchInput: ti,
		spinner:     sp,
		viewport:    viewport.New(0, 0),
		opener:      opener,
	}
	a.navigate(opts.Start)
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) navigate(id shell.SectionID) {
	a.shell.Navigate(id)
	a.tickGen++
	a.ticking = false
	a.viewportFor = viewportKey{}

	cur := a.shell.Current()
	if cur == nil {
		a.mode = modeHome
		a.tags, a.categories = tagBar{}, tagBar{}
		return
	}
	a.mode = modeNormal
	a.tags = newTagBar("tags", cur.AllTags())
	a.categories = newTagBar("categories", cur.AllCategories())
	a.logger.Debug("navigate", zap.Stringer("section", id))
}

func (a *App) openCmd(url string) tea.Cmd {
	open := a.opener
	return func() tea.Msg {
		if err := open(url); err != nil {
			return openFailedMsg{url: url, err: err}
		}
		return nil
	}
}

func (a *App) tickCmd() tea.Cmd {
	gen := a.tickGen
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return playTickMsg{gen: gen}
	})
}

// startPlaybackTicks begins the once-per-second tick chain unless one is
// already running.
func (a *App) startPlaybackTicks() tea.Cmd {
	p := a.shell.Podcasts()
	if p == nil || !p.Player().IsPlaying() || a.ticking {
		return nil
	}
	a.ticking = true
	return tea.Batch(a.tickCmd(), a.spinner.Tick)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.syncViewport()
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case playTickMsg:
		if msg.gen != a.tickGen {
			return a, nil
		}
		p := a.shell.Podcasts()
		if p == nil || !p.Player().IsPlaying() {
			a.ticking = false
			return a, nil
		}
		p.Tick(time.Second)
		if !p.Player().IsPlaying() {
			a.ticking = false
			return a, nil
		}
		return a, a.tickCmd()

	case openFailedMsg:
		a.err = msg.err
		a.logger.Warn("open in browser failed", zap.String("url", msg.url), zap.Error(msg.err))
		return a, nil

	case spinner.TickMsg:
		if a.ticking {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	}

	// Mode-specific handling
	switch a.mode {
	case modeHome:
		return a.handleHomeKey(msg)
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeFilter:
		return a.handleFilterKey(msg, &a.tags, a.shell.Current().ToggleTag, "f")
	case modeCategory:
		return a.handleFilterKey(msg, &a.categories, a.shell.Current().ToggleCategory, "c")
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = a.helpReturn
		}
		return a, nil
	}

	return a.handleSectionKey(msg)
}

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "left", "up", "k":
		if a.homeCursor > 0 {
			a.homeCursor--
		}
		return a, nil
	case "right", "down", "j", "tab":
		if a.homeCursor < len(shell.Sections)-1 {
			a.homeCursor++
		}
		return a, nil
	case "enter":
		a.navigate(shell.Sections[a.homeCursor])
		return a, nil
	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		a.homeCursor = idx
		a.navigate(shell.Sections[idx])
		return a, nil
	case "t":
		a.toggleTheme()
		return a, nil
	case "?":
		a.helpReturn = modeHome
		a.mode = modeHelp
		return a, nil
	}
	return a, nil
}

func (a *App) handleSectionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur := a.shell.Current()
	view := cur.View()

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "h":
		a.navigate(shell.Home)
		return a, nil
	case "esc", "backspace":
		if !cur.Back() {
			a.navigate(shell.Home)
			return a, nil
		}
		a.syncViewport()
		return a, nil
	case "t":
		a.toggleTheme()
		return a, nil
	case "?":
		a.helpReturn = modeNormal
		a.mode = modeHelp
		return a, nil
	case "o":
		if url := a.assetURL(); url != "" {
			return a, a.openCmd(url)
		}
		return a, nil
	}

	switch view.State {
	case section.Listing:
		return a.handleListingKey(msg)
	case section.Gallery:
		return a.handleGalleryKey(msg)
	case section.Viewing:
		if cur.Kind() == content.KindArticle {
			var cmd tea.Cmd
			a.viewport, cmd = a.viewport.Update(msg)
			return a, cmd
		}
	}
	return a, nil
}

func (a *App) handleListingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur := a.shell.Current()
	items := a.items()

	switch msg.String() {
	case "j", "down":
		cur.MoveCursor(1, len(items))
		return a, nil
	case "k", "up":
		cur.MoveCursor(-1, len(items))
		return a, nil
	case "g", "home":
		cur.MoveCursor(-len(items), len(items))
		return a, nil
	case "G", "end":
		cur.MoveCursor(len(items), len(items))
		return a, nil
	case "enter":
		if cur.Cursor() >= len(items) {
			return a, nil
		}
		return a, a.selectItem(items[cur.Cursor()].id)
	case " ":
		return a, a.togglePlayback(items)
	case "s":
		if p := a.shell.Podcasts(); p != nil {
			p.Stop()
			a.tickGen++
			a.ticking = false
		}
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.SetValue(a.shell.Query())
		a.searchInput.CursorEnd()
		return a, a.searchInput.Focus()
	case "f":
		if len(a.tags.values) > 0 {
			a.mode = modeFilter
		}
		return a, nil
	case "c":
		if len(a.categories.values) > 0 {
			a.mode = modeCategory
		}
		return a, nil
	case "x":
		if err := cur.ClearFilters(); err != nil {
			a.err = err
		}
		return a, nil
	}
	return a, nil
}

func (a *App) selectItem(id int) tea.Cmd {
	cur := a.shell.Current()
	if err := cur.Select(id); err != nil {
		a.err = err
		return nil
	}
	a.logger.Debug("select",
		zap.String("kind", string(cur.Kind())),
		zap.Int("id", id),
		zap.Stringer("state", cur.View().State))
	a.syncViewport()
	return a.startPlaybackTicks()
}

// togglePlayback pauses or resumes the loaded episode, or starts the one
// under the cursor when nothing is loaded.
func (a *App) togglePlayback(items []listItem) tea.Cmd {
	p := a.shell.Podcasts()
	if p == nil {
		return nil
	}
	if id, ok := p.Player().Current(); ok {
		return a.selectItem(id)
	}
	if p.Cursor() < len(items) {
		return a.selectItem(items[p.Cursor()].id)
	}
	return nil
}

func (a *App) handleGalleryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := a.shell.Photos()
	if p == nil {
		return a, nil
	}
	switch msg.String() {
	case "right", "l":
		p.MoveGalleryCursor(1)
	case "left":
		p.MoveGalleryCursor(-1)
	case "j", "down":
		p.MoveGalleryCursor(galleryColumns)
	case "k", "up":
		p.MoveGalleryCursor(-galleryColumns)
	case "enter":
		photo, ok := p.GalleryPhotoAtCursor()
		if !ok {
			return a, nil
		}
		if err := p.OpenPhoto(photo.ID); err != nil {
			a.err = err
		}
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.setQuery("")
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	// Only re-filter on actual value changes, not cursor moves etc.
	if v := a.searchInput.Value(); v != a.shell.Query() {
		a.setQuery(v)
	}
	return a, cmd
}

func (a *App) setQuery(q string) {
	a.shell.SetQuery(q)
	if cur := a.shell.Current(); cur != nil {
		cur.ClampCursor(len(a.items()))
	}
}

func (a *App) handleFilterKey(msg tea.KeyMsg, bar *tagBar, toggle func(string) error, exitKey string) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", exitKey:
		a.mode = modeNormal
		return a, nil
	case "left", "h":
		bar.move(-1)
		return a, nil
	case "right", "l":
		bar.move(1)
		return a, nil
	case " ", "enter":
		if v, ok := bar.current(); ok {
			a.toggleFilter(toggle, v)
		}
		return a, nil
	case "x":
		if err := a.shell.Current().ClearFilters(); err != nil {
			a.err = err
		}
		return a, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if v, ok := bar.at(int(msg.String()[0] - '0')); ok {
			a.toggleFilter(toggle, v)
		}
		return a, nil
	}
	return a, nil
}

func (a *App) toggleFilter(toggle func(string) error, v string) {
	if err := toggle(v); err != nil {
		a.err = err
	}
}

func (a *App) toggleTheme() {
	a.theme = a.theme.Toggle()
	a.st = newStyles(a.theme)
	a.searchInput.Prompt = a.st.searchPrompt.Render("/ ")
	a.spinner.Style = a.st.spinner
	a.syncViewport()
	a.logger.Debug("theme", zap.Stringer("theme", a.theme))
}

// items returns the visible records of the active section as list rows.
func (a *App) items() []listItem {
	q := a.shell.Query()
	switch a.shell.Active() {
	case shell.Articles:
		return articleItems(a.shell.Articles().Visible(q))
	case shell.Notes:
		return noteItems(a.shell.Notes().Visible(q))
	case shell.Photos:
		return photoItems(a.shell.Photos().Visible(q))
	case shell.Podcasts:
		p := a.shell.Podcasts()
		return podcastItems(p.Visible(q), p.Player())
	}
	return nil
}

// assetURL is what "o" opens: the photo being viewed or under the cursor,
// or the audio of the episode under the cursor.
func (a *App) assetURL() string {
	q := a.shell.Query()
	switch a.shell.Active() {
	case shell.Photos:
		p := a.shell.Photos()
		if photo, ok := p.ViewedPhoto(); ok {
			return photo.URL
		}
		if p.View().State == section.Gallery {
			if photo, ok := p.GalleryPhotoAtCursor(); ok {
				return photo.URL
			}
			return ""
		}
		if photo, ok := p.AtCursor(q); ok {
			return photo.URL
		}
	case shell.Podcasts:
		if ep, ok := a.shell.Podcasts().AtCursor(q); ok {
			return ep.AudioURL
		}
	}
	return ""
}

// Layout
const (
	headerHeight = 1
	statusHeight = 1
	borderHeight = 2
)

func (a *App) filterRows() int {
	rows := 1
	if len(a.categories.values) > 0 {
		rows++
	}
	return rows
}

func (a *App) contentHeight() int {
	h := a.height - headerHeight - a.filterRows() - statusHeight - borderHeight
	if a.nowPlayingLine() != "" {
		h--
	}
	if h < 3 {
		h = 3
	}
	return h
}

// syncViewport renders the open article into the viewport when the article,
// the width or the theme changed.
func (a *App) syncViewport() {
	art := a.shell.Articles()
	if art == nil || a.width == 0 {
		return
	}
	viewed, ok := art.Viewed()
	if !ok {
		a.viewportFor = viewportKey{}
		return
	}

	innerW := a.width - 4
	headerLines := 3
	a.viewport.Width = innerW
	a.viewport.Height = a.contentHeight() - headerLines

	key := viewportKey{id: viewed.ID, width: innerW, theme: a.theme}
	if key == a.viewportFor {
		return
	}
	a.viewportFor = key
	a.viewport.SetContent(renderMarkdown(viewed.Body, innerW, a.st))
	a.viewport.GotoTop()
}

func (a *App) withBottomBar(content string, left, hints string) string {
	bar := renderBottomBar(left, hints, a.width, a.st)
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(a.st.pal.accent).Render("  folio")
	}

	if a.mode == modeHelp {
		return a.withBottomBar(a.renderHelp(), "", "? close  q quit")
	}

	if a.mode == modeHome {
		home := renderHomeScreen(a.title, a.author, a.shell.Store().Counts(), a.homeCursor, a.width, a.height-1, a.st)
		return a.withBottomBar(home, a.errLine(), "←/→ move  enter open  1-4 jump  t theme  q quit")
	}

	cur := a.shell.Current()
	view := cur.View()

	header := a.renderHeader(cur)

	// Filter bars; the search input replaces the tag bar while searching
	var filters []string
	if a.mode == modeSearch {
		filters = append(filters, a.searchInput.View())
	} else {
		filters = append(filters, a.tags.render(cur.SelectedTags(), a.mode == modeFilter, a.width, a.st))
	}
	if len(a.categories.values) > 0 {
		filters = append(filters, a.categories.render(cur.SelectedCategories(), a.mode == modeCategory, a.width, a.st))
	}

	contentHeight := a.contentHeight()
	body := a.renderBody(cur, view, contentHeight)

	parts := []string{header}
	parts = append(parts, filters...)
	parts = append(parts, body)
	if line := a.nowPlayingLine(); line != "" {
		parts = append(parts, line)
	}

	items := a.items()
	status := renderStatusBar(len(items), cur.Kind(), cur.SelectedTags().Label(), a.shell.Query(), a.hints(view), a.width, a.st)
	if a.err != nil {
		status = a.st.errorText.Render(a.err.Error())
	}
	parts = append(parts, status)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) errLine() string {
	if a.err == nil {
		return ""
	}
	return a.st.errorText.Render(a.err.Error())
}

func (a *App) renderHeader(cur shell.Controls) string {
	active := a.shell.Active()
	name := strings.ToUpper(active.String()[:1]) + active.String()[1:]
	left := a.st.header.Render(a.title) + " " + a.st.sectionAccent(active).Render(name)
	if label := stateLabel(cur.View()); label != "" {
		left += a.st.headerDim.Render(" › " + label)
	}

	right := a.st.headerDim.Render(a.theme.String())
	if q := a.shell.Query(); q != "" {
		right = a.st.searchPrompt.Render("/") + a.st.label.Render(q) + "  " + right
	}

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + fmt.Sprintf("%*s", gap, "") + right
}

func (a *App) renderBody(cur shell.Controls, view section.View, height int) string {
	switch view.State {
	case section.Viewing:
		switch a.shell.Active() {
		case shell.Articles:
			if art, ok := a.shell.Articles().Viewed(); ok {
				inner := lipgloss.JoinVertical(lipgloss.Left,
					renderArticleHeader(art, a.width-4, a.st),
					a.viewport.View())
				return a.st.listPaneActive.Width(a.width - 2).Height(height).Render(inner)
			}
		case shell.Notes:
			if n, ok := a.shell.Notes().Viewed(); ok {
				return renderNoteDetail(n, a.width, height+borderHeight, a.st)
			}
		case shell.Photos:
			if p, ok := a.shell.Photos().ViewedPhoto(); ok {
				return renderPhotoModal(p, "", a.width, height+borderHeight, a.st)
			}
		}

	case section.Gallery, section.ViewingPhoto:
		p := a.shell.Photos()
		g, ok := p.Gallery()
		if !ok {
			return renderGalleryNotFound(view.GalleryID, a.width, height+borderHeight, a.st)
		}
		if view.State == section.ViewingPhoto {
			if photo, ok := p.ViewedPhoto(); ok {
				pos := ""
				for i, gp := range g.Photos {
					if gp.ID == photo.ID {
						pos = fmt.Sprintf("%d of %d · %s", i+1, len(g.Photos), g.Title)
					}
				}
				return renderPhotoModal(photo, pos, a.width, height+borderHeight, a.st)
			}
		}
		inner := renderGallery(g, p.GalleryCursor(), a.width-4, height, a.st)
		return a.st.listPaneActive.Width(a.width - 2).Height(height).Render(inner)
	}

	return a.renderListing(cur, height)
}

func (a *App) renderListing(cur shell.Controls, height int) string {
	listWidth := int(float64(a.width) * 0.4)
	previewWidth := a.width - listWidth - 1 // gap

	items := a.items()

	innerListW := listWidth - 4 // border + padding
	listContent := renderList(items, cur.Cursor(), cur.Kind(), height, innerListW, a.st)
	listPane := a.st.listPaneActive.Width(listWidth - 2).Height(height).Render(listContent)

	innerPreviewW := previewWidth - 4
	previewContent := lipglossCenter("Nothing selected", innerPreviewW, height)
	if cur.Cursor() < len(items) {
		previewContent = a.renderItemPreview(items[cur.Cursor()].id, innerPreviewW, height)
	}
	previewPane := a.st.previewPane.Width(previewWidth - 2).Height(height).Render(previewContent)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)
}

func (a *App) renderItemPreview(id, width, height int) string {
	switch a.shell.Active() {
	case shell.Articles:
		if r, ok := a.shell.Articles().Lookup(id); ok {
			return renderArticlePreview(r, width, height, a.st)
		}
	case shell.Notes:
		if r, ok := a.shell.Notes().Lookup(id); ok {
			return renderNotePreview(r, width, height, a.st)
		}
	case shell.Photos:
		if r, ok := a.shell.Photos().Lookup(id); ok {
			return renderPhotoPreview(r, width, height, a.st)
		}
	case shell.Podcasts:
		p := a.shell.Podcasts()
		if r, ok := p.Lookup(id); ok {
			return renderPodcastPreview(r, p.Player(), width, height, a.st)
		}
	}
	return ""
}

// nowPlayingLine is the player strip shown under the podcast list.
func (a *App) nowPlayingLine() string {
	p := a.shell.Podcasts()
	if p == nil {
		return ""
	}
	ep, ok := p.NowPlaying()
	if !ok {
		return ""
	}
	prefix := " "
	if a.ticking && p.Player().IsPlaying() {
		prefix = a.spinner.View() + " "
	}
	title := a.st.label.Render(truncateStr(ep.Title, a.width/3)) + "  "
	width := a.width - lipgloss.Width(prefix) - lipgloss.Width(title) - 1
	return prefix + title + renderPlayerLine(ep, p.Player(), width, a.st)
}

func (a *App) hints(view section.View) string {
	switch a.mode {
	case modeSearch:
		return "esc clear  enter done"
	case modeFilter:
		return "←/→ move  space toggle  x clear  esc done"
	case modeCategory:
		return "←/→ move  space toggle  x clear  esc done"
	}
	switch view.State {
	case section.Viewing, section.ViewingPhoto:
		if a.shell.Active() == shell.Photos {
			return "o open  esc back  q quit"
		}
		return "j/k scroll  esc back  q quit"
	case section.Gallery:
		return "arrows move  enter view  esc back"
	}
	if a.shell.Active() == shell.Podcasts {
		return "enter play  space pause  s stop  / search  f tags  c categories  ? help"
	}
	return "enter open  / search  f tags  h home  ? help"
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(a.st.pal.accent).Bold(true).Render("folio")
	dim := a.st.helpDim

	help := title + dim.Render(" · Keyboard Shortcuts") + "\n\n" +
		dim.Render("Home") + "\n" +
		"  ←/→, enter    Choose a section\n" +
		"  1-4           Jump to a section\n\n" +
		dim.Render("Sections") + "\n" +
		"  j/k, ↑/↓     Move through the list\n" +
		"  enter         Open item, gallery or play episode\n" +
		"  esc, bksp     Back\n" +
		"  o             Open photo or audio in browser\n" +
		"  space         Play/pause episode\n" +
		"  s             Stop episode\n" +
		"  /             Search\n" +
		"  f             Tag filter mode\n" +
		"  c             Category filter mode (podcasts)\n" +
		"  x             Clear filters\n\n" +
		dim.Render("Filter Mode") + "\n" +
		"  ←/→, h/l     Move between values\n" +
		"  space/enter   Toggle value\n" +
		"  1-9           Toggle value by number\n" +
		"  esc           Exit filter mode\n\n" +
		dim.Render("General") + "\n" +
		"  h             Go to home screen\n" +
		"  t             Toggle theme\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := a.st.helpCard.Render(help)

	return lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
