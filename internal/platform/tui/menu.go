package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/festival-crush/internal/core"
	"github.com/vovakirdan/festival-crush/internal/games/festival/levels"
	"github.com/vovakirdan/festival-crush/internal/storage"
)

// Game IDs the menu can start.
const (
	GameFestival = "festival"
	GameDemo     = "festival-demo"
)

// MenuItem is what the player picked.
type MenuItem struct {
	GameID  string
	LevelID string // empty for the demo
	Title   string
}

// menuEntry is one line of the menu. Chapter headings are not selectable.
type menuEntry struct {
	heading string
	item    MenuItem
	stats   *storage.LevelStats
}

func (e menuEntry) selectable() bool {
	return e.heading == ""
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	entries        []menuEntry
	cursor         int
	scrollOffset   int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	theme          Theme
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a menu listing lvls grouped by chapter, with the best
// stars and high score from store when it is available.
func NewMenuModel(store *storage.Store, lvls []levels.Level, cfg core.RuntimeConfig) MenuModel {
	var stats map[string]*storage.LevelStats
	if store != nil {
		// A failed query only hides the stars.
		stats, _ = store.GetAllLevelsStats()
	}

	chapters, other := levels.Chapters(lvls)
	var entries []menuEntry
	add := func(lvl levels.Level) {
		entries = append(entries, menuEntry{
			item:  MenuItem{GameID: GameFestival, LevelID: lvl.ID, Title: lvl.Name()},
			stats: stats[lvl.ID],
		})
	}
	for _, ch := range chapters {
		entries = append(entries, menuEntry{heading: fmt.Sprintf("Year of the %s", ch.Zodiac)})
		for _, lvl := range ch.Levels {
			add(lvl)
		}
	}
	if len(other) > 0 {
		entries = append(entries, menuEntry{heading: "More levels"})
		for _, lvl := range other {
			add(lvl)
		}
	}
	entries = append(entries,
		menuEntry{heading: "Extras"},
		menuEntry{item: MenuItem{GameID: GameDemo, Title: "Watch the demo"}},
	)

	m := MenuModel{
		entries:   entries,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		theme:     GetTheme(),
	}
	m.cursor = m.nextSelectable(-1, 1)
	return m
}

// nextSelectable returns the first selectable entry after from in direction
// dir, or from itself when there is none.
func (m MenuModel) nextSelectable(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.entries); i += dir {
		if m.entries[i].selectable() {
			return i
		}
	}
	return from
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.updateScroll()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = m.nextSelectable(m.cursor, -1)
		m.updateScroll()

	case MenuActionDown:
		m.cursor = m.nextSelectable(m.cursor, 1)
		m.updateScroll()

	case MenuActionSelect:
		if m.cursor >= 0 && m.cursor < len(m.entries) && m.entries[m.cursor].selectable() {
			selected := m.entries[m.cursor].item
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

func (m MenuModel) visibleItems() int {
	return max(m.height-10, 3) // Account for header and footer
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *MenuModel) updateScroll() {
	visible := m.visibleItems()
	top := m.cursor
	// Keep the chapter heading above the first level in view.
	if top > 0 && !m.entries[top-1].selectable() {
		top--
	}
	if top < m.scrollOffset {
		m.scrollOffset = top
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("F E S T I V A L   C R U S H"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a level"), m.width))
	b.WriteString("\n\n")

	end := min(m.scrollOffset+m.visibleItems(), len(m.entries))
	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	for i := m.scrollOffset; i < end; i++ {
		b.WriteString(centerText(m.renderEntry(i), m.width))
		b.WriteString("\n")
	}
	if end < len(m.entries) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.Controls.Render("Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) renderEntry(i int) string {
	e := m.entries[i]
	if !e.selectable() {
		return m.theme.MenuChapter.Render(fmt.Sprintf("%-28s", e.heading))
	}

	cursor := "  "
	style := m.theme.MenuItemNormal
	if i == m.cursor {
		cursor = "> "
		style = m.theme.MenuItemActive
	}
	line := style.Render(fmt.Sprintf("%s%-12s", cursor, e.item.Title))
	if e.item.LevelID == "" {
		return line + strings.Repeat(" ", 14)
	}

	best, high := 0, ""
	if e.stats != nil {
		best = e.stats.BestStars
		high = fmt.Sprintf("%d", e.stats.HighScore)
	}
	stars := m.theme.Stars.Render(strings.Repeat("★", best)) +
		m.theme.StarsEmpty.Render(strings.Repeat("☆", 3-best))
	return line + "  " + stars + "  " + m.theme.MenuDescription.Render(fmt.Sprintf("%7s", high))
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured by
// its printed width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Item            MenuItem
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, lvls []levels.Level, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, lvls, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.Item = *m.Selected()
	return result, nil
}
