package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/core"
	"github.com/vovakirdan/memory-match/internal/game"
	"github.com/vovakirdan/memory-match/internal/layout"
	"github.com/vovakirdan/memory-match/internal/storage"
)

// gridChoices are the board sizes offered on the grid selection screen.
var gridChoices = []int{4, 6}

// Model is the Bubble Tea model for the memory game. It owns the pure
// session state machine and translates terminal events into session calls.
type Model struct {
	session *game.Session
	store   *storage.Store
	screen  *core.Screen
	config  core.RuntimeConfig
	gameCfg config.GameConfig
	theme   Theme
	keys    *KeyMapper

	lay layout.Layout

	// scoreboard, when non-nil, captures all input until dismissed.
	scoreboard *ScoreboardModel

	menuCursor int
	gridCursor int

	// Keyboard cursor on the board. Mouse hover moves it too.
	cursorRow int
	cursorCol int

	start       time.Time // wall-clock origin of the monotonic timeline
	lastTick    time.Duration
	resultSaved bool // whether the finished game was written to storage
	quitting    bool
}

// NewModel creates a new Bubble Tea model for the memory game.
func NewModel(store *storage.Store, cfg core.RuntimeConfig, gameCfg config.GameConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = gameCfg.TickRate
	}

	return Model{
		session: game.NewSession(gameCfg.GameTiming(), cfg.Seed),
		store:   store,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		gameCfg: gameCfg,
		theme:   DefaultTheme(),
		keys:    NewKeyMapper(),
		start:   time.Now(),
	}
}

// now returns the monotonic timeline position for session updates.
func (m Model) now() time.Duration {
	return time.Since(m.start)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Scoreboard captures everything while open.
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// updateScoreboard forwards messages to the embedded scoreboard until the
// user backs out of it.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scoreboard.Update(msg)
	if sb, ok := updated.(ScoreboardModel); ok {
		if sb.IsQuitting() {
			m.quitting = true
			return m, tea.Quit
		}
		if sb.IsGoingBack() {
			m.scoreboard = nil
			return m, nil
		}
		m.scoreboard = &sb
	}

	// Keep the simulation ticking behind the scoreboard.
	if _, isTick := msg.(TickMsg); isTick {
		return m, tickCmd(m.config.TickRate)
	}
	return m, cmd
}

// handleKey routes keyboard input based on the current session state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.session.State() {
	case game.StateMenu:
		return m.handleMenuKey(msg)
	case game.StateGridSelection:
		return m.handleGridKey(msg)
	case game.StatePlaying:
		return m.handlePlayKey(msg)
	case game.StateGameOver:
		return m.handleGameOverKey(msg)
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	const menuItems = 3 // Play, High Scores, Quit

	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.menuCursor = (m.menuCursor - 1 + menuItems) % menuItems
	case MenuActionDown:
		m.menuCursor = (m.menuCursor + 1) % menuItems
	case MenuActionScores:
		return m.openScoreboard()
	case MenuActionSelect:
		switch m.menuCursor {
		case 0:
			m.session.Confirm()
			m.gridCursor = 0
		case 1:
			return m.openScoreboard()
		case 2:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.session.Back()
	case MenuActionUp:
		m.gridCursor = (m.gridCursor - 1 + len(gridChoices)) % len(gridChoices)
	case MenuActionDown:
		m.gridCursor = (m.gridCursor + 1) % len(gridChoices)
	case MenuActionSelect:
		if err := m.session.ChooseGrid(gridChoices[m.gridCursor], m.now()); err != nil {
			// Offered sizes are always valid; nothing sensible to show.
			return m, nil
		}
		m.cursorRow, m.cursorCol = 0, 0
		m.resultSaved = false
		m.recomputeLayout()
	}
	return m, nil
}

func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	board := m.session.Board()
	if board == nil {
		return m, nil
	}
	size := board.GridSize()

	switch m.keys.MapKeyToGameAction(msg) {
	case GameActionQuit:
		m.quitting = true
		return m, tea.Quit
	case GameActionBack:
		m.session.Back()
	case GameActionCursorUp:
		m.cursorRow = (m.cursorRow - 1 + size) % size
	case GameActionCursorDown:
		m.cursorRow = (m.cursorRow + 1) % size
	case GameActionCursorLeft:
		m.cursorCol = (m.cursorCol - 1 + size) % size
	case GameActionCursorRight:
		m.cursorCol = (m.cursorCol + 1) % size
	case GameActionFlip:
		m.session.PointerDown(m.cursorRow, m.cursorCol)
	case GameActionReset:
		m.session.Reset(m.now())
		m.resultSaved = false
	}
	return m, nil
}

func (m Model) handleGameOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToGameAction(msg) {
	case GameActionQuit:
		m.quitting = true
		return m, tea.Quit
	case GameActionBack:
		m.session.Back()
	case GameActionReset, GameActionFlip:
		m.session.PlayAgain(m.now())
		m.cursorRow, m.cursorCol = 0, 0
		m.resultSaved = false
	}
	return m, nil
}

// handleMouse maps terminal cell coordinates back into the layout's pixel
// space and forwards hits to the session.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.session.State() != game.StatePlaying && m.session.State() != game.StateGameOver {
		return m, nil
	}

	// Probe the center of the hovered cell.
	px := msg.X*cellPxW + cellPxW/2
	py := msg.Y*cellPxH + cellPxH/2
	row, col, ok := m.lay.HitTest(px, py)
	if !ok {
		row, col = -1, -1
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.session.Hover(row, col)
		if ok {
			m.cursorRow, m.cursorCol = row, col
		}
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && ok {
			m.session.PointerDown(row, col)
		}
	}
	return m, nil
}

// handleResize adjusts the screen buffer and recomputes the layout.
// Game state is never touched: a resize mid-game must not disturb play.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.recomputeLayout()
	return m, nil
}

// recomputeLayout derives card geometry from the current window size.
func (m *Model) recomputeLayout() {
	board := m.session.Board()
	if board == nil {
		return
	}
	m.lay = layout.Compute(
		m.config.ScreenW*cellPxW,
		m.config.ScreenH*cellPxH,
		board.GridSize(),
		m.gameCfg.LayoutOptions(),
	)
}

// handleTick advances the session on the monotonic timeline.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.now()
	dt := now - m.lastTick
	m.lastTick = now

	m.session.Tick(now, dt)

	// Persist the result once per finished game.
	if m.session.State() == game.StateGameOver && !m.resultSaved {
		if board := m.session.Board(); board != nil && m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveResult(board.GridSize(), board.Moves(), int(m.session.Elapsed().Seconds()))
		}
		m.resultSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// openScoreboard embeds the scoreboard screen over the current state.
func (m Model) openScoreboard() (tea.Model, tea.Cmd) {
	sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
	m.scoreboard = &sb
	return m, nil
}

// View renders the current session state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	switch m.session.State() {
	case game.StateMenu:
		return m.viewMenu()
	case game.StateGridSelection:
		return m.viewGridSelection()
	case game.StatePlaying:
		return m.viewBoard(false)
	case game.StateGameOver:
		return m.viewBoard(true)
	}
	return ""
}

// viewMenu renders the main menu with lipgloss styles.
func (m Model) viewMenu() string {
	items := []string{"Play", "High Scores", "Quit"}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Title.Render("MEMORY MATCH"), m.config.ScreenW))
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Subtitle.Render("find all the pairs"), m.config.ScreenW))
	b.WriteString("\n\n")

	for i, item := range items {
		line := "  " + item
		style := m.theme.MenuItemNormal
		if i == m.menuCursor {
			line = "> " + item
			style = m.theme.MenuItemActive
		}
		b.WriteString(centerText(style.Render(line), m.config.ScreenW))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Footer.Render("w/s: move  enter: select  tab: scores  q: quit"), m.config.ScreenW))
	return b.String()
}

// viewGridSelection renders the board size picker.
func (m Model) viewGridSelection() string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Title.Render("CHOOSE BOARD SIZE"), m.config.ScreenW))
	b.WriteString("\n\n")

	for i, size := range gridChoices {
		pairs := size * size / 2
		line := fmt.Sprintf("  %d × %d  (%d pairs)", size, size, pairs)
		style := m.theme.MenuItemNormal
		if i == m.gridCursor {
			line = "> " + line[2:]
			style = m.theme.MenuItemActive
		}
		b.WriteString(centerText(style.Render(line), m.config.ScreenW))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Footer.Render("w/s: move  enter: start  b: back  q: quit"), m.config.ScreenW))
	return b.String()
}

// viewBoard renders the playing field, with the win overlay when finished.
func (m Model) viewBoard(gameOver bool) string {
	board := m.session.Board()
	if board == nil {
		return ""
	}

	elapsed := int(m.session.Elapsed().Seconds())
	drawBoard(m.screen, board, m.lay, elapsed, m.cursorRow, m.cursorCol)

	if gameOver {
		drawOverlay(m.screen, []string{
			"YOU WIN!",
			fmt.Sprintf("%d moves in %02d:%02d", board.Moves(), elapsed/60, elapsed%60),
			"r: play again   b: menu   q: quit",
		})
	}

	return RenderScreen(m.screen)
}

// centerText centers a rendered line within the given width. Styled text is
// measured by its visible width, not its byte length.
func centerText(text string, width int) string {
	// lipgloss.Width would be exact; a plain rune count over the stripped
	// string is enough for these short lines.
	visible := visibleWidth(text)
	if visible >= width {
		return text
	}
	return strings.Repeat(" ", (width-visible)/2) + text
}

// visibleWidth counts printable runes, skipping ANSI escape sequences.
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			width++
		}
	}
	return width
}

// StartAtGrid skips the menus and drops straight into a fresh board of the
// given size.
func (m Model) StartAtGrid(gridSize int) (Model, error) {
	m.session.Confirm()
	if err := m.session.ChooseGrid(gridSize, 0); err != nil {
		return m, err
	}
	m.recomputeLayout()
	return m, nil
}

// Run starts the Bubble Tea program. startGrid of 4 or 6 skips the menus;
// 0 begins on the title screen.
func Run(store *storage.Store, cfg core.RuntimeConfig, gameCfg config.GameConfig, startGrid int) error {
	model := NewModel(store, cfg, gameCfg)
	if startGrid != 0 {
		var err error
		model, err = model.StartAtGrid(startGrid)
		if err != nil {
			return err
		}
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
