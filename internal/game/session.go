package game

import (
	"math/rand"
	"time"
)

// SessionState is the top-level application state.
type SessionState int

const (
	// StateMenu is the title screen.
	StateMenu SessionState = iota
	// StateGridSelection lets the player choose a 4×4 or 6×6 board.
	StateGridSelection
	// StatePlaying is an active board.
	StatePlaying
	// StateGameOver is reached once the board's win delay has resolved.
	StateGameOver
)

func (s SessionState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateGridSelection:
		return "grid_selection"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session is the top-level state machine: Menu → GridSelection → Playing ⇄
// GameOver. It owns one Board at a time and routes input and tick events to
// it. Transitions are driven only by discrete events and by Board.Won
// becoming true, observed once per Tick. Resizing is the platform's concern
// and never touches session state.
type Session struct {
	state  SessionState
	board  *Board
	timing Timing
	rng    *rand.Rand // seeds each new board so shuffles are independent

	playStart time.Duration // board start time, for elapsed display
	elapsed   time.Duration // frozen at the winning tick
}

// NewSession creates a session on the title screen.
func NewSession(timing Timing, seed int64) *Session {
	return &Session{
		state:  StateMenu,
		timing: timing,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// State returns the current session state.
func (s *Session) State() SessionState { return s.state }

// Board returns the active board, or nil before a grid has been chosen.
func (s *Session) Board() *Board { return s.board }

// Elapsed returns how long the current game has been running; frozen once
// the game is over.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// Confirm advances Menu → GridSelection. A no-op in other states.
func (s *Session) Confirm() {
	if s.state == StateMenu {
		s.state = StateGridSelection
	}
}

// Back returns to the previous screen: GridSelection → Menu and
// GameOver → Menu. A no-op elsewhere (leaving an active game goes through
// the platform's quit flow, not the session).
func (s *Session) Back() {
	switch s.state {
	case StateGridSelection, StateGameOver:
		s.state = StateMenu
	}
}

// ChooseGrid builds a fresh board of the given size and starts playing.
// Only valid in GridSelection; an unsupported size returns
// ErrInvalidGridSize and the session stays where it is.
func (s *Session) ChooseGrid(gridSize int, now time.Duration) error {
	if s.state != StateGridSelection {
		return nil
	}
	board, err := NewBoard(gridSize, s.rng.Int63(), s.timing)
	if err != nil {
		return err
	}
	s.board = board
	s.startPlaying(now)
	return nil
}

// PlayAgain restarts with the same grid size from the game-over screen.
func (s *Session) PlayAgain(now time.Duration) {
	if s.state != StateGameOver || s.board == nil {
		return
	}
	s.board.Reset()
	s.startPlaying(now)
}

// Reset re-shuffles the current board mid-game.
func (s *Session) Reset(now time.Duration) {
	if s.state != StatePlaying || s.board == nil {
		return
	}
	s.board.Reset()
	s.startPlaying(now)
}

func (s *Session) startPlaying(now time.Duration) {
	s.state = StatePlaying
	s.playStart = now
	s.elapsed = 0
}

// PointerDown forwards a pointer press at a grid cell to the board.
// A no-op outside of play.
func (s *Session) PointerDown(row, col int) {
	if s.state != StatePlaying || s.board == nil {
		return
	}
	s.board.HandlePointerDown(row, col)
}

// Hover forwards pointer hover to the board. Cosmetic only.
func (s *Session) Hover(row, col int) {
	if s.board == nil {
		return
	}
	s.board.SetHover(row, col)
}

// Tick advances the simulation by one step. While playing, the board updates
// first and the won flag is observed afterwards, so the session enters
// GameOver on the same tick the win delay resolves.
func (s *Session) Tick(now, dt time.Duration) {
	if s.state != StatePlaying || s.board == nil {
		return
	}

	s.board.Update(now, dt)
	s.elapsed = now - s.playStart

	if s.board.Won() {
		s.state = StateGameOver
	}
}
