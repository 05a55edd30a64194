package game

import (
	"errors"
	"testing"
	"time"
)

func newTestSession() *Session {
	return NewSession(DefaultTiming(), 42)
}

func TestSessionInitialState(t *testing.T) {
	s := newTestSession()

	if s.State() != StateMenu {
		t.Errorf("State() = %v, expected StateMenu", s.State())
	}
	if s.Board() != nil {
		t.Error("Board() should be nil before a grid is chosen")
	}
}

func TestSessionMenuFlow(t *testing.T) {
	s := newTestSession()

	s.Confirm()
	if s.State() != StateGridSelection {
		t.Fatalf("State() after Confirm = %v, expected StateGridSelection", s.State())
	}

	s.Back()
	if s.State() != StateMenu {
		t.Errorf("State() after Back = %v, expected StateMenu", s.State())
	}
}

func TestSessionChooseGrid(t *testing.T) {
	s := newTestSession()
	s.Confirm()

	if err := s.ChooseGrid(4, 0); err != nil {
		t.Fatalf("ChooseGrid(4) failed: %v", err)
	}
	if s.State() != StatePlaying {
		t.Errorf("State() = %v, expected StatePlaying", s.State())
	}
	if s.Board() == nil || s.Board().GridSize() != 4 {
		t.Error("board not created with the chosen grid size")
	}
}

func TestSessionChooseGridInvalid(t *testing.T) {
	s := newTestSession()
	s.Confirm()

	err := s.ChooseGrid(5, 0)
	if !errors.Is(err, ErrInvalidGridSize) {
		t.Errorf("ChooseGrid(5) error = %v, expected ErrInvalidGridSize", err)
	}
	if s.State() != StateGridSelection {
		t.Errorf("State() = %v, expected to stay in StateGridSelection", s.State())
	}
	if s.Board() != nil {
		t.Error("failed grid choice must not install a board")
	}
}

func TestSessionEventsOutsideTheirState(t *testing.T) {
	s := newTestSession()

	// All of these are no-ops from the menu
	if err := s.ChooseGrid(4, 0); err != nil {
		t.Errorf("ChooseGrid from menu returned %v, expected nil no-op", err)
	}
	s.PlayAgain(0)
	s.Reset(0)
	s.PointerDown(0, 0)
	s.Back()
	s.Tick(time.Second, time.Second)

	if s.State() != StateMenu {
		t.Errorf("State() = %v, expected StateMenu after no-op events", s.State())
	}
	if s.Board() != nil {
		t.Error("no-op events must not create a board")
	}
}

// playToWin drives a stubbed 4x4 board to the game-over screen.
func playToWin(t *testing.T, s *Session, start time.Duration) {
	t.Helper()
	s.Confirm()
	if err := s.ChooseGrid(4, start); err != nil {
		t.Fatal(err)
	}
	stubInterleaved(s.Board())

	for row := 0; row < 4; row++ {
		s.PointerDown(row, 0)
		s.PointerDown(row, 2)
		s.PointerDown(row, 1)
		s.PointerDown(row, 3)
	}

	// The session flips to GameOver on the tick the win delay resolves
	winAt := start + DefaultTiming().WinDelay
	s.Tick(winAt-time.Millisecond, winAt-time.Millisecond-start)
	if s.State() != StatePlaying {
		t.Fatalf("State() before win deadline = %v, expected StatePlaying", s.State())
	}
	s.Tick(winAt, time.Millisecond)
	if s.State() != StateGameOver {
		t.Fatalf("State() at win deadline = %v, expected StateGameOver", s.State())
	}
}

func TestSessionWinFlow(t *testing.T) {
	s := newTestSession()
	playToWin(t, s, 0)

	if s.Elapsed() != DefaultTiming().WinDelay {
		t.Errorf("Elapsed() = %v, expected %v", s.Elapsed(), DefaultTiming().WinDelay)
	}

	// Elapsed freezes once the game is over
	s.Tick(time.Minute, time.Minute)
	if s.Elapsed() != DefaultTiming().WinDelay {
		t.Errorf("Elapsed() after game over tick = %v, expected frozen value", s.Elapsed())
	}
}

func TestSessionPlayAgain(t *testing.T) {
	s := newTestSession()
	playToWin(t, s, 0)

	restart := 5 * time.Second
	s.PlayAgain(restart)

	if s.State() != StatePlaying {
		t.Fatalf("State() = %v, expected StatePlaying", s.State())
	}
	if s.Board().GridSize() != 4 {
		t.Error("PlayAgain must keep the grid size")
	}
	if s.Board().MatchedPairs() != 0 || s.Board().Won() {
		t.Error("PlayAgain must hand out a fresh board")
	}

	s.Tick(restart+time.Second, time.Second)
	if s.Elapsed() != time.Second {
		t.Errorf("Elapsed() = %v, expected 1s measured from the restart", s.Elapsed())
	}
}

func TestSessionBackFromGameOver(t *testing.T) {
	s := newTestSession()
	playToWin(t, s, 0)

	s.Back()
	if s.State() != StateMenu {
		t.Errorf("State() = %v, expected StateMenu", s.State())
	}
}

func TestSessionMidGameReset(t *testing.T) {
	s := newTestSession()
	s.Confirm()
	if err := s.ChooseGrid(4, 0); err != nil {
		t.Fatal(err)
	}
	stubInterleaved(s.Board())
	s.PointerDown(0, 0)
	s.PointerDown(0, 2)

	s.Reset(10 * time.Second)

	if s.State() != StatePlaying {
		t.Errorf("State() = %v, expected StatePlaying", s.State())
	}
	if s.Board().MatchedPairs() != 0 || s.Board().Moves() != 0 {
		t.Error("Reset must clear the board counters")
	}
}

func TestSessionHoverBeforeBoard(t *testing.T) {
	s := newTestSession()

	// Must not panic without a board
	s.Hover(0, 0)
}
