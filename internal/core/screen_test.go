package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 || s.Height() != 5 {
		t.Errorf("size = %dx%d, expected 10x5", s.Width(), s.Height())
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("cell (%d,%d) = %q, expected space", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, '♥', ColorBrightRed)

	cell := s.GetCell(3, 2)
	if cell.Rune != '♥' {
		t.Errorf("Rune = %q, expected ♥", cell.Rune)
	}
	if cell.Color != ColorBrightRed {
		t.Errorf("Color = %v, expected ColorBrightRed", cell.Color)
	}

	// Out of bounds is a silent no-op and reads back as blank
	s.SetCell(-1, 0, 'x', ColorWhite)
	s.SetCell(10, 0, 'x', ColorWhite)
	s.SetCell(0, 5, 'x', ColorWhite)
	if got := s.GetCell(-1, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, expected blank default", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, 'x', ColorGold)

	s.Clear()

	if s.Get(1, 1) != ' ' {
		t.Error("Clear did not blank the buffer")
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear did not reset colors")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetCell(2, 2, 'A', ColorGold)
	s.SetCell(9, 4, 'B', ColorWhite)

	s.Resize(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got := s.GetCell(2, 2); got.Rune != 'A' || got.Color != ColorGold {
		t.Errorf("surviving cell = %+v, expected A in gold", got)
	}
	// The cell that fell off the edge reads back as blank
	if s.Get(9, 4) != ' ' {
		t.Error("out-of-bounds read after shrink should be blank")
	}

	// Growing back fills the new area with blanks
	s.Resize(12, 6)
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("cell after grow = %q, expected A", got)
	}
	if got := s.Get(11, 5); got != ' ' {
		t.Errorf("new cell after grow = %q, expected blank", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi", ColorWhite)
	if !strings.Contains(s.Row(1), "hi") {
		t.Errorf("Row(1) = %q, expected to contain %q", s.Row(1), "hi")
	}

	// Clipped at the right edge without panicking
	s.DrawText(8, 0, "long", ColorWhite)
	if got := s.Row(0)[8:]; got != "lo" {
		t.Errorf("clipped text = %q, expected %q", got, "lo")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)

	s.DrawTextCentered(0, "abcd", ColorWhite)
	if got := s.Row(0); got != "   abcd   " {
		t.Errorf("Row(0) = %q, expected %q", got, "   abcd   ")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)

	s.DrawBox(NewRect(0, 0, 6, 4), ColorGold)

	expected := strings.Join([]string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}, "\n")
	if s.String() != expected {
		t.Errorf("String() =\n%s\nexpected:\n%s", s.String(), expected)
	}
	if s.GetCell(0, 0).Color != ColorGold {
		t.Errorf("border color = %v, expected ColorGold", s.GetCell(0, 0).Color)
	}
}

func TestScreenDrawRectAndHLine(t *testing.T) {
	s := NewScreen(6, 3)

	s.DrawRect(NewRect(1, 1, 3, 1), '░', ColorNavy)
	if got := s.Row(1); got != " ░░░  " {
		t.Errorf("Row(1) = %q, expected %q", got, " ░░░  ")
	}

	s.DrawHLine(0, 0, 6, '─', ColorWhite)
	if got := s.Row(0); got != "──────" {
		t.Errorf("Row(0) = %q, expected %q", got, "──────")
	}
}
