package layout

import (
	"reflect"
	"testing"
)

func TestComputeDeterministic(t *testing.T) {
	a := Compute(800, 800, 4, DefaultOptions())
	b := Compute(800, 800, 4, DefaultOptions())

	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different layouts")
	}
}

func TestComputeZeroOptionsUseDefaults(t *testing.T) {
	a := Compute(800, 800, 4, Options{})
	b := Compute(800, 800, 4, DefaultOptions())

	if !reflect.DeepEqual(a, b) {
		t.Error("zero Options should behave like DefaultOptions")
	}
}

func TestComputeCardSizeClamps(t *testing.T) {
	tests := []struct {
		name             string
		windowW, windowH int
		gridSize         int
		expected         int
	}{
		{
			name:    "huge window clamps to max",
			windowW: 4000, windowH: 4000,
			gridSize: 4,
			expected: DefaultOptions().MaxCardSize,
		},
		{
			name:    "tiny window clamps to min",
			windowW: 200, windowH: 200,
			gridSize: 6,
			expected: DefaultOptions().MinCardSize,
		},
		{
			name:    "degenerate window still clamps to min",
			windowW: 0, windowH: 0,
			gridSize: 4,
			expected: DefaultOptions().MinCardSize,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := Compute(tc.windowW, tc.windowH, tc.gridSize, DefaultOptions())
			if l.CardSize != tc.expected {
				t.Errorf("CardSize = %d, expected %d", l.CardSize, tc.expected)
			}
		})
	}
}

func TestComputeShrinksWithWindow(t *testing.T) {
	big := Compute(800, 800, 4, DefaultOptions())
	small := Compute(400, 400, 4, DefaultOptions())

	if small.CardSize >= big.CardSize {
		t.Errorf("CardSize did not shrink: %d -> %d", big.CardSize, small.CardSize)
	}
	if small.CardSize < DefaultOptions().MinCardSize {
		t.Errorf("CardSize = %d, below the minimum %d", small.CardSize, DefaultOptions().MinCardSize)
	}
}

func TestComputeGridCentered(t *testing.T) {
	opts := DefaultOptions()
	l := Compute(800, 800, 4, opts)

	gridSpan := l.GridSize*l.CardSize + (l.GridSize-1)*l.Spacing

	leftGap := l.GridX - opts.Margin
	rightGap := (l.WindowW - opts.Margin) - (l.GridX + gridSpan)
	if diff := leftGap - rightGap; diff < -1 || diff > 1 {
		t.Errorf("grid not horizontally centered: left=%d right=%d", leftGap, rightGap)
	}

	topGap := l.GridY - opts.Margin - opts.HeaderHeight
	bottomGap := (l.WindowH - opts.Margin) - (l.GridY + gridSpan)
	if diff := topGap - bottomGap; diff < -1 || diff > 1 {
		t.Errorf("grid not vertically centered: top=%d bottom=%d", topGap, bottomGap)
	}
}

func TestFontSizeClamps(t *testing.T) {
	tests := []struct {
		name             string
		windowW, windowH int
		check            func(f FontSizes) (got, lo, hi int, label string)
	}{
		{
			name:    "title lower clamp",
			windowW: 200, windowH: 200,
			check: func(f FontSizes) (int, int, int, string) { return f.Title, 32, 64, "Title" },
		},
		{
			name:    "title upper clamp",
			windowW: 2000, windowH: 2000,
			check: func(f FontSizes) (int, int, int, string) { return f.Title, 32, 64, "Title" },
		},
		{
			name:    "subtitle range",
			windowW: 800, windowH: 800,
			check: func(f FontSizes) (int, int, int, string) { return f.Subtitle, 18, 32, "Subtitle" },
		},
		{
			name:    "button range",
			windowW: 800, windowH: 800,
			check: func(f FontSizes) (int, int, int, string) { return f.Button, 16, 28, "Button" },
		},
		{
			name:    "score range",
			windowW: 100, windowH: 100,
			check: func(f FontSizes) (int, int, int, string) { return f.Score, 18, 36, "Score" },
		},
		{
			name:    "message range",
			windowW: 5000, windowH: 5000,
			check: func(f FontSizes) (int, int, int, string) { return f.Message, 28, 72, "Message" },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := Compute(tc.windowW, tc.windowH, 4, DefaultOptions())
			got, lo, hi, label := tc.check(l.Fonts)
			if got < lo || got > hi {
				t.Errorf("%s = %d, expected within [%d, %d]", label, got, lo, hi)
			}
		})
	}
}

func TestCellRectSpacing(t *testing.T) {
	l := Compute(800, 800, 4, DefaultOptions())

	a := l.CellRect(0, 0)
	b := l.CellRect(0, 1)
	if gap := b.X - a.Right(); gap != l.Spacing {
		t.Errorf("horizontal gap = %d, expected %d", gap, l.Spacing)
	}

	c := l.CellRect(1, 0)
	if gap := c.Y - a.Bottom(); gap != l.Spacing {
		t.Errorf("vertical gap = %d, expected %d", gap, l.Spacing)
	}

	if a.W != l.CardSize || a.H != l.CardSize {
		t.Errorf("cell size = %dx%d, expected %dx%d", a.W, a.H, l.CardSize, l.CardSize)
	}
}

func TestHitTest(t *testing.T) {
	l := Compute(800, 800, 4, DefaultOptions())

	// Center of every cell resolves to that cell
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			cx, cy := l.CellRect(row, col).Center()
			r, c, ok := l.HitTest(cx, cy)
			if !ok || r != row || c != col {
				t.Errorf("HitTest(center of %d,%d) = (%d,%d,%v)", row, col, r, c, ok)
			}
		}
	}

	// The spacing gap between two cards is a miss
	a := l.CellRect(0, 0)
	if _, _, ok := l.HitTest(a.Right()+l.Spacing/2, a.Y); ok {
		t.Error("HitTest inside the spacing gap should miss")
	}

	// Outside the grid entirely
	if _, _, ok := l.HitTest(0, 0); ok {
		t.Error("HitTest at the window origin should miss")
	}
	if _, _, ok := l.HitTest(l.WindowW, l.WindowH); ok {
		t.Error("HitTest past the grid should miss")
	}
}

func TestHitTestInverseOfCellRect(t *testing.T) {
	// Every point inside every cell rect must resolve back to its cell
	l := Compute(640, 640, 6, DefaultOptions())

	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			rect := l.CellRect(row, col)
			for _, pt := range [][2]int{
				{rect.X, rect.Y},
				{rect.Right() - 1, rect.Bottom() - 1},
				{rect.X + rect.W/2, rect.Y},
			} {
				r, c, ok := l.HitTest(pt[0], pt[1])
				if !ok || r != row || c != col {
					t.Fatalf("HitTest(%d,%d) = (%d,%d,%v), expected (%d,%d,true)",
						pt[0], pt[1], r, c, ok, row, col)
				}
			}
		}
	}
}
