package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{"q quits", runeKey('q'), MenuActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{"w moves up", runeKey('w'), MenuActionUp},
		{"k moves up", runeKey('k'), MenuActionUp},
		{"arrow up moves up", tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{"s moves down", runeKey('s'), MenuActionDown},
		{"enter selects", tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{"space selects", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, MenuActionSelect},
		{"b goes back", runeKey('b'), MenuActionBack},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{"tab opens scores", tea.KeyMsg{Type: tea.KeyTab}, MenuActionScores},
		{"unbound key is none", runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
				t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestMapKeyToGameAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected GameAction
	}{
		{"q quits", runeKey('q'), GameActionQuit},
		{"w moves cursor up", runeKey('w'), GameActionCursorUp},
		{"a moves cursor left", runeKey('a'), GameActionCursorLeft},
		{"h moves cursor left", runeKey('h'), GameActionCursorLeft},
		{"d moves cursor right", runeKey('d'), GameActionCursorRight},
		{"l moves cursor right", runeKey('l'), GameActionCursorRight},
		{"enter flips", tea.KeyMsg{Type: tea.KeyEnter}, GameActionFlip},
		{"r resets", runeKey('r'), GameActionReset},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, GameActionBack},
		{"unbound key is none", runeKey('x'), GameActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKeyToGameAction(tc.msg); got != tc.expected {
				t.Errorf("MapKeyToGameAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}
