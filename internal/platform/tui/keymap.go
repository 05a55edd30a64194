package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScores
	MenuActionQuit
)

// GameAction represents an in-game action derived from input.
type GameAction int

const (
	GameActionNone GameAction = iota
	GameActionCursorUp
	GameActionCursorDown
	GameActionCursorLeft
	GameActionCursorRight
	GameActionFlip
	GameActionReset
	GameActionBack
	GameActionQuit
)

// KeyMapper translates Bubble Tea key messages to game and menu actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScores
	}

	return MenuActionNone
}

// MapKeyToGameAction translates a key to an in-game action.
func (km *KeyMapper) MapKeyToGameAction(msg tea.KeyMsg) GameAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return GameActionQuit
	case "w", "up", "k":
		return GameActionCursorUp
	case "s", "down", "j":
		return GameActionCursorDown
	case "a", "left", "h":
		return GameActionCursorLeft
	case "d", "right", "l":
		return GameActionCursorRight
	case "enter", " ":
		return GameActionFlip
	case "r":
		return GameActionReset
	case "b", "esc":
		return GameActionBack
	}

	return GameActionNone
}
