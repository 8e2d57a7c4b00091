package menu

import (
	"mazerun/pkg/game/level"
	"mazerun/pkg/game/locale"
)

// MainMenuAction represents the action type for main menu items.
type MainMenuAction int

const (
	MainMenuActionPlay MainMenuAction = iota
	MainMenuActionQuit
)

// MainMenuItem is a level choice or the Exit entry
type MainMenuItem struct {
	Key        string
	Action     MainMenuAction
	Difficulty level.Difficulty
}

// GetLabel returns the display label for this menu item.
func (m *MainMenuItem) GetLabel() string {
	return locale.Get(m.Key)
}

// IsSelectable returns whether this item can be selected.
func (m *MainMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *MainMenuItem) GetHelpText() string {
	return ""
}

// NewMainMenu builds the level menu: one entry per difficulty, then Exit
func NewMainMenu() *Menu {
	items := make([]MenuItem, 0, len(level.All())+1)
	for _, d := range level.All() {
		items = append(items, &MainMenuItem{Key: d.Key(), Action: MainMenuActionPlay, Difficulty: d})
	}
	items = append(items, &MainMenuItem{Key: "MENU_EXIT", Action: MainMenuActionQuit})
	return New("MENU_TITLE", "MENU_HELP", items...)
}

// CharacterMenuItem is one playable character
type CharacterMenuItem struct {
	Character level.Character
}

// GetLabel returns the display label for this menu item.
func (c *CharacterMenuItem) GetLabel() string {
	return locale.Get(c.Character.Key)
}

// IsSelectable returns whether this item can be selected.
func (c *CharacterMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (c *CharacterMenuItem) GetHelpText() string {
	return ""
}

// NewCharacterMenu builds the character menu from level.Characters
func NewCharacterMenu() *Menu {
	items := make([]MenuItem, 0, len(level.Characters))
	for _, c := range level.Characters {
		items = append(items, &CharacterMenuItem{Character: c})
	}
	return New("CHARACTER_TITLE", "CHARACTER_HELP", items...)
}
