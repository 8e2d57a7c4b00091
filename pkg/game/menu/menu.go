// Package menu provides a generic menu system for the game.
// Menus are driven one action at a time so they fit a frame loop.
package menu

import (
	engineinput "mazerun/pkg/engine/input"
	"mazerun/pkg/game/locale"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// Menu is a list of items with a wrap-around selection
type Menu struct {
	titleKey string
	helpKey  string
	items    []MenuItem
	selected int
}

// New creates a menu. Title and help are translation keys.
func New(titleKey, helpKey string, items ...MenuItem) *Menu {
	m := &Menu{titleKey: titleKey, helpKey: helpKey, items: items}
	m.Reset()
	return m
}

// Title returns the translated title
func (m *Menu) Title() string {
	return locale.Get(m.titleKey)
}

// Instructions returns the translated help line
func (m *Menu) Instructions() string {
	if m.helpKey == "" {
		return ""
	}
	return locale.Get(m.helpKey)
}

// Items returns the menu items in display order
func (m *Menu) Items() []MenuItem {
	return m.items
}

// Len returns the number of items
func (m *Menu) Len() int {
	return len(m.items)
}

// Index returns the selected position
func (m *Menu) Index() int {
	return m.selected
}

// Selected returns the selected item, or nil for an empty menu
func (m *Menu) Selected() MenuItem {
	if m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return m.items[m.selected]
}

// Reset selects the first selectable item
func (m *Menu) Reset() {
	m.selected = 0
	for i, item := range m.items {
		if item.IsSelectable() {
			m.selected = i
			return
		}
	}
}

// Next moves the selection down to the next selectable item, wrapping to the top
func (m *Menu) Next() {
	for i := m.selected + 1; i < len(m.items); i++ {
		if m.items[i].IsSelectable() {
			m.selected = i
			return
		}
	}
	// If no item found below, wrap to the first selectable item
	for i := 0; i < m.selected; i++ {
		if m.items[i].IsSelectable() {
			m.selected = i
			return
		}
	}
}

// Prev moves the selection up to the previous selectable item, wrapping to the bottom
func (m *Menu) Prev() {
	for i := m.selected - 1; i >= 0; i-- {
		if m.items[i].IsSelectable() {
			m.selected = i
			return
		}
	}
	// If no item found above, wrap to the last selectable item
	for i := len(m.items) - 1; i > m.selected; i-- {
		if m.items[i].IsSelectable() {
			m.selected = i
			return
		}
	}
}

// Navigate applies a pressed action: up or left selects the previous item, down or right the next.
// Returns the activated item on Confirm, else nil.
func (m *Menu) Navigate(a engineinput.Action) MenuItem {
	switch a {
	case engineinput.ActionMoveNorth, engineinput.ActionMoveWest:
		m.Prev()
	case engineinput.ActionMoveSouth, engineinput.ActionMoveEast:
		m.Next()
	case engineinput.ActionConfirm:
		if item := m.Selected(); item != nil && item.IsSelectable() {
			return item
		}
	}
	return nil
}
