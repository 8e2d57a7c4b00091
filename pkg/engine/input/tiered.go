package input

import (
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement (also menu navigation)
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Meta / UI
	ActionConfirm    // Enter: activate menu item
	ActionBack       // Escape: leave a round or a sub-menu
	ActionQuit       // Window close / Ctrl+C
	ActionDumpMap    // F9: write the current maze to disk
	ActionScreenshot // F10: save the round as an HTML page
)

// MoveActions lists the movement actions in the order a frame applies them
var MoveActions = []Action{ActionMoveNorth, ActionMoveSouth, ActionMoveWest, ActionMoveEast}

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "enter").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Key repeat is handled by the movement cooldown, so this stays a thin copy.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"arrow_up":    ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"arrow_right": ActionMoveEast,

	"enter": ActionConfirm,

	"escape": ActionBack,

	"ctrl_c": ActionQuit,
	"q":      ActionQuit,

	"f9":  ActionDumpMap,
	"f10": ActionScreenshot,
}

// MapToIntent is the 3rd+4th layer: it applies the bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionDumpMap:
		return "Dump Map"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "None"
	}
}

// Delta returns the grid step for a movement action, or (0, 0) for anything else
func Delta(a Action) (dx, dy int) {
	switch a {
	case ActionMoveNorth:
		return 0, -1
	case ActionMoveSouth:
		return 0, 1
	case ActionMoveWest:
		return -1, 0
	case ActionMoveEast:
		return 1, 0
	default:
		return 0, 0
	}
}

// Frame is everything the input devices reported during one video frame:
// actions whose key went down this frame, and actions whose key is held.
type Frame struct {
	pressed mapset.Set[Action]
	held    mapset.Set[Action]
}

// NewFrame returns an empty frame
func NewFrame() Frame {
	return Frame{
		pressed: mapset.New[Action](),
		held:    mapset.New[Action](),
	}
}

// Press records that a key went down this frame. A pressed key is also held.
func (f Frame) Press(a Action) Frame {
	if a != ActionNone {
		f.pressed.Put(a)
		f.held.Put(a)
	}
	return f
}

// Hold records a key that is down without having been pressed this frame
func (f Frame) Hold(a Action) Frame {
	if a != ActionNone {
		f.held.Put(a)
	}
	return f
}

// WasPressed reports whether a went down this frame
func (f Frame) WasPressed(a Action) bool {
	return f.pressed.Has(a)
}

// IsHeld reports whether a is down this frame
func (f Frame) IsHeld(a Action) bool {
	return f.held.Has(a)
}

// FrameFromIntent builds a frame for devices that deliver one discrete key at a time
// (the terminal): the action is both pressed and held for that frame.
func FrameFromIntent(intent Intent) Frame {
	return NewFrame().Press(intent.Action)
}
