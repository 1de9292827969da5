package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/outpost-arcade/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so
// stick keys stay held for a short window after each press.
const holdSeconds = 0.2

var (
	moveKeys = map[string]core.Vec2{
		"w": core.V(0, -1),
		"a": core.V(-1, 0),
		"s": core.V(0, 1),
		"d": core.V(1, 0),
	}
	aimKeys = map[string]core.Vec2{
		"up":    core.V(0, -1),
		"left":  core.V(-1, 0),
		"down":  core.V(0, 1),
		"right": core.V(1, 0),
		"i":     core.V(0, -1),
		"j":     core.V(-1, 0),
		"k":     core.V(0, 1),
		"l":     core.V(1, 0),
	}
	actionKeys = map[string]core.Action{
		"f":     core.ActionPointDefense,
		"x":     core.ActionReload,
		"1":     core.ActionWeapon1,
		"2":     core.ActionWeapon2,
		"tab":   core.ActionWeaponNext,
		"enter": core.ActionConfirm,
		"b":     core.ActionBack,
		"esc":   core.ActionBack,
		"r":     core.ActionRestart,
		"p":     core.ActionPause,
	}
)

const fireKey = " "

// KeyMapper translates Bubble Tea key messages into input frames.
// Direction keys and the fire key latch for holdSeconds; other keys
// produce one-tick actions.
type KeyMapper struct {
	hold int
	held map[string]int // key -> ticks left
}

// NewKeyMapper creates a key mapper for a loop running at tickRate.
func NewKeyMapper(tickRate int) *KeyMapper {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &KeyMapper{
		hold: max(1, int(float64(tickRate)*holdSeconds)),
		held: make(map[string]int),
	}
}

// MapKey translates a key message to a discrete action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, bool) {
	switch k := msg.String(); k {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case fireKey:
		return core.ActionFire, false
	default:
		return actionKeys[k], false
	}
}

// Press records a key press into frame. Returns true for a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg, frame *core.InputFrame) bool {
	k := msg.String()
	_, isMove := moveKeys[k]
	_, isAim := aimKeys[k]
	if isMove || isAim || k == fireKey {
		km.held[k] = km.hold
	}

	action, quit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return quit
}

// Frame fills the analog part of frame from latched keys and ages them by
// one tick.
func (km *KeyMapper) Frame(frame *core.InputFrame) {
	var move, aim core.Vec2
	for k, left := range km.held {
		move = move.Add(moveKeys[k])
		aim = aim.Add(aimKeys[k])
		if k == fireKey {
			frame.Set(core.ActionFire)
		}
		if left <= 1 {
			delete(km.held, k)
		} else {
			km.held[k] = left - 1
		}
	}

	frame.Move = move.Normalize()
	if !aim.IsZero() {
		frame.Aim = aim.Normalize()
		frame.AimActive = true
	}
}

// Release drops every latched key.
func (km *KeyMapper) Release() {
	clear(km.held)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
	MenuActionHistory
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	case "h":
		return MenuActionHistory
	}
	return MenuActionNone
}
