package core

// Action is a discrete command abstracted from physical keys or buttons.
type Action int

const (
	ActionNone         Action = iota
	ActionFire                // space, left mouse - fire primary weapon
	ActionPointDefense        // f - point-defense burst
	ActionReload              // x - refill point-defense
	ActionWeapon1             // 1 - select cannon
	ActionWeapon2             // 2 - select missiles
	ActionWeaponNext          // tab - cycle weapons
	ActionConfirm             // enter
	ActionBack                // b, esc - back to menu
	ActionRestart             // r - restart after game over
	ActionQuit                // q, ctrl+c
	ActionPause               // p
)

var actionNames = map[Action]string{
	ActionNone:         "None",
	ActionFire:         "Fire",
	ActionPointDefense: "PointDefense",
	ActionReload:       "Reload",
	ActionWeapon1:      "Weapon1",
	ActionWeapon2:      "Weapon2",
	ActionWeaponNext:   "WeaponNext",
	ActionConfirm:      "Confirm",
	ActionBack:         "Back",
	ActionRestart:      "Restart",
	ActionQuit:         "Quit",
	ActionPause:        "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "Unknown"
}

// InputFrame is the input state for one simulation tick.
// Move and Aim are analog sticks with length at most 1; Pointer is the mouse
// position in play-field units when HasPointer is set.
type InputFrame struct {
	Actions    map[Action]bool
	Move       Vec2
	Aim        Vec2
	AimActive  bool // an aim stick is held, which also means fire
	Pointer    Vec2
	HasPointer bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets actions and sticks for the next frame. The pointer persists.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Move = Vec2{}
	f.Aim = Vec2{}
	f.AimActive = false
}
