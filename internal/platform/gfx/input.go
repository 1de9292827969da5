package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/outpost-arcade/internal/core"
)

type dirKey struct {
	key ebiten.Key
	dir core.Vec2
}

var (
	moveKeys = []dirKey{
		{ebiten.KeyW, core.V(0, -1)},
		{ebiten.KeyA, core.V(-1, 0)},
		{ebiten.KeyS, core.V(0, 1)},
		{ebiten.KeyD, core.V(1, 0)},
	}
	aimKeys = []dirKey{
		{ebiten.KeyArrowUp, core.V(0, -1)},
		{ebiten.KeyArrowLeft, core.V(-1, 0)},
		{ebiten.KeyArrowDown, core.V(0, 1)},
		{ebiten.KeyArrowRight, core.V(1, 0)},
		{ebiten.KeyI, core.V(0, -1)},
		{ebiten.KeyJ, core.V(-1, 0)},
		{ebiten.KeyK, core.V(0, 1)},
		{ebiten.KeyL, core.V(1, 0)},
	}
	actionKeys = map[ebiten.Key]core.Action{
		ebiten.KeyF:      core.ActionPointDefense,
		ebiten.KeyX:      core.ActionReload,
		ebiten.KeyDigit1: core.ActionWeapon1,
		ebiten.KeyDigit2: core.ActionWeapon2,
		ebiten.KeyTab:    core.ActionWeaponNext,
		ebiten.KeyEnter:  core.ActionConfirm,
		ebiten.KeyR:      core.ActionRestart,
		ebiten.KeyP:      core.ActionPause,
	}
	quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// axis sums the directions of pressed keys into a unit vector.
func axis(pressed func(ebiten.Key) bool, keys []dirKey) core.Vec2 {
	var v core.Vec2
	for _, k := range keys {
		if pressed(k.key) {
			v = v.Add(k.dir)
		}
	}
	return v.Normalize()
}

// Input polls keyboard, mouse and touches into input frames. Touches drive
// two virtual sticks; while either is held the mouse is ignored.
type Input struct {
	move, aim *core.VirtualStick
	touches   []ebiten.TouchID
}

// NewInput creates an input poller with twin sticks laid out on the field.
func NewInput() *Input {
	move, aim := core.TwinSticks(core.FieldWidth, core.FieldHeight)
	return &Input{move: move, aim: aim}
}

// Poll reads this tick's input. Returns true when the player asked to quit.
func (in *Input) Poll() (core.InputFrame, bool) {
	frame := core.NewInputFrame()
	for _, k := range quitKeys {
		if inpututil.IsKeyJustPressed(k) {
			return frame, true
		}
	}

	for k, a := range actionKeys {
		if inpututil.IsKeyJustPressed(k) {
			frame.Set(a)
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		frame.Set(core.ActionFire)
	}
	frame.Move = axis(ebiten.IsKeyPressed, moveKeys)
	if aim := axis(ebiten.IsKeyPressed, aimKeys); !aim.IsZero() {
		frame.Aim, frame.AimActive = aim, true
	}

	in.pollTouches()
	if in.move.Held() {
		frame.Move = in.move.Value()
	}
	if in.aim.Held() && !in.aim.Value().IsZero() {
		frame.Aim, frame.AimActive = in.aim.Value(), true
	}
	if !in.move.Held() && !in.aim.Held() {
		in.pollMouse(&frame)
	}
	return frame, false
}

func (in *Input) pollTouches() {
	in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
	for _, id := range in.touches {
		in.touch(core.TouchDown, id, touchPoint(id))
	}

	in.touches = ebiten.AppendTouchIDs(in.touches[:0])
	for _, id := range in.touches {
		in.touch(core.TouchMove, id, touchPoint(id))
	}

	in.touches = inpututil.AppendJustReleasedTouchIDs(in.touches[:0])
	for _, id := range in.touches {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		in.touch(core.TouchUp, id, core.V(float64(x), float64(y)))
	}
}

func (in *Input) touch(ev core.TouchEvent, id ebiten.TouchID, p core.Vec2) {
	in.move.Handle(ev, int(id), p)
	in.aim.Handle(ev, int(id), p)
}

func touchPoint(id ebiten.TouchID) core.Vec2 {
	x, y := ebiten.TouchPosition(id)
	return core.V(float64(x), float64(y))
}

func (in *Input) pollMouse(frame *core.InputFrame) {
	x, y := ebiten.CursorPosition()
	p := core.V(float64(x), float64(y))
	field := core.Box{W: core.FieldWidth, H: core.FieldHeight}
	if field.Contains(p) {
		frame.Pointer, frame.HasPointer = p, true
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		frame.Set(core.ActionFire)
	}
}

// Views returns the held sticks for drawing.
func (in *Input) Views() []core.StickView {
	var views []core.StickView
	for _, s := range []*core.VirtualStick{in.move, in.aim} {
		if v, ok := s.View(); ok {
			views = append(views, v)
		}
	}
	return views
}
