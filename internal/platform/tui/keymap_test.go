package tui

import (
	"math"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/outpost-arcade/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapperLatchesMoveKeys(t *testing.T) {
	km := NewKeyMapper(10) // two-tick hold
	frame := core.NewInputFrame()
	km.Press(runeKey("d"), &frame)

	for i := range 2 {
		frame.Clear()
		km.Frame(&frame)
		if frame.Move != core.V(1, 0) {
			t.Fatalf("tick %d: move = %v, want (1, 0)", i, frame.Move)
		}
	}

	frame.Clear()
	km.Frame(&frame)
	if !frame.Move.IsZero() {
		t.Errorf("move after hold = %v, want zero", frame.Move)
	}
}

func TestKeyMapperDiagonalIsNormalized(t *testing.T) {
	km := NewKeyMapper(60)
	frame := core.NewInputFrame()
	km.Press(runeKey("w"), &frame)
	km.Press(runeKey("d"), &frame)
	km.Frame(&frame)

	if got := frame.Move.Len(); math.Abs(got-1) > 1e-9 {
		t.Errorf("|move| = %v, want 1", got)
	}
	if frame.Move.X <= 0 || frame.Move.Y >= 0 {
		t.Errorf("move = %v, want up-right", frame.Move)
	}
}

func TestKeyMapperAimKeys(t *testing.T) {
	km := NewKeyMapper(60)
	frame := core.NewInputFrame()
	km.Press(tea.KeyMsg{Type: tea.KeyUp}, &frame)
	km.Frame(&frame)

	if !frame.AimActive || frame.Aim != core.V(0, -1) {
		t.Errorf("aim = %v active=%v, want (0, -1) active", frame.Aim, frame.AimActive)
	}
	if !frame.Move.IsZero() {
		t.Errorf("aim key moved the ship: %v", frame.Move)
	}
}

func TestKeyMapperFireHeld(t *testing.T) {
	km := NewKeyMapper(60)
	frame := core.NewInputFrame()
	km.Press(tea.KeyMsg{Type: tea.KeySpace}, &frame)
	if !frame.Has(core.ActionFire) {
		t.Fatal("space did not fire on press")
	}

	frame.Clear()
	km.Frame(&frame)
	if !frame.Has(core.ActionFire) {
		t.Error("fire not held on the next tick")
	}

	km.Release()
	frame.Clear()
	km.Frame(&frame)
	if frame.Has(core.ActionFire) {
		t.Error("fire still held after release")
	}
}

func TestKeyMapperActions(t *testing.T) {
	tests := []struct {
		key  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{runeKey("f"), core.ActionPointDefense, false},
		{runeKey("x"), core.ActionReload, false},
		{runeKey("1"), core.ActionWeapon1, false},
		{runeKey("2"), core.ActionWeapon2, false},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionWeaponNext, false},
		{runeKey("r"), core.ActionRestart, false},
		{runeKey("p"), core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey("z"), core.ActionNone, false},
	}

	km := NewKeyMapper(60)
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			got, quit := km.MapKey(tt.key)
			if got != tt.want || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.key.String(), got, quit, tt.want, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := map[string]MenuAction{
		"w":     MenuActionUp,
		"k":     MenuActionUp,
		"s":     MenuActionDown,
		"enter": MenuActionSelect,
		"tab":   MenuActionScoreboard,
		"h":     MenuActionHistory,
		"q":     MenuActionQuit,
		"z":     MenuActionNone,
	}
	keys := map[string]tea.KeyMsg{
		"enter": {Type: tea.KeyEnter},
		"tab":   {Type: tea.KeyTab},
	}

	for name, want := range tests {
		msg, ok := keys[name]
		if !ok {
			msg = runeKey(name)
		}
		if got := MapKeyToMenuAction(msg); got != want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", name, got, want)
		}
	}
}
