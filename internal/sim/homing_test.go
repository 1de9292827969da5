package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/outpost-arcade/internal/core"
)

type missile struct {
	body  Body
	guide Guidance
}

func (m *missile) Body() *Body { return &m.body }

func (m *missile) Think(w *World, dt float64) { m.guide.Steer(w, &m.body, dt) }

func newMissile(pos, vel core.Vec2) *missile {
	return &missile{
		body: Body{Kind: KindMissile, Pos: pos, Vel: vel, W: 4, H: 4},
		guide: Guidance{
			Target:      KindEnemy,
			MaxTurn:     0.05,
			Accel:       300,
			BaseSpeed:   200,
			MaxSpeedMul: 2,
		},
	}
}

func TestGuidanceTurnClamped(t *testing.T) {
	w := testWorld()
	w.Spawn(newThing(KindEnemy, core.V(100, 500), core.Vec2{}, BoundsNone))
	m := newMissile(core.V(100, 100), core.V(200, 0))
	w.Spawn(m)

	before := m.body.Vel.Angle()
	Step(w, dt)
	turned := core.NormalizeAngle(m.body.Vel.Angle() - before)
	if math.Abs(turned-0.05) > 1e-9 {
		t.Errorf("turned %f rad, expected clamp to 0.05", turned)
	}
	if m.guide.Locked() == 0 {
		t.Error("missile should lock a target")
	}
}

func TestGuidanceSpeedCap(t *testing.T) {
	w := testWorld()
	w.Spawn(newThing(KindEnemy, core.V(900, 100), core.Vec2{}, BoundsNone))
	m := newMissile(core.V(100, 100), core.V(200, 0))
	w.Spawn(m)

	for range 120 {
		Step(w, dt)
	}
	if s := m.body.Vel.Len(); s > 400+1e-9 {
		t.Errorf("speed %f exceeds cap 400", s)
	}
	if s := m.body.Vel.Len(); s < 399 {
		t.Errorf("speed %f should reach the cap", s)
	}
}

func TestGuidanceNoTarget(t *testing.T) {
	w := testWorld()
	m := newMissile(core.V(100, 100), core.V(200, 0))
	w.Spawn(m)
	Step(w, dt)
	if m.body.Vel != core.V(200, 0) || m.guide.Locked() != 0 {
		t.Errorf("without targets the missile should fly straight, vel %v", m.body.Vel)
	}
}

func TestCooldown(t *testing.T) {
	c := Cooldown{Period: 0.15}
	if !c.Ready() {
		t.Fatal("fresh cooldown should be ready")
	}
	c.Trigger()
	if c.Ready() || c.Remaining != 0.15 {
		t.Fatalf("after Trigger remaining = %f", c.Remaining)
	}
	prev := c.Remaining
	for range 20 {
		c.Tick(dt)
		if c.Remaining < 0 || c.Remaining > prev {
			t.Fatalf("remaining = %f after %f", c.Remaining, prev)
		}
		prev = c.Remaining
	}
	if !c.Ready() {
		t.Error("cooldown should elapse")
	}
}

func TestHeat(t *testing.T) {
	h := Heat{Max: 100, Decay: 30}
	h.Add(80)
	h.Add(40)
	if h.Value != 120 || !h.Overheated() {
		t.Fatalf("heat = %f, expected 120 past the limit", h.Value)
	}
	h.Cool(0.5)
	if h.Value != 105 || !h.Overheated() {
		t.Errorf("heat after 0.5s = %f, expected 105 and still overheated", h.Value)
	}
	h.Cool(1)
	if h.Value != 75 || h.Overheated() {
		t.Errorf("heat after 1.5s = %f, expected 75", h.Value)
	}
	h.Cool(10)
	if h.Value != 0 {
		t.Errorf("heat floored at %f, expected 0", h.Value)
	}
}
