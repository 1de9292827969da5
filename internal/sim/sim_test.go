package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/outpost-arcade/internal/core"
)

const dt = 1.0 / 60

type thing struct {
	body Body
	hp   int
}

func (t *thing) Body() *Body   { return &t.body }
func (t *thing) Expired() bool { return t.hp < 0 }

func newThing(kind Kind, pos, vel core.Vec2, bounds Bounds) *thing {
	return &thing{body: Body{Kind: kind, Pos: pos, Vel: vel, W: 10, H: 10, Bounds: bounds}}
}

func testWorld() *World {
	return NewWorld(Field{W: core.FieldWidth, H: core.FieldHeight})
}

func TestStepZeroVelocity(t *testing.T) {
	w := testWorld()
	policies := []Bounds{BoundsNone, BoundsClamp, BoundsWrap, BoundsDespawn}
	var things []*thing
	for i, p := range policies {
		th := newThing(KindEnemy, core.V(100+float64(i)*50, 200), core.Vec2{}, p)
		w.Spawn(th)
		things = append(things, th)
	}

	for range 600 {
		Step(w, dt)
	}
	for i, th := range things {
		want := core.V(100+float64(i)*50, 200)
		if th.body.Pos != want {
			t.Errorf("policy %d: pos = %v, expected %v", policies[i], th.body.Pos, want)
		}
		if th.body.Box.Center() != want {
			t.Errorf("policy %d: box center drifted to %v", policies[i], th.body.Box.Center())
		}
	}
}

func TestStepIntegratesAndSyncsBox(t *testing.T) {
	w := testWorld()
	th := newThing(KindBullet, core.V(100, 100), core.V(60, -120), BoundsNone)
	w.Spawn(th)

	Step(w, 0.5)
	if th.body.Pos != core.V(130, 40) {
		t.Fatalf("pos = %v, expected (130, 40)", th.body.Pos)
	}
	if th.body.Box != core.CenteredBox(core.V(130, 40), 10, 10) {
		t.Errorf("box = %+v not centered on position", th.body.Box)
	}
}

func TestStepLifetime(t *testing.T) {
	w := testWorld()
	th := newThing(KindParticle, core.V(10, 10), core.Vec2{}, BoundsNone)
	th.body.Timed, th.body.Life = true, 0.25
	w.Spawn(th)

	prev := th.body.Life
	steps := 0
	for w.Alive(th.body.Handle) {
		Step(w, dt)
		steps++
		if th.body.Life > prev {
			t.Fatal("lifetime increased")
		}
		prev = th.body.Life
		if steps > 100 {
			t.Fatal("particle never expired")
		}
	}
	// 0.25s at 60Hz crosses zero on step 15 (floating point may land on 16)
	if steps < 15 || steps > 16 {
		t.Errorf("removed after %d steps, expected 15 or 16", steps)
	}
	if th.body.Life > 0 {
		t.Errorf("removed with life %f still positive", th.body.Life)
	}
}

func TestStepBoundsPolicies(t *testing.T) {
	tests := []struct {
		name    string
		pos     core.Vec2
		vel     core.Vec2
		bounds  Bounds
		alive   bool
		wantPos core.Vec2
	}{
		{"clamp left", core.V(2, 300), core.V(-600, 0), BoundsClamp, true, core.V(0, 300)},
		{"clamp bottom right", core.V(955, 635), core.V(600, 600), BoundsClamp, true, core.V(960, 640)},
		{"wrap left", core.V(-5, 300), core.V(-60, 0), BoundsWrap, true, core.V(965, 300)},
		{"wrap partially visible", core.V(-2, 300), core.V(-60, 0), BoundsWrap, true, core.V(-3, 300)},
		{"wrap bottom", core.V(300, 645), core.V(0, 60), BoundsWrap, true, core.V(300, -5)},
		{"despawn off top", core.V(300, 0.5), core.V(0, -60), BoundsDespawn, false, core.V(300, -0.5)},
		{"despawn stays", core.V(300, 300), core.V(0, -60), BoundsDespawn, true, core.V(300, 299)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := testWorld()
			th := newThing(KindBullet, tc.pos, tc.vel, tc.bounds)
			h := w.Spawn(th)
			Step(w, dt)
			if w.Alive(h) != tc.alive {
				t.Fatalf("alive = %v, expected %v", w.Alive(h), tc.alive)
			}
			if math.Abs(th.body.Pos.X-tc.wantPos.X) > 1e-9 || math.Abs(th.body.Pos.Y-tc.wantPos.Y) > 1e-9 {
				t.Errorf("pos = %v, expected %v", th.body.Pos, tc.wantPos)
			}
		})
	}
}

func TestStepExpirer(t *testing.T) {
	w := testWorld()
	th := newThing(KindEnemy, core.V(10, 10), core.Vec2{}, BoundsNone)
	h := w.Spawn(th)
	Step(w, dt)
	if !w.Alive(h) {
		t.Fatal("healthy entity removed")
	}
	th.hp = -1
	Step(w, dt)
	if w.Alive(h) {
		t.Error("expired entity still alive")
	}
}

func TestWorldRemoveIdempotent(t *testing.T) {
	w := testWorld()
	a := w.Spawn(newThing(KindEnemy, core.V(1, 1), core.Vec2{}, BoundsNone))
	b := w.Spawn(newThing(KindEnemy, core.V(2, 2), core.Vec2{}, BoundsNone))

	w.Remove(a)
	w.Remove(a)
	if w.Count(KindEnemy) != 1 {
		t.Fatalf("Count = %d, expected 1", w.Count(KindEnemy))
	}
	w.Sweep()
	w.Remove(a)
	if w.Len() != 1 || !w.Alive(b) {
		t.Error("removal of a swept handle should not disturb others")
	}
	if _, ok := w.Get(a); ok {
		t.Error("dead handle resolved")
	}
	if _, ok := w.Get(0); ok {
		t.Error("zero handle resolved")
	}
}

func TestWorldOrderAndNearest(t *testing.T) {
	w := testWorld()
	far := w.Spawn(newThing(KindEnemy, core.V(500, 500), core.Vec2{}, BoundsNone))
	near := w.Spawn(newThing(KindEnemy, core.V(110, 100), core.Vec2{}, BoundsNone))
	w.Spawn(newThing(KindBullet, core.V(100, 100), core.Vec2{}, BoundsNone))

	var seen []Handle
	w.Each(KindEnemy, func(e Entity) { seen = append(seen, e.Body().Handle) })
	if len(seen) != 2 || seen[0] != far || seen[1] != near {
		t.Errorf("Each order = %v, expected [%d %d]", seen, far, near)
	}

	e, ok := w.Nearest(KindEnemy, core.V(100, 100))
	if !ok || e.Body().Handle != near {
		t.Errorf("Nearest = %v, expected %d", e, near)
	}
	w.Remove(near)
	e, _ = w.Nearest(KindEnemy, core.V(100, 100))
	if e.Body().Handle != far {
		t.Error("Nearest should skip dead entities")
	}
}

func TestPairsOrderAndSkip(t *testing.T) {
	w := testWorld()
	e1 := w.Spawn(newThing(KindEnemy, core.V(100, 100), core.Vec2{}, BoundsNone))
	e2 := w.Spawn(newThing(KindEnemy, core.V(104, 100), core.Vec2{}, BoundsNone))
	b1 := w.Spawn(newThing(KindBullet, core.V(102, 100), core.Vec2{}, BoundsNone))
	b2 := w.Spawn(newThing(KindBullet, core.V(102, 102), core.Vec2{}, BoundsNone))

	type pair struct{ a, b Handle }
	var got []pair
	Pairs(w, KindBullet, KindEnemy, func(a, b Entity) {
		got = append(got, pair{a.Body().Handle, b.Body().Handle})
		w.Remove(a.Body().Handle) // a bullet is consumed by its first hit
	})

	want := []pair{{b1, e1}, {b2, e1}}
	if len(got) != len(want) {
		t.Fatalf("pairs = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d = %v, expected %v", i, got[i], want[i])
		}
	}
	if !w.Alive(e2) {
		t.Error("e2 should be untouched")
	}
}

func TestOverlapping(t *testing.T) {
	w := testWorld()
	p := newThing(KindPlayer, core.V(100, 100), core.Vec2{}, BoundsNone)
	w.Spawn(p)
	w.Spawn(newThing(KindEnemy, core.V(105, 100), core.Vec2{}, BoundsNone))
	w.Spawn(newThing(KindEnemy, core.V(110, 100), core.Vec2{}, BoundsNone)) // edge contact only
	w.Spawn(newThing(KindEnemy, core.V(95, 95), core.Vec2{}, BoundsNone))

	if n := len(Overlapping(w, p, KindEnemy)); n != 2 {
		t.Errorf("Overlapping = %d, expected 2", n)
	}
}
