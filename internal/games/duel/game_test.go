package duel

import (
	"math"
	"testing"

	"github.com/vovakirdan/outpost-arcade/internal/core"
	"github.com/vovakirdan/outpost-arcade/internal/multiplayer"
	"github.com/vovakirdan/outpost-arcade/internal/sim"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// newTestGame returns a duel with the CPU ship left idle.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.Reset(testConfig(42))
	g.autopilot = false
	return g
}

func (g *Game) spawnShot(team sim.Kind, kind sim.Kind, pos, vel core.Vec2, damage int) *Projectile {
	p := &Projectile{
		body: sim.Body{
			Kind:   kind,
			Pos:    pos,
			Vel:    vel,
			W:      4,
			H:      4,
			Bounds: sim.BoundsDespawn,
			Timed:  true,
			Life:   2,
		},
		team:   team,
		owner:  g.shipOf(team).body.Handle,
		damage: damage,
	}
	g.world.Spawn(p)
	return p
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestGameDeterminism(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	inputs := make([]core.InputFrame, 1200)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		inputs[i].Move = core.V(math.Sin(float64(i)*0.03), -1)
		if i%7 == 0 {
			inputs[i].Set(core.ActionFire)
		}
		if i%200 == 100 {
			inputs[i].Set(core.ActionWeaponNext)
		}
		if i%45 == 0 {
			inputs[i].Set(core.ActionPointDefense)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig(777))
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", s1.Hash(), s2.Hash())
	}
}

func TestReset(t *testing.T) {
	g := newTestGame(t)

	if g.player.hp != 10 || g.cpu.hp != 10 {
		t.Errorf("Expected both ships at 10 hp, got %d and %d", g.player.hp, g.cpu.hp)
	}
	if g.world.Count(sim.KindEnemy) != 1 {
		t.Errorf("Expected exactly one enemy, got %d", g.world.Count(sim.KindEnemy))
	}
	if g.player.pdShots != 12 {
		t.Errorf("Expected 12 point-defense shots, got %d", g.player.pdShots)
	}
	if _, done := g.Outcome(); done {
		t.Error("Outcome decided at start")
	}
}

func TestFireCooldown(t *testing.T) {
	g := newTestGame(t)
	s := g.player

	if !g.fire(s) {
		t.Fatal("First shot rejected")
	}
	if n := g.world.Count(sim.KindBullet); n != 1 {
		t.Fatalf("Expected 1 shell, got %d", n)
	}
	if s.heat.Value != 8 {
		t.Errorf("Expected heat 8, got %v", s.heat.Value)
	}
	if s.guns[WeaponCannon].Remaining != 0.2 {
		t.Errorf("Expected cooldown reset to 0.2, got %v", s.guns[WeaponCannon].Remaining)
	}

	if g.fire(s) {
		t.Error("Shot accepted during cooldown")
	}
	if n := g.world.Count(sim.KindBullet); n != 1 {
		t.Errorf("Rejected shot spawned a shell: %d", n)
	}
	if s.heat.Value != 8 {
		t.Errorf("Rejected shot added heat: %v", s.heat.Value)
	}
}

func TestFireOverheated(t *testing.T) {
	g := newTestGame(t)
	s := g.player
	s.heat.Value = s.heat.Max

	if g.fire(s) {
		t.Error("Shot accepted while overheated")
	}
	if n := g.world.Count(sim.KindBullet); n != 0 {
		t.Errorf("Overheated ship fired %d shells", n)
	}
	if !s.guns[WeaponCannon].Ready() {
		t.Error("Rejected shot touched the cooldown")
	}
	if s.heat.Value != s.heat.Max {
		t.Errorf("Rejected shot added heat: %v", s.heat.Value)
	}
}

func TestThrustOverheated(t *testing.T) {
	g := newTestGame(t)
	s := g.player
	s.heat.Value = s.heat.Max + 0.75

	in := core.NewInputFrame()
	in.Move = core.V(0, -1)

	// Decay takes two ticks to bring heat back under the limit.
	for i := 0; i < 2; i++ {
		g.Step(in)
		if !s.body.Vel.IsZero() {
			t.Fatalf("tick %d: overheated ship accelerated to %v", i, s.body.Vel)
		}
	}

	g.Step(in)
	if s.body.Vel.IsZero() {
		t.Error("Ship did not thrust after cooling")
	}
	if s.body.Vel.X <= 0 {
		t.Errorf("Expected thrust along the nose (+x), got %v", s.body.Vel)
	}
}

func TestHeldFireOverheats(t *testing.T) {
	g := newTestGame(t)
	s := g.player
	g.cpu.hp = 1 << 30
	gun := &s.guns[WeaponCannon]
	dt := g.runtime.DT()

	in := press(core.ActionFire)
	in.Move = core.V(0, -1)

	shots, rejected := 0, 0
	for i := 0; i < 1800; i++ {
		ready, hot := gun.Ready(), s.heat.Overheated()
		heat := s.heat.Value

		g.Step(in)
		if g.gameOver {
			t.Fatalf("tick %d: duel ended", i)
		}
		fired := ready && gun.Remaining > 0

		switch {
		case ready && hot:
			rejected++
			if fired {
				t.Fatalf("tick %d: fired at heat %.2f", i, heat)
			}
			if want := max(0, heat-s.heat.Decay*dt); math.Abs(s.heat.Value-want) > 1e-9 {
				t.Fatalf("tick %d: heat %.4f after rejected shot, expected %.4f", i, s.heat.Value, want)
			}
		case ready:
			if !fired {
				t.Fatalf("tick %d: ready gun at heat %.2f did not fire", i, heat)
			}
			shots++
		}
	}

	if shots == 0 {
		t.Fatal("Expected some shots")
	}
	if rejected == 0 {
		t.Errorf("Held fire never overheated: %d shots, peak heat below %v", shots, s.heat.Max)
	}
}

func TestSpeedCapped(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputFrame()
	in.Move = core.V(0, -1)

	for i := 0; i < 300; i++ {
		g.player.heat.Value = 0
		g.Step(in)
	}
	if v := g.player.body.Vel.Len(); v > 260+1e-9 {
		t.Errorf("Ship exceeded max speed: %v", v)
	}
}

func TestWeaponSelection(t *testing.T) {
	g := newTestGame(t)

	g.Step(press(core.ActionWeapon2))
	if g.player.weapon != WeaponMissile {
		t.Fatalf("Expected missiles, got %v", g.player.weapon)
	}
	g.Step(press(core.ActionWeaponNext))
	if g.player.weapon != WeaponCannon {
		t.Errorf("Expected cannon after cycling, got %v", g.player.weapon)
	}

	g.Step(press(core.ActionWeapon2))
	g.Step(press(core.ActionFire))
	if n := g.world.Count(sim.KindMissile); n != 1 {
		t.Errorf("Expected 1 missile, got %d", n)
	}
	if g.player.heat.Value <= 0 {
		t.Error("Missile launch added no heat")
	}
}

func TestPointDefenseAmmo(t *testing.T) {
	g := newTestGame(t)
	s := g.player

	if !g.defend(s) {
		t.Fatal("Point-defense rejected")
	}
	if s.pdShots != 11 {
		t.Errorf("Expected 11 shots left, got %d", s.pdShots)
	}
	if g.defend(s) {
		t.Error("Point-defense fired during cooldown")
	}

	s.pdShots = 0
	s.pd.Remaining = 0
	if g.defend(s) {
		t.Error("Point-defense fired with no shots")
	}

	g.Step(press(core.ActionReload))
	if s.pdShots != 12 {
		t.Errorf("Expected reload to 12, got %d", s.pdShots)
	}
}

func TestPointDefenseIntercepts(t *testing.T) {
	g := newTestGame(t)
	pos := core.V(480, 100)
	g.spawnShot(sim.KindEnemy, sim.KindMissile, pos, core.Vec2{}, 3)
	g.spawnShot(sim.KindPlayer, sim.KindPointDefense, pos.Add(core.V(1, 0)), core.Vec2{}, 0)
	// A friendly shell in the same spot is left alone.
	g.spawnShot(sim.KindPlayer, sim.KindBullet, pos.Add(core.V(-1, 0)), core.Vec2{}, 1)

	g.Step(core.NewInputFrame())

	if n := g.world.Count(sim.KindMissile); n != 0 {
		t.Errorf("Missile survived interception: %d", n)
	}
	if n := g.world.Count(sim.KindPointDefense); n != 0 {
		t.Errorf("Point-defense shot not consumed: %d", n)
	}
	if n := g.world.Count(sim.KindBullet); n != 1 {
		t.Errorf("Friendly shell intercepted: %d left", n)
	}
}

func TestMissileTurnLimited(t *testing.T) {
	g := newTestGame(t)
	m := g.spawnShot(sim.KindPlayer, sim.KindMissile, core.V(480, 320), core.V(0, -220), 3)
	m.guide = &sim.Guidance{
		Target:      sim.KindEnemy,
		MaxTurn:     0.06,
		Accel:       300,
		BaseSpeed:   220,
		MaxSpeedMul: 2,
	}

	before := m.body.Vel.Angle()
	g.Step(core.NewInputFrame())
	turned := core.NormalizeAngle(m.body.Vel.Angle() - before)

	if math.Abs(turned-0.06) > 1e-9 {
		t.Errorf("Expected a 0.06 rad turn toward the target, got %v", turned)
	}
	if m.guide.Locked() != g.cpu.body.Handle {
		t.Error("Missile did not lock the CPU ship")
	}
	if v := m.body.Vel.Len(); math.Abs(v-225) > 1e-9 {
		t.Errorf("Expected speed 225 after one step, got %v", v)
	}
}

func TestCannonKillWins(t *testing.T) {
	g := newTestGame(t)
	g.cpu.hp = 1
	g.cpu.body.Pos = g.player.body.Pos.Add(core.V(60, 0))
	g.cpu.body.Sync()

	var res core.StepResult
	for i := 0; i < 20 && !res.State.GameOver; i++ {
		res = g.Step(press(core.ActionFire))
	}
	if !res.State.GameOver {
		t.Fatal("Expected the duel to end")
	}

	o, done := g.Outcome()
	if !done || o.Winner != multiplayer.SidePlayer || o.Reason != multiplayer.EndDestroyed {
		t.Errorf("Unexpected outcome %+v", o)
	}
	if o.PlayerScore != hitScore+winBonus {
		t.Errorf("Expected score %d, got %d", hitScore+winBonus, o.PlayerScore)
	}
	if len(res.Events) != 1 || res.Events[0].Kind != core.EventDuelEnded || res.Events[0].Note != "player" {
		t.Errorf("Expected a duel-ended event, got %+v", res.Events)
	}
}

func TestMutualDestruction(t *testing.T) {
	g := newTestGame(t)
	g.player.hp = 1
	g.cpu.hp = 1
	g.spawnShot(sim.KindEnemy, sim.KindBullet, g.player.body.Pos, core.Vec2{}, 1)
	g.spawnShot(sim.KindPlayer, sim.KindBullet, g.cpu.body.Pos, core.Vec2{}, 1)

	g.Step(core.NewInputFrame())

	o, done := g.Outcome()
	if !done {
		t.Fatal("Expected the duel to end")
	}
	if o.Winner != multiplayer.SideNone || o.Reason != multiplayer.EndMutual {
		t.Errorf("Expected a mutual draw, got %+v", o)
	}
	if g.player.hp != 0 || g.cpu.hp != 0 {
		t.Errorf("Expected both hulls at 0, got %d and %d", g.player.hp, g.cpu.hp)
	}
}

func TestOwnShotsDoNotHurt(t *testing.T) {
	g := newTestGame(t)
	g.spawnShot(sim.KindPlayer, sim.KindBullet, g.player.body.Pos, core.Vec2{}, 5)

	g.Step(core.NewInputFrame())
	if g.player.hp != 10 {
		t.Errorf("Own shell damaged the player: hp %d", g.player.hp)
	}
}

func TestShipWraps(t *testing.T) {
	g := newTestGame(t)
	g.player.body.Pos = core.V(1, 320)
	g.player.body.Vel = core.V(-200, 0)

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if x := g.player.body.Pos.X; x < core.FieldWidth/2 {
		t.Errorf("Expected ship to wrap to the right edge, got x=%v", x)
	}
}

func TestPilot(t *testing.T) {
	g := newTestGame(t)
	g.player.body.Pos = core.V(240, 320)
	g.cpu.body.Pos = core.V(720, 320)
	g.cpu.angle = math.Pi

	c := g.pilot()
	if !c.Fire || c.Select != WeaponCannon {
		t.Errorf("Aligned CPU out of missile range should fire the cannon: %+v", c)
	}
	if !c.Thrust {
		t.Error("Distant CPU should close in")
	}

	g.cpu.body.Pos = core.V(600, 320)
	if c := g.pilot(); c.Select != WeaponMissile {
		t.Errorf("CPU in missile range should pick missiles: %+v", c)
	}

	g.cpu.angle = math.Pi / 2
	c = g.pilot()
	if c.Fire {
		t.Error("CPU fired while facing away")
	}
	if c.Turn != 1 {
		t.Errorf("Expected a full turn toward the player, got %v", c.Turn)
	}

	g.spawnShot(sim.KindPlayer, sim.KindBullet, g.cpu.body.Pos.Add(core.V(-50, 0)), core.Vec2{}, 1)
	if c := g.pilot(); !c.Defend {
		t.Error("CPU ignored an incoming shell")
	}

	g.cpu.pdShots = 0
	if c := g.pilot(); !c.Reload {
		t.Error("CPU did not reload an empty point-defense")
	}
}

func TestPauseAndRestart(t *testing.T) {
	g := newTestGame(t)

	g.Step(press(core.ActionPause))
	g.Step(press(core.ActionFire))
	if n := g.world.Count(sim.KindBullet); n != 0 {
		t.Error("Paused ship fired")
	}
	g.Step(press(core.ActionPause))

	g.cpu.hp = 1
	g.spawnShot(sim.KindPlayer, sim.KindBullet, g.cpu.body.Pos, core.Vec2{}, 1)
	if !g.Step(core.NewInputFrame()).State.GameOver {
		t.Fatal("Expected game over")
	}

	res := g.Step(press(core.ActionRestart))
	if res.State.GameOver || g.cpu.hp != 10 {
		t.Errorf("Restart did not reset the duel: %+v", res.State)
	}
}

func TestSceneOverlay(t *testing.T) {
	g := newTestGame(t)
	sc := g.Scene()
	if len(sc.Bars) != 3 {
		t.Fatalf("Expected 3 bars, got %d", len(sc.Bars))
	}
	if sc.HUD != "Cannon   PD 12/12   Score 0" {
		t.Errorf("Unexpected HUD %q", sc.HUD)
	}

	g.player.hp = 1
	g.spawnShot(sim.KindEnemy, sim.KindBullet, g.player.body.Pos, core.Vec2{}, 1)
	g.Step(core.NewInputFrame())
	if sc := g.Scene(); sc.Overlay == nil || sc.Overlay.Title != "DEFEAT" {
		t.Errorf("Expected defeat overlay, got %+v", sc.Overlay)
	}
}
