package survival

import (
	"github.com/vovakirdan/outpost-arcade/internal/core"
	"github.com/vovakirdan/outpost-arcade/internal/sim"
)

// Intent is what the player wants this tick.
type Intent struct {
	Move core.Vec2
	Aim  core.Vec2
	Fire bool
}

// intent maps a raw input frame to player intent.
//
// A held aim stick aims and fires. Without one, a pointer farther than
// PointerRange from the ship aims and the fire action shoots; with no
// pointer the fire action shoots along the ship's last heading.
func (g *Game) intent(in core.InputFrame) Intent {
	it := Intent{Move: in.Move.ClampLen(1)}
	switch {
	case in.AimActive:
		it.Aim = in.Aim
		it.Fire = true
	case in.HasPointer:
		rel := in.Pointer.Sub(g.player.body.Pos)
		if rel.Len() > g.cfg.Player.PointerRange {
			it.Aim = rel.Normalize()
		}
		it.Fire = in.Has(core.ActionFire)
	default:
		it.Aim = g.player.facing
		it.Fire = in.Has(core.ActionFire)
	}
	return it
}

// applyIntent stores the move intent and fires when allowed.
func (g *Game) applyIntent(it Intent) {
	p := g.player
	p.move = it.Move
	if it.Aim.LenSq() > 0 {
		p.facing = it.Aim.Normalize()
	}
	if it.Fire {
		g.fire(it.Aim)
	}
}

// fire spawns a bullet and a muzzle flash. It is a no-op while the gun
// cools down or the aim sits inside the dead zone.
func (g *Game) fire(aim core.Vec2) bool {
	p := g.player
	if !p.gun.Ready() || aim.LenSq() < g.cfg.Player.AimDeadZone {
		return false
	}
	dir := aim.Normalize()
	muzzle := p.body.Pos.Add(dir.Scale(g.cfg.Player.MuzzleOffset))
	size := g.cfg.Player.BulletSize
	g.world.Spawn(&Bullet{
		body: sim.Body{
			Kind:   sim.KindBullet,
			Pos:    muzzle,
			Vel:    dir.Scale(p.bulletSpeed),
			W:      size,
			H:      size,
			Bounds: sim.BoundsDespawn,
		},
		owner:  p.body.Handle,
		damage: p.damage,
	})
	g.spawnParticle(muzzle, core.ColorYellow, muzzleFlashLife)
	p.gun.Trigger()
	return true
}

const (
	muzzleFlashLife = 0.25
	impactLife      = 0.2
	particleSize    = 4
)

func (g *Game) spawnParticle(pos core.Vec2, c core.Color, life float64) {
	g.world.Spawn(&Particle{
		body: sim.Body{
			Kind:  sim.KindParticle,
			Pos:   pos,
			W:     particleSize,
			H:     particleSize,
			Timed: true,
			Life:  life,
		},
		color: c,
	})
}
