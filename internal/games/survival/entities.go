package survival

import (
	"github.com/vovakirdan/outpost-arcade/internal/core"
	"github.com/vovakirdan/outpost-arcade/internal/sim"
)

// Player is the outpost's ship.
type Player struct {
	body sim.Body

	hp, maxHP   int
	speed       float64
	damping     float64
	damage      int
	bulletSpeed float64
	gun         sim.Cooldown
	score       int

	move   core.Vec2 // current move intent
	facing core.Vec2 // last non-zero aim, for drawing and keyboard fire
}

func (p *Player) Body() *sim.Body { return &p.body }

// Think turns move intent into velocity and ticks the gun.
func (p *Player) Think(_ *sim.World, dt float64) {
	if p.move.LenSq() > 0 {
		p.body.Vel = p.move.Normalize().Scale(p.speed)
	} else {
		p.body.Vel = p.body.Vel.Scale(p.damping)
	}
	p.gun.Tick(dt)
}

// HP returns the remaining hit points.
func (p *Player) HP() int { return p.hp }

// Enemy chases the player.
type Enemy struct {
	body   sim.Body
	hp     int
	target sim.Handle
	speed  float64
}

func (e *Enemy) Body() *sim.Body { return &e.body }

// Think points the enemy at its target; a dead target leaves it idle.
func (e *Enemy) Think(w *sim.World, _ float64) {
	t, ok := w.Get(e.target)
	if !ok {
		e.body.Vel = core.Vec2{}
		return
	}
	e.body.Vel = t.Body().Pos.Sub(e.body.Pos).Normalize().Scale(e.speed)
}

// Expired reports a killed enemy.
func (e *Enemy) Expired() bool { return e.hp <= 0 }

// Bullet flies straight until it leaves the field or hits an enemy.
type Bullet struct {
	body   sim.Body
	owner  sim.Handle
	damage int
}

func (b *Bullet) Body() *sim.Body { return &b.body }

// Particle is a short-lived visual effect.
type Particle struct {
	body  sim.Body
	color core.Color
}

func (p *Particle) Body() *sim.Body { return &p.body }

// PickupKind selects the upgrade a pickup grants.
type PickupKind int

const (
	PickupRate PickupKind = iota
	PickupDamage
	PickupSpeed
	pickupKinds
)

// String returns the short name used in the HUD and logs.
func (k PickupKind) String() string {
	switch k {
	case PickupRate:
		return "rof"
	case PickupDamage:
		return "dmg"
	case PickupSpeed:
		return "spd"
	default:
		return "?"
	}
}

// Pickup is an upgrade waiting on the field.
type Pickup struct {
	body sim.Body
	kind PickupKind
}

func (p *Pickup) Body() *sim.Body { return &p.body }
