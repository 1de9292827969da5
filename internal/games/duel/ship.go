package duel

import (
	"math"

	"github.com/vovakirdan/outpost-arcade/internal/config"
	"github.com/vovakirdan/outpost-arcade/internal/core"
	"github.com/vovakirdan/outpost-arcade/internal/multiplayer"
	"github.com/vovakirdan/outpost-arcade/internal/sim"
)

// Weapon is a selectable primary weapon slot.
type Weapon int

const (
	WeaponCannon Weapon = iota
	WeaponMissile
	weaponCount
)

func (w Weapon) String() string {
	if w == WeaponMissile {
		return "Missile"
	}
	return "Cannon"
}

// Command is what a pilot wants its ship to do this tick.
type Command struct {
	Turn   float64 // -1 (counter-clockwise) .. 1
	Thrust bool
	Select Weapon
	Switch bool // apply Select
	Fire   bool
	Defend bool // point-defense burst
	Reload bool // refill point-defense
}

// Ship is one side of the duel.
type Ship struct {
	body  sim.Body
	side  multiplayer.Side
	hp    int
	maxHP int
	angle float64

	handling   config.DuelShip
	thrustHeat float64
	heat       sim.Heat

	weapon  Weapon
	guns    [weaponCount]sim.Cooldown
	pd      sim.Cooldown
	pdShots int

	cmd      Command
	thrusted bool // thrust applied on the last step
	score    int
}

func (s *Ship) Body() *sim.Body { return &s.body }

// Think applies turn and thrust, then cools the ship down.
func (s *Ship) Think(_ *sim.World, dt float64) {
	s.angle = core.NormalizeAngle(s.angle + core.ClampF(s.cmd.Turn, -1, 1)*s.handling.TurnRate*dt)

	s.thrusted = s.cmd.Thrust && !s.heat.Overheated()
	if s.thrusted {
		s.body.Vel = s.body.Vel.Add(core.FromAngle(s.angle, s.handling.Thrust*dt))
		s.heat.Add(s.thrustHeat * dt)
	} else {
		s.body.Vel = s.body.Vel.Scale(math.Pow(1-s.handling.Drag, dt))
	}
	s.body.Vel = s.body.Vel.ClampLen(s.handling.MaxSpeed)

	s.heat.Cool(dt)
	for i := range s.guns {
		s.guns[i].Tick(dt)
	}
	s.pd.Tick(dt)
}

// Heading returns the unit vector the nose points along.
func (s *Ship) Heading() core.Vec2 { return core.FromAngle(s.angle, 1) }

// HP returns the remaining hit points.
func (s *Ship) HP() int { return s.hp }

// Projectile is a cannon shell, missile or point-defense shot.
type Projectile struct {
	body   sim.Body
	owner  sim.Handle
	team   sim.Kind // kind of the ship that fired it
	damage int
	guide  *sim.Guidance
}

func (p *Projectile) Body() *sim.Body { return &p.body }

// Think steers homing projectiles.
func (p *Projectile) Think(w *sim.World, dt float64) {
	if p.guide != nil {
		p.guide.Steer(w, &p.body, dt)
	}
}

// Particle is a short-lived visual effect.
type Particle struct {
	body  sim.Body
	color core.Color
}

func (p *Particle) Body() *sim.Body { return &p.body }
