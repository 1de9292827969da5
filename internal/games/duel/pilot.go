package duel

import (
	"math"

	"github.com/vovakirdan/outpost-arcade/internal/core"
)

const (
	steerGain   = 4    // turn input per radian of bearing error
	aimWobble   = 0.15 // CPU aim error in radians at the lowest difficulty
	heatReserve = 0.7  // CPU stops thrusting above this share of max heat
)

// playerCommand maps the input frame to a ship command. A held aim stick
// turns the ship toward the stick and fires.
func (g *Game) playerCommand(in core.InputFrame) Command {
	s := g.player
	c := Command{
		Turn:   in.Move.X,
		Thrust: in.Move.Y < -0.5,
	}
	if in.AimActive && in.Aim.LenSq() > 0 {
		c.Turn = core.ClampF(core.NormalizeAngle(in.Aim.Angle()-s.angle)*steerGain, -1, 1)
	}

	switch {
	case in.Has(core.ActionWeapon1):
		c.Select, c.Switch = WeaponCannon, true
	case in.Has(core.ActionWeapon2):
		c.Select, c.Switch = WeaponMissile, true
	case in.Has(core.ActionWeaponNext):
		c.Select, c.Switch = (s.weapon+1)%weaponCount, true
	}

	c.Fire = in.Has(core.ActionFire) || in.AimActive
	c.Defend = in.Has(core.ActionPointDefense)
	c.Reload = in.Has(core.ActionReload)
	return c
}

// pilot flies the CPU ship: turn toward the player, close in when far,
// open fire inside the cone and shoot down incoming projectiles.
func (g *Game) pilot() Command {
	cpu, target := g.cpu, g.player
	ai := g.cfg.AI

	rel := target.body.Pos.Sub(cpu.body.Pos)
	dist := rel.Len()
	level := g.difficulty.Level(g.player.score, int(g.tick))
	wobble := (g.rng.Float64()*2 - 1) * aimWobble * (1 - level)
	bearing := core.NormalizeAngle(rel.Angle() + wobble - cpu.angle)

	c := Command{
		Turn:   core.ClampF(bearing*steerGain, -1, 1),
		Thrust: dist > ai.ThrustRange && cpu.heat.Value < cpu.heat.Max*heatReserve,
	}
	if math.Abs(bearing) <= ai.FireCone {
		c.Switch = true
		c.Select = WeaponCannon
		if dist <= ai.MissileRange && cpu.guns[WeaponMissile].Ready() {
			c.Select = WeaponMissile
		}
		c.Fire = true
	}
	if _, d, ok := g.nearestThreat(cpu); ok && d <= ai.DefendRange {
		c.Defend = true
	}
	c.Reload = cpu.pdShots == 0
	return c
}
