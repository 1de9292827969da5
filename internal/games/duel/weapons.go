package duel

import (
	"github.com/vovakirdan/outpost-arcade/internal/config"
	"github.com/vovakirdan/outpost-arcade/internal/core"
	"github.com/vovakirdan/outpost-arcade/internal/multiplayer"
	"github.com/vovakirdan/outpost-arcade/internal/sim"
)

const (
	impactLife  = 0.2
	exhaustLife = 0.15
	sparkSize   = 4
)

// act carries out a ship's command: weapon switch, reload, fire, defend.
func (g *Game) act(s *Ship) {
	c := s.cmd
	if c.Switch && c.Select >= 0 && c.Select < weaponCount {
		s.weapon = c.Select
	}
	if c.Reload {
		s.pdShots = g.cfg.PointDefense.Shots
	}
	if c.Fire {
		g.fire(s)
	}
	if c.Defend {
		g.defend(s)
	}
}

// fire launches the selected weapon. It is a no-op while the slot cools
// down or the ship is overheated.
func (g *Game) fire(s *Ship) bool {
	gun := &s.guns[s.weapon]
	if !gun.Ready() || s.heat.Overheated() {
		return false
	}

	wc := g.cfg.Cannon
	kind := sim.KindBullet
	var guide *sim.Guidance
	if s.weapon == WeaponMissile {
		mc := g.cfg.Missile
		wc = mc.WeaponConfig
		kind = sim.KindMissile
		guide = &sim.Guidance{
			Target:      opponentKind(s),
			MaxTurn:     mc.MaxTurn,
			Accel:       mc.Accel,
			BaseSpeed:   mc.Speed,
			MaxSpeedMul: mc.MaxSpeedMul,
		}
	}

	dir := s.Heading()
	g.launch(s, kind, dir, wc, guide)
	s.heat.Add(wc.Heat)
	gun.Period = g.period(s, wc.Period)
	gun.Trigger()
	return true
}

// defend fires one point-defense shot at the nearest incoming projectile,
// or straight ahead when nothing is incoming.
func (g *Game) defend(s *Ship) bool {
	pc := g.cfg.PointDefense
	if !s.pd.Ready() || s.pdShots <= 0 {
		return false
	}

	dir := s.Heading()
	if p, _, ok := g.nearestThreat(s); ok {
		if d := p.body.Pos.Sub(s.body.Pos); !d.IsZero() {
			dir = d.Normalize()
		}
	}
	g.launch(s, sim.KindPointDefense, dir, config.WeaponConfig{
		Speed:    pc.Speed,
		Lifetime: pc.Lifetime,
		Size:     pc.Size,
	}, nil)
	s.pdShots--
	s.pd.Period = g.period(s, pc.Period)
	s.pd.Trigger()
	return true
}

// launch spawns a projectile just clear of the ship's hull.
func (g *Game) launch(s *Ship, kind sim.Kind, dir core.Vec2, wc config.WeaponConfig, guide *sim.Guidance) {
	offset := s.body.W/2 + wc.Size/2 + 1
	g.world.Spawn(&Projectile{
		body: sim.Body{
			Kind:   kind,
			Pos:    s.body.Pos.Add(dir.Scale(offset)),
			Vel:    s.body.Vel.Add(dir.Scale(wc.Speed)),
			W:      wc.Size,
			H:      wc.Size,
			Bounds: sim.BoundsDespawn,
			Timed:  true,
			Life:   wc.Lifetime,
		},
		owner:  s.body.Handle,
		team:   s.body.Kind,
		damage: wc.Damage,
		guide:  guide,
	})
}

// period returns a weapon period, shortened for the CPU as difficulty rises.
func (g *Game) period(s *Ship, base float64) float64 {
	if s.side != multiplayer.SideCPU {
		return base
	}
	return g.difficulty.Cooldown(base, g.player.score, int(g.tick))
}

// nearestThreat returns the closest hostile projectile, preferring missiles.
func (g *Game) nearestThreat(s *Ship) (*Projectile, float64, bool) {
	for _, kind := range []sim.Kind{sim.KindMissile, sim.KindBullet} {
		var best *Projectile
		bestD := 0.0
		g.world.Each(kind, func(e sim.Entity) {
			p := e.(*Projectile)
			if p.team == s.body.Kind {
				return
			}
			if d := p.body.Pos.Dist(s.body.Pos); best == nil || d < bestD {
				best, bestD = p, d
			}
		})
		if best != nil {
			return best, bestD, true
		}
	}
	return nil, 0, false
}

// exhaust leaves a spark behind every ship that thrusted this tick.
func (g *Game) exhaust() {
	for _, s := range []*Ship{g.player, g.cpu} {
		if s.thrusted && g.world.Alive(s.body.Handle) {
			g.spawnParticle(s.body.Pos.Sub(s.Heading().Scale(s.body.W/2)), core.ColorYellow, exhaustLife)
		}
	}
}

func (g *Game) spawnParticle(pos core.Vec2, c core.Color, life float64) {
	g.world.Spawn(&Particle{
		body: sim.Body{
			Kind:  sim.KindParticle,
			Pos:   pos,
			W:     sparkSize,
			H:     sparkSize,
			Timed: true,
			Life:  life,
		},
		color: c,
	})
}

func opponentKind(s *Ship) sim.Kind {
	if s.body.Kind == sim.KindPlayer {
		return sim.KindEnemy
	}
	return sim.KindPlayer
}
