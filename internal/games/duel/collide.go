package duel

import (
	"github.com/vovakirdan/outpost-arcade/internal/core"
	"github.com/vovakirdan/outpost-arcade/internal/sim"
)

// resolveCollisions applies hits in a fixed order: shells then missiles
// against the CPU and the player, then point-defense interceptions.
func (g *Game) resolveCollisions() {
	for _, kind := range []sim.Kind{sim.KindBullet, sim.KindMissile} {
		sim.Pairs(g.world, kind, sim.KindEnemy, g.hitShip)
		sim.Pairs(g.world, kind, sim.KindPlayer, g.hitShip)
	}
	for _, kind := range []sim.Kind{sim.KindMissile, sim.KindBullet} {
		sim.Pairs(g.world, sim.KindPointDefense, kind, g.intercept)
	}
}

// hitShip damages a ship hit by a hostile projectile.
func (g *Game) hitShip(a, b sim.Entity) {
	p := a.(*Projectile)
	s := b.(*Ship)
	if p.team == s.body.Kind {
		return
	}

	s.hp = max(0, s.hp-p.damage)
	g.world.Remove(p.body.Handle)
	g.spawnParticle(p.body.Pos, core.ColorOrange, impactLife)
	if shooter := g.shipOf(p.team); shooter != nil {
		shooter.score += p.damage * hitScore
	}
	if s.hp <= 0 {
		g.world.Remove(s.body.Handle)
	}
}

// intercept destroys a hostile projectile and the point-defense shot that hit it.
func (g *Game) intercept(a, b sim.Entity) {
	pd := a.(*Projectile)
	p := b.(*Projectile)
	if pd.team == p.team {
		return
	}
	g.world.Remove(pd.body.Handle)
	g.world.Remove(p.body.Handle)
	g.spawnParticle(p.body.Pos, core.ColorCyan, impactLife)
}

func (g *Game) shipOf(kind sim.Kind) *Ship {
	switch kind {
	case sim.KindPlayer:
		return g.player
	case sim.KindEnemy:
		return g.cpu
	}
	return nil
}
