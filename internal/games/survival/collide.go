package survival

import (
	"github.com/vovakirdan/outpost-arcade/internal/core"
	"github.com/vovakirdan/outpost-arcade/internal/sim"
)

// resolveCollisions applies hit effects in a fixed order:
// bullets on enemies, enemies on the player, then pickups.
func (g *Game) resolveCollisions() {
	g.bulletHits()
	g.contactDamage()
	if !g.gameOver {
		g.collectPickups()
	}
}

// bulletHits lets each bullet damage the first live enemy it overlaps.
func (g *Game) bulletHits() {
	sim.Pairs(g.world, sim.KindBullet, sim.KindEnemy, func(a, b sim.Entity) {
		bullet := a.(*Bullet)
		enemy := b.(*Enemy)

		enemy.hp -= bullet.damage
		g.world.Remove(bullet.body.Handle)
		g.spawnParticle(enemy.body.Pos, core.ColorOrange, impactLife)

		if enemy.hp <= 0 {
			g.world.Remove(enemy.body.Handle)
			if bullet.owner == g.player.body.Handle {
				g.player.score += g.cfg.Scoring.Kill
			}
			g.maybeDropPickup(enemy.body.Pos)
		}
	})
}

// contactDamage costs the player one contact's damage per frame no matter
// how many enemies touch, and shoves every touching enemy away.
func (g *Game) contactDamage() {
	p := g.player
	touching := sim.Overlapping(g.world, p, sim.KindEnemy)
	if len(touching) == 0 {
		return
	}

	p.hp = max(0, p.hp-g.cfg.Enemy.ContactDamage)
	for _, e := range touching {
		b := e.Body()
		push := b.Pos.Sub(p.body.Pos).Normalize().Scale(g.cfg.Enemy.Knockback)
		b.Pos = b.Pos.Add(push)
		b.Sync()
	}
	if p.hp <= 0 {
		g.endRun()
	}
}

// collectPickups applies every pickup the player touches.
func (g *Game) collectPickups() {
	p := g.player
	for _, e := range sim.Overlapping(g.world, p, sim.KindPickup) {
		pk := e.(*Pickup)
		g.applyUpgrade(pk.kind)
		p.score += g.cfg.Scoring.Pickup
		g.world.Remove(pk.body.Handle)
		g.emit(core.EventPickup, int(pk.kind), pk.kind.String())
	}
}

func (g *Game) applyUpgrade(k PickupKind) {
	p := g.player
	pc := g.cfg.Pickups
	switch k {
	case PickupRate:
		p.gun.Period = max(pc.RateFloor, p.gun.Period*pc.RateFactor)
	case PickupDamage:
		p.damage += pc.DamageBonus
	case PickupSpeed:
		p.speed += pc.SpeedBonus
	}
}
