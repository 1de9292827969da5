package survival

import (
	"math"

	"github.com/vovakirdan/outpost-arcade/internal/config"
	"github.com/vovakirdan/outpost-arcade/internal/core"
	"github.com/vovakirdan/outpost-arcade/internal/sim"
)

// WaveInterval is the countdown set after wave w starts.
func WaveInterval(c config.SurvivalWaves, w int) float64 {
	return math.Max(c.MinInterval, c.BaseInterval-float64(w)*c.Decay)
}

// WaveSize is the number of enemies in wave w.
func WaveSize(c config.SurvivalWaves, w int) int {
	return c.BaseCount + w*c.CountScale
}

// HealthBonus is the extra enemy hp in wave w.
func HealthBonus(c config.SurvivalWaves, w int) int {
	if c.HPBonusEvery <= 0 {
		return 0
	}
	return w / c.HPBonusEvery
}

// tickWaves counts the wave timer down and launches the next wave at zero.
func (g *Game) tickWaves(dt float64) {
	g.waveTimer -= dt
	if g.waveTimer <= 0 {
		g.spawnWave()
	}
}

// spawnWave starts the next wave in a ring around the player.
func (g *Game) spawnWave() {
	wc := g.cfg.Waves
	g.wave++
	g.waveTimer = WaveInterval(wc, g.wave)

	hp := g.cfg.Enemy.BaseHP + HealthBonus(wc, g.wave)
	speed := g.difficulty.Speed(g.cfg.Enemy.Speed, g.player.score, int(g.tick))
	center := g.player.body.Pos
	spread := max(0, wc.SpawnMaxDist-wc.SpawnMinDist)
	for range WaveSize(wc, g.wave) {
		angle := g.rng.Float64() * 2 * math.Pi
		dist := float64(wc.SpawnMinDist + g.rng.Intn(spread+1))
		g.world.Spawn(&Enemy{
			body: sim.Body{
				Kind: sim.KindEnemy,
				Pos:  center.Add(core.FromAngle(angle, dist)),
				W:    g.cfg.Enemy.Size,
				H:    g.cfg.Enemy.Size,
			},
			hp:     hp,
			target: g.player.body.Handle,
			speed:  speed,
		})
	}
	g.emit(core.EventWaveStarted, g.wave, "")
}

// maybeDropPickup rolls the on-kill drop at pos.
func (g *Game) maybeDropPickup(pos core.Vec2) {
	pc := g.cfg.Pickups
	if g.rng.Float64() >= pc.DropChance {
		return
	}
	kind := PickupKind(g.rng.Intn(int(pickupKinds)))
	g.world.Spawn(&Pickup{
		body: sim.Body{
			Kind:  sim.KindPickup,
			Pos:   pos,
			W:     pc.Size,
			H:     pc.Size,
			Timed: true,
			Life:  pc.Lifetime,
		},
		kind: kind,
	})
}
