package survival

import (
	"math"

	"github.com/vovakirdan/outpost-arcade/internal/sim"
)

// Snapshot represents the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Wave      int
	WaveTimer float64
	Score     int
	HP        int
	GameOver  bool
	Player    [2]float64
	Enemies   [][2]float64
	Bullets   int
	Pickups   int
}

// Snapshot returns the current game state for testing.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Wave:      g.wave,
		WaveTimer: g.waveTimer,
		Score:     g.player.score,
		HP:        g.player.hp,
		GameOver:  g.gameOver,
		Player:    [2]float64{g.player.body.Pos.X, g.player.body.Pos.Y},
		Bullets:   g.world.Count(sim.KindBullet),
		Pickups:   g.world.Count(sim.KindPickup),
	}
	g.world.Each(sim.KindEnemy, func(e sim.Entity) {
		p := e.Body().Pos
		s.Enemies = append(s.Enemies, [2]float64{p.X, p.Y})
	})
	return s
}

// Hash returns a simple hash of the snapshot for comparison.
func (s Snapshot) Hash() uint64 {
	var h uint64 = 17
	h = h*31 + s.Tick
	h = h*31 + uint64(s.Wave) //#nosec G115 -- wave is never negative
	h = h*31 + math.Float64bits(s.WaveTimer)
	h = h*31 + uint64(s.Score) //#nosec G115 -- score is never negative
	h = h*31 + uint64(s.HP)    //#nosec G115 -- hp is never negative
	if s.GameOver {
		h = h*31 + 1
	}
	h = h*31 + math.Float64bits(s.Player[0])
	h = h*31 + math.Float64bits(s.Player[1])
	for _, e := range s.Enemies {
		h = h*31 + math.Float64bits(e[0])
		h = h*31 + math.Float64bits(e[1])
	}
	h = h*31 + uint64(s.Bullets) //#nosec G115 -- count
	h = h*31 + uint64(s.Pickups) //#nosec G115 -- count
	return h
}
