package duel

import (
	"math"

	"github.com/vovakirdan/outpost-arcade/internal/sim"
)

// ShipState is the snapshot of one ship.
type ShipState struct {
	Pos     [2]float64
	Angle   float64
	HP      int
	Heat    float64
	PDShots int
}

// Snapshot represents the game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Player      ShipState
	CPU         ShipState
	Projectiles int
	GameOver    bool
}

func shipState(s *Ship) ShipState {
	return ShipState{
		Pos:     [2]float64{s.body.Pos.X, s.body.Pos.Y},
		Angle:   s.angle,
		HP:      s.hp,
		Heat:    s.heat.Value,
		PDShots: s.pdShots,
	}
}

// Snapshot returns the current game state for testing.
func (g *Game) Snapshot() Snapshot {
	projectiles := 0
	for _, k := range []sim.Kind{sim.KindBullet, sim.KindMissile, sim.KindPointDefense} {
		projectiles += g.world.Count(k)
	}
	return Snapshot{
		Tick:        g.tick,
		Player:      shipState(g.player),
		CPU:         shipState(g.cpu),
		Projectiles: projectiles,
		GameOver:    g.gameOver,
	}
}

func (s ShipState) hash(h uint64) uint64 {
	h = h*31 + math.Float64bits(s.Pos[0])
	h = h*31 + math.Float64bits(s.Pos[1])
	h = h*31 + math.Float64bits(s.Angle)
	h = h*31 + uint64(s.HP) //#nosec G115 -- hp is never negative
	h = h*31 + math.Float64bits(s.Heat)
	h = h*31 + uint64(s.PDShots) //#nosec G115 -- shot count is never negative
	return h
}

// Hash returns a simple hash of the snapshot for comparison.
func (s Snapshot) Hash() uint64 {
	var h uint64 = 17
	h = h*31 + s.Tick
	h = s.Player.hash(h)
	h = s.CPU.hash(h)
	h = h*31 + uint64(s.Projectiles) //#nosec G115 -- count
	if s.GameOver {
		h = h*31 + 1
	}
	return h
}
