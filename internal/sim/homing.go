package sim

import (
	"math"

	"github.com/vovakirdan/outpost-arcade/internal/core"
)

// Guidance steers a projectile toward the nearest live member of a kind.
type Guidance struct {
	Target      Kind
	MaxTurn     float64 // radians per step
	Accel       float64 // units/s² along the heading
	BaseSpeed   float64
	MaxSpeedMul float64 // speed cap as a multiple of BaseSpeed

	locked Handle
}

// Locked returns the handle of the current target, or 0.
func (g *Guidance) Locked() Handle { return g.locked }

// Steer turns b toward its target by at most MaxTurn and accelerates it.
// Without a live target b keeps flying straight.
func (g *Guidance) Steer(w *World, b *Body, dt float64) {
	target, ok := w.Nearest(g.Target, b.Pos)
	if !ok {
		g.locked = 0
		return
	}
	g.locked = target.Body().Handle

	speed := b.Vel.Len()
	heading := b.Vel.Angle()
	if speed == 0 {
		heading = target.Body().Pos.Sub(b.Pos).Angle()
	}
	desired := target.Body().Pos.Sub(b.Pos).Angle()
	turn := core.NormalizeAngle(desired - heading)
	if math.Abs(turn) > g.MaxTurn {
		turn = math.Copysign(g.MaxTurn, turn)
	}
	heading += turn

	speed = math.Min(speed+g.Accel*dt, g.BaseSpeed*g.MaxSpeedMul)
	b.Vel = core.FromAngle(heading, speed)
}
