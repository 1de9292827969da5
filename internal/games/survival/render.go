package survival

import (
	"fmt"

	"github.com/vovakirdan/outpost-arcade/internal/core"
	"github.com/vovakirdan/outpost-arcade/internal/sim"
)

var pickupColors = [...]core.Color{
	PickupRate:   core.ColorCyan,
	PickupDamage: core.ColorRed,
	PickupSpeed:  core.ColorGreen,
}

var pickupGlyphs = [...]rune{
	PickupRate:   'R',
	PickupDamage: 'D',
	PickupSpeed:  'S',
}

// Scene describes the current frame.
func (g *Game) Scene() core.Scene {
	sc := core.Scene{
		Width:  core.FieldWidth,
		Height: core.FieldHeight,
	}

	g.world.Each(sim.KindParticle, func(e sim.Entity) {
		p := e.(*Particle)
		sc.Sprites = append(sc.Sprites, core.Sprite{
			Pos: p.body.Pos, W: p.body.W, H: p.body.H,
			Shape: core.ShapeRect, Color: p.color, Glyph: '.',
		})
	})
	g.world.Each(sim.KindEnemy, func(e sim.Entity) {
		en := e.(*Enemy)
		sc.Sprites = append(sc.Sprites, core.Sprite{
			Pos: en.body.Pos, W: en.body.W, H: en.body.H,
			Shape: core.ShapeRect, Color: core.ColorMagenta, Glyph: 'X',
		})
	})
	if p := g.player; g.world.Alive(p.body.Handle) {
		sc.Sprites = append(sc.Sprites, core.Sprite{
			Pos: p.body.Pos, W: p.body.W, H: p.body.H,
			Angle: p.facing.Angle(), Shape: core.ShapeShip,
			Color: core.ColorBrightCyan, Glyph: core.HeadingGlyph(p.facing),
		})
	}
	g.world.Each(sim.KindBullet, func(e sim.Entity) {
		b := e.(*Bullet)
		sc.Sprites = append(sc.Sprites, core.Sprite{
			Pos: b.body.Pos, W: b.body.W, H: b.body.H,
			Shape: core.ShapeCircle, Color: core.ColorWhite, Glyph: '*',
		})
	})
	g.world.Each(sim.KindPickup, func(e sim.Entity) {
		pk := e.(*Pickup)
		sc.Sprites = append(sc.Sprites, core.Sprite{
			Pos: pk.body.Pos, W: pk.body.W, H: pk.body.H,
			Shape: core.ShapeCircle, Color: pickupColors[pk.kind], Glyph: pickupGlyphs[pk.kind],
		})
	})

	sc.Bars = []core.Bar{{
		Label: "HP",
		Value: float64(g.player.hp),
		Max:   float64(g.player.maxHP),
		Color: core.ColorGreen,
	}}
	sc.HUD = fmt.Sprintf("Wave %d   Score %d   High %d", g.wave, g.player.score, max(g.hi, g.player.score))

	switch {
	case g.gameOver:
		sc.Overlay = &core.Overlay{
			Title: "GAME OVER",
			Lines: []string{
				fmt.Sprintf("Score %d   Wave %d", g.player.score, g.wave),
				fmt.Sprintf("High %d", g.hi),
				"",
				"Press [R] to restart or [Esc] to quit",
			},
		}
	case g.paused:
		sc.Overlay = &core.Overlay{
			Title: "PAUSED",
			Lines: []string{"Press [P] to resume"},
		}
	}
	return sc
}
