package duel

import (
	"fmt"

	"github.com/vovakirdan/outpost-arcade/internal/core"
	"github.com/vovakirdan/outpost-arcade/internal/multiplayer"
	"github.com/vovakirdan/outpost-arcade/internal/sim"
)

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
	for _, s := range []*Ship{g.player, g.cpu} {
		if !g.world.Alive(s.body.Handle) {
			continue
		}
		c := core.ColorBrightCyan
		if s.side == multiplayer.SideCPU {
			c = core.ColorBrightRed
		}
		sc.Sprites = append(sc.Sprites, core.Sprite{
			Pos: s.body.Pos, W: s.body.W, H: s.body.H,
			Angle: s.angle, Shape: core.ShapeShip,
			Color: c, Glyph: core.HeadingGlyph(s.Heading()),
		})
	}
	projectiles := []struct {
		kind  sim.Kind
		glyph rune
		color core.Color
	}{
		{sim.KindBullet, '*', core.ColorWhite},
		{sim.KindMissile, '!', core.ColorYellow},
		{sim.KindPointDefense, '+', core.ColorCyan},
	}
	for _, pr := range projectiles {
		g.world.Each(pr.kind, func(e sim.Entity) {
			p := e.(*Projectile)
			sc.Sprites = append(sc.Sprites, core.Sprite{
				Pos: p.body.Pos, W: p.body.W, H: p.body.H,
				Angle: p.body.Vel.Angle(), Shape: core.ShapeCircle,
				Color: pr.color, Glyph: pr.glyph,
			})
		})
	}

	sc.Bars = []core.Bar{
		{Label: "HP", Value: float64(g.player.hp), Max: float64(g.player.maxHP), Color: core.ColorGreen},
		{Label: "HEAT", Value: g.player.heat.Value, Max: g.player.heat.Max, Color: core.ColorOrange},
		{Label: "CPU", Value: float64(g.cpu.hp), Max: float64(g.cpu.maxHP), Color: core.ColorRed},
	}
	sc.HUD = fmt.Sprintf("%s   PD %d/%d   Score %d",
		g.player.weapon, g.player.pdShots, g.cfg.PointDefense.Shots, g.player.score)

	switch {
	case g.gameOver:
		title := "DRAW"
		switch g.outcome.Winner {
		case multiplayer.SidePlayer:
			title = "VICTORY"
		case multiplayer.SideCPU:
			title = "DEFEAT"
		}
		sc.Overlay = &core.Overlay{
			Title: title,
			Lines: []string{
				fmt.Sprintf("Score %d   CPU %d", g.outcome.PlayerScore, g.outcome.CPUScore),
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
