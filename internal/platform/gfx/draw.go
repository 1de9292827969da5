package gfx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/outpost-arcade/internal/core"
)

var palette = map[core.Color]color.Color{
	core.ColorDefault:    colornames.Lightgray,
	core.ColorRed:        colornames.Crimson,
	core.ColorGreen:      colornames.Limegreen,
	core.ColorYellow:     colornames.Gold,
	core.ColorBlue:       colornames.Dodgerblue,
	core.ColorMagenta:    colornames.Magenta,
	core.ColorCyan:       colornames.Darkturquoise,
	core.ColorWhite:      colornames.White,
	core.ColorOrange:     colornames.Orange,
	core.ColorGray:       colornames.Gray,
	core.ColorBrightRed:  colornames.Tomato,
	core.ColorBrightCyan: colornames.Aquamarine,
}

var (
	background  = color.RGBA{R: 10, G: 12, B: 22, A: 255}
	barTrack    = colornames.Darkslategray
	overlayFill = color.NRGBA{R: 0, G: 0, B: 0, A: 200}
	stickRing   = color.NRGBA{R: 255, G: 255, B: 255, A: 80}
	stickKnob   = color.NRGBA{R: 255, G: 255, B: 255, A: 140}
)

// Debug font metrics and HUD layout in pixels.
const (
	charW     = 6
	lineH     = 16
	hudMargin = 10
	barW      = 120
	barH      = 8
	padding   = 16
	knobR     = 14
)

func colorFor(c core.Color) color.Color {
	if clr, ok := palette[c]; ok {
		return clr
	}
	return palette[core.ColorDefault]
}

// shipPoints returns the nose and the two tail corners of a ship triangle.
func shipPoints(pos core.Vec2, angle, size float64) [3]core.Vec2 {
	r := size / 2
	return [3]core.Vec2{
		pos.Add(core.FromAngle(angle, r*1.2)),
		pos.Add(core.FromAngle(angle+2.5, r)),
		pos.Add(core.FromAngle(angle-2.5, r)),
	}
}

// drawScene draws a full frame. The logical screen is the play field, so
// scene units map one-to-one to pixels.
func drawScene(dst *ebiten.Image, sc core.Scene) {
	dst.Fill(background)
	for _, s := range sc.Sprites {
		drawSprite(dst, s)
	}
	for _, v := range sc.Sticks {
		drawStick(dst, v)
	}

	y := drawBars(dst, sc.Bars)
	ebitenutil.DebugPrintAt(dst, sc.HUD, hudMargin, y)

	if sc.Overlay != nil {
		drawOverlay(dst, *sc.Overlay, sc.Width, sc.Height)
	}
}

func drawSprite(dst *ebiten.Image, s core.Sprite) {
	clr := colorFor(s.Color)
	x, y := float32(s.Pos.X), float32(s.Pos.Y)

	switch s.Shape {
	case core.ShapeCircle:
		vector.DrawFilledCircle(dst, x, y, float32(s.W/2), clr, true)
	case core.ShapeShip:
		pts := shipPoints(s.Pos, s.Angle, s.W)
		for i, a := range pts {
			b := pts[(i+1)%len(pts)]
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, clr, true)
		}
	default:
		vector.DrawFilledRect(dst, x-float32(s.W/2), y-float32(s.H/2), float32(s.W), float32(s.H), clr, true)
	}
}

func drawStick(dst *ebiten.Image, v core.StickView) {
	ox, oy := float32(v.Origin.X), float32(v.Origin.Y)
	vector.StrokeCircle(dst, ox, oy, float32(v.Radius), 2, stickRing, true)

	knob := v.Origin.Add(v.Value.Scale(v.Radius))
	vector.DrawFilledCircle(dst, float32(knob.X), float32(knob.Y), knobR, stickKnob, true)
}

// drawBars draws gauges top-left and returns the y of the next free line.
func drawBars(dst *ebiten.Image, bars []core.Bar) int {
	for i, b := range bars {
		y := hudMargin + i*lineH
		top := float32(y + (lineH-barH)/2)
		vector.DrawFilledRect(dst, hudMargin, top, barW, barH, barTrack, false)
		vector.DrawFilledRect(dst, hudMargin, top, float32(barW*b.Fraction()), barH, colorFor(b.Color), false)
		ebitenutil.DebugPrintAt(dst, b.Label, hudMargin+barW+charW, y)
	}
	return hudMargin + len(bars)*lineH
}

func drawOverlay(dst *ebiten.Image, o core.Overlay, w, h float64) {
	lines := append([]string{o.Title, ""}, o.Lines...)
	longest := 0
	for _, l := range lines {
		longest = max(longest, len(l))
	}

	bw := float32(longest*charW + 2*padding)
	bh := float32(len(lines)*lineH + 2*padding)
	bx := (float32(w) - bw) / 2
	by := (float32(h) - bh) / 2
	vector.DrawFilledRect(dst, bx, by, bw, bh, overlayFill, false)
	vector.StrokeRect(dst, bx, by, bw, bh, 2, colornames.White, false)

	cx := int(w / 2)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(dst, l, cx-len(l)*charW/2, int(by)+padding+i*lineH)
	}
}
