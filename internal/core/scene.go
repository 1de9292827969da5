package core

import (
	"math"
	"strings"
)

// Shape selects how the window platform draws a sprite.
type Shape uint8

const (
	ShapeRect Shape = iota
	ShapeCircle
	ShapeShip // triangle pointing along Angle
)

// Sprite is one drawable entity in play-field units.
type Sprite struct {
	Pos   Vec2
	W, H  float64
	Angle float64
	Shape Shape
	Color Color
	Glyph rune // terminal representation
}

// Bar is a labelled gauge such as health or heat.
type Bar struct {
	Label string
	Value float64
	Max   float64
	Color Color
}

// Fraction returns Value/Max clamped to [0, 1].
func (b Bar) Fraction() float64 {
	if b.Max <= 0 {
		return 0
	}
	return ClampF(b.Value/b.Max, 0, 1)
}

// Overlay is a centered message box drawn over the field.
type Overlay struct {
	Title string
	Lines []string
}

// StickView is the visible state of an active virtual stick.
type StickView struct {
	Origin Vec2
	Value  Vec2
	Radius float64
}

// Scene is a complete frame description produced by a game.
// Platforms draw it without knowing anything about the game.
type Scene struct {
	Width, Height float64
	Sprites       []Sprite
	Bars          []Bar
	HUD           string
	Overlay       *Overlay
	Sticks        []StickView
}

const barCells = 10

// BarText renders a bar as "HP [######----]".
func BarText(b Bar) string {
	filled := int(math.Round(b.Fraction() * barCells))
	return b.Label + " [" + strings.Repeat("#", filled) + strings.Repeat("-", barCells-filled) + "]"
}

// Rasterize draws the scene onto a character screen: gauges and HUD text on
// the first row, the play field scaled into the remaining rows and the overlay
// boxed in the middle.
func (sc Scene) Rasterize(dst *Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() < 2 || sc.Width <= 0 || sc.Height <= 0 {
		return
	}

	x := 0
	for _, b := range sc.Bars {
		text := BarText(b)
		dst.DrawTextColor(x, 0, text, b.Color)
		x += len(text) + 2
	}
	dst.DrawTextColor(x, 0, sc.HUD, ColorWhite)

	rows := dst.Height() - 1
	cols := dst.Width()
	for _, sp := range sc.Sprites {
		cx, cy, ok := sc.cell(sp.Pos, cols, rows)
		if !ok {
			continue
		}
		glyph := sp.Glyph
		if glyph == 0 {
			glyph = '*'
		}
		dst.SetColored(cx, cy+1, glyph, sp.Color)
	}

	for _, st := range sc.Sticks {
		if cx, cy, ok := sc.cell(st.Origin, cols, rows); ok {
			dst.SetColored(cx, cy+1, 'o', ColorGray)
		}
		if cx, cy, ok := sc.cell(st.Origin.Add(st.Value.Scale(st.Radius)), cols, rows); ok {
			dst.SetColored(cx, cy+1, '@', ColorMagenta)
		}
	}

	if sc.Overlay != nil {
		sc.Overlay.draw(dst)
	}
}

// cell maps a field position to a screen cell in a cols×rows area.
func (sc Scene) cell(p Vec2, cols, rows int) (int, int, bool) {
	if p.X < 0 || p.Y < 0 || p.X > sc.Width || p.Y > sc.Height {
		return 0, 0, false
	}
	cx := Clamp(int(p.X/sc.Width*float64(cols)), 0, cols-1)
	cy := Clamp(int(p.Y/sc.Height*float64(rows)), 0, rows-1)
	return cx, cy, true
}

// FieldPoint maps a cell of a width×height Rasterize target back to the
// field position at its center. Cells on the HUD row report false.
func (sc Scene) FieldPoint(x, y, width, height int) (Vec2, bool) {
	rows := height - 1
	if y < 1 || y > rows || x < 0 || x >= width || width <= 0 {
		return Vec2{}, false
	}
	return Vec2{
		X: (float64(x) + 0.5) / float64(width) * sc.Width,
		Y: (float64(y-1) + 0.5) / float64(rows) * sc.Height,
	}, true
}

func (o *Overlay) draw(dst *Screen) {
	w := len(o.Title)
	for _, l := range o.Lines {
		w = max(w, len(l))
	}
	w += 4
	h := len(o.Lines) + 4
	r := NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(r, ' ', ColorDefault)
	dst.DrawBox(r, ColorWhite)
	dst.DrawTextCentered(r.Y+1, o.Title, ColorBrightRed)
	for i, l := range o.Lines {
		dst.DrawTextCentered(r.Y+3+i, l, ColorWhite)
	}
}

// HeadingGlyph picks an arrow for the nearest of eight directions.
func HeadingGlyph(dir Vec2) rune {
	const arrows = "→↘↓↙←↖↑↗"
	if dir.IsZero() {
		return '^'
	}
	octant := int(math.Round(dir.Angle()/(math.Pi/4))+8) % 8
	return []rune(arrows)[octant]
}
