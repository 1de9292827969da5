package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/outpost-arcade/internal/core"
)

// palette maps core colors to ANSI terminal colors.
var palette = map[core.Color]string{
	core.ColorRed:        "1",
	core.ColorGreen:      "2",
	core.ColorYellow:     "3",
	core.ColorBlue:       "4",
	core.ColorMagenta:    "5",
	core.ColorCyan:       "6",
	core.ColorWhite:      "7",
	core.ColorBrightRed:  "9",
	core.ColorBrightCyan: "14",
	core.ColorOrange:     "208",
	core.ColorGray:       "245",
}

var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c, ansi := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(ansi))
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of same-colored cells share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			c := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == c; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			sb.WriteString(styleFor(c).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScene rasterizes a scene onto screen and styles it.
func RenderScene(sc core.Scene, screen *core.Screen) string {
	sc.Rasterize(screen)
	return RenderScreen(screen)
}
