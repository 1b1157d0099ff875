package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// palette holds the ANSI 256 code for every core.Color. An empty code keeps
// the terminal default.
var palette = [core.NumColors]string{
	core.ColorCyan:         "6",
	core.ColorBlue:         "4",
	core.ColorOrange:       "208",
	core.ColorYellow:       "3",
	core.ColorGreen:        "2",
	core.ColorMagenta:      "5",
	core.ColorRed:          "1",
	core.ColorWhite:        "7",
	core.ColorGray:         "245",
	core.ColorBrightWhite:  "15",
	core.ColorBrightCyan:   "14",
	core.ColorBrightYellow: "11",
	core.ColorBrightRed:    "9",
}

var cellStyles = func() [core.NumColors]lipgloss.Style {
	var styles [core.NumColors]lipgloss.Style
	for i, code := range palette {
		styles[i] = lipgloss.NewStyle()
		if code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if !c.Valid() {
		return cellStyles[core.ColorDefault]
	}
	return cellStyles[c]
}

// RenderScreen converts a Screen buffer to a styled string, one line per row.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

// renderRow styles runs of equally colored cells with a single escape.
func renderRow(s *core.Screen, y int) string {
	var sb strings.Builder
	var run []rune
	color := core.ColorDefault

	flush := func() {
		if len(run) > 0 {
			sb.WriteString(styleFor(color).Render(string(run)))
			run = run[:0]
		}
	}
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != color {
			flush()
			color = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()
	return sb.String()
}
