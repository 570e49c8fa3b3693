package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kokaton/internal/core"
)

// palette holds the terminal color for each core.Color the game paints with.
// Hazards cycle through the seven basic ANSI colors. The bird is bright
// yellow, turning bright red once hit. Beams are cyan, explosions orange,
// the score bright blue and the background dots gray.
var palette = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          fg("1"),
	core.ColorGreen:        fg("2"),
	core.ColorYellow:       fg("3"),
	core.ColorBlue:         fg("4"),
	core.ColorMagenta:      fg("5"),
	core.ColorCyan:         fg("6"),
	core.ColorWhite:        fg("7"),
	core.ColorBrightRed:    fg("9"),
	core.ColorBrightYellow: fg("11"),
	core.ColorBrightBlue:   fg("12"),
	core.ColorOrange:       fg("208"),
	core.ColorGray:         fg("245"),
}

// footerStyle renders the key help line under the play field.
var footerStyle = fg("241")

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// styleFor returns the palette entry for c, or the plain style.
func styleFor(c core.Color) lipgloss.Style {
	if st, ok := palette[c]; ok {
		return st
	}
	return palette[core.ColorDefault]
}

// RenderScreen turns the play field into styled terminal rows.
// Each row is split into runs of one color, so a hazard disc or the score
// label costs a single escape sequence rather than one per cell.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		run = run[:0]
		color := s.GetCell(0, y).Color
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				sb.WriteString(styleFor(color).Render(string(run)))
				run, color = run[:0], cell.Color
			}
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			sb.WriteString(styleFor(color).Render(string(run)))
		}
	}
	return sb.String()
}
