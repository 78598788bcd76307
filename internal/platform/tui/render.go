package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// colorStyles maps the scene palette to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorRunner:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorCactus:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBird:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGround:    lipgloss.NewStyle().Foreground(lipgloss.Color("137")),
	core.ColorGroundDot: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorCloud:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorHighScore: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorJumpBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorGameOver:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single styled span.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var span strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		color := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				sb.WriteString(styleFor(color).Render(span.String()))
				span.Reset()
				color = cell.Color
			}
			span.WriteRune(cell.Rune)
		}
		sb.WriteString(styleFor(color).Render(span.String()))
		span.Reset()
	}
	return sb.String()
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}
