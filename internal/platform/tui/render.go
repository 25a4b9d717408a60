package tui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-creeps/internal/core"
)

// palette holds the terminal color for each core.Color. Enemy profiles name
// their colors in config, so every name core.ParseColor accepts needs a slot.
var palette = [...]lipgloss.TerminalColor{
	core.ColorDefault:       lipgloss.NoColor{},
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
}

// ScreenRenderer turns a core.Screen into styled terminal output. Styles are
// built once per color against a single lipgloss renderer, so the color
// profile is detected for the output the program actually writes to.
type ScreenRenderer struct {
	styles [len(palette)]lipgloss.Style
	plain  lipgloss.Style
}

// NewScreenRenderer creates a renderer for the given output.
func NewScreenRenderer(out io.Writer) *ScreenRenderer {
	r := lipgloss.NewRenderer(out)
	sr := &ScreenRenderer{plain: r.NewStyle()}
	for c, tc := range palette {
		sr.styles[c] = r.NewStyle().Foreground(tc)
	}
	return sr
}

func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	if int(c) < len(sr.styles) {
		return sr.styles[c]
	}
	return sr.plain
}

// Render draws the screen row by row. Adjacent cells of one color share a
// single styled span, which keeps escape sequences down for the mostly-empty
// arena.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var span strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			span.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				span.WriteRune(cell.Rune)
			}
			if color == core.ColorDefault {
				sb.WriteString(span.String())
				continue
			}
			sb.WriteString(sr.style(color).Render(span.String()))
		}
	}
	return sb.String()
}

var stdoutRenderer = NewScreenRenderer(os.Stdout)

// RenderScreen renders a screen for standard output.
func RenderScreen(s *core.Screen) string {
	return stdoutRenderer.Render(s)
}
