// pkg/strength/meter.go

package strength

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Meter colors per level, matching the classic terminal palette:
// red through yellow into green.
var (
	ColorVeryWeak   = lipgloss.Color("9")  // Bright red
	ColorWeak       = lipgloss.Color("11") // Bright yellow
	ColorMedium     = lipgloss.Color("3")  // Yellow
	ColorStrong     = lipgloss.Color("10") // Bright green
	ColorVeryStrong = lipgloss.Color("10") // Bright green
)

var levelStyles = map[Level]lipgloss.Style{
	VeryWeak:   lipgloss.NewStyle().Foreground(ColorVeryWeak),
	Weak:       lipgloss.NewStyle().Foreground(ColorWeak),
	Medium:     lipgloss.NewStyle().Foreground(ColorMedium),
	Strong:     lipgloss.NewStyle().Foreground(ColorStrong),
	VeryStrong: lipgloss.NewStyle().Foreground(ColorVeryStrong),
}

// meterWidth is the number of cells between the brackets. A level
// always fills level+1 cells, so even VeryWeak shows one.
const meterWidth = 5

func clamp(l Level) Level {
	if l < VeryWeak {
		return VeryWeak
	}
	if l > VeryStrong {
		return VeryStrong
	}
	return l
}

// Filled returns how many meter cells this level lights up.
func (l Level) Filled() int {
	return int(clamp(l)) + 1
}

// Meter renders the plain bracket meter, e.g. "[███  ]".
func (l Level) Meter() string {
	filled := l.Filled()
	return "[" + strings.Repeat("█", filled) + strings.Repeat(" ", meterWidth-filled) + "]"
}

// Render returns the colored meter with its label, e.g. "[█████] Very
// Strong" in green.
func Render(l Level) string {
	l = clamp(l)
	return levelStyles[l].Render(l.Meter() + " " + l.String())
}
