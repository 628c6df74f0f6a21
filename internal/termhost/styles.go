package termhost

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/gui"
)

// Colors of the terminal chrome around the canvas
var (
	Primary     = lipgloss.Color("212")
	Muted       = lipgloss.Color("241")
	BgSecondary = lipgloss.Color("235")
)

// Status line styles
var (
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(BgSecondary)

	StatusViewer = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	StatusHelp = lipgloss.NewStyle().
			Foreground(Muted).
			Background(BgSecondary).
			Padding(0, 1)

	EditPrompt = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// colorOf converts a packed palette colour. Fully transparent colours
// map to no colour.
func colorOf(c gui.Color) (lipgloss.TerminalColor, bool) {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return lipgloss.NoColor{}, false
	}
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r, g, b)), true
}
