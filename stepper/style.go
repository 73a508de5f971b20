package stepper

import "github.com/charmbracelet/lipgloss"

// Style controls the stepper's rendering.
type Style struct {
	Text        lipgloss.Style
	Invalid     lipgloss.Style // edit text that is not a number
	OutOfBounds lipgloss.Style // edit text outside [min, max]
	Beep        lipgloss.Style // a refused confirm
	Cursor      lipgloss.Style
	Selection   lipgloss.Style

	Control       lipgloss.Style
	ControlHover  lipgloss.Style
	ControlActive lipgloss.Style
	ControlSpin   lipgloss.Style
}

func DefaultStyle() Style {
	control := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Text:          lipgloss.NewStyle(),
		Invalid:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		OutOfBounds:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Beep:          lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Control:       control,
		ControlHover:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ControlActive: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
		ControlSpin:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	}
}
