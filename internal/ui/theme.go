package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the styles every renderer pulls from.
type Theme struct {
	Name string

	Title, Muted, Faint, Accent, Success, Error, Pending lipgloss.Style
	Badge, TimeBadge, Count                              lipgloss.Style
	Selected, Help                                       lipgloss.Style

	Border lipgloss.Color
	Rain   lipgloss.Color
	Sun    lipgloss.Color
}

var (
	light = Theme{
		Name:      "light",
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Faint:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Badge:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("255")).Padding(0, 1),
		TimeBadge: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27")).Background(lipgloss.Color("195")).Padding(0, 1),
		Count:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("33")).Padding(0, 1),
		Selected:  lipgloss.NewStyle().Bold(true).Reverse(true),
		Help:      lipgloss.NewStyle().Faint(true),
		Border:    lipgloss.Color("250"),
		Rain:      lipgloss.Color("33"),
		Sun:       lipgloss.Color("214"),
	}

	dark = Theme{
		Name:      "dark",
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Faint:     lipgloss.NewStyle().Foreground(lipgloss.Color("239")),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		Badge:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1),
		TimeBadge: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")).Background(lipgloss.Color("17")).Padding(0, 1),
		Count:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("33")).Padding(0, 1),
		Selected:  lipgloss.NewStyle().Bold(true).Reverse(true),
		Help:      lipgloss.NewStyle().Faint(true),
		Border:    lipgloss.Color("238"),
		Rain:      lipgloss.Color("75"),
		Sun:       lipgloss.Color("221"),
	}
)

var current = light

// SetDark switches between the light and dark palettes.
func SetDark(on bool) {
	if on {
		current = dark
		return
	}
	current = light
}

// Current is the active theme.
func Current() Theme { return current }

// ThemeFor returns the palette without changing the active one.
func ThemeFor(isDark bool) Theme {
	if isDark {
		return dark
	}
	return light
}
