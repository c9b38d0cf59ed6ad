package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/idilsaglam/trip/internal/model"
)

// ProgressBar renders a Unicode progress bar with a done/total counter.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %d/%d", bar, done, total)
}

// PanelString frames inner in a rounded box using the current theme.
func PanelString(inner string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(current.Border).
		Padding(0, 1).
		Render(inner)
}

// Panel prints lines framed to w.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, PanelString(strings.Join(lines, "\n")))
}

// Truncate cuts s to max visible cells, keeping escape sequences intact.
func Truncate(s string, max int) string {
	if max <= 0 || ansi.StringWidth(s) <= max {
		return s
	}
	return ansi.Truncate(s, max, "…")
}

// Width is the visible width of s.
func Width(s string) int { return ansi.StringWidth(s) }

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TermSize returns the terminal size, or 80x24 when unknown.
func TermSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// WeatherIcon is the glyph for a weather kind.
func WeatherIcon(k model.WeatherKind) string {
	switch k {
	case model.Sunny:
		return "☀"
	case model.Partly:
		return "⛅"
	case model.Cloudy:
		return "☁"
	case model.Rainy:
		return "🌧"
	}
	return "·"
}

// WeatherBadge renders "⛅ 15° 8°".
func WeatherBadge(w model.Weather) string {
	t := current
	return fmt.Sprintf("%s %s %s",
		lipgloss.NewStyle().Foreground(t.Sun).Render(WeatherIcon(w.Kind)),
		t.Title.Render(fmt.Sprintf("%d°", w.High)),
		t.Muted.Render(fmt.Sprintf("%d°", w.Low)),
	)
}
