package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/trip/internal/countdown"
	"github.com/idilsaglam/trip/internal/itinerary"
	"github.com/idilsaglam/trip/internal/links"
	"github.com/idilsaglam/trip/internal/model"
	"github.com/idilsaglam/trip/internal/ui"
)

func (m Model) View() string {
	t := ui.Current()
	sections := []string{
		m.headerView(t),
		m.addressView(t),
		m.weatherView(t),
		m.daysView(t),
	}
	if m.form != nil {
		sections = append(sections, m.formView(t))
	}
	if m.status != "" {
		sections = append(sections, t.Error.Render(m.status))
	}
	if m.form != nil {
		sections = append(sections, m.help.View(m.form.keys))
	} else {
		sections = append(sections, m.help.View(m.keys))
	}
	return ui.PanelString(strings.Join(sections, "\n\n"))
}

func (m Model) headerView(t ui.Theme) string {
	lines := []string{
		t.Title.Render("🇧🇪 " + model.TripTitle),
		t.Muted.Render(model.TripDates),
	}
	if c, ok := countdown.Remaining(m.now(), model.TripStart); ok {
		var cells []string
		for _, u := range c.Units() {
			cells = append(cells, lipgloss.JoinVertical(lipgloss.Center,
				t.Accent.Bold(true).Render(u.Pad()),
				t.Faint.Render(u.Label),
			))
			cells = append(cells, "   ")
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells[:len(cells)-1]...))
	}
	return strings.Join(lines, "\n")
}

func (m Model) addressView(t ui.Theme) string {
	hint := t.Faint.Render("[c] kopier")
	if m.toast != "" {
		hint = t.Success.Render(m.toast)
	}
	return fmt.Sprintf("%s %s\n%s  %s",
		"🏠", t.Muted.Render("Overnatting"),
		m.fit(model.HomeAddress, 14), hint)
}

func (m Model) weatherView(t ui.Theme) string {
	col := lipgloss.NewStyle().Width(13).Align(lipgloss.Center)
	var cols []string
	for _, w := range model.WeatherTable() {
		d, _ := model.LookupDay(w.Day)
		cols = append(cols, col.Render(strings.Join([]string{
			t.Muted.Render(d.Short()),
			lipgloss.NewStyle().Foreground(t.Sun).Render(ui.WeatherIcon(w.Kind)),
			fmt.Sprintf("%s %s", t.Title.Render(fmt.Sprintf("%d°", w.High)), t.Muted.Render(fmt.Sprintf("%d°", w.Low))),
			lipgloss.NewStyle().Foreground(t.Rain).Render(fmt.Sprintf("💧 %d%%", w.Rain)),
		}, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...) + "\n" + t.Faint.Render(model.WeatherCaption)
}

func (m Model) daysView(t ui.Theme) string {
	var lines []string
	idx := 0
	for _, g := range m.store.Groups() {
		lines = append(lines, m.dayHeader(t, g, idx == m.cursor))
		idx++
		if !m.expanded[g.Day.ID] {
			continue
		}
		if len(g.Activities) == 0 {
			lines = append(lines, "    "+t.Faint.Render("Ingen planer ennå"))
		}
		for _, a := range g.Activities {
			lines = append(lines, m.activityLines(t, a, idx == m.cursor)...)
			idx++
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) dayHeader(t ui.Theme, g itinerary.DayGroup, selected bool) string {
	arrow := "▸"
	if m.expanded[g.Day.ID] {
		arrow = "▾"
	}
	label := t.Title.Render(g.Day.Label)
	if selected {
		label = t.Selected.Render(g.Day.Label)
	}
	parts := []string{cursorMark(t, selected) + arrow, g.Day.Emoji, label, t.Muted.Render(g.Day.Subtitle)}
	if g.HasWeather {
		parts = append(parts, ui.WeatherBadge(g.Weather))
	}
	if n := len(g.Activities); n > 0 {
		parts = append(parts, t.Count.Render(fmt.Sprint(n)))
	}
	return strings.Join(parts, " ")
}

func (m Model) activityLines(t ui.Theme, a model.Activity, selected bool) []string {
	when := t.Badge.Render("  —  ")
	if a.Time != "" {
		when = t.TimeBadge.Render(a.Time)
	}
	name := a.Name
	if selected {
		name = t.Selected.Render(name)
	}
	if selected && m.confirm != nil {
		name += "  " + t.Error.Render("Slette? [y] ja  [n] nei")
	}
	lines := []string{"  " + cursorMark(t, selected) + " " + when + " " + name}

	const indent = "          "
	if a.Description != "" {
		lines = append(lines, indent+t.Muted.Render(m.fit(a.Description, len(indent))))
	}
	if a.Location != "" {
		lines = append(lines, indent+t.Accent.Render("📍 "+m.fit(a.Location, len(indent)+3)))
		if selected {
			modes := []string{t.Faint.Render("[o] kart")}
			for _, mode := range links.Modes {
				modes = append(modes, t.Faint.Render(fmt.Sprintf("[%s] %s", modeKey(mode), mode.Label())))
			}
			lines = append(lines, indent+strings.Join(modes, "  "))
		}
	}
	return lines
}

func (m Model) formView(t ui.Theme) string {
	f := m.form
	var days []string
	for _, d := range model.Days() {
		label := " " + d.Short() + " "
		if d.ID == f.day {
			label = t.Selected.Render(label)
		} else {
			label = t.Muted.Render(label)
		}
		days = append(days, label)
	}

	fieldLabel := func(i int, text string) string {
		if f.focus == i {
			return t.Accent.Render("› " + text)
		}
		return t.Muted.Render("  " + text)
	}

	submit := t.Faint.Render("[enter] " + f.submitLabel())
	if f.valid() {
		submit = t.Accent.Bold(true).Render("[enter] " + f.submitLabel())
	}

	rows := []string{
		t.Title.Render(f.title()),
		fieldLabel(fieldDay, "Dag") + "  " + strings.Join(days, " "),
		fieldLabel(fieldTime, "Tid"),
		"    " + f.inputs[fieldTime].View(),
		fieldLabel(fieldName, "Hva"),
		"    " + f.inputs[fieldName].View(),
		fieldLabel(fieldDesc, "Beskrivelse"),
		"    " + f.inputs[fieldDesc].View(),
		fieldLabel(fieldLocation, "Sted"),
		"    " + f.inputs[fieldLocation].View(),
		submit,
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Render(strings.Join(rows, "\n"))
}

// fit truncates s to the space left after used cells, inside the panel.
func (m Model) fit(s string, used int) string {
	return ui.Truncate(s, m.width-used-4)
}

func cursorMark(t ui.Theme, selected bool) string {
	if selected {
		return t.Accent.Render(">")
	}
	return " "
}

func modeKey(mode links.Mode) string {
	switch mode {
	case links.Walking:
		return "w"
	case links.Transit:
		return "t"
	}
	return "x"
}
