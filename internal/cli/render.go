package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/idilsaglam/trip/internal/countdown"
	"github.com/idilsaglam/trip/internal/itinerary"
	"github.com/idilsaglam/trip/internal/model"
	"github.com/idilsaglam/trip/internal/ui"
)

const maxLine = 72

func headerLines(now time.Time) []string {
	t := ui.Current()
	lines := []string{
		fmt.Sprintf("%s  %s", t.Title.Render("🇧🇪 "+model.TripTitle), t.Muted.Render(model.TripDates)),
		t.Muted.Render("🏠 " + model.HomeAddress),
	}
	if c, ok := countdown.Remaining(now, model.TripStart); ok {
		lines = append(lines, t.Accent.Render(countdownLine(c)))
	}
	return lines
}

func countdownLine(c countdown.Countdown) string {
	var parts []string
	for _, u := range c.Units() {
		parts = append(parts, u.Pad()+" "+u.Label)
	}
	return strings.Join(parts, "  ")
}

func dayLines(groups []itinerary.DayGroup) []string {
	t := ui.Current()
	var lines []string
	for i, g := range groups {
		if i > 0 {
			lines = append(lines, "")
		}
		head := fmt.Sprintf("%s %s  %s", g.Day.Emoji, t.Title.Render(g.Day.Label), t.Muted.Render(g.Day.Subtitle))
		if g.HasWeather {
			head += "  " + ui.WeatherBadge(g.Weather)
		}
		if n := len(g.Activities); n > 0 {
			head += "  " + t.Count.Render(fmt.Sprint(n))
		}
		lines = append(lines, head)

		if len(g.Activities) == 0 {
			lines = append(lines, "   "+t.Faint.Render("Ingen planer ennå"))
			continue
		}
		for _, a := range g.Activities {
			lines = append(lines, activityLines(a)...)
		}
	}
	return lines
}

func activityLines(a model.Activity) []string {
	t := ui.Current()
	when := t.Badge.Render("  —  ")
	if a.Time != "" {
		when = t.TimeBadge.Render(a.Time)
	}
	out := []string{fmt.Sprintf("   %s %s  %s", when, ui.Truncate(a.Name, maxLine), t.Faint.Render(a.ID))}
	if a.Description != "" {
		out = append(out, "           "+t.Muted.Render(ui.Truncate(a.Description, maxLine)))
	}
	if a.Location != "" {
		out = append(out, "           "+t.Accent.Render("📍 "+ui.Truncate(a.Location, maxLine)))
	}
	return out
}

func weatherLines() []string {
	t := ui.Current()
	lines := []string{t.Title.Render("Vær i Antwerpen"), ""}
	for _, w := range model.WeatherTable() {
		d, _ := model.LookupDay(w.Day)
		lines = append(lines, fmt.Sprintf("%-11s %s  %-13s regn %3d%%  vind %2d km/t",
			d.Short(), ui.WeatherBadge(w), w.Desc, w.Rain, w.WindKm))
	}
	lines = append(lines, "", t.Faint.Render(model.WeatherCaption))
	return lines
}
