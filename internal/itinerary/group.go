package itinerary

import (
	"sort"

	"github.com/idilsaglam/trip/internal/model"
)

// untimed sorts after every valid "HH:MM".
const untimed = "99"

// DayGroup is one day's slice of the itinerary, ready for display.
type DayGroup struct {
	Day        model.Day
	Weather    model.Weather
	HasWeather bool
	Activities []model.Activity
}

// SortByTime returns acts ordered by time, entries without a time last.
// Ties keep their insertion order.
func SortByTime(acts []model.Activity) []model.Activity {
	out := make([]model.Activity, len(acts))
	copy(out, acts)
	sort.SliceStable(out, func(i, j int) bool {
		return sortKey(out[i]) < sortKey(out[j])
	})
	return out
}

func sortKey(a model.Activity) string {
	if a.Time == "" {
		return untimed
	}
	return a.Time
}

// GroupByDay partitions acts by day, in the order of days. Every day gets a
// group, empty or not. Activities on unknown days are left out.
func GroupByDay(acts []model.Activity, days []model.Day) []DayGroup {
	byDay := make(map[model.DayID][]model.Activity, len(days))
	for _, a := range acts {
		byDay[a.Day] = append(byDay[a.Day], a)
	}
	out := make([]DayGroup, 0, len(days))
	for _, d := range days {
		g := DayGroup{Day: d, Activities: SortByTime(byDay[d.ID])}
		g.Weather, g.HasWeather = model.WeatherFor(d.ID)
		out = append(out, g)
	}
	return out
}

// Groups is GroupByDay over the store's current activities and the trip days.
func (s *Store) Groups() []DayGroup {
	return GroupByDay(s.activities, model.Days())
}
