package model

import (
	"strings"
	"time"
)

// Fixed trip configuration. Nothing here is persisted or mutated.

const (
	StorageKey  = "belgium-trip-v3"
	HomeAddress = "Turnhoutsebaan 124, Antwerp, Vlaams Gewest 2140"
	TripTitle   = "Tur til Belgia"
	TripDates   = "24.–27. april 2026"
)

// TripStart is midnight local time on the arrival day.
var TripStart = time.Date(2026, time.April, 24, 0, 0, 0, 0, time.Local)

// Day is one of the four static trip days.
type Day struct {
	ID       DayID
	Label    string
	Date     string // YYYY-MM-DD
	Subtitle string
	Emoji    string
}

// Short returns the first two words of the label, e.g. "Fredag 24.".
func (d Day) Short() string {
	n := 0
	for i, r := range d.Label {
		if r == ' ' {
			n++
			if n == 2 {
				return d.Label[:i]
			}
		}
	}
	return d.Label
}

var days = []Day{
	{ID: Friday24, Label: "Fredag 24. april", Date: "2026-04-24", Subtitle: "Ankomstdag", Emoji: "✈️"},
	{ID: Saturday25, Label: "Lørdag 25. april", Date: "2026-04-25", Subtitle: "Utforsk Belgia", Emoji: "🌟"},
	{ID: Sunday26, Label: "Søndag 26. april", Date: "2026-04-26", Subtitle: "Konsertkveld", Emoji: "🎵"},
	{ID: Monday27, Label: "Mandag 27. april", Date: "2026-04-27", Subtitle: "Hjemreise", Emoji: "🏠"},
}

// Days returns the trip days in order. The slice is a copy.
func Days() []Day {
	out := make([]Day, len(days))
	copy(out, days)
	return out
}

// LookupDay finds a day by id.
func LookupDay(id DayID) (Day, bool) {
	for _, d := range days {
		if d.ID == id {
			return d, true
		}
	}
	return Day{}, false
}

// ParseDayID accepts a full id ("sunday-26") or an unambiguous prefix of
// the id or the label ("sun", "søn").
func ParseDayID(s string) (DayID, bool) {
	if _, ok := LookupDay(DayID(s)); ok {
		return DayID(s), true
	}
	q := strings.ToLower(strings.TrimSpace(s))
	if q == "" {
		return "", false
	}
	var found DayID
	for _, d := range days {
		if strings.HasPrefix(string(d.ID), q) || strings.HasPrefix(strings.ToLower(d.Label), q) {
			if found != "" && found != d.ID {
				return "", false
			}
			found = d.ID
		}
	}
	return found, found != ""
}

// DefaultActivities is the seed used when nothing has been stored yet.
func DefaultActivities() []Activity {
	return []Activity{
		{
			ID:          "clapton-1",
			Day:         Sunday26,
			Date:        "2026-04-26",
			Time:        "20:30",
			Name:        "Eric Clapton konsert",
			Description: "Live konsert – en uforglemmelig kveld!",
			Location:    "AFAS Dome, Antwerp",
			Type:        TypeActivity,
		},
	}
}
