// Package links builds Google Maps URLs for activities and opens them.
package links

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/browser"

	"github.com/idilsaglam/trip/internal/model"
)

// Mode is a Google Maps travel mode.
type Mode string

const (
	Walking Mode = "walking"
	Transit Mode = "transit"
	Driving Mode = "driving"
)

// Modes lists the transport choices in display order.
var Modes = []Mode{Walking, Transit, Driving}

// Label is the button text for a mode.
func (m Mode) Label() string {
	switch m {
	case Walking:
		return "Gå"
	case Transit:
		return "Kollektiv"
	case Driving:
		return "Taxi"
	}
	return string(m)
}

// ParseMode accepts a mode name or its label.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(s, string(m)) || strings.EqualFold(s, m.Label()) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown travel mode %q (walking|transit|driving)", s)
}

// Directions is a route from origin to dest.
func Directions(origin, dest string, mode Mode) string {
	return "https://www.google.com/maps/dir/?api=1&origin=" + encode(origin) +
		"&destination=" + encode(dest) + "&travelmode=" + string(mode)
}

// FromHome is a route from the accommodation to dest.
func FromHome(dest string, mode Mode) string {
	return Directions(model.HomeAddress, dest, mode)
}

// Search is a map search for dest.
func Search(dest string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + encode(dest)
}

// ForLocation returns loc unchanged when it already is a link, else a search.
func ForLocation(loc string) string {
	if strings.Contains(loc, "http") {
		return loc
	}
	return Search(loc)
}

// Destination is what directions point at: the location, or the name when
// no location was given.
func Destination(a model.Activity) string {
	if a.Location != "" {
		return a.Location
	}
	return a.Name
}

// encode percent-encodes like JavaScript's encodeURIComponent.
func encode(s string) string {
	e := url.QueryEscape(s)
	e = strings.ReplaceAll(e, "+", "%20")
	for _, keep := range []string{"!", "'", "(", ")", "*"} {
		e = strings.ReplaceAll(e, url.QueryEscape(keep), keep)
	}
	return e
}

// Opener opens a URL outside the program. Tests swap it out.
type Opener func(string) error

// Open hands u to the system browser.
var Open Opener = browser.OpenURL
