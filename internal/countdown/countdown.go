// Package countdown computes the time left until trip start.
package countdown

import (
	"fmt"
	"time"
)

const (
	msPerDay    = 86_400_000
	msPerHour   = 3_600_000
	msPerMinute = 60_000
	msPerSecond = 1_000
)

// Countdown is the remaining time split into whole units.
type Countdown struct {
	Days, Hours, Minutes, Seconds int64
}

// Remaining splits target-now into days, hours, minutes and seconds. It
// reports false once target is not in the future, so nothing negative is
// ever produced.
func Remaining(now, target time.Time) (Countdown, bool) {
	ms := target.Sub(now).Milliseconds()
	if ms <= 0 {
		return Countdown{}, false
	}
	return Countdown{
		Days:    ms / msPerDay,
		Hours:   (ms % msPerDay) / msPerHour,
		Minutes: (ms % msPerHour) / msPerMinute,
		Seconds: (ms % msPerMinute) / msPerSecond,
	}, true
}

// Units returns the four values with their display labels.
func (c Countdown) Units() [4]Unit {
	return [4]Unit{
		{c.Days, "dager"},
		{c.Hours, "timer"},
		{c.Minutes, "min"},
		{c.Seconds, "sek"},
	}
}

// Unit is one labelled countdown value.
type Unit struct {
	Value int64
	Label string
}

// Pad renders the value with at least two digits.
func (u Unit) Pad() string { return fmt.Sprintf("%02d", u.Value) }

// String renders "12d 03:04:05".
func (c Countdown) String() string {
	return fmt.Sprintf("%02dd %02d:%02d:%02d", c.Days, c.Hours, c.Minutes, c.Seconds)
}
