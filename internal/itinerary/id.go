package itinerary

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID returns "a-<unix millis>-<suffix>". The suffix is 12 hex chars of a
// random UUID; collisions are possible in theory, not at this scale.
func NewID() string {
	return newIDAt(time.Now())
}

func newIDAt(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("a-%d-%s", now.UnixMilli(), suffix)
}
