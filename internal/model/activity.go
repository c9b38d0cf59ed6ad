package model

// DayID references one of the four fixed trip days.
type DayID string

const (
	Friday24   DayID = "friday-24"
	Saturday25 DayID = "saturday-25"
	Sunday26   DayID = "sunday-26"
	Monday27   DayID = "monday-27"
)

// ActivityType is reserved for future categorization; only one variant exists.
type ActivityType string

const TypeActivity ActivityType = "activity"

// Activity is the domain model for a single itinerary entry.
// JSON names match the persisted blob, so renaming a tag breaks stored data.
type Activity struct {
	ID          string       `json:"id"`
	Day         DayID        `json:"day"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Type        ActivityType `json:"type"`
}

// PersistedState is the complete snapshot written under the storage key.
type PersistedState struct {
	Activities []Activity `json:"activities"`
	IsDark     bool       `json:"isDark"`
}
