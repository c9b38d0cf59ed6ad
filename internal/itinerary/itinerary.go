// Package itinerary owns the activity list: one-time initialization from
// storage, add/update/delete, the dark-mode flag, and a synchronous save
// after every mutation.
package itinerary

import (
	"github.com/idilsaglam/trip/internal/model"
	"github.com/idilsaglam/trip/internal/store"
)

//go:generate mockgen -destination=mock_persister_test.go -package=itinerary . Persister

// Persister loads and saves the whole state. store.Persistence implements it.
type Persister interface {
	Load() (store.Snapshot, bool)
	Save(state model.PersistedState)
}

// Draft is the user input for a new activity.
type Draft struct {
	Day         model.DayID `validate:"required,tripday"`
	Time        string      `validate:"omitempty,hhmm"`
	Name        string      `validate:"required,notblank"`
	Description string
	Location    string
}

// Patch holds the fields to overwrite on update; nil fields are kept.
type Patch struct {
	Day         *model.DayID
	Time        *string
	Name        *string
	Description *string
	Location    *string
}

// Store is the in-memory state container. It is not safe for concurrent use;
// callers drive it from a single event loop.
type Store struct {
	persist     Persister
	newID       func() string
	activities  []model.Activity
	isDark      bool
	initialized bool
}

// Option customizes a Store.
type Option func(*Store)

// WithIDGenerator replaces the default id scheme.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

func New(p Persister, opts ...Option) *Store {
	s := &Store{persist: p, newID: NewID}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Init loads persisted state once. Stored activities are adopted verbatim;
// without them the default seed is used. A missing isDark means light mode.
// Init does not save. Later calls are no-ops.
func (s *Store) Init() {
	if s.initialized {
		return
	}
	s.initialized = true

	snap, ok := s.persist.Load()
	if ok && snap.Activities != nil {
		s.activities = snap.Activities
	} else {
		s.activities = model.DefaultActivities()
	}
	if ok && snap.IsDark != nil {
		s.isDark = *snap.IsDark
	}
}

func (s *Store) Initialized() bool { return s.initialized }

// Activities returns a copy of the ordered sequence.
func (s *Store) Activities() []model.Activity {
	out := make([]model.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

// Get returns the activity with id.
func (s *Store) Get(id string) (model.Activity, bool) {
	if i := s.index(id); i >= 0 {
		return s.activities[i], true
	}
	return model.Activity{}, false
}

func (s *Store) IsDark() bool { return s.isDark }

// Add appends a new activity built from d and saves. The caller validates d
// first (ValidateDraft); Add trusts its input.
func (s *Store) Add(d Draft) model.Activity {
	if !s.initialized {
		return model.Activity{}
	}
	a := model.Activity{
		ID:          s.newID(),
		Day:         d.Day,
		Date:        dateOf(d.Day),
		Time:        d.Time,
		Name:        d.Name,
		Description: d.Description,
		Location:    d.Location,
		Type:        model.TypeActivity,
	}
	s.activities = append(s.activities, a)
	s.save()
	return a
}

// Update merges p over the activity with id and saves. The id never changes;
// the date follows the day. Unknown ids are a no-op and report false.
// Precondition: p passed ValidatePatch.
func (s *Store) Update(id string, p Patch) bool {
	i := s.index(id)
	if !s.initialized || i < 0 {
		return false
	}
	a := s.activities[i]
	if p.Day != nil {
		a.Day = *p.Day
		a.Date = dateOf(a.Day)
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Location != nil {
		a.Location = *p.Location
	}

	next := make([]model.Activity, len(s.activities))
	copy(next, s.activities)
	next[i] = a
	s.activities = next
	s.save()
	return true
}

// Delete removes the activity with id and saves. Unknown ids are a no-op.
func (s *Store) Delete(id string) bool {
	i := s.index(id)
	if !s.initialized || i < 0 {
		return false
	}
	next := make([]model.Activity, 0, len(s.activities)-1)
	next = append(next, s.activities[:i]...)
	next = append(next, s.activities[i+1:]...)
	s.activities = next
	s.save()
	return true
}

// SetDark stores the theme preference.
func (s *Store) SetDark(dark bool) {
	if !s.initialized {
		return
	}
	s.isDark = dark
	s.save()
}

func (s *Store) ToggleDark() bool {
	s.SetDark(!s.isDark)
	return s.isDark
}

// State is the snapshot that gets persisted.
func (s *Store) State() model.PersistedState {
	return model.PersistedState{Activities: s.Activities(), IsDark: s.isDark}
}

func (s *Store) save() {
	s.persist.Save(s.State())
}

func (s *Store) index(id string) int {
	for i := range s.activities {
		if s.activities[i].ID == id {
			return i
		}
	}
	return -1
}

func dateOf(id model.DayID) string {
	if d, ok := model.LookupDay(id); ok {
		return d.Date
	}
	return ""
}
