package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/trip/internal/itinerary"
	"github.com/idilsaglam/trip/internal/model"
)

// Form field indexes. The day selector is field 0.
const (
	fieldDay = iota
	fieldTime
	fieldName
	fieldDesc
	fieldLocation
	fieldCount
)

// activityForm is the add/edit dialog. It is transient and never persisted.
type activityForm struct {
	edit   bool
	editID string // may be empty for records stored without one
	day    model.DayID
	focus  int
	inputs [fieldCount]textinput.Model
	keys   formKeyMap
}

func newActivityForm(a *model.Activity) *activityForm {
	f := &activityForm{keys: newFormKeyMap()}
	labels := [fieldCount]struct{ placeholder string; limit int }{
		fieldTime:     {"HH:MM", 5},
		fieldName:     {"Hva skal dere gjøre?", 120},
		fieldDesc:     {"Valgfri beskrivelse", 200},
		fieldLocation: {"Adresse eller lim inn lenke", 300},
	}
	for i := fieldTime; i < fieldCount; i++ {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = labels[i].placeholder
		ti.CharLimit = labels[i].limit
		f.inputs[i] = ti
	}
	if a != nil {
		f.edit = true
		f.editID = a.ID
		f.day = a.Day
		f.inputs[fieldTime].SetValue(a.Time)
		f.inputs[fieldName].SetValue(a.Name)
		f.inputs[fieldDesc].SetValue(a.Description)
		f.inputs[fieldLocation].SetValue(a.Location)
		for i := fieldTime; i < fieldCount; i++ {
			f.inputs[i].CursorEnd()
		}
		f.focus = fieldName
		f.inputs[fieldName].Focus()
	}
	return f
}

func (f *activityForm) editing() bool { return f.edit }

func (f *activityForm) title() string {
	if f.editing() {
		return "Rediger aktivitet"
	}
	return "Ny aktivitet"
}

func (f *activityForm) submitLabel() string {
	if f.editing() {
		return "Lagre endringer"
	}
	return "Legg til"
}

func (f *activityForm) draft() itinerary.Draft {
	return itinerary.Draft{
		Day:         f.day,
		Time:        strings.TrimSpace(f.inputs[fieldTime].Value()),
		Name:        f.inputs[fieldName].Value(),
		Description: f.inputs[fieldDesc].Value(),
		Location:    f.inputs[fieldLocation].Value(),
	}
}

// patch overwrites every form field, as the edit dialog shows them all.
func (f *activityForm) patch() itinerary.Patch {
	d := f.draft()
	return itinerary.Patch{
		Day:         &d.Day,
		Time:        &d.Time,
		Name:        &d.Name,
		Description: &d.Description,
		Location:    &d.Location,
	}
}

// valid mirrors the disabled submit button: a day and a non-blank name.
func (f *activityForm) valid() bool {
	return itinerary.ValidateDraft(f.draft()) == nil
}

func (f *activityForm) setFocus(i int) tea.Cmd {
	f.focus = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for j := fieldTime; j < fieldCount; j++ {
		if j == f.focus {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

func (f *activityForm) shiftDay(delta int) {
	days := model.Days()
	idx := -1
	for i, d := range days {
		if d.ID == f.day {
			idx = i
		}
	}
	if idx < 0 {
		if delta < 0 {
			idx = 0
		} else {
			idx = -1
		}
	}
	idx = (idx + delta + len(days)) % len(days)
	f.day = days[idx].ID
}

// formResult tells the parent what happened after a key press.
type formResult int

const (
	formContinue formResult = iota
	formSubmit
	formCancel
)

func (f *activityForm) update(msg tea.Msg) (formResult, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, f.keys.Cancel):
			return formCancel, nil
		case key.Matches(km, f.keys.Submit):
			if !f.valid() {
				return formContinue, nil
			}
			return formSubmit, nil
		case key.Matches(km, f.keys.Next):
			return formContinue, f.setFocus(f.focus + 1)
		case key.Matches(km, f.keys.Prev):
			return formContinue, f.setFocus(f.focus - 1)
		}
		if f.focus == fieldDay {
			switch {
			case key.Matches(km, f.keys.DayLeft):
				f.shiftDay(-1)
			case key.Matches(km, f.keys.DayRight):
				f.shiftDay(1)
			}
			return formContinue, nil
		}
	}
	if f.focus == fieldDay {
		return formContinue, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return formContinue, cmd
}
