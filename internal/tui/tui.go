// Package tui is the interactive trip planner. It renders the itinerary
// store and forwards every edit to it synchronously.
package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/trip/internal/app"
	"github.com/idilsaglam/trip/internal/countdown"
	"github.com/idilsaglam/trip/internal/itinerary"
	"github.com/idilsaglam/trip/internal/links"
	"github.com/idilsaglam/trip/internal/logger"
	"github.com/idilsaglam/trip/internal/model"
	"github.com/idilsaglam/trip/internal/ui"
)

const toastDuration = 1500 * time.Millisecond

type (
	tickMsg      time.Time
	toastDoneMsg int
	statusMsg    string
)

// Model is the Bubble Tea model. Only view state lives here; activities and
// the dark flag belong to the store.
type Model struct {
	store *itinerary.Store
	log   *logger.Logger
	keys  keyMap
	help  help.Model

	now      func() time.Time
	copyText func(string) error
	open     links.Opener
	theme    string

	width, height int

	expanded map[model.DayID]bool
	cursor   int
	confirm  *model.Activity // pending delete
	form     *activityForm
	toast    string
	toastSeq int
	status   string
}

// Option configures a Model.
type Option func(*Model)

// WithClock replaces time.Now for the countdown.
func WithClock(now func() time.Time) Option { return func(m *Model) { m.now = now } }

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) Option { return func(m *Model) { m.copyText = fn } }

// WithOpener replaces the browser launcher.
func WithOpener(o links.Opener) Option { return func(m *Model) { m.open = o } }

// WithTheme forces "light" or "dark" until the user toggles.
func WithTheme(name string) Option { return func(m *Model) { m.theme = name } }

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option { return func(m *Model) { m.log = l } }

// WithSize sets the initial terminal size.
func WithSize(w, h int) Option { return func(m *Model) { m.width, m.height = w, h } }

// New builds a model over an initialized store.
func New(s *itinerary.Store, opts ...Option) Model {
	m := Model{
		store:    s,
		log:      logger.Nop(),
		keys:     newKeyMap(),
		help:     help.New(),
		now:      time.Now,
		copyText: clipboard.WriteAll,
		open:     links.Open,
		width:    80,
		height:   24,
		expanded: map[model.DayID]bool{model.Friday24: true},
	}
	for _, o := range opts {
		o(&m)
	}
	m.help.Width = m.width
	ui.SetDark(m.dark())
	return m
}

// Run starts the TUI on the alternate screen and blocks until it quits.
func Run(a *app.App) error {
	w, h := ui.TermSize()
	m := New(a.Store,
		WithTheme(a.Config.UI.Theme),
		WithLogger(a.Log.WithComponent("tui")),
		WithSize(w, h),
	)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func (m Model) dark() bool {
	switch m.theme {
	case "dark":
		return true
	case "light":
		return false
	}
	return m.store.IsDark()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// ticking reports whether the countdown still needs refreshing.
func (m Model) ticking() bool {
	_, ok := countdown.Remaining(m.now(), model.TripStart)
	return ok
}

func (m Model) Init() tea.Cmd {
	if m.ticking() {
		return tick()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		if m.ticking() {
			return m, tick()
		}
		return m, nil
	case toastDoneMsg:
		if int(msg) == m.toastSeq {
			m.toast = ""
		}
		return m, nil
	case statusMsg:
		m.status = string(msg)
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.confirm != nil {
		return m.updateConfirm(km)
	}
	return m.updateList(km)
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	rows := m.rows()
	cur, hasRow := m.row(rows)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if hasRow {
			m.expanded[cur.day] = !m.expanded[cur.day]
			if !cur.isDay {
				m.cursor = m.dayRow(cur.day)
			}
		}
	case key.Matches(msg, m.keys.Add):
		m.form = newActivityForm(nil)
	case key.Matches(msg, m.keys.Edit):
		if hasRow && !cur.isDay {
			m.form = newActivityForm(&cur.activity)
			return m, textinput.Blink
		}
	case key.Matches(msg, m.keys.Del):
		if hasRow && !cur.isDay {
			a := cur.activity
			m.confirm = &a
		}
	case key.Matches(msg, m.keys.Map):
		if hasRow && !cur.isDay && cur.activity.Location != "" {
			return m, m.openCmd(links.ForLocation(cur.activity.Location))
		}
	case key.Matches(msg, m.keys.Walk):
		return m, m.directions(cur, hasRow, links.Walking)
	case key.Matches(msg, m.keys.Transit):
		return m, m.directions(cur, hasRow, links.Transit)
	case key.Matches(msg, m.keys.Taxi):
		return m, m.directions(cur, hasRow, links.Driving)
	case key.Matches(msg, m.keys.Copy):
		if err := m.copyText(model.HomeAddress); err != nil {
			m.log.WithError(err).Warnw("clipboard write failed")
			m.status = "Kunne ikke kopiere adressen"
			return m, nil
		}
		m.toastSeq++
		m.toast = "✓ Kopiert!"
		seq := m.toastSeq
		return m, tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastDoneMsg(seq) })
	case key.Matches(msg, m.keys.Dark):
		m.store.ToggleDark()
		m.theme = ""
		ui.SetDark(m.dark())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.store.Delete(m.confirm.ID)
		m.confirm = nil
		m.clampCursor()
	case key.Matches(msg, m.keys.No):
		m.confirm = nil
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	res, cmd := m.form.update(msg)
	switch res {
	case formCancel:
		m.form = nil
		return m, nil
	case formSubmit:
		f := m.form
		m.form = nil
		if f.editing() {
			m.store.Update(f.editID, f.patch())
		} else {
			a := m.store.Add(f.draft())
			m.log.Debugw("activity added", "id", a.ID, "day", a.Day)
		}
		m.expanded[f.day] = true
		m.clampCursor()
		return m, nil
	}
	return m, cmd
}

func (m Model) directions(cur row, ok bool, mode links.Mode) tea.Cmd {
	if !ok || cur.isDay || cur.activity.Location == "" {
		return nil
	}
	return m.openCmd(links.FromHome(links.Destination(cur.activity), mode))
}

func (m Model) openCmd(u string) tea.Cmd {
	open, log := m.open, m.log
	return func() tea.Msg {
		log.Debugw("opening link", "url", u)
		if err := open(u); err != nil {
			log.WithError(err).Warnw("open link failed", "url", u)
			return statusMsg("Kunne ikke åpne lenken")
		}
		return nil
	}
}

// row is one navigable line: a day header or an activity under an
// expanded day.
type row struct {
	day      model.DayID
	isDay    bool
	activity model.Activity
}

func (m Model) rows() []row {
	var out []row
	for _, g := range m.store.Groups() {
		out = append(out, row{day: g.Day.ID, isDay: true})
		if !m.expanded[g.Day.ID] {
			continue
		}
		for _, a := range g.Activities {
			out = append(out, row{day: g.Day.ID, activity: a})
		}
	}
	return out
}

func (m Model) row(rows []row) (row, bool) {
	if m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.cursor], true
}

func (m Model) dayRow(id model.DayID) int {
	for i, r := range m.rows() {
		if r.isDay && r.day == id {
			return i
		}
	}
	return 0
}

func (m *Model) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
