package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/trip/internal/app"
	"github.com/idilsaglam/trip/internal/links"
	"github.com/idilsaglam/trip/internal/model"
)

var march = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.Local)

type result struct {
	code        int
	out, errOut string
}

type harness struct {
	t       *testing.T
	dir     string
	now     time.Time
	opened  []string
	copied  string
	tuiRuns int
	tty     bool
}

func newHarness(t *testing.T) *harness {
	return &harness{t: t, dir: t.TempDir(), now: march}
}

func (h *harness) run(args ...string) result {
	h.t.Helper()
	var out, errOut bytes.Buffer
	args = append(args, "--data-dir", h.dir)
	code := Execute(args,
		WithOutput(&out, &errOut),
		WithClock(func() time.Time { return h.now }),
		WithOpener(func(u string) error { h.opened = append(h.opened, u); return nil }),
		WithClipboard(func(s string) error { h.copied = s; return nil }),
		WithTerminal(func() bool { return h.tty }, func(*app.App) error { h.tuiRuns++; return nil }),
	)
	return result{code: code, out: out.String(), errOut: errOut.String()}
}

func (h *harness) activities(args ...string) []model.Activity {
	h.t.Helper()
	res := h.run(append([]string{"ls", "--json"}, args...)...)
	require.Equal(h.t, ExitOK, res.code, res.errOut)
	var acts []model.Activity
	require.NoError(h.t, json.Unmarshal([]byte(res.out), &acts))
	return acts
}

func TestBareCommandListsWhenNotATerminal(t *testing.T) {
	h := newHarness(t)
	res := h.run()
	require.Equal(t, ExitOK, res.code, res.errOut)
	assert.Contains(t, res.out, model.TripTitle)
	assert.Contains(t, res.out, "Eric Clapton konsert")
	assert.Contains(t, res.out, "clapton-1")
	assert.Contains(t, res.out, "Ingen planer ennå")
	assert.Contains(t, res.out, "1/4 dager med planer")
	assert.NotContains(t, res.out, "Sist lagret")
	assert.Zero(t, h.tuiRuns)
}

func TestBareCommandStartsTUIOnTerminal(t *testing.T) {
	h := newHarness(t)
	h.tty = true
	res := h.run()
	require.Equal(t, ExitOK, res.code, res.errOut)
	assert.Equal(t, 1, h.tuiRuns)

	res = h.run("tui")
	require.Equal(t, ExitOK, res.code)
	assert.Equal(t, 2, h.tuiRuns)
}

func TestAddThenList(t *testing.T) {
	h := newHarness(t)
	res := h.run("add", "--day", "fri", "--time", "10:00", "--name", "Airport pickup")
	require.Equal(t, ExitOK, res.code, res.errOut)
	assert.Contains(t, res.out, "Airport pickup")

	acts := h.activities()
	require.Len(t, acts, 2)
	assert.Equal(t, "Airport pickup", acts[0].Name)
	assert.Equal(t, model.Friday24, acts[0].Day)
	assert.Equal(t, "2026-04-24", acts[0].Date)
	assert.Equal(t, "clapton-1", acts[1].ID)

	assert.Contains(t, h.run("ls").out, "Sist lagret")

	fri := h.activities("--day", "friday-24")
	require.Len(t, fri, 1)
	assert.Equal(t, "Airport pickup", fri[0].Name)
}

func TestAddNameFromArgs(t *testing.T) {
	h := newHarness(t)
	res := h.run("add", "--day", "lør", "Vaffler", "på", "torget")
	require.Equal(t, ExitOK, res.code, res.errOut)

	acts := h.activities("--day", "sat")
	require.Len(t, acts, 1)
	assert.Equal(t, "Vaffler på torget", acts[0].Name)
	assert.Empty(t, acts[0].Time)
}

func TestAddRejectsInvalidInput(t *testing.T) {
	cases := map[string][]string{
		"no name":     {"add", "--day", "fri"},
		"blank name":  {"add", "--day", "fri", "--name", "   "},
		"no day":      {"add", "--name", "Middag"},
		"unknown day": {"add", "--day", "tuesday", "--name", "Middag"},
		"bad time":    {"add", "--day", "fri", "--time", "25:00", "--name", "Middag"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t)
			res := h.run(args...)
			assert.Equal(t, ExitUsage, res.code)
			assert.NotEmpty(t, res.errOut)
			assert.Len(t, h.activities(), 1)
		})
	}
}

func TestEditChangesOnlyGivenFields(t *testing.T) {
	h := newHarness(t)
	res := h.run("edit", "clapton-1", "--time", "21:00")
	require.Equal(t, ExitOK, res.code, res.errOut)

	acts := h.activities()
	require.Len(t, acts, 1)
	want := model.DefaultActivities()[0]
	want.Time = "21:00"
	assert.Equal(t, want, acts[0])
}

func TestEditMovesDay(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, ExitOK, h.run("edit", "clapton-1", "--day", "mon").code)
	acts := h.activities()
	assert.Equal(t, model.Monday27, acts[0].Day)
	assert.Equal(t, "2026-04-27", acts[0].Date)
}

func TestEditErrors(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, ExitUsage, h.run("edit", "clapton-1").code)
	assert.Equal(t, ExitUsage, h.run("edit", "nope", "--time", "09:00").code)
	assert.Equal(t, ExitUsage, h.run("edit", "clapton-1", "--name", "").code)
	assert.Equal(t, ExitUsage, h.run("edit", "clapton-1", "--time", "9").code)
	assert.Equal(t, ExitUsage, h.run("edit").code)
}

func TestRemove(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, ExitOK, h.run("rm", "clapton-1").code)
	assert.Empty(t, h.activities())

	res := h.run("rm", "clapton-1")
	assert.Equal(t, ExitUsage, res.code)
	assert.Contains(t, res.errOut, "clapton-1")
}

func TestDark(t *testing.T) {
	h := newHarness(t)
	res := h.run("dark")
	require.Equal(t, ExitOK, res.code)
	assert.Contains(t, res.out, "av")

	require.Equal(t, ExitOK, h.run("dark", "on").code)
	assert.Contains(t, h.run("dark").out, "på")

	require.Equal(t, ExitOK, h.run("dark", "toggle").code)
	assert.Contains(t, h.run("dark").out, "av")

	assert.Equal(t, ExitUsage, h.run("dark", "maybe").code)
}

func TestCountdown(t *testing.T) {
	h := newHarness(t)
	res := h.run("countdown")
	require.Equal(t, ExitOK, res.code)
	assert.Contains(t, res.out, "53 dager")

	h.now = model.TripStart.Add(time.Hour)
	res = h.run("countdown")
	require.Equal(t, ExitOK, res.code)
	assert.Contains(t, res.out, "God tur")
}

func TestWeather(t *testing.T) {
	res := newHarness(t).run("weather")
	require.Equal(t, ExitOK, res.code)
	assert.Contains(t, res.out, "Lett regn")
	assert.Contains(t, res.out, model.WeatherCaption)
}

func TestCopyAddress(t *testing.T) {
	h := newHarness(t)
	res := h.run("copy-address")
	require.Equal(t, ExitOK, res.code)
	assert.Equal(t, model.HomeAddress, h.copied)
}

func TestOpen(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, ExitOK, h.run("open", "clapton-1").code)
	require.Equal(t, ExitOK, h.run("open", "clapton-1", "--mode", "transit").code)
	assert.Equal(t, []string{
		links.Search("AFAS Dome, Antwerp"),
		links.FromHome("AFAS Dome, Antwerp", links.Transit),
	}, h.opened)

	res := h.run("open", "clapton-1", "--mode", "walking", "--print")
	require.Equal(t, ExitOK, res.code)
	assert.Contains(t, res.out, "travelmode=walking")
	assert.Len(t, h.opened, 2)

	assert.Equal(t, ExitUsage, h.run("open", "clapton-1", "--mode", "fly").code)
	assert.Equal(t, ExitUsage, h.run("open", "missing").code)
}

func TestOpenWithoutLocationNeedsMode(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, ExitOK, h.run("add", "--day", "sat", "--name", "Grand Place").code)
	var id string
	for _, a := range h.activities() {
		if a.Name == "Grand Place" {
			id = a.ID
		}
	}
	require.NotEmpty(t, id)

	assert.Equal(t, ExitUsage, h.run("open", id).code)
	require.Equal(t, ExitOK, h.run("open", id, "--mode", "walking").code)
	assert.Equal(t, []string{links.FromHome("Grand Place", links.Walking)}, h.opened)
}

func TestOpenFailureIsRuntimeError(t *testing.T) {
	var errOut bytes.Buffer
	code := Execute([]string{"open", "clapton-1", "--data-dir", t.TempDir()},
		WithOutput(&bytes.Buffer{}, &errOut),
		WithOpener(func(string) error { return errors.New("no browser") }),
	)
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut.String(), "no browser")
}

func TestExportPDF(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "plan.pdf")
	res := h.run("export", path)
	require.Equal(t, ExitOK, res.code, res.errOut)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestEphemeralDoesNotPersist(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, ExitOK, h.run("add", "--ephemeral", "--day", "fri", "--name", "Borte").code)
	assert.Len(t, h.activities(), 1)
}

func TestSQLiteBackend(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, ExitOK, h.run("add", "--backend", "sqlite", "--day", "fri", "--name", "Øl").code)
	assert.Len(t, h.activities("--backend", "sqlite"), 2)
	assert.Len(t, h.activities(), 1, "json backend is a separate store")
	assert.FileExists(t, filepath.Join(h.dir, "trip.db"))
}

func TestUsageErrors(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, ExitUsage, h.run("nonsense").code)
	assert.Equal(t, ExitUsage, h.run("ls", "--bogus").code)
	assert.Equal(t, ExitUsage, h.run("ls", "--day", "xyz").code)
	assert.Equal(t, ExitUsage, h.run("--backend", "redis").code)
}

func TestVersion(t *testing.T) {
	res := newHarness(t).run("version")
	require.Equal(t, ExitOK, res.code)
	assert.Equal(t, "trip "+Version+"\n", res.out)
}
