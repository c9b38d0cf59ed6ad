package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/trip/internal/countdown"
	"github.com/idilsaglam/trip/internal/export"
	"github.com/idilsaglam/trip/internal/itinerary"
	"github.com/idilsaglam/trip/internal/links"
	"github.com/idilsaglam/trip/internal/model"
	"github.com/idilsaglam/trip/internal/ui"
)

func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return usagef("bruk: trip %s", usage)
		}
		return nil
	}
}

func parseDay(s string) (model.DayID, error) {
	id, ok := model.ParseDayID(s)
	if !ok {
		return "", usagef("ukjent dag %q (friday-24, saturday-25, sunday-26, monday-27)", s)
	}
	return id, nil
}

// invalid turns a validation error into a usage failure.
func invalid(err error) error {
	switch {
	case errors.Is(err, itinerary.ErrInvalidDay):
		return usagef("velg en dag")
	case errors.Is(err, itinerary.ErrBlankName):
		return usagef("navn kan ikke være tomt")
	case errors.Is(err, itinerary.ErrInvalidTime):
		return usagef("tid må være HH:MM")
	}
	return usagef("%v", err)
}

func (r *runner) lsCmd() *cobra.Command {
	var day string
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Vis reiseplanen",
		Args:    exactArgs(0, "ls [--day <dag>] [--json]"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			var id model.DayID
			if day != "" {
				var err error
				if id, err = parseDay(day); err != nil {
					return err
				}
			}
			return r.list(id, asJSON)
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "bare én dag (id eller navn, f.eks. sun eller søn)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "skriv aktivitetene som JSON")
	return cmd
}

func (r *runner) list(day model.DayID, asJSON bool) error {
	a, err := r.store()
	if err != nil {
		return err
	}
	groups := a.Store.Groups()
	if day != "" {
		groups = filterDay(groups, day)
	}

	if asJSON {
		acts := []model.Activity{}
		for _, g := range groups {
			acts = append(acts, g.Activities...)
		}
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(acts); err != nil {
			return failed(fmt.Errorf("encode activities: %w", err))
		}
		return nil
	}

	lines := headerLines(r.now())
	if day == "" {
		lines = append(lines, ui.Current().Muted.Render(ui.ProgressBar(plannedDays(groups), len(groups), 20)+" dager med planer"))
	}
	lines = append(lines, "")
	lines = append(lines, dayLines(groups)...)
	lines = append(lines, "", ui.Current().Muted.Render("Tips: trip add --day sat --time 10:00 --name \"Frokost\""))
	if ts, ok := a.SavedAt(); ok {
		lines = append(lines, ui.Current().Faint.Render("Sist lagret "+ts.Local().Format("02.01.2006 15:04")))
	}
	ui.Panel(r.out, lines)
	return nil
}

func plannedDays(groups []itinerary.DayGroup) int {
	n := 0
	for _, g := range groups {
		if len(g.Activities) > 0 {
			n++
		}
	}
	return n
}

func filterDay(groups []itinerary.DayGroup, day model.DayID) []itinerary.DayGroup {
	for _, g := range groups {
		if g.Day.ID == day {
			return []itinerary.DayGroup{g}
		}
	}
	return nil
}

type activityFlags struct {
	day, time, name, desc, location string
}

func (f *activityFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.day, "day", "", "dag (friday-24, saturday-25, sunday-26, monday-27 eller prefiks)")
	fl.StringVar(&f.time, "time", "", "klokkeslett HH:MM")
	fl.StringVar(&f.name, "name", "", "hva dere skal gjøre")
	fl.StringVar(&f.desc, "desc", "", "beskrivelse")
	fl.StringVar(&f.location, "location", "", "adresse eller lenke")
}

func (r *runner) addCmd() *cobra.Command {
	var f activityFlags
	cmd := &cobra.Command{
		Use:   "add [navn...]",
		Short: "Legg til en aktivitet",
		Example: `  trip add --day fri --time 10:00 --name "Airport pickup"
  trip add --day søn Vaffler på torget`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := itinerary.Draft{
				Time:        strings.TrimSpace(f.time),
				Name:        f.name,
				Description: f.desc,
				Location:    f.location,
			}
			if d.Name == "" {
				d.Name = strings.Join(args, " ")
			}
			if f.day != "" {
				id, err := parseDay(f.day)
				if err != nil {
					return err
				}
				d.Day = id
			}
			if err := itinerary.ValidateDraft(d); err != nil {
				return invalid(err)
			}

			a, err := r.store()
			if err != nil {
				return err
			}
			act := a.Store.Add(d)
			ui.OK(r.out, fmt.Sprintf("la til %q (%s)", act.Name, act.ID))
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func (r *runner) editCmd() *cobra.Command {
	var f activityFlags
	cmd := &cobra.Command{
		Use:     "edit <id>",
		Short:   "Endre en aktivitet",
		Example: `  trip edit clapton-1 --time 21:00`,
		Args:    exactArgs(1, "edit <id> [--day] [--time] [--name] [--desc] [--location]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			var p itinerary.Patch
			fl := cmd.Flags()
			if fl.Changed("day") {
				id, err := parseDay(f.day)
				if err != nil {
					return err
				}
				p.Day = &id
			}
			if fl.Changed("time") {
				t := strings.TrimSpace(f.time)
				p.Time = &t
			}
			if fl.Changed("name") {
				p.Name = &f.name
			}
			if fl.Changed("desc") {
				p.Description = &f.desc
			}
			if fl.Changed("location") {
				p.Location = &f.location
			}
			if p == (itinerary.Patch{}) {
				return usagef("ingenting å endre; bruk --day, --time, --name, --desc eller --location")
			}
			if err := itinerary.ValidatePatch(p); err != nil {
				return invalid(err)
			}

			a, err := r.store()
			if err != nil {
				return err
			}
			if !a.Store.Update(args[0], p) {
				return notFound(args[0])
			}
			ui.OK(r.out, "oppdatert "+args[0])
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func notFound(id string) error {
	return usagef("fant ingen aktivitet med id %q (se `trip ls`)", id)
}

func (r *runner) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Slett en aktivitet",
		Args:    exactArgs(1, "rm <id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := r.store()
			if err != nil {
				return err
			}
			if !a.Store.Delete(args[0]) {
				return notFound(args[0])
			}
			ui.OK(r.out, "slettet "+args[0])
			return nil
		},
	}
}

func (r *runner) countdownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countdown",
		Short: "Tid igjen til avreise",
		Args:  exactArgs(0, "countdown"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, ok := countdown.Remaining(r.now(), model.TripStart)
			if !ok {
				fmt.Fprintln(r.out, "God tur! 🇧🇪")
				return nil
			}
			fmt.Fprintln(r.out, countdownLine(c))
			return nil
		},
	}
}

func (r *runner) weatherCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weather",
		Short: "Typisk vær for hver dag",
		Args:  exactArgs(0, "weather"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui.Panel(r.out, weatherLines())
			return nil
		},
	}
}

func (r *runner) darkCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "dark [on|off|toggle]",
		Short:     "Vis eller endre mørk modus",
		ValidArgs: []string{"on", "off", "toggle"},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return usagef("bruk: trip dark [on|off|toggle]")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := r.store()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				switch args[0] {
				case "on":
					a.Store.SetDark(true)
				case "off":
					a.Store.SetDark(false)
				case "toggle":
					a.Store.ToggleDark()
				default:
					return usagef("bruk: trip dark [on|off|toggle]")
				}
			}
			state := "av"
			if a.Store.IsDark() {
				state = "på"
			}
			ui.OK(r.out, "mørk modus "+state)
			return nil
		},
	}
}

func (r *runner) copyAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy-address",
		Short: "Kopier adressen til overnattingen",
		Args:  exactArgs(0, "copy-address"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := r.copyText(model.HomeAddress); err != nil {
				return failed(fmt.Errorf("kunne ikke kopiere: %w", err))
			}
			ui.OK(r.out, "Kopiert! "+model.HomeAddress)
			return nil
		},
	}
}

func (r *runner) openCmd() *cobra.Command {
	var mode string
	var printOnly bool
	cmd := &cobra.Command{
		Use:   "open <id>",
		Short: "Åpne stedet eller veibeskrivelse i Google Maps",
		Example: `  trip open clapton-1
  trip open clapton-1 --mode transit`,
		Args: exactArgs(1, "open <id> [--mode walking|transit|driving]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := r.store()
			if err != nil {
				return err
			}
			act, ok := a.Store.Get(args[0])
			if !ok {
				return notFound(args[0])
			}

			var u string
			switch {
			case mode != "":
				m, err := links.ParseMode(mode)
				if err != nil {
					return usagef("%v", err)
				}
				u = links.FromHome(links.Destination(act), m)
			case act.Location != "":
				u = links.ForLocation(act.Location)
			default:
				return usagef("%q har ikke noe sted; bruk --mode for veibeskrivelse", act.Name)
			}

			if printOnly {
				fmt.Fprintln(r.out, u)
				return nil
			}
			r.log.Debugw("opening link", "id", act.ID, "url", u)
			if err := r.open(u); err != nil {
				ui.Hint(r.errOut, u)
				return failed(fmt.Errorf("kunne ikke åpne lenken: %w", err))
			}
			ui.OK(r.out, "åpnet "+u)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "veibeskrivelse fra overnattingen: walking, transit eller driving")
	cmd.Flags().BoolVar(&printOnly, "print", false, "skriv lenken i stedet for å åpne den")
	return cmd
}

func (r *runner) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <fil.pdf>",
		Short: "Eksporter reiseplanen som PDF",
		Args:  exactArgs(1, "export <fil.pdf>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := r.store()
			if err != nil {
				return err
			}
			path := args[0]
			if path == "-" {
				if err := export.WritePDF(r.out, a.Store.Groups(), r.now()); err != nil {
					return failed(err)
				}
				return nil
			}

			f, err := os.Create(path)
			if err != nil {
				return failed(fmt.Errorf("create %s: %w", path, err))
			}
			if err := export.WritePDF(f, a.Store.Groups(), r.now()); err != nil {
				f.Close()
				return failed(err)
			}
			if err := f.Close(); err != nil {
				return failed(fmt.Errorf("close %s: %w", path, err))
			}
			ui.OK(r.out, "skrev "+path)
			return nil
		},
	}
}

func (r *runner) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Skriv versjonen",
		Args:  exactArgs(0, "version"),
		// Needs neither config nor storage.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(r.out, "%s %s\n", cmd.Root().Name(), Version)
		},
	}
}

func (r *runner) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start den interaktive visningen",
		Args:  exactArgs(0, "tui"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.tui()
		},
	}
}
