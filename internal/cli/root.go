// Package cli is the trip command line. Without a subcommand it starts the
// TUI on a terminal and prints the itinerary otherwise.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idilsaglam/trip/internal/app"
	"github.com/idilsaglam/trip/internal/config"
	"github.com/idilsaglam/trip/internal/links"
	"github.com/idilsaglam/trip/internal/logger"
	"github.com/idilsaglam/trip/internal/tui"
	"github.com/idilsaglam/trip/internal/ui"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// exitError carries the exit code a failure maps to.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &exitError{code: ExitUsage, err: fmt.Errorf(format, args...)}
}

func failed(err error) error {
	return &exitError{code: ExitError, err: err}
}

// runner is the state shared by all commands of one invocation.
type runner struct {
	v         *viper.Viper
	cfgFile   string
	ephemeral bool

	out, errOut io.Writer
	now         func() time.Time
	open        links.Opener
	copyText    func(string) error
	isTTY       func() bool
	runTUI      func(*app.App) error

	cfg *config.Config
	log *logger.Logger
	app *app.App
}

// Option overrides a side effect, mostly for tests.
type Option func(*runner)

func WithOutput(out, errOut io.Writer) Option {
	return func(r *runner) { r.out, r.errOut = out, errOut }
}

func WithClock(now func() time.Time) Option { return func(r *runner) { r.now = now } }

func WithOpener(o links.Opener) Option { return func(r *runner) { r.open = o } }

func WithClipboard(fn func(string) error) Option { return func(r *runner) { r.copyText = fn } }

// WithTerminal decides whether the bare command starts the TUI.
func WithTerminal(isTTY func() bool, run func(*app.App) error) Option {
	return func(r *runner) { r.isTTY, r.runTUI = isTTY, run }
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, opts ...Option) int {
	r := &runner{
		v:        config.New(),
		out:      os.Stdout,
		errOut:   os.Stderr,
		now:      time.Now,
		open:     links.Open,
		copyText: clipboard.WriteAll,
		isTTY:    ui.IsTerminal,
		runTUI:   tui.Run,
	}
	for _, o := range opts {
		o(r)
	}

	root := r.rootCmd()
	root.SetArgs(args)
	root.SetOut(r.out)
	root.SetErr(r.errOut)

	err := root.Execute()
	if r.app != nil {
		if cerr := r.app.Close(); cerr != nil && err == nil {
			err = failed(fmt.Errorf("close store: %w", cerr))
		}
	} else if r.log != nil {
		r.log.Close()
	}
	if err == nil {
		return ExitOK
	}

	ui.Fail(r.errOut, err.Error())
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	// Errors cobra raises itself: unknown command, bad flags, arg count.
	ui.Hint(r.errOut, "Kjør `trip --help` for bruk.")
	return ExitUsage
}

func (r *runner) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Reiseplan for turen til Belgia",
		Long: "trip holder styr på aktivitetene for turen til Belgia 24.–27. april 2026.\n" +
			"Uten underkommando startes den interaktive visningen i en terminal.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return r.setup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if r.isTTY() {
				return r.tui()
			}
			return r.list("", false)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&r.cfgFile, "config", "", "config file (yaml, toml or json)")
	f.String("data-dir", "", "directory for stored data (default $XDG_DATA_HOME/trip)")
	f.String("backend", "", "storage backend: json, sqlite or memory")
	f.String("log-level", "", "log level: debug, info, warn or error")
	f.BoolVar(&r.ephemeral, "ephemeral", false, "keep everything in memory for this run")
	_ = r.v.BindPFlag("storage.data_dir", f.Lookup("data-dir"))
	_ = r.v.BindPFlag("storage.backend", f.Lookup("backend"))
	_ = r.v.BindPFlag("log.level", f.Lookup("log-level"))

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usagef("%v", err)
	})

	root.AddCommand(
		r.lsCmd(),
		r.addCmd(),
		r.editCmd(),
		r.rmCmd(),
		r.countdownCmd(),
		r.weatherCmd(),
		r.darkCmd(),
		r.copyAddressCmd(),
		r.openCmd(),
		r.exportCmd(),
		r.versionCmd(),
		r.tuiCmd(),
	)
	return root
}

// setup loads configuration and the logger. The store is opened lazily by
// the commands that need it.
func (r *runner) setup() error {
	if r.ephemeral {
		r.v.Set("storage.backend", config.BackendMemory)
	}
	cfg, err := config.Load(r.v, r.cfgFile)
	if err != nil {
		return usagef("%v", err)
	}
	r.cfg = cfg

	if r.ephemeral {
		r.log = logger.Nop()
		return nil
	}
	log, err := logger.New(cfg.Logger)
	if err != nil {
		return failed(err)
	}
	r.log = log
	return nil
}

// store opens the configured backend once per invocation.
func (r *runner) store() (*app.App, error) {
	if r.app != nil {
		return r.app, nil
	}
	a, err := app.Open(r.cfg, r.log)
	if err != nil {
		return nil, failed(err)
	}
	r.app = a
	ui.SetDark(a.Dark())
	return a, nil
}

func (r *runner) tui() error {
	a, err := r.store()
	if err != nil {
		return err
	}
	if err := r.runTUI(a); err != nil {
		return failed(err)
	}
	return nil
}
