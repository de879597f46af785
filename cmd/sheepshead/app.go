package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/sheepshead/internal/config"
	"github.com/lox/sheepshead/internal/display"
	"github.com/lox/sheepshead/internal/game"
	"github.com/lox/sheepshead/internal/session"
	"github.com/lox/sheepshead/internal/store"
)

// Globals are the flags shared by every command
type Globals struct {
	Config  string `help:"Path to the HCL config file" default:"~/.sheepshead/config.hcl" type:"path" env:"SHEEPSHEAD_CONFIG"`
	State   string `help:"Path to the saved game (overrides storage.state_file)" type:"path" env:"SHEEPSHEAD_STATE"`
	Debug   bool   `help:"Log at debug level"`
	NoColor bool   `name:"no-color" help:"Disable colour output"`
}

// App carries what every command needs. The game is loaded on first use so
// commands like rules never touch storage.
type App struct {
	ctx    context.Context
	cfg    *config.Config
	logger *log.Logger
	out    io.Writer
	errOut io.Writer
	styles display.Styles
	errs   display.Styles
	clock  quartz.Clock
	state  string

	store store.Store
	sess  *session.Session
	saver *store.Autosaver
}

func NewApp(ctx context.Context, g Globals, out, errOut io.Writer, clock quartz.Clock) (*App, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel()
	if g.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(errOut, log.Options{
		Level:           level,
		ReportTimestamp: g.Debug,
	})

	return &App{
		ctx:    ctx,
		cfg:    cfg,
		logger: logger,
		out:    out,
		errOut: errOut,
		styles: display.NewStyles(display.NewRenderer(out, !g.NoColor)),
		errs:   display.NewStyles(display.NewRenderer(errOut, !g.NoColor)),
		clock:  clock,
		state:  g.State,
	}, nil
}

// Session returns the saved game, or a fresh one when nothing usable is
// stored. Every later change is written back through the autosaver.
func (a *App) Session() (*session.Session, error) {
	if a.sess != nil {
		return a.sess, nil
	}

	st, err := a.cfg.OpenStore(a.state, a.logger)
	if err != nil {
		return nil, err
	}
	opts, err := a.cfg.SessionOptions(a.clock, a.logger)
	if err != nil {
		return nil, err
	}
	sess, resumed, err := store.Open(a.ctx, st, opts)
	if err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}
	a.logger.Debug("Opened game", "resumed", resumed, "store", fmt.Sprintf("%T", st))

	a.saver = store.NewAutosaver(a.ctx, st, a.logger)
	sess.Subscribe(a.saver)
	a.store, a.sess = st, sess
	return sess, nil
}

// Saved reports whether the last change reached storage
func (a *App) Saved() error {
	if a.saver == nil {
		return nil
	}
	if err := a.saver.Err(); err != nil {
		return fmt.Errorf("game changed but was not saved: %w", err)
	}
	return nil
}

func (a *App) Close() {
	if c, ok := a.store.(io.Closer); ok {
		if err := c.Close(); err != nil {
			a.logger.Warn("Failed to close store", "error", err)
		}
	}
}

// Fail reports an error a command returned
func (a *App) Fail(err error) {
	fmt.Fprintln(a.errOut, display.Failure(a.errs, err))
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

// resolvePlayer accepts a seat id or a case-insensitive name
func resolvePlayer(players []game.Player, ref string) (game.Player, error) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.Atoi(ref); err == nil {
		if p, ok := game.FindPlayer(players, id); ok {
			return p, nil
		}
		return game.Player{}, fmt.Errorf("player %d: %w", id, game.ErrUnknownPlayer)
	}
	for _, p := range players {
		if strings.EqualFold(p.Name, ref) {
			return p, nil
		}
	}
	return game.Player{}, fmt.Errorf("player %q: %w", ref, game.ErrUnknownPlayer)
}
