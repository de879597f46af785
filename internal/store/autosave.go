package store

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/sheepshead/internal/session"
)

// Autosaver is a session observer that writes every change through to a
// store. A reset clears the stored game instead of saving the fresh one.
type Autosaver struct {
	ctx    context.Context
	store  Store
	logger *log.Logger
	err    error
}

func NewAutosaver(ctx context.Context, s Store, logger *log.Logger) *Autosaver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Autosaver{ctx: ctx, store: s, logger: logger.WithPrefix("autosave")}
}

func (a *Autosaver) OnEvent(e session.Event) {
	var err error
	if e.Kind == session.EventReset {
		err = a.store.Clear(a.ctx)
	} else {
		err = a.store.Save(a.ctx, e.Snapshot)
	}
	if err != nil {
		a.logger.Error("Failed to persist game", "event", e.Kind, "error", err)
		a.err = err
		return
	}
	a.logger.Debug("Persisted game", "event", e.Kind)
}

// Err returns the most recent persistence failure
func (a *Autosaver) Err() error {
	return a.err
}

// Open continues the stored game when there is one, otherwise it starts a
// fresh game. The returned flag reports which happened.
func Open(ctx context.Context, s Store, opts session.Options) (*session.Session, bool, error) {
	snap, ok, err := s.Load(ctx)
	if err != nil {
		return nil, false, err
	}
	if ok {
		sess, err := session.Restore(opts, snap)
		if err == nil {
			return sess, true, nil
		}
		if opts.Logger != nil {
			opts.Logger.Warn("Starting a fresh game", "error", err)
		}
	}
	sess, err := session.New(opts)
	return sess, false, err
}
