// Package app wires the catering application together: one SQLite store,
// one session, the four managers, and the audit recorder. Dependencies are
// passed explicitly; there is no package-level instance.
package app

import (
	"context"
	"fmt"

	"github.com/mportesi/catering/internal/audit"
	"github.com/mportesi/catering/internal/event"
	"github.com/mportesi/catering/internal/kitchen"
	"github.com/mportesi/catering/internal/menu"
	"github.com/mportesi/catering/internal/platform/config"
	"github.com/mportesi/catering/internal/shift"
	"github.com/mportesi/catering/internal/storage/sqlite"
	"github.com/mportesi/catering/internal/user"
)

// App holds the wired application. The store is subscribed to every
// manager before the audit recorder, so an entry is only recorded for
// mutations that reached the database.
type App struct {
	Config  config.Config
	Store   *sqlite.Store
	Session *user.SingleSession
	Menus   *menu.Manager
	Events  *event.Manager
	Kitchen *kitchen.Manager
	Shifts  *shift.Manager
	Audit   *audit.Recorder
}

// New opens the database named by cfg and wires the managers.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	store, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	session := user.NewSingleSession()
	recorder := audit.NewRecorder(store, session)

	shifts, err := store.LoadAllShifts(ctx)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("load shifts: %w", err)
	}
	shiftMgr := shift.NewManager(store, shifts)

	menuMgr := menu.NewManager(session)
	menuMgr.Subscribe(store)
	menuMgr.Subscribe(recorder)

	eventMgr := event.NewManager()
	eventMgr.Subscribe(store)
	eventMgr.Subscribe(recorder)

	kitchenMgr := kitchen.NewManager(session, shiftMgr)
	kitchenMgr.Subscribe(store)
	kitchenMgr.Subscribe(recorder)

	return &App{
		Config:  cfg,
		Store:   store,
		Session: session,
		Menus:   menuMgr,
		Events:  eventMgr,
		Kitchen: kitchenMgr,
		Shifts:  shiftMgr,
		Audit:   recorder,
	}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}

// Login resolves a username to a stored user and makes it the current
// user. It returns the user, or nil when the username is unknown.
func (a *App) Login(ctx context.Context, username string) (*user.User, error) {
	u, err := a.Store.LoadUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if u == nil {
		return nil, nil
	}
	a.Session.SetCurrentUser(u)
	return u, nil
}
