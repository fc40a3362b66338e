package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adiaz/rustico/internal/accounts"
	"github.com/adiaz/rustico/internal/api"
	"github.com/adiaz/rustico/internal/config"
	"github.com/adiaz/rustico/internal/investments"
	"github.com/adiaz/rustico/internal/movements"
	"github.com/adiaz/rustico/internal/store"
)

// alertTTL is how long a notification stays on screen before the expiry
// tick removes it.
var alertTTL = 3 * time.Second

// Backend is the slice of the api client the App drives directly; movement
// and account operations go through their controllers.
type Backend interface {
	Login(ctx context.Context, username string) error
	Register(ctx context.Context, username string) error
	GeneralInfo(ctx context.Context) (api.GeneralInfo, error)
}

// App ties together views.
type App struct {
	ctx     context.Context
	cfg     config.Config
	backend Backend
	session *store.Session
	alerts  *store.Alerts
	movs    *movements.Controller
	accts   *accounts.Loader
	invs    []investments.Position

	state appState
	modal modalState

	// login view
	username string

	// general view
	info *api.GeneralInfo

	// movements view
	movCursor int
	form      movementForm
	formOpen  bool

	// investments view
	invCursor int
	expanded  map[int]bool

	// new account modal
	acctForm accountForm

	// delete confirmation modal
	deleteIndex int
}

type appState string

const (
	viewLogin       appState = "login"
	viewGeneral     appState = "general"
	viewMovements   appState = "movements"
	viewInvestments appState = "investments"
)

type modalState string

const (
	modalNone          modalState = ""
	modalNewAccount    modalState = "newAccount"
	modalConfirmDelete modalState = "confirmDelete"
)

func New(ctx context.Context, cfg config.Config, backend Backend, session *store.Session, alerts *store.Alerts, movs *movements.Controller, accts *accounts.Loader) *App {
	state := viewLogin
	if session.Active() {
		state = viewGeneral
	}
	return &App{
		ctx:      ctx,
		cfg:      cfg,
		backend:  backend,
		session:  session,
		alerts:   alerts,
		movs:     movs,
		accts:    accts,
		invs:     investments.Example(),
		state:    state,
		form:     newMovementForm(),
		expanded: map[int]bool{},
	}
}

func (a *App) Init() tea.Cmd {
	if a.state == viewLogin {
		return nil
	}
	return tea.Batch(a.loadGeneralCmd(), a.refetchMovementsCmd(), a.refreshAccountsCmd())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		if a.state == viewLogin {
			return a.handleLoginKey(m)
		}
		if a.formOpen {
			return a.handleFormKey(m)
		}
		return a.handleKey(m)

	case loggedInMsg:
		a.session.LogIn()
		a.state = viewGeneral
		return a, tea.Batch(
			a.pushAlert(store.AlertMessage, "Logged in"),
			a.loadGeneralCmd(),
			a.refetchMovementsCmd(),
			a.refreshAccountsCmd(),
		)

	case generalMsg:
		info := api.GeneralInfo(m)
		a.info = &info

	case movementsLoadedMsg:
		if n := len(a.movs.Movements()); a.movCursor >= n {
			a.movCursor = 0
		}

	case accountsLoadedMsg:
		// listing lives in the loader; nothing to copy

	case movementCreatedMsg:
		a.formOpen = false
		a.form = newMovementForm()
		return a, tea.Batch(
			a.pushAlert(store.AlertMessage, "Movement created"),
			a.loadGeneralCmd(),
		)

	case movementDeletedMsg:
		if n := len(a.movs.Movements()); a.movCursor >= n {
			a.movCursor = 0
		}
		return a, tea.Batch(
			a.pushAlert(store.AlertMessage, "Movement deleted"),
			a.loadGeneralCmd(),
		)

	case accountCreatedMsg:
		a.modal = modalNone
		a.acctForm = accountForm{}
		return a, tea.Batch(
			a.pushAlert(store.AlertMessage, "Account created"),
			a.refreshAccountsCmd(),
		)

	case alertExpiredMsg:
		a.alerts.Remove(m.id)

	case errMsg:
		return a, a.reportError(m.err)
	}
	return a, nil
}

// reportError converts an operation failure into an alert; a 401 also kicks
// the app back to the login view.
func (a *App) reportError(err error) tea.Cmd {
	var auth *api.AuthError
	if errors.As(err, &auth) {
		a.state = viewLogin
		a.formOpen = false
		a.modal = modalNone
		return a.pushAlert(store.AlertError, "Session expired, please log in again")
	}
	return a.pushAlert(store.AlertError, userMessage(err))
}

// userMessage picks what the user sees for a failure. Server-supplied
// messages are shown verbatim; shape mismatches and transport failures get
// generic wording, the details are in the log.
func userMessage(err error) string {
	var srv *api.ServerError
	if errors.As(err, &srv) {
		return srv.Error()
	}
	var format *api.FormatError
	if errors.As(err, &format) {
		return "Unexpected response from server"
	}
	if errors.Is(err, movements.ErrIndexOutOfRange) {
		return "That movement is gone already"
	}
	return "Connection error"
}

// pushAlert adds a notification and schedules its removal. Alerts are keyed
// by id, so identical messages in quick succession still render separately.
func (a *App) pushAlert(kind store.AlertKind, content string) tea.Cmd {
	alert := a.alerts.Add(kind, content)
	return tea.Tick(alertTTL, func(time.Time) tea.Msg {
		return alertExpiredMsg{id: alert.ID}
	})
}

// commands

func (a *App) loginCmd(username string) tea.Cmd {
	return func() tea.Msg {
		if err := a.backend.Login(a.ctx, username); err != nil {
			return errMsg{err}
		}
		return loggedInMsg{}
	}
}

func (a *App) registerCmd(username string) tea.Cmd {
	return func() tea.Msg {
		if err := a.backend.Register(a.ctx, username); err != nil {
			return errMsg{err}
		}
		return loggedInMsg{}
	}
}

func (a *App) loadGeneralCmd() tea.Cmd {
	return func() tea.Msg {
		info, err := a.backend.GeneralInfo(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return generalMsg(info)
	}
}

func (a *App) refetchMovementsCmd() tea.Cmd {
	return func() tea.Msg {
		if err := a.movs.Refetch(a.ctx); err != nil {
			return errMsg{err}
		}
		return movementsLoadedMsg{}
	}
}

func (a *App) refreshAccountsCmd() tea.Cmd {
	a.accts.ConsumeCreated()
	return func() tea.Msg {
		if err := a.accts.Refresh(a.ctx); err != nil {
			return errMsg{err}
		}
		return accountsLoadedMsg{}
	}
}

func (a *App) createMovementCmd(draft api.Movement) tea.Cmd {
	return func() tea.Msg {
		if err := a.movs.Create(a.ctx, draft); err != nil {
			return errMsg{err}
		}
		return movementCreatedMsg{}
	}
}

func (a *App) deleteMovementCmd(index int) tea.Cmd {
	return func() tea.Msg {
		if err := a.movs.Delete(a.ctx, index); err != nil {
			return errMsg{err}
		}
		return movementDeletedMsg{}
	}
}

func (a *App) createAccountCmd(account api.Account) tea.Cmd {
	return func() tea.Msg {
		if err := a.accts.Create(a.ctx, account); err != nil {
			return errMsg{err}
		}
		return accountCreatedMsg{}
	}
}

// messages

type loggedInMsg struct{}

type generalMsg api.GeneralInfo

type movementsLoadedMsg struct{}

type accountsLoadedMsg struct{}

type movementCreatedMsg struct{}

type movementDeletedMsg struct{}

type accountCreatedMsg struct{}

type alertExpiredMsg struct{ id string }

type errMsg struct{ err error }
