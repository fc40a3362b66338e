// Package accounts loads the account list and re-loads it when a sibling
// view reports that a new account was just created.
package accounts

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/adiaz/rustico/internal/api"
)

// API is the slice of the backend client the loader needs.
type API interface {
	ListAccounts(ctx context.Context) ([]api.Account, error)
	CreateAccount(ctx context.Context, a api.Account) error
}

// Loader keeps the most recent account listing. On failure the stored slice
// becomes empty rather than nil, so dependents never sit in a permanent
// loading state after an error.
type Loader struct {
	api API
	log zerolog.Logger

	mu       sync.Mutex
	accounts []api.Account
	created  bool
}

func NewLoader(a API, log zerolog.Logger) *Loader {
	return &Loader{api: a, log: log}
}

// Refresh fetches the full listing.
func (l *Loader) Refresh(ctx context.Context) error {
	list, err := l.api.ListAccounts(ctx)
	if err != nil {
		l.log.Error().Err(err).Msg("refresh accounts")
		list = []api.Account{}
	}

	l.mu.Lock()
	l.accounts = list
	l.mu.Unlock()
	return err
}

// Create registers the account and marks the created flag so the next
// consumer refreshes the listing.
func (l *Loader) Create(ctx context.Context, a api.Account) error {
	if err := l.api.CreateAccount(ctx, a); err != nil {
		return err
	}
	l.MarkCreated()
	return nil
}

// MarkCreated records that an account was just created elsewhere.
func (l *Loader) MarkCreated() {
	l.mu.Lock()
	l.created = true
	l.mu.Unlock()
}

// ConsumeCreated reports and clears the created flag. Clearing on
// consumption is what stops a refresh from re-triggering itself.
func (l *Loader) ConsumeCreated() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	created := l.created
	l.created = false
	return created
}

// Accounts returns a snapshot; nil means the first refresh has not finished.
func (l *Loader) Accounts() []api.Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.accounts == nil {
		return nil
	}
	out := make([]api.Account, len(l.accounts))
	copy(out, l.accounts)
	return out
}

// Loaded reports whether any refresh has completed.
func (l *Loader) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.accounts != nil
}
