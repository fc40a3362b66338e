package accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/adiaz/rustico/internal/api"
)

type fakeAPI struct {
	list    []api.Account
	listErr error

	created   []api.Account
	createErr error
}

func (f *fakeAPI) ListAccounts(ctx context.Context) ([]api.Account, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]api.Account, len(f.list))
	copy(out, f.list)
	return out, nil
}

func (f *fakeAPI) CreateAccount(ctx context.Context, a api.Account) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, a)
	f.list = append(f.list, a)
	return nil
}

func acct(name string, amount int64) api.Account {
	return api.Account{Name: name, Amount: decimal.NewFromInt(amount)}
}

func TestRefreshStoresListing(t *testing.T) {
	t.Parallel()

	backend := &fakeAPI{list: []api.Account{acct("Checking", 100), acct("Savings", 250)}}
	l := NewLoader(backend, zerolog.Nop())

	require.False(t, l.Loaded())
	require.Nil(t, l.Accounts())

	require.NoError(t, l.Refresh(context.Background()))
	require.True(t, l.Loaded())
	require.Equal(t, []api.Account{acct("Checking", 100), acct("Savings", 250)}, l.Accounts())
}

func TestRefreshFailureYieldsEmptyNotNil(t *testing.T) {
	t.Parallel()

	backend := &fakeAPI{listErr: errors.New("boom")}
	l := NewLoader(backend, zerolog.Nop())

	require.Error(t, l.Refresh(context.Background()))
	require.True(t, l.Loaded())
	require.NotNil(t, l.Accounts())
	require.Empty(t, l.Accounts())
}

func TestCreateMarksCreated(t *testing.T) {
	t.Parallel()

	backend := &fakeAPI{}
	l := NewLoader(backend, zerolog.Nop())

	require.NoError(t, l.Create(context.Background(), acct("Savings", 50)))
	require.Len(t, backend.created, 1)
	require.True(t, l.ConsumeCreated())
	// consuming clears the flag
	require.False(t, l.ConsumeCreated())
}

func TestCreateFailureLeavesFlagClear(t *testing.T) {
	t.Parallel()

	backend := &fakeAPI{createErr: errors.New("rejected")}
	l := NewLoader(backend, zerolog.Nop())

	require.Error(t, l.Create(context.Background(), acct("Savings", 50)))
	require.False(t, l.ConsumeCreated())
}

func TestAccountsReturnsSnapshot(t *testing.T) {
	t.Parallel()

	backend := &fakeAPI{list: []api.Account{acct("Checking", 100)}}
	l := NewLoader(backend, zerolog.Nop())
	require.NoError(t, l.Refresh(context.Background()))

	snap := l.Accounts()
	snap[0].Name = "mutated"
	require.Equal(t, "Checking", l.Accounts()[0].Name)
}
