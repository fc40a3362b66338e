package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionStartsActive(t *testing.T) {
	t.Parallel()

	s := NewSession()
	require.True(t, s.Active())
}

func TestSessionLogOutLogIn(t *testing.T) {
	t.Parallel()

	s := NewSession()
	s.LogOut()
	require.False(t, s.Active())
	s.LogIn()
	require.True(t, s.Active())
}

func TestSessionSubscribeOnChangeOnly(t *testing.T) {
	t.Parallel()

	s := NewSession()
	var seen []bool
	s.Subscribe(func(active bool) { seen = append(seen, active) })

	s.LogIn() // already active, no change
	require.Empty(t, seen)

	s.LogOut()
	s.LogOut() // no change
	s.LogIn()
	require.Equal(t, []bool{false, true}, seen)
}
