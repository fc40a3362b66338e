package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlertsInsertionOrder(t *testing.T) {
	t.Parallel()

	alerts := NewAlerts()
	first := alerts.Add(AlertMessage, "X")
	second := alerts.Add(AlertError, "Y")

	list := alerts.List()
	require.Len(t, list, 2)
	require.Equal(t, AlertMessage, list[0].Kind)
	require.Equal(t, "X", list[0].Content)
	require.Equal(t, AlertError, list[1].Kind)
	require.Equal(t, "Y", list[1].Content)
	require.NotEqual(t, first.ID, second.ID)

	alerts.Remove(first.ID)
	list = alerts.List()
	require.Len(t, list, 1)
	require.Equal(t, "Y", list[0].Content)
}

func TestAlertsNoContentDedup(t *testing.T) {
	t.Parallel()

	alerts := NewAlerts()
	a := alerts.Add(AlertMessage, "same")
	b := alerts.Add(AlertMessage, "same")
	require.NotEqual(t, a.ID, b.ID)
	require.Len(t, alerts.List(), 2)

	alerts.Remove(a.ID)
	list := alerts.List()
	require.Len(t, list, 1)
	require.Equal(t, b.ID, list[0].ID)
}

func TestAlertsClear(t *testing.T) {
	t.Parallel()

	alerts := NewAlerts()
	alerts.Add(AlertMessage, "one")
	alerts.Add(AlertError, "two")
	alerts.Clear()
	require.Empty(t, alerts.List())
}

func TestAlertsRemoveUnknownID(t *testing.T) {
	t.Parallel()

	alerts := NewAlerts()
	alerts.Add(AlertMessage, "keep")
	alerts.Remove("not-there")
	require.Len(t, alerts.List(), 1)
}

func TestAlertsSubscribe(t *testing.T) {
	t.Parallel()

	alerts := NewAlerts()
	fired := 0
	alerts.Subscribe(func() { fired++ })

	a := alerts.Add(AlertMessage, "x")
	require.Equal(t, 1, fired)
	alerts.Remove(a.ID)
	require.Equal(t, 2, fired)
	alerts.Remove(a.ID) // already gone, no notification
	require.Equal(t, 2, fired)
}
