package api

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestLoginSendsUsername(t *testing.T) {
	t.Parallel()

	var path string
	var body []byte
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		body, _ = io.ReadAll(r.Body)
	}), nil)

	require.NoError(t, c.Login(context.Background(), "maria"))
	require.Equal(t, "/auth/login", path)
	require.JSONEq(t, `{"username": "maria"}`, string(body))

	require.NoError(t, c.Register(context.Background(), "maria"))
	require.Equal(t, "/auth/register", path)
}

func TestLoginServerError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "User not found"}`))
	}), nil)

	err := c.Login(context.Background(), "nobody")
	var srv *ServerError
	require.ErrorAs(t, err, &srv)
	require.Equal(t, "User not found", srv.Message)
}

func TestGeneralInfo(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/me", r.URL.Path)
		_, _ = w.Write([]byte(`{"localIncome": 1200.50, "localExpenses": 300, "total": 900.50}`))
	}), nil)

	info, err := c.GeneralInfo(context.Background())
	require.NoError(t, err)
	require.True(t, info.Income.Equal(decimal.RequireFromString("1200.50")))
	require.True(t, info.Expenses.Equal(decimal.NewFromInt(300)))
	require.True(t, info.Total.Equal(decimal.RequireFromString("900.50")))
}

func TestGeneralInfoBadShape(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"localIncome": 1, "total": 2}`))
	}), nil)

	_, err := c.GeneralInfo(context.Background())
	var format *FormatError
	require.ErrorAs(t, err, &format)
	require.Equal(t, "localExpenses", format.Field)
}
