package api

import (
	"context"
	"net/http"
)

type credentials struct {
	Username string `json:"username"`
}

// Login opens a session for the given username.
func (c *Client) Login(ctx context.Context, username string) error {
	body, status, err := c.do(ctx, http.MethodPost, "/auth/login", credentials{Username: username})
	if err != nil {
		c.log.Error().Err(err).Msg("login")
		return err
	}
	if !ok(status) {
		err := serverErr(status, body)
		c.log.Error().Err(err).Msg("login")
		return err
	}
	return nil
}

// Register creates a user and opens a session for it.
func (c *Client) Register(ctx context.Context, username string) error {
	body, status, err := c.do(ctx, http.MethodPost, "/auth/register", credentials{Username: username})
	if err != nil {
		c.log.Error().Err(err).Msg("register")
		return err
	}
	if !ok(status) {
		err := serverErr(status, body)
		c.log.Error().Err(err).Msg("register")
		return err
	}
	return nil
}

// GeneralInfo fetches the aggregate income/expense/total summary for the
// logged-in user.
func (c *Client) GeneralInfo(ctx context.Context) (GeneralInfo, error) {
	info, err := c.generalInfo(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("fetch general info")
	}
	return info, err
}

func (c *Client) generalInfo(ctx context.Context) (GeneralInfo, error) {
	body, status, err := c.do(ctx, http.MethodGet, "/auth/me", nil)
	if err != nil {
		return GeneralInfo{}, err
	}
	if !ok(status) {
		return GeneralInfo{}, serverErr(status, body)
	}

	fields, err := objectFields(body, "generalInfo")
	if err != nil {
		return GeneralInfo{}, err
	}
	var info GeneralInfo
	if info.Income, err = fieldDecimal(fields, "localIncome"); err != nil {
		return GeneralInfo{}, err
	}
	if info.Expenses, err = fieldDecimal(fields, "localExpenses"); err != nil {
		return GeneralInfo{}, err
	}
	if info.Total, err = fieldDecimal(fields, "total"); err != nil {
		return GeneralInfo{}, err
	}
	return info, nil
}
