package api

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// ListAccounts asks the backend how many accounts exist and fetches each one
// by position. The fetches run jointly; results keep index order. Any single
// failure fails the whole listing.
func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	body, status, err := c.do(ctx, http.MethodGet, "/accounts", nil)
	if err != nil {
		c.log.Error().Err(err).Msg("list accounts")
		return nil, err
	}
	if !ok(status) {
		err := serverErr(status, body)
		c.log.Error().Err(err).Msg("list accounts")
		return nil, err
	}

	fields, err := objectFields(body, "numberOfAccounts")
	if err != nil {
		return nil, err
	}
	n, err := fieldInt(fields, "numberOfAccounts")
	if err != nil {
		c.log.Error().Err(err).Msg("list accounts")
		return nil, err
	}
	if n < 0 {
		err := &FormatError{Field: "numberOfAccounts", Reason: "negative"}
		c.log.Error().Err(err).Msg("list accounts")
		return nil, err
	}

	accounts := make([]Account, n)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			a, err := c.GetAccount(gctx, i)
			if err != nil {
				return err
			}
			accounts[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetAccount fetches one account by its enumeration position.
func (c *Client) GetAccount(ctx context.Context, id int) (Account, error) {
	a, err := c.getAccount(ctx, id)
	if err != nil {
		c.log.Error().Err(err).Int("id", id).Msg("fetch account")
	}
	return a, err
}

func (c *Client) getAccount(ctx context.Context, id int) (Account, error) {
	body, status, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/accounts/%d", id), nil)
	if err != nil {
		return Account{}, err
	}
	if !ok(status) {
		return Account{}, serverErr(status, body)
	}

	fields, err := objectFields(body, "account")
	if err != nil {
		return Account{}, err
	}
	var a Account
	if a.Name, err = fieldString(fields, "name"); err != nil {
		return Account{}, err
	}
	if a.Amount, err = fieldDecimal(fields, "amount"); err != nil {
		return Account{}, err
	}
	return a, nil
}

// CreateAccount registers a new account with its opening balance.
func (c *Client) CreateAccount(ctx context.Context, a Account) error {
	payload := struct {
		Account struct {
			Name   string     `json:"name"`
			Amount jsonNumber `json:"amount"`
		} `json:"account"`
	}{}
	payload.Account.Name = a.Name
	payload.Account.Amount = jsonNumber{a.Amount}

	body, status, err := c.do(ctx, http.MethodPost, "/accounts", payload)
	if err != nil {
		c.log.Error().Err(err).Msg("create account")
		return err
	}
	if !ok(status) {
		err := serverErr(status, body)
		c.log.Error().Err(err).Msg("create account")
		return err
	}
	return nil
}
