package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// movementPayload is the create body. It deliberately has no id field, so a
// draft's sentinel id can never leak into a POST.
type movementPayload struct {
	Type        MovementType `json:"type"`
	Amount      jsonNumber   `json:"amount"`
	Date        string       `json:"date,omitempty"`
	Description string       `json:"description,omitempty"`
	Origin      string       `json:"origin,omitempty"`
	Destination string       `json:"destination,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
}

// ListMovementIDs fetches the movement index: the backend returns positions,
// not records.
func (c *Client) ListMovementIDs(ctx context.Context) ([]int, error) {
	ids, err := c.listMovementIDs(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("list movement ids")
	}
	return ids, err
}

func (c *Client) listMovementIDs(ctx context.Context) ([]int, error) {
	body, status, err := c.do(ctx, http.MethodGet, "/movements", nil)
	if err != nil {
		return nil, err
	}
	if !ok(status) {
		return nil, serverErr(status, body)
	}

	fields, err := objectFields(body, "movements")
	if err != nil {
		return nil, err
	}
	raw, err := fieldRaw(fields, "movements")
	if err != nil {
		return nil, err
	}
	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, &FormatError{Field: "movements", Reason: "not an array of integers"}
	}
	return ids, nil
}

// GetMovement fetches a single movement by id and validates its shape. The
// returned movement carries the requested id; the backend does not echo it.
func (c *Client) GetMovement(ctx context.Context, id int) (Movement, error) {
	m, err := c.getMovement(ctx, id)
	if err != nil {
		c.log.Error().Err(err).Int("id", id).Msg("fetch movement")
	}
	return m, err
}

func (c *Client) getMovement(ctx context.Context, id int) (Movement, error) {
	body, status, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/movements/%d", id), nil)
	if err != nil {
		return Movement{}, err
	}
	if !ok(status) {
		return Movement{}, serverErr(status, body)
	}

	envelope, err := objectFields(body, "movement")
	if err != nil {
		return Movement{}, err
	}
	raw, err := fieldRaw(envelope, "movement")
	if err != nil {
		return Movement{}, err
	}
	fields, err := objectFields(raw, "movement")
	if err != nil {
		return Movement{}, err
	}

	m := Movement{ID: id}
	typ, err := fieldString(fields, "type")
	if err != nil {
		return Movement{}, err
	}
	m.Type = MovementType(typ)
	if !m.Type.Valid() {
		return Movement{}, &FormatError{Field: "type", Reason: fmt.Sprintf("unknown movement type %q", typ)}
	}
	if m.Amount, err = fieldDecimal(fields, "amount"); err != nil {
		return Movement{}, err
	}
	if m.Date, err = fieldString(fields, "date"); err != nil {
		return Movement{}, err
	}
	if m.Description, err = fieldString(fields, "description"); err != nil {
		return Movement{}, err
	}
	if m.Origin, err = optionalString(fields, "origin"); err != nil {
		return Movement{}, err
	}
	if m.Destination, err = optionalString(fields, "destination"); err != nil {
		return Movement{}, err
	}
	if m.Tags, err = optionalStrings(fields, "tags"); err != nil {
		return Movement{}, err
	}
	return m, nil
}

// CreateMovement persists a draft. The draft's id is stripped regardless of
// its value; the backend assigns the real one.
func (c *Client) CreateMovement(ctx context.Context, m Movement) error {
	payload := struct {
		Movement movementPayload `json:"movement"`
	}{movementPayload{
		Type:        m.Type,
		Amount:      jsonNumber{m.Amount},
		Date:        m.Date,
		Description: m.Description,
		Origin:      m.Origin,
		Destination: m.Destination,
		Tags:        m.Tags,
	}}

	body, status, err := c.do(ctx, http.MethodPost, "/movements", payload)
	if err != nil {
		c.log.Error().Err(err).Msg("create movement")
		return err
	}
	if !ok(status) {
		err := serverErr(status, body)
		c.log.Error().Err(err).Msg("create movement")
		return err
	}
	return nil
}

// DeleteMovement removes the movement at the given backend position.
func (c *Client) DeleteMovement(ctx context.Context, id int) error {
	body, status, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/movements/%d", id), nil)
	if err != nil {
		c.log.Error().Err(err).Int("id", id).Msg("delete movement")
		return err
	}
	if !ok(status) {
		err := serverErr(status, body)
		c.log.Error().Err(err).Int("id", id).Msg("delete movement")
		return err
	}
	return nil
}
