// Package movements owns the in-memory movement list for the session. The
// controller is the only writer; views read snapshots and trigger the
// create/delete/refetch operations.
package movements

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/adiaz/rustico/internal/api"
)

// API is the slice of the backend client the controller needs.
type API interface {
	ListMovementIDs(ctx context.Context) ([]int, error)
	GetMovement(ctx context.Context, id int) (api.Movement, error)
	CreateMovement(ctx context.Context, m api.Movement) error
	DeleteMovement(ctx context.Context, id int) error
}

// Controller keeps the canonical movement list. The list is nil until the
// first refetch completes; after that it is always a slice, empty on
// failure, so views never regress to a loading state.
type Controller struct {
	api API
	log zerolog.Logger

	mu   sync.Mutex
	list []api.Movement
	gen  int
}

func New(a API, log zerolog.Logger) *Controller {
	return &Controller{api: a, log: log}
}

// Refetch loads the id index and then every movement jointly, assembling
// results in index order no matter which request finishes first. The batch
// is all-or-nothing: one bad item fails the whole load and the list becomes
// empty. A refetch started later supersedes this one; superseded results
// are discarded instead of clobbering newer state.
func (c *Controller) Refetch(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	ids, err := c.api.ListMovementIDs(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("refetch movements: index")
		c.store(gen, []api.Movement{})
		return err
	}

	out := make([]api.Movement, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			m, err := c.api.GetMovement(gctx, id)
			if err != nil {
				return err
			}
			out[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.log.Error().Err(err).Msg("refetch movements: batch")
		c.store(gen, []api.Movement{})
		return err
	}

	c.store(gen, out)
	return nil
}

// store installs list only if no newer refetch has started since gen.
func (c *Controller) store(gen int, list []api.Movement) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.list = list
}

// Delete removes the movement at the given list index: the server delete is
// awaited first, and only a confirmed delete triggers the refetch. On any
// failure the local list is left untouched.
func (c *Controller) Delete(ctx context.Context, index int) error {
	c.mu.Lock()
	if index < 0 || index >= len(c.list) {
		c.mu.Unlock()
		return ErrIndexOutOfRange
	}
	id := c.list[index].ID
	c.mu.Unlock()

	if err := c.api.DeleteMovement(ctx, id); err != nil {
		return err
	}
	return c.Refetch(ctx)
}

// Create sends the draft and refetches on success so the backend-assigned
// id lands in local state; deletes address movements by id, so appending
// the draft locally would leave it unaddressable.
func (c *Controller) Create(ctx context.Context, draft api.Movement) error {
	if err := c.api.CreateMovement(ctx, draft); err != nil {
		return err
	}
	return c.Refetch(ctx)
}

// Movements returns a snapshot of the current list. A nil return means the
// first load has not completed yet.
func (c *Controller) Movements() []api.Movement {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.list == nil {
		return nil
	}
	out := make([]api.Movement, len(c.list))
	copy(out, c.list)
	return out
}

// Loaded reports whether any refetch has completed, successfully or not.
func (c *Controller) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list != nil
}
