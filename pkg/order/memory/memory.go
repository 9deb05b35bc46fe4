// Package memory implements an in-memory order repository.
package memory

import (
	"context"
	"fmt"
	"sync"

	"grubdash/pkg/idgen"
	"grubdash/pkg/order"
)

// Repository keeps orders in insertion order behind a single lock. Guards
// run while the lock is held, so a check and its mutation are atomic.
type Repository struct {
	mu     sync.RWMutex
	ids    idgen.Generator
	orders []order.Order
}

// New creates an empty repository drawing ids from ids.
func New(ids idgen.Generator) *Repository {
	return &Repository{ids: ids}
}

func (r *Repository) index(id string) int {
	for i := range r.orders {
		if r.orders[i].ID == id {
			return i
		}
	}
	return -1
}

// Create assigns a fresh id and appends the order.
func (r *Repository) Create(ctx context.Context, o order.Order) (order.Order, error) {
	id, err := r.ids.Next(ctx)
	if err != nil {
		return order.Order{}, fmt.Errorf("next order id: %w", err)
	}
	o = o.Clone()
	o.ID = id

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, o)
	return o.Clone(), nil
}

// Seed inserts orders keeping their ids. Duplicate ids are rejected.
func (r *Repository) Seed(ctx context.Context, orders ...order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range orders {
		if o.ID == "" {
			return fmt.Errorf("seed order for %q has no id", o.DeliverTo)
		}
		if r.index(o.ID) >= 0 {
			return fmt.Errorf("seed order %s: duplicate id", o.ID)
		}
		if obs, ok := r.ids.(idgen.Observer); ok {
			obs.Observe(o.ID)
		}
		r.orders = append(r.orders, o.Clone())
	}
	return nil
}

// Get retrieves an order by ID.
func (r *Repository) Get(ctx context.Context, id string) (order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.index(id)
	if i < 0 {
		return order.Order{}, order.ErrNotFound
	}
	return r.orders[i].Clone(), nil
}

// List returns a snapshot of all orders.
func (r *Repository) List(ctx context.Context) ([]order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o.Clone())
	}
	return out, nil
}

// Update replaces every field but the id once guard accepts the stored
// order.
func (r *Repository) Update(ctx context.Context, o order.Order, guard order.Guard) (order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(o.ID)
	if i < 0 {
		return order.Order{}, order.ErrNotFound
	}
	if guard != nil {
		if err := guard(r.orders[i].Clone()); err != nil {
			return order.Order{}, err
		}
	}
	r.orders[i] = o.Clone()
	return o.Clone(), nil
}

// Delete removes an order once guard accepts it.
func (r *Repository) Delete(ctx context.Context, id string, guard order.Guard) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return order.ErrNotFound
	}
	if guard != nil {
		if err := guard(r.orders[i].Clone()); err != nil {
			return err
		}
	}
	r.orders = append(r.orders[:i], r.orders[i+1:]...)
	return nil
}
