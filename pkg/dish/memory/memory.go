// Package memory implements an in-memory dish repository.
package memory

import (
	"context"
	"fmt"
	"sync"

	"grubdash/pkg/dish"
	"grubdash/pkg/idgen"
)

// Repository keeps dishes in insertion order behind a single lock.
type Repository struct {
	mu     sync.RWMutex
	ids    idgen.Generator
	dishes []dish.Dish
}

// New creates an empty repository drawing ids from ids.
func New(ids idgen.Generator) *Repository {
	return &Repository{ids: ids}
}

func (r *Repository) index(id string) int {
	for i := range r.dishes {
		if r.dishes[i].ID == id {
			return i
		}
	}
	return -1
}

// Create assigns a fresh id and appends the dish.
func (r *Repository) Create(ctx context.Context, d dish.Dish) (dish.Dish, error) {
	id, err := r.ids.Next(ctx)
	if err != nil {
		return dish.Dish{}, fmt.Errorf("next dish id: %w", err)
	}
	d.ID = id

	r.mu.Lock()
	defer r.mu.Unlock()
	r.dishes = append(r.dishes, d)
	return d, nil
}

// Seed inserts dishes keeping their ids. Duplicate ids are rejected.
func (r *Repository) Seed(ctx context.Context, dishes ...dish.Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range dishes {
		if d.ID == "" {
			return fmt.Errorf("seed dish %q has no id", d.Name)
		}
		if r.index(d.ID) >= 0 {
			return fmt.Errorf("seed dish %s: duplicate id", d.ID)
		}
		if o, ok := r.ids.(idgen.Observer); ok {
			o.Observe(d.ID)
		}
		r.dishes = append(r.dishes, d)
	}
	return nil
}

// Get retrieves a dish by ID.
func (r *Repository) Get(ctx context.Context, id string) (dish.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.index(id)
	if i < 0 {
		return dish.Dish{}, dish.ErrNotFound
	}
	return r.dishes[i], nil
}

// List returns a snapshot of all dishes.
func (r *Repository) List(ctx context.Context) ([]dish.Dish, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]dish.Dish, len(r.dishes))
	copy(out, r.dishes)
	return out, nil
}

// Update overwrites every field but the id.
func (r *Repository) Update(ctx context.Context, d dish.Dish) (dish.Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(d.ID)
	if i < 0 {
		return dish.Dish{}, dish.ErrNotFound
	}
	r.dishes[i] = d
	return d, nil
}
