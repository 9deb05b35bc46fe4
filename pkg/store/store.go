// Package store owns the dish and order collections for one process.
package store

import (
	dishmem "grubdash/pkg/dish/memory"
	"grubdash/pkg/idgen"
	ordermem "grubdash/pkg/order/memory"
)

// Store bundles both collections. Each collection has its own lock.
type Store struct {
	Dishes *dishmem.Repository
	Orders *ordermem.Repository
}

// New builds an empty store with one id generator per collection.
func New(dishIDs, orderIDs idgen.Generator) *Store {
	return &Store{
		Dishes: dishmem.New(dishIDs),
		Orders: ordermem.New(orderIDs),
	}
}
