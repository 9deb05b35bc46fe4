// Package seed loads initial dishes and orders from a YAML file.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"grubdash/pkg/dish"
	"grubdash/pkg/order"
	"grubdash/pkg/store"
)

// Data is the seed file layout.
type Data struct {
	Dishes []dish.Dish   `yaml:"dishes"`
	Orders []order.Order `yaml:"orders"`
}

// Parse decodes and checks seed data.
func Parse(b []byte) (Data, error) {
	var d Data
	if err := yaml.Unmarshal(b, &d); err != nil {
		return Data{}, fmt.Errorf("parsing seed data: %w", err)
	}
	for _, o := range d.Orders {
		if !o.Status.Valid() {
			return Data{}, fmt.Errorf("seed order %s: invalid status %q", o.ID, o.Status)
		}
	}
	for _, di := range d.Dishes {
		if di.Price <= 0 {
			return Data{}, fmt.Errorf("seed dish %s: price must be greater than 0", di.ID)
		}
	}
	return d, nil
}

// LoadFile reads path and inserts its records into s.
func LoadFile(ctx context.Context, s *store.Store, path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("reading seed file: %w", err)
	}
	d, err := Parse(b)
	if err != nil {
		return Data{}, err
	}
	if err := s.Dishes.Seed(ctx, d.Dishes...); err != nil {
		return Data{}, err
	}
	if err := s.Orders.Seed(ctx, d.Orders...); err != nil {
		return Data{}, err
	}
	return d, nil
}
