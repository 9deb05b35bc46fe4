// Package dish holds the menu item model, its validation rules and the
// repository contract. Dishes are never deleted.
package dish

import (
	"context"
	"encoding/json"
	"errors"

	"grubdash/pkg/apperr"
)

// Dish is a menu item.
type Dish struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price"`
	ImageURL    string  `json:"image_url" yaml:"image_url"`
}

// Repository stores dishes.
type Repository interface {
	Create(ctx context.Context, d Dish) (Dish, error)
	Get(ctx context.Context, id string) (Dish, error)
	List(ctx context.Context) ([]Dish, error)
	Update(ctx context.Context, d Dish) (Dish, error)
}

// ErrNotFound indicates the requested dish does not exist.
var ErrNotFound = errors.New("dish not found")

// Payload is the client-supplied dish inside the request envelope. Price is
// kept raw so a non-numeric value can be told apart from a missing one.
type Payload struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       json.RawMessage `json:"price"`
	ImageURL    string          `json:"image_url"`
}

// Validate checks the required fields in order and returns the first
// violation. On success it returns the dish without an id.
func Validate(p Payload) (Dish, error) {
	if p.Name == "" {
		return Dish{}, apperr.BadRequest("Dish must include a name")
	}
	if p.Description == "" {
		return Dish{}, apperr.BadRequest("Dish must include a description")
	}
	price, err := parsePrice(p.Price)
	if err != nil {
		return Dish{}, err
	}
	if p.ImageURL == "" {
		return Dish{}, apperr.BadRequest("Dish must include an image_url")
	}
	return Dish{
		Name:        p.Name,
		Description: p.Description,
		Price:       price,
		ImageURL:    p.ImageURL,
	}, nil
}

func parsePrice(raw json.RawMessage) (float64, error) {
	missing := apperr.BadRequest("Dish must include a price")
	invalid := apperr.BadRequest("Dish must have a price that is an integer greater than 0")

	if len(raw) == 0 {
		return 0, missing
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, invalid
	}
	switch p := v.(type) {
	case nil:
		return 0, missing
	case float64:
		if p == 0 {
			return 0, missing
		}
		if p < 0 {
			return 0, invalid
		}
		return p, nil
	case string:
		if p == "" {
			return 0, missing
		}
	case bool:
		if !p {
			return 0, missing
		}
	}
	return 0, invalid
}

// CheckID rejects a payload id that disagrees with the route id. An empty
// payload id is accepted.
func CheckID(payloadID, routeID string) error {
	if payloadID != "" && payloadID != routeID {
		return apperr.BadRequest("Dish id does not match route id. Dish: %s, Route: %s", payloadID, routeID)
	}
	return nil
}
