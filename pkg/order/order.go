// Package order holds the order model, its status lifecycle, validation rules
// and the repository contract.
package order

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"slices"

	"grubdash/pkg/apperr"
)

// Item is one dish line of an order.
type Item struct {
	DishID   string `json:"dishId" yaml:"dishId"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// Order represents a customer order.
type Order struct {
	ID           string `json:"id" yaml:"id"`
	DeliverTo    string `json:"deliverTo" yaml:"deliverTo"`
	MobileNumber string `json:"mobileNumber" yaml:"mobileNumber"`
	Status       Status `json:"status" yaml:"status"`
	Dishes       []Item `json:"dishes" yaml:"dishes"`
}

// Clone returns a copy that shares no memory with o.
func (o Order) Clone() Order {
	o.Dishes = slices.Clone(o.Dishes)
	return o
}

// Guard vets the stored order right before a mutation is applied.
type Guard func(current Order) error

// Repository defines behavior for storing orders.
type Repository interface {
	Create(ctx context.Context, o Order) (Order, error)
	Get(ctx context.Context, id string) (Order, error)
	List(ctx context.Context) ([]Order, error)
	Update(ctx context.Context, o Order, guard Guard) (Order, error)
	Delete(ctx context.Context, id string, guard Guard) error
}

// ErrNotFound indicates the requested order does not exist.
var ErrNotFound = errors.New("order not found")

// Payload is the client-supplied order inside the request envelope. Dishes
// is kept raw so shape errors map to field messages instead of decode
// failures.
type Payload struct {
	ID           string          `json:"id"`
	DeliverTo    string          `json:"deliverTo"`
	MobileNumber string          `json:"mobileNumber"`
	Status       string          `json:"status"`
	Dishes       json.RawMessage `json:"dishes"`
}

// ValidateInfo checks deliverTo, mobileNumber and dishes in that order and
// returns the first violation. Status and id are left empty.
func ValidateInfo(p Payload) (Order, error) {
	if p.DeliverTo == "" {
		return Order{}, apperr.BadRequest("Order must include a deliverTo")
	}
	if p.MobileNumber == "" {
		return Order{}, apperr.BadRequest("Order must include a mobileNumber")
	}
	items, err := parseItems(p.Dishes)
	if err != nil {
		return Order{}, err
	}
	return Order{
		DeliverTo:    p.DeliverTo,
		MobileNumber: p.MobileNumber,
		Dishes:       items,
	}, nil
}

func parseItems(raw json.RawMessage) ([]Item, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, apperr.BadRequest("Order must include a dish")
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil || len(entries) == 0 {
		return nil, apperr.BadRequest("Order must include at least one dish")
	}

	items := make([]Item, 0, len(entries))
	for i, e := range entries {
		var entry struct {
			DishID   string          `json:"dishId"`
			Quantity json.RawMessage `json:"quantity"`
		}
		if err := json.Unmarshal(e, &entry); err != nil {
			return nil, quantityErr(i)
		}
		q, ok := positiveInt(entry.Quantity)
		if !ok {
			return nil, quantityErr(i)
		}
		items = append(items, Item{DishID: entry.DishID, Quantity: q})
	}
	return items, nil
}

func quantityErr(index int) error {
	return apperr.BadRequest("Dish %d must have a quantity that is an integer greater than 0", index)
}

func positiveInt(raw json.RawMessage) (int, bool) {
	var v any
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok || f <= 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// CheckID rejects a payload id that disagrees with the route id. An empty
// payload id is accepted.
func CheckID(payloadID, routeID string) error {
	if payloadID != "" && payloadID != routeID {
		return apperr.BadRequest("Order id does not match route id. Order: %s, Route: %s", payloadID, routeID)
	}
	return nil
}

// CheckStatus validates a requested status against the stored one.
func CheckStatus(current Status, requested string) (Status, error) {
	to := Status(requested)
	if !to.Valid() {
		return "", apperr.BadRequest("Order must have a status of pending, preparing, out-for-delivery, delivered")
	}
	if !CanTransition(current, to) {
		return "", apperr.BadRequest("A delivered order cannot be changed")
	}
	return to, nil
}

// InitialStatus returns the status of a new order. An empty request means
// pending.
func InitialStatus(requested string) (Status, error) {
	if requested == "" {
		return StatusPending, nil
	}
	s := Status(requested)
	if !s.Valid() {
		return "", apperr.BadRequest("Order must have a status of pending, preparing, out-for-delivery, delivered")
	}
	return s, nil
}

// Mutable is the Guard applied to updates.
func Mutable(current Order) error {
	if current.Status.Terminal() {
		return apperr.BadRequest("A delivered order cannot be changed")
	}
	return nil
}

// Deletable is the Guard applied to deletes.
func Deletable(current Order) error {
	if current.Status != StatusPending {
		return apperr.BadRequest("An order cannot be deleted unless it is pending")
	}
	return nil
}
