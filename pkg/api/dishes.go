package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"grubdash/pkg/apperr"
	"grubdash/pkg/dish"
	"grubdash/pkg/otel"
	"grubdash/pkg/pipeline"
	"grubdash/pkg/web"
)

// dishRequest is the state threaded through a dish pipeline.
type dishRequest struct {
	w       http.ResponseWriter
	r       *http.Request
	routeID string
	payload dish.Payload
	found   dish.Dish
	valid   dish.Dish
}

type dishChain = pipeline.Chain[dishRequest]

func (a *API) buildDishChains() {
	a.readDish = pipeline.New(a.dishExists)
	a.createDish = pipeline.New(decodeDish, dishIsValid)
	a.updateDish = pipeline.New(a.dishExists, decodeDish, dishIsValid, dishHasValidID)
}

func newDishRequest(w http.ResponseWriter, r *http.Request) *dishRequest {
	return &dishRequest{w: w, r: r, routeID: mux.Vars(r)["dishId"]}
}

func (a *API) dishExists(ctx context.Context, s *dishRequest) error {
	d, err := a.dishes.Get(ctx, s.routeID)
	if errors.Is(err, dish.ErrNotFound) {
		return apperr.NotFound("Dish does not exist: %s", s.routeID)
	}
	if err != nil {
		return fmt.Errorf("get dish %s: %w", s.routeID, err)
	}
	s.found = d
	return nil
}

func decodeDish(_ context.Context, s *dishRequest) error {
	return web.Decode(s.w, s.r, &s.payload)
}

func dishIsValid(_ context.Context, s *dishRequest) error {
	d, err := dish.Validate(s.payload)
	if err != nil {
		return err
	}
	s.valid = d
	return nil
}

func dishHasValidID(_ context.Context, s *dishRequest) error {
	return dish.CheckID(s.payload.ID, s.found.ID)
}

// listDishesHandler lists dishes.
// @Summary List dishes
// @Produce json
// @Success 200 {object} web.Envelope[[]dish.Dish]
// @Router /dishes [get]
func (a *API) listDishesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listDishesHandler")
	defer span.End()

	dishes, err := a.dishes.List(ctx)
	if err != nil {
		a.fail(ctx, w, fmt.Errorf("list dishes: %w", err))
		return
	}
	a.respond(ctx, w, http.StatusOK, dishes)
}

// getDishHandler retrieves a dish by ID.
// @Summary Get dish
// @Produce json
// @Param dishId path string true "Dish ID"
// @Success 200 {object} web.Envelope[dish.Dish]
// @Failure 404 {object} web.ErrorBody
// @Router /dishes/{dishId} [get]
func (a *API) getDishHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getDishHandler")
	defer span.End()

	s := newDishRequest(w, r)
	if err := a.readDish.Run(ctx, s); err != nil {
		a.fail(ctx, w, err)
		return
	}
	a.respond(ctx, w, http.StatusOK, s.found)
}

// createDishHandler creates a new dish.
// @Summary Create dish
// @Accept json
// @Produce json
// @Param dish body web.Envelope[dish.Payload] true "Dish"
// @Success 201 {object} web.Envelope[dish.Dish]
// @Failure 400 {object} web.ErrorBody
// @Router /dishes [post]
func (a *API) createDishHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createDishHandler")
	defer span.End()

	s := newDishRequest(w, r)
	if err := a.createDish.Run(ctx, s); err != nil {
		a.fail(ctx, w, err)
		return
	}
	d, err := a.dishes.Create(ctx, s.valid)
	if err != nil {
		a.fail(ctx, w, fmt.Errorf("create dish: %w", err))
		return
	}
	a.log.Info(ctx, "dish created", "dish_id", d.ID)
	a.respond(ctx, w, http.StatusCreated, d)
}

// updateDishHandler overwrites a dish.
// @Summary Update dish
// @Accept json
// @Produce json
// @Param dishId path string true "Dish ID"
// @Param dish body web.Envelope[dish.Payload] true "Dish"
// @Success 200 {object} web.Envelope[dish.Dish]
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.ErrorBody
// @Router /dishes/{dishId} [put]
func (a *API) updateDishHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateDishHandler")
	defer span.End()

	s := newDishRequest(w, r)
	if err := a.updateDish.Run(ctx, s); err != nil {
		a.fail(ctx, w, err)
		return
	}
	s.valid.ID = s.found.ID
	d, err := a.dishes.Update(ctx, s.valid)
	if err != nil {
		a.fail(ctx, w, fmt.Errorf("update dish: %w", err))
		return
	}
	a.respond(ctx, w, http.StatusOK, d)
}
