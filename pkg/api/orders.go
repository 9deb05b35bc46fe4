package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"grubdash/pkg/apperr"
	"grubdash/pkg/events"
	"grubdash/pkg/order"
	"grubdash/pkg/otel"
	"grubdash/pkg/pipeline"
	"grubdash/pkg/web"
)

// orderRequest is the state threaded through an order pipeline.
type orderRequest struct {
	w       http.ResponseWriter
	r       *http.Request
	routeID string
	payload order.Payload
	found   order.Order
	valid   order.Order
}

type orderChain = pipeline.Chain[orderRequest]

func (a *API) buildOrderChains() {
	a.readOrder = pipeline.New(a.orderExists)
	a.createOrder = pipeline.New(decodeOrder, orderHasValidInfo, orderHasInitialStatus)
	a.updateOrder = pipeline.New(a.orderExists, decodeOrder, orderHasValidInfo, orderHasValidID, orderHasValidStatus)
	a.deleteOrder = pipeline.New(a.orderExists, pipeline.Check(orderIsDeletable))
}

func newOrderRequest(w http.ResponseWriter, r *http.Request) *orderRequest {
	return &orderRequest{w: w, r: r, routeID: mux.Vars(r)["orderId"]}
}

func orderNotFound(id string) error {
	return apperr.NotFound("Order id could not be found: %s", id)
}

func (a *API) orderExists(ctx context.Context, s *orderRequest) error {
	o, err := a.orders.Get(ctx, s.routeID)
	if errors.Is(err, order.ErrNotFound) {
		return orderNotFound(s.routeID)
	}
	if err != nil {
		return fmt.Errorf("get order %s: %w", s.routeID, err)
	}
	s.found = o
	return nil
}

func decodeOrder(_ context.Context, s *orderRequest) error {
	return web.Decode(s.w, s.r, &s.payload)
}

func orderHasValidInfo(_ context.Context, s *orderRequest) error {
	o, err := order.ValidateInfo(s.payload)
	if err != nil {
		return err
	}
	s.valid = o
	return nil
}

func orderHasInitialStatus(_ context.Context, s *orderRequest) error {
	st, err := order.InitialStatus(s.payload.Status)
	if err != nil {
		return err
	}
	s.valid.Status = st
	return nil
}

func orderHasValidID(_ context.Context, s *orderRequest) error {
	return order.CheckID(s.payload.ID, s.found.ID)
}

func orderHasValidStatus(_ context.Context, s *orderRequest) error {
	st, err := order.CheckStatus(s.found.Status, s.payload.Status)
	if err != nil {
		return err
	}
	s.valid.Status = st
	return nil
}

func orderIsDeletable(s *orderRequest) error {
	return order.Deletable(s.found)
}

// mapStoreErr turns a repository miss during the final mutation into the
// same 404 the lookup step reports.
func mapStoreErr(id, op string, err error) error {
	if errors.Is(err, order.ErrNotFound) {
		return orderNotFound(id)
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return fmt.Errorf("%s order %s: %w", op, id, err)
}

// listOrdersHandler lists orders.
// @Summary List orders
// @Produce json
// @Success 200 {object} web.Envelope[[]order.Order]
// @Router /orders [get]
func (a *API) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listOrdersHandler")
	defer span.End()

	orders, err := a.orders.List(ctx)
	if err != nil {
		a.fail(ctx, w, fmt.Errorf("list orders: %w", err))
		return
	}
	a.respond(ctx, w, http.StatusOK, orders)
}

// getOrderHandler retrieves an order by ID.
// @Summary Get order
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} web.Envelope[order.Order]
// @Failure 404 {object} web.ErrorBody
// @Router /orders/{orderId} [get]
func (a *API) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getOrderHandler")
	defer span.End()

	s := newOrderRequest(w, r)
	if err := a.readOrder.Run(ctx, s); err != nil {
		a.fail(ctx, w, err)
		return
	}
	a.respond(ctx, w, http.StatusOK, s.found)
}

// createOrderHandler creates a new order.
// @Summary Create order
// @Accept json
// @Produce json
// @Param order body web.Envelope[order.Payload] true "Order"
// @Success 201 {object} web.Envelope[order.Order]
// @Failure 400 {object} web.ErrorBody
// @Router /orders [post]
func (a *API) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createOrderHandler")
	defer span.End()

	s := newOrderRequest(w, r)
	if err := a.createOrder.Run(ctx, s); err != nil {
		a.fail(ctx, w, err)
		return
	}
	o, err := a.orders.Create(ctx, s.valid)
	if err != nil {
		a.fail(ctx, w, fmt.Errorf("create order: %w", err))
		return
	}
	a.log.Info(ctx, "order created", "order_id", o.ID, "status", o.Status)
	a.publish(ctx, events.New(events.OrderCreated, o))
	a.respond(ctx, w, http.StatusCreated, o)
}

// updateOrderHandler updates an existing order.
// @Summary Update order
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID"
// @Param order body web.Envelope[order.Payload] true "Order"
// @Success 200 {object} web.Envelope[order.Order]
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.ErrorBody
// @Router /orders/{orderId} [put]
func (a *API) updateOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateOrderHandler")
	defer span.End()

	s := newOrderRequest(w, r)
	if err := a.updateOrder.Run(ctx, s); err != nil {
		a.fail(ctx, w, err)
		return
	}
	s.valid.ID = s.found.ID
	o, err := a.orders.Update(ctx, s.valid, order.Mutable)
	if err != nil {
		a.fail(ctx, w, mapStoreErr(s.routeID, "update", err))
		return
	}
	a.log.Info(ctx, "order updated", "order_id", o.ID, "from", s.found.Status, "to", o.Status)
	a.publish(ctx, events.New(events.OrderUpdated, o))
	a.respond(ctx, w, http.StatusOK, o)
}

// deleteOrderHandler removes a pending order.
// @Summary Delete order
// @Param orderId path string true "Order ID"
// @Success 204
// @Failure 400 {object} web.ErrorBody
// @Failure 404 {object} web.ErrorBody
// @Router /orders/{orderId} [delete]
func (a *API) deleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteOrderHandler")
	defer span.End()

	s := newOrderRequest(w, r)
	if err := a.deleteOrder.Run(ctx, s); err != nil {
		a.fail(ctx, w, err)
		return
	}
	if err := a.orders.Delete(ctx, s.found.ID, order.Deletable); err != nil {
		a.fail(ctx, w, mapStoreErr(s.routeID, "delete", err))
		return
	}
	a.log.Info(ctx, "order deleted", "order_id", s.found.ID)
	a.publish(ctx, events.New(events.OrderDeleted, s.found))
	w.WriteHeader(http.StatusNoContent)
}
