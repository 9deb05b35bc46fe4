// Package api exposes the dish and order collections over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	_ "grubdash/docs"
	"grubdash/pkg/apperr"
	"grubdash/pkg/dish"
	"grubdash/pkg/events"
	"grubdash/pkg/logger"
	"grubdash/pkg/order"
	"grubdash/pkg/otel"
	"grubdash/pkg/web"
)

const publishTimeout = 5 * time.Second

// Deps are the collaborators the handlers need.
type Deps struct {
	Log         *logger.Logger
	Tracer      trace.Tracer
	Dishes      dish.Repository
	Orders      order.Repository
	Events      events.Publisher
	CORSOrigins []string
}

// API holds the handler chains for both collections.
type API struct {
	log    *logger.Logger
	tracer trace.Tracer
	dishes dish.Repository
	orders order.Repository
	events events.Publisher

	readDish   dishChain
	createDish dishChain
	updateDish dishChain

	readOrder   orderChain
	createOrder orderChain
	updateOrder orderChain
	deleteOrder orderChain
}

// New builds the API and its pipelines.
func New(d Deps) *API {
	a := &API{
		log:    d.Log,
		tracer: d.Tracer,
		dishes: d.Dishes,
		orders: d.Orders,
		events: d.Events,
	}
	if a.log == nil {
		a.log = logger.Nop()
	}
	if a.tracer == nil {
		a.tracer = noop.NewTracerProvider().Tracer("grubdash")
	}
	if a.events == nil {
		a.events = events.Nop{}
	}
	a.buildDishChains()
	a.buildOrderChains()
	return a
}

// NewRouter returns the full HTTP handler.
func NewRouter(d Deps) http.Handler {
	a := New(d)

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	r.HandleFunc("/dishes", a.listDishesHandler).Methods(http.MethodGet)
	r.HandleFunc("/dishes", a.createDishHandler).Methods(http.MethodPost)
	r.HandleFunc("/dishes/{dishId}", a.getDishHandler).Methods(http.MethodGet)
	r.HandleFunc("/dishes/{dishId}", a.updateDishHandler).Methods(http.MethodPut)

	r.HandleFunc("/orders", a.listOrdersHandler).Methods(http.MethodGet)
	r.HandleFunc("/orders", a.createOrderHandler).Methods(http.MethodPost)
	r.HandleFunc("/orders/{orderId}", a.getOrderHandler).Methods(http.MethodGet)
	r.HandleFunc("/orders/{orderId}", a.updateOrderHandler).Methods(http.MethodPut)
	r.HandleFunc("/orders/{orderId}", a.deleteOrderHandler).Methods(http.MethodDelete)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	origins := d.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// Wrapped outside the router so the 404/405 handlers get them too.
	var h http.Handler = r
	h = a.logRequests(h)
	h = a.traceMiddleware(h)
	h = cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	})(h)
	h = middleware.Recoverer(h)
	h = middleware.RequestID(h)
	return h
}

func (a *API) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.InjectTracing(r.Context(), a.tracer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := middleware.GetReqID(r.Context())
		w.Header().Set(middleware.RequestIDHeader, reqID)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		a.log.Debug(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String(),
			"request_id", reqID,
		)
	})
}

// fail is the single place where pipeline errors become responses.
func (a *API) fail(ctx context.Context, w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		a.log.Error(ctx, "request failed", "error", err)
	} else {
		a.log.Info(ctx, "request rejected", "status", status, "message", err.Error())
	}
	web.RespondError(w, err)
}

func (a *API) respond(ctx context.Context, w http.ResponseWriter, status int, data any) {
	if err := web.Respond(w, status, data); err != nil {
		a.log.Error(ctx, "write response", "error", err)
	}
}

func (a *API) publish(ctx context.Context, e events.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := a.events.Publish(ctx, e); err != nil {
		a.log.Warn(ctx, "publish order event", "type", e.Type, "order_id", e.Order.ID, "error", err)
	}
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	web.WriteError(w, http.StatusNotFound, fmt.Sprintf("Path not found: %s", r.URL.Path))
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	web.WriteError(w, http.StatusMethodNotAllowed, fmt.Sprintf("%s not allowed for %s", r.Method, r.URL.Path))
}
