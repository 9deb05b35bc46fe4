package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grubdash/pkg/dish"
	"grubdash/pkg/events"
	"grubdash/pkg/idgen"
	"grubdash/pkg/order"
	"grubdash/pkg/store"
	"grubdash/pkg/web"
)

type fixture struct {
	store   *store.Store
	events  *events.Recorder
	handler http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := store.New(idgen.NewSequence(), idgen.NewSequence())
	rec := &events.Recorder{}
	return &fixture{
		store:  st,
		events: rec,
		handler: NewRouter(Deps{
			Dishes: st.Dishes,
			Orders: st.Orders,
			Events: rec,
		}),
	}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var env web.Envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) web.ErrorBody {
	t.Helper()
	var body web.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func (f *fixture) seedDish(t *testing.T, d dish.Dish) {
	t.Helper()
	require.NoError(t, f.store.Dishes.Seed(context.Background(), d))
}

func (f *fixture) seedOrder(t *testing.T, o order.Order) {
	t.Helper()
	require.NoError(t, f.store.Orders.Seed(context.Background(), o))
}

func TestUnknownPath(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/menus", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Path not found: /menus", decodeError(t, w).Message)
}

func TestMethodNotAllowed(t *testing.T) {
	f := newFixture(t)
	f.seedDish(t, dish.Dish{ID: "1", Name: "Taco", Description: "Spicy", Price: 5, ImageURL: "x.png"})

	w := f.do(t, http.MethodDelete, "/dishes/1", "")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, http.StatusMethodNotAllowed, body.Status)
	assert.Equal(t, "DELETE not allowed for /dishes/1", body.Message)

	_, err := f.store.Dishes.Get(context.Background(), "1")
	assert.NoError(t, err)
}

func TestRequestIDHeader(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/dishes", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestCORSPreflight(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodOptions, "/orders", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSwaggerDoc(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/swagger/doc.json", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/orders/{orderId}")
}
