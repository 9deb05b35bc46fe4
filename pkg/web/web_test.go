package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grubdash/pkg/apperr"
)

type payload struct {
	Name string `json:"name"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "envelope", body: `{"data":{"name":"Taco"}}`, want: "Taco"},
		{name: "empty body", body: ``},
		{name: "no data", body: `{}`},
		{name: "null data", body: `{"data":null}`},
		{name: "malformed", body: `{"data":`, wantErr: true},
		{name: "wrong type", body: `{"data":{"name":5}}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/dishes", strings.NewReader(tt.body))
			var p payload
			err := Decode(httptest.NewRecorder(), r, &p)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.Is(err, apperr.KindBadRequest))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Name)
		})
	}
}

func TestRespond(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, Respond(w, http.StatusCreated, payload{Name: "Taco"}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"data":{"name":"Taco"}}`, w.Body.String())
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondError(w, apperr.NotFound("Dish does not exist: 9"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"status":404,"message":"Dish does not exist: 9"}`, w.Body.String())

	w = httptest.NewRecorder()
	RespondError(w, errors.New("redis: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Message)
}
