// Package web holds the JSON envelope helpers shared by the handlers.
package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"grubdash/pkg/apperr"
)

const maxBodyBytes = 1 << 20

// Envelope wraps every request and success response body.
type Envelope[T any] struct {
	Data T `json:"data"`
}

// ErrorBody is written for every failed request.
type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Decode reads a {"data": ...} body into dst. An empty body or a missing
// data member leaves dst untouched.
func Decode[T any](w http.ResponseWriter, r *http.Request, dst *T) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	var env Envelope[*T]
	env.Data = dst
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return apperr.BadRequest("Request body must not exceed %d bytes", tooBig.Limit)
		}
		return apperr.BadRequest("Request body must be valid JSON")
	}
	return nil
}

// Respond writes data inside the envelope with the given status.
func Respond(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(Envelope[any]{Data: data})
}

// RespondError writes err as an ErrorBody. Errors that are not client
// errors are reported as a generic 500.
func RespondError(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = "internal server error"
	}
	WriteError(w, status, msg)
}

// WriteError writes a raw status and message.
func WriteError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorBody{Status: status, Message: msg})
}
