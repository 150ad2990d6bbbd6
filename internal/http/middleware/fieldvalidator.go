// Package middleware holds HTTP middleware applied in front of the
// employee handlers.
package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/aanand-mishra/employees-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// requiredFields is the shape the gate checks. It deliberately ignores
// every other body field — presence of these three is all it cares
// about; format checks belong to the handler.
type requiredFields struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Position string `json:"position" validate:"required"`
}

// RequireFields gates the create path: it rejects requests whose body is
// missing name, email or position before the handler ever runs.
//
// On failure it writes the failure envelope with HTTP 200 — an oddity
// of this API's contract that callers branch on via the envelope's
// status field — and stops. The chain is never continued after a
// response has been written, so a request produces exactly one response.
//
// A body that cannot be parsed as JSON is treated the same as a body
// with all three fields missing.
func RequireFields(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// The handler downstream needs to read the body too, so we
		// drain it here and hand the handler a replayable copy below.
		body, err := io.ReadAll(r.Body)
		if err != nil {
			response.WriteJSON(w, http.StatusOK,
				response.Failure("name, email and position fields are required", nil))
			return
		}
		r.Body.Close()

		var fields requiredFields
		if err := json.Unmarshal(body, &fields); err != nil {
			response.WriteJSON(w, http.StatusOK,
				response.Failure("name, email and position fields are required", nil))
			return
		}

		if err := validator.New().Struct(fields); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusOK, response.ValidationError(validateErrs))
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next(w, r)
	}
}
