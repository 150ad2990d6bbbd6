// Package response provides helpers for writing consistent JSON HTTP
// responses.
//
// Every endpoint in this API answers with the same envelope:
//
//	{ "status": true|false, "message": "...", "data": <record|array|null> }
//
// Rather than repeating the same three lines (set header, set status,
// encode JSON) in every handler, we centralise them here. A consistent
// envelope also makes life easier for API consumers — they always know
// where to look for the outcome and the payload.
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the uniform envelope returned by every endpoint.
//
// Status is a boolean, not an HTTP status code: it tells the caller
// whether the operation succeeded. Data carries the payload — a record,
// an array, or null when the operation has nothing to return.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Success builds a status:true envelope with the given payload.
// Pass nil as data for operations that return nothing (create, update,
// delete).
func Success(message string, data any) Response {
	return Response{
		Status:  true,
		Message: message,
		Data:    data,
	}
}

// Failure builds a status:false envelope.
// The data argument exists because the list endpoint reports failures
// with "data": [] while every other endpoint uses "data": null.
func Failure(message string, data any) Response {
	return Response{
		Status:  false,
		Message: message,
		Data:    data,
	}
}

// GeneralError wraps any Go error into a failure envelope.
// Use this for unexpected errors (store failures, decode errors, etc.)
// Note the underlying error message is exposed to the caller.
func GeneralError(err error) Response {
	return Failure(err.Error(), nil)
}

// ValidationError converts a slice of validator.FieldError values into
// a single human-readable failure envelope.
//
// The go-playground/validator package returns one FieldError per failing
// struct field. We convert each to a plain English sentence and join
// them with ", " so the client sees a single descriptive message.
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "email":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a valid email address", e.Field()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Failure(strings.Join(errMessages, ", "), nil)
}

// WriteJSON writes a JSON-encoded response with the given HTTP status
// code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// json.NewEncoder(w) streams directly into w, avoiding an
	// intermediate buffer. Encode appends a trailing newline — handy
	// for CLI testing.
	return json.NewEncoder(w).Encode(data)
}
