package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteJSON(rec, http.StatusCreated, Success("employee added successfully", nil))
	require.NoError(t, err)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.Status)
	require.Equal(t, "employee added successfully", got.Message)
	require.Nil(t, got.Data)
}

func TestFailureKeepsDataShape(t *testing.T) {
	// The list endpoint fails with "data": [] while everything else
	// fails with "data": null.
	raw, err := json.Marshal(Failure("no employees found", []string{}))
	require.NoError(t, err)
	require.JSONEq(t, `{"status":false,"message":"no employees found","data":[]}`, string(raw))

	raw, err = json.Marshal(GeneralError(errors.New("connection reset")))
	require.NoError(t, err)
	require.JSONEq(t, `{"status":false,"message":"connection reset","data":null}`, string(raw))
}

func TestValidationError(t *testing.T) {
	type form struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}

	err := validator.New().Struct(form{Email: "not-an-email"})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	require.False(t, resp.Status)
	require.Contains(t, resp.Message, "field Name is required")
	require.Contains(t, resp.Message, "field Email must be a valid email address")
	require.Nil(t, resp.Data)
}
