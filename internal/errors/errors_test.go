package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{ValidationError("bad input"), http.StatusBadRequest},
		{NotFoundError("nope"), http.StatusNotFound},
		{InternalError("boom", nil), http.StatusInternalServerError},
		{ExternalError("upstream down", nil), http.StatusBadGateway},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.HTTPStatus(), "type %s", tt.err.Type)
	}
}

func TestErrorStringIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := ExternalError("search source unreachable", cause)

	assert.Contains(t, err.Error(), "search source unreachable")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestWithField(t *testing.T) {
	err := ValidationError("start must be a YYYY-MM-DD date").
		WithField("start", "january").
		WithField("param", "start")

	assert.Equal(t, "january", err.Context["start"])
	assert.Equal(t, "start", err.Context["param"])
}

func TestToResponse(t *testing.T) {
	err := ValidationError("unknown sentiment label").WithField("label", "Angry")
	resp := err.ToResponse()

	assert.Equal(t, "unknown sentiment label", resp.Error)
	assert.Equal(t, TypeValidation, resp.Type)
	assert.Equal(t, "Angry", resp.Context["label"])
}

func TestAsStructuredError(t *testing.T) {
	structured := NotFoundError("missing")
	assert.Same(t, structured, AsStructuredError(structured))

	wrapped := AsStructuredError(errors.New("plain"))
	require.NotNil(t, wrapped)
	assert.Equal(t, TypeInternal, wrapped.Type)

	assert.Nil(t, AsStructuredError(nil))
}

func TestAsStructuredError_UnwrapsNestedError(t *testing.T) {
	inner := ValidationError("bad")
	outer := errors.Join(errors.New("context"), inner)

	got := AsStructuredError(outer)
	assert.Equal(t, TypeValidation, got.Type)
}
