package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := ValidationError("invalid window length")

	assert.Equal(t, TypeValidation, err.Type)
	assert.Equal(t, "invalid window length", err.Message)
	assert.Nil(t, err.Cause)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
	assert.Contains(t, err.Error(), "validation")
	assert.Contains(t, err.Error(), "invalid window length")
}

func TestLiveSearchErrorTypes(t *testing.T) {
	cause := errors.New("status 401")

	tests := []struct {
		name       string
		err        *Error
		wantType   ErrorType
		wantStatus int
	}{
		{"authentication", AuthenticationError("bearer token rejected", cause), TypeAuthentication, http.StatusUnauthorized},
		{"rate limited", RateLimitError("quota exhausted", cause), TypeRateLimited, http.StatusTooManyRequests},
		{"permission", PermissionError("elevated access required", cause), TypePermission, http.StatusForbidden},
		{"unavailable", UnavailableError("tweets.json missing", cause), TypeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus())
			assert.ErrorIs(t, tt.err, cause)
		})
	}
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := InternalError("pipeline failed", cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
	assert.Contains(t, err.Error(), "boom")
}

func TestWithContext(t *testing.T) {
	err := ValidationError("bad days").WithContext("days", -3)

	assert.Equal(t, -3, err.Context["days"])

	resp := err.ToResponse()
	assert.Equal(t, "bad days", resp.Error)
	assert.Equal(t, TypeValidation, resp.Type)
	assert.Equal(t, -3, resp.Context["days"])
}

func TestAsStructuredError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, AsStructuredError(nil))
	})

	t.Run("structured error passes through", func(t *testing.T) {
		orig := RateLimitError("slow down", nil)
		assert.Same(t, orig, AsStructuredError(orig))
	})

	t.Run("plain error wraps as internal", func(t *testing.T) {
		err := AsStructuredError(errors.New("plain"))
		assert.Equal(t, TypeInternal, err.Type)
		assert.Contains(t, err.Error(), "plain")
	})
}

func TestWrapHTTPError_StatusMapping(t *testing.T) {
	tests := []struct {
		code int
		want ErrorType
	}{
		{http.StatusBadRequest, TypeValidation},
		{http.StatusNotFound, TypeNotFound},
		{http.StatusUnauthorized, TypeAuthentication},
		{http.StatusTooManyRequests, TypeRateLimited},
		{http.StatusForbidden, TypePermission},
		{http.StatusBadGateway, TypeExternal},
		{http.StatusTeapot, TypeInternal},
	}

	for _, tt := range tests {
		structured := WrapHTTPError(echo.NewHTTPError(tt.code, "boom"))
		assert.Equal(t, tt.want, structured.Type, "status %d", tt.code)
	}
}
