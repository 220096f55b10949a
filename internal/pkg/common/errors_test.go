package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsCustomError(t *testing.T) {
	t.Run("直接的自定義錯誤", func(t *testing.T) {
		err := NewInvalidInputError("Dish name cannot be empty")
		ce := AsCustomError(err)
		require.NotNil(t, ce)
		assert.Equal(t, ErrCodeInvalidInput, ce.Code)
		assert.Equal(t, http.StatusBadRequest, ce.Status)
	})

	t.Run("包裹後仍可取出", func(t *testing.T) {
		wrapped := fmt.Errorf("handling request: %w", NewNotFoundError("Curry"))
		ce := AsCustomError(wrapped)
		require.NotNil(t, ce)
		assert.Equal(t, ErrCodeNotFound, ce.Code)
	})

	t.Run("非自定義錯誤回傳 nil", func(t *testing.T) {
		assert.Nil(t, AsCustomError(errors.New("plain error")))
		assert.Nil(t, AsCustomError(nil))
	})
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Imaginary Dish")
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "Could not find or generate recipe for 'Imaginary Dish'. Please try a different dish.", err.Message)
}

func TestNewUpstreamParseError(t *testing.T) {
	cause := errors.New("unexpected token")
	err := NewUpstreamParseError(cause)

	assert.Equal(t, http.StatusBadGateway, err.Status)
	assert.Equal(t, "Failed to parse recipe data from AI", err.Message)
	assert.ErrorIs(t, err, cause)
}

func TestNewNotConfiguredError(t *testing.T) {
	err := NewNotConfiguredError("Gemini")
	assert.Equal(t, http.StatusServiceUnavailable, err.Status)
	assert.Contains(t, err.Message, "Gemini")
}
