// Package handlers is the HTTP surface. Handlers validate input, call the
// store or the AI bridge, and map domain errors to status codes; business
// rules live below this layer.
package handlers

import (
	"errors"
	"net/http"

	"victory-pos/internal/ai"
	"victory-pos/internal/auth"
	"victory-pos/internal/store"
)

// API bundles the dependencies the handlers need.
type API struct {
	Store     *store.Store
	Auth      *auth.Manager
	Assistant *ai.Assistant
}

func New(st *store.Store, authManager *auth.Manager, assistant *ai.Assistant) *API {
	return &API{Store: st, Auth: authManager, Assistant: assistant}
}

// statusFor maps store errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrLaptopNotFound),
		errors.Is(err, store.ErrTransactionNotFound),
		errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, store.ErrNegativeStock),
		errors.Is(err, store.ErrInsufficientStock),
		errors.Is(err, store.ErrInvalidQuantity),
		errors.Is(err, store.ErrInvalidDiscount),
		errors.Is(err, store.ErrEmptyCart),
		errors.Is(err, store.ErrCustomerRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
