package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product id is not in the store
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrInvalidList is returned for an unknown list or a list that does not accept items
	ErrInvalidList = errors.New("invalid list")

	// ErrInvalidQuantity is returned when a quantity is below one
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrUnsupportedLocale is returned when a voice locale is not configured
	ErrUnsupportedLocale = errors.New("unsupported voice locale")

	// ErrStoreUnavailable is returned when the backing store cannot serve a request
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
