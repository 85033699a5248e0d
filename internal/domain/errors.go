package domain

import "errors"

var (
	// ErrInvalidUnit indicates a unit symbol outside the registry.
	ErrInvalidUnit = errors.New("unknown unit symbol")
	// ErrInvalidPrice indicates a non-positive or non-numeric price.
	ErrInvalidPrice = errors.New("price must be > 0")
	// ErrInvalidQuantity indicates a non-positive or non-numeric quantity.
	ErrInvalidQuantity = errors.New("quantity must be > 0")
	// ErrNoProductIdentity indicates a purchase with neither a free-text
	// name nor a catalog reference.
	ErrNoProductIdentity = errors.New("no product name or catalog reference supplied")
	// ErrPersistence wraps opaque failures from the persistence layer.
	ErrPersistence = errors.New("persistence failure")
)
