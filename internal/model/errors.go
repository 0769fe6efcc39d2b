package model

import "errors"

// Sentinel errors shared by every store implementation. Handlers use
// errors.Is against these to pick the HTTP status.
var (
	// ErrProductNotFound is returned by catalog lookups for unknown ids.
	ErrProductNotFound = errors.New("product not found")

	// ErrUsernameExists is returned when registering a duplicate username.
	ErrUsernameExists = errors.New("username already exists")

	// ErrInvalidQuantity rejects cart adds with a quantity below 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrEmptyCart rejects settlement of an empty cart view.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrMalformedCart rejects settlement when a submitted line is missing
	// its required numeric fields.
	ErrMalformedCart = errors.New("cart item is malformed")
)
