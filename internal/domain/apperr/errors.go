// Package apperr holds the error kinds shared by every entity package.
package apperr

import "errors"

var (
	// ErrMissingTenant is returned when neither the x-business-id header nor a
	// default business id is available.
	ErrMissingTenant = errors.New("Missing business_id")

	// ErrInvalidRequest wraps every input rule violation detected before the store is called.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidReference is returned when the store rejects a write because a
	// referenced row (business, customer, product) does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// Invalid builds an ErrInvalidRequest carrying a caller-facing message.
func Invalid(msg string) error { return &invalidError{msg: msg} }

type invalidError struct{ msg string }

func (e *invalidError) Error() string        { return e.msg }
func (e *invalidError) Is(target error) bool { return target == ErrInvalidRequest }
