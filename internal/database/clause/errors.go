// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package clause

import "errors"

var (
	// ErrInvalidRange is returned when an upper bound filter is smaller than its lower bound.
	ErrInvalidRange = errors.New("invalid filter range")

	// ErrNoData is returned when a partial update carries no fields.
	ErrNoData = errors.New("no data")

	// ErrOutOfRange is returned when a numeric input does not fit its column.
	ErrOutOfRange = errors.New("value out of range")
)

// IsValidation reports whether err was produced by input validation in this package.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidRange) || errors.Is(err, ErrNoData) || errors.Is(err, ErrOutOfRange)
}
