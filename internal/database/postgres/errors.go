package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// SQLSTATE codes the repositories translate into domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	classDataException      = "22"
)

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

// IsInvalidInput reports whether the server rejected a value supplied by the
// caller: a data exception such as an overflow or an over-long string, or a
// failed CHECK constraint.
func IsInvalidInput(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code.Class() == classDataException || string(pqErr.Code) == codeCheckViolation
}

// WrapError tags a driver failure from op with invalid when the server
// rejected the caller's input, or with failure otherwise.
func WrapError(op string, err, invalid, failure error) error {
	if IsInvalidInput(err) {
		return fmt.Errorf("%w: failed to %s: %w", invalid, op, err)
	}
	return fmt.Errorf("%w: failed to %s: %w", failure, op, err)
}

// Constraint returns the violated constraint name, if err carries one.
func Constraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

func hasCode(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}
	return false
}
