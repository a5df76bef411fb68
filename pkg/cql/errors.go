package cql

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidField is returned when a field is used with an operation
	// that does not accept it.
	ErrInvalidField = errors.New("invalid field for operation")

	// ErrUnsupportedNegation is returned when an operator has no opposite.
	ErrUnsupportedNegation = errors.New("unsupported negation")

	// ErrTooFewClauses is returned when And or Or receive fewer than two clauses.
	ErrTooFewClauses = errors.New("boolean composition needs at least two clauses")

	// ErrEmptyValue is returned when a predicate is given no usable value,
	// such as an empty list or an entity without an identifier.
	ErrEmptyValue = errors.New("empty value")
)

// FieldError reports a field used outside its allowed set.
type FieldError struct {
	Field     Field
	Operation string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field '%s' cannot be used for %s", ErrInvalidField, e.Field, e.Operation)
}

func (e *FieldError) Unwrap() error { return ErrInvalidField }

// OperatorError reports an operator that cannot be negated.
type OperatorError struct {
	Operator Operator
}

func (e *OperatorError) Error() string {
	return fmt.Sprintf("%s: operator '%s'", ErrUnsupportedNegation, e.Operator)
}

func (e *OperatorError) Unwrap() error { return ErrUnsupportedNegation }

// IsInvalidField reports whether err was caused by a disallowed field.
func IsInvalidField(err error) bool {
	var fe *FieldError
	return errors.As(err, &fe)
}
