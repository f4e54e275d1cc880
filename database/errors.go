// Package database provides error definitions for the sql convenience layer.
package database

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation and lookup failures.
var (
	ErrNotAlphanumeric   = errors.New("string is not alphanumeric")
	ErrInvalidName       = errors.New("invalid table or field name")
	ErrInvalidColumnType = errors.New("invalid column type")
	ErrInvalidConstraint = errors.New("invalid column constraint")
	ErrInvalidOperator   = errors.New("invalid sql operator")
	ErrInvalidOperand    = errors.New("invalid sql operand")
	ErrInvalidField      = errors.New("invalid field")
	ErrTableNotFound     = errors.New("table not found")
)

// NotAlphanumericErr returns an error indicating a string failed the
// character-class check.
func NotAlphanumericErr(s string) error {
	return fmt.Errorf("%w: %q", ErrNotAlphanumeric, s)
}

// InvalidNameErr returns an error indicating a table or field name failed
// the identifier grammar.
func InvalidNameErr(name string) error {
	return fmt.Errorf("%w: %q", ErrInvalidName, name)
}

// InvalidTypeErr returns an error indicating an invalid column type was specified.
func InvalidTypeErr(typeName string) error {
	return fmt.Errorf("%w: %s", ErrInvalidColumnType, typeName)
}

// InvalidConstraintErr returns an error indicating an invalid column constraint.
func InvalidConstraintErr(constraint string) error {
	return fmt.Errorf("%w: %s", ErrInvalidConstraint, constraint)
}

// InvalidOperatorErr returns an error indicating an operator outside the whitelist.
func InvalidOperatorErr(op string) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperator, op)
}

// InvalidOperandErr returns an error indicating a condition operand with an
// unsupported shape.
func InvalidOperandErr(v any) error {
	return fmt.Errorf("%w: %v (%T)", ErrInvalidOperand, v, v)
}

// InvalidFieldErr returns an error aggregating a field validation failure.
// The underlying cause stays in the error chain.
func InvalidFieldErr(f Field, cause error) error {
	return fmt.Errorf("%w %q: %w", ErrInvalidField, f.Name, cause)
}

// TableNotFoundErr returns an error indicating a table was not found.
func TableNotFoundErr(table string) error {
	return fmt.Errorf("%w: %s", ErrTableNotFound, table)
}
