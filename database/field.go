package database

import "fmt"

// Field describes one column of a table schema: a name, a SQLite type, and
// zero or more constraints. Fields are value types and never mutated after
// construction.
type Field struct {
	Name        string
	Type        string
	Constraints []string
}

// NewField returns a Field for the given column name, type, and constraints.
func NewField(name, colType string, constraints ...string) Field {
	return Field{Name: name, Type: colType, Constraints: constraints}
}

// ValidateField checks a field's name, type, and every constraint. Any
// failure wraps ErrInvalidField with the underlying cause left in the chain.
func ValidateField(f Field) error {
	if err := ValidateName(f.Name); err != nil {
		return InvalidFieldErr(f, err)
	}
	if err := ValidateType(f.Type); err != nil {
		return InvalidFieldErr(f, err)
	}
	for _, c := range f.Constraints {
		if err := ValidateConstraint(c); err != nil {
			return InvalidFieldErr(f, err)
		}
	}
	return nil
}

// ValidateTableParams checks a table name together with its field list, as
// supplied to CreateTable.
func ValidateTableParams(table string, fields []Field) error {
	if err := ValidateName(table); err != nil {
		return err
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: table %q has no fields", ErrInvalidField, table)
	}
	for _, f := range fields {
		if err := ValidateField(f); err != nil {
			return err
		}
	}
	return nil
}
