package database

import "strings"

// ValidAlphanumeric reports whether s matches the selected character class:
// plain alphanumeric, optionally extended with underscores and/or spaces.
func ValidAlphanumeric(s string, underscore, space bool) bool {
	switch {
	case underscore && space:
		return reAlphanumBoth.MatchString(s)
	case underscore:
		return reAlphanumUnderscore.MatchString(s)
	case space:
		return reAlphanumSpace.MatchString(s)
	default:
		return reAlphanum.MatchString(s)
	}
}

// ValidateAlphanumeric checks s against the selected character class.
func ValidateAlphanumeric(s string, underscore, space bool) error {
	if !ValidAlphanumeric(s, underscore, space) {
		return NotAlphanumericErr(s)
	}
	return nil
}

// ValidName reports whether s is usable as a table or field name.
// Names may contain underscores but never spaces.
func ValidName(s string) bool {
	return ValidAlphanumeric(s, true, false)
}

// ValidateName checks s against the table/field name grammar.
func ValidateName(s string) error {
	if !ValidName(s) {
		return InvalidNameErr(s)
	}
	return nil
}

// ValidateFieldName checks the field operand of a condition against the name
// grammar.
func ValidateFieldName(s string) error {
	if !ValidName(s) {
		return InvalidOperandErr(s)
	}
	return nil
}

// ValidType reports whether s names a supported column type.
// Keyword matching is case-insensitive.
func ValidType(s string) bool {
	switch strings.ToUpper(s) {
	case ColTypeNull, ColTypeInteger, ColTypeReal, ColTypeText, ColTypeBlob:
		return true
	}
	return false
}

// ValidateType checks s against the column type whitelist.
func ValidateType(s string) error {
	if !ValidType(s) {
		return InvalidTypeErr(s)
	}
	return nil
}

// ValidConstraint reports whether s names a supported column constraint.
// Keyword matching is case-insensitive.
func ValidConstraint(s string) bool {
	switch strings.ToUpper(s) {
	case ConstraintNotNull, ConstraintUnique, ConstraintPrimaryKey:
		return true
	}
	return false
}

// ValidateConstraint checks s against the column constraint whitelist.
func ValidateConstraint(s string) error {
	if !ValidConstraint(s) {
		return InvalidConstraintErr(s)
	}
	return nil
}

// ValidComparisonOperator reports whether op is a supported comparison
// operator. Keyword matching is case-insensitive.
func ValidComparisonOperator(op string) bool {
	switch strings.ToUpper(op) {
	case SqlEq, SqlNe, SqlNeq, SqlLt, SqlGt, SqlLte, SqlGte,
		SqlBetween, SqlExists, SqlIn, SqlLike:
		return true
	}
	return false
}

// ValidateComparisonOperator checks op against the comparison operator whitelist.
func ValidateComparisonOperator(op string) error {
	if !ValidComparisonOperator(op) {
		return InvalidOperatorErr(op)
	}
	return nil
}

// ValidBoolOperator reports whether op is a supported boolean operator.
// Keyword matching is case-insensitive.
func ValidBoolOperator(op string) bool {
	switch strings.ToUpper(op) {
	case SqlAll, SqlAnd, SqlAny, SqlOr, SqlNot:
		return true
	}
	return false
}

// ValidateBoolOperator checks op against the boolean operator whitelist.
func ValidateBoolOperator(op string) error {
	if !ValidBoolOperator(op) {
		return InvalidOperatorErr(op)
	}
	return nil
}

// ValidValue reports whether v can travel as a bound query parameter:
// a string, byte slice, bool, or numeric scalar. Compound values and nil
// are rejected.
func ValidValue(v any) bool {
	switch v.(type) {
	case string, []byte, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// ValidValues reports whether every element of vals can travel as a bound
// parameter.
func ValidValues(vals []any) bool {
	for _, v := range vals {
		if !ValidValue(v) {
			return false
		}
	}
	return true
}

// ValidateValues checks every element of vals for a bindable shape.
func ValidateValues(vals []any) error {
	for _, v := range vals {
		if !ValidValue(v) {
			return InvalidOperandErr(v)
		}
	}
	return nil
}

// ValidateCondition checks the parts of a single query condition: the field
// operand, the comparison operator, then the values. Stops at the first
// failure.
func ValidateCondition(field, op string, values []any) error {
	if err := ValidateFieldName(field); err != nil {
		return err
	}
	if err := ValidateComparisonOperator(op); err != nil {
		return err
	}
	return ValidateValues(values)
}
