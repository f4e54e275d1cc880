// Package database provides constants used for query validation and assembly.
package database

import "regexp"

// Column types accepted in table schemas.
const (
	ColTypeNull    = "NULL"
	ColTypeInteger = "INTEGER"
	ColTypeReal    = "REAL"
	ColTypeText    = "TEXT"
	ColTypeBlob    = "BLOB"
)

// Column constraints accepted in table schemas.
const (
	ConstraintNotNull    = "NOT NULL"
	ConstraintUnique     = "UNIQUE"
	ConstraintPrimaryKey = "PRIMARY KEY"
)

// Comparison operators accepted in query conditions.
const (
	SqlEq      = "="
	SqlNe      = "<>"
	SqlNeq     = "!="
	SqlLt      = "<"
	SqlGt      = ">"
	SqlLte     = "<="
	SqlGte     = ">="
	SqlBetween = "BETWEEN"
	SqlExists  = "EXISTS"
	SqlIn      = "IN"
	SqlLike    = "LIKE"
)

// Boolean operators accepted in query conditions.
const (
	SqlAll = "ALL"
	SqlAnd = "AND"
	SqlAny = "ANY"
	SqlOr  = "OR"
	SqlNot = "NOT"
)

// TablePlaceholder is the token substituted with a validated table name at
// execution time. Drivers cannot bind identifiers, so table names are
// validated and text-substituted instead.
const TablePlaceholder = "{table}"

// Character-class patterns for identifier validation, compiled once.
var (
	reAlphanum           = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	reAlphanumUnderscore = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	reAlphanumSpace      = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)
	reAlphanumBoth       = regexp.MustCompile(`^[a-zA-Z0-9_ ]+$`)
)
