package database

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Clause is a pre-validated WHERE/ORDER BY/LIMIT/OFFSET fragment produced by
// BuildQueryClauses. The zero value means no clause. Raw caller text only
// enters through Trusted.
type Clause struct {
	text string
}

// Trusted marks s as an already-safe clause fragment. Use only for text the
// caller fully controls; everything else goes through BuildQueryClauses.
func Trusted(s string) Clause {
	return Clause{text: s}
}

// String returns the clause fragment text.
func (c Clause) String() string {
	return c.text
}

// Empty reports whether the clause has no content.
func (c Clause) Empty() bool {
	return c.text == ""
}

// BuildQueryClauses assembles the optional tail of a select, update, or
// delete query. A leading "where " or "order by " prefix on the inputs is
// stripped case-insensitively before the keyword is re-added, so callers may
// pass either the bare condition or the prefixed form. Parts render in fixed
// order: where, order by, limit, offset; each is included only when its
// source value is non-empty or non-zero.
func BuildQueryClauses(where, order string, limit, offset int) Clause {
	parts := make([]string, 0, 4)

	if w := stripPrefixFold(where, "where "); w != "" {
		parts = append(parts, "where "+w+";")
	}
	if o := stripPrefixFold(order, "order by "); o != "" {
		parts = append(parts, "order by "+o+";")
	}
	if limit != 0 {
		parts = append(parts, "limit "+strconv.Itoa(limit)+";")
	}
	if offset != 0 {
		parts = append(parts, "offset "+strconv.Itoa(offset)+";")
	}

	return Clause{text: strings.Join(parts, " ")}
}

// stripPrefixFold removes prefix from s once, case-insensitively.
func stripPrefixFold(s, prefix string) string {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):]
	}
	return s
}

// BuildInsertQuery renders a parameterized insert statement with one ?
// placeholder per value. Column names are spliced as given; run them through
// ValidateName first when they come from outside.
func BuildInsertQuery(values []any, columns ...string) string {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(values)), ",")

	if len(columns) > 0 {
		return fmt.Sprintf("insert into {table} (%s) values (%s);", strings.Join(columns, ","), placeholders)
	}
	return fmt.Sprintf("insert into {table} values (%s);", placeholders)
}

// BuildTableCreateQuery renders a create-table statement from the given
// fields. Every field is validated first; any failure aborts with no partial
// query. Field order is preserved since it decides column order.
func BuildTableCreateQuery(fields []Field) (string, error) {
	cols := make([]string, len(fields))

	for i, f := range fields {
		if err := ValidateField(f); err != nil {
			return "", err
		}

		col := f.Name + " " + f.Type
		if len(f.Constraints) > 0 {
			col += " " + strings.Join(f.Constraints, " ")
		}
		cols[i] = col
	}

	return fmt.Sprintf("create table if not exists {table} (%s);", strings.Join(cols, ", ")), nil
}

// BuildCondition renders one validated condition for use in a where clause,
// e.g. "name = 'Mia'" or "age between 21 and 65". String operands are quoted
// with doubled single quotes; numeric operands render bare.
func BuildCondition(field, op string, values ...any) (string, error) {
	if err := ValidateCondition(field, op, values); err != nil {
		return "", err
	}
	if len(values) == 0 {
		return "", fmt.Errorf("%w: condition on %s has no values", ErrInvalidOperand, field)
	}

	operands := make([]string, len(values))
	for i, v := range values {
		operands[i] = renderOperand(v)
	}

	switch strings.ToUpper(op) {
	case SqlBetween:
		if len(operands) != 2 {
			return "", fmt.Errorf("%w: %s takes exactly two values", ErrInvalidOperand, op)
		}
		return fmt.Sprintf("%s %s %s and %s", field, op, operands[0], operands[1]), nil
	case SqlIn:
		return fmt.Sprintf("%s %s (%s)", field, op, strings.Join(operands, ",")), nil
	default:
		if len(operands) != 1 {
			return "", fmt.Errorf("%w: %s takes exactly one value", ErrInvalidOperand, op)
		}
		return fmt.Sprintf("%s %s %s", field, op, operands[0]), nil
	}
}

// renderOperand formats one condition value as SQL text.
func renderOperand(v any) string {
	switch val := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(val, "'", "''") + "'"
	case []byte:
		return "'" + strings.ReplaceAll(string(val), "'", "''") + "'"
	case bool:
		if val {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// BuildSelectQuery renders a select over every column, with the optional
// clause spliced directly after the table placeholder.
func BuildSelectQuery(clause Clause) string {
	if clause.Empty() {
		return "select * from {table};"
	}
	return "select * from {table} " + clause.String()
}

// BuildUpdateQuery renders a parameterized update statement for the given
// columns. Columns are validated and sorted so output is deterministic; bind
// the new values in the same sorted order.
func BuildUpdateQuery(columns []string, clause Clause) (string, error) {
	if len(columns) == 0 {
		return "", fmt.Errorf("%w: update has no columns", ErrInvalidOperand)
	}

	sorted := make([]string, len(columns))
	copy(sorted, columns)
	sort.Strings(sorted)

	assigns := make([]string, len(sorted))
	for i, col := range sorted {
		if err := ValidateName(col); err != nil {
			return "", err
		}
		assigns[i] = col + " = ?"
	}

	query := "update {table} set " + strings.Join(assigns, ", ")
	if clause.Empty() {
		return query + ";", nil
	}
	return query + " " + clause.String(), nil
}

// BuildDeleteQuery renders a delete with the optional clause spliced in.
func BuildDeleteQuery(clause Clause) string {
	if clause.Empty() {
		return "delete from {table};"
	}
	return "delete from {table} " + clause.String()
}
