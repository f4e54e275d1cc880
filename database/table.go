package database

import (
	"context"
	"database/sql"
	"sort"
)

// Table binds row operations to one table of a Database. Handles come from
// CreateTable or GetTable, so the name has always been validated.
type Table struct {
	Name string
	db   *Database
}

// AddRow inserts one row. With columns given, only that subset is set;
// otherwise values must cover every column in schema order.
func (t *Table) AddRow(ctx context.Context, values []any, columns ...string) error {
	if err := ValidateValues(values); err != nil {
		return err
	}
	for _, col := range columns {
		if err := ValidateName(col); err != nil {
			return err
		}
	}

	_, err := t.db.Execute(ctx, BuildInsertQuery(values, columns...), t.Name, values...)
	return err
}

// AddRows inserts one row per value list over a single prepared statement.
// Every list must have the same length.
func (t *Table) AddRows(ctx context.Context, valueLists [][]any, columns ...string) error {
	if len(valueLists) == 0 {
		return nil
	}

	for _, values := range valueLists {
		if err := ValidateValues(values); err != nil {
			return err
		}
	}
	for _, col := range columns {
		if err := ValidateName(col); err != nil {
			return err
		}
	}

	return t.db.ExecuteMany(ctx, BuildInsertQuery(valueLists[0], columns...), t.Name, valueLists)
}

// GetRows returns the rows selected by clause as column-keyed maps.
func (t *Table) GetRows(ctx context.Context, clause Clause) ([]map[string]any, error) {
	rows, err := t.db.Query(ctx, BuildSelectQuery(clause), t.Name)
	if err != nil {
		return nil, err
	}
	return RowsToMaps(rows)
}

// GetRowsTuples returns the rows selected by clause as positional tuples.
func (t *Table) GetRowsTuples(ctx context.Context, clause Clause) ([][]any, error) {
	rows, err := t.db.Query(ctx, BuildSelectQuery(clause), t.Name)
	if err != nil {
		return nil, err
	}
	return RowsToTuples(rows)
}

// GetRow returns the first row selected by clause, or sql.ErrNoRows when
// nothing matches.
func (t *Table) GetRow(ctx context.Context, clause Clause) (map[string]any, error) {
	rows, err := t.GetRows(ctx, clause)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, sql.ErrNoRows
	}
	return rows[0], nil
}

// GetAllRows returns every row of the table as column-keyed maps.
func (t *Table) GetAllRows(ctx context.Context) ([]map[string]any, error) {
	return t.GetRows(ctx, Clause{})
}

// UpdateRows sets the given column values on every row selected by clause.
// Values travel as bound parameters; columns bind in sorted order to match
// BuildUpdateQuery.
func (t *Table) UpdateRows(ctx context.Context, values map[string]any, clause Clause) error {
	columns := make([]string, 0, len(values))
	for col := range values {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	args := make([]any, len(columns))
	for i, col := range columns {
		if !ValidValue(values[col]) {
			return InvalidOperandErr(values[col])
		}
		args[i] = values[col]
	}

	query, err := BuildUpdateQuery(columns, clause)
	if err != nil {
		return err
	}

	_, err = t.db.Execute(ctx, query, t.Name, args...)
	return err
}

// DeleteRows deletes the rows selected by clause.
func (t *Table) DeleteRows(ctx context.Context, clause Clause) error {
	_, err := t.db.Execute(ctx, BuildDeleteQuery(clause), t.Name)
	return err
}

// DeleteAllRows deletes every row of the table.
func (t *Table) DeleteAllRows(ctx context.Context) error {
	return t.DeleteRows(ctx, Clause{})
}
