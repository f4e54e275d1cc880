package database

import (
	"database/sql"
	"strings"
)

// RowsToMaps drains rows into column-name-keyed maps, closing them when done.
// NULL columns come back as nil.
func RowsToMaps(rows *sql.Rows) ([]map[string]any, error) {
	defer rows.Close()

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	out := []map[string]any{}

	for rows.Next() {
		scanArgs := scanTargets(columnTypes)

		if err := rows.Scan(scanArgs...); err != nil {
			return nil, err
		}

		row := map[string]any{}
		for i, col := range columnTypes {
			row[col.Name()] = scannedValue(scanArgs[i])
		}
		out = append(out, row)
	}

	return out, rows.Err()
}

// RowsToTuples drains rows into positional value slices, column order
// preserved, closing them when done.
func RowsToTuples(rows *sql.Rows) ([][]any, error) {
	defer rows.Close()

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	out := [][]any{}

	for rows.Next() {
		scanArgs := scanTargets(columnTypes)

		if err := rows.Scan(scanArgs...); err != nil {
			return nil, err
		}

		row := make([]any, len(columnTypes))
		for i := range columnTypes {
			row[i] = scannedValue(scanArgs[i])
		}
		out = append(out, row)
	}

	return out, rows.Err()
}

// scanTargets picks scan destinations from the declared column types.
// It doesnt use ScanType so any sqlite driver works.
func scanTargets(columnTypes []*sql.ColumnType) []any {
	scanArgs := make([]any, len(columnTypes))

	for i, v := range columnTypes {
		switch strings.ToUpper(v.DatabaseTypeName()) {
		case ColTypeText:
			scanArgs[i] = new(sql.NullString)
		case ColTypeInteger:
			scanArgs[i] = new(sql.NullInt64)
		case ColTypeReal:
			scanArgs[i] = new(sql.NullFloat64)
		case ColTypeBlob:
			scanArgs[i] = new([]byte)
		default:
			scanArgs[i] = new(sql.NullString)
		}
	}

	return scanArgs
}

// scannedValue unwraps a scan destination into a plain value or nil.
func scannedValue(target any) any {
	switch z := target.(type) {
	case *sql.NullString:
		if z.Valid {
			return z.String
		}
	case *sql.NullInt64:
		if z.Valid {
			return z.Int64
		}
	case *sql.NullFloat64:
		if z.Valid {
			return z.Float64
		}
	case *[]byte:
		if *z != nil {
			return *z
		}
	}
	return nil
}
