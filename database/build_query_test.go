package database

import (
	"errors"
	"strings"
	"testing"
)

// =============================================================================
// Clause assembly
// =============================================================================

func TestBuildQueryClauses(t *testing.T) {
	cases := []struct {
		name   string
		where  string
		order  string
		limit  int
		offset int
		want   string
	}{
		{"all empty", "", "", 0, 0, ""},
		{"all parts", "name = 'Mia'", "age desc", 10, 3,
			"where name = 'Mia'; order by age desc; limit 10; offset 3;"},
		{"redundant prefixes stripped", "where name = 'Mia'", "order by age desc", 0, 0,
			"where name = 'Mia'; order by age desc;"},
		{"uppercase prefixes stripped", "WHERE name = 'Mia'", "ORDER BY age desc", 0, 0,
			"where name = 'Mia'; order by age desc;"},
		{"where only", "age > 21", "", 0, 0, "where age > 21;"},
		{"order only", "", "age desc", 0, 0, "order by age desc;"},
		{"limit only", "", "", 5, 0, "limit 5;"},
		{"offset only", "", "", 0, 7, "offset 7;"},
		{"limit and offset", "", "", 10, 20, "limit 10; offset 20;"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := BuildQueryClauses(c.where, c.order, c.limit, c.offset).String()
			if got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestClauseZeroValue(t *testing.T) {
	var c Clause

	if !c.Empty() {
		t.Error("expected zero clause to be empty")
	}
	if c.String() != "" {
		t.Errorf("expected empty text but got %q", c.String())
	}
}

func TestTrusted(t *testing.T) {
	c := Trusted("where age > 21;")
	if c.String() != "where age > 21;" {
		t.Errorf("got %q", c.String())
	}
}

// =============================================================================
// Insert
// =============================================================================

func TestBuildInsertQuery(t *testing.T) {
	got := BuildInsertQuery([]any{"Joe", 33}, "name", "age")
	want := "insert into {table} (name,age) values (?,?);"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildInsertQueryWithoutColumns(t *testing.T) {
	got := BuildInsertQuery([]any{"Joe", 33})
	want := "insert into {table} values (?,?);"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildInsertQueryPlaceholderCount(t *testing.T) {
	for n := 1; n <= 8; n++ {
		values := make([]any, n)
		for i := range values {
			values[i] = i
		}

		got := BuildInsertQuery(values)
		if count := strings.Count(got, "?"); count != n {
			t.Errorf("expected %d placeholders but got %d in %q", n, count, got)
		}
	}
}

// =============================================================================
// Create table
// =============================================================================

func TestBuildTableCreateQuery(t *testing.T) {
	fields := []Field{
		NewField("name", "integer", "primary key"),
		NewField("age", "integer", "not null", "unique"),
	}

	got, err := BuildTableCreateQuery(fields)
	if err != nil {
		t.Fatal(err)
	}

	want := "create table if not exists {table} (name integer primary key, age integer not null unique);"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildTableCreateQueryKeepsCase(t *testing.T) {
	got, err := BuildTableCreateQuery([]Field{NewField("Name", "TEXT", "NOT NULL")})
	if err != nil {
		t.Fatal(err)
	}

	want := "create table if not exists {table} (Name TEXT NOT NULL);"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildTableCreateQueryInvalidField(t *testing.T) {
	query, err := BuildTableCreateQuery([]Field{
		NewField("name", "text"),
		NewField("age", "json"),
	})

	if !errors.Is(err, ErrInvalidField) {
		t.Errorf("expected ErrInvalidField but got %v", err)
	}
	if !errors.Is(err, ErrInvalidColumnType) {
		t.Errorf("expected ErrInvalidColumnType in the chain but got %v", err)
	}
	if query != "" {
		t.Errorf("expected no partial query but got %q", query)
	}
}

// =============================================================================
// Conditions
// =============================================================================

func TestBuildCondition(t *testing.T) {
	cases := []struct {
		name   string
		field  string
		op     string
		values []any
		want   string
	}{
		{"string equality", "name", "=", []any{"Mia"}, "name = 'Mia'"},
		{"numeric comparison", "age", ">", []any{30}, "age > 30"},
		{"float comparison", "score", "<=", []any{3.5}, "score <= 3.5"},
		{"like", "name", "like", []any{"M%"}, "name like 'M%'"},
		{"between", "age", "between", []any{21, 65}, "age between 21 and 65"},
		{"in", "name", "in", []any{"Joe", "Mia"}, "name in ('Joe','Mia')"},
		{"quote doubling", "name", "=", []any{"O'Brien"}, "name = 'O''Brien'"},
		{"bool operand", "active", "=", []any{true}, "active = 1"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := BuildCondition(c.field, c.op, c.values...)
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestBuildConditionFailures(t *testing.T) {
	_, err := BuildCondition("My name", "=", "Mia")
	if !errors.Is(err, ErrInvalidOperand) {
		t.Errorf("expected ErrInvalidOperand but got %v", err)
	}

	_, err = BuildCondition("name", "sameas", "Mia")
	if !errors.Is(err, ErrInvalidOperator) {
		t.Errorf("expected ErrInvalidOperator but got %v", err)
	}

	_, err = BuildCondition("name", "=")
	if !errors.Is(err, ErrInvalidOperand) {
		t.Errorf("expected ErrInvalidOperand for missing values but got %v", err)
	}

	_, err = BuildCondition("name", "=", "Joe", "Mia")
	if !errors.Is(err, ErrInvalidOperand) {
		t.Errorf("expected ErrInvalidOperand for extra values but got %v", err)
	}

	_, err = BuildCondition("age", "between", 21)
	if !errors.Is(err, ErrInvalidOperand) {
		t.Errorf("expected ErrInvalidOperand for one-sided between but got %v", err)
	}
}

func TestBuildConditionFeedsClauses(t *testing.T) {
	cond, err := BuildCondition("name", "=", "Mia")
	if err != nil {
		t.Fatal(err)
	}

	got := BuildQueryClauses(cond, "", 0, 0).String()
	if got != "where name = 'Mia';" {
		t.Errorf("got %q", got)
	}
}

// =============================================================================
// Select, update, delete assembly
// =============================================================================

func TestBuildSelectQuery(t *testing.T) {
	got := BuildSelectQuery(BuildQueryClauses("name = 'Mia'", "", 0, 0))
	want := "select * from {table} where name = 'Mia';"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = BuildSelectQuery(Clause{})
	want = "select * from {table};"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildUpdateQuery(t *testing.T) {
	got, err := BuildUpdateQuery([]string{"name", "age"}, BuildQueryClauses("age > 30", "", 0, 0))
	if err != nil {
		t.Fatal(err)
	}

	want := "update {table} set age = ?, name = ? where age > 30;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildUpdateQueryNoClause(t *testing.T) {
	got, err := BuildUpdateQuery([]string{"age"}, Clause{})
	if err != nil {
		t.Fatal(err)
	}

	want := "update {table} set age = ?;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildUpdateQueryFailures(t *testing.T) {
	_, err := BuildUpdateQuery([]string{"bad name"}, Clause{})
	if !errors.Is(err, ErrInvalidName) {
		t.Errorf("expected ErrInvalidName but got %v", err)
	}

	_, err = BuildUpdateQuery(nil, Clause{})
	if !errors.Is(err, ErrInvalidOperand) {
		t.Errorf("expected ErrInvalidOperand but got %v", err)
	}
}

func TestBuildDeleteQuery(t *testing.T) {
	got := BuildDeleteQuery(BuildQueryClauses("age > 65", "", 0, 0))
	want := "delete from {table} where age > 65;"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = BuildDeleteQuery(Clause{})
	want = "delete from {table};"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
