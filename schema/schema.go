// Package schema loads declarative table definitions from YAML files and
// applies them through a database handle.
//
// A definition file lists tables with their fields in column order:
//
//	tables:
//	  - name: people
//	    fields:
//	      - name: name
//	        type: text
//	        constraints: [not null]
//	      - name: age
//	        type: integer
//
// Every name, type, and constraint goes through the database package's
// validation rules before any SQL is built.
package schema

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/RedKnight91/sqlcontroller/database"
)

// File is a parsed schema definition file.
type File struct {
	Tables []TableDef `yaml:"tables"`
}

// TableDef describes one table: its name and its fields in column order.
type TableDef struct {
	Name   string     `yaml:"name"`
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef describes one column.
type FieldDef struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Constraints []string `yaml:"constraints"`
}

// Load reads and parses the schema file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals a schema definition and validates it.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("schema: parsing yaml: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks every table definition through the database validation
// rules, collecting all failures.
func (f *File) Validate() error {
	if len(f.Tables) == 0 {
		return errors.New("schema: no tables defined")
	}

	var errs []string
	for _, tbl := range f.Tables {
		if err := database.ValidateTableParams(tbl.Name, tbl.ToFields()); err != nil {
			errs = append(errs, err.Error())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("schema: invalid definition: %s", strings.Join(errs, "; "))
	}
	return nil
}

// ToFields converts the table's field definitions to database fields.
func (t TableDef) ToFields() []database.Field {
	fields := make([]database.Field, len(t.Fields))
	for i, fd := range t.Fields {
		fields[i] = database.NewField(fd.Name, fd.Type, fd.Constraints...)
	}
	return fields
}

// Apply creates every table in the file, in file order. Tables that already
// exist are left untouched.
func Apply(ctx context.Context, db *database.Database, f *File) error {
	for _, tbl := range f.Tables {
		if _, err := db.CreateTable(ctx, tbl.Name, tbl.ToFields()); err != nil {
			return fmt.Errorf("schema: creating table %s: %w", tbl.Name, err)
		}
	}
	return nil
}
