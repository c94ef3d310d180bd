package schema

import (
	"fmt"
	"sort"
	"strings"
)

// SchemaBuilder records the tables a set of migrations would produce,
// without touching a database
type SchemaBuilder struct {
	Schema *SchemaState
}

// SchemaState represents the simulated database schema
type SchemaState struct {
	Tables map[string]*Table
}

// Table represents a database table
type Table struct {
	Name        string
	Columns     map[string]*Column
	ForeignKeys []ForeignKey
	Indexes     []string
}

// Column represents a database column
type Column struct {
	Name string
	Type string
	Null bool
	PK   bool
}

// ForeignKey references another table's primary key
type ForeignKey struct {
	Column   string
	RefTable string
	OnDelete string
}

// TableBuilder provides fluent API for building tables
type TableBuilder struct {
	table *Table
}

// NewSchemaBuilder creates a new schema builder
func NewSchemaBuilder() *SchemaBuilder {
	return &SchemaBuilder{
		Schema: &SchemaState{
			Tables: make(map[string]*Table),
		},
	}
}

// CreateTable creates a new table
func (b *SchemaBuilder) CreateTable(name string) *TableBuilder {
	table := &Table{
		Name:    name,
		Columns: make(map[string]*Column),
	}
	b.Schema.Tables[name] = table
	return &TableBuilder{table: table}
}

// DropTable removes a table
func (b *SchemaBuilder) DropTable(name string) {
	delete(b.Schema.Tables, name)
}

// TableExists checks if a table exists
func (b *SchemaBuilder) TableExists(name string) bool {
	_, exists := b.Schema.Tables[name]
	return exists
}

// GetTable returns a table by name
func (b *SchemaBuilder) GetTable(name string) (*Table, bool) {
	table, exists := b.Schema.Tables[name]
	return table, exists
}

// PrimaryKey adds an auto generated primary key column
func (t *TableBuilder) PrimaryKey(name string) *TableBuilder {
	t.table.Columns[name] = &Column{Name: name, Type: "uint", PK: true}
	return t
}

// Required adds a NOT NULL column
func (t *TableBuilder) Required(name, colType string) *TableBuilder {
	t.table.Columns[name] = &Column{Name: name, Type: colType}
	return t
}

// Nullable adds a column that accepts NULL
func (t *TableBuilder) Nullable(name, colType string) *TableBuilder {
	t.table.Columns[name] = &Column{Name: name, Type: colType, Null: true}
	return t
}

// References declares column as a foreign key to refTable's primary key
func (t *TableBuilder) References(column, refTable, onDelete string) *TableBuilder {
	t.table.ForeignKeys = append(t.table.ForeignKeys, ForeignKey{
		Column:   column,
		RefTable: refTable,
		OnDelete: onDelete,
	})
	return t
}

// AddIndex adds an index to the table
func (t *TableBuilder) AddIndex(name string) *TableBuilder {
	t.table.Indexes = append(t.table.Indexes, name)
	return t
}

// String returns a string representation of the schema with tables and
// columns in name order
func (s *SchemaState) String() string {
	names := make([]string, 0, len(s.Tables))
	for name := range s.Tables {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		table := s.Tables[name]
		sb.WriteString(fmt.Sprintf("Table: %s\n", name))

		cols := make([]string, 0, len(table.Columns))
		for col := range table.Columns {
			cols = append(cols, col)
		}
		sort.Strings(cols)

		for _, colName := range cols {
			col := table.Columns[colName]
			attrs := []string{}
			if col.PK {
				attrs = append(attrs, "PRIMARY KEY")
			}
			if col.Null {
				attrs = append(attrs, "NULL")
			} else {
				attrs = append(attrs, "NOT NULL")
			}
			sb.WriteString(fmt.Sprintf("  Column: %s %s [%s]\n", col.Name, col.Type, strings.Join(attrs, ", ")))
		}
		for _, fk := range table.ForeignKeys {
			sb.WriteString(fmt.Sprintf("  Foreign key: %s -> %s(id) ON DELETE %s\n", fk.Column, fk.RefTable, fk.OnDelete))
		}
		if len(table.Indexes) > 0 {
			sb.WriteString(fmt.Sprintf("  Indexes: %s\n", strings.Join(table.Indexes, ", ")))
		}
	}
	return sb.String()
}
