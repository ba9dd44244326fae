// pkg/sql/parser/ast.go
package parser

import (
	"fmt"

	"easydb/pkg/types"
)

// Statement is the interface for all statements
type Statement interface {
	statementNode()
}

// Nullability is the three-valued NULL / NOT NULL constraint state of a
// column. A column starts unspecified; the grammar rejects setting both
// explicit states.
type Nullability int

const (
	NullUnspecified Nullability = iota
	NullNullable
	NullNotNullable
)

// String returns a readable form of the nullability state
func (n Nullability) String() string {
	switch n {
	case NullUnspecified:
		return "unspecified"
	case NullNullable:
		return "null"
	case NullNotNullable:
		return "not null"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (n Nullability) MarshalText() ([]byte, error) {
	if n < NullUnspecified || n > NullNotNullable {
		return nil, fmt.Errorf("invalid nullability %d", int(n))
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Nullability) UnmarshalText(text []byte) error {
	switch string(text) {
	case "unspecified":
		*n = NullUnspecified
	case "null":
		*n = NullNullable
	case "not null":
		*n = NullNotNullable
	default:
		return fmt.Errorf("invalid nullability %q", string(text))
	}
	return nil
}

// CreateTableStmt represents a CREATE TABLE statement
type CreateTableStmt struct {
	TableName string      `json:"table_name"`
	Columns   []ColumnDef `json:"columns"`
}

func (s *CreateTableStmt) statementNode() {}

// ColumnDef represents a column definition in CREATE TABLE
type ColumnDef struct {
	Name       string         `json:"name"`
	Type       types.DataType `json:"datatype"`
	PrimaryKey bool           `json:"primary_key,omitempty"`
	Nullable   Nullability    `json:"nullable,omitempty"`
	Unique     bool           `json:"unique,omitempty"`
	Index      bool           `json:"index,omitempty"`
	References string         `json:"references,omitempty"` // referenced table name, empty if none
}

// DropTableStmt represents a DROP TABLE statement
type DropTableStmt struct {
	TableName string `json:"table_name"`
}

func (s *DropTableStmt) statementNode() {}
