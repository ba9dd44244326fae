// pkg/types/datatype.go
package types

import "fmt"

// DataType represents the semantic type of a table column. The
// grammar's column-type keywords (BOOL, BOOLEAN, CHAR, DOUBLE, FLOAT,
// INT, INTEGER, STRING, TEXT, VARCHAR) collapse onto these four.
type DataType int

const (
	TypeBoolean DataType = iota
	TypeInteger
	TypeFloat
	TypeString
)

// String returns the canonical spelling of the datatype.
func (t DataType) String() string {
	switch t {
	case TypeBoolean:
		return "BOOLEAN"
	case TypeInteger:
		return "INTEGER"
	case TypeFloat:
		return "FLOAT"
	case TypeString:
		return "STRING"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t DataType) MarshalText() ([]byte, error) {
	if t < TypeBoolean || t > TypeString {
		return nil, fmt.Errorf("invalid datatype %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *DataType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "BOOLEAN":
		*t = TypeBoolean
	case "INTEGER":
		*t = TypeInteger
	case "FLOAT":
		*t = TypeFloat
	case "STRING":
		*t = TypeString
	default:
		return fmt.Errorf("invalid datatype %q", string(text))
	}
	return nil
}
