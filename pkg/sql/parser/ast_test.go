package parser

import (
	"encoding/json"
	"testing"
)

func TestNullability_String(t *testing.T) {
	cases := []struct {
		n    Nullability
		want string
	}{
		{NullUnspecified, "unspecified"},
		{NullNullable, "null"},
		{NullNotNullable, "not null"},
	}
	for _, c := range cases {
		if got := c.n.String(); got != c.want {
			t.Errorf("Nullability(%d).String() = %q, want %q", int(c.n), got, c.want)
		}
	}
}

func TestCreateTableStmt_JSON(t *testing.T) {
	stmt, err := Parse("CREATE TABLE movies (id INT PRIMARY KEY, title STRING NOT NULL, rating FLOAT NULL REFERENCES ratings)")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	data, err := json.Marshal(stmt)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var decoded CreateTableStmt
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	orig := stmt.(*CreateTableStmt)
	if decoded.TableName != orig.TableName {
		t.Errorf("TableName = %q, want %q", decoded.TableName, orig.TableName)
	}
	if len(decoded.Columns) != len(orig.Columns) {
		t.Fatalf("Columns count = %d, want %d", len(decoded.Columns), len(orig.Columns))
	}
	for i := range orig.Columns {
		if decoded.Columns[i] != orig.Columns[i] {
			t.Errorf("Column[%d] = %+v, want %+v", i, decoded.Columns[i], orig.Columns[i])
		}
	}
}

func TestDropTableStmt_JSON(t *testing.T) {
	stmt, err := Parse("DROP TABLE movies")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	data, err := json.Marshal(stmt)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `{"table_name":"movies"}` {
		t.Errorf("JSON = %s, want {\"table_name\":\"movies\"}", data)
	}
}
