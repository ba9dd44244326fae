package parser

import "testing"

func FuzzParse(f *testing.F) {
	seeds := []string{
		"CREATE TABLE users (id INT PRIMARY KEY, name STRING NOT NULL)",
		"CREATE TABLE t (a BOOL NULL, b DOUBLE UNIQUE INDEX, c VARCHAR REFERENCES other);",
		"DROP TABLE users;",
		"DROP TABLE t EXTRA",
		"CREATE TABLE t ()",
		"CREATE TABLE t (a INT NOT NULL NULL)",
		"CREATE TABLE t (a INT DEFAULT 1)",
		"CREATE TABLE t (a INT",
		"create table t (a int primary key)",
		"",
		";",
		"@",
		"'unclosed",
		"TABLE CREATE DROP",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// Parsing must either return a statement or an error; it must
		// never panic or loop, whatever the input.
		stmt, err := Parse(input)
		if err == nil && stmt == nil {
			t.Error("Parse returned nil statement and nil error")
		}
	})
}
