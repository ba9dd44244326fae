// pkg/sql/lexer/token.go
package lexer

// TokenType represents the type of a lexical token
type TokenType int

const (
	EOF TokenType = iota

	// Literals
	NUMBER // 123, 1.5, 1.5e-3 (exact source text, no conversion)
	STRING // 'hello'
	IDENT  // column_name, table_name

	// Operators
	DOT      // .
	EQ       // =
	GT       // >
	LT       // <
	GTE      // >=
	LTE      // <=
	LTGT     // <>
	NEQ      // !=
	PLUS     // +
	MINUS    // -
	STAR     // *
	SLASH    // /
	CARET    // ^
	PERCENT  // %
	BANG     // !
	QUESTION // ?

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	COMMA     // ,
	SEMICOLON // ;

	// Keywords, bracketed by sentinels so IsKeyword is a range check
	keywordBeg
	AND
	BOOL
	BOOLEAN
	CHAR
	CREATE
	DEFAULT
	DOUBLE
	DROP
	FLOAT
	INDEX
	INT
	INTEGER
	KEY
	NOT
	NULL_KW
	PRIMARY
	REFERENCES
	STRING_KW
	TABLE
	TEXT
	UNIQUE
	VARCHAR
	keywordEnd
)

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Pos     int // position in input
}

// String returns the token's display form for error messages: keyword
// tokens display their canonical uppercase spelling, all others their
// literal text.
func (t Token) String() string {
	if t.Type.IsKeyword() {
		return t.Type.String()
	}
	return t.Literal
}

// IsKeyword reports whether the token type is a reserved word
func (t TokenType) IsKeyword() bool {
	return t > keywordBeg && t < keywordEnd
}

// String returns the canonical display form of the token type
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case IDENT:
		return "IDENT"
	case DOT:
		return "."
	case EQ:
		return "="
	case GT:
		return ">"
	case LT:
		return "<"
	case GTE:
		return ">="
	case LTE:
		return "<="
	case LTGT:
		return "<>"
	case NEQ:
		return "!="
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case CARET:
		return "^"
	case PERCENT:
		return "%"
	case BANG:
		return "!"
	case QUESTION:
		return "?"
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	case COMMA:
		return ","
	case SEMICOLON:
		return ";"
	case AND:
		return "AND"
	case BOOL:
		return "BOOL"
	case BOOLEAN:
		return "BOOLEAN"
	case CHAR:
		return "CHAR"
	case CREATE:
		return "CREATE"
	case DEFAULT:
		return "DEFAULT"
	case DOUBLE:
		return "DOUBLE"
	case DROP:
		return "DROP"
	case FLOAT:
		return "FLOAT"
	case INDEX:
		return "INDEX"
	case INT:
		return "INT"
	case INTEGER:
		return "INTEGER"
	case KEY:
		return "KEY"
	case NOT:
		return "NOT"
	case NULL_KW:
		return "NULL"
	case PRIMARY:
		return "PRIMARY"
	case REFERENCES:
		return "REFERENCES"
	case STRING_KW:
		return "STRING"
	case TABLE:
		return "TABLE"
	case TEXT:
		return "TEXT"
	case UNIQUE:
		return "UNIQUE"
	case VARCHAR:
		return "VARCHAR"
	default:
		return "UNKNOWN"
	}
}

// keywords maps reserved words to their token types
var keywords = map[string]TokenType{
	"AND":        AND,
	"BOOL":       BOOL,
	"BOOLEAN":    BOOLEAN,
	"CHAR":       CHAR,
	"CREATE":     CREATE,
	"DEFAULT":    DEFAULT,
	"DOUBLE":     DOUBLE,
	"DROP":       DROP,
	"FLOAT":      FLOAT,
	"INDEX":      INDEX,
	"INT":        INT,
	"INTEGER":    INTEGER,
	"KEY":        KEY,
	"NOT":        NOT,
	"NULL":       NULL_KW,
	"PRIMARY":    PRIMARY,
	"REFERENCES": REFERENCES,
	"STRING":     STRING_KW,
	"TABLE":      TABLE,
	"TEXT":       TEXT,
	"UNIQUE":     UNIQUE,
	"VARCHAR":    VARCHAR,
}

// LookupIdent checks if ident is a keyword, returns keyword token type or IDENT
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
