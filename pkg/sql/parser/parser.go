// pkg/sql/parser/parser.go
package parser

import (
	"easydb/pkg/sql/lexer"
	"easydb/pkg/sql/sqlerr"
	"easydb/pkg/types"
)

// Parser is a recursive descent DDL parser. It draws tokens from the
// lexer on demand with exactly one token of lookahead.
type Parser struct {
	lexer  *lexer.Lexer
	cur    lexer.Token
	peek   lexer.Token
	lexErr error // first lexical error, stowed while feeding peek
}

// New creates a new Parser for the given input
func New(input string) *Parser {
	p := &Parser{lexer: lexer.New(input)}
	// Read two tokens to initialize cur and peek
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses input and returns the single statement it contains.
func Parse(input string) (Statement, error) {
	return New(input).Parse()
}

// nextToken advances to the next token. A lexical error is stowed and
// the lookahead is pinned to EOF; the error surfaces from whichever
// parse step trips over it.
func (p *Parser) nextToken() {
	p.cur = p.peek
	if p.lexErr != nil {
		p.peek = lexer.Token{Type: lexer.EOF, Pos: p.peek.Pos}
		return
	}
	tok, err := p.lexer.NextToken()
	if err != nil {
		p.lexErr = err
		tok = lexer.Token{Type: lexer.EOF, Pos: p.peek.Pos}
	}
	p.peek = tok
}

// peekIs reports whether the next token has the given type
func (p *Parser) peekIs(t lexer.TokenType) bool {
	return p.peek.Type == t
}

// expectPeek advances if the next token has the given type
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peek.Type == t {
		p.nextToken()
		return true
	}
	return false
}

// errExpected reports got as falling short of what. A stowed lexical
// error is the real cause and takes precedence.
func (p *Parser) errExpected(what string, got lexer.Token) error {
	if p.lexErr != nil {
		return p.lexErr
	}
	if got.Type == lexer.EOF {
		return sqlerr.Parsef("expected %s, got end of input", what)
	}
	return sqlerr.Parsef("expected %s, got %s", what, got)
}

// errUnexpected reports got as an unexpected token
func (p *Parser) errUnexpected(got lexer.Token) error {
	if p.lexErr != nil {
		return p.lexErr
	}
	if got.Type == lexer.EOF {
		return sqlerr.Parsef("unexpected end of input")
	}
	return sqlerr.Parsef("unexpected token %s", got)
}

// Parse parses exactly one statement, consumes an optional trailing
// semicolon, and requires end of input.
func (p *Parser) Parse() (Statement, error) {
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	if p.peekIs(lexer.SEMICOLON) {
		p.nextToken()
	}

	if p.lexErr != nil {
		return nil, p.lexErr
	}
	if !p.peekIs(lexer.EOF) {
		return nil, sqlerr.Parsef("unexpected token %s after statement", p.peek)
	}

	return stmt, nil
}

// parseStatement dispatches on the statement's leading keyword
func (p *Parser) parseStatement() (Statement, error) {
	switch p.cur.Type {
	case lexer.CREATE:
		return p.parseCreate()
	case lexer.DROP:
		return p.parseDrop()
	default:
		return nil, p.errUnexpected(p.cur)
	}
}

// parseCreate handles CREATE TABLE statements
func (p *Parser) parseCreate() (Statement, error) {
	// Current token is CREATE
	if !p.expectPeek(lexer.TABLE) {
		return nil, p.errExpected("TABLE after CREATE", p.peek)
	}
	return p.parseCreateTableBody()
}

// parseDrop handles DROP TABLE statements
func (p *Parser) parseDrop() (Statement, error) {
	// Current token is DROP
	if !p.expectPeek(lexer.TABLE) {
		return nil, p.errExpected("TABLE after DROP", p.peek)
	}
	return p.parseDropTableBody()
}

// parseCreateTableBody parses: name (column_def, ...)
// Called with the current token on TABLE
func (p *Parser) parseCreateTableBody() (*CreateTableStmt, error) {
	stmt := &CreateTableStmt{}

	if !p.expectPeek(lexer.IDENT) {
		return nil, p.errExpected("table name", p.peek)
	}
	stmt.TableName = p.cur.Literal

	if !p.expectPeek(lexer.LPAREN) {
		return nil, p.errExpected("'('", p.peek)
	}

	// The loop always parses at least one column, so a table without
	// columns is unreachable by this grammar.
	for {
		p.nextToken()
		col, err := p.parseColumnDef()
		if err != nil {
			return nil, err
		}
		stmt.Columns = append(stmt.Columns, col)

		if p.peekIs(lexer.COMMA) {
			p.nextToken() // consume ,
		} else {
			break
		}
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil, p.errExpected("')' or ','", p.peek)
	}

	return stmt, nil
}

// parseDropTableBody parses the table name after DROP TABLE
func (p *Parser) parseDropTableBody() (*DropTableStmt, error) {
	if !p.expectPeek(lexer.IDENT) {
		return nil, p.errExpected("table name", p.peek)
	}
	return &DropTableStmt{TableName: p.cur.Literal}, nil
}

// parseColumnDef parses: name TYPE [constraints...]
// Constraint keywords may appear in any order; the loop stops at the
// first non-keyword token.
func (p *Parser) parseColumnDef() (ColumnDef, error) {
	col := ColumnDef{}

	if p.cur.Type != lexer.IDENT {
		return col, p.errExpected("column name", p.cur)
	}
	col.Name = p.cur.Literal

	p.nextToken()
	colType, err := p.parseColumnType()
	if err != nil {
		return col, err
	}
	col.Type = colType

	for p.peek.Type.IsKeyword() {
		p.nextToken()
		switch p.cur.Type {
		case lexer.PRIMARY:
			if !p.expectPeek(lexer.KEY) {
				return col, p.errExpected("KEY after PRIMARY", p.peek)
			}
			col.PrimaryKey = true
		case lexer.NULL_KW:
			if col.Nullable == NullNotNullable {
				return col, sqlerr.Valuef("column %s cannot be both NULL and NOT NULL", col.Name)
			}
			col.Nullable = NullNullable
		case lexer.NOT:
			if !p.expectPeek(lexer.NULL_KW) {
				return col, p.errExpected("NULL after NOT", p.peek)
			}
			if col.Nullable == NullNullable {
				return col, sqlerr.Valuef("column %s cannot be both NULL and NOT NULL", col.Name)
			}
			col.Nullable = NullNotNullable
		case lexer.UNIQUE:
			col.Unique = true
		case lexer.INDEX:
			col.Index = true
		case lexer.REFERENCES:
			if !p.expectPeek(lexer.IDENT) {
				return col, p.errExpected("table name after REFERENCES", p.peek)
			}
			col.References = p.cur.Literal
		case lexer.DEFAULT:
			// Reserved by the vocabulary; default-value expressions are
			// not implemented.
			return col, sqlerr.Parsef("DEFAULT values are not supported")
		default:
			return col, sqlerr.Parsef("unexpected keyword %s in column definition", p.cur)
		}
	}

	return col, nil
}

// parseColumnType maps a column type keyword onto one of the four
// semantic datatypes
func (p *Parser) parseColumnType() (types.DataType, error) {
	switch p.cur.Type {
	case lexer.BOOL, lexer.BOOLEAN:
		return types.TypeBoolean, nil
	case lexer.INT, lexer.INTEGER:
		return types.TypeInteger, nil
	case lexer.FLOAT, lexer.DOUBLE:
		return types.TypeFloat, nil
	case lexer.CHAR, lexer.STRING_KW, lexer.TEXT, lexer.VARCHAR:
		return types.TypeString, nil
	default:
		return 0, p.errExpected("column type", p.cur)
	}
}
