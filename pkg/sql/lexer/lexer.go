// pkg/sql/lexer/lexer.go
package lexer

import (
	"strings"
	"unicode/utf8"

	"easydb/pkg/sql/sqlerr"
)

// Lexer tokenizes DDL input. Tokens are produced lazily, one per
// NextToken call; a lexical error is discovered only on the draw that
// reaches it.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char
}

// New creates a new Lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar reads the next character
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

// atEOF reports whether the current position is past the input. The
// zero char alone does not mean end of input: a NUL byte in the middle
// of the stream is an ordinary (unrecognized) character.
func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// NextToken returns the next token from the input. At end of input it
// returns an EOF token. On a character that starts no token it returns
// a parse error naming the character and does not advance, so repeated
// draws keep returning the same error.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	var tok Token
	tok.Pos = l.pos

	switch {
	case l.atEOF():
		tok.Type = EOF
		return tok, nil
	case isDigit(l.ch):
		tok.Type = NUMBER
		tok.Literal = l.readNumber()
		return tok, nil
	case isLetter(l.ch):
		tok.Literal = l.readIdentifier()
		tok.Type = LookupIdent(strings.ToUpper(tok.Literal))
		return tok, nil
	case l.ch == '\'':
		lit, ok := l.readString()
		if !ok {
			return tok, sqlerr.Parsef("unterminated string")
		}
		tok.Type = STRING
		tok.Literal = lit
		return tok, nil
	}

	switch l.ch {
	case '.':
		tok = l.newToken(DOT, ".")
	case '=':
		tok = l.newToken(EQ, "=")
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: NEQ, Literal: "!=", Pos: tok.Pos}
		} else {
			tok = l.newToken(BANG, "!")
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: LTE, Literal: "<=", Pos: tok.Pos}
		} else if l.peekChar() == '>' {
			l.readChar()
			tok = Token{Type: LTGT, Literal: "<>", Pos: tok.Pos}
		} else {
			tok = l.newToken(LT, "<")
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: GTE, Literal: ">=", Pos: tok.Pos}
		} else {
			tok = l.newToken(GT, ">")
		}
	case '+':
		tok = l.newToken(PLUS, "+")
	case '-':
		tok = l.newToken(MINUS, "-")
	case '*':
		tok = l.newToken(STAR, "*")
	case '/':
		tok = l.newToken(SLASH, "/")
	case '^':
		tok = l.newToken(CARET, "^")
	case '%':
		tok = l.newToken(PERCENT, "%")
	case '?':
		tok = l.newToken(QUESTION, "?")
	case '(':
		tok = l.newToken(LPAREN, "(")
	case ')':
		tok = l.newToken(RPAREN, ")")
	case ',':
		tok = l.newToken(COMMA, ",")
	case ';':
		tok = l.newToken(SEMICOLON, ";")
	default:
		// A NUL byte lands here too: only running off the end of the
		// input is EOF. Decode a full rune so the message names the
		// actual character, not its first UTF-8 byte.
		r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
		return tok, sqlerr.Parsef("unexpected character %q", r)
	}

	l.readChar()
	return tok, nil
}

// newToken creates a single-character token at the current position
func (l *Lexer) newToken(typ TokenType, literal string) Token {
	return Token{Type: typ, Literal: literal, Pos: l.pos}
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier reads a maximal run of identifier characters
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads decimal digits, an optional fraction, and an
// optional exponent. The exact matched text is kept; conversion is
// deferred to a later binding phase.
func (l *Lexer) readNumber() string {
	start := l.pos

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[start:l.pos]
}

// readString reads a single-quoted string literal, treating a doubled
// quote ('') as an escaped quote. Returns false if the closing quote is
// missing.
func (l *Lexer) readString() (string, bool) {
	var result strings.Builder

	l.readChar() // skip opening quote

	for {
		switch {
		case l.atEOF():
			return "", false
		case l.ch == '\'':
			if l.peekChar() == '\'' {
				result.WriteByte('\'')
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // skip closing quote
			return result.String(), true
		default:
			result.WriteByte(l.ch)
			l.readChar()
		}
	}
}

// isLetter returns true if ch is a letter
func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isDigit returns true if ch is a digit
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
