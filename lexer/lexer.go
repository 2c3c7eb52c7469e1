/*
File    : gomix-lite/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer turns GoMix-Lite source text into a stream of Tokens.
// It scans byte by byte with a (position, line, column) cursor, skipping
// whitespace and `//` comments, and reports malformed input as a
// *langerr.LexError rather than panicking.
package lexer

import (
	"strings"

	"github.com/akashmaji946/gomix-lite/langerr"
)

// Lexer scans GoMix-Lite source text into tokens. It holds its own cursor
// state and is single-use: construct one with New and drain it with
// repeated calls to NextToken until an EOF token appears. Tokenize does
// both for a whole source string.
type Lexer struct {
	src       string
	current   byte
	position  int
	srcLength int
	line      int
	column    int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	lex := &Lexer{
		src:       src,
		srcLength: len(src),
		line:      1,
		column:    1,
	}
	if lex.srcLength > 0 {
		lex.current = src[0]
	}
	return lex
}

// Tokenize scans the entire source and returns the token stream, always
// terminated by a single EOF token. It stops and returns the first error
// encountered; no recovery is attempted.
func Tokenize(src string) ([]Token, error) {
	lex := New(src)
	var tokens []Token
	for {
		tok, err := lex.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, nil
		}
	}
}

// NextToken scans and returns the next token, skipping leading whitespace
// and comments. It returns a *langerr.LexError for malformed input.
func (lex *Lexer) NextToken() (Token, error) {
	lex.skipWhitespaceAndComments()

	line, col := lex.line, lex.column

	if lex.current == 0 {
		return newToken(EOF, "", line, col, col), nil
	}

	switch {
	case isDigit(lex.current):
		return lex.readNumber()
	case lex.current == '"':
		return lex.readString()
	case isIdentStart(lex.current):
		return lex.readIdentifier(), nil
	}

	switch lex.current {
	case '+':
		return lex.operatorToken(Additive, "+"), nil
	case '-':
		return lex.operatorToken(Additive, "-"), nil
	case '*':
		return lex.operatorToken(Multiplicative, "*"), nil
	case '/':
		return lex.operatorToken(Multiplicative, "/"), nil
	case '^':
		return lex.operatorToken(Exponential, "^"), nil
	case '=':
		if lex.peek() == '=' {
			return lex.twoCharOperatorToken(Comparison, "=="), nil
		}
		tok := newToken(Assign, "=", line, col, col)
		lex.advance()
		return tok, nil
	case '!':
		if lex.peek() == '=' {
			return lex.twoCharOperatorToken(Comparison, "!="), nil
		}
		return lex.operatorToken(Unary, "!"), nil
	case '<':
		if lex.peek() == '=' {
			return lex.twoCharOperatorToken(Comparison, "<="), nil
		}
		return lex.operatorToken(Comparison, "<"), nil
	case '>':
		if lex.peek() == '=' {
			return lex.twoCharOperatorToken(Comparison, ">="), nil
		}
		return lex.operatorToken(Comparison, ">"), nil
	case '(':
		return lex.punctToken(LParen, "("), nil
	case ')':
		return lex.punctToken(RParen, ")"), nil
	case '{':
		return lex.punctToken(LBrace, "{"), nil
	case '}':
		return lex.punctToken(RBrace, "}"), nil
	case ',':
		return lex.punctToken(Comma, ","), nil
	case ';':
		return lex.punctToken(Semicolon, ";"), nil
	}

	ch := lex.current
	lex.advance()
	return Token{}, &langerr.LexError{
		Kind:   langerr.UnexpectedToken,
		Detail: string(ch),
		Line:   line,
		Column: col,
	}
}

// operatorToken builds a single-character Operator token with the given
// subkind and advances past it.
func (lex *Lexer) operatorToken(sub OperatorSubkind, literal string) Token {
	line, col := lex.line, lex.column
	lex.advance()
	tok := newToken(Operator, literal, line, col, col)
	tok.OperatorSubkind = sub
	return tok
}

// twoCharOperatorToken builds a two-character Operator token (e.g. `==`)
// and advances past both characters. Call sites have already confirmed
// the second character matches via peek().
func (lex *Lexer) twoCharOperatorToken(sub OperatorSubkind, literal string) Token {
	line, col := lex.line, lex.column
	lex.advance()
	lex.advance()
	tok := newToken(Operator, literal, line, col, col+1)
	tok.OperatorSubkind = sub
	return tok
}

// punctToken builds a single-character structural token and advances past
// it.
func (lex *Lexer) punctToken(kind TokenKind, literal string) Token {
	line, col := lex.line, lex.column
	lex.advance()
	return newToken(kind, literal, line, col, col)
}

// readNumber scans a numeric literal: one or more digits, optionally a
// single '.' followed by more digits. A second '.' is a malformed-literal
// error.
func (lex *Lexer) readNumber() (Token, error) {
	line, startCol := lex.line, lex.column
	var sb strings.Builder
	isFloat := false

	for isDigit(lex.current) {
		sb.WriteByte(lex.current)
		lex.advance()
	}
	if lex.current == '.' {
		isFloat = true
		sb.WriteByte(lex.current)
		lex.advance()
		for isDigit(lex.current) {
			sb.WriteByte(lex.current)
			lex.advance()
		}
		if lex.current == '.' {
			return Token{}, &langerr.LexError{
				Kind:   langerr.MalformedNumberLiteral,
				Detail: sb.String() + ".",
				Line:   line,
				Column: startCol,
			}
		}
	}

	tok := newToken(NumberLit, sb.String(), line, startCol, lex.column-1)
	tok.IsFloat = isFloat
	return tok, nil
}

// readString scans a string literal: an opening '"', characters up to the
// next unescaped '"', and the closing '"'. Reaching EOF before the
// closing quote is a lexer error. The escape sequences \" \\ \n \t \r are
// recognized; any other backslash sequence is taken literally (the
// backslash and following character are both kept).
func (lex *Lexer) readString() (Token, error) {
	line, startCol := lex.line, lex.column
	lex.advance() // consume opening quote

	var sb strings.Builder
	for {
		if lex.current == 0 {
			return Token{}, &langerr.LexError{
				Kind:   langerr.UnexpectedEOF,
				Detail: "unterminated string literal",
				Line:   line,
				Column: startCol,
			}
		}
		if lex.current == '"' {
			break
		}
		if lex.current == '\\' {
			lex.advance()
			switch lex.current {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				sb.WriteByte('\\')
				sb.WriteByte(lex.current)
			}
			lex.advance()
			continue
		}
		sb.WriteByte(lex.current)
		lex.advance()
	}

	endCol := lex.column
	lex.advance() // consume closing quote
	return newToken(StringLit, sb.String(), line, startCol, endCol), nil
}

// readIdentifier scans an identifier or keyword: a letter or underscore
// followed by letters, digits, or underscores.
func (lex *Lexer) readIdentifier() Token {
	line, startCol := lex.line, lex.column
	var sb strings.Builder
	for isIdentPart(lex.current) {
		sb.WriteByte(lex.current)
		lex.advance()
	}
	literal := sb.String()
	endCol := lex.column - 1

	switch literal {
	case "true", "false":
		return newToken(BoolLit, literal, line, startCol, endCol)
	default:
		return newToken(lookupIdent(literal), literal, line, startCol, endCol)
	}
}

func (lex *Lexer) peek() byte {
	if lex.position+1 >= lex.srcLength {
		return 0
	}
	return lex.src[lex.position+1]
}

func (lex *Lexer) advance() {
	lex.position++
	lex.column++
	if lex.position >= lex.srcLength {
		lex.current = 0
		lex.position = lex.srcLength
	} else {
		lex.current = lex.src[lex.position]
	}
}

func (lex *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case lex.current == '\n':
			lex.advance()
			lex.line++
			lex.column = 1
		case isWhitespace(lex.current):
			lex.advance()
		case lex.current == '/' && lex.peek() == '/':
			for lex.current != '\n' && lex.current != 0 {
				lex.advance()
			}
		default:
			return
		}
	}
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}
