/*
File    : gomix-lite/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser builds an *ast.Program from a token stream using
// recursive descent for statements and precedence climbing (Pratt
// parsing) for expressions.
package parser

import (
	"strconv"

	"github.com/akashmaji946/gomix-lite/ast"
	"github.com/akashmaji946/gomix-lite/langerr"
	"github.com/akashmaji946/gomix-lite/lexer"
)

// Parser consumes a fixed token slice with a single lookahead cursor. It
// never backtracks: once a token is consumed it is never revisited.
type Parser struct {
	tokens   []lexer.Token
	position int
}

// New builds a Parser over tokens. tokens must end with an EOF token, as
// Tokenize always produces.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse tokenizes nothing itself; it parses a complete program from the
// Parser's token stream and returns the AST root, or the first
// *langerr.ParseError encountered.
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	p := New(tokens)
	body, err := p.parseStatements(lexer.EOF)
	if err != nil {
		return nil, err
	}
	return ast.NewProgram(body), nil
}

func (p *Parser) cur() lexer.Token {
	return p.tokens[p.position]
}

func (p *Parser) peekNext() lexer.Token {
	if p.position+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.position+1]
}

func (p *Parser) advance() lexer.Token {
	tok := p.cur()
	if p.position < len(p.tokens)-1 {
		p.position++
	}
	return tok
}

// expect consumes the current token if its kind matches, otherwise
// returns a ParseError naming what was expected.
func (p *Parser) expect(kind lexer.TokenKind) (lexer.Token, error) {
	tok := p.cur()
	if tok.Kind != kind {
		if tok.Kind == lexer.EOF {
			return tok, &langerr.ParseError{
				Kind:     langerr.UnexpectedParseEOF,
				Expected: kind.String(),
				Line:     tok.Line,
				Column:   tok.StartColumn,
			}
		}
		return tok, &langerr.ParseError{
			Kind:     langerr.UnexpectedParseToken,
			Expected: kind.String(),
			Actual:   tok.Kind.String(),
			Line:     tok.Line,
			Column:   tok.StartColumn,
		}
	}
	return p.advance(), nil
}

// parseStatements parses statements until the current token is until (the
// block's closing brace, or EOF for a whole program).
func (p *Parser) parseStatements(until lexer.TokenKind) (ast.Block, error) {
	var body ast.Block
	for p.cur().Kind != until {
		if p.cur().Kind == lexer.EOF {
			return nil, &langerr.ParseError{
				Kind:     langerr.UnexpectedParseEOF,
				Expected: until.String(),
				Line:     p.cur().Line,
				Column:   p.cur().StartColumn,
			}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return body, nil
}

// parseBlock parses `{ statements }`.
func (p *Parser) parseBlock() (ast.Block, error) {
	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}
	body, err := p.parseStatements(lexer.RBrace)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RBrace); err != nil {
		return nil, err
	}
	return body, nil
}

// parseBody parses an if-branch body: either a braced block, or a single
// statement that consumes its own terminator (its `;`, or its own closing
// `}` if that single statement is itself an if/func).
func (p *Parser) parseBody() (ast.Block, error) {
	if p.cur().Kind == lexer.LBrace {
		return p.parseBlock()
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return ast.Block{stmt}, nil
}

// parseStatement dispatches on the current token to the matching
// statement production: a let-declaration, a function declaration, an
// if-conditional, a return, or a bare expression statement.
func (p *Parser) parseStatement() (ast.Expression, error) {
	switch p.cur().Kind {
	case lexer.KeywordLet:
		return p.parseDeclaration()
	case lexer.KeywordFunc:
		return p.parseFunctionDeclaration()
	case lexer.KeywordIf:
		return p.parseIf()
	case lexer.KeywordReturn:
		return p.parseReturn()
	default:
		return p.parseExpressionStatement()
	}
}

// parseDeclaration parses `let name = expr;`.
func (p *Parser) parseDeclaration() (ast.Expression, error) {
	line := p.cur().Line
	p.advance() // let
	name, err := p.expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Assign); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(MinimumPriority)
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, &langerr.ParseError{Kind: langerr.UnexpectedEmptyValue, Line: line, Column: name.StartColumn}
	}
	if _, err := p.expect(lexer.Semicolon); err != nil {
		return nil, err
	}
	return ast.NewDeclaration(line, name.Literal, expr), nil
}

// parseFunctionDeclaration parses `func name(params) { body }`.
func (p *Parser) parseFunctionDeclaration() (ast.Expression, error) {
	line := p.cur().Line
	p.advance() // func
	name, err := p.expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}
	var params []string
	for p.cur().Kind != lexer.RParen {
		if len(params) > 0 {
			if _, err := p.expect(lexer.Comma); err != nil {
				return nil, err
			}
		}
		param, err := p.expect(lexer.Ident)
		if err != nil {
			return nil, err
		}
		params = append(params, param.Literal)
	}
	if _, err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionDeclaration(line, name.Literal, params, body), nil
}

// parseIf parses `if (cond) { then } [else { otherwise }]`.
func (p *Parser) parseIf() (ast.Expression, error) {
	line := p.cur().Line
	p.advance() // if
	if _, err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(MinimumPriority)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	then, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	var els ast.Block
	if p.cur().Kind == lexer.KeywordElse {
		p.advance()
		els, err = p.parseBody()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIfConditional(line, cond, then, els), nil
}

// parseReturn parses `return expr;`.
func (p *Parser) parseReturn() (ast.Expression, error) {
	line := p.cur().Line
	p.advance() // return
	expr, err := p.parseExpression(MinimumPriority)
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, &langerr.ParseError{Kind: langerr.UnexpectedEmptyValue, Line: line, Column: p.cur().StartColumn}
	}
	if _, err := p.expect(lexer.Semicolon); err != nil {
		return nil, err
	}
	return ast.NewReturn(line, expr), nil
}

// parseExpressionStatement parses a bare expression followed by `;`,
// wrapped as an ast.Statement. The evaluator returns the wrapped
// expression's value, so the last statement of a block yields the
// block's value.
func (p *Parser) parseExpressionStatement() (ast.Expression, error) {
	line := p.cur().Line
	expr, err := p.parseExpression(MinimumPriority)
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, &langerr.ParseError{
			Kind:   langerr.UnrecognizedToken,
			Actual: p.cur().Kind.String(),
			Line:   p.cur().Line,
			Column: p.cur().StartColumn,
		}
	}
	if _, err := p.expect(lexer.Semicolon); err != nil {
		return nil, err
	}
	return ast.NewStatement(line, expr), nil
}

// parseFunctionCall parses the argument list of a call whose callee name
// has already been consumed, i.e. starting at `(`.
func (p *Parser) parseFunctionCall(name string, line int) (ast.Expression, error) {
	if _, err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for p.cur().Kind != lexer.RParen {
		if len(args) > 0 {
			if _, err := p.expect(lexer.Comma); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseExpression(MinimumPriority)
		if err != nil {
			return nil, err
		}
		if arg == nil {
			return nil, &langerr.ParseError{
				Kind:   langerr.UnexpectedEmptyValue,
				Line:   p.cur().Line,
				Column: p.cur().StartColumn,
			}
		}
		args = append(args, arg)
	}
	if _, err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	return ast.NewFunctionCall(line, name, args, line), nil
}

// parseNumberLiteral converts a NumberLit token into an ast.Literal,
// dispatching on the token's IsFloat flag. Malformed numeric text never
// reaches here: the lexer already rejected it.
func parseNumberLiteral(tok lexer.Token) (ast.Expression, error) {
	if tok.IsFloat {
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, &langerr.ParseError{Kind: langerr.UnrecognizedToken, Actual: tok.Literal, Line: tok.Line, Column: tok.StartColumn}
		}
		return ast.NewFloatLiteral(tok.Line, f), nil
	}
	n, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		return nil, &langerr.ParseError{Kind: langerr.UnrecognizedToken, Actual: tok.Literal, Line: tok.Line, Column: tok.StartColumn}
	}
	return ast.NewIntegerLiteral(tok.Line, n), nil
}
