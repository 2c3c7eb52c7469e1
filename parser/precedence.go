/*
File    : gomix-lite/parser/precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/gomix-lite/ast"
	"github.com/akashmaji946/gomix-lite/langerr"
	"github.com/akashmaji946/gomix-lite/lexer"
)

// Operator precedence constants, lowest to highest. Higher number binds
// tighter.
//
// Precedence hierarchy (lowest to highest):
//  1. Comparison: == != < <= > >=
//  2. Additive: + -
//  3. Multiplicative: * /
//  4. Exponential: ^ (right-associative)
//  5. Unary prefix: - !
//
// Example: "1 + 2 * 3 ^ 2" parses as "1 + (2 * (3 ^ 2))".
const (
	// MinimumPriority is the starting priority for parsing a whole
	// expression.
	MinimumPriority = 0

	ComparisonPriority     = 10
	AdditivePriority       = 20
	MultiplicativePriority = 30
	ExponentialPriority    = 40
	UnaryPriority          = 50
)

// precedenceOf returns the binding priority of tok when used as a binary
// operator, or -1 if it is not one.
func precedenceOf(tok lexer.Token) int {
	if tok.Kind != lexer.Operator {
		return -1
	}
	switch tok.OperatorSubkind {
	case lexer.Comparison:
		return ComparisonPriority
	case lexer.Additive:
		return AdditivePriority
	case lexer.Multiplicative:
		return MultiplicativePriority
	case lexer.Exponential:
		return ExponentialPriority
	default:
		return -1
	}
}

var binaryOperators = map[string]ast.BinaryOperator{
	"+":  ast.Add,
	"-":  ast.Sub,
	"*":  ast.Mul,
	"/":  ast.Div,
	"^":  ast.Pow,
	"==": ast.Eq,
	"!=": ast.Neq,
	"<":  ast.Lt,
	"<=": ast.Lte,
	">":  ast.Gt,
	">=": ast.Gte,
}

// parseExpression parses a complete expression using precedence climbing:
// an initial unary/primary term, followed by zero or more binary
// operators whose precedence is at least minPrecedence. `^` is
// right-associative (its right operand is climbed with the operator's own
// precedence rather than that precedence + 1); every
// other operator is left-associative.
func (p *Parser) parseExpression(minPrecedence int) (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if left == nil {
		return nil, nil
	}

	for {
		tok := p.cur()
		prec := precedenceOf(tok)
		if prec < 0 || prec < minPrecedence {
			return left, nil
		}

		op, ok := binaryOperators[tok.Literal]
		if !ok {
			return left, nil
		}
		line := tok.Line
		p.advance()

		nextMin := prec + 1
		if op == ast.Pow {
			nextMin = prec // right-associative
		}
		right, err := p.parseExpression(nextMin)
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, &langerr.ParseError{
				Kind:   langerr.UnexpectedEmptyValue,
				Line:   p.cur().Line,
				Column: p.cur().StartColumn,
			}
		}
		left = ast.NewBinaryOperation(line, left, op, right)
	}
}

// parseUnary parses an optional prefix `-` or `!` applied to a primary
// term, then the primary term itself.
func (p *Parser) parseUnary() (ast.Expression, error) {
	tok := p.cur()
	if tok.Kind == lexer.Operator && (tok.Literal == "-" || tok.Literal == "!") {
		line := tok.Line
		p.advance()
		operand, err := p.parseExpression(UnaryPriority)
		if err != nil {
			return nil, err
		}
		if operand == nil {
			return nil, &langerr.ParseError{Kind: langerr.UnexpectedEmptyValue, Line: line, Column: tok.StartColumn}
		}
		op := ast.Neg
		if tok.Literal == "!" {
			op = ast.Not
		}
		return ast.NewUnaryOperation(line, op, operand), nil
	}
	return p.parsePrimary()
}

// parsePrimary parses a literal, identifier, function call, or
// parenthesized expression. Returns (nil, nil) when the current token
// cannot start any expression, so callers that require an expression can
// report a precise error at the right source position.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.cur()
	switch tok.Kind {
	case lexer.NumberLit:
		p.advance()
		return parseNumberLiteral(tok)
	case lexer.StringLit:
		p.advance()
		return ast.NewStringLiteral(tok.Line, tok.Literal), nil
	case lexer.BoolLit:
		p.advance()
		return ast.NewBooleanLiteral(tok.Line, tok.Literal == "true"), nil
	case lexer.LParen:
		p.advance()
		expr, err := p.parseExpression(MinimumPriority)
		if err != nil {
			return nil, err
		}
		if expr == nil {
			return nil, &langerr.ParseError{Kind: langerr.UnexpectedEmptyValue, Line: tok.Line, Column: tok.StartColumn}
		}
		if _, err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return expr, nil
	case lexer.Ident:
		p.advance()
		if p.cur().Kind == lexer.LParen {
			return p.parseFunctionCall(tok.Literal, tok.Line)
		}
		return ast.NewIdentifier(tok.Line, tok.Literal), nil
	default:
		return nil, nil
	}
}
