package parser

import (
	"fmt"

	"github.com/oolang/interpreter/pkg/ast"
	"github.com/oolang/interpreter/pkg/token"
)

// Precedence, loosest to tightest: or, and, not, comparison, +-, */, unary
// minus, postfix (call / field access), primary.

func (p *Parser) parseExpr() (ast.Node, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Node, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.stream.Current().Type == token.OR {
		p.stream.Next()
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = ast.OrOp(lhs, rhs)
	}
	return lhs, nil
}

func (p *Parser) parseAnd() (ast.Node, error) {
	lhs, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.stream.Current().Type == token.AND {
		p.stream.Next()
		rhs, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		lhs = ast.AndOp(lhs, rhs)
	}
	return lhs, nil
}

func (p *Parser) parseNot() (ast.Node, error) {
	if p.stream.Current().Type == token.NOT {
		p.stream.Next()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return ast.NotOp(operand), nil
	}
	return p.parseComparison()
}

var exactComparisonOps = map[token.Type]ast.CompareOp{
	token.EQ:          ast.CmpEq,
	token.NOTEQ:       ast.CmpNotEq,
	token.LESSOREQ:    ast.CmpLessOrEq,
	token.GREATEROREQ: ast.CmpGreaterOrEq,
}

func (p *Parser) parseComparison() (ast.Node, error) {
	lhs, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	cur := p.stream.Current()
	if op, ok := exactComparisonOps[cur.Type]; ok {
		p.stream.Next()
		rhs, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		return ast.Compare(op, lhs, rhs), nil
	}
	if isChar(cur, '<') || isChar(cur, '>') {
		op := ast.CmpLess
		if cur.Ch == '>' {
			op = ast.CmpGreater
		}
		p.stream.Next()
		rhs, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		return ast.Compare(op, lhs, rhs), nil
	}
	return lhs, nil
}

func (p *Parser) parseAdd() (ast.Node, error) {
	lhs, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for {
		cur := p.stream.Current()
		switch {
		case isChar(cur, '+'):
			p.stream.Next()
			rhs, err := p.parseMul()
			if err != nil {
				return nil, err
			}
			lhs = ast.AddOp(lhs, rhs)
		case isChar(cur, '-'):
			p.stream.Next()
			rhs, err := p.parseMul()
			if err != nil {
				return nil, err
			}
			lhs = ast.SubOp(lhs, rhs)
		default:
			return lhs, nil
		}
	}
}

func (p *Parser) parseMul() (ast.Node, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		cur := p.stream.Current()
		switch {
		case isChar(cur, '*'):
			p.stream.Next()
			rhs, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			lhs = ast.MultOp(lhs, rhs)
		case isChar(cur, '/'):
			p.stream.Next()
			rhs, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			lhs = ast.DivOp(lhs, rhs)
		default:
			return lhs, nil
		}
	}
}

// parseUnary folds a leading '-' into a Sub(0, operand) node. The lexer
// never produces a negative Number literal through its normal per-line
// scan (see lexer.readNumber's doc comment), so this is where negation
// is actually implemented, regardless of what it is applied to.
func (p *Parser) parseUnary() (ast.Node, error) {
	if isChar(p.stream.Current(), '-') {
		p.stream.Next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.SubOp(ast.Num(0), operand), nil
	}
	return p.parsePostfix()
}

// parsePostfix handles '.field' and '.method(args)' suffixes. Chained
// field reads accumulate into one VariableValue's dotted name list;
// method calls build a MethodCall wrapping whatever precedes them.
func (p *Parser) parsePostfix() (ast.Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for isChar(p.stream.Current(), '.') {
		p.stream.Next() // consume '.', cursor now on field/method name
		if err := p.stream.Expect(token.ID); err != nil {
			return nil, err
		}
		name := p.stream.Current().Str
		p.stream.Next() // consume name
		if isChar(p.stream.Current(), '(') {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			base = ast.Call(base, name, args...)
			continue
		}
		vv, ok := base.(*ast.VariableValue)
		if !ok {
			return nil, fmt.Errorf("field access is only supported on a variable or field chain")
		}
		names := append(append([]string{}, vv.Names...), name)
		base = ast.Dotted(names...)
	}
	return base, nil
}

// parseArgs parses a parenthesized, comma-separated argument list. It
// assumes the cursor already sits on the opening '(' (callers confirm
// this via isChar before calling), so the open and close parens are
// each checked in place and consumed manually rather than via ExpectNext.
func (p *Parser) parseArgs() ([]ast.Node, error) {
	if err := p.stream.ExpectValue(token.Char('(')); err != nil {
		return nil, err
	}
	p.stream.Next() // consume '('
	var args []ast.Node
	if !isChar(p.stream.Current(), ')') {
		for {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, e)
			if isChar(p.stream.Current(), ',') {
				p.stream.Next()
				continue
			}
			break
		}
	}
	if err := p.stream.ExpectValue(token.Char(')')); err != nil {
		return nil, err
	}
	p.stream.Next() // consume ')'
	return args, nil
}

func (p *Parser) parsePrimary() (ast.Node, error) {
	cur := p.stream.Current()
	switch {
	case cur.Type == token.NUMBER:
		p.stream.Next()
		return ast.Num(cur.Num), nil
	case cur.Type == token.STRING:
		p.stream.Next()
		return ast.Str(cur.Str), nil
	case cur.Type == token.TRUE:
		p.stream.Next()
		return ast.Boolean(true), nil
	case cur.Type == token.FALSE:
		p.stream.Next()
		return ast.Boolean(false), nil
	case cur.Type == token.NONE:
		p.stream.Next()
		return ast.None(), nil
	case isChar(cur, '('):
		p.stream.Next() // consume '('
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.stream.ExpectValue(token.Char(')')); err != nil {
			return nil, err
		}
		p.stream.Next() // consume ')'
		return e, nil
	case cur.Type == token.ID && cur.Str == "str" && isChar(p.stream.PeekAt(1), '('):
		p.stream.Next()
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		if len(args) != 1 {
			return nil, fmt.Errorf("str() takes exactly one argument")
		}
		return ast.ToStr(args[0]), nil
	case cur.Type == token.ID:
		p.stream.Next()
		if isChar(p.stream.Current(), '(') {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return ast.New(ast.ID(cur.Str), args...), nil
		}
		return ast.ID(cur.Str), nil
	default:
		return nil, fmt.Errorf("unexpected token %s", cur)
	}
}
