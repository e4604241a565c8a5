// Package parser is a hand-rolled recursive-descent parser that turns a
// lexer.Stream into the AST pkg/interpreter walks. The source language's
// own parser was never part of what was retrieved alongside its lexer
// and evaluator, and turning a token stream into a tree is explicitly
// placed outside the evaluator core's responsibility — this package
// exists purely so the module runs end to end, not as a spec'd
// component, and its surface syntax (how a class, a constructor call, or
// a stringify call is spelled) is this package's own design, not a
// carried-over contract.
package parser

import (
	"fmt"

	"github.com/oolang/interpreter/pkg/ast"
	"github.com/oolang/interpreter/pkg/config"
	"github.com/oolang/interpreter/pkg/lexer"
	"github.com/oolang/interpreter/pkg/token"
)

type Parser struct {
	stream      *lexer.Stream
	indentWidth int
}

// Parse lexes src and parses it into a flat program: a sequence of
// top-level statements sharing one module scope. It uses the default
// indent width for diagnostics; ParseWithConfig lets a caller supply the
// width configured in oolang.yml.
func Parse(src string) ([]ast.Node, error) {
	return ParseWithConfig(src, config.Default())
}

// ParseWithConfig is Parse with an explicit RunConfig, whose IndentWidth
// is used to turn a token's indent level into a column number reported
// in parse errors.
func ParseWithConfig(src string, cfg *config.RunConfig) ([]ast.Node, error) {
	tokens, err := lexer.Lex(src)
	if err != nil {
		return nil, err
	}
	p := &Parser{stream: lexer.NewStream(tokens), indentWidth: cfg.IndentWidth.OrDefault()}
	return p.parseProgram()
}

// errorAt reports err as having occurred at tok's source position,
// converting its indent level to a column via the configured indent
// width.
func (p *Parser) errorAt(tok token.Token, err error) error {
	col := tok.Indent*p.indentWidth + 1
	return fmt.Errorf("line %d, column %d: %w", tok.Line, col, err)
}

func (p *Parser) parseProgram() ([]ast.Node, error) {
	var stmts []ast.Node
	for p.stream.Current().Type != token.EOF {
		startTok := p.stream.Current()
		s, err := p.parseStmt()
		if err != nil {
			return nil, p.errorAt(startTok, err)
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func (p *Parser) parseStmt() (ast.Node, error) {
	switch p.stream.Current().Type {
	case token.CLASS:
		return p.parseClassDef()
	case token.IF:
		return p.parseIf()
	case token.RETURN:
		return p.parseReturn()
	case token.PRINT:
		return p.parsePrint()
	default:
		return p.parseSimpleStmt()
	}
}

// expectBlockOpen validates and consumes the Newline/Indent pair that
// opens an indented block. It assumes the cursor sits on an
// as-yet-unconsumed ':' token, which its first ExpectNext skips past.
func (p *Parser) expectBlockOpen() error {
	if _, err := p.stream.ExpectNext(token.NEWLINE); err != nil {
		return err
	}
	if _, err := p.stream.ExpectNext(token.INDENT); err != nil {
		return err
	}
	p.stream.Next() // consume INDENT
	return nil
}

// expectBlockClose validates and consumes the Dedent that closes an
// indented block, once the caller's own loop has stopped at it.
func (p *Parser) expectBlockClose() error {
	if err := p.stream.Expect(token.DEDENT); err != nil {
		return err
	}
	p.stream.Next()
	return nil
}

func (p *Parser) parseBlock() (ast.Node, error) {
	if err := p.expectBlockOpen(); err != nil {
		return nil, err
	}
	var stmts []ast.Node
	for p.stream.Current().Type != token.DEDENT && p.stream.Current().Type != token.EOF {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	if err := p.expectBlockClose(); err != nil {
		return nil, err
	}
	return ast.Block(stmts...), nil
}

func (p *Parser) parseClassDef() (ast.Node, error) {
	nameTok, err := p.stream.ExpectNext(token.ID) // skip 'class', validate name
	if err != nil {
		return nil, err
	}
	p.stream.Next() // consume name, cursor now on '(' or ':'

	parent := ""
	if isChar(p.stream.Current(), '(') {
		pTok, err := p.stream.ExpectNext(token.ID) // skip '(', validate parent name
		if err != nil {
			return nil, err
		}
		parent = pTok.Str
		if _, err := p.stream.ExpectNextValue(token.Char(')')); err != nil { // skip parent name, validate ')'
			return nil, err
		}
		if _, err := p.stream.ExpectNextValue(token.Char(':')); err != nil { // skip ')', validate ':'
			return nil, err
		}
	} else if err := p.stream.ExpectValue(token.Char(':')); err != nil { // ':' is already current
		return nil, err
	}

	if err := p.expectBlockOpen(); err != nil {
		return nil, err
	}
	var methods []*ast.MethodDef
	for p.stream.Current().Type == token.DEF {
		m, err := p.parseMethodDef()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	if err := p.expectBlockClose(); err != nil {
		return nil, err
	}
	return ast.Class(nameTok.Str, parent, methods...), nil
}

func (p *Parser) parseMethodDef() (*ast.MethodDef, error) {
	nameTok, err := p.stream.ExpectNext(token.ID) // skip 'def', validate name
	if err != nil {
		return nil, err
	}
	if _, err := p.stream.ExpectNextValue(token.Char('(')); err != nil { // skip name, validate '('
		return nil, err
	}
	p.stream.Next() // consume '(', cursor now on first param or ')'

	var params []string
	if !isChar(p.stream.Current(), ')') {
		if err := p.stream.Expect(token.ID); err != nil {
			return nil, err
		}
		params = append(params, p.stream.Current().Str)
		p.stream.Next() // consume first param
		for isChar(p.stream.Current(), ',') {
			pTok, err := p.stream.ExpectNext(token.ID) // skip ',', validate next param
			if err != nil {
				return nil, err
			}
			params = append(params, pTok.Str)
			p.stream.Next() // consume param
		}
	}
	if err := p.stream.ExpectValue(token.Char(')')); err != nil { // ')' is already current
		return nil, err
	}
	p.stream.Next() // consume ')'
	if err := p.stream.ExpectValue(token.Char(':')); err != nil { // ':' is already current
		return nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.MethodDef{Name: nameTok.Str, Params: stripSelf(params), Body: ast.Body(block)}, nil
}

// stripSelf drops a literal leading "self" parameter: spec arity counts
// declared formal parameters excluding the implicit self, but this
// grammar lets an author spell self explicitly as the first parameter.
func stripSelf(params []string) []string {
	if len(params) > 0 && params[0] == "self" {
		return params[1:]
	}
	return params
}

func (p *Parser) parseIf() (ast.Node, error) {
	p.stream.Next() // if
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.stream.ExpectValue(token.Char(':')); err != nil { // ':' is already current
		return nil, err
	}
	thenBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBlock ast.Node
	if p.stream.Current().Type == token.ELSE {
		p.stream.Next() // else
		if err := p.stream.ExpectValue(token.Char(':')); err != nil {
			return nil, err
		}
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return ast.If(cond, thenBlock, elseBlock), nil
}

func (p *Parser) parseReturn() (ast.Node, error) {
	p.stream.Next() // return
	var val ast.Node = ast.None()
	if p.stream.Current().Type != token.NEWLINE {
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		val = v
	}
	if err := p.stream.Expect(token.NEWLINE); err != nil { // NEWLINE is already current
		return nil, err
	}
	p.stream.Next()
	return ast.Ret(val), nil
}

// parsePrint distinguishes the bare-name form (a single identifier
// immediately followed by end of line) from the general argument-list
// form, since the two are evaluated differently: the bare-name form
// reads straight out of scope instead of through a VariableValue.
func (p *Parser) parsePrint() (ast.Node, error) {
	p.stream.Next() // print
	if p.stream.Current().Type == token.NEWLINE {
		p.stream.Next()
		return ast.PrintArgs(), nil
	}
	if p.stream.Current().Type == token.ID && p.stream.PeekAt(1).Type == token.NEWLINE {
		name := p.stream.Current().Str
		p.stream.Next()
		p.stream.Next()
		return ast.PrintName(name), nil
	}
	var args []ast.Node
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
	if err := p.stream.Expect(token.NEWLINE); err != nil { // NEWLINE is already current
		return nil, err
	}
	p.stream.Next()
	return ast.PrintArgs(args...), nil
}

// parseSimpleStmt parses an expression and, if it is immediately followed
// by '=', turns it into an assignment or field assignment.
func (p *Parser) parseSimpleStmt() (ast.Node, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if isChar(p.stream.Current(), '=') {
		p.stream.Next()
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.stream.Expect(token.NEWLINE); err != nil { // NEWLINE is already current
			return nil, err
		}
		p.stream.Next()
		vv, ok := expr.(*ast.VariableValue)
		if !ok {
			return nil, fmt.Errorf("invalid assignment target")
		}
		if len(vv.Names) == 1 {
			return ast.Assign(vv.Names[0], rhs), nil
		}
		object := ast.Node(ast.ID(vv.Names[0]))
		if len(vv.Names) > 2 {
			object = ast.Dotted(vv.Names[:len(vv.Names)-1]...)
		}
		return ast.AssignField(object, vv.Names[len(vv.Names)-1], rhs), nil
	}
	if err := p.stream.Expect(token.NEWLINE); err != nil { // NEWLINE is already current
		return nil, err
	}
	p.stream.Next()
	return expr, nil
}

func isChar(t token.Token, c byte) bool {
	return t.Type == token.CHAR && t.Ch == c
}
