// Package parser implements a recursive-descent parser for the card-query
// mini-language. Like the lexer beneath it, the parser never fails:
// malformed fragments become NOP or best-effort nodes instead of parse
// errors, so a user mid-keystroke always gets a partial, evaluable AST
// back.
package parser

import (
	"github.com/cardquery/cardsearch/ast"
	"github.com/cardquery/cardsearch/lexer"
	"github.com/cardquery/cardsearch/token"
)

// Parser holds one token of lookahead; this grammar only ever needs to
// inspect the current token.
type Parser struct {
	l   *lexer.Lexer
	cur token.Token
}

// New creates a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	return p
}

// Parse lexes and parses input in one call, returning the root AST node.
func Parse(input string) ast.Node {
	p := New(lexer.New(input))
	return p.parseOrGroup()
}

func (p *Parser) next() {
	p.cur = p.l.NextToken()
}

// atGroupEnd reports whether the current token ends an and_group: the
// start of a new disjunct, a closing paren, or end of input.
func (p *Parser) atGroupEnd() bool {
	switch p.cur.Type {
	case token.OR, token.RPAREN, token.EOF:
		return true
	default:
		return false
	}
}

// parseOrGroup implements: or_group := and_group ( OR and_group )*
func (p *Parser) parseOrGroup() ast.Node {
	first := p.parseAndGroup()
	children := []ast.Node{first}
	sawOr := false
	for p.cur.Type == token.OR {
		sawOr = true
		p.next()
		children = append(children, p.parseAndGroup())
	}
	if !sawOr {
		return first
	}
	return &ast.Or{Children: children, SpanV: spanOfChildren(children)}
}

// parseAndGroup implements: and_group := term*
func (p *Parser) parseAndGroup() ast.Node {
	var children []ast.Node
	for !p.atGroupEnd() {
		before := p.cur
		if n := p.parseTerm(); n != nil {
			children = append(children, n)
		}
		if p.cur == before {
			// No production consumed a token (a stray operator with no
			// preceding word); skip it so the loop always makes progress.
			p.next()
		}
	}
	switch len(children) {
	case 0:
		return &ast.Nop{}
	case 1:
		return children[0]
	default:
		return &ast.And{Children: children, SpanV: spanOfChildren(children)}
	}
}

// parseTerm implements: term := DASH atom? | BANG (WORD|QUOTED)? | atom
func (p *Parser) parseTerm() ast.Node {
	switch p.cur.Type {
	case token.DASH:
		return p.parseNot()
	case token.BANG:
		return p.parseExact()
	default:
		return p.parseAtom()
	}
}

func (p *Parser) parseNot() ast.Node {
	start := p.cur.Start
	p.next() // consume DASH
	child := p.parseAtom()
	if child == nil {
		return &ast.Nop{}
	}
	end := start + 1
	if s := child.Span(); s != nil {
		end = s.End
	}
	return &ast.Not{Child: child, SpanV: ast.Span{Start: start, End: end}}
}

func (p *Parser) parseExact() ast.Node {
	start := p.cur.Start
	end := p.cur.End
	p.next() // consume BANG
	if p.cur.Type == token.WORD || p.cur.Type == token.QUOTED {
		value := p.cur.Value
		end = p.cur.End
		p.next()
		return &ast.Exact{Value: value, SpanV: ast.Span{Start: start, End: end}}
	}
	return &ast.Exact{Value: "", SpanV: ast.Span{Start: start, End: end}}
}

// parseAtom implements the atom production. It returns nil, consuming
// exactly one token, when the current token cannot start any atom.
func (p *Parser) parseAtom() ast.Node {
	switch p.cur.Type {
	case token.LPAREN:
		return p.parseParenGroup()
	case token.WORD:
		return p.parseWordAtom()
	case token.QUOTED:
		n := &ast.Bare{Value: p.cur.Value, Quoted: true, SpanV: ast.Span{Start: p.cur.Start, End: p.cur.End}}
		p.next()
		return n
	case token.REGEX:
		span := ast.Span{Start: p.cur.Start, End: p.cur.End}
		pattern := p.cur.Value
		p.next()
		return desugarBareRegex(pattern, span)
	default:
		// Stray operator/paren/etc. with nothing to attach to; consume it
		// and let the caller move on.
		p.next()
		return nil
	}
}

// parseParenGroup implements: LPAREN expr RPAREN?
//
// An unclosed paren simply stops when no RPAREN is found; the inner
// expression is returned unwrapped, since grouping is purely structural
// and has no AST node of its own.
func (p *Parser) parseParenGroup() ast.Node {
	p.next() // consume LPAREN
	inner := p.parseOrGroup()
	if p.cur.Type == token.RPAREN {
		p.next()
	}
	return inner
}

// parseWordAtom implements:
//
//	WORD op (WORD|QUOTED|REGEX)?
//	WORD
func (p *Parser) parseWordAtom() ast.Node {
	wordTok := p.cur
	p.next()

	if !p.cur.Type.IsOperator() {
		return &ast.Bare{Value: wordTok.Value, SpanV: ast.Span{Start: wordTok.Start, End: wordTok.End}}
	}

	opTok := p.cur
	p.next()

	switch p.cur.Type {
	case token.REGEX:
		pattern := p.cur.Value
		end := p.cur.End
		p.next()
		return &ast.RegexField{
			Field:    wordTok.Value,
			Operator: opTok.Type,
			Pattern:  pattern,
			SpanV:    ast.Span{Start: wordTok.Start, End: end},
		}
	case token.WORD, token.QUOTED:
		value := p.cur.Value
		valStart, valEnd := p.cur.Start, p.cur.End
		p.next()
		return &ast.Field{
			Field:     wordTok.Value,
			Operator:  opTok.Type,
			Value:     value,
			SpanV:     ast.Span{Start: wordTok.Start, End: valEnd},
			ValueSpan: ast.Span{Start: valStart, End: valEnd},
		}
	default:
		return &ast.Field{
			Field:     wordTok.Value,
			Operator:  opTok.Type,
			Value:     "",
			SpanV:     ast.Span{Start: wordTok.Start, End: opTok.End},
			ValueSpan: ast.Span{Start: opTok.End, End: opTok.End},
		}
	}
}

// desugarBareRegex implements bare-regex desugaring: a free /pattern/
// not attached to a field becomes an OR over name/oracle/type regex
// searches. The desugared children carry no span; the wrapping OR keeps
// the span of the original /pattern/ token.
func desugarBareRegex(pattern string, span ast.Span) ast.Node {
	field := func(name string) *ast.RegexField {
		return &ast.RegexField{Field: name, Operator: token.COLON, Pattern: pattern, Synthetic: true}
	}
	return &ast.Or{
		Children: []ast.Node{field("name"), field("oracle"), field("type")},
		SpanV:    span,
	}
}

func spanOfChildren(children []ast.Node) ast.Span {
	var first, last *ast.Span
	for _, c := range children {
		if s := c.Span(); s != nil {
			if first == nil {
				first = s
			}
			last = s
		}
	}
	if first == nil || last == nil {
		return ast.Span{}
	}
	return ast.Span{Start: first.Start, End: last.End}
}
