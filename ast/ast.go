// Package ast defines the tagged-variant Abstract Syntax Tree produced by
// the card-query parser: BARE, EXACT, FIELD, REGEX_FIELD, NOT, AND, OR, NOP.
//
// Nodes are plain structs, not an inheritance hierarchy: the parser builds
// the variant directly and callers discriminate with a type switch.
package ast

import (
	"strings"

	"github.com/cardquery/cardsearch/token"
)

// Span is a byte range into the original query string. input[Start:End]
// reproduces the node's source text. NOP carries no span.
type Span struct {
	Start int
	End   int
}

// Node is any AST node.
type Node interface {
	// String renders the node approximately back to query syntax; it is
	// a debugging aid, not the canonical form (see package canonicalize).
	String() string
	// Span returns the node's source span, or nil for NOP.
	Span() *Span
}

// Bare is a free-floating query term matched against card names.
type Bare struct {
	Value  string
	Quoted bool
	SpanV  Span
}

func (b *Bare) Span() *Span { return &b.SpanV }
func (b *Bare) String() string {
	if b.Quoted {
		return `"` + b.Value + `"`
	}
	return b.Value
}

// Exact is a `!"Name"` exact-name match.
type Exact struct {
	Value string
	SpanV Span
}

func (e *Exact) Span() *Span   { return &e.SpanV }
func (e *Exact) String() string { return `!"` + e.Value + `"` }

// Field is a `field op value` query, e.g. `t:creature`, `pow>=3`.
type Field struct {
	Field     string // canonicalized field name
	Operator  token.Type
	Value     string
	SpanV     Span
	ValueSpan Span // zero-width at operator end when Value is absent
}

func (f *Field) Span() *Span { return &f.SpanV }
func (f *Field) String() string {
	return f.Field + opString(f.Operator) + f.Value
}

// RegexField is a `field op /pattern/` query, including desugared bare regexes.
//
// Synthetic marks a child produced by desugaring a bare regex into an OR
// over name/oracle/type; such children carry no span.
type RegexField struct {
	Field     string
	Operator  token.Type
	Pattern   string
	SpanV     Span
	Synthetic bool
}

func (r *RegexField) Span() *Span {
	if r.Synthetic {
		return nil
	}
	return &r.SpanV
}
func (r *RegexField) String() string {
	return r.Field + opString(r.Operator) + "/" + r.Pattern + "/"
}

// Not negates Child.
type Not struct {
	Child Node
	SpanV Span
}

func (n *Not) Span() *Span { return &n.SpanV }
func (n *Not) String() string {
	if n.Child == nil {
		return "-"
	}
	return "-" + n.Child.String()
}

// And is implicit conjunction of adjacent terms.
type And struct {
	Children []Node
	SpanV    Span
}

func (a *And) Span() *Span { return &a.SpanV }
func (a *And) String() string {
	parts := make([]string, len(a.Children))
	for i, c := range a.Children {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Or is explicit `OR` disjunction. Children may include Nop for missing operands.
type Or struct {
	Children []Node
	SpanV    Span
}

func (o *Or) Span() *Span { return &o.SpanV }
func (o *Or) String() string {
	parts := make([]string, len(o.Children))
	for i, c := range o.Children {
		parts[i] = c.String()
	}
	return strings.Join(parts, " OR ")
}

// Nop is a structurally elidable placeholder produced by recovery paths.
// It carries no span.
type Nop struct{}

func (n *Nop) Span() *Span   { return nil }
func (n *Nop) String() string { return "" }

func opString(op token.Type) string {
	switch op {
	case token.COLON:
		return ":"
	case token.EQ:
		return "="
	case token.NEQ:
		return "!="
	case token.LT:
		return "<"
	case token.GT:
		return ">"
	case token.LTE:
		return "<="
	case token.GTE:
		return ">="
	default:
		return ":"
	}
}

// Walk traverses an AST node and its children depth-first, calling visit
// on every node including n itself. Returning false from visit stops
// descent into that node's children (siblings are still visited).
func Walk(n Node, visit func(Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	switch v := n.(type) {
	case *Not:
		Walk(v.Child, visit)
	case *And:
		for _, c := range v.Children {
			Walk(c, visit)
		}
	case *Or:
		for _, c := range v.Children {
			Walk(c, visit)
		}
	}
}

// BareWords collects the Value of every Bare node in the tree that is not
// underneath a Not, used by the seeded-sort tiering. Quoted and unquoted
// bares are both included; duplicates are preserved in first-seen order.
func BareWords(root Node) []string {
	var words []string
	var visit func(n Node, negated bool)
	visit = func(n Node, negated bool) {
		switch v := n.(type) {
		case *Bare:
			if !negated {
				words = append(words, v.Value)
			}
		case *Not:
			visit(v.Child, true)
		case *And:
			for _, c := range v.Children {
				visit(c, negated)
			}
		case *Or:
			for _, c := range v.Children {
				visit(c, negated)
			}
		}
	}
	visit(root, false)
	return words
}
