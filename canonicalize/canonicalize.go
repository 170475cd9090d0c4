// Package canonicalize serializes a parsed AST back into query source
// text. The output is not guaranteed identical to what the user typed —
// NOPs and empty-valued FIELDs are dropped, values are requoted, dates
// are padded — so re-parsing it can yield a different tree shape (an AND
// left with one child after a drop comes back as that child alone).
package canonicalize

import (
	"strconv"
	"strings"

	"github.com/cardquery/cardsearch/ast"
	"github.com/cardquery/cardsearch/index"
	"github.com/cardquery/cardsearch/token"
)

// String renders root back to query source. OR is parenthesized except
// at the outermost level (handled here) or when its parent is another OR
// (handled in renderChild).
func String(root ast.Node) string {
	if o, ok := root.(*ast.Or); ok {
		return renderOrChildren(o)
	}
	return render(root)
}

func render(n ast.Node) string {
	switch v := n.(type) {
	case nil:
		return ""
	case *ast.Nop:
		return ""
	case *ast.Bare:
		if v.Quoted {
			return `"` + v.Value + `"`
		}
		return v.Value
	case *ast.Exact:
		return `!"` + v.Value + `"`
	case *ast.Field:
		return renderField(v)
	case *ast.RegexField:
		return renderRegexField(v)
	case *ast.Not:
		child := render(v.Child)
		if child == "" {
			return ""
		}
		return "-" + child
	case *ast.And:
		return renderAndChildren(v)
	case *ast.Or:
		return renderChild(v, false)
	default:
		return ""
	}
}

// renderChild renders n as a child of a combinator; orParent is true when
// n's immediate parent in the original tree is itself an OR, in which
// case a nested OR needs no parentheses of its own.
func renderChild(n ast.Node, orParent bool) string {
	o, ok := n.(*ast.Or)
	if !ok {
		return render(n)
	}
	inner := renderOrChildren(o)
	if inner == "" {
		return ""
	}
	if orParent {
		return inner
	}
	return "(" + inner + ")"
}

func renderAndChildren(a *ast.And) string {
	var parts []string
	for _, c := range a.Children {
		s := renderChild(c, false)
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func renderOrChildren(o *ast.Or) string {
	var parts []string
	for _, c := range o.Children {
		s := renderChild(c, true)
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " OR ")
}

func renderField(f *ast.Field) string {
	if f.Value == "" {
		return ""
	}
	value := f.Value
	if canonical, ok := index.CanonicalizeField(f.Field); ok && canonical == "date" {
		if padded, ok := padDateValue(value); ok {
			value = padded
		}
	}
	return f.Field + opString(f.Operator) + quoteIfNeeded(value)
}

func renderRegexField(r *ast.RegexField) string {
	return r.Field + opString(r.Operator) + "/" + r.Pattern + "/"
}

func quoteIfNeeded(value string) string {
	if strings.ContainsAny(value, " \t\n") {
		return `"` + value + `"`
	}
	return value
}

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

// padDateValue implements the lowest-possible-value padding rule for a
// partial `YYYY[-MM[-DD]]` date value; ok is false for values
// that aren't a partial date (e.g. "now" or a set code), which the
// canonicalizer leaves untouched.
func padDateValue(value string) (string, bool) {
	parts := strings.Split(value, "-")
	if len(parts) == 0 || len(parts) > 3 || len(parts[0]) != 4 {
		return "", false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", false
	}
	month := 1
	if len(parts) >= 2 {
		m, err := strconv.Atoi(parts[1])
		if err != nil {
			return "", false
		}
		month = clamp(m, 1, 12)
	}
	day := 1
	if len(parts) >= 3 {
		d, err := strconv.Atoi(parts[2])
		if err != nil {
			return "", false
		}
		day = clamp(d, 1, 31)
	}
	return strconv.Itoa(year) + "-" + pad2(month) + "-" + pad2(day), true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func pad2(n int) string {
	s := strconv.Itoa(n)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
