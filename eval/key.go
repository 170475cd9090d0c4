package eval

import (
	"strconv"
	"strings"

	"github.com/cardquery/cardsearch/ast"
)

// unitSep is the field/child separator used by structural keys: a
// control character that ordinary query text does not contain (the
// lexer does not filter it out of values).
const unitSep = "\x1e"

// structuralKey builds the deterministic interning key for an AST
// subtree: kind tag, then immediate fields, then child keys, all
// joined by unitSep. Two subtrees with the same key are structurally
// identical and may share one InternedNode.
func structuralKey(n ast.Node) string {
	var sb strings.Builder
	writeKey(&sb, n)
	return sb.String()
}

func writeKey(sb *strings.Builder, n ast.Node) {
	if n == nil {
		sb.WriteString("NIL")
		return
	}
	switch v := n.(type) {
	case *ast.Bare:
		sb.WriteString("BARE")
		sb.WriteString(unitSep)
		sb.WriteString(v.Value)
		sb.WriteString(unitSep)
		sb.WriteString(strconv.FormatBool(v.Quoted))
	case *ast.Exact:
		sb.WriteString("EXACT")
		sb.WriteString(unitSep)
		sb.WriteString(v.Value)
	case *ast.Field:
		sb.WriteString("FIELD")
		sb.WriteString(unitSep)
		sb.WriteString(v.Field)
		sb.WriteString(unitSep)
		sb.WriteString(strconv.Itoa(int(v.Operator)))
		sb.WriteString(unitSep)
		sb.WriteString(v.Value)
	case *ast.RegexField:
		sb.WriteString("REGEX_FIELD")
		sb.WriteString(unitSep)
		sb.WriteString(v.Field)
		sb.WriteString(unitSep)
		sb.WriteString(strconv.Itoa(int(v.Operator)))
		sb.WriteString(unitSep)
		sb.WriteString(v.Pattern)
	case *ast.Not:
		sb.WriteString("NOT")
		sb.WriteString(unitSep)
		writeKey(sb, v.Child)
	case *ast.And:
		sb.WriteString("AND")
		for _, c := range v.Children {
			sb.WriteString(unitSep)
			writeKey(sb, c)
		}
	case *ast.Or:
		sb.WriteString("OR")
		for _, c := range v.Children {
			sb.WriteString(unitSep)
			writeKey(sb, c)
		}
	case *ast.Nop:
		sb.WriteString("NOP")
	default:
		sb.WriteString("UNKNOWN")
	}
}
