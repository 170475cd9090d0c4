package eval

import (
	"strings"

	"github.com/cardquery/cardsearch/ast"
	"github.com/cardquery/cardsearch/token"
)

func normalizeBareValue(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// evalBare implements bare-word matching: an unquoted BARE matches the
// alnum-folded combined name; a quoted BARE matches a literal lowercase
// substring.
func (c *Cache) evalBare(b *ast.Bare) *ComputedResult {
	buf := make([]byte, c.faceCount())
	ci := c.Cards
	if b.Quoted {
		needle := strings.ToLower(b.Value)
		for i := 0; i < ci.Len(); i++ {
			if strings.Contains(ci.CombinedNamesLower[i], needle) {
				buf[ci.Data.CanonicalFace[i]] = 1
			}
		}
	} else {
		needle := normalizeBareValue(b.Value)
		for i := 0; i < ci.Len(); i++ {
			if strings.Contains(ci.CombinedNamesNormalized[i], needle) {
				buf[ci.Data.CanonicalFace[i]] = 1
			}
		}
	}
	return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Face}
}

// evalExact implements EXACT matching: case-insensitive equality
// against either the combined name or the bare face name, so
// `!"Back Face Name"` can hit one face of a double-faced card.
func (c *Cache) evalExact(e *ast.Exact) *ComputedResult {
	buf := make([]byte, c.faceCount())
	ci := c.Cards
	needle := strings.ToLower(e.Value)
	for i := 0; i < ci.Len(); i++ {
		if ci.CombinedNamesLower[i] == needle || ci.NamesLower[i] == needle {
			buf[ci.Data.CanonicalFace[i]] = 1
		}
	}
	return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Face}
}

// evalSubstringField implements the name/oracle/type leaves: substring
// containment, or its negation under `!=`, over a pre-lowered column. An
// empty value matches every canonical face.
func (c *Cache) evalSubstringField(column []string, op token.Type, value string) *ComputedResult {
	buf := make([]byte, c.faceCount())
	ci := c.Cards
	needle := strings.ToLower(value)
	negate := op == token.NEQ
	for i := 0; i < ci.Len(); i++ {
		matched := value == "" || strings.Contains(column[i], needle)
		if negate {
			matched = !matched
		}
		if matched {
			buf[ci.Data.CanonicalFace[i]] = 1
		}
	}
	return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Face}
}

// evalOracleField implements the oracle leaf: the tilde column is used
// whenever the query value itself contains `~`.
func (c *Cache) evalOracleField(op token.Type, value string) *ComputedResult {
	ci := c.Cards
	if strings.Contains(value, "~") {
		return c.evalSubstringField(ci.OracleTextsTildeLower, op, value)
	}
	return c.evalSubstringField(ci.OracleTextsLower, op, value)
}
