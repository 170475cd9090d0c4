package eval

import (
	"github.com/cardquery/cardsearch/index"
	"github.com/cardquery/cardsearch/token"
)

// colorMatch implements the color/identity comparison semantics: `:`
// defaults to superset for color and subset for identity; every other
// operator behaves the same for both fields. `multicolor`/`colorless`
// values bypass mask comparison entirely.
func colorMatch(op token.Type, card, query uint8, isMulti, isColorless, defaultSuperset bool) bool {
	if isMulti {
		if op == token.NEQ {
			return index.Popcount(card) < 2
		}
		return index.Popcount(card) >= 2
	}
	if isColorless {
		if op == token.NEQ {
			return card != 0
		}
		return card == 0
	}
	switch op {
	case token.EQ:
		return card == query
	case token.NEQ:
		return card != query
	case token.GT:
		return (card&query) == query && card != query
	case token.LT:
		return (card&query) == card && card != query
	case token.GTE:
		return (card & query) == query
	case token.LTE:
		return (card & query) == card
	default: // token.COLON
		if defaultSuperset {
			return (card & query) == query
		}
		return (card & query) == card
	}
}

// evalColorField implements color/identity. defaultSuperset is true for
// `color` (superset) and false for `identity` (subset).
func (c *Cache) evalColorField(column []uint8, op token.Type, value string, defaultSuperset bool) *ComputedResult {
	ci := c.Cards
	buf := make([]byte, c.faceCount())
	if value == "" {
		for i := 0; i < ci.Len(); i++ {
			buf[ci.Data.CanonicalFace[i]] = 1
		}
		return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Face}
	}
	mask, isMulti, isColorless, err := index.ParseColorMask(value)
	if err != nil {
		return c.errorResult(Face, err)
	}
	for i := 0; i < ci.Len(); i++ {
		if colorMatch(op, column[i], mask, isMulti, isColorless, defaultSuperset) {
			buf[ci.Data.CanonicalFace[i]] = 1
		}
	}
	return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Face}
}
