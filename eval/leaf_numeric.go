package eval

import (
	"math"

	"github.com/cardquery/cardsearch/index"
	"github.com/cardquery/cardsearch/token"
)

// compareOp evaluates a `field op value` comparison for a scalar column.
// COLON behaves like EQ for every numeric family; there is no distinct
// "contains" reading for a scalar.
func compareOp(op token.Type, actual, want float64) bool {
	switch op {
	case token.NEQ:
		return actual != want
	case token.LT:
		return actual < want
	case token.GT:
		return actual > want
	case token.LTE:
		return actual <= want
	case token.GTE:
		return actual >= want
	default: // token.COLON, token.EQ
		return actual == want
	}
}

// evalNumericStatField implements power/toughness/loyalty/defense: rows
// whose pre-converted value is NaN are skipped.
func (c *Cache) evalNumericStatField(column []float64, op token.Type, value string) *ComputedResult {
	buf := make([]byte, c.faceCount())
	ci := c.Cards
	if value == "" {
		for i := 0; i < ci.Len(); i++ {
			buf[ci.Data.CanonicalFace[i]] = 1
		}
		return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Face}
	}
	want := index.ParseStatValue(value)
	for i := 0; i < ci.Len(); i++ {
		actual := column[i]
		if math.IsNaN(actual) || math.IsNaN(want) {
			continue
		}
		if compareOp(op, actual, want) {
			buf[ci.Data.CanonicalFace[i]] = 1
		}
	}
	return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Face}
}

// evalManaValueField implements the `manavalue`/`cmc` leaf.
func (c *Cache) evalManaValueField(op token.Type, value string) *ComputedResult {
	buf := make([]byte, c.faceCount())
	ci := c.Cards
	if value == "" {
		for i := 0; i < ci.Len(); i++ {
			buf[ci.Data.CanonicalFace[i]] = 1
		}
		return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Face}
	}
	want := index.ParseStatValue(value)
	for i := 0; i < ci.Len(); i++ {
		if math.IsNaN(want) {
			continue
		}
		if compareOp(op, float64(ci.ManaValueOf[i]), want) {
			buf[ci.Data.CanonicalFace[i]] = 1
		}
	}
	return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Face}
}

// evalManaField implements the `mana:` containment leaf: a face matches
// when its mana symbol multiset is a superset of the query multiset.
func (c *Cache) evalManaField(op token.Type, value string) *ComputedResult {
	buf := make([]byte, c.faceCount())
	ci := c.Cards
	query := index.ParseManaSymbols(value)
	negate := op == token.NEQ
	for i := 0; i < ci.Len(); i++ {
		matched := value == "" || index.ManaContains(ci.ManaSymbols[i], query)
		if negate {
			matched = !matched
		}
		if matched {
			buf[ci.Data.CanonicalFace[i]] = 1
		}
	}
	return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Face}
}

// evalFormatField implements legal/banned/restricted.
func (c *Cache) evalFormatField(column []uint32, value string) *ComputedResult {
	if value == "" {
		buf := make([]byte, c.faceCount())
		ci := c.Cards
		for i := 0; i < ci.Len(); i++ {
			buf[ci.Data.CanonicalFace[i]] = 1
		}
		return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Face}
	}
	bit, ok := index.FormatBit(value)
	if !ok {
		return c.errorResult(Face, index.ErrUnknownFormat(value))
	}
	mask := uint32(1) << bit
	buf := make([]byte, c.faceCount())
	ci := c.Cards
	for i := 0; i < ci.Len(); i++ {
		if column[i]&mask != 0 {
			buf[ci.Data.CanonicalFace[i]] = 1
		}
	}
	return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Face}
}
