package eval

import (
	"strconv"
	"strings"
	"time"

	"github.com/cardquery/cardsearch/index"
	"github.com/cardquery/cardsearch/token"
)

// evalPrintingKeyword evaluates a printing-only `is:` predicate once a
// PrintingIndex is loaded.
func (c *Cache) evalPrintingKeyword(canonical string) *ComputedResult {
	pi := c.Printings
	buf := make([]byte, c.printingCount())
	for i := 0; i < pi.Len(); i++ {
		if printingKeywordMatches(pi, i, canonical) {
			buf[i] = 1
		}
	}
	return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Printing}
}

func printingKeywordMatches(pi *index.PrintingIndex, i int, canonical string) bool {
	d := pi.Data
	switch canonical {
	case "foil":
		return d.Finish[i] == index.Foil
	case "nonfoil":
		return d.Finish[i] == index.Nonfoil
	case "etched":
		return d.Finish[i] == index.Etched
	case "fullart":
		return d.PrintingFlags[i]&index.PFullArt != 0
	case "textless":
		return d.PrintingFlags[i]&index.PTextless != 0
	case "reprint":
		return d.PrintingFlags[i]&index.PReprint != 0
	case "promo":
		return d.PrintingFlags[i]&index.PPromo != 0
	case "digital":
		return d.PrintingFlags[i]&index.PDigital != 0
	case "hires":
		return d.PrintingFlags[i]&index.PHighresImage != 0
	case "borderless":
		return d.PrintingFlags[i]&index.PBorderless != 0
	case "extended":
		return d.PrintingFlags[i]&index.PExtendedArt != 0
	default:
		return false
	}
}

// evalSetField implements the `set:` leaf.
func (c *Cache) evalSetField(op token.Type, value string) *ComputedResult {
	pi := c.Printings
	if value == "" {
		buf := make([]byte, pi.Len())
		for i := range buf {
			buf[i] = 1
		}
		return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Printing}
	}
	codeLower := strings.ToLower(value)
	if !pi.KnownSetCodes[codeLower] {
		return c.errorResult(Printing, index.ErrUnknownSet(value))
	}
	buf := make([]byte, pi.Len())
	negate := op == token.NEQ
	for i := 0; i < pi.Len(); i++ {
		matched := pi.SetCodesLower[i] == codeLower
		if negate {
			matched = !matched
		}
		if matched {
			buf[i] = 1
		}
	}
	return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Printing}
}

// evalRarityField implements the `rarity:` leaf: an ordered ranking
// supporting all six comparison operators.
func (c *Cache) evalRarityField(op token.Type, value string) *ComputedResult {
	pi := c.Printings
	if value == "" {
		buf := make([]byte, pi.Len())
		for i := range buf {
			buf[i] = 1
		}
		return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Printing}
	}
	want, ok := index.ParseRarity(value)
	if !ok {
		return c.errorResult(Printing, index.ErrUnknownRarity(value))
	}
	buf := make([]byte, pi.Len())
	for i := 0; i < pi.Len(); i++ {
		if compareOp(op, float64(pi.Data.Rarity[i]), float64(want)) {
			buf[i] = 1
		}
	}
	return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Printing}
}

// evalPriceField implements the `price:`/`usd:` leaf: values parse as
// dollars and compare in integer cents; rows with an unknown
// price (0) never match.
func (c *Cache) evalPriceField(op token.Type, value string) *ComputedResult {
	pi := c.Printings
	if value == "" {
		buf := make([]byte, pi.Len())
		for i := range buf {
			buf[i] = 1
		}
		return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Printing}
	}
	dollars, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return c.errorResult(Printing, index.ErrInvalidPrice(value))
	}
	wantCents := int(dollars*100 + 0.5)
	buf := make([]byte, pi.Len())
	for i := 0; i < pi.Len(); i++ {
		if pi.Data.PriceUSD[i] == 0 {
			continue
		}
		if compareOp(op, float64(pi.Data.PriceUSD[i]), float64(wantCents)) {
			buf[i] = 1
		}
	}
	return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Printing}
}

// evalCollectorNumberField implements the `cn:` leaf: exact lowercase
// string match.
func (c *Cache) evalCollectorNumberField(op token.Type, value string) *ComputedResult {
	pi := c.Printings
	if value == "" {
		buf := make([]byte, pi.Len())
		for i := range buf {
			buf[i] = 1
		}
		return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Printing}
	}
	needle := strings.ToLower(value)
	negate := op == token.NEQ
	buf := make([]byte, pi.Len())
	for i := 0; i < pi.Len(); i++ {
		matched := pi.CollectorNumbersLower[i] == needle
		if negate {
			matched = !matched
		}
		if matched {
			buf[i] = 1
		}
	}
	return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Printing}
}

// evalFrameField implements the `frame:` leaf: frame eras are
// chronologically ordered, so comparisons use the same ranking pattern
// as rarity.
func (c *Cache) evalFrameField(op token.Type, value string) *ComputedResult {
	pi := c.Printings
	if value == "" {
		buf := make([]byte, pi.Len())
		for i := range buf {
			buf[i] = 1
		}
		return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Printing}
	}
	want, ok := index.ParseFrame(value)
	if !ok {
		return c.errorResult(Printing, index.ErrUnknownFrame(value))
	}
	buf := make([]byte, pi.Len())
	for i := 0; i < pi.Len(); i++ {
		if compareOp(op, float64(pi.Data.Frame[i]), float64(want)) {
			buf[i] = 1
		}
	}
	return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Printing}
}

// evalYearField implements the `year:` leaf: rows with an unknown
// release date never match.
func (c *Cache) evalYearField(op token.Type, value string) *ComputedResult {
	pi := c.Printings
	if value == "" {
		buf := make([]byte, pi.Len())
		for i := range buf {
			buf[i] = 1
		}
		return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Printing}
	}
	want, err := strconv.Atoi(value)
	if err != nil {
		return c.errorResult(Printing, index.ErrInvalidYear(value))
	}
	buf := make([]byte, pi.Len())
	for i := 0; i < pi.Len(); i++ {
		if pi.Data.ReleasedAt[i] == 0 {
			continue
		}
		year := pi.Data.ReleasedAt[i] / 10000
		if compareOp(op, float64(year), float64(want)) {
			buf[i] = 1
		}
	}
	return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Printing}
}

// evalDateField implements the `date:` leaf.
func (c *Cache) evalDateField(op token.Type, value string) *ComputedResult {
	pi := c.Printings
	if value == "" {
		buf := make([]byte, pi.Len())
		for i := range buf {
			buf[i] = 1
		}
		return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Printing}
	}
	want, ok := resolveDateValue(value, pi)
	if !ok {
		return c.errorResult(Printing, index.ErrInvalidDate(value))
	}
	buf := make([]byte, pi.Len())
	for i := 0; i < pi.Len(); i++ {
		if pi.Data.ReleasedAt[i] == 0 {
			continue
		}
		if compareOp(op, float64(pi.Data.ReleasedAt[i]), float64(want)) {
			buf[i] = 1
		}
	}
	return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Printing}
}

// resolveDateValue implements the date resolution rules: `now` or
// `today` resolve to the current date; a partial `YYYY[-MM[-DD]]`
// value pads to the lowest possible value, clamping out-of-range month
// and day; anything else is tried as a set code.
func resolveDateValue(value string, pi *index.PrintingIndex) (int, bool) {
	low := strings.ToLower(strings.TrimSpace(value))
	if low == "now" || low == "today" {
		now := time.Now().UTC()
		return now.Year()*10000 + int(now.Month())*100 + now.Day(), true
	}
	if packed, ok := parsePartialDate(low); ok {
		return packed, true
	}
	if set, ok := pi.SetByCode(low); ok {
		return set.ReleasedAt, true
	}
	return 0, false
}

func parsePartialDate(s string) (int, bool) {
	parts := strings.Split(s, "-")
	if len(parts) == 0 || len(parts) > 3 {
		return 0, false
	}
	if len(parts[0]) != 4 {
		return 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	month := 1
	if len(parts) >= 2 {
		m, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, false
		}
		month = clamp(m, 1, 12)
	}
	day := 1
	if len(parts) >= 3 {
		d, err := strconv.Atoi(parts[2])
		if err != nil {
			return 0, false
		}
		day = clamp(d, 1, 31)
	}
	return year*10000 + month*100 + day, true
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
