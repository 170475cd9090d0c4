package eval

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/cardquery/cardsearch/ast"
	"github.com/cardquery/cardsearch/index"
)

// evalRegexField implements the REGEX_FIELD leaf: the pattern is
// compiled case-insensitively; an unsupported field or an invalid
// pattern sets the node's error.
func (c *Cache) evalRegexField(r *ast.RegexField) *ComputedResult {
	canonical, ok := index.CanonicalizeField(r.Field)
	if !ok {
		return c.errorResult(Face, index.ErrUnknownField(r.Field))
	}

	re, err := regexp2.Compile(r.Pattern, regexp2.IgnoreCase)
	if err != nil {
		return c.errorResult(Face, index.ErrInvalidRegex())
	}

	var column []string
	ci := c.Cards
	switch canonical {
	case "name":
		column = ci.CombinedNamesLower
	case "type":
		column = ci.TypeLinesLower
	case "oracle":
		// Unlike the substring oracle leaf, regex matches the unstripped
		// text so reminder-text patterns like "~ deals \d+ damage" still work.
		if strings.Contains(r.Pattern, "~") {
			column = ci.OracleTextsTildeRawLower
		} else {
			column = ci.OracleTextsRawLower
		}
	default:
		return c.errorResult(Face, index.ErrUnknownField(r.Field))
	}

	buf := make([]byte, c.faceCount())
	for i := 0; i < ci.Len(); i++ {
		matched, err := re.MatchString(column[i])
		if err != nil {
			continue
		}
		if matched {
			buf[ci.Data.CanonicalFace[i]] = 1
		}
	}
	return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Face}
}
