package eval

import (
	"github.com/cardquery/cardsearch/ast"
	"github.com/cardquery/cardsearch/index"
)

// evalFieldLeaf dispatches a FIELD node to the evaluator for its
// canonical field family.
func (c *Cache) evalFieldLeaf(f *ast.Field) *ComputedResult {
	canonical, ok := index.CanonicalizeField(f.Field)
	if !ok {
		return c.errorResult(Face, index.ErrUnknownField(f.Field))
	}

	if index.IsPrintingField(canonical) {
		if c.Printings == nil {
			return c.errorResult(Printing, index.ErrPrintingNotLoaded())
		}
		return c.evalPrintingFieldLeaf(canonical, f)
	}

	ci := c.Cards
	switch canonical {
	case "name":
		return c.evalSubstringField(ci.CombinedNamesLower, f.Operator, f.Value)
	case "oracle":
		return c.evalOracleField(f.Operator, f.Value)
	case "type":
		return c.evalSubstringField(ci.TypeLinesLower, f.Operator, f.Value)
	case "color":
		return c.evalColorField(ci.Data.Colors, f.Operator, f.Value, true)
	case "identity":
		return c.evalColorField(ci.Data.ColorIdentity, f.Operator, f.Value, false)
	case "power":
		return c.evalNumericStatField(ci.NumericPower, f.Operator, f.Value)
	case "toughness":
		return c.evalNumericStatField(ci.NumericToughness, f.Operator, f.Value)
	case "loyalty":
		return c.evalNumericStatField(ci.NumericLoyalty, f.Operator, f.Value)
	case "defense":
		return c.evalNumericStatField(ci.NumericDefense, f.Operator, f.Value)
	case "manavalue":
		return c.evalManaValueField(f.Operator, f.Value)
	case "mana":
		return c.evalManaField(f.Operator, f.Value)
	case "legal":
		return c.evalFormatField(ci.Data.LegalitiesLegal, f.Value)
	case "banned":
		return c.evalFormatField(ci.Data.LegalitiesBanned, f.Value)
	case "restricted":
		return c.evalFormatField(ci.Data.LegalitiesRestricted, f.Value)
	case "is":
		return c.evalIsField(f.Operator, f.Value)
	default:
		return c.errorResult(Face, index.ErrUnknownField(f.Field))
	}
}

// evalPrintingFieldLeaf dispatches a printing-domain FIELD.
func (c *Cache) evalPrintingFieldLeaf(canonical string, f *ast.Field) *ComputedResult {
	switch canonical {
	case "set":
		return c.evalSetField(f.Operator, f.Value)
	case "rarity":
		return c.evalRarityField(f.Operator, f.Value)
	case "price":
		return c.evalPriceField(f.Operator, f.Value)
	case "collectornumber":
		return c.evalCollectorNumberField(f.Operator, f.Value)
	case "frame":
		return c.evalFrameField(f.Operator, f.Value)
	case "year":
		return c.evalYearField(f.Operator, f.Value)
	case "date":
		return c.evalDateField(f.Operator, f.Value)
	default:
		return c.errorResult(Printing, index.ErrUnknownPrintingField(f.Field))
	}
}
