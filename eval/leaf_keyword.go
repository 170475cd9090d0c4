package eval

import (
	"strings"

	"github.com/cardquery/cardsearch/index"
	"github.com/cardquery/cardsearch/token"
)

// evalIsField dispatches an `is:` keyword leaf. Operators other than
// `:`/`=` match nothing, with no error. An unresolved keyword
// yields the unknown/unsupported error; a printing-only keyword requires
// a loaded PrintingIndex.
func (c *Cache) evalIsField(op token.Type, value string) *ComputedResult {
	if op != token.COLON && op != token.EQ {
		return &ComputedResult{Buffer: make([]byte, c.faceCount()), MatchCount: 0, Domain: Face}
	}
	canonical, kind := index.ResolveKeyword(value)
	switch kind {
	case index.KeywordUnknown:
		return c.errorResult(Face, index.ErrUnknownKeyword(value))
	case index.KeywordUnsupported:
		return c.errorResult(Face, index.ErrUnsupportedKeyword(value))
	case index.KeywordPrintingOnly:
		if c.Printings == nil {
			return c.errorResult(Printing, index.ErrPrintingNotLoaded())
		}
		return c.evalPrintingKeyword(canonical)
	default: // index.KeywordSupported
		return c.evalFaceKeyword(canonical)
	}
}

// evalFaceKeyword evaluates a card/face-level `is:` predicate against
// CardIndex. Land-cycle membership is identified by the oracle-text
// pattern Scryfall's own curated cycle lists use; this is a heuristic
// classifier, not an authoritative cycle table.
func (c *Cache) evalFaceKeyword(canonical string) *ComputedResult {
	ci := c.Cards
	buf := make([]byte, c.faceCount())
	for i := 0; i < ci.Len(); i++ {
		if faceKeywordMatches(ci, i, canonical) {
			buf[ci.Data.CanonicalFace[i]] = 1
		}
	}
	return &ComputedResult{Buffer: buf, MatchCount: popcount(buf), Domain: Face}
}

func faceKeywordMatches(ci *index.CardIndex, i int, canonical string) bool {
	t := ci.TypeLinesLower[i]
	o := ci.OracleTextsLower[i]
	layout := strings.ToLower(ci.Data.Layout[i])
	flags := ci.Data.Flags[i]

	switch canonical {
	case "permanent":
		return !strings.Contains(t, "instant") && !strings.Contains(t, "sorcery")
	case "spell":
		return strings.Contains(t, "instant") || strings.Contains(t, "sorcery")
	case "historic":
		return strings.Contains(t, "legendary") || strings.Contains(t, "artifact") || strings.Contains(t, "saga")
	case "party":
		return containsAny(t, "cleric", "rogue", "warrior", "wizard")
	case "outlaw":
		return containsAny(t, "assassin", "mercenary", "pirate", "rogue", "warlock")
	case "transform":
		return layout == "transform"
	case "modal":
		return layout == "modal_dfc"
	case "dfc":
		return containsAny(layout, "transform", "modal_dfc", "meld")
	case "meld":
		return layout == "meld"
	case "adventure":
		return layout == "adventure"
	case "split":
		return layout == "split"
	case "leveler":
		return strings.Contains(o, "level up")
	case "flip":
		return layout == "flip"
	case "vanilla":
		return strings.TrimSpace(o) == ""
	case "frenchvanilla":
		return strings.TrimSpace(o) != "" && !strings.Contains(o, ".")
	case "commander":
		return strings.Contains(t, "legendary") && strings.Contains(t, "creature")
	case "companion":
		return strings.Contains(o, "companion")
	case "partner":
		return strings.Contains(o, "partner")
	case "bear":
		return ci.NumericPower[i] == 2 && ci.NumericToughness[i] == 2
	case "reserved":
		return flags&index.FlagReserved != 0
	case "funny":
		return flags&index.FlagFunny != 0
	case "universesbeyond":
		return flags&index.FlagUniversesBeyond != 0
	case "hybrid":
		return anySymbolContains(ci.ManaSymbols[i], "/") && !anySymbolContains(ci.ManaSymbols[i], "/P")
	case "phyrexian":
		return anySymbolContains(ci.ManaSymbols[i], "/P")
	case "dual":
		return strings.Contains(t, "land") && !strings.Contains(t, "basic") && index.Popcount(ci.Data.ColorIdentity[i]) == 2 && strings.TrimSpace(o) == ""
	case "shockland":
		return strings.Contains(o, "you may pay 2 life")
	case "fetchland":
		return strings.Contains(o, "search your library for a") && strings.Contains(o, "land card")
	case "checkland":
		return strings.Contains(o, "unless you control a")
	case "fastland":
		return strings.Contains(o, "two or fewer other lands")
	case "painland":
		return strings.Contains(o, "deals 1 damage to you")
	case "slowland":
		return strings.Contains(o, "unless you control two or more other lands")
	case "bounceland":
		return strings.Contains(o, "return a land you control to its owner's hand")
	case "bikeland":
		return strings.Contains(t, "land") && strings.Contains(o, "cycling")
	case "bondland":
		return strings.Contains(o, "unless you control two or fewer other lands") && strings.Contains(o, "add")
	case "canopyland":
		return strings.Contains(o, "land") && strings.Contains(o, "draw a card") && strings.Contains(o, "pay 1 life")
	case "creatureland":
		return strings.Contains(t, "land") && strings.Contains(o, "becomes a") && strings.Contains(o, "creature")
	case "filterland":
		return strings.Contains(o, "add") && strings.Contains(o, "spend this mana only")
	case "gainland":
		return strings.Contains(t, "land") && strings.Contains(o, "you gain 1 life")
	case "pathway":
		return layout == "modal_dfc" && strings.Contains(t, "land")
	case "scryland":
		return strings.Contains(t, "land") && strings.Contains(o, "scry 1")
	case "surveilland":
		return strings.Contains(t, "land") && strings.Contains(o, "surveil 1")
	case "shadowland":
		return strings.Contains(o, "unless you control two or more basic land types")
	case "storageland":
		return strings.Contains(o, "charge counter")
	case "tangoland":
		return strings.Contains(o, "unless you control two or more basic lands")
	case "tricycleland":
		return strings.Contains(t, "land") && strings.Contains(o, "cycling") && strings.Contains(o, "basic land type")
	case "triland":
		return strings.Contains(t, "land") && index.Popcount(ci.Data.ColorIdentity[i]) == 3 && strings.Contains(o, "add")
	default:
		return false
	}
}

func containsAny(haystack string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func anySymbolContains(symbols map[string]int, substr string) bool {
	for sym := range symbols {
		if strings.Contains(sym, substr) {
			return true
		}
	}
	return false
}
