package index

import "strings"

// KeywordKind classifies an `is:` keyword.
type KeywordKind int

const (
	KeywordUnknown KeywordKind = iota
	KeywordSupported
	KeywordPrintingOnly
	KeywordUnsupported
)

// supportedKeywords are card/face-level `is:` predicates the eval
// package implements directly against CardIndex.
var supportedKeywords = map[string]string{
	"permanent": "permanent",
	"spell":     "spell",
	"historic":  "historic",
	"party":     "party",
	"outlaw":    "outlaw",
	"transform": "transform",
	"modal":     "modal", "mdfc": "modal",
	"dfc":       "dfc",
	"meld":      "meld",
	"adventure": "adventure",
	"split":     "split",
	"leveler":   "leveler",
	"flip":      "flip",
	"vanilla":   "vanilla",
	"frenchvanilla":   "frenchvanilla",
	"commander": "commander", "brawler": "commander",
	"companion":       "companion",
	"partner":         "partner",
	"bear":            "bear",
	"reserved":        "reserved",
	"funny":           "funny",
	"universesbeyond": "universesbeyond",
	"hybrid":          "hybrid",
	"phyrexian":       "phyrexian",

	// Curated land cycles.
	"dual":       "dual",
	"shockland":  "shockland",
	"fetchland":  "fetchland",
	"checkland":  "checkland",
	"fastland":   "fastland",
	"painland":   "painland",
	"slowland":   "slowland",
	"bounceland": "bounceland", "karoo": "bounceland",
	"bikeland": "bikeland", "cycleland": "bikeland", "bicycleland": "bikeland",
	"bondland": "bondland", "crowdland": "bondland", "battlebondland": "bondland",
	"canopyland":   "canopyland", "canland": "canopyland",
	"creatureland": "creatureland", "manland": "creatureland",
	"filterland":   "filterland",
	"gainland":     "gainland",
	"pathway":      "pathway",
	"scryland":     "scryland",
	"surveilland":  "surveilland",
	"shadowland":   "shadowland", "snarl": "shadowland",
	"storageland":  "storageland",
	"tangoland":    "tangoland", "battleland": "tangoland",
	"tricycleland": "tricycleland", "trikeland": "tricycleland", "triome": "tricycleland",
	"triland":      "triland",
}

// printingOnlyKeywords require a PrintingIndex to evaluate.
var printingOnlyKeywords = map[string]string{
	"foil":    "foil",
	"nonfoil": "nonfoil",
	"etched":  "etched",
	"full":    "fullart", "fullart": "fullart",
	"textless":   "textless",
	"reprint":    "reprint",
	"promo":      "promo",
	"digital":    "digital",
	"hires":      "hires",
	"borderless": "borderless",
	"extended":   "extended",
}

// unsupportedKeywords are reserved names with no implementation: they
// would require columns this data model does not carry (per-platform
// availability), so they report an "unsupported keyword" error rather
// than silently matching nothing.
var unsupportedKeywords = map[string]string{
	"arena": "arena",
	"mtgo":  "mtgo",
}

// ResolveKeyword classifies a raw `is:` keyword name.
func ResolveKeyword(raw string) (canonical string, kind KeywordKind) {
	low := strings.ToLower(raw)
	if c, ok := supportedKeywords[low]; ok {
		return c, KeywordSupported
	}
	if c, ok := printingOnlyKeywords[low]; ok {
		return c, KeywordPrintingOnly
	}
	if c, ok := unsupportedKeywords[low]; ok {
		return c, KeywordUnsupported
	}
	return "", KeywordUnknown
}
