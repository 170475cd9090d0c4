package index

import "strings"

// fieldAliases resolves user-typed field names to their canonical form.
// Printing-domain fields live in the same table: the evaluator decides
// domain from the canonical name, not from where the alias came from.
var fieldAliases = map[string]string{
	"name": "name", "n": "name",
	"oracle": "oracle", "o": "oracle",
	"type": "type", "t": "type",

	"color": "color", "c": "color",
	"identity": "identity", "id": "identity", "ci": "identity", "commander": "identity", "cmd": "identity",

	"power": "power", "pow": "power",
	"toughness": "toughness", "tou": "toughness",
	"loyalty": "loyalty", "loy": "loyalty",
	"defense": "defense", "def": "defense",

	"cmc": "manavalue", "mv": "manavalue", "manavalue": "manavalue",
	"mana": "mana", "m": "mana",

	"legal": "legal", "f": "legal", "format": "legal",
	"banned":     "banned",
	"restricted": "restricted",

	"is": "is",

	"set": "set", "s": "set", "e": "set", "edition": "set",
	"rarity": "rarity", "r": "rarity",
	"price":  "price", "usd": "price",
	"cn": "collectornumber", "number": "collectornumber", "collectornumber": "collectornumber",
	"frame": "frame",
	"year":  "year",
	"date":  "date",
}

// printingFields is the set of canonical field names that require a
// PrintingIndex to evaluate.
var printingFields = map[string]bool{
	"set": true, "rarity": true, "price": true, "collectornumber": true,
	"frame": true, "year": true, "date": true,
}

// CanonicalizeField resolves a raw, case-insensitive field name typed by
// a user to its canonical form. ok is false for unrecognized names; the
// caller (a FIELD/REGEX_FIELD leaf evaluator) is responsible for turning
// that into an "unknown field" error.
func CanonicalizeField(raw string) (canonical string, ok bool) {
	c, ok := fieldAliases[strings.ToLower(raw)]
	return c, ok
}

// IsPrintingField reports whether a canonical field name lives in the
// printing domain.
func IsPrintingField(canonical string) bool {
	return printingFields[canonical]
}
