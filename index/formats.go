package index

import "strings"

// formatBits assigns each constructed/eternal/commander-ish format a bit
// position within the 21-bit legalities masks. The specific bit
// assignment is private to this package and only needs to be stable for
// the lifetime of one CardIndex.
var formatBits = map[string]uint32{
	"standard":        0,
	"future":          1,
	"historic":        2,
	"timeless":        3,
	"gladiator":       4,
	"pioneer":         5,
	"explorer":        6,
	"modern":          7,
	"legacy":          8,
	"pauper":          9,
	"vintage":         10,
	"penny":           11,
	"commander":       12,
	"oathbreaker":     13,
	"standardbrawl":   14,
	"brawl":           15,
	"alchemy":         16,
	"paupercommander": 17,
	"duel":            18,
	"oldschool":       19,
	"predh":           20,
}

// FormatBit resolves a format name (as typed after `legal:`, `banned:`,
// or `restricted:`) to its bit within the legalities masks. ok is false
// for unrecognized format names.
func FormatBit(name string) (bit uint32, ok bool) {
	b, ok := formatBits[strings.ToLower(name)]
	return b, ok
}
