package index

import "strings"

// Color mask bits.
const (
	White uint8 = 1 << iota
	Blue
	Black
	Red
	Green
)

// namedMasks resolves multi-letter color names (single colors, guilds,
// shards, wedges, colleges) to a mask. The colorless/multicolor
// pseudo-colors and single letters are handled separately in
// ParseColorMask so that e.g. "wu" and "azorius" both work.
var namedMasks = map[string]uint8{
	"white": White,
	"blue":  Blue,
	"black": Black,
	"red":   Red,
	"green": Green,

	// Guilds
	"azorius": White | Blue,
	"dimir":   Blue | Black,
	"rakdos":  Black | Red,
	"gruul":   Red | Green,
	"selesnya": Green | White,
	"orzhov":  White | Black,
	"izzet":   Blue | Red,
	"golgari": Black | Green,
	"boros":   Red | White,
	"simic":   Green | Blue,

	// Shards
	"bant":   Green | White | Blue,
	"esper":  White | Blue | Black,
	"grixis": Blue | Black | Red,
	"jund":   Black | Red | Green,
	"naya":   Red | Green | White,

	// Wedges
	"abzan":  White | Black | Green,
	"jeskai": Blue | Red | White,
	"sultai": Black | Green | Blue,
	"mardu":  Red | White | Black,
	"temur":  Green | Blue | Red,

	// Strixhaven colleges
	"lorehold":    Red | White,
	"prismari":    Blue | Red,
	"quandrix":    Green | Blue,
	"silverquill": White | Black,
	"witherbloom": Black | Green,
}

var letterMasks = map[byte]uint8{
	'w': White,
	'u': Blue,
	'b': Black,
	'r': Red,
	'g': Green,
}

// ParseColorMask parses a color query value into a mask plus whether it
// denoted the "multicolor" pseudo-color (matches popcount >= 2, not an
// exact mask) and whether it denoted "colorless" (mask == 0 exactly).
//
// Recognized multi-letter names override letter-by-letter scanning. If
// the value mixes a colorless marker ("c") with any colored letter, err
// is the contradiction error.
func ParseColorMask(value string) (mask uint8, isMulticolor bool, isColorless bool, err error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return 0, false, false, nil
	}
	if v == "multicolor" || v == "m" {
		return 0, true, false, nil
	}
	if v == "colorless" || v == "c" {
		return 0, false, true, nil
	}
	if named, ok := namedMasks[v]; ok {
		return named, false, false, nil
	}
	// Letter scan, e.g. "wu", "bg", "wubrg".
	var m uint8
	sawColorless := false
	sawColored := false
	for i := 0; i < len(v); i++ {
		ch := v[i]
		if ch == 'c' {
			sawColorless = true
			continue
		}
		bit, ok := letterMasks[ch]
		if !ok {
			continue
		}
		sawColored = true
		m |= bit
	}
	if sawColorless && sawColored {
		return 0, false, false, errColorColorlessContradiction
	}
	if sawColorless && !sawColored {
		return 0, false, true, nil
	}
	return m, false, false, nil
}

// Popcount returns the number of set color bits, i.e. the number of colors.
func Popcount(mask uint8) int {
	n := 0
	for mask != 0 {
		n += int(mask & 1)
		mask >>= 1
	}
	return n
}
