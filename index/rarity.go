package index

import "strings"

// Rarity is an ordered printing rarity: common < uncommon < rare <
// mythic, and so on.
type Rarity uint8

const (
	Common Rarity = iota
	Uncommon
	Rare
	Special
	Mythic
	Bonus
)

var rarityNames = map[string]Rarity{
	"common": Common, "c": Common,
	"uncommon": Uncommon, "u": Uncommon,
	"rare": Rare, "r": Rare,
	"special": Special,
	"mythic":  Mythic, "m": Mythic,
	"bonus": Bonus,
}

// ParseRarity resolves a rarity name or single-letter abbreviation.
// ok is false for unrecognized names.
func ParseRarity(name string) (r Rarity, ok bool) {
	r, ok = rarityNames[strings.ToLower(name)]
	return r, ok
}
