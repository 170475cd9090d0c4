package eval

import (
	"github.com/google/uuid"

	"github.com/cardquery/cardsearch/index"
)

// buildFixtureCards returns the 10-face corpus exercised by the package
// tests below. Face indices and the canonical faces they share are
// deliberately chosen to line up with the scenarios in the concrete
// worked examples:
//
//	0 Verdant Behemoth   green creature
//	1 Lightning Bolt     red instant, also appears in two MH2 printings
//	2 Stalwart Squire    white creature, reminder text mentions damage
//	3 Counterspell       blue instant
//	4 Garruk's Companion green creature
//	5 Shivan Dragon       red creature
//	6 Hollowhenge Spirit back face of a transform card, Phyrexian mana
//	7 Moonveil Regent    front (canonical) face of the same transform card
//	8 Healer's Hawk      white creature
//	9 Mountain           basic land
func buildFixtureCards(t testingT) *index.CardIndex {
	data := &index.FaceData{
		Name: []string{
			"Verdant Behemoth", "Lightning Bolt", "Stalwart Squire", "Counterspell",
			"Garruk's Companion", "Shivan Dragon", "Hollowhenge Spirit", "Moonveil Regent",
			"Healer's Hawk", "Mountain",
		},
		CombinedName: []string{
			"Verdant Behemoth", "Lightning Bolt", "Stalwart Squire", "Counterspell",
			"Garruk's Companion", "Shivan Dragon", "Hollowhenge Spirit", "Moonveil Regent",
			"Healer's Hawk", "Mountain",
		},
		ManaCost: []string{
			"{4}{G}{G}", "{R}", "{1}{W}", "{U}{U}",
			"{2}{G}{G}", "{4}{R}{R}", "{2}{B/P}", "{3}{G}{G}",
			"{W}", "",
		},
		OracleText: []string{
			"Trample",
			"Lightning Bolt deals 3 damage to any target.",
			"First strike (This creature deals combat damage before creatures without first strike.)",
			"Counter target spell.",
			"Trample",
			"Flying",
			"Flying",
			"Flying, trample",
			"Flying",
			"",
		},
		OracleTextTilde: []string{
			"Trample",
			"~ deals 3 damage to any target.",
			"First strike (This creature deals combat damage before creatures without first strike.)",
			"Counter target spell.",
			"Trample",
			"Flying",
			"Flying",
			"Flying, trample",
			"Flying",
			"",
		},
		Colors: []uint8{
			index.Green, index.Red, index.White, index.Blue,
			index.Green, index.Red, index.Black, index.Black,
			index.White, 0,
		},
		ColorIdentity: []uint8{
			index.Green, index.Red, index.White, index.Blue,
			index.Green, index.Red, index.Black, index.Black,
			index.White, 0,
		},
		TypeLine: []string{
			"Creature — Beast",
			"Instant",
			"Creature — Human Soldier",
			"Instant",
			"Creature — Wolf",
			"Creature — Dragon",
			"Creature — Spirit",
			"Creature — Dragon",
			"Creature — Bird",
			"Basic Land — Mountain",
		},
		PowerIdx:     []int{0, -1, 1, -1, 2, 3, 4, 5, 1, -1},
		ToughnessIdx: []int{0, -1, 1, -1, 2, 3, 4, 5, 1, -1},
		LoyaltyIdx:   []int{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
		DefenseIdx:   []int{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1},

		PowerDict:     []string{"6", "2", "3", "4", "5", "1"},
		ToughnessDict: []string{"6", "2", "3", "4", "5", "1"},
		LoyaltyDict:   []string{},
		DefenseDict:   []string{},

		LegalitiesLegal:      []uint32{1, 1 | 1<<7, 1, 1, 1, 1, 1, 1, 1, 1},
		LegalitiesBanned:     []uint32{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		LegalitiesRestricted: []uint32{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},

		CardIndex:     []int{0, 1, 2, 3, 4, 5, 6, 6, 7, 8},
		CanonicalFace: []int{0, 1, 2, 3, 4, 5, 7, 7, 8, 9},
		ScryfallID: []uuid.UUID{
			uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New(),
			uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		},
		Layout: []string{
			"normal", "normal", "normal", "normal", "normal", "normal",
			"transform", "transform", "normal", "normal",
		},
		Flags: []index.FaceFlag{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}

	ci, err := index.BuildCardIndex(data)
	if err != nil {
		t.Fatalf("BuildCardIndex: %v", err)
	}
	return ci
}

// buildFixturePrintings returns 5 printings: two Lightning Bolt (face 1)
// printings in MH2 (rows 0,1), one Verdant Behemoth printing in ZNR (row
// 2), one Counterspell printing in LEA (row 3), and one Moonveil Regent
// printing in ZNR (row 4).
func buildFixturePrintings(t testingT) *index.PrintingIndex {
	data := &index.PrintingData{
		CanonicalFaceRef: []int{1, 1, 0, 3, 7},
		ScryfallID: []uuid.UUID{
			uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		},
		CollectorNumber: []string{"142", "143", "193", "55", "194"},
		SetIndex:        []int{0, 0, 1, 2, 1},
		Rarity:          []index.Rarity{index.Common, index.Common, index.Rare, index.Uncommon, index.Mythic},
		PrintingFlags:   []index.PrintingFlag{0, 0, 0, 0, index.PFullArt},
		Finish:          []index.Finish{index.Nonfoil, index.Foil, index.Nonfoil, index.Nonfoil, index.Nonfoil},
		Frame:           []index.Frame{index.Frame2015, index.Frame2015, index.Frame2015, index.Frame1993, index.Frame2015},
		PriceUSD:        []int{50, 199, 899, 1200, 2500},
		ReleasedAt:      []int{20210618, 20210618, 20200925, 19930810, 20200925},
		SetLookup: []index.SetInfo{
			{Code: "mh2", Name: "Modern Horizons 2", ReleasedAt: 20210618},
			{Code: "znr", Name: "Zendikar Rising", ReleasedAt: 20200925},
			{Code: "lea", Name: "Limited Edition Alpha", ReleasedAt: 19930810},
		},
	}

	pi, err := index.BuildPrintingIndex(data)
	if err != nil {
		t.Fatalf("BuildPrintingIndex: %v", err)
	}
	return pi
}

// testingT is the subset of *testing.T used by the fixture builders, so
// they can be called from both tests and benchmarks.
type testingT interface {
	Fatalf(format string, args ...interface{})
}
