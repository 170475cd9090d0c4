// Package index holds the columnar card data model and the immutable
// evaluation views built once on top of it: CardIndex and PrintingIndex.
// It also owns the compile-time constant tables used by leaf evaluators
// to resolve field aliases, color names, formats, rarities, frames, and
// `is:` keywords.
package index

import (
	"github.com/google/uuid"
)

// FaceFlag is a bitmask of face-level attributes.
type FaceFlag uint8

const (
	FlagReserved FaceFlag = 1 << iota
	FlagFunny
	FlagUniversesBeyond
)

// FaceData is the ETL's columnar representation of printable card faces.
// Every slice has length N_face; row i of every slice describes the same
// face. FaceData is produced by the (out-of-scope) ETL pipeline and is
// never mutated after it reaches BuildCardIndex.
type FaceData struct {
	Name            []string
	CombinedName    []string
	ManaCost        []string
	OracleText      []string
	OracleTextTilde []string
	Colors          []uint8 // 5-bit mask, bit order W U B R G
	ColorIdentity   []uint8

	TypeLine []string

	// Power/Toughness/Loyalty/Defense are indices into the matching
	// dictionary below; a negative index means the stat is absent.
	PowerIdx     []int
	ToughnessIdx []int
	LoyaltyIdx   []int
	DefenseIdx   []int

	PowerDict     []string
	ToughnessDict []string
	LoyaltyDict   []string
	DefenseDict   []string

	LegalitiesLegal      []uint32 // 21-bit mask, see FormatBit
	LegalitiesBanned     []uint32
	LegalitiesRestricted []uint32

	CardIndex     []int // grouping id for faces belonging to one physical card
	CanonicalFace []int // row index of the canonical face for this card
	ScryfallID    []uuid.UUID
	Layout        []string
	Flags         []FaceFlag
}

// Len returns N_face.
func (f *FaceData) Len() int { return len(f.Name) }

// PrintingFlag is a bitmask of printing-level attributes.
type PrintingFlag uint16

const (
	PFullArt PrintingFlag = 1 << iota
	PTextless
	PReprint
	PPromo
	PDigital
	PHighresImage
	PBorderless
	PExtendedArt
)

// Finish enumerates a printing's physical finish.
type Finish uint8

const (
	Nonfoil Finish = iota
	Foil
	Etched
)

// SetInfo is one entry of the set lookup table shared by every printing
// in that set.
type SetInfo struct {
	Code        string
	Name        string
	ReleasedAt  int // YYYYMMDD packed, 0 = unknown
}

// PrintingData is the ETL's columnar representation of physical card
// printings. Every slice has length N_print.
type PrintingData struct {
	CanonicalFaceRef []int // face row this printing belongs to
	ScryfallID       []uuid.UUID
	CollectorNumber  []string
	SetIndex         []int // index into SetLookup
	Rarity           []Rarity
	PrintingFlags    []PrintingFlag
	Finish           []Finish
	Frame            []Frame
	PriceUSD         []int // integer cents, 0 = unknown
	ReleasedAt       []int // YYYYMMDD packed, 0 = unknown

	SetLookup []SetInfo
}

// Len returns N_print.
func (p *PrintingData) Len() int { return len(p.CanonicalFaceRef) }
