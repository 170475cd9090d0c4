package index

import (
	"math"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CardIndex is the immutable, once-built evaluation view over FaceData.
// It pre-computes every lowercased/normalized column a leaf evaluator
// needs so that evaluation itself never allocates strings.
type CardIndex struct {
	Data *FaceData

	NamesLower               []string
	CombinedNamesLower       []string
	CombinedNamesNormalized  []string // accent-stripped, alnum-only, lowercase
	OracleTextsLower         []string // reminder text stripped
	OracleTextsTildeLower    []string // reminder text stripped, tilde column
	OracleTextsRawLower      []string // NOT reminder-stripped, used by regex leaves
	OracleTextsTildeRawLower []string // NOT reminder-stripped, tilde column
	ManaCostsLower           []string
	ManaSymbols              []map[string]int
	ManaValueOf              []int
	TypeLinesLower           []string

	NumericPower     []float64
	NumericToughness []float64
	NumericLoyalty   []float64
	NumericDefense   []float64

	// FacesOf maps a canonical face row index to every face row
	// (including itself) that shares that canonical identity.
	FacesOf map[int][]int
}

// Len returns N_face.
func (ci *CardIndex) Len() int { return ci.Data.Len() }

// stripDiacritics removes combining marks after NFD decomposition, e.g.
// turning "Lim-Dûl" into "Lim-Dul" before alnum folding.
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizeName(s string) string {
	folded, _, err := transform.String(stripDiacritics, s)
	if err != nil {
		folded = s
	}
	var sb strings.Builder
	for _, r := range folded {
		lr := unicode.ToLower(r)
		if unicode.IsLetter(lr) || unicode.IsDigit(lr) {
			sb.WriteRune(lr)
		}
	}
	return sb.String()
}

// stripReminderText removes balanced-parenthesis reminder text (spec
// glossary), e.g. "Flying (This creature can't be blocked except by
// flying or reach.)" becomes "Flying ".
func stripReminderText(s string) string {
	if !strings.ContainsRune(s, '(') {
		return s
	}
	var sb strings.Builder
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}

func numericDict(dict []string) []float64 {
	out := make([]float64, len(dict))
	for i, s := range dict {
		out[i] = ParseStatValue(s)
	}
	return out
}

func statAt(dict []float64, idx int) float64 {
	if idx < 0 || idx >= len(dict) {
		return math.NaN()
	}
	return dict[idx]
}

// BuildCardIndex builds a CardIndex over FaceData. Build-time validation
// failures (column-length mismatches from a malformed ETL output) are
// wrapped with github.com/pkg/errors so the cause is visible to the
// caller; this never happens mid-query, only at load time.
func BuildCardIndex(data *FaceData) (*CardIndex, error) {
	if data == nil {
		return nil, errors.New("index: nil FaceData")
	}
	n := data.Len()
	if err := validateFaceColumns(data, n); err != nil {
		return nil, errors.Wrap(err, "index: building CardIndex")
	}

	ci := &CardIndex{
		Data:                    data,
		NamesLower:              make([]string, n),
		CombinedNamesLower:      make([]string, n),
		CombinedNamesNormalized: make([]string, n),
		OracleTextsLower:        make([]string, n),
		OracleTextsTildeLower:   make([]string, n),
		OracleTextsRawLower:     make([]string, n),
		OracleTextsTildeRawLower: make([]string, n),
		ManaCostsLower:          make([]string, n),
		ManaSymbols:             make([]map[string]int, n),
		ManaValueOf:             make([]int, n),
		TypeLinesLower:          make([]string, n),
		NumericPower:            make([]float64, n),
		NumericToughness:        make([]float64, n),
		NumericLoyalty:          make([]float64, n),
		NumericDefense:          make([]float64, n),
	}

	powerDict := numericDict(data.PowerDict)
	toughnessDict := numericDict(data.ToughnessDict)
	loyaltyDict := numericDict(data.LoyaltyDict)
	defenseDict := numericDict(data.DefenseDict)

	for i := 0; i < n; i++ {
		ci.NamesLower[i] = strings.ToLower(data.Name[i])
		ci.CombinedNamesLower[i] = strings.ToLower(data.CombinedName[i])
		ci.CombinedNamesNormalized[i] = normalizeName(data.CombinedName[i])
		ci.OracleTextsLower[i] = strings.ToLower(stripReminderText(data.OracleText[i]))
		ci.OracleTextsTildeLower[i] = strings.ToLower(stripReminderText(data.OracleTextTilde[i]))
		ci.OracleTextsRawLower[i] = strings.ToLower(data.OracleText[i])
		ci.OracleTextsTildeRawLower[i] = strings.ToLower(data.OracleTextTilde[i])
		ci.ManaCostsLower[i] = strings.ToLower(data.ManaCost[i])
		ci.ManaSymbols[i] = ParseManaSymbols(data.ManaCost[i])
		ci.ManaValueOf[i] = ManaValue(data.ManaCost[i])
		ci.TypeLinesLower[i] = strings.ToLower(data.TypeLine[i])
		ci.NumericPower[i] = statAt(powerDict, data.PowerIdx[i])
		ci.NumericToughness[i] = statAt(toughnessDict, data.ToughnessIdx[i])
		ci.NumericLoyalty[i] = statAt(loyaltyDict, data.LoyaltyIdx[i])
		ci.NumericDefense[i] = statAt(defenseDict, data.DefenseIdx[i])
	}

	ci.FacesOf = make(map[int][]int, n)
	for i := 0; i < n; i++ {
		c := data.CanonicalFace[i]
		ci.FacesOf[c] = append(ci.FacesOf[c], i)
	}

	return ci, nil
}

func validateFaceColumns(data *FaceData, n int) error {
	cols := map[string]int{
		"CombinedName":    len(data.CombinedName),
		"ManaCost":        len(data.ManaCost),
		"OracleText":      len(data.OracleText),
		"OracleTextTilde": len(data.OracleTextTilde),
		"TypeLine":        len(data.TypeLine),
		"PowerIdx":        len(data.PowerIdx),
		"ToughnessIdx":    len(data.ToughnessIdx),
		"LoyaltyIdx":      len(data.LoyaltyIdx),
		"DefenseIdx":      len(data.DefenseIdx),
		"CanonicalFace":   len(data.CanonicalFace),
	}
	for name, length := range cols {
		if length != n {
			return errors.Errorf("column %s has length %d, want %d (len(Name))", name, length, n)
		}
	}
	return nil
}
