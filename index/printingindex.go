package index

import (
	"strings"

	"github.com/pkg/errors"
)

// PrintingIndex is the immutable, once-built evaluation view over
// PrintingData.
type PrintingIndex struct {
	Data *PrintingData

	CollectorNumbersLower []string
	SetCodesLower         []string // per printing row
	SetReleasedAt         []int    // per printing row, via set lookup

	KnownSetCodes map[string]bool
	setsByCode    map[string]SetInfo

	// PrintingsOf maps a canonical face row index to every printing row
	// of that card.
	PrintingsOf map[int][]int
}

// Len returns N_print.
func (pi *PrintingIndex) Len() int { return pi.Data.Len() }

// BuildPrintingIndex builds a PrintingIndex over PrintingData.
func BuildPrintingIndex(data *PrintingData) (*PrintingIndex, error) {
	if data == nil {
		return nil, errors.New("index: nil PrintingData")
	}
	n := data.Len()
	if err := validatePrintingColumns(data, n); err != nil {
		return nil, errors.Wrap(err, "index: building PrintingIndex")
	}

	pi := &PrintingIndex{
		Data:                  data,
		CollectorNumbersLower: make([]string, n),
		SetCodesLower:         make([]string, n),
		SetReleasedAt:         make([]int, n),
		KnownSetCodes:         make(map[string]bool, len(data.SetLookup)),
		setsByCode:            make(map[string]SetInfo, len(data.SetLookup)),
		PrintingsOf:           make(map[int][]int, n),
	}

	for _, s := range data.SetLookup {
		code := strings.ToLower(s.Code)
		pi.KnownSetCodes[code] = true
		pi.setsByCode[code] = s
	}

	for i := 0; i < n; i++ {
		pi.CollectorNumbersLower[i] = strings.ToLower(data.CollectorNumber[i])
		setIdx := data.SetIndex[i]
		if setIdx >= 0 && setIdx < len(data.SetLookup) {
			set := data.SetLookup[setIdx]
			pi.SetCodesLower[i] = strings.ToLower(set.Code)
			pi.SetReleasedAt[i] = set.ReleasedAt
		}
		c := data.CanonicalFaceRef[i]
		pi.PrintingsOf[c] = append(pi.PrintingsOf[c], i)
	}

	return pi, nil
}

// SetByCode resolves a lowercase set code to its SetInfo, used by the
// `date:` field when the value names a set rather than a literal date.
func (pi *PrintingIndex) SetByCode(codeLower string) (SetInfo, bool) {
	s, ok := pi.setsByCode[codeLower]
	return s, ok
}

func validatePrintingColumns(data *PrintingData, n int) error {
	cols := map[string]int{
		"ScryfallID":      len(data.ScryfallID),
		"CollectorNumber": len(data.CollectorNumber),
		"SetIndex":        len(data.SetIndex),
		"Rarity":          len(data.Rarity),
		"PrintingFlags":   len(data.PrintingFlags),
		"Finish":          len(data.Finish),
		"Frame":           len(data.Frame),
		"PriceUSD":        len(data.PriceUSD),
		"ReleasedAt":      len(data.ReleasedAt),
	}
	for name, length := range cols {
		if length != n {
			return errors.Errorf("column %s has length %d, want %d (len(CanonicalFaceRef))", name, length, n)
		}
	}
	return nil
}
