package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortFaceIndicesPrefixTierSortsFirst(t *testing.T) {
	names := []string{"Lightning Bolt", "Lightning Helix", "Counterspell", "Llanowar Elves"}
	indices := []int{0, 1, 2, 3}

	SortFaceIndices(indices, "seed", 7, names, []string{"lightning"})

	assert.ElementsMatch(t, []int{0, 1}, indices[:2])
	assert.ElementsMatch(t, []int{2, 3}, indices[2:])
}

func TestSortFaceIndicesDeterministicAcrossCalls(t *testing.T) {
	names := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"}

	a := []int{0, 1, 2, 3, 4}
	b := []int{4, 3, 2, 1, 0}
	SortFaceIndices(a, "seed-1", 42, names, nil)
	SortFaceIndices(b, "seed-1", 42, names, nil)

	assert.Equal(t, a, b)
}

func TestSortFaceIndicesDifferentSeedsCanDiffer(t *testing.T) {
	names := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta"}
	a := []int{0, 1, 2, 3, 4, 5, 6}
	b := []int{0, 1, 2, 3, 4, 5, 6}

	SortFaceIndices(a, "seed-a", 0, names, nil)
	SortFaceIndices(b, "seed-b", 0, names, nil)

	assert.NotEqual(t, a, b)
}

func TestSortFaceIndicesEmptyBareWordsIsAllTier1(t *testing.T) {
	names := []string{"Alpha", "Beta"}
	indices := []int{0, 1}
	before := append([]int(nil), indices...)

	SortFaceIndices(indices, "seed", 0, names, nil)

	assert.ElementsMatch(t, before, indices)
}

func TestSortPrintingIndicesGroupsByCanonicalFace(t *testing.T) {
	// Printings 0 and 2 belong to face 0 (Lightning Bolt); printing 1
	// belongs to face 1 (Counterspell).
	canonicalFaceOf := []int{0, 1, 0}
	faceNames := []string{"Lightning Bolt", "Counterspell"}
	indices := []int{0, 1, 2}

	SortPrintingIndices(indices, "seed", 0, canonicalFaceOf, faceNames, []string{"lightning"})

	assert.ElementsMatch(t, []int{0, 2}, indices[:2])
	assert.Equal(t, 1, indices[2])
}
