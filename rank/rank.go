// Package rank implements the seeded, two-tier stable sort used to
// stabilize result order across re-evaluations of the same query:
// bare-word name matches sort first, then everyone else, each tier
// ordered by a seeded hash rather than raw index so that repeated runs
// land in the same order without favoring low indices.
package rank

import (
	"sort"
	"strings"
)

// fnv1a computes the 32-bit FNV-1a hash of s.
func fnv1a(s string) uint32 {
	const (
		offsetBasis = 2166136261
		prime       = 16777619
	)
	h := uint32(offsetBasis)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= prime
	}
	return h
}

// mix is a 32-bit integer hash: two rounds of the standard
// xorshift-multiply mixer.
func mix(x uint32) uint32 {
	x = (x ^ (x >> 16)) * 0x45d9f3b
	x = (x ^ (x >> 16)) * 0x45d9f3b
	return x
}

// sortKey combines the seed hash, session salt, and a row index into one
// ordering key.
func sortKey(seedHash, sessionSalt uint32, index int) uint32 {
	return mix(seedHash ^ sessionSalt ^ uint32(index))
}

// hasBarePrefix reports whether name starts with any of words, the
// tier-0 test.
func hasBarePrefix(name string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.HasPrefix(name, w) {
			return true
		}
	}
	return false
}

// SortFaceIndices reorders indices in place into two tiers: rows whose
// nameColumn entry starts with any bareWord first, everyone else second;
// within each tier, order is by sortKey ascending.
func SortFaceIndices(indices []int, seed string, sessionSalt uint32, nameColumn []string, bareWords []string) {
	h := fnv1a(seed)
	lowered := make([]string, len(bareWords))
	for i, w := range bareWords {
		lowered[i] = strings.ToLower(w)
	}
	sort.SliceStable(indices, func(i, j int) bool {
		a, b := indices[i], indices[j]
		tierA := !hasBarePrefix(strings.ToLower(nameColumn[a]), lowered)
		tierB := !hasBarePrefix(strings.ToLower(nameColumn[b]), lowered)
		if tierA != tierB {
			return !tierA // tier 0 (prefix match) sorts before tier 1
		}
		return sortKey(h, sessionSalt, a) < sortKey(h, sessionSalt, b)
	})
}

// SortPrintingIndices is the printing-domain variant of SortFaceIndices:
// tiering and the seeded key are both computed against the printing's
// canonical face, so every printing of one card sorts contiguously.
func SortPrintingIndices(indices []int, seed string, sessionSalt uint32, canonicalFaceOf []int, faceNameColumn []string, bareWords []string) {
	h := fnv1a(seed)
	lowered := make([]string, len(bareWords))
	for i, w := range bareWords {
		lowered[i] = strings.ToLower(w)
	}
	sort.SliceStable(indices, func(i, j int) bool {
		a, b := indices[i], indices[j]
		faceA, faceB := canonicalFaceOf[a], canonicalFaceOf[b]
		tierA := !hasBarePrefix(strings.ToLower(faceNameColumn[faceA]), lowered)
		tierB := !hasBarePrefix(strings.ToLower(faceNameColumn[faceB]), lowered)
		if tierA != tierB {
			return !tierA
		}
		return sortKey(h, sessionSalt, faceA) < sortKey(h, sessionSalt, faceB)
	})
}
