package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardquery/cardsearch/parser"
)

func evalQuery(t *testing.T, c *Cache, query string) *EvalOutput {
	t.Helper()
	return c.Evaluate(parser.Parse(query))
}

func TestEvaluateColorAndTypeIntersection(t *testing.T) {
	c := NewCache(buildFixtureCards(t), nil)
	out := evalQuery(t, c, "c:g t:creature")
	assert.Equal(t, []int{0, 4}, out.FaceIndices)
	require.Len(t, out.ResultTree.Children, 2)
	assert.Equal(t, 2, out.ResultTree.Children[0].MatchCount) // c:g -> faces 0,4
	assert.Equal(t, 6, out.ResultTree.Children[1].MatchCount) // t:creature -> 0,2,4,5,7,8 (7 collapses 6&7)
}

func TestEvaluateBareNameMatch(t *testing.T) {
	c := NewCache(buildFixtureCards(t), nil)
	out := evalQuery(t, c, "bolt")
	assert.Equal(t, []int{1}, out.FaceIndices)
}

func TestEvaluateIsKeywordCollapsesToCanonicalFace(t *testing.T) {
	c := NewCache(buildFixtureCards(t), nil)
	out := evalQuery(t, c, "is:phyrexian")
	assert.Equal(t, []int{7}, out.FaceIndices)
}

func TestEvaluateSetFieldPrintingDomain(t *testing.T) {
	c := NewCache(buildFixtureCards(t), buildFixturePrintings(t))
	out := evalQuery(t, c, "set:mh2")
	require.NoError(t, out.ResultTree.Err)
	assert.Equal(t, []int{1}, out.FaceIndices)
	assert.Equal(t, []int{0, 1}, out.PrintingIndices)
	assert.Equal(t, 2, out.ResultTree.MatchCount)
	assert.True(t, out.HasPrintingConditions)
	assert.False(t, out.PrintingsUnavailable)
}

func TestEvaluateCrossDomainAndCollapsesMatchCount(t *testing.T) {
	c := NewCache(buildFixtureCards(t), buildFixturePrintings(t))
	out := evalQuery(t, c, "t:instant set:mh2")
	require.NoError(t, out.ResultTree.Err)
	assert.Equal(t, []int{1}, out.FaceIndices)
	assert.Equal(t, []int{0, 1}, out.PrintingIndices)
	assert.Equal(t, 1, out.ResultTree.MatchCount)
}

func TestEvaluateSetFieldWithoutPrintingIndexErrors(t *testing.T) {
	c := NewCache(buildFixtureCards(t), nil)
	out := evalQuery(t, c, "set:mh2")
	require.Error(t, out.ResultTree.Err)
	assert.Equal(t, "printing data not loaded", out.ResultTree.Err.Error())
	assert.Equal(t, -1, out.ResultTree.MatchCount)
	assert.Empty(t, out.FaceIndices)
	assert.True(t, out.HasPrintingConditions)
	assert.True(t, out.PrintingsUnavailable)
}

func TestEvaluateAndSkipsErroredChild(t *testing.T) {
	c := NewCache(buildFixtureCards(t), nil)
	withError := evalQuery(t, c, "t:creature ci:cb")
	alone := evalQuery(t, c, "t:creature")
	assert.Equal(t, alone.FaceIndices, withError.FaceIndices)

	require.Len(t, withError.ResultTree.Children, 2)
	var sawContradiction bool
	for _, ch := range withError.ResultTree.Children {
		if ch.Err != nil {
			sawContradiction = true
			assert.Equal(t, "a card cannot be both colored and colorless", ch.Err.Error())
		}
	}
	assert.True(t, sawContradiction)
}

func TestEvaluateOracleRegexUsesUnstrippedText(t *testing.T) {
	c := NewCache(buildFixtureCards(t), nil)
	out := evalQuery(t, c, "o:/damage/")
	assert.Equal(t, []int{1, 2}, out.FaceIndices)
}

func TestEvaluateOracleRegexTildeDispatch(t *testing.T) {
	c := NewCache(buildFixtureCards(t), nil)
	out := evalQuery(t, c, `o:/~ deals \d+/`)
	assert.Equal(t, []int{1}, out.FaceIndices)
}

func TestEvaluateUnknownFieldErrors(t *testing.T) {
	c := NewCache(buildFixtureCards(t), nil)
	out := evalQuery(t, c, "wat:foo")
	require.Error(t, out.ResultTree.Err)
	assert.Equal(t, `unknown field "wat"`, out.ResultTree.Err.Error())
}

func TestEvaluateNotNegatesFaceDomain(t *testing.T) {
	c := NewCache(buildFixtureCards(t), nil)
	out := evalQuery(t, c, "-c:g")
	assert.NotContains(t, out.FaceIndices, 0)
	assert.NotContains(t, out.FaceIndices, 4)
	assert.Contains(t, out.FaceIndices, 1)
}

func TestEvaluateOrUnionsAcrossDomains(t *testing.T) {
	c := NewCache(buildFixtureCards(t), buildFixturePrintings(t))
	out := evalQuery(t, c, "t:instant OR set:znr")
	// t:instant -> faces {1,3}; set:znr -> printings {2,4} -> faces {0,7}.
	assert.ElementsMatch(t, []int{0, 1, 3, 7}, out.FaceIndices)
}

func TestEvaluateCachingReusesStructurallyIdenticalSubtrees(t *testing.T) {
	c := NewCache(buildFixtureCards(t), nil)
	first := evalQuery(t, c, "c:g t:creature")
	assert.False(t, first.ResultTree.Cached)

	second := evalQuery(t, c, "c:g t:creature")
	assert.True(t, second.ResultTree.Cached)
	assert.Equal(t, first.ResultTree.MatchCount, second.ResultTree.MatchCount)
}
