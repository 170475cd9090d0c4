package eval

import "github.com/cardquery/cardsearch/ast"

// ComputedResult is the cached evaluation of one interned AST subtree.
// MatchCount is -1 when Err is set.
type ComputedResult struct {
	Buffer       []byte
	MatchCount   int
	Domain       Domain
	ProductionMs float64
	Err          error
	IsNop        bool // true for an interned Nop node's result
}

// InternedNode is one structurally-unique AST subtree living in a
// NodeCache. Multiple parses of the same query text share the same
// InternedNode for equal subtrees.
type InternedNode struct {
	Key      string
	AST      ast.Node
	Children []*InternedNode
	Result   *ComputedResult
}

// QueryNodeResult mirrors the AST for UI consumption.
type QueryNodeResult struct {
	AST          ast.Node
	MatchCount   int
	Cached       bool
	ProductionMs float64
	EvalMs       float64
	Err          error
	Children     []*QueryNodeResult
}

// EvalOutput is the top-level result of one evaluate() call.
type EvalOutput struct {
	ResultTree            *QueryNodeResult
	FaceIndices           []int
	PrintingIndices       []int // nil when the root result is face-domain or matched no printing row
	HasPrintingConditions bool
	PrintingsUnavailable  bool
}
