// Package eval implements the structural interner and memoized
// evaluator: it interns AST subtrees bottom-up by a deterministic
// structural key, caches one ComputedResult per interned node, and
// evaluates root-downward with byte-wise AND/OR/NOT over child buffers,
// promoting between the face and printing domains as needed.
package eval

import (
	"sort"
	"time"

	"github.com/cardquery/cardsearch/ast"
	"github.com/cardquery/cardsearch/index"
)

// Cache is a NodeCache bound to one (CardIndex, PrintingIndex?) pair. It
// is not safe for concurrent Evaluate calls; give each worker its own
// Cache over the same read-only indices.
type Cache struct {
	Cards     *index.CardIndex
	Printings *index.PrintingIndex // nil when no printing data is loaded

	interned map[string]*InternedNode
	pool     *bufferPool
}

// NewCache builds a NodeCache over cards and, optionally, printings.
func NewCache(cards *index.CardIndex, printings *index.PrintingIndex) *Cache {
	return &Cache{
		Cards:     cards,
		Printings: printings,
		interned:  make(map[string]*InternedNode),
		pool:      newBufferPool(),
	}
}

func (c *Cache) faceCount() int { return c.Cards.Len() }

func (c *Cache) printingCount() int {
	if c.Printings == nil {
		return 0
	}
	return c.Printings.Len()
}

// intern finds or creates the InternedNode for n, recursing into
// children first so the whole tree is interned bottom-up.
func (c *Cache) intern(n ast.Node) *InternedNode {
	key := structuralKey(n)
	if existing, ok := c.interned[key]; ok {
		return existing
	}
	node := &InternedNode{Key: key, AST: n}
	switch v := n.(type) {
	case *ast.Not:
		node.Children = []*InternedNode{c.intern(v.Child)}
	case *ast.And:
		for _, ch := range v.Children {
			node.Children = append(node.Children, c.intern(ch))
		}
	case *ast.Or:
		for _, ch := range v.Children {
			node.Children = append(node.Children, c.intern(ch))
		}
	}
	c.interned[key] = node
	return node
}

// Evaluate interns root, computes any node lacking a ComputedResult, and
// reports the result tree plus index outputs.
func (c *Cache) Evaluate(root ast.Node) *EvalOutput {
	node := c.intern(root)
	fresh := make(map[*InternedNode]bool)
	c.computeBottomUp(node, fresh)

	tree := c.buildResultTree(node, fresh)

	out := &EvalOutput{
		ResultTree:            tree,
		HasPrintingConditions: hasPrintingConditions(root),
	}
	out.PrintingsUnavailable = out.HasPrintingConditions && c.Printings == nil

	res := node.Result
	if res.Err != nil {
		out.FaceIndices = []int{}
		return out
	}

	switch res.Domain {
	case Printing:
		out.PrintingIndices = indicesOf(res.Buffer)
		out.FaceIndices = c.collapsePrintingToFace(res.Buffer)
	default:
		out.FaceIndices = indicesOf(res.Buffer)
	}
	return out
}

// collapsePrintingToFace maps a printing-domain buffer back to the
// sorted, deduplicated set of canonical face rows it touches.
func (c *Cache) collapsePrintingToFace(printBuf []byte) []int {
	seen := make(map[int]bool)
	ref := c.Printings.Data.CanonicalFaceRef
	for j, b := range printBuf {
		if b != 0 {
			seen[ref[j]] = true
		}
	}
	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// computeBottomUp fills in node.Result (and every descendant's) for any
// node lacking one, marking it in fresh so buildResultTree can report
// cached=false and eval_ms==production_ms for it.
func (c *Cache) computeBottomUp(node *InternedNode, fresh map[*InternedNode]bool) {
	for _, ch := range node.Children {
		c.computeBottomUp(ch, fresh)
	}
	if node.Result != nil {
		return
	}
	start := time.Now()
	node.Result = c.computeNode(node)
	node.Result.ProductionMs = float64(time.Since(start)) / float64(time.Millisecond)
	fresh[node] = true
}

func (c *Cache) buildResultTree(node *InternedNode, fresh map[*InternedNode]bool) *QueryNodeResult {
	res := node.Result
	qr := &QueryNodeResult{
		AST:          node.AST,
		MatchCount:   res.MatchCount,
		Cached:       !fresh[node],
		ProductionMs: res.ProductionMs,
		Err:          res.Err,
	}
	if fresh[node] {
		qr.EvalMs = res.ProductionMs
	}
	for _, ch := range node.Children {
		qr.Children = append(qr.Children, c.buildResultTree(ch, fresh))
	}
	return qr
}

// hasPrintingConditions walks the AST looking for any leaf whose natural
// domain is Printing, independent of whether it errors: a printing-only
// `is:` keyword or a printing-domain field name.
func hasPrintingConditions(root ast.Node) bool {
	found := false
	ast.Walk(root, func(n ast.Node) bool {
		if found {
			return false
		}
		if f, ok := n.(*ast.Field); ok {
			canonical, ok := index.CanonicalizeField(f.Field)
			if !ok {
				return true
			}
			if index.IsPrintingField(canonical) {
				found = true
				return false
			}
			if canonical == "is" {
				if _, kind := index.ResolveKeyword(f.Value); kind == index.KeywordPrintingOnly {
					found = true
					return false
				}
			}
		}
		return true
	})
	return found
}

func (c *Cache) errorResult(domain Domain, err error) *ComputedResult {
	size := c.faceCount()
	if domain == Printing {
		size = c.printingCount()
	}
	return &ComputedResult{
		Buffer:     c.pool.acquire(size),
		MatchCount: -1,
		Domain:     domain,
		Err:        err,
	}
}

func (c *Cache) nopResult() *ComputedResult {
	return &ComputedResult{
		Buffer:     c.pool.acquire(c.faceCount()),
		MatchCount: 0,
		Domain:     Face,
		IsNop:      true,
	}
}

// computeNode dispatches one interned node to its leaf evaluator or
// combinator; children are already computed (computeBottomUp guarantees
// this before calling computeNode on a parent).
func (c *Cache) computeNode(node *InternedNode) *ComputedResult {
	switch v := node.AST.(type) {
	case *ast.Nop:
		return c.nopResult()
	case *ast.Bare:
		return c.evalBare(v)
	case *ast.Exact:
		return c.evalExact(v)
	case *ast.Field:
		return c.evalFieldLeaf(v)
	case *ast.RegexField:
		return c.evalRegexField(v)
	case *ast.Not:
		return c.evalNot(node.Children[0].Result)
	case *ast.And:
		return c.evalAnd(childResults(node))
	case *ast.Or:
		return c.evalOr(childResults(node))
	default:
		return c.nopResult()
	}
}

func childResults(node *InternedNode) []*ComputedResult {
	out := make([]*ComputedResult, len(node.Children))
	for i, ch := range node.Children {
		out[i] = ch.Result
	}
	return out
}
