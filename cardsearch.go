// Package cardsearch re-exports the card-query engine's subpackages
// (token, lexer, ast, parser, index, eval, canonicalize, rank) as a
// single import surface, plus a couple of one-call helpers for hosts
// that don't need the subpackages directly.
package cardsearch

import (
	"github.com/cardquery/cardsearch/ast"
	"github.com/cardquery/cardsearch/canonicalize"
	"github.com/cardquery/cardsearch/eval"
	"github.com/cardquery/cardsearch/index"
	"github.com/cardquery/cardsearch/lexer"
	"github.com/cardquery/cardsearch/parser"
	"github.com/cardquery/cardsearch/token"
)

// Parse lexes and parses a query string into its AST root.
func Parse(input string) ast.Node {
	return parser.Parse(input)
}

// Tokenize returns every token the lexer produces from input, EOF included.
func Tokenize(input string) []token.Token {
	return lexer.Tokenize(input)
}

// Evaluate parses query and evaluates it against cache in one call.
func Evaluate(cache *eval.Cache, query string) *eval.EvalOutput {
	return cache.Evaluate(parser.Parse(query))
}

// Canonicalize renders root back to query source.
func Canonicalize(root ast.Node) string {
	return canonicalize.String(root)
}

// CollectBareWords returns the Value of every BARE node in root that is
// not underneath a NOT, the set the seeded sort and a UI debugger panel
// both need.
func CollectBareWords(root ast.Node) []string {
	return ast.BareWords(root)
}

// Re-export types for convenience.
type (
	Node       = ast.Node
	Bare       = ast.Bare
	Exact      = ast.Exact
	Field      = ast.Field
	RegexField = ast.RegexField
	Not        = ast.Not
	And        = ast.And
	Or         = ast.Or
	Nop        = ast.Nop

	Token     = token.Token
	TokenType = token.Type

	FaceData     = index.FaceData
	PrintingData = index.PrintingData
	CardIndex    = index.CardIndex
	PrintingIndex = index.PrintingIndex

	Cache      = eval.Cache
	EvalOutput = eval.EvalOutput
)

// BuildCardIndex builds a CardIndex over data.
func BuildCardIndex(data *FaceData) (*CardIndex, error) {
	return index.BuildCardIndex(data)
}

// BuildPrintingIndex builds a PrintingIndex over data.
func BuildPrintingIndex(data *PrintingData) (*PrintingIndex, error) {
	return index.BuildPrintingIndex(data)
}

// NewCache builds a NodeCache over cards and, optionally, printings.
func NewCache(cards *CardIndex, printings *PrintingIndex) *Cache {
	return eval.NewCache(cards, printings)
}
