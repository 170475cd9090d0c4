package ast

import (
	"testing"

	"github.com/cardquery/cardsearch/token"
)

func TestNopHasNoSpan(t *testing.T) {
	n := &Nop{}
	if n.Span() != nil {
		t.Errorf("expected nil span for Nop, got %v", n.Span())
	}
}

func TestFieldString(t *testing.T) {
	f := &Field{Field: "power", Operator: token.GTE, Value: "3"}
	if got, want := f.String(), "power>=3"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExactString(t *testing.T) {
	e := &Exact{Value: "Bolt"}
	if got, want := e.String(), `!"Bolt"`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWalkVisitsAllNodes(t *testing.T) {
	root := &And{Children: []Node{
		&Bare{Value: "bolt"},
		&Not{Child: &Field{Field: "type", Operator: token.COLON, Value: "creature"}},
	}}
	var kinds []string
	Walk(root, func(n Node) bool {
		switch n.(type) {
		case *And:
			kinds = append(kinds, "And")
		case *Bare:
			kinds = append(kinds, "Bare")
		case *Not:
			kinds = append(kinds, "Not")
		case *Field:
			kinds = append(kinds, "Field")
		}
		return true
	})
	want := []string{"And", "Bare", "Not", "Field"}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("position %d: got %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestBareWordsExcludesNegated(t *testing.T) {
	root := &Or{Children: []Node{
		&Bare{Value: "bolt"},
		&Not{Child: &Bare{Value: "shock"}},
		&And{Children: []Node{&Bare{Value: "fire"}}},
	}}
	got := BareWords(root)
	want := []string{"bolt", "fire"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestBareWordsEmptyForNilRoot(t *testing.T) {
	if got := BareWords(nil); len(got) != 0 {
		t.Errorf("expected no bare words, got %v", got)
	}
}
