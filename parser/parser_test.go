package parser

import (
	"testing"

	"github.com/cardquery/cardsearch/ast"
	"github.com/cardquery/cardsearch/token"
)

func TestParseBareWord(t *testing.T) {
	n := Parse("bolt")
	b, ok := n.(*ast.Bare)
	if !ok {
		t.Fatalf("expected *ast.Bare, got %T", n)
	}
	if b.Value != "bolt" || b.Quoted {
		t.Errorf("got %+v", b)
	}
}

func TestParseQuotedBare(t *testing.T) {
	n := Parse(`"lightning bolt"`)
	b, ok := n.(*ast.Bare)
	if !ok || !b.Quoted || b.Value != "lightning bolt" {
		t.Fatalf("got %#v (%T)", n, n)
	}
}

func TestParseFieldQuery(t *testing.T) {
	n := Parse("t:creature")
	f, ok := n.(*ast.Field)
	if !ok {
		t.Fatalf("expected *ast.Field, got %T", n)
	}
	if f.Field != "t" || f.Operator != token.COLON || f.Value != "creature" {
		t.Errorf("got %+v", f)
	}
}

func TestParseFieldMissingValue(t *testing.T) {
	n := Parse("pow>")
	f, ok := n.(*ast.Field)
	if !ok {
		t.Fatalf("expected *ast.Field, got %T", n)
	}
	if f.Value != "" {
		t.Errorf("expected empty value, got %q", f.Value)
	}
	if f.ValueSpan.Start != f.ValueSpan.End {
		t.Errorf("expected zero-width value span, got %+v", f.ValueSpan)
	}
	if f.ValueSpan.Start != f.SpanV.End {
		t.Errorf("expected value span at operator end %d, got %+v", f.SpanV.End, f.ValueSpan)
	}
}

func TestParseAndGroupOfTwo(t *testing.T) {
	n := Parse("c:g t:creature")
	a, ok := n.(*ast.And)
	if !ok {
		t.Fatalf("expected *ast.And, got %T", n)
	}
	if len(a.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(a.Children))
	}
}

func TestParseAndGroupSingleChildUnwrapped(t *testing.T) {
	n := Parse("bolt")
	if _, ok := n.(*ast.And); ok {
		t.Fatalf("expected single term to not be wrapped in And, got %#v", n)
	}
}

func TestParseEmptyInputIsNop(t *testing.T) {
	n := Parse("")
	if _, ok := n.(*ast.Nop); !ok {
		t.Fatalf("expected *ast.Nop, got %T", n)
	}
}

func TestParseOr(t *testing.T) {
	n := Parse("bolt OR shock")
	o, ok := n.(*ast.Or)
	if !ok {
		t.Fatalf("expected *ast.Or, got %T", n)
	}
	if len(o.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(o.Children))
	}
}

func TestParseLeadingOrYieldsNop(t *testing.T) {
	n := Parse("OR bolt")
	o, ok := n.(*ast.Or)
	if !ok {
		t.Fatalf("expected *ast.Or, got %T", n)
	}
	if _, ok := o.Children[0].(*ast.Nop); !ok {
		t.Errorf("expected first child to be Nop, got %T", o.Children[0])
	}
}

func TestParseTrailingOrYieldsNop(t *testing.T) {
	n := Parse("bolt OR")
	o, ok := n.(*ast.Or)
	if !ok {
		t.Fatalf("expected *ast.Or, got %T", n)
	}
	if _, ok := o.Children[len(o.Children)-1].(*ast.Nop); !ok {
		t.Errorf("expected last child to be Nop, got %T", o.Children[len(o.Children)-1])
	}
}

func TestParseDoubleOrYieldsMiddleNop(t *testing.T) {
	n := Parse("bolt OR OR shock")
	o, ok := n.(*ast.Or)
	if !ok {
		t.Fatalf("expected *ast.Or, got %T", n)
	}
	if len(o.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(o.Children))
	}
	if _, ok := o.Children[1].(*ast.Nop); !ok {
		t.Errorf("expected middle child to be Nop, got %T", o.Children[1])
	}
}

func TestParseDashWithNoAtomIsNop(t *testing.T) {
	n := Parse("-")
	if _, ok := n.(*ast.Nop); !ok {
		t.Fatalf("expected *ast.Nop, got %T", n)
	}
}

func TestParseDashAtom(t *testing.T) {
	n := Parse("-t:creature")
	not, ok := n.(*ast.Not)
	if !ok {
		t.Fatalf("expected *ast.Not, got %T", n)
	}
	if _, ok := not.Child.(*ast.Field); !ok {
		t.Errorf("expected Not.Child to be *ast.Field, got %T", not.Child)
	}
}

func TestParseBangWithoutValue(t *testing.T) {
	n := Parse("!")
	e, ok := n.(*ast.Exact)
	if !ok || e.Value != "" {
		t.Fatalf("expected empty *ast.Exact, got %#v (%T)", n, n)
	}
}

func TestParseBangExact(t *testing.T) {
	n := Parse(`!"Lightning Bolt"`)
	e, ok := n.(*ast.Exact)
	if !ok || e.Value != "Lightning Bolt" {
		t.Fatalf("got %#v (%T)", n, n)
	}
}

func TestParseUnclosedParenReturnsInnerUnwrapped(t *testing.T) {
	n := Parse("(c:g t:creature")
	a, ok := n.(*ast.And)
	if !ok || len(a.Children) != 2 {
		t.Fatalf("expected 2-child And unwrapped from unclosed paren, got %#v (%T)", n, n)
	}
}

func TestParseBareRegexDesugars(t *testing.T) {
	n := Parse("/bolt/")
	o, ok := n.(*ast.Or)
	if !ok || len(o.Children) != 3 {
		t.Fatalf("expected 3-child Or, got %#v (%T)", n, n)
	}
	wantFields := []string{"name", "oracle", "type"}
	for i, c := range o.Children {
		rf, ok := c.(*ast.RegexField)
		if !ok {
			t.Fatalf("child %d: expected *ast.RegexField, got %T", i, c)
		}
		if rf.Field != wantFields[i] {
			t.Errorf("child %d: expected field %s, got %s", i, wantFields[i], rf.Field)
		}
		if rf.Span() != nil {
			t.Errorf("child %d: expected nil span for desugared child, got %+v", i, rf.Span())
		}
	}
	if o.Span() == nil {
		t.Errorf("expected the wrapping Or to carry the original regex span")
	}
}

func TestParseFieldRegexQuery(t *testing.T) {
	n := Parse(`o:/~ deals \d+/`)
	rf, ok := n.(*ast.RegexField)
	if !ok {
		t.Fatalf("expected *ast.RegexField, got %T", n)
	}
	if rf.Field != "o" || rf.Pattern != `~ deals \d+` {
		t.Errorf("got %+v", rf)
	}
}

func TestSpanInvariantsForAndOr(t *testing.T) {
	input := "c:g t:creature"
	n := Parse(input)
	s := n.Span()
	if s == nil {
		t.Fatal("expected non-nil span")
	}
	if got := input[s.Start:s.End]; got != input {
		t.Errorf("span %q does not cover full input %q", got, input)
	}
}

func TestNeverFailsOnGarbageInput(t *testing.T) {
	inputs := []string{
		"", "   ", "(((", ")))", `"`, `/`, "-", "!", "!=!=",
		"OR OR OR", ":::", "<<<", "t:", "c:g OR", "-(-(-bolt",
		"((()))", "!!!foo", "o:/unterminated",
	}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("input %q panicked: %v", in, r)
				}
			}()
			n := Parse(in)
			if n == nil {
				t.Errorf("input %q: Parse returned nil", in)
			}
		}()
	}
}
