package index

import (
	"reflect"
	"testing"
)

func TestParseManaSymbolsBraced(t *testing.T) {
	got := ParseManaSymbols("{2}{W}{W}")
	want := map[string]int{"generic": 2, "W": 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseManaSymbols = %v, want %v", got, want)
	}
}

func TestParseManaSymbolsHybridAndPhyrexian(t *testing.T) {
	got := ParseManaSymbols("{B/P}{G/W/P}")
	want := map[string]int{"B/P": 1, "G/W/P": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseManaSymbols = %v, want %v", got, want)
	}
}

func TestParseManaSymbolsBareForm(t *testing.T) {
	got := ParseManaSymbols("2WW")
	want := map[string]int{"generic": 2, "W": 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseManaSymbols(bare) = %v, want %v", got, want)
	}
}

func TestParseManaSymbolsUnterminatedBrace(t *testing.T) {
	got := ParseManaSymbols("{2}{W")
	if got["generic"] != 2 || got["W"] != 1 {
		t.Errorf("ParseManaSymbols(unterminated) = %v", got)
	}
}

func TestManaValue(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"{2}{W}{W}", 4},
		{"{X}{R}", 1},
		{"{B/P}", 1},
		{"{G/W/P}", 1},
		{"", 0},
		{"{15}", 15},
	}
	for _, tt := range tests {
		if got := ManaValue(tt.in); got != tt.want {
			t.Errorf("ManaValue(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestManaContains(t *testing.T) {
	cost := ParseManaSymbols("{2}{W}{W}")
	tests := []struct {
		query string
		want  bool
	}{
		{"{W}", true},
		{"{W}{W}", true},
		{"{W}{W}{W}", false},
		{"{2}", true},
		{"{3}", false},
		{"{U}", false},
		{"", true},
	}
	for _, tt := range tests {
		query := ParseManaSymbols(tt.query)
		if got := ManaContains(cost, query); got != tt.want {
			t.Errorf("ManaContains(cost, %q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestManaContainsNeverPanicsOnGarbage(t *testing.T) {
	inputs := []string{"{{{", "}}}", "{/}", "{W/}", "{/W}", "abc{123", "{2/2/2/2}"}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("ParseManaSymbols(%q) panicked: %v", in, r)
				}
			}()
			ParseManaSymbols(in)
			ManaValue(in)
		}()
	}
}
