package formutil

import (
	"reflect"
	"testing"
)

func TestSplitLinesDiscardsBlanks(t *testing.T) {
	got := SplitLines("Fast delivery\n\nQuality work\n")
	want := []string{"Fast delivery", "Quality work"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines = %v, want %v", got, want)
	}
}

func TestSplitLinesTrimsWhitespaceAndCR(t *testing.T) {
	got := SplitLines("  one \r\n\ttwo\t\r\n   \r\nthree")
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines = %v, want %v", got, want)
	}
}

func TestSplitLinesEmptyInput(t *testing.T) {
	got := SplitLines("")
	if len(got) != 0 {
		t.Errorf("SplitLines(\"\") = %v, want empty", got)
	}
	if got == nil {
		t.Error("SplitLines(\"\") = nil, want empty slice")
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	inputs := []string{
		"Fast delivery\n\nQuality work\n",
		"a\nb\nc",
		"\n\n\n",
		"single",
	}
	for _, in := range inputs {
		first := SplitLines(in)
		second := SplitLines(JoinLines(first))
		if !reflect.DeepEqual(first, second) {
			t.Errorf("round trip of %q: first %v, second %v", in, first, second)
		}
	}
}
