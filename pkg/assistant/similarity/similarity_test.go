package similarity

import (
	"math"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "identical", a: "show my notes", b: "show my notes", want: 100},
		{name: "both empty", a: "", b: "", want: 100},
		{name: "one empty", a: "delete note", b: "", want: 0},
		{name: "trailing punctuation", a: "hello", b: "hello!", want: 90.909},
		{name: "missing word", a: "delete note", b: "delete a note", want: 91.666},
		{name: "extra word", a: "show my notes", b: "show notes", want: 86.956},
		{name: "transposition", a: "take a note", b: "take a ntoe", want: 90.909},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.a, tt.b)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("Score(%q, %q) = %.3f, want %.3f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestScoreRange(t *testing.T) {
	pairs := [][2]string{
		{"what can you do", "weather tomorrow"},
		{"delete a class", "delete a calendar note"},
		{"isla, note that", "isla, note that meeting is friday"},
		{"x", "yyyyyyyyyy"},
	}
	for _, p := range pairs {
		got := Score(p[0], p[1])
		if got < 0 || got > 100 {
			t.Errorf("Score(%q, %q) = %.3f, out of [0,100]", p[0], p[1], got)
		}
	}
}

func TestScoreSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"show my notes", "show notes"},
		{"delete note", "delete a note"},
		{"take a note", "take a ntoe"},
	}
	for _, p := range pairs {
		ab := Score(p[0], p[1])
		ba := Score(p[1], p[0])
		if math.Abs(ab-ba) > 5 {
			t.Errorf("Score(%q, %q) = %.3f but reversed = %.3f", p[0], p[1], ab, ba)
		}
	}
}

func TestScoreDissimilar(t *testing.T) {
	if got := Score("qwertyuiop", "show my notes"); got >= 50 {
		t.Errorf("dissimilar strings scored %.3f, want < 50", got)
	}
}
