package intent

import "testing"

func TestMatchThreshold(t *testing.T) {
	phrases := []string{"show my notes", "delete a note", "what can you do"}

	if _, ok := Match("qwertyuiop", phrases, 60); ok {
		t.Fatal("gibberish matched above threshold")
	}

	res, ok := Match("show my notes", phrases, 60)
	if !ok {
		t.Fatal("exact phrase did not match")
	}
	if res.Index != 0 || res.Score < 60 {
		t.Errorf("got index %d score %.2f, want index 0 score >= 60", res.Index, res.Score)
	}
}

func TestMatchNeverReturnsBelowThreshold(t *testing.T) {
	phrases := []string{"delete a note", "show calendar", "record a grade"}
	utterances := []string{"delete", "calendar", "grade", "notes please", "zzz"}

	for _, u := range utterances {
		for _, th := range []float64{60, 75, 80, 95} {
			if res, ok := Match(u, phrases, th); ok && res.Score < th {
				t.Errorf("Match(%q, th=%.0f) returned score %.2f below threshold", u, th, res.Score)
			}
		}
	}
}

func TestMatchTieBreakIsFirstDeclared(t *testing.T) {
	// Identical phrases force an exact tie; the first declared must win,
	// on every call.
	phrases := []string{"take a note", "take a note", "take a note"}
	for i := 0; i < 50; i++ {
		res, ok := Match("take a note", phrases, 60)
		if !ok {
			t.Fatal("expected a match")
		}
		if res.Index != 0 {
			t.Fatalf("call %d: tie broke to index %d, want 0", i, res.Index)
		}
	}
}

func TestMatchNormalizesCase(t *testing.T) {
	res, ok := Match("  SHOW MY NOTES  ", []string{"show my notes"}, 60)
	if !ok || res.Score != 100 {
		t.Errorf("case/space normalization failed: ok=%v score=%.2f", ok, res.Score)
	}
}

func TestMatchPrefixIgnoresTrailingContent(t *testing.T) {
	phrases := []string{"isla, note that", "take a note"}

	// Whole-utterance matching dilutes the trigger below a strict
	// threshold; prefix matching must not.
	long := "isla, note that the parent meeting moved to friday afternoon"
	if _, ok := Match(long, phrases, 80); ok {
		t.Fatal("whole-utterance match unexpectedly cleared 80 for a long note")
	}

	res, ok := MatchPrefix(long, phrases, 80)
	if !ok {
		t.Fatal("prefix match failed for note trigger with trailing content")
	}
	if res.Index != 0 {
		t.Errorf("prefix match picked %q, want %q", res.Phrase, phrases[0])
	}
}

func TestMatchPrefixShortUtterance(t *testing.T) {
	// Utterance shorter than the candidate: no truncation, scored as is.
	res, ok := MatchPrefix("isla, note", []string{"isla, note that", "isla, note"}, 80)
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Phrase != "isla, note" {
		t.Errorf("got %q, want the exact shorter trigger", res.Phrase)
	}
}

func TestMatchEmptyCandidates(t *testing.T) {
	if _, ok := Match("anything", nil, 60); ok {
		t.Fatal("match against empty candidate set succeeded")
	}
}
