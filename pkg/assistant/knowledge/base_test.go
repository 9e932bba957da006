package knowledge

import "testing"

func TestEntriesStable(t *testing.T) {
	a := Entries()
	b := Entries()
	if len(a) == 0 {
		t.Fatal("knowledge base is empty")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("entry %d differs between calls", i)
		}
	}
}

func TestEntriesUniquePhrases(t *testing.T) {
	seen := map[string]int{}
	for i, e := range Entries() {
		if e.Phrase == "" {
			t.Errorf("entry %d has an empty phrase", i)
		}
		if prev, dup := seen[e.Phrase]; dup {
			t.Errorf("phrase %q declared at both %d and %d", e.Phrase, prev, i)
		}
		seen[e.Phrase] = i
	}
}

func TestEntriesHaveResponseOrDynamic(t *testing.T) {
	for i, e := range Entries() {
		if e.Dynamic == DynamicNone && e.Response == "" {
			t.Errorf("entry %d (%q) has neither a response nor a dynamic tag", i, e.Phrase)
		}
		if e.Dynamic != DynamicNone && e.Response != "" {
			t.Errorf("entry %d (%q) has both a literal response and a dynamic tag", i, e.Phrase)
		}
	}
}

func TestEveryDynamicIsReachable(t *testing.T) {
	want := []Dynamic{
		DynamicNotesList, DynamicDeleteNotesList, DynamicDeleteAllNotes,
		DynamicCalendarList, DynamicDeleteCalendarList,
		DynamicClassList, DynamicGradeSummary,
	}
	have := map[Dynamic]bool{}
	for _, e := range Entries() {
		have[e.Dynamic] = true
	}
	for _, d := range want {
		if !have[d] {
			t.Errorf("no knowledge entry triggers dynamic %d", d)
		}
	}
}
