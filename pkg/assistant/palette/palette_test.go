package palette

import (
	"strings"
	"testing"
)

func TestItemsAreContiguous(t *testing.T) {
	items := Items()
	if len(items) != Size {
		t.Fatalf("menu has %d entries, want %d", len(items), Size)
	}
	for i, it := range items {
		if it.Number != i+1 {
			t.Errorf("entry at index %d is numbered %d", i, it.Number)
		}
		if it.Label == "" || it.Phrase == "" {
			t.Errorf("entry %d has an empty label or phrase", it.Number)
		}
	}
}

func TestPhraseLookup(t *testing.T) {
	if p, ok := Phrase(7); !ok || p != "delete a class" {
		t.Errorf("Phrase(7) = %q, %v; want delete-a-class", p, ok)
	}
	for _, n := range []int{0, -1, Size + 1, 99} {
		if _, ok := Phrase(n); ok {
			t.Errorf("Phrase(%d) resolved out of range", n)
		}
	}
}

func TestRenderListsEveryEntry(t *testing.T) {
	menu := Render()
	for _, it := range Items() {
		if !strings.Contains(menu, it.Label) {
			t.Errorf("menu is missing %q", it.Label)
		}
	}
	if !strings.Contains(menu, ExitToken) {
		t.Error("menu does not mention the exit token")
	}
}
