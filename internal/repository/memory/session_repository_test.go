package memory

import (
	"testing"

	"classrecord-be/pkg/store"
)

func TestGetOrCreateReturnsSameSession(t *testing.T) {
	repo := NewSessionRepository()

	a := repo.GetOrCreate("teacher-1")
	a.Mode = store.ModeExpectingNoteText
	a.DraftNote = "half a thought "

	b := repo.GetOrCreate("teacher-1")
	if a != b {
		t.Fatal("second lookup returned a different session")
	}
	if b.Mode != store.ModeExpectingNoteText || b.DraftNote != "half a thought " {
		t.Error("dialogue state lost between lookups")
	}
}

func TestSessionsAreIsolatedPerTeacher(t *testing.T) {
	repo := NewSessionRepository()

	a := repo.GetOrCreate("teacher-1")
	a.PaletteActive = true

	b := repo.GetOrCreate("teacher-2")
	if b.PaletteActive {
		t.Error("state leaked across teacher sessions")
	}
}

func TestDeleteClearsSession(t *testing.T) {
	repo := NewSessionRepository()

	a := repo.GetOrCreate("teacher-1")
	a.Mode = store.ModeConfirmDeleteAllNotes
	repo.Delete("teacher-1")

	b := repo.GetOrCreate("teacher-1")
	if b == a {
		t.Fatal("deleted session came back")
	}
	if b.Mode != store.ModeIdle {
		t.Error("fresh session is not idle")
	}
}
