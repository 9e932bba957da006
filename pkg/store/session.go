// Package store holds the in-memory conversation state shared between
// the assistant engine and the session repository.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Mode determines how the next utterance of a conversation is parsed.
// While the mode is non-idle the engine never falls through to generic
// intent matching, except for the explicit escape tokens.
type Mode string

const (
	ModeIdle                         Mode = "IDLE"
	ModeExpectingNoteText            Mode = "EXPECTING_NOTE_TEXT"
	ModeDeleteNoteBySelection        Mode = "DELETE_NOTE_BY_SELECTION"
	ModeConfirmDeleteAnotherNote     Mode = "CONFIRM_DELETE_ANOTHER_NOTE"
	ModeDeleteCalendarBySelection    Mode = "DELETE_CALENDAR_BY_SELECTION"
	ModeConfirmDeleteAnotherCalendar Mode = "CONFIRM_DELETE_ANOTHER_CALENDAR"
	ModeConfirmDeleteAllNotes        Mode = "CONFIRM_DELETE_ALL_NOTES"
)

// PendingNote is one entry of a deletion snapshot list. Positions shown
// to the user are the 1-based slice indices, re-packed after every
// removal so a displayed number never drifts onto another record.
type PendingNote struct {
	Id      uuid.UUID `json:"id"`
	Content string    `json:"content"`
}

// PendingCalendarNote mirrors PendingNote for calendar entries.
type PendingCalendarNote struct {
	Id          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	ClassName   string    `json:"class_name"` // resolved display name, may be empty
}

// Session is the per-teacher conversation state. It lives for the login
// session and is cleared on logout. The embedded mutex serializes turns
// for one teacher: the read-modify-write of a turn is not atomic, so
// concurrent requests from the same session must queue here.
type Session struct {
	sync.Mutex `json:"-"`

	ID   string `json:"id"` // teacher identity, stringified
	Mode Mode   `json:"mode"`

	// Draft buffer for note capture; reset on entering and leaving
	// EXPECTING_NOTE_TEXT.
	DraftNote string `json:"draft_note"`

	// Snapshot lists for the numbered deletion sub-dialogues.
	PendingNotes         []PendingNote         `json:"pending_notes"`
	PendingCalendarNotes []PendingCalendarNote `json:"pending_calendar_notes"`

	// PaletteActive is orthogonal metadata, not a mode: while set, idle
	// turns follow the palette grammar and replies carry the palette
	// reminder footer.
	PaletteActive bool `json:"palette_active"`
}

// NewSession returns an idle session for the given identity.
func NewSession(id string) *Session {
	return &Session{ID: id, Mode: ModeIdle}
}

// ResetDialogue drops every sub-dialogue buffer and returns to idle.
// The palette flag is left alone; leaving the palette is an explicit
// user action.
func (s *Session) ResetDialogue() {
	s.Mode = ModeIdle
	s.DraftNote = ""
	s.PendingNotes = nil
	s.PendingCalendarNotes = nil
}
