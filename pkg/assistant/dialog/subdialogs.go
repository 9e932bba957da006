package dialog

import (
	"context"
	"strings"

	"classrecord-be/pkg/assistant/intent"
	"classrecord-be/pkg/store"

	"github.com/google/uuid"
)

// captureNote accumulates free text until a done/cancel token arrives.
// The tokens are matched fuzzily at the command threshold, so "done!"
// or "cancel!" still land while ordinary note content never ends the
// capture by accident.
func (e *Engine) captureNote(ctx context.Context, teacherId uuid.UUID, sess *store.Session, raw string) string {
	if res, ok := intent.Match(raw, captureControls, CommandThreshold); ok {
		switch res.Phrase {
		case "done":
			content := strings.TrimSpace(sess.DraftNote)
			sess.Mode = store.ModeIdle
			sess.DraftNote = ""
			if content == "" {
				return respNothingNoted
			}
			if err := e.actions.CreateNote(ctx, teacherId, content); err != nil {
				return e.actionFailed(sess, "create note", err)
			}
			return respNoteSaved(content)
		case "cancel":
			sess.Mode = store.ModeIdle
			sess.DraftNote = ""
			return respNoteCancelled
		}
	}

	sess.DraftNote += raw + " "
	return respNoteContinue
}

// selectNoteForDeletion resolves a 1-based position against the
// snapshot taken when the sub-dialogue opened. The snapshot, not the
// live table, is authoritative for numbering; after a removal it is
// re-packed so positions stay contiguous.
func (e *Engine) selectNoteForDeletion(ctx context.Context, teacherId uuid.UUID, sess *store.Session, raw string) string {
	lower := intent.Normalize(raw)
	if lower == "cancel" || lower == "no" {
		sess.ResetDialogue()
		return respDeletionAborted
	}

	n, numeric := parseSelection(raw)
	if !numeric {
		return respPickNumber
	}
	if n < 1 || n > len(sess.PendingNotes) {
		return respInvalidNoteNumber
	}

	target := sess.PendingNotes[n-1]
	deleted, err := e.actions.DeleteNote(ctx, teacherId, target.Id)
	if err != nil {
		return e.actionFailed(sess, "delete note", err)
	}

	// A zero-row delete means the record is gone or not ours; either
	// way the snapshot entry is stale and comes out of the list.
	sess.PendingNotes = append(sess.PendingNotes[:n-1], sess.PendingNotes[n:]...)

	lead := "Deleted."
	if !deleted {
		lead = respNotFoundOrNotPermitted
	}

	if len(sess.PendingNotes) == 0 {
		sess.ResetDialogue()
		return lead + " That was the last note on the list."
	}
	sess.Mode = store.ModeConfirmDeleteAnotherNote
	return lead + " Want to delete another note? (yes/no)"
}

func (e *Engine) confirmAnotherNote(sess *store.Session, raw string) string {
	switch intent.Normalize(raw) {
	case "yes", "y":
		sess.Mode = store.ModeDeleteNoteBySelection
		return "Which note should I delete?\n" + renderNotes(sess.PendingNotes) + "\n" + respPickNumber
	case "no", "n", "cancel":
		sess.ResetDialogue()
		return respDeletionDone
	default:
		return respYesOrNo
	}
}

// selectCalendarForDeletion mirrors the note flow over the calendar
// snapshot.
func (e *Engine) selectCalendarForDeletion(ctx context.Context, teacherId uuid.UUID, sess *store.Session, raw string) string {
	lower := intent.Normalize(raw)
	if lower == "cancel" || lower == "no" {
		sess.ResetDialogue()
		return respDeletionAborted
	}

	n, numeric := parseSelection(raw)
	if !numeric {
		return respPickNumber
	}
	if n < 1 || n > len(sess.PendingCalendarNotes) {
		return respInvalidCalendarNumber
	}

	target := sess.PendingCalendarNotes[n-1]
	deleted, err := e.actions.DeleteCalendarNote(ctx, teacherId, target.Id)
	if err != nil {
		return e.actionFailed(sess, "delete calendar note", err)
	}

	sess.PendingCalendarNotes = append(sess.PendingCalendarNotes[:n-1], sess.PendingCalendarNotes[n:]...)

	lead := "Deleted."
	if !deleted {
		lead = respNotFoundOrNotPermitted
	}

	if len(sess.PendingCalendarNotes) == 0 {
		sess.ResetDialogue()
		return lead + " That was the last calendar note on the list."
	}
	sess.Mode = store.ModeConfirmDeleteAnotherCalendar
	return lead + " Want to delete another calendar note? (yes/no)"
}

func (e *Engine) confirmAnotherCalendar(sess *store.Session, raw string) string {
	switch intent.Normalize(raw) {
	case "yes", "y":
		sess.Mode = store.ModeDeleteCalendarBySelection
		return "Which calendar note should I delete?\n" + renderCalendar(sess.PendingCalendarNotes) + "\n" + respPickNumber
	case "no", "n", "cancel":
		sess.ResetDialogue()
		return respDeletionDone
	default:
		return respYesOrNo
	}
}

// confirmDeleteAll is the single irreversible bulk action; only the
// literal "yes" executes it, anything else backs out.
func (e *Engine) confirmDeleteAll(ctx context.Context, teacherId uuid.UUID, sess *store.Session, raw string) string {
	sess.Mode = store.ModeIdle
	if intent.Normalize(raw) != "yes" {
		return respDeleteAllAborted
	}

	count, err := e.actions.DeleteAllNotes(ctx, teacherId)
	if err != nil {
		return e.actionFailed(sess, "delete all notes", err)
	}
	return respAllNotesDeleted(count)
}
