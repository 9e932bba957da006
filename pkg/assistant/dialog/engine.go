// Package dialog is the assistant's conversation state machine. One
// turn comes in, the current mode decides how it is read, a reply goes
// out. No turn ever returns an error to the caller: failures become
// apologetic text and the state lands somewhere safe.
package dialog

import (
	"context"
	"log"
	"strconv"
	"strings"

	"classrecord-be/pkg/assistant/intent"
	"classrecord-be/pkg/assistant/knowledge"
	"classrecord-be/pkg/assistant/palette"
	"classrecord-be/pkg/store"

	"github.com/google/uuid"
)

// Two threshold regimes: mis-firing a stateful command (entering note
// capture, starting a deletion) costs more than failing to answer a
// question, so command detection demands a closer match.
const (
	KnowledgeThreshold = 60
	CommandThreshold   = 80
)

// minNoteContent is the shortest trailing text saved directly from a
// note trigger; anything shorter opens the capture sub-dialogue.
const minNoteContent = 3

// noteTriggers are matched against a prefix of the utterance so that
// trailing note content does not dilute the score. Longer phrases come
// first: on a tie the most specific trigger wins, which keeps filler
// words like "that" out of the saved content.
var noteTriggers = []string{
	"isla, note that",
	"isla note that",
	"note that",
	"isla, note",
	"isla note",
	"take a note",
	"make a note",
}

var commandListTriggers = []string{
	"show commands",
	"list commands",
	"show the command list",
	"command list",
	"what can you do",
	"help",
	"help me",
}

// captureControls end the note-capture sub-dialogue; matched fuzzily so
// "done!" or "cancel that" still land.
var captureControls = []string{"done", "cancel"}

// Engine drives one conversation turn at a time. Safe for concurrent
// use across sessions; callers serialize turns within a session by
// locking the session itself.
type Engine struct {
	kb      []knowledge.Entry
	phrases []string // kb trigger phrases, same order as kb
	actions Actions
	logger  *log.Logger
}

// NewEngine wires the state machine to its side-effect handlers.
func NewEngine(actions Actions, logger *log.Logger) *Engine {
	kb := knowledge.Entries()
	phrases := make([]string, len(kb))
	for i, e := range kb {
		phrases[i] = e.Phrase
	}
	return &Engine{kb: kb, phrases: phrases, actions: actions, logger: logger}
}

// Turn processes one utterance for the given teacher and mutates the
// session in place. It always returns response text.
func (e *Engine) Turn(ctx context.Context, teacherId uuid.UUID, sess *store.Session, utterance string) string {
	raw := strings.TrimSpace(utterance)
	reply, footer := e.process(ctx, teacherId, sess, raw)
	if footer && sess.PaletteActive {
		reply += "\n\n" + palette.Footer()
	}
	return reply
}

// process returns the reply and whether the palette reminder footer may
// be appended. Menu output and the palette exit line never carry it.
func (e *Engine) process(ctx context.Context, teacherId uuid.UUID, sess *store.Session, raw string) (string, bool) {
	switch sess.Mode {
	case store.ModeExpectingNoteText:
		return e.captureNote(ctx, teacherId, sess, raw), true
	case store.ModeDeleteNoteBySelection:
		return e.selectNoteForDeletion(ctx, teacherId, sess, raw), true
	case store.ModeConfirmDeleteAnotherNote:
		return e.confirmAnotherNote(sess, raw), true
	case store.ModeDeleteCalendarBySelection:
		return e.selectCalendarForDeletion(ctx, teacherId, sess, raw), true
	case store.ModeConfirmDeleteAnotherCalendar:
		return e.confirmAnotherCalendar(sess, raw), true
	case store.ModeConfirmDeleteAllNotes:
		return e.confirmDeleteAll(ctx, teacherId, sess, raw), true
	}

	if sess.PaletteActive {
		return e.paletteTurn(ctx, teacherId, sess, raw)
	}
	return e.idleTurn(ctx, teacherId, sess, raw)
}

func (e *Engine) idleTurn(ctx context.Context, teacherId uuid.UUID, sess *store.Session, raw string) (string, bool) {
	if _, ok := intent.Match(raw, commandListTriggers, CommandThreshold); ok {
		sess.PaletteActive = true
		return palette.Render(), false
	}
	return e.resolveIntent(ctx, teacherId, sess, raw), true
}

// paletteTurn reads input under the palette grammar: a selection, the
// exit token, or a reprompt. Selections resolve exactly one pass of
// intent matching against the canonical phrase and may themselves move
// the session into a sub-dialogue.
func (e *Engine) paletteTurn(ctx context.Context, teacherId uuid.UUID, sess *store.Session, raw string) (string, bool) {
	if intent.Normalize(raw) == palette.ExitToken {
		sess.PaletteActive = false
		return respPaletteClosed, false
	}

	n, numeric := parseSelection(raw)
	if !numeric {
		return respPaletteReprompt, true
	}
	phrase, ok := palette.Phrase(n)
	if !ok {
		return respPaletteReprompt, true
	}

	e.logger.Printf("[DIALOG] palette selection %d -> %q", n, phrase)
	return e.resolveIntent(ctx, teacherId, sess, phrase), true
}

// resolveIntent is the single top-level resolution pass: note trigger
// first (prefix match, strict threshold), then the knowledge base, then
// the fixed fallback.
func (e *Engine) resolveIntent(ctx context.Context, teacherId uuid.UUID, sess *store.Session, raw string) string {
	if res, ok := intent.MatchPrefix(raw, noteTriggers, CommandThreshold); ok {
		return e.noteTrigger(ctx, teacherId, sess, raw, res.Phrase)
	}

	res, ok := intent.Match(raw, e.phrases, KnowledgeThreshold)
	if !ok {
		return respFallback
	}

	entry := e.kb[res.Index]
	e.logger.Printf("[DIALOG] matched %q (%.1f) for teacher %s", entry.Phrase, res.Score, teacherId)
	if entry.Dynamic == knowledge.DynamicNone {
		return entry.Response
	}
	return e.resolveDynamic(ctx, teacherId, sess, entry.Dynamic)
}

func (e *Engine) resolveDynamic(ctx context.Context, teacherId uuid.UUID, sess *store.Session, d knowledge.Dynamic) string {
	switch d {
	case knowledge.DynamicNotesList:
		notes, err := e.actions.ListNotes(ctx, teacherId)
		if err != nil {
			return e.actionFailed(sess, "list notes", err)
		}
		if len(notes) == 0 {
			return respNoNotes
		}
		return "Here are your notes, newest first:\n" + renderNotes(notes)

	case knowledge.DynamicDeleteNotesList:
		notes, err := e.actions.ListNotes(ctx, teacherId)
		if err != nil {
			return e.actionFailed(sess, "list notes", err)
		}
		if len(notes) == 0 {
			return respNoNotesToDelete
		}
		sess.PendingNotes = notes
		sess.Mode = store.ModeDeleteNoteBySelection
		return "Which note should I delete?\n" + renderNotes(notes) + "\n" + respPickNumber

	case knowledge.DynamicDeleteAllNotes:
		notes, err := e.actions.ListNotes(ctx, teacherId)
		if err != nil {
			return e.actionFailed(sess, "list notes", err)
		}
		if len(notes) == 0 {
			return respNoNotes
		}
		sess.Mode = store.ModeConfirmDeleteAllNotes
		return respConfirmDeleteAll(len(notes))

	case knowledge.DynamicCalendarList:
		entries, err := e.actions.ListCalendarNotes(ctx, teacherId)
		if err != nil {
			return e.actionFailed(sess, "list calendar notes", err)
		}
		if len(entries) == 0 {
			return respNoCalendarNotes
		}
		return "Here's your calendar:\n" + renderCalendar(entries)

	case knowledge.DynamicDeleteCalendarList:
		entries, err := e.actions.ListCalendarNotes(ctx, teacherId)
		if err != nil {
			return e.actionFailed(sess, "list calendar notes", err)
		}
		if len(entries) == 0 {
			return respNoCalendarToDelete
		}
		sess.PendingCalendarNotes = entries
		sess.Mode = store.ModeDeleteCalendarBySelection
		return "Which calendar note should I delete?\n" + renderCalendar(entries) + "\n" + respPickNumber

	case knowledge.DynamicClassList:
		classes, err := e.actions.ListClasses(ctx, teacherId)
		if err != nil {
			return e.actionFailed(sess, "list classes", err)
		}
		if len(classes) == 0 {
			return respNoClasses
		}
		return "Your classes:\n" + renderNumbered(classes)

	case knowledge.DynamicGradeSummary:
		summary, err := e.actions.GradeSummary(ctx, teacherId)
		if err != nil {
			return e.actionFailed(sess, "grade summary", err)
		}
		return summary
	}

	return respFallback
}

// noteTrigger saves trailing content directly, or opens the capture
// sub-dialogue when there is nothing worth saving yet. The trailing
// text is cut from the raw utterance so the user's casing survives.
func (e *Engine) noteTrigger(ctx context.Context, teacherId uuid.UUID, sess *store.Session, raw, phrase string) string {
	trailing := ""
	if len(raw) > len(phrase) {
		trailing = strings.TrimSpace(raw[len(phrase):])
	}

	if len(trailing) >= minNoteContent {
		if err := e.actions.CreateNote(ctx, teacherId, trailing); err != nil {
			return e.actionFailed(sess, "create note", err)
		}
		return respNoteSaved(trailing)
	}

	sess.Mode = store.ModeExpectingNoteText
	sess.DraftNote = ""
	return respNotePrompt
}

// actionFailed logs the persistence error, resets the dialogue to a
// safe resting point and returns the generic apology. Raw internals
// never reach the user.
func (e *Engine) actionFailed(sess *store.Session, op string, err error) string {
	e.logger.Printf("[DIALOG] %s failed: %v", op, err)
	sess.ResetDialogue()
	return respActionFailed
}

// parseSelection accepts an utterance only if it parses entirely as an
// integer; trailing garbage is rejected.
func parseSelection(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}
