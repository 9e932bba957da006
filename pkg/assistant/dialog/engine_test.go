package dialog

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"classrecord-be/pkg/store"

	"github.com/google/uuid"
)

// fakeActions is an in-memory Actions implementation. Notes are kept
// newest-first, matching the contract.
type fakeActions struct {
	notes    []store.PendingNote
	calendar []store.PendingCalendarNote
	classes  []string
	summary  string

	created    []string
	failCreate bool
	failList   bool
}

var errBoom = errors.New("boom")

func (f *fakeActions) CreateNote(_ context.Context, _ uuid.UUID, content string) error {
	if f.failCreate {
		return errBoom
	}
	f.created = append(f.created, content)
	f.notes = append([]store.PendingNote{{Id: uuid.New(), Content: content}}, f.notes...)
	return nil
}

func (f *fakeActions) ListNotes(_ context.Context, _ uuid.UUID) ([]store.PendingNote, error) {
	if f.failList {
		return nil, errBoom
	}
	out := make([]store.PendingNote, len(f.notes))
	copy(out, f.notes)
	return out, nil
}

func (f *fakeActions) DeleteNote(_ context.Context, _ uuid.UUID, noteId uuid.UUID) (bool, error) {
	for i, n := range f.notes {
		if n.Id == noteId {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeActions) DeleteAllNotes(_ context.Context, _ uuid.UUID) (int64, error) {
	count := int64(len(f.notes))
	f.notes = nil
	return count, nil
}

func (f *fakeActions) ListCalendarNotes(_ context.Context, _ uuid.UUID) ([]store.PendingCalendarNote, error) {
	out := make([]store.PendingCalendarNote, len(f.calendar))
	copy(out, f.calendar)
	return out, nil
}

func (f *fakeActions) DeleteCalendarNote(_ context.Context, _ uuid.UUID, noteId uuid.UUID) (bool, error) {
	for i, n := range f.calendar {
		if n.Id == noteId {
			f.calendar = append(f.calendar[:i], f.calendar[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeActions) ListClasses(_ context.Context, _ uuid.UUID) ([]string, error) {
	return f.classes, nil
}

func (f *fakeActions) GradeSummary(_ context.Context, _ uuid.UUID) (string, error) {
	return f.summary, nil
}

func newTestEngine(f *fakeActions) *Engine {
	return NewEngine(f, log.New(io.Discard, "", 0))
}

func seedNotes(contents ...string) *fakeActions {
	f := &fakeActions{}
	for _, c := range contents {
		f.notes = append(f.notes, store.PendingNote{Id: uuid.New(), Content: c})
	}
	return f
}

func TestNoteTriggerWithTrailingContent(t *testing.T) {
	f := &fakeActions{}
	e := newTestEngine(f)
	sess := store.NewSession("t")

	reply := e.Turn(context.Background(), uuid.New(), sess, "Isla, note that meeting is Friday")

	if len(f.created) != 1 || f.created[0] != "meeting is Friday" {
		t.Fatalf("created = %v, want [meeting is Friday]", f.created)
	}
	if !strings.Contains(reply, "meeting is Friday") {
		t.Errorf("confirmation does not echo the content: %q", reply)
	}
	if sess.Mode != store.ModeIdle {
		t.Errorf("mode = %s, want idle", sess.Mode)
	}
}

func TestNoteCaptureDialogue(t *testing.T) {
	f := &fakeActions{}
	e := newTestEngine(f)
	sess := store.NewSession("t")
	ctx := context.Background()
	id := uuid.New()

	e.Turn(ctx, id, sess, "isla, note")
	if sess.Mode != store.ModeExpectingNoteText {
		t.Fatalf("mode = %s, want expecting note text", sess.Mode)
	}

	e.Turn(ctx, id, sess, "buy milk")
	if sess.DraftNote != "buy milk " {
		t.Fatalf("draft = %q, want %q", sess.DraftNote, "buy milk ")
	}

	reply := e.Turn(ctx, id, sess, "done")
	if len(f.created) != 1 || f.created[0] != "buy milk" {
		t.Fatalf("created = %v, want trimmed [buy milk]", f.created)
	}
	if sess.Mode != store.ModeIdle || sess.DraftNote != "" {
		t.Errorf("capture did not reset: mode=%s draft=%q", sess.Mode, sess.DraftNote)
	}
	if !strings.Contains(reply, "buy milk") {
		t.Errorf("confirmation does not echo the content: %q", reply)
	}
}

func TestNoteCaptureCancel(t *testing.T) {
	f := &fakeActions{}
	e := newTestEngine(f)
	sess := store.NewSession("t")
	ctx := context.Background()
	id := uuid.New()

	e.Turn(ctx, id, sess, "take a note")
	e.Turn(ctx, id, sess, "something private")
	e.Turn(ctx, id, sess, "cancel")

	if len(f.created) != 0 {
		t.Errorf("cancelled draft was saved: %v", f.created)
	}
	if sess.Mode != store.ModeIdle || sess.DraftNote != "" {
		t.Errorf("cancel did not reset: mode=%s draft=%q", sess.Mode, sess.DraftNote)
	}
}

func TestNoteCaptureDoneWithEmptyDraft(t *testing.T) {
	f := &fakeActions{}
	e := newTestEngine(f)
	sess := store.NewSession("t")
	ctx := context.Background()
	id := uuid.New()

	e.Turn(ctx, id, sess, "isla, note")
	reply := e.Turn(ctx, id, sess, "done")

	if len(f.created) != 0 {
		t.Errorf("empty draft was saved: %v", f.created)
	}
	if reply != respNothingNoted {
		t.Errorf("reply = %q, want %q", reply, respNothingNoted)
	}
	if sess.Mode != store.ModeIdle {
		t.Errorf("mode = %s, want idle", sess.Mode)
	}
}

func TestDeleteNoteFlow(t *testing.T) {
	f := seedNotes("first", "second", "third")
	e := newTestEngine(f)
	sess := store.NewSession("t")
	ctx := context.Background()
	id := uuid.New()

	reply := e.Turn(ctx, id, sess, "delete note")
	if sess.Mode != store.ModeDeleteNoteBySelection {
		t.Fatalf("mode = %s, want delete-note selection", sess.Mode)
	}
	for _, want := range []string{"1. first", "2. second", "3. third"} {
		if !strings.Contains(reply, want) {
			t.Errorf("list is missing %q:\n%s", want, reply)
		}
	}

	e.Turn(ctx, id, sess, "2")
	if len(f.notes) != 2 {
		t.Fatalf("store has %d notes, want 2", len(f.notes))
	}
	for _, n := range f.notes {
		if n.Content == "second" {
			t.Error("note at position 2 survived the deletion")
		}
	}
	if sess.Mode != store.ModeConfirmDeleteAnotherNote {
		t.Fatalf("mode = %s, want confirm-delete-another", sess.Mode)
	}
	if got := len(sess.PendingNotes); got != 2 {
		t.Fatalf("pending list has %d entries, want 2", got)
	}

	// Re-rendered positions must be contiguous from 1.
	again := e.Turn(ctx, id, sess, "yes")
	if !strings.Contains(again, "1. first") || !strings.Contains(again, "2. third") {
		t.Errorf("re-indexed list wrong:\n%s", again)
	}

	e.Turn(ctx, id, sess, "cancel")
	if sess.Mode != store.ModeIdle || sess.PendingNotes != nil {
		t.Errorf("cancel did not clear the sub-dialogue: mode=%s pending=%v", sess.Mode, sess.PendingNotes)
	}
}

func TestDeleteNoteConfirmNo(t *testing.T) {
	f := seedNotes("a", "b")
	e := newTestEngine(f)
	sess := store.NewSession("t")
	ctx := context.Background()
	id := uuid.New()

	e.Turn(ctx, id, sess, "delete a note")
	e.Turn(ctx, id, sess, "1")
	e.Turn(ctx, id, sess, "no")

	if sess.Mode != store.ModeIdle {
		t.Errorf("mode = %s, want idle", sess.Mode)
	}
	if sess.PendingNotes != nil {
		t.Errorf("pending list not cleared: %v", sess.PendingNotes)
	}
}

func TestDeleteNoteConfirmCancelEscapes(t *testing.T) {
	f := seedNotes("a", "b")
	e := newTestEngine(f)
	sess := store.NewSession("t")
	ctx := context.Background()
	id := uuid.New()

	e.Turn(ctx, id, sess, "delete a note")
	e.Turn(ctx, id, sess, "1")
	if sess.Mode != store.ModeConfirmDeleteAnotherNote {
		t.Fatalf("mode = %s, want confirm-delete-another", sess.Mode)
	}

	// "cancel" leaves every sub-dialogue, the confirm step included.
	e.Turn(ctx, id, sess, "cancel")
	if sess.Mode != store.ModeIdle {
		t.Errorf("mode = %s, want idle", sess.Mode)
	}
	if sess.PendingNotes != nil {
		t.Errorf("pending list not cleared: %v", sess.PendingNotes)
	}
	if len(f.notes) != 1 {
		t.Errorf("store has %d notes, want 1", len(f.notes))
	}
}

func TestDeleteNoteOutOfRange(t *testing.T) {
	f := seedNotes("a", "b")
	e := newTestEngine(f)
	sess := store.NewSession("t")
	ctx := context.Background()
	id := uuid.New()

	e.Turn(ctx, id, sess, "delete note")
	reply := e.Turn(ctx, id, sess, "5")

	if reply != respInvalidNoteNumber {
		t.Errorf("reply = %q, want invalid-number reprompt", reply)
	}
	if sess.Mode != store.ModeDeleteNoteBySelection || len(sess.PendingNotes) != 2 {
		t.Errorf("state changed on invalid input: mode=%s pending=%d", sess.Mode, len(sess.PendingNotes))
	}
	if len(f.notes) != 2 {
		t.Errorf("a note was deleted on invalid input")
	}
}

func TestDeleteNoteRejectsPartialNumbers(t *testing.T) {
	f := seedNotes("a", "b")
	e := newTestEngine(f)
	sess := store.NewSession("t")
	ctx := context.Background()
	id := uuid.New()

	e.Turn(ctx, id, sess, "delete note")
	reply := e.Turn(ctx, id, sess, "2 please")

	if reply != respPickNumber {
		t.Errorf("reply = %q, want number reprompt", reply)
	}
	if len(f.notes) != 2 {
		t.Error("partial numeric input deleted a note")
	}
}

func TestDeleteNoteWhenEmpty(t *testing.T) {
	f := &fakeActions{}
	e := newTestEngine(f)
	sess := store.NewSession("t")

	reply := e.Turn(context.Background(), uuid.New(), sess, "delete note")

	if reply != respNoNotesToDelete {
		t.Errorf("reply = %q, want %q", reply, respNoNotesToDelete)
	}
	if sess.Mode != store.ModeIdle {
		t.Errorf("mode = %s, want idle when nothing to delete", sess.Mode)
	}
}

func TestDeleteCalendarNoteFlow(t *testing.T) {
	f := &fakeActions{
		calendar: []store.PendingCalendarNote{
			{Id: uuid.New(), Date: time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), Title: "Parent meeting", ClassName: "9B"},
			{Id: uuid.New(), Date: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), Title: "Field trip"},
		},
	}
	e := newTestEngine(f)
	sess := store.NewSession("t")
	ctx := context.Background()
	id := uuid.New()

	reply := e.Turn(ctx, id, sess, "delete calendar note")
	if sess.Mode != store.ModeDeleteCalendarBySelection {
		t.Fatalf("mode = %s, want calendar selection", sess.Mode)
	}
	if !strings.Contains(reply, "Parent meeting") || !strings.Contains(reply, "9B") {
		t.Errorf("calendar list missing entry or class name:\n%s", reply)
	}

	e.Turn(ctx, id, sess, "1")
	if len(f.calendar) != 1 || f.calendar[0].Title != "Field trip" {
		t.Fatalf("wrong calendar note deleted: %v", f.calendar)
	}
	if sess.Mode != store.ModeConfirmDeleteAnotherCalendar {
		t.Fatalf("mode = %s, want confirm-another-calendar", sess.Mode)
	}

	e.Turn(ctx, id, sess, "no")
	if sess.Mode != store.ModeIdle || sess.PendingCalendarNotes != nil {
		t.Errorf("sub-dialogue not cleared: mode=%s", sess.Mode)
	}
}

func TestDeleteAllNotesConfirmGate(t *testing.T) {
	f := seedNotes("a", "b")
	e := newTestEngine(f)
	sess := store.NewSession("t")
	ctx := context.Background()
	id := uuid.New()

	e.Turn(ctx, id, sess, "delete all notes")
	if sess.Mode != store.ModeConfirmDeleteAllNotes {
		t.Fatalf("mode = %s, want confirm-delete-all", sess.Mode)
	}

	// Anything but the literal yes cancels.
	reply := e.Turn(ctx, id, sess, "yeah sure")
	if reply != respDeleteAllAborted {
		t.Errorf("reply = %q, want abort", reply)
	}
	if len(f.notes) != 2 {
		t.Fatal("notes deleted without a literal yes")
	}

	e.Turn(ctx, id, sess, "delete all notes")
	reply = e.Turn(ctx, id, sess, "yes")
	if len(f.notes) != 0 {
		t.Error("notes survived a confirmed delete-all")
	}
	if !strings.Contains(reply, "2") {
		t.Errorf("confirmation does not mention the count: %q", reply)
	}
}

func TestCommandPalette(t *testing.T) {
	f := &fakeActions{}
	e := newTestEngine(f)
	sess := store.NewSession("t")
	ctx := context.Background()
	id := uuid.New()

	menu := e.Turn(ctx, id, sess, "show commands")
	if !sess.PaletteActive {
		t.Fatal("palette not active after the command-list trigger")
	}
	if !strings.Contains(menu, "15.") {
		t.Errorf("menu is missing entries:\n%s", menu)
	}

	// 7 maps to delete-a-class guidance; the reply carries the footer.
	reply := e.Turn(ctx, id, sess, "7")
	if !strings.Contains(reply, "Classes page") {
		t.Errorf("selection 7 did not resolve the delete-class phrase:\n%s", reply)
	}
	if !strings.Contains(reply, "Command menu is still open") {
		t.Errorf("palette footer missing:\n%s", reply)
	}

	reply = e.Turn(ctx, id, sess, "42")
	if reply != respPaletteReprompt+"\n\n"+footerLine() {
		t.Errorf("out-of-range selection reply = %q", reply)
	}

	reply = e.Turn(ctx, id, sess, "done")
	if sess.PaletteActive {
		t.Fatal("palette still active after done")
	}
	if strings.Contains(reply, "Command menu is still open") {
		t.Errorf("exit reply carries the footer: %q", reply)
	}
}

func TestPaletteSelectionCanEnterSubDialogue(t *testing.T) {
	f := &fakeActions{}
	e := newTestEngine(f)
	sess := store.NewSession("t")
	ctx := context.Background()
	id := uuid.New()

	e.Turn(ctx, id, sess, "show commands")
	reply := e.Turn(ctx, id, sess, "2") // take a note

	if sess.Mode != store.ModeExpectingNoteText {
		t.Fatalf("mode = %s, want expecting note text", sess.Mode)
	}
	if !sess.PaletteActive {
		t.Error("palette flag dropped by a sub-dialogue selection")
	}
	if !strings.Contains(reply, "Command menu is still open") {
		t.Errorf("footer missing on nested sub-dialogue reply:\n%s", reply)
	}

	// The sub-dialogue grammar still wins while nested.
	e.Turn(ctx, id, sess, "water the plants")
	e.Turn(ctx, id, sess, "done")
	if len(f.created) != 1 || f.created[0] != "water the plants" {
		t.Fatalf("nested capture failed: %v", f.created)
	}
	if !sess.PaletteActive {
		t.Error("palette flag lost across the nested capture")
	}

	// Back at palette-active idle, done leaves the menu.
	e.Turn(ctx, id, sess, "done")
	if sess.PaletteActive {
		t.Error("done at palette-active idle did not exit")
	}
}

func TestFallbackLeavesStateAlone(t *testing.T) {
	f := seedNotes("a")
	e := newTestEngine(f)
	sess := store.NewSession("t")

	reply := e.Turn(context.Background(), uuid.New(), sess, "qwertyuiop zzz")

	if reply != respFallback {
		t.Errorf("reply = %q, want fallback", reply)
	}
	if sess.Mode != store.ModeIdle || sess.PaletteActive {
		t.Errorf("fallback mutated state: mode=%s palette=%v", sess.Mode, sess.PaletteActive)
	}
}

func TestHandlerFailureResetsSafely(t *testing.T) {
	f := &fakeActions{failCreate: true}
	e := newTestEngine(f)
	sess := store.NewSession("t")

	reply := e.Turn(context.Background(), uuid.New(), sess, "isla, note that the boiler is broken")

	if reply != respActionFailed {
		t.Errorf("reply = %q, want generic apology", reply)
	}
	if strings.Contains(reply, "boom") {
		t.Error("raw error leaked to the user")
	}
	if sess.Mode != store.ModeIdle {
		t.Errorf("mode = %s, want idle after failure", sess.Mode)
	}
}

func TestListFailureDoesNotStrandSubDialogue(t *testing.T) {
	f := &fakeActions{failList: true}
	e := newTestEngine(f)
	sess := store.NewSession("t")

	reply := e.Turn(context.Background(), uuid.New(), sess, "delete note")

	if reply != respActionFailed {
		t.Errorf("reply = %q, want generic apology", reply)
	}
	if sess.Mode != store.ModeIdle || sess.PendingNotes != nil {
		t.Errorf("failure left a dangling sub-dialogue: mode=%s", sess.Mode)
	}
}

func TestShowNotesIsReadOnly(t *testing.T) {
	f := seedNotes("newest", "older")
	e := newTestEngine(f)
	sess := store.NewSession("t")
	ctx := context.Background()
	id := uuid.New()

	first := e.Turn(ctx, id, sess, "show my notes")
	second := e.Turn(ctx, id, sess, "show my notes")

	if first != second {
		t.Error("listing twice with no writes produced different output")
	}
	if !strings.Contains(first, "1. newest") || !strings.Contains(first, "2. older") {
		t.Errorf("list order wrong:\n%s", first)
	}
	if sess.Mode != store.ModeIdle {
		t.Errorf("listing changed mode to %s", sess.Mode)
	}
}

func footerLine() string {
	return "(Command menu is still open, enter 1-15 for another command, or 'done' to leave.)"
}
