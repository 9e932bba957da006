package dialog

import (
	"context"

	"classrecord-be/pkg/store"

	"github.com/google/uuid"
)

// Actions performs the side effects of resolved intents. The engine
// stays pure conversation logic; persistence lives behind this
// interface. Every delete is scoped by record id AND teacher identity:
// a guessed id belonging to someone else must report false, not
// success.
type Actions interface {
	CreateNote(ctx context.Context, teacherId uuid.UUID, content string) error

	// ListNotes returns the teacher's notes newest-first.
	ListNotes(ctx context.Context, teacherId uuid.UUID) ([]store.PendingNote, error)

	// DeleteNote reports false when no row matched (absent or owned by
	// another identity, indistinguishable by design).
	DeleteNote(ctx context.Context, teacherId, noteId uuid.UUID) (bool, error)

	DeleteAllNotes(ctx context.Context, teacherId uuid.UUID) (int64, error)

	// ListCalendarNotes returns calendar entries ordered by date
	// ascending, with class display names resolved best-effort.
	ListCalendarNotes(ctx context.Context, teacherId uuid.UUID) ([]store.PendingCalendarNote, error)

	DeleteCalendarNote(ctx context.Context, teacherId, noteId uuid.UUID) (bool, error)

	ListClasses(ctx context.Context, teacherId uuid.UUID) ([]string, error)

	GradeSummary(ctx context.Context, teacherId uuid.UUID) (string, error)
}
