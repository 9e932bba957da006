package contract

import (
	"context"

	"classrecord-be/internal/entity"
	"classrecord-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	// DeleteOwned removes the note only when it belongs to userId and
	// reports the number of rows hit. Zero means absent or not owned,
	// the two cases are indistinguishable on purpose.
	DeleteOwned(ctx context.Context, id, userId uuid.UUID) (int64, error)
	DeleteAllOwned(ctx context.Context, userId uuid.UUID) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
