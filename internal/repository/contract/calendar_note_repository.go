package contract

import (
	"context"

	"classrecord-be/internal/entity"
	"classrecord-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CalendarNoteRepository interface {
	Create(ctx context.Context, note *entity.CalendarNote) error
	Update(ctx context.Context, note *entity.CalendarNote) error
	DeleteOwned(ctx context.Context, id, userId uuid.UUID) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CalendarNote, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CalendarNote, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
