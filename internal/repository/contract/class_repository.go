package contract

import (
	"context"

	"classrecord-be/internal/entity"
	"classrecord-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ClassRepository interface {
	Create(ctx context.Context, class *entity.Class) error
	Update(ctx context.Context, class *entity.Class) error
	// DeleteOwned removes the class only when it belongs to userId and
	// reports the number of rows hit. Zero means absent or not owned.
	DeleteOwned(ctx context.Context, id, userId uuid.UUID) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Class, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Class, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
