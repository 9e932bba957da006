package contract

import (
	"context"

	"classrecord-be/internal/entity"
	"classrecord-be/internal/repository/specification"

	"github.com/google/uuid"
)

type StudentRepository interface {
	Create(ctx context.Context, student *entity.Student) error
	Update(ctx context.Context, student *entity.Student) error
	DeleteOwned(ctx context.Context, id, userId uuid.UUID) (int64, error)
	// DeleteByClass removes every student of a class, used when the
	// class itself goes away.
	DeleteByClass(ctx context.Context, classId, userId uuid.UUID) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Student, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Student, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
