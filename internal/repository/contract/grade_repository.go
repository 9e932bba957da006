package contract

import (
	"context"

	"classrecord-be/internal/entity"
	"classrecord-be/internal/repository/specification"

	"github.com/google/uuid"
)

type GradeRepository interface {
	Create(ctx context.Context, grade *entity.Grade) error
	Update(ctx context.Context, grade *entity.Grade) error
	DeleteOwned(ctx context.Context, id, userId uuid.UUID) (int64, error)
	DeleteByStudent(ctx context.Context, studentId, userId uuid.UUID) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Grade, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Grade, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
