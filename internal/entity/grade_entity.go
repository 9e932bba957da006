package entity

import (
	"time"

	"github.com/google/uuid"
)

type Grade struct {
	Id        uuid.UUID
	StudentId uuid.UUID
	UserId    uuid.UUID
	Title     string
	Score     float64
	MaxScore  float64
	GradedAt  time.Time
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

// Percent is the grade normalized to 0-100; zero when MaxScore is zero.
func (g Grade) Percent() float64 {
	if g.MaxScore == 0 {
		return 0
	}
	return g.Score / g.MaxScore * 100
}
