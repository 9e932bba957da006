package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecordGradeRequest struct {
	StudentId uuid.UUID `json:"student_id" validate:"required"`
	Title     string    `json:"title" validate:"required,min=1,max=255"`
	Score     float64   `json:"score" validate:"min=0"`
	MaxScore  float64   `json:"max_score" validate:"required,gt=0"`
	GradedAt  time.Time `json:"graded_at"`
}

type RecordGradeResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateGradeRequest struct {
	Id       uuid.UUID
	Title    string    `json:"title" validate:"required,min=1,max=255"`
	Score    float64   `json:"score" validate:"min=0"`
	MaxScore float64   `json:"max_score" validate:"required,gt=0"`
	GradedAt time.Time `json:"graded_at"`
}

type UpdateGradeResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowGradeResponse struct {
	Id        uuid.UUID `json:"id"`
	StudentId uuid.UUID `json:"student_id"`
	Title     string    `json:"title"`
	Score     float64   `json:"score"`
	MaxScore  float64   `json:"max_score"`
	Percent   float64   `json:"percent"`
	GradedAt  time.Time `json:"graded_at"`
}

type ClassGradeSummaryResponse struct {
	ClassId      uuid.UUID `json:"class_id"`
	ClassName    string    `json:"class_name"`
	GradeCount   int64     `json:"grade_count"`
	AveragePct   float64   `json:"average_pct"`
	StudentCount int64     `json:"student_count"`
}
