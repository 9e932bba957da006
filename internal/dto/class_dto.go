package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateClassRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Subject string `json:"subject" validate:"max=255"`
}

type CreateClassResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateClassRequest struct {
	Id      uuid.UUID
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Subject string `json:"subject" validate:"max=255"`
}

type UpdateClassResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowClassResponse struct {
	Id           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Subject      string     `json:"subject"`
	StudentCount int64      `json:"student_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}
