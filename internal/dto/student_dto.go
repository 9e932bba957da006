package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateStudentRequest struct {
	ClassId  uuid.UUID `json:"class_id" validate:"required"`
	FullName string    `json:"full_name" validate:"required,min=1,max=255"`
}

type CreateStudentResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateStudentRequest struct {
	Id       uuid.UUID
	FullName string `json:"full_name" validate:"required,min=1,max=255"`
}

type UpdateStudentResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowStudentResponse struct {
	Id        uuid.UUID `json:"id"`
	ClassId   uuid.UUID `json:"class_id"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}
