package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCalendarNoteRequest struct {
	ClassId     *uuid.UUID `json:"class_id"`
	Date        time.Time  `json:"date" validate:"required"`
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	Description string     `json:"description"`
	Type        string     `json:"type" validate:"omitempty,oneof=general exam meeting deadline"`
}

type CreateCalendarNoteResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowCalendarNoteResponse struct {
	Id          uuid.UUID  `json:"id"`
	ClassId     *uuid.UUID `json:"class_id,omitempty"`
	ClassName   string     `json:"class_name,omitempty"`
	Date        time.Time  `json:"date"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Type        string     `json:"type"`
	CreatedAt   time.Time  `json:"created_at"`
}
