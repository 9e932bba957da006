package entity

import (
	"time"

	"github.com/google/uuid"
)

type CalendarNoteType string

const (
	CalendarNoteTypeGeneral  CalendarNoteType = "general"
	CalendarNoteTypeExam     CalendarNoteType = "exam"
	CalendarNoteTypeMeeting  CalendarNoteType = "meeting"
	CalendarNoteTypeDeadline CalendarNoteType = "deadline"
)

type CalendarNote struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	ClassId     *uuid.UUID // optional link to a class
	Date        time.Time
	Title       string
	Description string
	Type        CalendarNoteType
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
