package entity

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	Id        uuid.UUID
	ClassId   uuid.UUID
	UserId    uuid.UUID
	FullName  string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
