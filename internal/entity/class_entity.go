package entity

import (
	"time"

	"github.com/google/uuid"
)

type Class struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	Subject   string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
