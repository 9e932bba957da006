package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type ByClassID struct {
	ClassID uuid.UUID
}

func (s ByClassID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("class_id = ?", s.ClassID)
}

type ByClassIDs struct {
	ClassIDs []uuid.UUID
}

func (s ByClassIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("class_id IN ?", s.ClassIDs)
}

type ByStudentID struct {
	StudentID uuid.UUID
}

func (s ByStudentID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("student_id = ?", s.StudentID)
}

type ByStudentIDs struct {
	StudentIDs []uuid.UUID
}

func (s ByStudentIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("student_id IN ?", s.StudentIDs)
}

// ByDateBetween keeps calendar rows inside [From, To).
type ByDateBetween struct {
	From time.Time
	To   time.Time
}

func (s ByDateBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("date >= ? AND date < ?", s.From, s.To)
}
