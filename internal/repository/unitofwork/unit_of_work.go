package unitofwork

import (
	"context"

	"classrecord-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ClassRepository() contract.ClassRepository
	StudentRepository() contract.StudentRepository
	GradeRepository() contract.GradeRepository
	NoteRepository() contract.NoteRepository
	CalendarNoteRepository() contract.CalendarNoteRepository
	BackupHistoryRepository() contract.BackupHistoryRepository
}
