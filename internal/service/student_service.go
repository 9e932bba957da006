package service

import (
	"context"
	"errors"
	"time"

	"classrecord-be/internal/dto"
	"classrecord-be/internal/entity"
	"classrecord-be/internal/repository/specification"
	"classrecord-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrClassNotFound = errors.New("class not found")

type IStudentService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateStudentRequest) (*dto.CreateStudentResponse, error)
	ListByClass(ctx context.Context, userId uuid.UUID, classId uuid.UUID) ([]*dto.ShowStudentResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateStudentRequest) (*dto.UpdateStudentResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) (bool, error)
}

type studentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewStudentService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IStudentService {
	return &studentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *studentService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateStudentRequest) (*dto.CreateStudentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// The target class must exist and belong to the caller.
	class, err := uow.ClassRepository().FindOne(ctx,
		specification.ByID{ID: req.ClassId},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, ErrClassNotFound
	}

	student := entity.Student{
		Id:        uuid.New(),
		ClassId:   req.ClassId,
		UserId:    userId,
		FullName:  req.FullName,
		CreatedAt: time.Now(),
	}

	if err := uow.StudentRepository().Create(ctx, &student); err != nil {
		return nil, err
	}

	s.publisherService.PublishDataChanged(ctx, userId, "student", "create")
	return &dto.CreateStudentResponse{Id: student.Id}, nil
}

func (s *studentService) ListByClass(ctx context.Context, userId uuid.UUID, classId uuid.UUID) ([]*dto.ShowStudentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	students, err := uow.StudentRepository().FindAll(ctx,
		specification.ByClassID{ClassID: classId},
		specification.OwnedByUser{UserID: userId},
		specification.OrderBy{Field: "full_name"},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ShowStudentResponse, 0, len(students))
	for _, student := range students {
		out = append(out, &dto.ShowStudentResponse{
			Id:        student.Id,
			ClassId:   student.ClassId,
			FullName:  student.FullName,
			CreatedAt: student.CreatedAt,
		})
	}
	return out, nil
}

func (s *studentService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateStudentRequest) (*dto.UpdateStudentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	student, err := uow.StudentRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, nil
	}

	student.FullName = req.FullName
	if err := uow.StudentRepository().Update(ctx, student); err != nil {
		return nil, err
	}

	s.publisherService.PublishDataChanged(ctx, userId, "student", "update")
	return &dto.UpdateStudentResponse{Id: student.Id}, nil
}

// Delete removes the student and every grade recorded for them.
func (s *studentService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer uow.Rollback()

	if _, err := uow.GradeRepository().DeleteByStudent(ctx, id, userId); err != nil {
		return false, err
	}

	rows, err := uow.StudentRepository().DeleteOwned(ctx, id, userId)
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, nil
	}

	if err := uow.Commit(); err != nil {
		return false, err
	}

	s.publisherService.PublishDataChanged(ctx, userId, "student", "delete")
	return true, nil
}
