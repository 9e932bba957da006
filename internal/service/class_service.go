package service

import (
	"context"
	"time"

	"classrecord-be/internal/dto"
	"classrecord-be/internal/entity"
	"classrecord-be/internal/repository/specification"
	"classrecord-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IClassService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateClassRequest) (*dto.CreateClassResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowClassResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowClassResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateClassRequest) (*dto.UpdateClassResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) (bool, error)
}

type classService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewClassService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IClassService {
	return &classService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *classService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateClassRequest) (*dto.CreateClassResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	class := entity.Class{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      req.Name,
		Subject:   req.Subject,
		CreatedAt: time.Now(),
	}

	if err := uow.ClassRepository().Create(ctx, &class); err != nil {
		return nil, err
	}

	s.publisherService.PublishDataChanged(ctx, userId, "class", "create")
	return &dto.CreateClassResponse{Id: class.Id}, nil
}

func (s *classService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowClassResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	class, err := uow.ClassRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, nil
	}

	count, err := uow.StudentRepository().Count(ctx,
		specification.ByClassID{ClassID: class.Id},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	return toShowClassResponse(class, count), nil
}

func (s *classService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowClassResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	classes, err := uow.ClassRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ShowClassResponse, 0, len(classes))
	for _, class := range classes {
		count, err := uow.StudentRepository().Count(ctx,
			specification.ByClassID{ClassID: class.Id},
			specification.OwnedByUser{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		out = append(out, toShowClassResponse(class, count))
	}
	return out, nil
}

func (s *classService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateClassRequest) (*dto.UpdateClassResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	class, err := uow.ClassRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, nil
	}

	class.Name = req.Name
	class.Subject = req.Subject
	if err := uow.ClassRepository().Update(ctx, class); err != nil {
		return nil, err
	}

	s.publisherService.PublishDataChanged(ctx, userId, "class", "update")
	return &dto.UpdateClassResponse{Id: class.Id}, nil
}

// Delete removes the class together with its students and their grades.
// The cascade runs in one transaction: either the whole subtree goes or
// nothing does.
func (s *classService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer uow.Rollback()

	students, err := uow.StudentRepository().FindAll(ctx,
		specification.ByClassID{ClassID: id},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return false, err
	}

	for _, student := range students {
		if _, err := uow.GradeRepository().DeleteByStudent(ctx, student.Id, userId); err != nil {
			return false, err
		}
	}

	if _, err := uow.StudentRepository().DeleteByClass(ctx, id, userId); err != nil {
		return false, err
	}

	rows, err := uow.ClassRepository().DeleteOwned(ctx, id, userId)
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, nil
	}

	if err := uow.Commit(); err != nil {
		return false, err
	}

	s.publisherService.PublishDataChanged(ctx, userId, "class", "delete")
	return true, nil
}

func toShowClassResponse(class *entity.Class, studentCount int64) *dto.ShowClassResponse {
	return &dto.ShowClassResponse{
		Id:           class.Id,
		Name:         class.Name,
		Subject:      class.Subject,
		StudentCount: studentCount,
		CreatedAt:    class.CreatedAt,
		UpdatedAt:    class.UpdatedAt,
	}
}
