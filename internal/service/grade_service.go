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

var ErrStudentNotFound = errors.New("student not found")

type IGradeService interface {
	Record(ctx context.Context, userId uuid.UUID, req *dto.RecordGradeRequest) (*dto.RecordGradeResponse, error)
	ListByStudent(ctx context.Context, userId uuid.UUID, studentId uuid.UUID) ([]*dto.ShowGradeResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateGradeRequest) (*dto.UpdateGradeResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) (bool, error)
	ClassSummaries(ctx context.Context, userId uuid.UUID) ([]*dto.ClassGradeSummaryResponse, error)
}

type gradeService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewGradeService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IGradeService {
	return &gradeService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *gradeService) Record(ctx context.Context, userId uuid.UUID, req *dto.RecordGradeRequest) (*dto.RecordGradeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	student, err := uow.StudentRepository().FindOne(ctx,
		specification.ByID{ID: req.StudentId},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	gradedAt := req.GradedAt
	if gradedAt.IsZero() {
		gradedAt = time.Now()
	}

	grade := entity.Grade{
		Id:        uuid.New(),
		StudentId: req.StudentId,
		UserId:    userId,
		Title:     req.Title,
		Score:     req.Score,
		MaxScore:  req.MaxScore,
		GradedAt:  gradedAt,
		CreatedAt: time.Now(),
	}

	if err := uow.GradeRepository().Create(ctx, &grade); err != nil {
		return nil, err
	}

	s.publisherService.PublishDataChanged(ctx, userId, "grade", "create")
	return &dto.RecordGradeResponse{Id: grade.Id}, nil
}

func (s *gradeService) ListByStudent(ctx context.Context, userId uuid.UUID, studentId uuid.UUID) ([]*dto.ShowGradeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	grades, err := uow.GradeRepository().FindAll(ctx,
		specification.ByStudentID{StudentID: studentId},
		specification.OwnedByUser{UserID: userId},
		specification.OrderBy{Field: "graded_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ShowGradeResponse, 0, len(grades))
	for _, grade := range grades {
		out = append(out, &dto.ShowGradeResponse{
			Id:        grade.Id,
			StudentId: grade.StudentId,
			Title:     grade.Title,
			Score:     grade.Score,
			MaxScore:  grade.MaxScore,
			Percent:   grade.Percent(),
			GradedAt:  grade.GradedAt,
		})
	}
	return out, nil
}

func (s *gradeService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateGradeRequest) (*dto.UpdateGradeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	grade, err := uow.GradeRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if grade == nil {
		return nil, nil
	}

	grade.Title = req.Title
	grade.Score = req.Score
	grade.MaxScore = req.MaxScore
	if !req.GradedAt.IsZero() {
		grade.GradedAt = req.GradedAt
	}
	if err := uow.GradeRepository().Update(ctx, grade); err != nil {
		return nil, err
	}

	s.publisherService.PublishDataChanged(ctx, userId, "grade", "update")
	return &dto.UpdateGradeResponse{Id: grade.Id}, nil
}

func (s *gradeService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.GradeRepository().DeleteOwned(ctx, id, userId)
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, nil
	}

	s.publisherService.PublishDataChanged(ctx, userId, "grade", "delete")
	return true, nil
}

// ClassSummaries aggregates the average percentage per class. Averages
// weigh every grade equally, not every student.
func (s *gradeService) ClassSummaries(ctx context.Context, userId uuid.UUID) ([]*dto.ClassGradeSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	classes, err := uow.ClassRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ClassGradeSummaryResponse, 0, len(classes))
	for _, class := range classes {
		students, err := uow.StudentRepository().FindAll(ctx,
			specification.ByClassID{ClassID: class.Id},
			specification.OwnedByUser{UserID: userId},
		)
		if err != nil {
			return nil, err
		}

		summary := &dto.ClassGradeSummaryResponse{
			ClassId:      class.Id,
			ClassName:    class.Name,
			StudentCount: int64(len(students)),
		}

		if len(students) > 0 {
			studentIds := make([]uuid.UUID, len(students))
			for i, st := range students {
				studentIds[i] = st.Id
			}

			grades, err := uow.GradeRepository().FindAll(ctx,
				specification.ByStudentIDs{StudentIDs: studentIds},
				specification.OwnedByUser{UserID: userId},
			)
			if err != nil {
				return nil, err
			}

			var sum float64
			for _, grade := range grades {
				sum += grade.Percent()
			}
			summary.GradeCount = int64(len(grades))
			if len(grades) > 0 {
				summary.AveragePct = sum / float64(len(grades))
			}
		}

		out = append(out, summary)
	}
	return out, nil
}
