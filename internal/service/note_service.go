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

type INoteService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowNoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) (bool, error)
	DeleteAll(ctx context.Context, userId uuid.UUID) (int64, error)
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note := entity.Note{
		Id:        uuid.New(),
		UserId:    userId,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	s.publisherService.PublishDataChanged(ctx, userId, "note", "create")
	return &dto.CreateNoteResponse{Id: note.Id}, nil
}

// List returns the caller's notes newest first.
func (s *noteService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ShowNoteResponse, 0, len(notes))
	for _, note := range notes {
		out = append(out, &dto.ShowNoteResponse{
			Id:        note.Id,
			Content:   note.Content,
			CreatedAt: note.CreatedAt,
			UpdatedAt: note.UpdatedAt,
		})
	}
	return out, nil
}

func (s *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.UpdateNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	note.Content = req.Content
	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	s.publisherService.PublishDataChanged(ctx, userId, "note", "update")
	return &dto.UpdateNoteResponse{Id: note.Id}, nil
}

func (s *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.NoteRepository().DeleteOwned(ctx, id, userId)
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, nil
	}

	s.publisherService.PublishDataChanged(ctx, userId, "note", "delete")
	return true, nil
}

func (s *noteService) DeleteAll(ctx context.Context, userId uuid.UUID) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	count, err := uow.NoteRepository().DeleteAllOwned(ctx, userId)
	if err != nil {
		return 0, err
	}

	if count > 0 {
		s.publisherService.PublishDataChanged(ctx, userId, "note", "delete_all")
	}
	return count, nil
}
