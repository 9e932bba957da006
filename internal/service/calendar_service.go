package service

import (
	"context"
	"time"

	"classrecord-be/internal/dto"
	"classrecord-be/internal/entity"
	"classrecord-be/internal/pkg/logger"
	"classrecord-be/internal/repository/specification"
	"classrecord-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICalendarService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCalendarNoteRequest) (*dto.CreateCalendarNoteResponse, error)
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowCalendarNoteResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) (bool, error)
}

type calendarService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewCalendarService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService, log logger.ILogger) ICalendarService {
	return &calendarService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *calendarService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateCalendarNoteRequest) (*dto.CreateCalendarNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// A class link is optional, but a dangling one is rejected.
	if req.ClassId != nil {
		class, err := uow.ClassRepository().FindOne(ctx,
			specification.ByID{ID: *req.ClassId},
			specification.OwnedByUser{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if class == nil {
			return nil, ErrClassNotFound
		}
	}

	noteType := entity.CalendarNoteType(req.Type)
	if noteType == "" {
		noteType = entity.CalendarNoteTypeGeneral
	}

	note := entity.CalendarNote{
		Id:          uuid.New(),
		UserId:      userId,
		ClassId:     req.ClassId,
		Date:        req.Date,
		Title:       req.Title,
		Description: req.Description,
		Type:        noteType,
		CreatedAt:   time.Now(),
	}

	if err := uow.CalendarNoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	s.publisherService.PublishDataChanged(ctx, userId, "calendar_note", "create")
	return &dto.CreateCalendarNoteResponse{Id: note.Id}, nil
}

// List returns calendar notes date ascending, creation order within a
// day, with class names resolved best-effort.
func (s *calendarService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ShowCalendarNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.CalendarNoteRepository().FindAll(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.OrderBy{Field: "date"},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	classNames := s.classNamesById(ctx, uow, userId, notes)

	out := make([]*dto.ShowCalendarNoteResponse, 0, len(notes))
	for _, note := range notes {
		resp := &dto.ShowCalendarNoteResponse{
			Id:          note.Id,
			ClassId:     note.ClassId,
			Date:        note.Date,
			Title:       note.Title,
			Description: note.Description,
			Type:        string(note.Type),
			CreatedAt:   note.CreatedAt,
		}
		if note.ClassId != nil {
			resp.ClassName = classNames[*note.ClassId]
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *calendarService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.CalendarNoteRepository().DeleteOwned(ctx, id, userId)
	if err != nil {
		return false, err
	}
	if rows == 0 {
		return false, nil
	}

	s.publisherService.PublishDataChanged(ctx, userId, "calendar_note", "delete")
	return true, nil
}

// classNamesById resolves class display names for the listing. A failed
// lookup is logged and yields an empty map: names are decoration, the
// notes themselves still render.
func (s *calendarService) classNamesById(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, notes []*entity.CalendarNote) map[uuid.UUID]string {
	ids := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]bool)
	for _, note := range notes {
		if note.ClassId != nil && !seen[*note.ClassId] {
			seen[*note.ClassId] = true
			ids = append(ids, *note.ClassId)
		}
	}
	if len(ids) == 0 {
		return map[uuid.UUID]string{}
	}

	classes, err := uow.ClassRepository().FindAll(ctx,
		specification.ByIDs{IDs: ids},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		s.logger.Warn("calendar", "class name lookup failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return map[uuid.UUID]string{}
	}

	names := make(map[uuid.UUID]string, len(classes))
	for _, class := range classes {
		names[class.Id] = class.Name
	}
	return names
}
