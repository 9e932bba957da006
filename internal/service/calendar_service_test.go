package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"classrecord-be/internal/entity"
	"classrecord-be/internal/repository/contract"
	"classrecord-be/internal/repository/specification"
	"classrecord-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeCalendarNoteRepo struct {
	contract.CalendarNoteRepository

	notes     []*entity.CalendarNote
	findSpecs []specification.Specification
}

func (r *fakeCalendarNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CalendarNote, error) {
	r.findSpecs = specs
	return r.notes, nil
}

type fakeClassRepo struct {
	contract.ClassRepository

	findErr error
	classes []*entity.Class
}

func (r *fakeClassRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Class, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.classes, nil
}

type fakeUnitOfWork struct {
	unitofwork.UnitOfWork

	calendarRepo *fakeCalendarNoteRepo
	classRepo    *fakeClassRepo
}

func (u *fakeUnitOfWork) CalendarNoteRepository() contract.CalendarNoteRepository {
	return u.calendarRepo
}

func (u *fakeUnitOfWork) ClassRepository() contract.ClassRepository {
	return u.classRepo
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type nopPublisher struct{}

func (nopPublisher) PublishDataChanged(ctx context.Context, userId uuid.UUID, entity, action string) {
}

func newCalendarFixture(classErr error) (ICalendarService, *fakeCalendarNoteRepo, uuid.UUID) {
	userId := uuid.New()
	classId := uuid.New()

	calendarRepo := &fakeCalendarNoteRepo{
		notes: []*entity.CalendarNote{{
			Id:        uuid.New(),
			UserId:    userId,
			ClassId:   &classId,
			Date:      time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			Title:     "Parent evening",
			Type:      entity.CalendarNoteTypeMeeting,
			CreatedAt: time.Now(),
		}},
	}
	classRepo := &fakeClassRepo{
		findErr: classErr,
		classes: []*entity.Class{{Id: classId, UserId: userId, Name: "7B"}},
	}

	factory := &fakeUowFactory{uow: &fakeUnitOfWork{
		calendarRepo: calendarRepo,
		classRepo:    classRepo,
	}}
	svc := NewCalendarService(factory, nopPublisher{}, nopLogger{})
	return svc, calendarRepo, userId
}

func TestCalendarListSurvivesClassLookupFailure(t *testing.T) {
	svc, _, userId := newCalendarFixture(errors.New("class lookup down"))

	out, err := svc.List(context.Background(), userId)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "Parent evening", out[0].Title)
	assert.Empty(t, out[0].ClassName)
}

func TestCalendarListResolvesClassNames(t *testing.T) {
	svc, _, userId := newCalendarFixture(nil)

	out, err := svc.List(context.Background(), userId)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "7B", out[0].ClassName)
}

func TestCalendarListOrdersByDateThenCreation(t *testing.T) {
	svc, calendarRepo, userId := newCalendarFixture(nil)

	_, err := svc.List(context.Background(), userId)
	assert.NoError(t, err)

	var orders []specification.OrderBy
	for _, spec := range calendarRepo.findSpecs {
		if o, ok := spec.(specification.OrderBy); ok {
			orders = append(orders, o)
		}
	}
	assert.Equal(t, []specification.OrderBy{
		{Field: "date"},
		{Field: "created_at"},
	}, orders)
}
