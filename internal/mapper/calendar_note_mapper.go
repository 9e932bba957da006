package mapper

import (
	"time"

	"classrecord-be/internal/entity"
	"classrecord-be/internal/model"

	"gorm.io/gorm"
)

type CalendarNoteMapper struct{}

func NewCalendarNoteMapper() *CalendarNoteMapper {
	return &CalendarNoteMapper{}
}

func (m *CalendarNoteMapper) ToEntity(c *model.CalendarNote) *entity.CalendarNote {
	if c == nil {
		return nil
	}

	var deletedAt *time.Time
	if c.DeletedAt.Valid {
		t := c.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.CalendarNote{
		Id:          c.Id,
		UserId:      c.UserId,
		ClassId:     c.ClassId,
		Date:        c.Date,
		Title:       c.Title,
		Description: c.Description,
		Type:        entity.CalendarNoteType(c.Type),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   c.DeletedAt.Valid,
	}
}

func (m *CalendarNoteMapper) ToModel(c *entity.CalendarNote) *model.CalendarNote {
	if c == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if c.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *c.DeletedAt, Valid: true}
	} else if c.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.CalendarNote{
		Id:          c.Id,
		UserId:      c.UserId,
		ClassId:     c.ClassId,
		Date:        c.Date,
		Title:       c.Title,
		Description: c.Description,
		Type:        string(c.Type),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *CalendarNoteMapper) ToEntities(notes []*model.CalendarNote) []*entity.CalendarNote {
	entities := make([]*entity.CalendarNote, len(notes))
	for i, c := range notes {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *CalendarNoteMapper) ToModels(notes []*entity.CalendarNote) []*model.CalendarNote {
	models := make([]*model.CalendarNote, len(notes))
	for i, c := range notes {
		models[i] = m.ToModel(c)
	}
	return models
}
