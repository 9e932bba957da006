package service

import (
	"context"
	"encoding/json"
	"time"

	"classrecord-be/internal/pkg/logger"
	"classrecord-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IPublisherService interface {
	// PublishDataChanged emits one event per persisted mutation. Best
	// effort: a publish failure is logged, never surfaced to the user.
	PublishDataChanged(ctx context.Context, userId uuid.UUID, entity, action string)
}

type publisherService struct {
	pubSub *gochannel.GoChannel
	logger logger.ILogger
}

func NewPublisherService(pubSub *gochannel.GoChannel, log logger.ILogger) IPublisherService {
	return &publisherService{
		pubSub: pubSub,
		logger: log,
	}
}

func (s *publisherService) PublishDataChanged(ctx context.Context, userId uuid.UUID, entity, action string) {
	payload := events.DataChanged{
		UserId:     userId.String(),
		Entity:     entity,
		Action:     action,
		OccurredAt: time.Now(),
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("publisher", "marshal data-changed event", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), raw)
	if err := s.pubSub.Publish(events.TopicDataChanged, msg); err != nil {
		s.logger.Error("publisher", "publish data-changed event", map[string]interface{}{
			"error":  err.Error(),
			"entity": entity,
			"action": action,
		})
	}
}
