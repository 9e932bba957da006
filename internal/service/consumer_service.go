package service

import (
	"context"
	"encoding/json"
	"sync"

	"classrecord-be/internal/pkg/logger"
	"classrecord-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService tallies DATA_CHANGED events per user so the backup
// page can show how many mutations happened since the last export. The
// counter is in-memory: it resets on restart, which only makes the
// backup reminder conservative.
type IConsumerService interface {
	Consume(ctx context.Context) error
	PendingChanges(userId string) int64
	ResetPending(userId string)
}

type consumerService struct {
	pubSub *gochannel.GoChannel
	logger logger.ILogger

	mu      sync.Mutex
	pending map[string]int64
}

func NewConsumerService(pubSub *gochannel.GoChannel, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:  pubSub,
		logger:  log,
		pending: make(map[string]int64),
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, events.TopicDataChanged)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload events.DataChanged
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "unmarshal data-changed event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed, retrying won't help
		return
	}

	cs.mu.Lock()
	cs.pending[payload.UserId]++
	cs.mu.Unlock()

	msg.Ack()
}

func (cs *consumerService) PendingChanges(userId string) int64 {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.pending[userId]
}

func (cs *consumerService) ResetPending(userId string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	delete(cs.pending, userId)
}
