package service

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestConsumerTalliesPublishedChanges(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	consumer := NewConsumerService(pubSub, nopLogger{})
	publisher := NewPublisherService(pubSub, nopLogger{})

	err := consumer.Consume(context.Background())
	assert.NoError(t, err)

	teacher := uuid.New()
	other := uuid.New()

	publisher.PublishDataChanged(context.Background(), teacher, "note", "create")
	publisher.PublishDataChanged(context.Background(), teacher, "grade", "update")
	publisher.PublishDataChanged(context.Background(), other, "class", "delete")

	assert.Eventually(t, func() bool {
		return consumer.PendingChanges(teacher.String()) == 2 &&
			consumer.PendingChanges(other.String()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	consumer.ResetPending(teacher.String())
	assert.EqualValues(t, 0, consumer.PendingChanges(teacher.String()))
	assert.EqualValues(t, 1, consumer.PendingChanges(other.String()))
}

func TestConsumerAcksMalformedPayload(t *testing.T) {
	cs := &consumerService{
		logger:  nopLogger{},
		pending: make(map[string]int64),
	}

	msg := message.NewMessage(watermill.NewUUID(), []byte("not json"))
	cs.processMessage(msg)

	select {
	case <-msg.Acked():
	default:
		t.Fatal("malformed message was not acked")
	}
	assert.Empty(t, cs.pending)
}

func TestPendingChangesUnknownUserIsZero(t *testing.T) {
	cs := &consumerService{
		logger:  nopLogger{},
		pending: make(map[string]int64),
	}
	assert.EqualValues(t, 0, cs.PendingChanges(uuid.NewString()))
}
