package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestPublishBetSettled(t *testing.T) {
	w := &fakeWriter{}
	pub := NewEventPublisher(w)

	pub.PublishBetSettled(context.Background(), BetSettledEvent{
		BetID:    3,
		UserID:   1,
		Option:   "UP",
		Status:   "WON",
		Amount:   "100",
		Payout:   "200",
		Dice1:    5,
		Dice2:    6,
		Total:    11,
		Result:   "UP",
		Occurred: time.Now().UTC(),
	})

	require.Len(t, w.messages, 1)
	assert.Equal(t, "1", string(w.messages[0].Key))

	var ev BetSettledEvent
	require.NoError(t, json.Unmarshal(w.messages[0].Value, &ev))
	assert.Equal(t, uint(3), ev.BetID)
	assert.Equal(t, "WON", ev.Status)
	assert.Equal(t, 11, ev.Total)
}

func TestPublishBetSettledNilSafe(t *testing.T) {
	var pub *EventPublisher
	pub.PublishBetSettled(context.Background(), BetSettledEvent{BetID: 1})
	assert.NoError(t, pub.Close())

	pub = NewEventPublisher(nil)
	pub.PublishBetSettled(context.Background(), BetSettledEvent{BetID: 1})
	assert.NoError(t, pub.Close())
}

func TestNewKafkaWriterDisabledWithoutBrokers(t *testing.T) {
	assert.Nil(t, NewKafkaWriter(nil, "bet.settled"))
	assert.NotNil(t, NewKafkaWriter([]string{"localhost:9092"}, "bet.settled"))
}
