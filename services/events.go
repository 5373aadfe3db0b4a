package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"dicebet/logger"
)

// BetSettledEvent is published after a resolve transaction commits.
type BetSettledEvent struct {
	BetID    uint      `json:"bet_id"`
	UserID   uint      `json:"user_id"`
	Option   string    `json:"bet_option"`
	Status   string    `json:"status"`
	Amount   string    `json:"amount"`
	Payout   string    `json:"payout"`
	Dice1    int       `json:"dice1"`
	Dice2    int       `json:"dice2"`
	Total    int       `json:"total"`
	Result   string    `json:"result"`
	Occurred time.Time `json:"occurred_at"`
}

// KafkaWriter is the kafka-go writer surface the publisher needs.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventPublisher emits settled-bet events. A nil writer disables publishing;
// failures are logged and never fail the settlement, which has already
// committed.
type EventPublisher struct {
	writer KafkaWriter
}

func NewEventPublisher(writer KafkaWriter) *EventPublisher {
	return &EventPublisher{writer: writer}
}

// NewKafkaWriter builds a writer for the given brokers and topic, or nil
// when brokers is empty.
func NewKafkaWriter(brokers []string, topic string) KafkaWriter {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
}

// PublishBetSettled writes the event keyed by user id, preserving per-user
// ordering.
func (p *EventPublisher) PublishBetSettled(ctx context.Context, ev BetSettledEvent) {
	if p == nil || p.writer == nil {
		return
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("marshal bet settled event", "bet_id", ev.BetID, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(ev.UserID), 10)),
		Value: payload,
	})
	if err != nil {
		logger.Log.Errorw("publish bet settled event", "bet_id", ev.BetID, "error", err)
	}
}

// Close flushes and closes the underlying writer.
func (p *EventPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
