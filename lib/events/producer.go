package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
	"hr-records-backend/models"
)

type EventType string

const (
	RecordCreated       EventType = "record.created"
	RecordUpdated       EventType = "record.updated"
	RecordDeleted       EventType = "record.deleted"
	RecordStatusChanged EventType = "record.status_changed"
)

type Event struct {
	Type       EventType           `json:"type"`
	RecordKind models.RecordKind   `json:"record_kind"`
	RecordID   string              `json:"record_id"`
	EmployeeID string              `json:"employee_id,omitempty"`
	UserID     string              `json:"user_id,omitempty"`
	FromStatus models.RecordStatus `json:"from_status,omitempty"`
	ToStatus   models.RecordStatus `json:"to_status,omitempty"`
	Time       time.Time           `json:"time"`
}

type Provider interface {
	Publish(event Event)
}

var Instance Provider = noop{}

type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewHandler без брокеров события не отправляются
func NewHandler(ctx context.Context, brokers []string, topic string) {
	if len(brokers) == 0 {
		log.Info("брокеры kafka не настроены, события кадровых записей не публикуются")
		Instance = noop{}
		return
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Topic:                  topic,
		AllowAutoTopicCreation: true,
	}
	Instance = newProducer(ctx, writer, 1000)
}

func newProducer(ctx context.Context, writer KafkaWriter, bufferSize int) *producer {
	p := &producer{
		writer: writer,
		events: make(chan Event, bufferSize),
		done:   make(chan struct{}),
	}
	go p.eventLoop(ctx)
	return p
}

type producer struct {
	writer KafkaWriter
	events chan Event
	done   chan struct{}
}

func (p *producer) Publish(event Event) {
	if event.Time.IsZero() {
		event.Time = time.Now()
	}
	select {
	case p.events <- event:
	default:
		log.
			WithField("event_type", event.Type).
			WithField("rec_id", event.RecordID).
			Warn("очередь событий переполнена, событие пропущено")
	}
}

func (p *producer) eventLoop(ctx context.Context) {
	defer close(p.done)
	for {
		select {
		case event := <-p.events:
			p.send(ctx, event)
		case <-ctx.Done():
			if err := p.writer.Close(); err != nil {
				log.WithError(err).Error("ошибка закрытия kafka writer")
			}
			return
		}
	}
}

func (p *producer) send(ctx context.Context, event Event) {
	logger := log.
		WithField("event_type", event.Type).
		WithField("rec_id", event.RecordID)
	value, err := json.Marshal(event)
	if err != nil {
		logger.WithError(err).Error("ошибка сериализации события")
		return
	}
	msg := kafka.Message{
		Key:   []byte(event.RecordID),
		Value: value,
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	err = backoff.Retry(func() error {
		return p.writer.WriteMessages(ctx, msg)
	}, policy)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки события в kafka")
	}
}

type noop struct{}

func (noop) Publish(Event) {}
