// Package events publishes reservation lifecycle notifications so downstream
// consumers (calendar sync, notification senders) can react without polling.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=../mocks/events_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"salas/config"
	"salas/infras/kafka"
	"salas/internal/domains/reservation/model/dto"
	"salas/shared/timezone"
)

const (
	EventReservationCreated   = "reservation.created"
	EventReservationCancelled = "reservation.cancelled"
)

type Event struct {
	Type        string                  `json:"type"`
	OccurredAt  time.Time               `json:"occurred_at"`
	Reservation dto.ReservationResponse `json:"reservation"`
}

type Publisher interface {
	ReservationCreated(ctx context.Context, res dto.ReservationResponse)
	ReservationCancelled(ctx context.Context, res dto.ReservationResponse)
}

type publisherImpl struct {
	cfg    *config.Config
	client kafka.Client
}

func NewPublisher(cfg *config.Config, client kafka.Client) Publisher {
	return &publisherImpl{
		cfg:    cfg,
		client: client,
	}
}

func (p *publisherImpl) ReservationCreated(ctx context.Context, res dto.ReservationResponse) {
	p.publish(ctx, EventReservationCreated, res)
}

func (p *publisherImpl) ReservationCancelled(ctx context.Context, res dto.ReservationResponse) {
	p.publish(ctx, EventReservationCancelled, res)
}

// publish is fire-and-forget: event delivery never fails the reservation
// operation that triggered it.
func (p *publisherImpl) publish(ctx context.Context, eventType string, res dto.ReservationResponse) {
	if !p.cfg.Kafka.Enable {
		return
	}

	event := Event{
		Type:        eventType,
		OccurredAt:  timezone.Now(),
		Reservation: res,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := p.client.SendMessages(c, p.cfg.Kafka.Topics.ReservationEvents, kafka.Message{
			Key:   res.ID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("event", eventType).Str("reservationID", res.ID).Msg("failed to publish reservation event")
		}
	}()
}
