package infra_rabbitmq_publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/humanbelnik/kinoswap/swipematch/internal/config"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
	amqp "github.com/rabbitmq/amqp091-go"
)

// MatchEvent is the wire form of a completed session.
type MatchEvent struct {
	SessionID string    `json:"session_id"`
	MovieID   int64     `json:"movie_id"`
	MatchedAt time.Time `json:"matched_at"`
}

func NewMatchEvent(m model.Match) MatchEvent {
	return MatchEvent{
		SessionID: m.SessionID.String(),
		MovieID:   m.MovieID,
		MatchedAt: m.MatchedAt.UTC(),
	}
}

// Publisher opens a short lived connection per event. Matches are rare,
// one per session, so there is no pooled channel.
type Publisher struct {
	url         string
	queue       string
	dialTimeout time.Duration
	logger      *slog.Logger
}

const defaultDialTimeout = 3 * time.Second

type PublisherOption func(*Publisher)

func WithLogger(logger *slog.Logger) PublisherOption {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func New(cfg config.RabbitMQ, opts ...PublisherOption) *Publisher {
	p := &Publisher{
		url:         cfg.URL,
		queue:       cfg.Queue,
		dialTimeout: cfg.DialTimeout,
		logger:      slog.Default(),
	}
	if p.dialTimeout <= 0 {
		p.dialTimeout = defaultDialTimeout
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Publisher) PublishMatch(ctx context.Context, m model.Match) error {
	body, err := json.Marshal(NewMatchEvent(m))
	if err != nil {
		return fmt.Errorf("rabbitmq: marshal event: %w", err)
	}

	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Dial: amqp.DefaultDial(p.timeout(ctx)),
	})
	if err != nil {
		return fmt.Errorf("rabbitmq: dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq: open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return fmt.Errorf("rabbitmq: declare %s: %w", p.queue, err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		return fmt.Errorf("rabbitmq: publish: %w", err)
	}

	p.logger.Info("match event published",
		slog.String("session_id", m.SessionID.String()),
		slog.Int64("movie_id", m.MovieID),
	)
	return nil
}

// timeout bounds connect and handshake by the dial timeout or the
// caller's deadline, whichever comes first.
func (p *Publisher) timeout(ctx context.Context) time.Duration {
	d := p.dialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < d {
			d = max(left, time.Millisecond)
		}
	}
	return d
}
