package order_events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"logistic/internal/entities"
	"logistic/pkg/logger"
	retrierconfig "logistic/pkg/retrier"
	"logistic/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Gateway публикует события смены статуса заказа. Доставка best-effort:
// сбой логируется и не возвращается вызывающему, жизненный цикл заказа
// от брокера не зависит.
type Gateway struct {
	log      gatewayLogger
	producer producer
	retrier  retrier
	topic    string
}

func New(log gatewayLogger, producer producer, topic string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil,
	}

	return &Gateway{
		log:      log.With(logger.NewField("topic", topic)),
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		topic:    topic,
	}
}

func (g *Gateway) OrderStatusChanged(ctx context.Context, orderID string, status entities.OrderStatusType) {
	event := statusChangedEvent{
		OrderID:    orderID,
		Status:     status.String(),
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		g.log.Error("order.status.changed marshal failed",
			logger.NewField("order", orderID),
			logger.NewField("error", err),
		)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		// ключ — id заказа, события одного заказа попадают в одну партицию
		Key:   sarama.StringEncoder(orderID),
		Value: sarama.ByteEncoder(payload),
	}

	start := time.Now()
	err = g.retrier.ExecuteWithContext(ctx, func(_ context.Context) error {
		_, _, sendErr := g.producer.SendMessage(msg)
		return sendErr
	})
	PublishDuration.WithLabelValues(g.topic).Observe(time.Since(start).Seconds())

	if err != nil {
		PublishedEventsTotal.WithLabelValues(g.topic, "error").Inc()
		g.log.Error("order.status.changed publish failed",
			logger.NewField("order", orderID),
			logger.NewField("status", status.String()),
			logger.NewField("error", err),
		)
		return
	}

	PublishedEventsTotal.WithLabelValues(g.topic, "ok").Inc()
	g.log.Info("order.status.changed published",
		logger.NewField("order", orderID),
		logger.NewField("status", status.String()),
	)
}
