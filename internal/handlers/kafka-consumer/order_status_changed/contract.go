package order_status_changed

import (
	"context"

	"logistic/internal/entities"
	"logistic/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ReconcileStatusChange(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error)
}
