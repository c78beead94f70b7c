//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_get_test
package orders_get

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
	ListOrdersByStatus(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error)
	ListOrdersByDriver(ctx context.Context, driverID string, status entities.OrderStatusType) ([]entities.Order, error)
}
