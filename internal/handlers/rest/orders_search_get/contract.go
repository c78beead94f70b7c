//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_search_get_test
package orders_search_get

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
	FindOrders(ctx context.Context, senderCity, recipientCity string) ([]entities.Order, error)
}
