//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_post_test
package location_post

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
	PublishLocation(ctx context.Context, sample entities.DriverLocation) error
}
