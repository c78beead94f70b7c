//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_driver_post_test
package profile_driver_post

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
	RegisterDriver(ctx context.Context, profileModify entities.DriverProfileModify) (*entities.DriverProfile, error)
}
