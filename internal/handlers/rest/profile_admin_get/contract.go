//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_admin_get_test
package profile_admin_get

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
	GetAdmin(ctx context.Context, adminID string) (*entities.AdminProfile, error)
}
