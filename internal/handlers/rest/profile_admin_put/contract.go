//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_admin_put_test
package profile_admin_put

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
	UpdateAdmin(ctx context.Context, profileModify entities.AdminProfileModify) (*entities.AdminProfile, error)
}
