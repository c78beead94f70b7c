//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_test
package location

import (
	"context"

	"logistic/internal/entities"
)

type Repository interface {
	// Publish перезаписывает запись водителя: хранится только последняя позиция.
	Publish(ctx context.Context, sample entities.DriverLocation) error
	ListAll(ctx context.Context) ([]entities.DriverLocation, error)
	// GetByDriver возвращает nil без ошибки, если записи нет или она истекла.
	GetByDriver(ctx context.Context, driverID string) (*entities.DriverLocation, error)
}
