//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_test
package profile

import (
	"context"

	"logistic/internal/entities"
)

type Repository interface {
	CreateAdmin(ctx context.Context, profileModify entities.AdminProfileModify) (*entities.AdminProfile, error)
	GetAdmin(ctx context.Context, adminID string) (*entities.AdminProfile, error)
	UpdateAdmin(ctx context.Context, profileModify entities.AdminProfileModify) (*entities.AdminProfile, error)

	CreateDriver(ctx context.Context, profileModify entities.DriverProfileModify) (*entities.DriverProfile, error)
	GetDriver(ctx context.Context, driverID string) (*entities.DriverProfile, error)
	UpdateDriver(ctx context.Context, profileModify entities.DriverProfileModify) (*entities.DriverProfile, error)
}
