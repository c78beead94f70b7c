//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"logistic/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	ListByStatus(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error)
	ListByDriver(ctx context.Context, driverID string, status entities.OrderStatusType) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)

	// UpdateStatusIf применяет patch только если заказ
	// сейчас в статусе expected. Проигравший конкурентный вызов получает
	// ErrOrderNotAvailable.
	UpdateStatusIf(ctx context.Context, orderID string, expected entities.OrderStatusType, patch StatusPatch) (*entities.Order, error)
}

// StatusPatch описывает атомарно применяемую смену статуса с полями водителя.
type StatusPatch struct {
	Status     entities.OrderStatusType
	DriverID   string
	DriverName string
}

type ChatProvisioner interface {
	ProvisionChat(ctx context.Context, order *entities.Order) (*entities.ChatChannel, error)
}

type DriverNameResolver interface {
	ResolveDriverName(ctx context.Context, driverID string) (string, error)
}

// EventPublisher отправляет событие смены статуса. Доставка best-effort:
// реализация логирует сбой сама и не мешает завершить операцию.
type EventPublisher interface {
	OrderStatusChanged(ctx context.Context, orderID string, status entities.OrderStatusType)
}

type NumberFactory interface {
	Next(baseTime time.Time) string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
