package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"logistic/internal/entities"
	"logistic/internal/repository"
)

type Service struct {
	repository    Repository
	chatService   ChatProvisioner
	driverNames   DriverNameResolver
	events        EventPublisher
	numberFactory NumberFactory
	txManager     TxManager
}

func New(
	repository Repository,
	chatService ChatProvisioner,
	driverNames DriverNameResolver,
	events EventPublisher,
	numberFactory NumberFactory,
	txManager TxManager,
) *Service {
	return &Service{
		repository:    repository,
		chatService:   chatService,
		driverNames:   driverNames,
		events:        events,
		numberFactory: numberFactory,
		txManager:     txManager,
	}
}

// CreateOrder создаёт заказ в статусе new без водителя.
func (s *Service) CreateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.AdminID == nil || !isValidID(*orderModify.AdminID) {
		return nil, ErrInvalidAdminID
	}
	if orderModify.SenderAddress == nil || orderModify.RecipientAddress == nil ||
		!isValidID(*orderModify.SenderAddress) || !isValidID(*orderModify.RecipientAddress) {
		return nil, ErrMissingAddress
	}
	if orderModify.SenderLatitude == nil || orderModify.SenderLongitude == nil ||
		orderModify.RecipientLatitude == nil || orderModify.RecipientLongitude == nil {
		return nil, ErrMissingCoordinates
	}
	if orderModify.DeliveryDeadline == nil || orderModify.DeliveryDeadline.IsZero() {
		return nil, ErrInvalidDeadline
	}

	cargoType := entities.DefaultCargoType
	if orderModify.CargoType != nil {
		if !isValidCargoType(*orderModify.CargoType) {
			return nil, ErrInvalidCargoType
		}
		cargoType = *orderModify.CargoType
	}

	now := time.Now().UTC()
	orderEntity := entities.Order{
		ID:                 uuid.NewString(),
		Number:             s.numberFactory.Next(now),
		AdminID:            *orderModify.AdminID,
		CargoType:          cargoType,
		DeliveryDeadline:   orderModify.DeliveryDeadline.UTC(),
		SenderAddress:      *orderModify.SenderAddress,
		RecipientAddress:   *orderModify.RecipientAddress,
		SenderLatitude:     *orderModify.SenderLatitude,
		SenderLongitude:    *orderModify.SenderLongitude,
		RecipientLatitude:  *orderModify.RecipientLatitude,
		RecipientLongitude: *orderModify.RecipientLongitude,
		DriverID:           "",
		DriverName:         entities.DriverNameUnassigned,
		Status:             entities.OrderNew,
	}
	if orderModify.CargoWeight != nil {
		orderEntity.CargoWeight = *orderModify.CargoWeight
	}
	if orderModify.OrderInfo != nil {
		orderEntity.OrderInfo = *orderModify.OrderInfo
	}
	if orderModify.RecipientCompany != nil {
		orderEntity.RecipientCompany = *orderModify.RecipientCompany
	}

	created, err := s.repository.Create(ctx, orderEntity)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return orderEntity, nil
}

func (s *Service) ListOrdersByStatus(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error) {
	if !isValidStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedStatus, status)
	}

	orders, err := s.repository.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list orders by status: %w", err)
	}
	return orders, nil
}

func (s *Service) ListOrdersByDriver(ctx context.Context, driverID string, status entities.OrderStatusType) ([]entities.Order, error) {
	if !isValidID(driverID) {
		return nil, ErrInvalidDriverID
	}
	if !isValidStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedStatus, status)
	}

	orders, err := s.repository.ListByDriver(ctx, driverID, status)
	if err != nil {
		return nil, fmt.Errorf("list orders by driver: %w", err)
	}
	return orders, nil
}

// FindOrders ищет открытые заказы по подстрокам городов. Совпадение
// чисто лексическое, адреса хранятся свободным текстом. Сканируем все
// new-заказы, результат идёт в порядке вставки в хранилище.
func (s *Service) FindOrders(ctx context.Context, senderCity, recipientCity string) ([]entities.Order, error) {
	orders, err := s.repository.ListByStatus(ctx, entities.OrderNew)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}

	matched := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if containsFold(o.SenderAddress, senderCity) && containsFold(o.RecipientAddress, recipientCity) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// ClaimOrder переводит заказ в работу на водителя. Сначала резолвится имя
// водителя: без имени и фамилии операция падает до каких-либо мутаций.
// Смена статуса условная (только из new), поэтому из двух конкурентных
// претендентов выигрывает ровно один. Чат создаётся в той же транзакции.
func (s *Service) ClaimOrder(ctx context.Context, orderID, driverID string) (*entities.OrderClaim, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidID(driverID) {
		return nil, ErrInvalidDriverID
	}

	driverName, err := s.driverNames.ResolveDriverName(ctx, driverID)
	if err != nil {
		if errors.Is(err, repository.ErrStorageUnavailable) {
			return nil, fmt.Errorf("resolve driver name: %w", err)
		}
		return nil, fmt.Errorf("%w: %v", ErrDriverNameUnavailable, err)
	}

	claim := entities.OrderClaim{}
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		updated, err := s.repository.UpdateStatusIf(ctx, orderID, entities.OrderNew, StatusPatch{
			Status:     entities.OrderInTransit,
			DriverID:   driverID,
			DriverName: driverName,
		})
		if err != nil {
			return fmt.Errorf("claim order: %w", err)
		}

		if _, err := s.chatService.ProvisionChat(ctx, updated); err != nil {
			return fmt.Errorf("provision chat: %w", err)
		}

		claim = entities.OrderClaim{
			OrderID:    updated.ID,
			DriverID:   updated.DriverID,
			DriverName: updated.DriverName,
			Status:     updated.Status,
			ClaimedAt:  updated.UpdatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.OrderStatusChanged(ctx, claim.OrderID, claim.Status)
	return &claim, nil
}

// CancelOrder возвращает заказ в пул: статус new, водитель отвязан.
// Отменить может только назначенный водитель и только из in_transit.
func (s *Service) CancelOrder(ctx context.Context, orderID, driverID string) (*entities.Order, error) {
	released, err := s.releaseInTransit(ctx, orderID, driverID, func(*entities.Order) StatusPatch {
		return StatusPatch{
			Status:     entities.OrderNew,
			DriverID:   "",
			DriverName: entities.DriverNameUnassigned,
		}
	})
	if err != nil {
		return nil, err
	}

	s.events.OrderStatusChanged(ctx, released.ID, released.Status)
	return released, nil
}

// CompleteOrder переводит заказ в терминальный delivered. Водитель остаётся
// привязанным: доставленный заказ попадает в его историю.
func (s *Service) CompleteOrder(ctx context.Context, orderID, driverID string) (*entities.Order, error) {
	completed, err := s.releaseInTransit(ctx, orderID, driverID, func(current *entities.Order) StatusPatch {
		return StatusPatch{
			Status:     entities.OrderDelivered,
			DriverID:   current.DriverID,
			DriverName: current.DriverName,
		}
	})
	if err != nil {
		return nil, err
	}

	s.events.OrderStatusChanged(ctx, completed.ID, completed.Status)
	return completed, nil
}

// UpdateOrder правит информационные поля заказа. Статус и
// привязка водителя через этот путь недостижимы: репозиторий не принимает
// их в OrderModify.
func (s *Service) UpdateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || !isValidID(*orderModify.ID) {
		return nil, ErrInvalidOrderID
	}
	if orderModify.CargoType == nil &&
		orderModify.CargoWeight == nil &&
		orderModify.DeliveryDeadline == nil &&
		orderModify.OrderInfo == nil &&
		orderModify.RecipientCompany == nil &&
		orderModify.SenderAddress == nil &&
		orderModify.RecipientAddress == nil &&
		orderModify.SenderLatitude == nil &&
		orderModify.SenderLongitude == nil &&
		orderModify.RecipientLatitude == nil &&
		orderModify.RecipientLongitude == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if orderModify.CargoType != nil && !isValidCargoType(*orderModify.CargoType) {
		return nil, ErrInvalidCargoType
	}

	updated, err := s.repository.Update(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return updated, nil
}

// ReconcileStatusChange обрабатывает событие смены статуса из брокера.
// Для in_transit повторно прогоняет создание чата: операция идемпотентна,
// поэтому событие безопасно переигрывать.
func (s *Service) ReconcileStatusChange(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedStatus, status)
	}

	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("reconcile status change: %w", err)
	}

	// событие могло устареть, сверяемся с актуальным состоянием
	if orderEntity.Status != status {
		return nil, fmt.Errorf("%w: event %s, current %s", ErrStatusMismatch, status, orderEntity.Status)
	}

	if status == entities.OrderInTransit {
		if _, err := s.chatService.ProvisionChat(ctx, orderEntity); err != nil {
			return nil, fmt.Errorf("provision chat: %w", err)
		}
	}

	return orderEntity, nil
}

func (s *Service) releaseInTransit(ctx context.Context, orderID, driverID string, patchFor func(current *entities.Order) StatusPatch) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidID(driverID) {
		return nil, ErrInvalidDriverID
	}

	var result *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if current.Status != entities.OrderInTransit {
			return fmt.Errorf("%w: order is %s", ErrInvalidOrderState, current.Status)
		}
		if current.DriverID != driverID {
			return ErrNotAssignedDriver
		}

		updated, err := s.repository.UpdateStatusIf(ctx, orderID, entities.OrderInTransit, patchFor(current))
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
