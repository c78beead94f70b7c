package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistic/internal/entities"
	"logistic/internal/repository"
	"logistic/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, order_number, admin_id, cargo_type, cargo_weight, delivery_deadline,
		order_info, recipient_company, sender_address, recipient_address,
		sender_latitude, sender_longitude, recipient_latitude, recipient_longitude,
		driver_id, driver_name, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	query := `INSERT INTO orders (id, order_number, admin_id, cargo_type, cargo_weight, delivery_deadline,
			order_info, recipient_company, sender_address, recipient_address,
			sender_latitude, sender_longitude, recipient_latitude, recipient_longitude,
			driver_id, driver_name, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.ID,
		orderEntity.Number,
		orderEntity.AdminID,
		orderEntity.CargoType.String(),
		orderEntity.CargoWeight,
		orderEntity.DeliveryDeadline,
		orderEntity.OrderInfo,
		orderEntity.RecipientCompany,
		orderEntity.SenderAddress,
		orderEntity.RecipientAddress,
		orderEntity.SenderLatitude,
		orderEntity.SenderLongitude,
		orderEntity.RecipientLatitude,
		orderEntity.RecipientLongitude,
		orderEntity.DriverID,
		orderEntity.DriverName,
		orderEntity.Status.String(),
	)

	orderModel, err := scanOrder(row)
	if err != nil {
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) ListByStatus(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error) {
	// порядок вставки
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE status = $1
		ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, status.String())
	if err != nil {
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected order repository listbystatus error: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *Repository) ListByDriver(ctx context.Context, driverID string, status entities.OrderStatusType) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE driver_id = $1 AND status = $2
		ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, driverID, status.String())
	if err != nil {
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected order repository listbydriver error: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// Update меняет только информационные поля. Статус и поля водителя сюда
// не попадают никогда: для них есть UpdateStatusIf.
func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	builder := qb.Update("orders")

	if orderModify.CargoType != nil {
		builder = builder.Set("cargo_type", orderModify.CargoType.String())
	}
	if orderModify.CargoWeight != nil {
		builder = builder.Set("cargo_weight", orderModify.CargoWeight)
	}
	if orderModify.DeliveryDeadline != nil {
		builder = builder.Set("delivery_deadline", orderModify.DeliveryDeadline)
	}
	if orderModify.OrderInfo != nil {
		builder = builder.Set("order_info", orderModify.OrderInfo)
	}
	if orderModify.RecipientCompany != nil {
		builder = builder.Set("recipient_company", orderModify.RecipientCompany)
	}
	if orderModify.SenderAddress != nil {
		builder = builder.Set("sender_address", orderModify.SenderAddress)
	}
	if orderModify.RecipientAddress != nil {
		builder = builder.Set("recipient_address", orderModify.RecipientAddress)
	}
	if orderModify.SenderLatitude != nil {
		builder = builder.Set("sender_latitude", orderModify.SenderLatitude)
	}
	if orderModify.SenderLongitude != nil {
		builder = builder.Set("sender_longitude", orderModify.SenderLongitude)
	}
	if orderModify.RecipientLatitude != nil {
		builder = builder.Set("recipient_latitude", orderModify.RecipientLatitude)
	}
	if orderModify.RecipientLongitude != nil {
		builder = builder.Set("recipient_longitude", orderModify.RecipientLongitude)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModify.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderModel), nil
}

// UpdateStatusIf делает compare-and-set по текущему статусу. Ноль обновлённых
// строк означает либо отсутствие заказа, либо проигранную гонку; различаем
// дополнительным чтением.
func (r *Repository) UpdateStatusIf(ctx context.Context, orderID string, expected entities.OrderStatusType, patch order.StatusPatch) (*entities.Order, error) {
	query := `UPDATE orders
		SET status = $1, driver_id = $2, driver_name = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
		RETURNING ` + orderColumns

	orderModel, err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		patch.Status.String(),
		patch.DriverID,
		patch.DriverName,
		orderID,
		expected.String(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissedUpdate(ctx, orderID)
		}
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected order repository conditional update error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) classifyMissedUpdate(ctx context.Context, orderID string) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, orderID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected order repository conditional update error: %w", err)
	}

	if !exists {
		return order.ErrOrderNotFound
	}
	return order.ErrOrderNotAvailable
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.Number,
		&orderModel.AdminID,
		&orderModel.CargoType,
		&orderModel.CargoWeight,
		&orderModel.DeliveryDeadline,
		&orderModel.OrderInfo,
		&orderModel.RecipientCompany,
		&orderModel.SenderAddress,
		&orderModel.RecipientAddress,
		&orderModel.SenderLatitude,
		&orderModel.SenderLongitude,
		&orderModel.RecipientLatitude,
		&orderModel.RecipientLongitude,
		&orderModel.DriverID,
		&orderModel.DriverName,
		&orderModel.Status,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}

func collectOrders(rows pgx.Rows) ([]entities.Order, error) {
	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orderModels = append(orderModels, *orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	return ToDomainList(orderModels), nil
}
