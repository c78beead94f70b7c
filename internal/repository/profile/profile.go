package profile

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistic/internal/entities"
	"logistic/internal/repository"
	"logistic/internal/service/profile"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const adminColumns = `admin_id, email, organization_name, organization_inn, organization_address, phone, created_at, updated_at`

const driverColumns = `driver_id, email, first_name, last_name, license_number, phone, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateAdmin(ctx context.Context, profileModify entities.AdminProfileModify) (*entities.AdminProfile, error) {
	query := `INSERT INTO admin_profiles (admin_id, email, organization_name, organization_inn, organization_address, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + adminColumns

	adminModel, err := scanAdmin(r.querier.QueryRow(
		ctx,
		query,
		profileModify.AdminID,
		profileModify.Email,
		profileModify.OrganizationName,
		profileModify.OrganizationINN,
		profileModify.OrganizationAddress,
		profileModify.Phone,
	))
	if err != nil {
		return nil, translateError(err, "createadmin")
	}

	return ToDomainAdmin(adminModel), nil
}

func (r *Repository) GetAdmin(ctx context.Context, adminID string) (*entities.AdminProfile, error) {
	query := `SELECT ` + adminColumns + `
		FROM admin_profiles
		WHERE admin_id = $1`

	adminModel, err := scanAdmin(r.querier.QueryRow(ctx, query, adminID))
	if err != nil {
		return nil, translateError(err, "getadmin")
	}

	return ToDomainAdmin(adminModel), nil
}

func (r *Repository) UpdateAdmin(ctx context.Context, profileModify entities.AdminProfileModify) (*entities.AdminProfile, error) {
	builder := qb.Update("admin_profiles")

	if profileModify.Email != nil {
		builder = builder.Set("email", profileModify.Email)
	}
	if profileModify.OrganizationName != nil {
		builder = builder.Set("organization_name", profileModify.OrganizationName)
	}
	if profileModify.OrganizationINN != nil {
		builder = builder.Set("organization_inn", profileModify.OrganizationINN)
	}
	if profileModify.OrganizationAddress != nil {
		builder = builder.Set("organization_address", profileModify.OrganizationAddress)
	}
	if profileModify.Phone != nil {
		builder = builder.Set("phone", profileModify.Phone)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"admin_id": profileModify.AdminID}).
		Suffix("RETURNING " + adminColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected profile repository updateadmin error: %w", err)
	}

	adminModel, err := scanAdmin(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, "updateadmin")
	}

	return ToDomainAdmin(adminModel), nil
}

func (r *Repository) CreateDriver(ctx context.Context, profileModify entities.DriverProfileModify) (*entities.DriverProfile, error) {
	query := `INSERT INTO driver_profiles (driver_id, email, first_name, last_name, license_number, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + driverColumns

	driverModel, err := scanDriver(r.querier.QueryRow(
		ctx,
		query,
		profileModify.DriverID,
		profileModify.Email,
		profileModify.FirstName,
		profileModify.LastName,
		profileModify.LicenseNumber,
		profileModify.Phone,
	))
	if err != nil {
		return nil, translateError(err, "createdriver")
	}

	return ToDomainDriver(driverModel), nil
}

func (r *Repository) GetDriver(ctx context.Context, driverID string) (*entities.DriverProfile, error) {
	query := `SELECT ` + driverColumns + `
		FROM driver_profiles
		WHERE driver_id = $1`

	driverModel, err := scanDriver(r.querier.QueryRow(ctx, query, driverID))
	if err != nil {
		return nil, translateError(err, "getdriver")
	}

	return ToDomainDriver(driverModel), nil
}

func (r *Repository) UpdateDriver(ctx context.Context, profileModify entities.DriverProfileModify) (*entities.DriverProfile, error) {
	builder := qb.Update("driver_profiles")

	if profileModify.Email != nil {
		builder = builder.Set("email", profileModify.Email)
	}
	if profileModify.FirstName != nil {
		builder = builder.Set("first_name", profileModify.FirstName)
	}
	if profileModify.LastName != nil {
		builder = builder.Set("last_name", profileModify.LastName)
	}
	if profileModify.LicenseNumber != nil {
		builder = builder.Set("license_number", profileModify.LicenseNumber)
	}
	if profileModify.Phone != nil {
		builder = builder.Set("phone", profileModify.Phone)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"driver_id": profileModify.DriverID}).
		Suffix("RETURNING " + driverColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected profile repository updatedriver error: %w", err)
	}

	driverModel, err := scanDriver(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err, "updatedriver")
	}

	return ToDomainDriver(driverModel), nil
}

func translateError(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return profile.ErrProfileNotFound
	}
	if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
		return profile.ErrConflict
	}
	if repository.IsUnavailable(err) {
		return fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
	}
	return fmt.Errorf("unexpected profile repository %s error: %w", op, err)
}

func scanAdmin(row pgx.Row) (*AdminProfileDB, error) {
	var adminModel AdminProfileDB
	err := row.Scan(
		&adminModel.AdminID,
		&adminModel.Email,
		&adminModel.OrganizationName,
		&adminModel.OrganizationINN,
		&adminModel.OrganizationAddress,
		&adminModel.Phone,
		&adminModel.CreatedAt,
		&adminModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &adminModel, nil
}

func scanDriver(row pgx.Row) (*DriverProfileDB, error) {
	var driverModel DriverProfileDB
	err := row.Scan(
		&driverModel.DriverID,
		&driverModel.Email,
		&driverModel.FirstName,
		&driverModel.LastName,
		&driverModel.LicenseNumber,
		&driverModel.Phone,
		&driverModel.CreatedAt,
		&driverModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &driverModel, nil
}
