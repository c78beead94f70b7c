package profile

import (
	"context"
	"fmt"

	"logistic/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) RegisterAdmin(ctx context.Context, profileModify entities.AdminProfileModify) (*entities.AdminProfile, error) {
	if profileModify.AdminID == nil ||
		profileModify.Email == nil ||
		profileModify.OrganizationName == nil ||
		profileModify.OrganizationINN == nil ||
		profileModify.OrganizationAddress == nil ||
		profileModify.Phone == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isNotEmpty(*profileModify.AdminID) {
		return nil, ErrInvalidUserID
	}
	if !isValidEmail(*profileModify.Email) {
		return nil, ErrInvalidEmail
	}
	if !isNotEmpty(*profileModify.OrganizationName) || !isNotEmpty(*profileModify.OrganizationAddress) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidINN(*profileModify.OrganizationINN) {
		return nil, ErrInvalidINN
	}

	formatted := formatPhone(*profileModify.Phone)
	if !isValidPhone(formatted) {
		return nil, ErrInvalidPhone
	}
	profileModify.Phone = &formatted

	created, err := s.repository.CreateAdmin(ctx, profileModify)
	if err != nil {
		return nil, fmt.Errorf("create admin profile: %w", err)
	}
	return created, nil
}

func (s *Service) GetAdmin(ctx context.Context, adminID string) (*entities.AdminProfile, error) {
	if !isNotEmpty(adminID) {
		return nil, ErrInvalidUserID
	}

	adminProfile, err := s.repository.GetAdmin(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("get admin profile: %w", err)
	}
	return adminProfile, nil
}

func (s *Service) UpdateAdmin(ctx context.Context, profileModify entities.AdminProfileModify) (*entities.AdminProfile, error) {
	if profileModify.AdminID == nil || !isNotEmpty(*profileModify.AdminID) {
		return nil, ErrInvalidUserID
	}
	if profileModify.Email == nil &&
		profileModify.OrganizationName == nil &&
		profileModify.OrganizationINN == nil &&
		profileModify.OrganizationAddress == nil &&
		profileModify.Phone == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if profileModify.Email != nil && !isValidEmail(*profileModify.Email) {
		return nil, ErrInvalidEmail
	}
	if profileModify.OrganizationINN != nil && !isValidINN(*profileModify.OrganizationINN) {
		return nil, ErrInvalidINN
	}
	if profileModify.Phone != nil {
		formatted := formatPhone(*profileModify.Phone)
		if !isValidPhone(formatted) {
			return nil, ErrInvalidPhone
		}
		profileModify.Phone = &formatted
	}

	updated, err := s.repository.UpdateAdmin(ctx, profileModify)
	if err != nil {
		return nil, fmt.Errorf("update admin profile: %w", err)
	}
	return updated, nil
}

func (s *Service) RegisterDriver(ctx context.Context, profileModify entities.DriverProfileModify) (*entities.DriverProfile, error) {
	if profileModify.DriverID == nil ||
		profileModify.Email == nil ||
		profileModify.FirstName == nil ||
		profileModify.LastName == nil ||
		profileModify.LicenseNumber == nil ||
		profileModify.Phone == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isNotEmpty(*profileModify.DriverID) {
		return nil, ErrInvalidUserID
	}
	if !isValidEmail(*profileModify.Email) {
		return nil, ErrInvalidEmail
	}
	if !isValidName(*profileModify.FirstName) || !isValidName(*profileModify.LastName) {
		return nil, ErrInvalidName
	}
	if !isValidLicense(*profileModify.LicenseNumber) {
		return nil, ErrInvalidLicense
	}

	formatted := formatPhone(*profileModify.Phone)
	if !isValidPhone(formatted) {
		return nil, ErrInvalidPhone
	}
	profileModify.Phone = &formatted

	created, err := s.repository.CreateDriver(ctx, profileModify)
	if err != nil {
		return nil, fmt.Errorf("create driver profile: %w", err)
	}
	return created, nil
}

func (s *Service) GetDriver(ctx context.Context, driverID string) (*entities.DriverProfile, error) {
	if !isNotEmpty(driverID) {
		return nil, ErrInvalidUserID
	}

	driverProfile, err := s.repository.GetDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("get driver profile: %w", err)
	}
	return driverProfile, nil
}

func (s *Service) UpdateDriver(ctx context.Context, profileModify entities.DriverProfileModify) (*entities.DriverProfile, error) {
	if profileModify.DriverID == nil || !isNotEmpty(*profileModify.DriverID) {
		return nil, ErrInvalidUserID
	}
	if profileModify.Email == nil &&
		profileModify.FirstName == nil &&
		profileModify.LastName == nil &&
		profileModify.LicenseNumber == nil &&
		profileModify.Phone == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if profileModify.Email != nil && !isValidEmail(*profileModify.Email) {
		return nil, ErrInvalidEmail
	}
	if profileModify.FirstName != nil && !isValidName(*profileModify.FirstName) {
		return nil, ErrInvalidName
	}
	if profileModify.LastName != nil && !isValidName(*profileModify.LastName) {
		return nil, ErrInvalidName
	}
	if profileModify.LicenseNumber != nil && !isValidLicense(*profileModify.LicenseNumber) {
		return nil, ErrInvalidLicense
	}
	if profileModify.Phone != nil {
		formatted := formatPhone(*profileModify.Phone)
		if !isValidPhone(formatted) {
			return nil, ErrInvalidPhone
		}
		profileModify.Phone = &formatted
	}

	updated, err := s.repository.UpdateDriver(ctx, profileModify)
	if err != nil {
		return nil, fmt.Errorf("update driver profile: %w", err)
	}
	return updated, nil
}

// ResolveDriverName возвращает отображаемое имя водителя для привязки к
// заказу. Профиль без имени или фамилии не годится: операция взятия
// заказа обязана упасть до мутаций.
func (s *Service) ResolveDriverName(ctx context.Context, driverID string) (string, error) {
	if !isNotEmpty(driverID) {
		return "", ErrInvalidUserID
	}

	driverProfile, err := s.repository.GetDriver(ctx, driverID)
	if err != nil {
		return "", fmt.Errorf("get driver profile: %w", err)
	}

	if !isNotEmpty(driverProfile.FirstName) || !isNotEmpty(driverProfile.LastName) {
		return "", ErrDriverNameIncomplete
	}

	return driverProfile.FirstName + " " + driverProfile.LastName, nil
}
