package profile

import "logistic/internal/entities"

func ToDomainAdmin(p *AdminProfileDB) *entities.AdminProfile {
	if p == nil {
		return nil
	}
	return &entities.AdminProfile{
		AdminID:             p.AdminID,
		Email:               p.Email,
		OrganizationName:    p.OrganizationName,
		OrganizationINN:     p.OrganizationINN,
		OrganizationAddress: p.OrganizationAddress,
		Phone:               p.Phone,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func ToDomainDriver(p *DriverProfileDB) *entities.DriverProfile {
	if p == nil {
		return nil
	}
	return &entities.DriverProfile{
		DriverID:      p.DriverID,
		Email:         p.Email,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		LicenseNumber: p.LicenseNumber,
		Phone:         p.Phone,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
