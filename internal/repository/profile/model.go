package profile

import "time"

type AdminProfileDB struct {
	AdminID             string
	Email               string
	OrganizationName    string
	OrganizationINN     string
	OrganizationAddress string
	Phone               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type DriverProfileDB struct {
	DriverID      string
	Email         string
	FirstName     string
	LastName      string
	LicenseNumber string
	Phone         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
