package entities

import "time"

type RoleType string

const (
	RoleAdmin  RoleType = "admin"
	RoleDriver RoleType = "driver"
)

func (r RoleType) String() string {
	return string(r)
}

type AdminProfile struct {
	AdminID             string
	Email               string
	OrganizationName    string
	OrganizationINN     string
	OrganizationAddress string
	Phone               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type AdminProfileModify struct {
	AdminID             *string
	Email               *string
	OrganizationName    *string
	OrganizationINN     *string
	OrganizationAddress *string
	Phone               *string
}

type DriverProfile struct {
	DriverID      string
	Email         string
	FirstName     string
	LastName      string
	LicenseNumber string
	Phone         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type DriverProfileModify struct {
	DriverID      *string
	Email         *string
	FirstName     *string
	LastName      *string
	LicenseNumber *string
	Phone         *string
}
