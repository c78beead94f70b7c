// Package dto содержит схемы запросов и ответов REST API.
package dto

import "time"

type OrderCreate struct {
	AdminID            string    `json:"admin_id"`
	CargoType          string    `json:"cargo_type,omitempty"`
	CargoWeight        string    `json:"cargo_weight,omitempty"`
	DeliveryDeadline   time.Time `json:"delivery_deadline"`
	OrderInfo          string    `json:"order_info,omitempty"`
	RecipientCompany   string    `json:"recipient_company,omitempty"`
	SenderAddress      string    `json:"sender_address"`
	RecipientAddress   string    `json:"recipient_address"`
	SenderLatitude     *float64  `json:"sender_latitude"`
	SenderLongitude    *float64  `json:"sender_longitude"`
	RecipientLatitude  *float64  `json:"recipient_latitude"`
	RecipientLongitude *float64  `json:"recipient_longitude"`
}

type OrderUpdate struct {
	ID                 string     `json:"id"`
	CargoType          *string    `json:"cargo_type,omitempty"`
	CargoWeight        *string    `json:"cargo_weight,omitempty"`
	DeliveryDeadline   *time.Time `json:"delivery_deadline,omitempty"`
	OrderInfo          *string    `json:"order_info,omitempty"`
	RecipientCompany   *string    `json:"recipient_company,omitempty"`
	SenderAddress      *string    `json:"sender_address,omitempty"`
	RecipientAddress   *string    `json:"recipient_address,omitempty"`
	SenderLatitude     *float64   `json:"sender_latitude,omitempty"`
	SenderLongitude    *float64   `json:"sender_longitude,omitempty"`
	RecipientLatitude  *float64   `json:"recipient_latitude,omitempty"`
	RecipientLongitude *float64   `json:"recipient_longitude,omitempty"`
}

type Order struct {
	ID                 string    `json:"id"`
	Number             string    `json:"number"`
	AdminID            string    `json:"admin_id"`
	CargoType          string    `json:"cargo_type"`
	CargoWeight        string    `json:"cargo_weight,omitempty"`
	DeliveryDeadline   time.Time `json:"delivery_deadline"`
	OrderInfo          string    `json:"order_info,omitempty"`
	RecipientCompany   string    `json:"recipient_company,omitempty"`
	SenderAddress      string    `json:"sender_address"`
	RecipientAddress   string    `json:"recipient_address"`
	SenderLatitude     float64   `json:"sender_latitude"`
	SenderLongitude    float64   `json:"sender_longitude"`
	RecipientLatitude  float64   `json:"recipient_latitude"`
	RecipientLongitude float64   `json:"recipient_longitude"`
	DriverID           string    `json:"driver_id,omitempty"`
	DriverName         string    `json:"driver_name"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
}

type OrderClaimRequest struct {
	OrderID  string `json:"order_id"`
	DriverID string `json:"driver_id"`
}

type OrderClaimResponse struct {
	OrderID    string    `json:"order_id"`
	DriverID   string    `json:"driver_id"`
	DriverName string    `json:"driver_name"`
	Status     string    `json:"status"`
	ClaimedAt  time.Time `json:"claimed_at"`
}

type OrderReleaseRequest struct {
	OrderID  string `json:"order_id"`
	DriverID string `json:"driver_id"`
}

type ChatChannel struct {
	ID               string    `json:"id"`
	OrderID          string    `json:"order_id"`
	SenderAddress    string    `json:"sender_address"`
	RecipientAddress string    `json:"recipient_address"`
	Participants     []string  `json:"participants"`
	Completed        bool      `json:"completed"`
	CreatedAt        time.Time `json:"created_at"`
}

type ChatList struct {
	Chats []ChatChannel `json:"chats"`
}

type MessageCreate struct {
	SenderID string `json:"sender_id"`
	Text     string `json:"text"`
}

type Message struct {
	ID        string    `json:"id"`
	ChannelID string    `json:"channel_id"`
	SenderID  string    `json:"sender_id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type MessageList struct {
	Messages []Message `json:"messages"`
}

type LocationPublish struct {
	DriverID  string     `json:"driver_id"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type DriverLocation struct {
	DriverID  string    `json:"driver_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

type LocationList struct {
	Locations []DriverLocation `json:"locations"`
}

type AdminProfileCreate struct {
	AdminID             string `json:"admin_id"`
	Email               string `json:"email"`
	OrganizationName    string `json:"organization_name"`
	OrganizationINN     string `json:"organization_inn"`
	OrganizationAddress string `json:"organization_address"`
	Phone               string `json:"phone"`
}

type AdminProfileUpdate struct {
	AdminID             string  `json:"admin_id"`
	Email               *string `json:"email,omitempty"`
	OrganizationName    *string `json:"organization_name,omitempty"`
	OrganizationINN     *string `json:"organization_inn,omitempty"`
	OrganizationAddress *string `json:"organization_address,omitempty"`
	Phone               *string `json:"phone,omitempty"`
}

type AdminProfile struct {
	AdminID             string    `json:"admin_id"`
	Email               string    `json:"email"`
	OrganizationName    string    `json:"organization_name"`
	OrganizationINN     string    `json:"organization_inn"`
	OrganizationAddress string    `json:"organization_address"`
	Phone               string    `json:"phone"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type DriverProfileCreate struct {
	DriverID      string `json:"driver_id"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	LicenseNumber string `json:"license_number"`
	Phone         string `json:"phone"`
}

type DriverProfileUpdate struct {
	DriverID      string  `json:"driver_id"`
	Email         *string `json:"email,omitempty"`
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	LicenseNumber *string `json:"license_number,omitempty"`
	Phone         *string `json:"phone,omitempty"`
}

type DriverProfile struct {
	DriverID      string    `json:"driver_id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	LicenseNumber string    `json:"license_number"`
	Phone         string    `json:"phone"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
