package order

import "time"

type OrderDB struct {
	ID                 string
	Number             string
	AdminID            string
	CargoType          string
	CargoWeight        string
	DeliveryDeadline   time.Time
	OrderInfo          string
	RecipientCompany   string
	SenderAddress      string
	RecipientAddress   string
	SenderLatitude     float64
	SenderLongitude    float64
	RecipientLatitude  float64
	RecipientLongitude float64
	DriverID           string
	DriverName         string
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
