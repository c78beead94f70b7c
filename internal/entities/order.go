package entities

import "time"

// DriverNameUnassigned подставляется в заказ пока водитель не найден.
const DriverNameUnassigned = "Не нашли водителя"

type Order struct {
	ID                 string
	Number             string
	AdminID            string
	CargoType          CargoType
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
	Status             OrderStatusType
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type OrderStatusType string

const (
	OrderNew               OrderStatusType = "new"
	OrderInTransit         OrderStatusType = "in_transit"
	OrderDelivered         OrderStatusType = "delivered"
	OrderCancelledByDriver OrderStatusType = "cancelled_by_driver"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type CargoType string

const (
	CargoNormal    CargoType = "normal"
	CargoFragile   CargoType = "fragile"
	CargoHazardous CargoType = "hazardous"
)

const DefaultCargoType = CargoNormal

func (t CargoType) String() string {
	return string(t)
}

// OrderModify содержит только информационные поля заказа.
// Статус и привязка водителя меняются отдельными операциями жизненного цикла.
type OrderModify struct {
	ID                 *string
	AdminID            *string
	CargoType          *CargoType
	CargoWeight        *string
	DeliveryDeadline   *time.Time
	OrderInfo          *string
	RecipientCompany   *string
	SenderAddress      *string
	RecipientAddress   *string
	SenderLatitude     *float64
	SenderLongitude    *float64
	RecipientLatitude  *float64
	RecipientLongitude *float64
}

// OrderClaim результат успешного взятия заказа водителем.
type OrderClaim struct {
	OrderID    string
	DriverID   string
	DriverName string
	Status     OrderStatusType
	ClaimedAt  time.Time
}
