package order

import "logistic/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:                 o.ID,
		Number:             o.Number,
		AdminID:            o.AdminID,
		CargoType:          entities.CargoType(o.CargoType),
		CargoWeight:        o.CargoWeight,
		DeliveryDeadline:   o.DeliveryDeadline,
		OrderInfo:          o.OrderInfo,
		RecipientCompany:   o.RecipientCompany,
		SenderAddress:      o.SenderAddress,
		RecipientAddress:   o.RecipientAddress,
		SenderLatitude:     o.SenderLatitude,
		SenderLongitude:    o.SenderLongitude,
		RecipientLatitude:  o.RecipientLatitude,
		RecipientLongitude: o.RecipientLongitude,
		DriverID:           o.DriverID,
		DriverName:         o.DriverName,
		Status:             entities.OrderStatusType(o.Status),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func ToDomainList(models []OrderDB) []entities.Order {
	orders := make([]entities.Order, 0, len(models))
	for i := range models {
		orders = append(orders, *ToDomain(&models[i]))
	}
	return orders
}
