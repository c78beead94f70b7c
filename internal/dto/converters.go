package dto

import "logistic/internal/entities"

func FromOrder(o *entities.Order) Order {
	return Order{
		ID:                 o.ID,
		Number:             o.Number,
		AdminID:            o.AdminID,
		CargoType:          o.CargoType.String(),
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
		Status:             o.Status.String(),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func FromOrderList(orders []entities.Order) OrderList {
	list := OrderList{Orders: make([]Order, 0, len(orders))}
	for i := range orders {
		list.Orders = append(list.Orders, FromOrder(&orders[i]))
	}
	return list
}

func FromChatChannelView(v entities.ChatChannelView) ChatChannel {
	return ChatChannel{
		ID:               v.ID,
		OrderID:          v.OrderID,
		SenderAddress:    v.SenderAddress,
		RecipientAddress: v.RecipientAddress,
		Participants:     v.Participants,
		Completed:        v.Completed(),
		CreatedAt:        v.CreatedAt,
	}
}

func FromMessage(m *entities.Message) Message {
	return Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		SenderID:  m.SenderID,
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}

func FromAdminProfile(p *entities.AdminProfile) AdminProfile {
	return AdminProfile{
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

func FromDriverProfile(p *entities.DriverProfile) DriverProfile {
	return DriverProfile{
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
