package chat

import "logistic/internal/entities"

func ToDomainChannel(c *ChannelDB) *entities.ChatChannel {
	if c == nil {
		return nil
	}
	return &entities.ChatChannel{
		ID:               c.ID,
		OrderID:          c.OrderID,
		SenderAddress:    c.SenderAddress,
		RecipientAddress: c.RecipientAddress,
		Participants:     c.Participants,
		CreatedAt:        c.CreatedAt,
	}
}

func ToDomainChannelView(c *ChannelViewDB) entities.ChatChannelView {
	return entities.ChatChannelView{
		ChatChannel: *ToDomainChannel(&c.ChannelDB),
		OrderStatus: entities.OrderStatusType(c.OrderStatus),
	}
}

func ToDomainMessage(m *MessageDB) *entities.Message {
	if m == nil {
		return nil
	}
	return &entities.Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		SenderID:  m.SenderID,
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}
