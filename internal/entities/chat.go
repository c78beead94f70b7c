package entities

import "time"

// ChatChannel держит один канал на заказ. Адреса снимаются с заказа в момент
// создания и дальше не синхронизируются.
type ChatChannel struct {
	ID               string
	OrderID          string
	SenderAddress    string
	RecipientAddress string
	Participants     []string
	CreatedAt        time.Time
}

// ChatChannelView отдаёт канал вместе с текущим статусом заказа.
// Разделение на активные/завершённые вычисляется на чтении, не хранится.
type ChatChannelView struct {
	ChatChannel
	OrderStatus OrderStatusType
}

func (v ChatChannelView) Completed() bool {
	return v.OrderStatus == OrderDelivered
}

type Message struct {
	ID        string
	ChannelID string
	SenderID  string
	Text      string
	Timestamp time.Time
}
