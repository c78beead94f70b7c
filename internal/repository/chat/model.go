package chat

import "time"

type ChannelDB struct {
	ID               string
	OrderID          string
	SenderAddress    string
	RecipientAddress string
	Participants     []string
	CreatedAt        time.Time
}

type ChannelViewDB struct {
	ChannelDB
	OrderStatus string
}

type MessageDB struct {
	ID        string
	ChannelID string
	SenderID  string
	Text      string
	Timestamp time.Time
}
