//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_test
package chat

import (
	"context"

	"logistic/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, channel entities.ChatChannel) (*entities.ChatChannel, error)
	GetByID(ctx context.Context, id string) (*entities.ChatChannel, error)
	GetByOrderID(ctx context.Context, orderID string) (*entities.ChatChannel, error)
	ListByParticipant(ctx context.Context, userID string) ([]entities.ChatChannelView, error)

	AppendMessage(ctx context.Context, message entities.Message) (*entities.Message, error)
	ListMessages(ctx context.Context, channelID string) ([]entities.Message, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
