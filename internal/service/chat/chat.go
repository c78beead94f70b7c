package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"logistic/internal/entities"
)

type Chat struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Chat {
	return &Chat{
		repository: repository,
		txManager:  txManager,
	}
}

// ProvisionChat гарантирует ровно один канал на заказ. Идентификатор канала
// детерминированно выводится из id заказа, поэтому повторный вызов (гонка
// admin- и driver-слушателей) упирается в уникальный ключ и возвращает уже
// существующий канал вместо дубликата.
func (c *Chat) ProvisionChat(ctx context.Context, order *entities.Order) (*entities.ChatChannel, error) {
	if order == nil || strings.TrimSpace(order.ID) == "" {
		return nil, ErrMissingRequiredFields
	}
	if strings.TrimSpace(order.DriverID) == "" {
		return nil, ErrNoDriverAttached
	}

	channel := entities.ChatChannel{
		ID:               ChannelIDForOrder(order.ID),
		OrderID:          order.ID,
		SenderAddress:    order.SenderAddress,
		RecipientAddress: order.RecipientAddress,
		Participants:     []string{order.AdminID, order.DriverID},
	}

	created, err := c.repository.Create(ctx, channel)
	if err != nil {
		if errors.Is(err, ErrChatAlreadyExists) {
			existing, getErr := c.repository.GetByOrderID(ctx, order.ID)
			if getErr != nil {
				return nil, fmt.Errorf("get existing chat: %w", getErr)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("create chat: %w", err)
	}
	return created, nil
}

func (c *Chat) GetChatByOrder(ctx context.Context, orderID string) (*entities.ChatChannel, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrMissingRequiredFields
	}

	channel, err := c.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get chat by order: %w", err)
	}
	return channel, nil
}

// ListChats возвращает каналы пользователя вместе с текущим статусом заказа,
// чтобы клиент мог разложить их на активные и завершённые.
func (c *Chat) ListChats(ctx context.Context, userID string) ([]entities.ChatChannelView, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidUserID
	}

	channels, err := c.repository.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	return channels, nil
}

// SendMessage дописывает сообщение в канал. Сообщения неизменяемы.
func (c *Chat) SendMessage(ctx context.Context, channelID, senderID, text string) (*entities.Message, error) {
	if strings.TrimSpace(channelID) == "" {
		return nil, ErrInvalidChannelID
	}
	if strings.TrimSpace(senderID) == "" {
		return nil, ErrInvalidUserID
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	message := entities.Message{}
	err := c.txManager.Do(ctx, func(ctx context.Context) error {
		channel, err := c.repository.GetByID(ctx, channelID)
		if err != nil {
			return fmt.Errorf("get chat: %w", err)
		}

		if !isParticipant(channel, senderID) {
			return ErrNotParticipant
		}

		appended, err := c.repository.AppendMessage(ctx, entities.Message{
			ID:        uuid.NewString(),
			ChannelID: channel.ID,
			SenderID:  senderID,
			Text:      text,
			Timestamp: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("append message: %w", err)
		}

		message = *appended
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// ListMessages возвращает сообщения по возрастанию времени.
func (c *Chat) ListMessages(ctx context.Context, channelID string) ([]entities.Message, error) {
	if strings.TrimSpace(channelID) == "" {
		return nil, ErrInvalidChannelID
	}

	messages, err := c.repository.ListMessages(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

// ChannelIDForOrder строит детерминированный id канала для заказа.
func ChannelIDForOrder(orderID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("chat:"+orderID)).String()
}

func isParticipant(channel *entities.ChatChannel, userID string) bool {
	for _, p := range channel.Participants {
		if p == userID {
			return true
		}
	}
	return false
}
