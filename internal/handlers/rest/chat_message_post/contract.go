//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_message_post_test
package chat_message_post

import (
	"context"

	"logistic/internal/entities"
	"logistic/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SendMessage(ctx context.Context, channelID, senderID, text string) (*entities.Message, error)
}
