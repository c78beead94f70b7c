package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"logistic/internal/entities"
	"logistic/internal/repository"
	"logistic/internal/service/chat"
)

const channelColumns = `id, order_id, sender_address, recipient_address, participants, created_at`

const messageColumns = `id, channel_id, sender_id, text, ts`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, channel entities.ChatChannel) (*entities.ChatChannel, error) {
	query := `INSERT INTO chat_channels (id, order_id, sender_address, recipient_address, participants)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + channelColumns

	channelModel, err := scanChannel(r.querier.QueryRow(
		ctx,
		query,
		channel.ID,
		channel.OrderID,
		channel.SenderAddress,
		channel.RecipientAddress,
		channel.Participants,
	))
	if err != nil {
		// уникальность и по id, и по order_id: оба случая значат,
		// что канал для заказа уже создан
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, chat.ErrChatAlreadyExists
		}
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected chat repository create error: %w", err)
	}

	return ToDomainChannel(channelModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.ChatChannel, error) {
	query := `SELECT ` + channelColumns + `
		FROM chat_channels
		WHERE id = $1`

	channelModel, err := scanChannel(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, chat.ErrChatNotFound
		}
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected chat repository getbyid error: %w", err)
	}

	return ToDomainChannel(channelModel), nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*entities.ChatChannel, error) {
	query := `SELECT ` + channelColumns + `
		FROM chat_channels
		WHERE order_id = $1`

	channelModel, err := scanChannel(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, chat.ErrChatNotFound
		}
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected chat repository getbyorderid error: %w", err)
	}

	return ToDomainChannel(channelModel), nil
}

func (r *Repository) ListByParticipant(ctx context.Context, userID string) ([]entities.ChatChannelView, error) {
	query := `SELECT c.id, c.order_id, c.sender_address, c.recipient_address, c.participants, c.created_at,
			o.status
		FROM chat_channels c
		JOIN orders o ON o.id = c.order_id
		WHERE $1 = ANY(c.participants)
		ORDER BY c.created_at DESC, c.id`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected chat repository listbyparticipant error: %w", err)
	}
	defer rows.Close()

	views := make([]entities.ChatChannelView, 0, 8)
	for rows.Next() {
		var viewModel ChannelViewDB
		err = rows.Scan(
			&viewModel.ID,
			&viewModel.OrderID,
			&viewModel.SenderAddress,
			&viewModel.RecipientAddress,
			&viewModel.Participants,
			&viewModel.CreatedAt,
			&viewModel.OrderStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected chat repository scan error: %w", err)
		}
		views = append(views, ToDomainChannelView(&viewModel))
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected chat repository rows error: %w", err)
	}

	return views, nil
}

func (r *Repository) AppendMessage(ctx context.Context, message entities.Message) (*entities.Message, error) {
	query := `INSERT INTO chat_messages (id, channel_id, sender_id, text, ts)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + messageColumns

	messageModel, err := scanMessage(r.querier.QueryRow(
		ctx,
		query,
		message.ID,
		message.ChannelID,
		message.SenderID,
		message.Text,
		message.Timestamp,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, chat.ErrChatNotFound
		}
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected chat repository appendmessage error: %w", err)
	}

	return ToDomainMessage(messageModel), nil
}

func (r *Repository) ListMessages(ctx context.Context, channelID string) ([]entities.Message, error) {
	query := `SELECT ` + messageColumns + `
		FROM chat_messages
		WHERE channel_id = $1
		ORDER BY ts, id`

	rows, err := r.querier.Query(ctx, query, channelID)
	if err != nil {
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: %v", repository.ErrStorageUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected chat repository listmessages error: %w", err)
	}
	defer rows.Close()

	messages := make([]entities.Message, 0, 16)
	for rows.Next() {
		messageModel, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected chat repository scan error: %w", err)
		}
		messages = append(messages, *ToDomainMessage(messageModel))
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected chat repository rows error: %w", err)
	}

	return messages, nil
}

func scanChannel(row pgx.Row) (*ChannelDB, error) {
	var channelModel ChannelDB
	err := row.Scan(
		&channelModel.ID,
		&channelModel.OrderID,
		&channelModel.SenderAddress,
		&channelModel.RecipientAddress,
		&channelModel.Participants,
		&channelModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &channelModel, nil
}

func scanMessage(row pgx.Row) (*MessageDB, error) {
	var messageModel MessageDB
	err := row.Scan(
		&messageModel.ID,
		&messageModel.ChannelID,
		&messageModel.SenderID,
		&messageModel.Text,
		&messageModel.Timestamp,
	)
	if err != nil {
		return nil, err
	}
	return &messageModel, nil
}
