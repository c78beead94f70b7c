package chat_messages_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"logistic/internal/dto"
	"logistic/internal/repository"
	"logistic/internal/service/chat"
	"logistic/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	channelID := mux.Vars(r)["id"]

	messages, err := h.service.ListMessages(r.Context(), channelID)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrInvalidChannelID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, chat.ErrChatNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, repository.ErrStorageUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.MessageList{Messages: make([]dto.Message, 0, len(messages))}
	for i := range messages {
		response.Messages = append(response.Messages, dto.FromMessage(&messages[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
