package chats_get

import (
	"encoding/json"
	"errors"
	"net/http"

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
	userID := r.URL.Query().Get("user_id")

	channels, err := h.service.ListChats(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrInvalidUserID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, repository.ErrStorageUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ChatList{Chats: make([]dto.ChatChannel, 0, len(channels))}
	for _, channel := range channels {
		response.Chats = append(response.Chats, dto.FromChatChannelView(channel))
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
