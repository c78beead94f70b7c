package chat_message_post

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

	var messageDTO dto.MessageCreate
	err := json.NewDecoder(r.Body).Decode(&messageDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	message, err := h.service.SendMessage(r.Context(), channelID, messageDTO.SenderID, messageDTO.Text)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrInvalidChannelID),
			errors.Is(err, chat.ErrInvalidUserID),
			errors.Is(err, chat.ErrEmptyMessage):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, chat.ErrChatNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, chat.ErrNotParticipant):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, repository.ErrStorageUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromMessage(message))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
