package order_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistic/internal/dto"
	"logistic/internal/repository"
	"logistic/internal/service/order"
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
	var releaseDTO dto.OrderReleaseRequest
	err := json.NewDecoder(r.Body).Decode(&releaseDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cancelled, err := h.service.CancelOrder(r.Context(), releaseDTO.OrderID, releaseDTO.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidOrderState),
			errors.Is(err, order.ErrNotAssignedDriver),
			errors.Is(err, order.ErrOrderNotAvailable):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, repository.ErrStorageUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromOrder(cancelled))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
