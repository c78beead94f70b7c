package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistic/internal/dto"
	"logistic/internal/entities"
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
	status := entities.OrderStatusType(r.URL.Query().Get("status"))
	driverID := r.URL.Query().Get("driver_id")

	var (
		orders []entities.Order
		err    error
	)
	if driverID != "" {
		orders, err = h.service.ListOrdersByDriver(r.Context(), driverID, status)
	} else {
		orders, err = h.service.ListOrdersByStatus(r.Context(), status)
	}
	if err != nil {
		switch {
		case errors.Is(err, order.ErrUndefinedStatus),
			errors.Is(err, order.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, repository.ErrStorageUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromOrderList(orders))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
