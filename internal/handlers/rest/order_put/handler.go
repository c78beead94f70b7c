package order_put

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
	var orderUpdateDTO dto.OrderUpdate
	err := json.NewDecoder(r.Body).Decode(&orderUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModify := entities.OrderModify{
		ID:                 &orderUpdateDTO.ID,
		CargoWeight:        orderUpdateDTO.CargoWeight,
		DeliveryDeadline:   orderUpdateDTO.DeliveryDeadline,
		OrderInfo:          orderUpdateDTO.OrderInfo,
		RecipientCompany:   orderUpdateDTO.RecipientCompany,
		SenderAddress:      orderUpdateDTO.SenderAddress,
		RecipientAddress:   orderUpdateDTO.RecipientAddress,
		SenderLatitude:     orderUpdateDTO.SenderLatitude,
		SenderLongitude:    orderUpdateDTO.SenderLongitude,
		RecipientLatitude:  orderUpdateDTO.RecipientLatitude,
		RecipientLongitude: orderUpdateDTO.RecipientLongitude,
	}
	if orderUpdateDTO.CargoType != nil {
		cargoType := entities.CargoType(*orderUpdateDTO.CargoType)
		orderModify.CargoType = &cargoType
	}

	updated, err := h.service.UpdateOrder(r.Context(), orderModify)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidCargoType),
			errors.Is(err, order.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, repository.ErrStorageUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromOrder(updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
