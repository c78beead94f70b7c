package order_post

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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModify := entities.OrderModify{
		AdminID:            &orderCreateDTO.AdminID,
		DeliveryDeadline:   &orderCreateDTO.DeliveryDeadline,
		SenderAddress:      &orderCreateDTO.SenderAddress,
		RecipientAddress:   &orderCreateDTO.RecipientAddress,
		SenderLatitude:     orderCreateDTO.SenderLatitude,
		SenderLongitude:    orderCreateDTO.SenderLongitude,
		RecipientLatitude:  orderCreateDTO.RecipientLatitude,
		RecipientLongitude: orderCreateDTO.RecipientLongitude,
	}
	if orderCreateDTO.CargoType != "" {
		cargoType := entities.CargoType(orderCreateDTO.CargoType)
		orderModify.CargoType = &cargoType
	}
	if orderCreateDTO.CargoWeight != "" {
		orderModify.CargoWeight = &orderCreateDTO.CargoWeight
	}
	if orderCreateDTO.OrderInfo != "" {
		orderModify.OrderInfo = &orderCreateDTO.OrderInfo
	}
	if orderCreateDTO.RecipientCompany != "" {
		orderModify.RecipientCompany = &orderCreateDTO.RecipientCompany
	}

	created, err := h.service.CreateOrder(r.Context(), orderModify)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidAdminID),
			errors.Is(err, order.ErrInvalidCargoType),
			errors.Is(err, order.ErrInvalidDeadline),
			errors.Is(err, order.ErrMissingAddress),
			errors.Is(err, order.ErrMissingCoordinates):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, repository.ErrStorageUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromOrder(created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
