package order_claim_post

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
	var claimDTO dto.OrderClaimRequest
	err := json.NewDecoder(r.Body).Decode(&claimDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	claim, err := h.service.ClaimOrder(r.Context(), claimDTO.OrderID, claimDTO.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidDriverID),
			errors.Is(err, order.ErrDriverNameUnavailable):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrOrderNotAvailable):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, repository.ErrStorageUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderClaimResponse{
		OrderID:    claim.OrderID,
		DriverID:   claim.DriverID,
		DriverName: claim.DriverName,
		Status:     claim.Status.String(),
		ClaimedAt:  claim.ClaimedAt,
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
