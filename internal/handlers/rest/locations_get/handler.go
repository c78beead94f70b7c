package locations_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistic/internal/dto"
	"logistic/internal/repository"
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
	samples, err := h.service.ListLocations(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrStorageUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.LocationList{Locations: make([]dto.DriverLocation, 0, len(samples))}
	for _, sample := range samples {
		response.Locations = append(response.Locations, dto.DriverLocation{
			DriverID:  sample.DriverID,
			Latitude:  sample.Latitude,
			Longitude: sample.Longitude,
			Timestamp: sample.Timestamp,
		})
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
