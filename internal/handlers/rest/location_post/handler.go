package location_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistic/internal/dto"
	"logistic/internal/entities"
	"logistic/internal/repository"
	"logistic/internal/service/location"
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
	var locationDTO dto.LocationPublish
	err := json.NewDecoder(r.Body).Decode(&locationDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sample := entities.DriverLocation{
		DriverID:  locationDTO.DriverID,
		Latitude:  locationDTO.Latitude,
		Longitude: locationDTO.Longitude,
	}
	if locationDTO.Timestamp != nil {
		sample.Timestamp = *locationDTO.Timestamp
	}

	err = h.service.PublishLocation(r.Context(), sample)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrInvalidDriverID),
			errors.Is(err, location.ErrInvalidCoordinates):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, repository.ErrStorageUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
