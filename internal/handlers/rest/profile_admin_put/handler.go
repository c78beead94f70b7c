package profile_admin_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistic/internal/dto"
	"logistic/internal/entities"
	"logistic/internal/repository"
	"logistic/internal/service/profile"
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
	var profileDTO dto.AdminProfileUpdate
	err := json.NewDecoder(r.Body).Decode(&profileDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	profileModify := entities.AdminProfileModify{
		AdminID:             &profileDTO.AdminID,
		Email:               profileDTO.Email,
		OrganizationName:    profileDTO.OrganizationName,
		OrganizationINN:     profileDTO.OrganizationINN,
		OrganizationAddress: profileDTO.OrganizationAddress,
		Phone:               profileDTO.Phone,
	}

	updated, err := h.service.UpdateAdmin(r.Context(), profileModify)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrMissingRequiredFields),
			errors.Is(err, profile.ErrInvalidUserID),
			errors.Is(err, profile.ErrInvalidEmail),
			errors.Is(err, profile.ErrInvalidPhone),
			errors.Is(err, profile.ErrInvalidINN):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, profile.ErrProfileNotFound):
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
	err = json.NewEncoder(w).Encode(dto.FromAdminProfile(updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
