package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"SHAREMYTRIP_WEB/internal/dto"
	"SHAREMYTRIP_WEB/internal/models"
	"SHAREMYTRIP_WEB/internal/repository"
	"SHAREMYTRIP_WEB/internal/utils"
)

// PassengerStore is the persistence used by PassengerAPIHandler
type PassengerStore interface {
	Get(ctx context.Context, id string) (*models.Passenger, error)
	Update(ctx context.Context, p *models.Passenger) error
}

// PassengerAPIHandler serves /user/passengers/{id}
type PassengerAPIHandler struct {
	store  PassengerStore
	logger *zap.Logger
}

func NewPassengerAPIHandler(store PassengerStore, logger *zap.Logger) *PassengerAPIHandler {
	return &PassengerAPIHandler{store: store, logger: logger}
}

// Get godoc
// @Summary      Get passenger profile
// @Description  Returns the profile of one passenger. Empty columns are returned as "".
// @Tags         passengers
// @Produce      json
// @Param        id   path      string  true  "Passenger ID"
// @Success      200  {object}  dto.PassengerProfile
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /user/passengers/{id} [get]
func (h *PassengerAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := passengerID(r)

	p, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Passenger not found")
			return
		}
		h.logger.Error("get passenger", zap.String("passenger_id", id), zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, toProfileDTO(p))
}

// Update godoc
// @Summary      Update passenger profile
// @Description  Overwrites the passenger profile with the submitted fields
// @Tags         passengers
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Passenger ID"
// @Param        payload  body      dto.PassengerProfile  true  "Passenger profile"
// @Success      200      {object}  dto.PassengerUpdateResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /user/passengers/{id} [put]
func (h *PassengerAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := passengerID(r)

	var req dto.PassengerProfile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	birthDate, err := repository.ParseDate(req.DateOfBirth)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", "dateOfBirth must be ISO 8601 date or datetime")
		return
	}

	p := &models.Passenger{
		ID:          id,
		FirstName:   &req.FirstName,
		LastName:    &req.LastName,
		Email:       &req.Email,
		Mobile:      &req.Mobile,
		DateOfBirth: birthDate,
		AadharCard:  &req.AadharCard,
		MiniBio:     &req.MiniBio,
	}
	if err := h.store.Update(r.Context(), p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Passenger not found")
			return
		}
		h.logger.Error("update passenger", zap.String("passenger_id", id), zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	// select โปรไฟล์ล่าสุด (เพื่อสร้าง response)
	updated, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("reload passenger", zap.String("passenger_id", id), zap.Error(err))
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.PassengerUpdateResponse{
		User:    toProfileDTO(updated),
		Message: "Profile updated successfully",
	})
}

// ---------- helpers ----------

// passengerID returns the unescaped {id} path parameter
func passengerID(r *http.Request) string {
	raw := chi.URLParam(r, "id")
	if id, err := url.PathUnescape(raw); err == nil {
		return id
	}
	return raw
}

func toProfileDTO(p *models.Passenger) dto.PassengerProfile {
	out := dto.PassengerProfile{
		FirstName:  deref(p.FirstName),
		LastName:   deref(p.LastName),
		Email:      deref(p.Email),
		Mobile:     deref(p.Mobile),
		AadharCard: deref(p.AadharCard),
		MiniBio:    deref(p.MiniBio),
	}
	if p.DateOfBirth != nil {
		// ส่งเป็น "YYYY-MM-DD"
		out.DateOfBirth = p.DateOfBirth.Format("2006-01-02")
	}
	return out
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
