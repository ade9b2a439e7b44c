package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mawarid-ops/manpower-backend-go/internal/domain/rate"
	"github.com/mawarid-ops/manpower-backend-go/internal/handler/http/response"
)

type RateHandler interface {
	CreateRate(w http.ResponseWriter, r *http.Request)
	ActivateRate(w http.ResponseWriter, r *http.Request)
	ListRates(w http.ResponseWriter, r *http.Request)

	ListMultipliers(w http.ResponseWriter, r *http.Request)
	SetDefaultMultiplier(w http.ResponseWriter, r *http.Request)

	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateStandardHours(w http.ResponseWriter, r *http.Request)
}

type rateHandlerImpl struct {
	rateService rate.RateService
}

func NewRateHandler(rateService rate.RateService) RateHandler {
	return &rateHandlerImpl{
		rateService: rateService,
	}
}

// CreateRate implements RateHandler.
func (h *rateHandlerImpl) CreateRate(w http.ResponseWriter, r *http.Request) {
	var req rate.CreateRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.rateService.CreateRate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Hourly rate created as draft", result)
}

// ActivateRate implements RateHandler.
func (h *rateHandlerImpl) ActivateRate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.rateService.ActivateRate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Hourly rate activated", result)
}

// ListRates implements RateHandler.
func (h *rateHandlerImpl) ListRates(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	result, err := h.rateService.ListRates(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMultipliers implements RateHandler.
func (h *rateHandlerImpl) ListMultipliers(w http.ResponseWriter, r *http.Request) {
	result, err := h.rateService.ListMultipliers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SetDefaultMultiplier implements RateHandler.
func (h *rateHandlerImpl) SetDefaultMultiplier(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.rateService.SetDefaultMultiplier(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Default multiplier updated", result)
}

// GetSettings implements RateHandler.
func (h *rateHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.rateService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateStandardHours implements RateHandler.
func (h *rateHandlerImpl) UpdateStandardHours(w http.ResponseWriter, r *http.Request) {
	var req rate.UpdateStandardHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.rateService.UpdateStandardHours(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Standard monthly hours updated", result)
}
