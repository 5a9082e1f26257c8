package http

import (
	"encoding/json"
	"net/http"

	"github.com/Shashika071/crenixline-sub000/internal/domain/advance"
	"github.com/Shashika071/crenixline-sub000/internal/handler/http/response"
	advanceservice "github.com/Shashika071/crenixline-sub000/internal/service/advance"
	"github.com/go-chi/chi/v5"
)

type AdvanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type advanceHandlerImpl struct {
	advanceService *advanceservice.Service
}

func NewAdvanceHandler(advanceService *advanceservice.Service) AdvanceHandler {
	return &advanceHandlerImpl{advanceService: advanceService}
}

// Create implements AdvanceHandler.
func (h *advanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req advance.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	adv, err := h.advanceService.Request(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary advance requested", adv)
}

// List implements AdvanceHandler.
func (h *advanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter advance.Filter
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		advanceStatus := advance.Status(status)
		filter.Status = &advanceStatus
	}
	if month := r.URL.Query().Get("month"); month != "" {
		filter.DeductionMonth = &month
	}

	advances, err := h.advanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, advances)
}

// Get implements AdvanceHandler.
func (h *advanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	adv, err := h.advanceService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, adv)
}

// UpdateStatus implements AdvanceHandler.
func (h *advanceHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req advance.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	adv, err := h.advanceService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance "+string(adv.Status), adv)
}

// Delete implements AdvanceHandler; pending advances only.
func (h *advanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.advanceService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary advance deleted", nil)
}
