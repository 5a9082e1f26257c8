package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Shashika071/crenixline-sub000/internal/domain/closure"
	"github.com/Shashika071/crenixline-sub000/internal/handler/http/response"
	"github.com/Shashika071/crenixline-sub000/internal/pkg/validator"
	closureservice "github.com/Shashika071/crenixline-sub000/internal/service/closure"
)

type ClosureHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type closureHandlerImpl struct {
	closureService *closureservice.Service
}

func NewClosureHandler(closureService *closureservice.Service) ClosureHandler {
	return &closureHandlerImpl{closureService: closureService}
}

// Create implements ClosureHandler.
func (h *closureHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req closure.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.closureService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Factory closure registered", created)
}

// List implements ClosureHandler.
func (h *closureHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var from, to *time.Time
	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		parsed, ok := validator.IsValidDate(startDate)
		if !ok {
			response.BadRequest(w, "start_date must be in YYYY-MM-DD format", nil)
			return
		}
		from = &parsed
	}
	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		parsed, ok := validator.IsValidDate(endDate)
		if !ok {
			response.BadRequest(w, "end_date must be in YYYY-MM-DD format", nil)
			return
		}
		to = &parsed
	}

	closures, err := h.closureService.List(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, closures)
}
