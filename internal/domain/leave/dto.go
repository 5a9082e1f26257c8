package leave

import (
	"time"

	"github.com/Shashika071/crenixline-sub000/internal/pkg/validator"
)

type ApplyRequest struct {
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"` // medical | casual | maternity
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date,omitempty"` // ignored for maternity
	Reason     string `json:"reason"`
	Notes      string `json:"notes,omitempty"`
	// MedicalComplication extends maternity leave to 84 days.
	MedicalComplication bool `json:"medical_complication,omitempty"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !RequestType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: medical, casual, maternity",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required in YYYY-MM-DD format",
		})
	}

	if RequestType(r.Type) != RequestMaternity {
		end, endOK := validator.IsValidDate(r.EndDate)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date is required in YYYY-MM-DD format",
			})
		} else if startOK && end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequestStatus struct {
	Status     string `json:"status"` // Approved | Rejected
	AdminNotes string `json:"admin_notes,omitempty"`
}

func (r *UpdateRequestStatus) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(RequestApproved), string(RequestRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Approved or Rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Type         string  `json:"type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Reason       string  `json:"reason"`
	Notes        *string `json:"notes,omitempty"`
	Status       string  `json:"status"`
	AppliedAt    string  `json:"applied_at"`
	ProcessedAt  *string `json:"processed_at,omitempty"`
	AdminNotes   *string `json:"admin_notes,omitempty"`
}

func NewRequestResponse(req Request) RequestResponse {
	resp := RequestResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Type:         string(req.Type),
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		Days:         req.Days,
		Reason:       req.Reason,
		Notes:        req.Notes,
		Status:       string(req.Status),
		AppliedAt:    req.AppliedAt.Format(time.RFC3339),
		AdminNotes:   req.AdminNotes,
	}
	if req.ProcessedAt != nil {
		processed := req.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &processed
	}
	return resp
}

// RequestFilter narrows leave request listings.
type RequestFilter struct {
	EmployeeID *string
	Status     *RequestStatus
}
