package closure

import (
	"github.com/Shashika071/crenixline-sub000/internal/pkg/validator"
)

type CreateRequest struct {
	Date         string   `json:"date"` // YYYY-MM-DD
	Reason       string   `json:"reason"`
	Description  string   `json:"description,omitempty"`
	AllEmployees *bool    `json:"all_employees,omitempty"` // defaults to true
	EmployeeIDs  []string `json:"employee_ids,omitempty"`
	Status       string   `json:"status,omitempty"` // defaults to Active
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required in YYYY-MM-DD format",
		})
	}

	if !Reason(r.Reason).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must be one of: Holiday, Maintenance, Power Outage, Weather, Other",
		})
	}

	if r.AllEmployees != nil && !*r.AllEmployees && len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_ids",
			Message: "employee_ids is required when the closure is not for all employees",
		})
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, []string{
		string(StatusScheduled), string(StatusActive), string(StatusCompleted),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Scheduled, Active, Completed",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`
	Reason       string   `json:"reason"`
	Description  *string  `json:"description,omitempty"`
	AllEmployees bool     `json:"all_employees"`
	EmployeeIDs  []string `json:"employee_ids,omitempty"`
	Status       string   `json:"status"`
}

func NewResponse(c Closure) Response {
	return Response{
		ID:           c.ID,
		Date:         c.Date.Format("2006-01-02"),
		Reason:       string(c.Reason),
		Description:  c.Description,
		AllEmployees: c.AllEmployees,
		EmployeeIDs:  c.EmployeeIDs,
		Status:       string(c.Status),
	}
}
