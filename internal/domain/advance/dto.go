package advance

import (
	"time"

	"github.com/Shashika071/crenixline-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	EmployeeID     string          `json:"employee_id"`
	Amount         decimal.Decimal `json:"amount"`
	Reason         string          `json:"reason"`
	DeductionMonth string          `json:"deduction_month"` // YYYY-MM
}

func (r CreateRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid UUID"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be greater than zero"})
	}
	if _, ok := validator.IsValidMonth(r.DeductionMonth); !ok {
		errs = append(errs, validator.ValidationError{Field: "deduction_month", Message: "deduction_month is required in YYYY-MM format"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	Status     Status `json:"status"`
	ApprovedBy string `json:"approved_by"`
}

func (r UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Status != StatusApproved && r.Status != StatusRejected {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be approved or rejected"})
	}
	if r.Status == StatusApproved && validator.IsEmpty(r.ApprovedBy) {
		errs = append(errs, validator.ValidationError{Field: "approved_by", Message: "approved_by is required when approving"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	EmployeeID     *string
	Status         *Status
	DeductionMonth *string
}

type Response struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	Amount         decimal.Decimal `json:"amount"`
	Reason         string          `json:"reason,omitempty"`
	DeductionMonth string          `json:"deduction_month"`
	Status         Status          `json:"status"`
	ApprovedBy     *string         `json:"approved_by,omitempty"`
	ApprovedAt     *time.Time      `json:"approved_at,omitempty"`
	EmployeeName   *string         `json:"employee_name,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func NewResponse(a Advance) Response {
	return Response{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		Amount:         a.Amount,
		Reason:         a.Reason,
		DeductionMonth: a.DeductionMonth,
		Status:         a.Status,
		ApprovedBy:     a.ApprovedBy,
		ApprovedAt:     a.ApprovedAt,
		EmployeeName:   a.EmployeeName,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
