package response

import (
	"errors"
	"net/http"

	"github.com/Shashika071/crenixline-sub000/internal/domain/advance"
	"github.com/Shashika071/crenixline-sub000/internal/domain/attendance"
	"github.com/Shashika071/crenixline-sub000/internal/domain/closure"
	"github.com/Shashika071/crenixline-sub000/internal/domain/employee"
	"github.com/Shashika071/crenixline-sub000/internal/domain/leave"
	"github.com/Shashika071/crenixline-sub000/internal/domain/payroll"
	"github.com/Shashika071/crenixline-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee directory
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance ledger
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Leave
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrMaternityNotApplicable):
		BadRequest(w, "Maternity leave is not applicable for this employee", nil)

	// Closures
	case errors.Is(err, closure.ErrClosureNotFound):
		NotFound(w, "Factory closure not found")

	// Payroll
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrZeroWorkingDays):
		CalculationError(w, "No working days in the requested month")
	case errors.Is(err, payroll.ErrInvalidBasicSalary):
		CalculationError(w, "Employee has no valid basic salary")
	case errors.Is(err, payroll.ErrPayslipImmutable):
		ImmutableState(w, "Payslip is finalized and can no longer be modified")
	case errors.Is(err, payroll.ErrPayslipNotFinal):
		ImmutableState(w, "Payslip must be finalized before it can be paid")
	case errors.Is(err, payroll.ErrFinalizeConflict):
		Conflict(w, "Payslip was already finalized")

	// Advances
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Salary advance not found")
	case errors.Is(err, advance.ErrInvalidTransition):
		ImmutableState(w, "Advance status transition not allowed")
	case errors.Is(err, advance.ErrAdvanceNotPending):
		ImmutableState(w, "Only pending advances can be deleted")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
