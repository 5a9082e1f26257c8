package payroll

import "errors"

var (
	ErrPayslipNotFound    = errors.New("payslip not found")
	ErrPayslipImmutable   = errors.New("payslip is finalized and can no longer be modified")
	ErrPayslipNotFinal    = errors.New("payslip must be finalized before it can be paid")
	ErrFinalizeConflict   = errors.New("payslip was already finalized")
	ErrZeroWorkingDays    = errors.New("no working days in the requested month")
	ErrInvalidBasicSalary = errors.New("employee has no valid basic salary")
)
