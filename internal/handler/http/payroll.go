package http

import (
	"encoding/json"
	"net/http"

	"github.com/Shashika071/crenixline-sub000/internal/domain/payroll"
	"github.com/Shashika071/crenixline-sub000/internal/handler/http/response"
	payrollservice "github.com/Shashika071/crenixline-sub000/internal/service/payroll"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	CalculateSalary(w http.ResponseWriter, r *http.Request)
	GeneratePayslip(w http.ResponseWriter, r *http.Request)
	GenerateAllPayslips(w http.ResponseWriter, r *http.Request)
	ListPayslips(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	Finalize(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	DeletePayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService *payrollservice.Service
}

func NewPayrollHandler(payrollService *payrollservice.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// CalculateSalary implements PayrollHandler; read-only, persists nothing.
func (h *payrollHandlerImpl) CalculateSalary(w http.ResponseWriter, r *http.Request) {
	req := payroll.CalculateRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Month:      r.URL.Query().Get("month"),
	}

	calc, err := h.payrollService.Calculate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, calc)
}

// GeneratePayslip implements PayrollHandler; creates or refreshes a draft.
func (h *payrollHandlerImpl) GeneratePayslip(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	slip, err := h.payrollService.GeneratePayslip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip draft generated", slip)
}

// GenerateAllPayslips implements PayrollHandler; one draft per active
// employee, with per-employee failures in the result set.
func (h *payrollHandlerImpl) GenerateAllPayslips(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.GenerateAllPayslips(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip drafts generated", result)
}

// ListPayslips implements PayrollHandler.
func (h *payrollHandlerImpl) ListPayslips(w http.ResponseWriter, r *http.Request) {
	var filter payroll.Filter
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if month := r.URL.Query().Get("month"); month != "" {
		filter.Month = &month
	}
	if status := r.URL.Query().Get("status"); status != "" {
		payslipStatus := payroll.PayslipStatus(status)
		filter.Status = &payslipStatus
	}

	slips, err := h.payrollService.ListPayslips(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, slips)
}

// Report implements PayrollHandler.
func (h *payrollHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		response.BadRequest(w, "month is required in YYYY-MM format", nil)
		return
	}

	summary, err := h.payrollService.Report(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// GetPayslip implements PayrollHandler.
func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	slip, err := h.payrollService.GetPayslip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, slip)
}

// Finalize implements PayrollHandler.
func (h *payrollHandlerImpl) Finalize(w http.ResponseWriter, r *http.Request) {
	var req payroll.FinalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	slip, err := h.payrollService.Finalize(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip finalized", slip)
}

// MarkPaid implements PayrollHandler.
func (h *payrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	slip, err := h.payrollService.MarkPaid(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip marked as paid", slip)
}

// DeletePayslip implements PayrollHandler; drafts only.
func (h *payrollHandlerImpl) DeletePayslip(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.DeleteDraft(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip deleted", nil)
}
