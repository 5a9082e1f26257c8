package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/Shashika071/crenixline-sub000/internal/domain/advance"
	"github.com/Shashika071/crenixline-sub000/internal/domain/employee"
	"github.com/Shashika071/crenixline-sub000/internal/domain/leave"
	"github.com/Shashika071/crenixline-sub000/internal/domain/payroll"
	"github.com/Shashika071/crenixline-sub000/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"employee not found", employee.ErrEmployeeNotFound, 404, "NOT_FOUND"},
		{"leave already processed", leave.ErrRequestAlreadyProcessed, 409, "CONFLICT"},
		{"insufficient balance", leave.ErrInsufficientBalance, 400, "BAD_REQUEST"},
		{"zero working days", payroll.ErrZeroWorkingDays, 400, "CALCULATION_ERROR"},
		{"invalid basic salary", payroll.ErrInvalidBasicSalary, 400, "CALCULATION_ERROR"},
		{"payslip immutable", payroll.ErrPayslipImmutable, 409, "IMMUTABLE_STATE"},
		{"payslip not final", payroll.ErrPayslipNotFinal, 409, "IMMUTABLE_STATE"},
		{"finalize conflict", payroll.ErrFinalizeConflict, 409, "CONFLICT"},
		{"advance transition", advance.ErrInvalidTransition, 409, "IMMUTABLE_STATE"},
		{"unknown error", errors.New("boom"), 500, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tc.wantCode, body.Error.Code)
		})
	}
}

func TestHandleErrorValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "month", Message: "month is required in YYYY-MM format"},
	})

	assert.Equal(t, 422, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "month is required in YYYY-MM format", body.Error.Details["month"])
}

func TestHandleErrorWrappedError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.Join(errors.New("settle advances"), payroll.ErrFinalizeConflict))
	assert.Equal(t, 409, rec.Code)
}
