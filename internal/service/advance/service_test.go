package advance

import (
	"context"
	"fmt"
	"testing"

	"github.com/Shashika071/crenixline-sub000/internal/domain/advance"
	"github.com/Shashika071/crenixline-sub000/internal/domain/employee"
	"github.com/Shashika071/crenixline-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const empID = "f2d9f3a8-1a9f-4c49-9df2-1f6f6f7c2a10"

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

type fakeAdvanceRepo struct {
	advances map[string]advance.Advance
	sequence int
}

func (r *fakeAdvanceRepo) Create(_ context.Context, a *advance.Advance) error {
	r.sequence++
	a.ID = fmt.Sprintf("adv-%d", r.sequence)
	r.advances[a.ID] = *a
	return nil
}

func (r *fakeAdvanceRepo) GetByID(_ context.Context, id string) (*advance.Advance, error) {
	a, ok := r.advances[id]
	if !ok {
		return nil, advance.ErrAdvanceNotFound
	}
	return &a, nil
}

func (r *fakeAdvanceRepo) List(_ context.Context, filter advance.Filter) ([]advance.Advance, error) {
	var out []advance.Advance
	for _, a := range r.advances {
		if filter.EmployeeID != nil && a.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.DeductionMonth != nil && a.DeductionMonth != *filter.DeductionMonth {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAdvanceRepo) UpdateStatus(_ context.Context, id string, status advance.Status, approvedBy *string) (*advance.Advance, error) {
	a, ok := r.advances[id]
	if !ok {
		return nil, advance.ErrAdvanceNotFound
	}
	if a.Status != advance.StatusPending {
		return nil, advance.ErrInvalidTransition
	}
	a.Status = status
	a.ApprovedBy = approvedBy
	r.advances[id] = a
	return &a, nil
}

func (r *fakeAdvanceRepo) ListForDeduction(_ context.Context, employeeID, month string) ([]advance.Advance, error) {
	var out []advance.Advance
	for _, a := range r.advances {
		if a.EmployeeID != employeeID || a.DeductionMonth != month {
			continue
		}
		if a.Status == advance.StatusApproved || a.Status == advance.StatusDeducted {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAdvanceRepo) MarkDeducted(_ context.Context, ids []string) error {
	for _, id := range ids {
		if a, ok := r.advances[id]; ok && a.Status == advance.StatusApproved {
			a.Status = advance.StatusDeducted
			r.advances[id] = a
		}
	}
	return nil
}

func (r *fakeAdvanceRepo) RevertDeducted(_ context.Context, ids []string) error {
	for _, id := range ids {
		if a, ok := r.advances[id]; ok && a.Status == advance.StatusDeducted {
			a.Status = advance.StatusApproved
			r.advances[id] = a
		}
	}
	return nil
}

func (r *fakeAdvanceRepo) DeletePending(_ context.Context, id string) error {
	a, ok := r.advances[id]
	if !ok {
		return advance.ErrAdvanceNotFound
	}
	if a.Status != advance.StatusPending {
		return advance.ErrAdvanceNotPending
	}
	delete(r.advances, id)
	return nil
}

func newTestService() (*Service, *fakeAdvanceRepo) {
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		empID: {
			ID:          empID,
			Name:        "Kasun Silva",
			BasicSalary: decimal.NewFromInt(26000),
			Active:      true,
		},
	}}
	advances := &fakeAdvanceRepo{advances: make(map[string]advance.Advance)}
	return NewService(employees, advances), advances
}

func TestRequestCreatesPendingAdvance(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Request(context.Background(), advance.CreateRequest{
		EmployeeID:     empID,
		Amount:         decimal.NewFromInt(5000),
		Reason:         "medical bills",
		DeductionMonth: "2025-08",
	})
	require.NoError(t, err)

	assert.Equal(t, advance.StatusPending, resp.Status)
	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(5000)))
	require.NotNil(t, resp.EmployeeName)
	assert.Equal(t, "Kasun Silva", *resp.EmployeeName)
}

func TestRequestValidation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Request(context.Background(), advance.CreateRequest{
		EmployeeID:     "not-a-uuid",
		Amount:         decimal.NewFromInt(-100),
		DeductionMonth: "August 2025",
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 3)
}

func TestUpdateStatusApprove(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Request(ctx, advance.CreateRequest{
		EmployeeID:     empID,
		Amount:         decimal.NewFromInt(5000),
		Reason:         "medical bills",
		DeductionMonth: "2025-08",
	})
	require.NoError(t, err)

	approved, err := svc.UpdateStatus(ctx, created.ID, advance.UpdateStatusRequest{
		Status:     advance.StatusApproved,
		ApprovedBy: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, advance.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "admin", *approved.ApprovedBy)
}

func TestUpdateStatusRejectsProcessedAdvance(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Request(ctx, advance.CreateRequest{
		EmployeeID:     empID,
		Amount:         decimal.NewFromInt(5000),
		Reason:         "medical bills",
		DeductionMonth: "2025-08",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.ID, advance.UpdateStatusRequest{
		Status:     advance.StatusApproved,
		ApprovedBy: "admin",
	})
	require.NoError(t, err)

	// A decided advance cannot be re-decided.
	_, err = svc.UpdateStatus(ctx, created.ID, advance.UpdateStatusRequest{Status: advance.StatusRejected})
	assert.ErrorIs(t, err, advance.ErrInvalidTransition)
}

func TestUpdateStatusRequiresApprover(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Request(ctx, advance.CreateRequest{
		EmployeeID:     empID,
		Amount:         decimal.NewFromInt(5000),
		Reason:         "medical bills",
		DeductionMonth: "2025-08",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.ID, advance.UpdateStatusRequest{Status: advance.StatusApproved})
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
}

func TestDeletePendingOnly(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.Request(ctx, advance.CreateRequest{
		EmployeeID:     empID,
		Amount:         decimal.NewFromInt(5000),
		Reason:         "medical bills",
		DeductionMonth: "2025-08",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Empty(t, repo.advances)

	second, err := svc.Request(ctx, advance.CreateRequest{
		EmployeeID:     empID,
		Amount:         decimal.NewFromInt(3000),
		Reason:         "school fees",
		DeductionMonth: "2025-09",
	})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, second.ID, advance.UpdateStatusRequest{
		Status:     advance.StatusApproved,
		ApprovedBy: "admin",
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, second.ID)
	assert.ErrorIs(t, err, advance.ErrAdvanceNotPending)
}
