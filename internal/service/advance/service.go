package advance

import (
	"context"

	"github.com/Shashika071/crenixline-sub000/internal/domain/advance"
	"github.com/Shashika071/crenixline-sub000/internal/domain/employee"
)

type Service struct {
	employees employee.Repository
	advances  advance.Repository
}

func NewService(employees employee.Repository, advances advance.Repository) *Service {
	return &Service{employees: employees, advances: advances}
}

func (s *Service) Request(ctx context.Context, req advance.CreateRequest) (advance.Response, error) {
	if err := req.Validate(); err != nil {
		return advance.Response{}, err
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return advance.Response{}, err
	}

	adv := advance.Advance{
		EmployeeID:     emp.ID,
		Amount:         req.Amount,
		Reason:         req.Reason,
		DeductionMonth: req.DeductionMonth,
		Status:         advance.StatusPending,
	}
	if err := s.advances.Create(ctx, &adv); err != nil {
		return advance.Response{}, err
	}
	adv.EmployeeName = &emp.Name

	return advance.NewResponse(adv), nil
}

func (s *Service) Get(ctx context.Context, id string) (advance.Response, error) {
	adv, err := s.advances.GetByID(ctx, id)
	if err != nil {
		return advance.Response{}, err
	}
	return advance.NewResponse(*adv), nil
}

func (s *Service) List(ctx context.Context, filter advance.Filter) ([]advance.Response, error) {
	advances, err := s.advances.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]advance.Response, 0, len(advances))
	for _, adv := range advances {
		responses = append(responses, advance.NewResponse(adv))
	}
	return responses, nil
}

// UpdateStatus runs the pending -> approved|rejected transition. Deduction
// happens through payslip finalization, never through this endpoint.
func (s *Service) UpdateStatus(ctx context.Context, id string, req advance.UpdateStatusRequest) (advance.Response, error) {
	if err := req.Validate(); err != nil {
		return advance.Response{}, err
	}

	current, err := s.advances.GetByID(ctx, id)
	if err != nil {
		return advance.Response{}, err
	}
	if !current.Status.CanTransitionTo(req.Status) {
		return advance.Response{}, advance.ErrInvalidTransition
	}

	var approvedBy *string
	if req.ApprovedBy != "" {
		approvedBy = &req.ApprovedBy
	}

	updated, err := s.advances.UpdateStatus(ctx, id, req.Status, approvedBy)
	if err != nil {
		return advance.Response{}, err
	}

	return advance.NewResponse(*updated), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.advances.DeletePending(ctx, id)
}
