package leave

import (
	"context"
	"strings"
	"time"

	"github.com/Shashika071/crenixline-sub000/internal/domain/attendance"
	"github.com/Shashika071/crenixline-sub000/internal/domain/employee"
	"github.com/Shashika071/crenixline-sub000/internal/domain/leave"
	"github.com/Shashika071/crenixline-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type Service struct {
	employees employee.Repository
	ledger    attendance.Repository
	requests  leave.RequestRepository
	now       func() time.Time
}

func NewService(employees employee.Repository, ledger attendance.Repository, requests leave.RequestRepository) *Service {
	return &Service{
		employees: employees,
		ledger:    ledger,
		requests:  requests,
		now:       time.Now,
	}
}

// Apply registers a leave application. Requests are a registry for approval
// workflow; actual quota consumption happens when the days are marked in the
// attendance ledger.
func (s *Service) Apply(ctx context.Context, req leave.ApplyRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	reqType := leave.RequestType(req.Type)
	start, _ := validator.IsValidDate(req.StartDate)

	var end time.Time
	var days int
	switch reqType {
	case leave.RequestMaternity:
		if !strings.EqualFold(emp.Gender, "female") {
			return leave.RequestResponse{}, leave.ErrMaternityNotApplicable
		}
		days = leave.MaternityDays
		if req.MedicalComplication {
			days = leave.MaternityExtendedDays
		}
		end = start.AddDate(0, 0, days-1)
	default:
		end, _ = validator.IsValidDate(req.EndDate)
		days = int(end.Sub(start).Hours()/24) + 1

		balances, err := s.balancesFor(ctx, emp, start, nil)
		if err != nil {
			return leave.RequestResponse{}, err
		}
		remaining := balances.Medical.Remaining
		if reqType == leave.RequestCasual {
			remaining = balances.Casual.Remaining
		}
		if remaining.LessThan(decimal.NewFromInt(int64(days))) {
			return leave.RequestResponse{}, leave.ErrInsufficientBalance
		}
	}

	request := leave.Request{
		EmployeeID: emp.ID,
		Type:       reqType,
		StartDate:  start,
		EndDate:    end,
		Days:       days,
		Reason:     req.Reason,
		Status:     leave.RequestPending,
		AppliedAt:  s.now().UTC(),
	}
	if req.Notes != "" {
		request.Notes = &req.Notes
	}

	created, err := s.requests.Create(ctx, request)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return leave.NewRequestResponse(created), nil
}

func (s *Service) GetRequest(ctx context.Context, id string) (leave.RequestResponse, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	return leave.NewRequestResponse(req), nil
}

func (s *Service) ListRequests(ctx context.Context, filter leave.RequestFilter) ([]leave.RequestResponse, error) {
	requests, err := s.requests.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.NewRequestResponse(req))
	}
	return responses, nil
}

// UpdateRequestStatus approves or rejects a pending request. Processed
// requests are frozen.
func (s *Service) UpdateRequestStatus(ctx context.Context, id string, req leave.UpdateRequestStatus) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	var adminNotes *string
	if req.AdminNotes != "" {
		adminNotes = &req.AdminNotes
	}

	updated, err := s.requests.UpdateStatus(ctx, id, leave.RequestStatus(req.Status), adminNotes)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return leave.NewRequestResponse(updated), nil
}
