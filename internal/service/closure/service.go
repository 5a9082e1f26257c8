package closure

import (
	"context"
	"time"

	"github.com/Shashika071/crenixline-sub000/internal/domain/closure"
	"github.com/Shashika071/crenixline-sub000/internal/pkg/validator"
)

type Service struct {
	closures closure.Repository
}

func NewService(closures closure.Repository) *Service {
	return &Service{closures: closures}
}

func (s *Service) Create(ctx context.Context, req closure.CreateRequest) (closure.Response, error) {
	if err := req.Validate(); err != nil {
		return closure.Response{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	c := closure.Closure{
		Date:         date,
		Reason:       closure.Reason(req.Reason),
		AllEmployees: true,
		EmployeeIDs:  []string{},
		Status:       closure.StatusActive,
	}
	if req.Description != "" {
		c.Description = &req.Description
	}
	if req.AllEmployees != nil {
		c.AllEmployees = *req.AllEmployees
	}
	if !c.AllEmployees {
		c.EmployeeIDs = req.EmployeeIDs
	}
	if req.Status != "" {
		c.Status = closure.ClosureStatus(req.Status)
	}

	created, err := s.closures.Create(ctx, c)
	if err != nil {
		return closure.Response{}, err
	}

	return closure.NewResponse(created), nil
}

// List returns closures in the window, defaulting to the current calendar
// year when no bounds are given.
func (s *Service) List(ctx context.Context, from, to *time.Time) ([]closure.Response, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}

	closures, err := s.closures.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]closure.Response, 0, len(closures))
	for _, c := range closures {
		responses = append(responses, closure.NewResponse(c))
	}
	return responses, nil
}
