package closure

import (
	"context"
	"testing"
	"time"

	"github.com/Shashika071/crenixline-sub000/internal/domain/closure"
	"github.com/Shashika071/crenixline-sub000/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClosureRepo struct {
	closures []closure.Closure
}

func (r *fakeClosureRepo) Create(_ context.Context, c closure.Closure) (closure.Closure, error) {
	c.ID = "cls-1"
	r.closures = append(r.closures, c)
	return c, nil
}

func (r *fakeClosureRepo) ListBetween(_ context.Context, from, to time.Time) ([]closure.Closure, error) {
	var out []closure.Closure
	for _, c := range r.closures {
		if !c.Date.Before(from) && !c.Date.After(to) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClosureRepo) ListActiveBetween(ctx context.Context, from, to time.Time) ([]closure.Closure, error) {
	all, _ := r.ListBetween(ctx, from, to)
	var out []closure.Closure
	for _, c := range all {
		if c.Status == closure.StatusScheduled || c.Status == closure.StatusActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestCreateDefaults(t *testing.T) {
	repo := &fakeClosureRepo{}
	svc := NewService(repo)

	resp, err := svc.Create(context.Background(), closure.CreateRequest{
		Date:   "2025-08-15",
		Reason: string(closure.ReasonPowerOutage),
	})
	require.NoError(t, err)

	assert.True(t, resp.AllEmployees)
	assert.Equal(t, string(closure.StatusActive), resp.Status)
	assert.Equal(t, "2025-08-15", resp.Date)
}

func TestCreateScopedClosure(t *testing.T) {
	repo := &fakeClosureRepo{}
	svc := NewService(repo)

	allEmployees := false
	resp, err := svc.Create(context.Background(), closure.CreateRequest{
		Date:         "2025-08-15",
		Reason:       string(closure.ReasonMaintenance),
		AllEmployees: &allEmployees,
		EmployeeIDs:  []string{"emp-1", "emp-2"},
		Status:       string(closure.StatusScheduled),
	})
	require.NoError(t, err)

	assert.False(t, resp.AllEmployees)
	assert.Equal(t, []string{"emp-1", "emp-2"}, resp.EmployeeIDs)
	assert.Equal(t, string(closure.StatusScheduled), resp.Status)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(&fakeClosureRepo{})

	allEmployees := false
	_, err := svc.Create(context.Background(), closure.CreateRequest{
		Date:         "15-08-2025",
		Reason:       "Festival",
		AllEmployees: &allEmployees,
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 3)
}

func TestListDefaultsToCurrentYear(t *testing.T) {
	repo := &fakeClosureRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	thisYear := time.Date(time.Now().UTC().Year(), time.June, 16, 0, 0, 0, 0, time.UTC)
	repo.closures = append(repo.closures,
		closure.Closure{ID: "cls-old", Date: thisYear.AddDate(-1, 0, 0), Reason: closure.ReasonHoliday, Status: closure.StatusCompleted},
		closure.Closure{ID: "cls-new", Date: thisYear, Reason: closure.ReasonHoliday, Status: closure.StatusActive},
	)

	responses, err := svc.List(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "cls-new", responses[0].ID)

	from := thisYear.AddDate(-2, 0, 0)
	to := thisYear
	all, err := svc.List(ctx, &from, &to)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
