package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Shashika071/crenixline-sub000/internal/domain/closure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClosureRepo struct {
	closures []closure.Closure
	err      error
}

func (r *fakeClosureRepo) Create(_ context.Context, c closure.Closure) (closure.Closure, error) {
	r.closures = append(r.closures, c)
	return c, nil
}

func (r *fakeClosureRepo) ListBetween(_ context.Context, from, to time.Time) ([]closure.Closure, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []closure.Closure
	for _, c := range r.closures {
		if !c.Date.Before(from) && !c.Date.After(to) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClosureRepo) ListActiveBetween(ctx context.Context, from, to time.Time) ([]closure.Closure, error) {
	all, err := r.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	var out []closure.Closure
	for _, c := range all {
		if c.Status != closure.StatusCompleted {
			out = append(out, c)
		}
	}
	return out, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestForMonthExcludesSundays(t *testing.T) {
	svc := NewService(&fakeClosureRepo{})

	// June 2025 has 30 days and five Sundays.
	cal, err := svc.ForMonth(context.Background(), "emp-1", 2025, time.June)
	require.NoError(t, err)

	assert.Equal(t, 25, cal.WorkingDays())
	for _, d := range cal.OpenDates() {
		assert.NotEqual(t, time.Sunday, d.Weekday())
	}
	assert.False(t, cal.IsOpen(date(2025, time.June, 1))) // Sunday
	assert.True(t, cal.IsOpen(date(2025, time.June, 2)))  // Monday
}

func TestForMonthExcludesApplicableClosures(t *testing.T) {
	repo := &fakeClosureRepo{closures: []closure.Closure{
		{
			Date:         date(2025, time.June, 4),
			Reason:       closure.ReasonMaintenance,
			AllEmployees: true,
			Status:       closure.StatusActive,
		},
		{
			Date:         date(2025, time.June, 5),
			Reason:       closure.ReasonOther,
			AllEmployees: false,
			EmployeeIDs:  []string{"emp-2"},
			Status:       closure.StatusScheduled,
		},
	}}
	svc := NewService(repo)

	cal, err := svc.ForMonth(context.Background(), "emp-1", 2025, time.June)
	require.NoError(t, err)

	// Only the all-employee closure applies to emp-1.
	assert.Equal(t, 24, cal.WorkingDays())
	assert.False(t, cal.IsOpen(date(2025, time.June, 4)))
	assert.True(t, cal.IsOpen(date(2025, time.June, 5)))

	cal2, err := svc.ForMonth(context.Background(), "emp-2", 2025, time.June)
	require.NoError(t, err)
	assert.Equal(t, 23, cal2.WorkingDays())

	cl, ok := cal2.ClosureOn(date(2025, time.June, 5))
	require.True(t, ok)
	assert.Equal(t, closure.ReasonOther, cl.Reason)
}

func TestForMonthIgnoresCompletedClosures(t *testing.T) {
	repo := &fakeClosureRepo{closures: []closure.Closure{{
		Date:         date(2025, time.June, 4),
		AllEmployees: true,
		Status:       closure.StatusCompleted,
	}}}
	svc := NewService(repo)

	cal, err := svc.ForMonth(context.Background(), "emp-1", 2025, time.June)
	require.NoError(t, err)
	assert.Equal(t, 25, cal.WorkingDays())
}

func TestForMonthDegradesWhenClosureLookupFails(t *testing.T) {
	repo := &fakeClosureRepo{err: errors.New("boom")}
	svc := NewService(repo)

	cal, err := svc.ForMonth(context.Background(), "emp-1", 2025, time.June)
	require.NoError(t, err)

	// Sundays-only calendar, never a hard failure.
	assert.Equal(t, 25, cal.WorkingDays())
}

func TestMonthBounds(t *testing.T) {
	first, last := MonthBounds(2025, time.February)
	assert.Equal(t, date(2025, time.February, 1), first)
	assert.Equal(t, date(2025, time.February, 28), last)
}
