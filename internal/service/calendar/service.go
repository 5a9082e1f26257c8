package calendar

import (
	"context"
	"log/slog"
	"time"

	"github.com/Shashika071/crenixline-sub000/internal/domain/closure"
)

// Calendar is the resolved working-day calendar for one employee and month.
// Every non-Sunday date that is not covered by an applicable factory closure
// is an open working day.
type Calendar struct {
	Year  int
	Month time.Month

	openDates []time.Time
	closures  map[string]closure.Closure // keyed by YYYY-MM-DD
}

// WorkingDays is the number of open dates in the month.
func (c Calendar) WorkingDays() int {
	return len(c.openDates)
}

// OpenDates returns the open dates in ascending order.
func (c Calendar) OpenDates() []time.Time {
	return c.openDates
}

// IsOpen reports whether the date is an open working day.
func (c Calendar) IsOpen(date time.Time) bool {
	if date.Weekday() == time.Sunday {
		return false
	}
	_, closed := c.closures[dateKey(date)]
	return !closed
}

// ClosureOn returns the closure covering the date, if any.
func (c Calendar) ClosureOn(date time.Time) (closure.Closure, bool) {
	cl, ok := c.closures[dateKey(date)]
	return cl, ok
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthBounds returns the first and last day of the month at midnight UTC.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

type Service struct {
	closures closure.Repository
}

func NewService(closures closure.Repository) *Service {
	return &Service{closures: closures}
}

// ForMonth builds the calendar for one employee and month. A failing closure
// lookup degrades to the Sunday-only calendar rather than blocking payroll.
func (s *Service) ForMonth(ctx context.Context, employeeID string, year int, month time.Month) (Calendar, error) {
	first, last := MonthBounds(year, month)

	closureByDate := make(map[string]closure.Closure)
	closures, err := s.closures.ListActiveBetween(ctx, first, last)
	if err != nil {
		slog.Warn("closure lookup failed, calendar excludes Sundays only",
			"year", year, "month", int(month), "error", err)
	} else {
		for _, cl := range closures {
			if cl.AppliesTo(employeeID) {
				closureByDate[dateKey(cl.Date)] = cl
			}
		}
	}

	cal := Calendar{
		Year:     year,
		Month:    month,
		closures: closureByDate,
	}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			continue
		}
		if _, closed := closureByDate[dateKey(d)]; closed {
			continue
		}
		cal.openDates = append(cal.openDates, d)
	}

	return cal, nil
}
