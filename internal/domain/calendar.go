package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// WorkCalendar weekly working schedule of a photographer.
// Days use 0=Monday..6=Sunday.
type WorkCalendar struct {
	Days  []int
	Start types.TimeString
	End   types.TimeString
}

// DefaultWorkCalendar Пн-Пт 09:00-18:00
func DefaultWorkCalendar() WorkCalendar {
	return WorkCalendar{
		Days:  slices.Clone(DefaultWorkDays),
		Start: types.MustTimeString(DefaultWorkStart),
		End:   types.MustTimeString(DefaultWorkEnd),
	}
}

// Validate checks start < end and weekday range
func (c WorkCalendar) Validate() error {
	if err := c.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidCalendar, err)
	}
	if err := c.End.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidCalendar, err)
	}
	if !c.Start.IsBefore(c.End) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidCalendar, c.Start, c.End)
	}
	for _, d := range c.Days {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: weekday %d out of range", ErrInvalidCalendar, d)
		}
	}
	return nil
}

// Normalized returns a copy with sorted, de-duplicated days
func (c WorkCalendar) Normalized() WorkCalendar {
	days := slices.Clone(c.Days)
	slices.Sort(days)
	c.Days = slices.Compact(days)
	return c
}

// IsWorkingDay reports whether the weekday of date is an allowed day
func (c WorkCalendar) IsWorkingDay(date time.Time) bool {
	return slices.Contains(c.Days, WeekdayIndex(date))
}

// WeekdayIndex converts time.Weekday (Sunday=0) to 0=Monday..6=Sunday
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// Photographer profile with its schedule and offered services
type Photographer struct {
	ID         int64
	UserID     int64
	Bio        string
	Phone      string
	ServiceIDs []int64
	Calendar   WorkCalendar
}

// Offers reports whether the photographer provides the service.
// An empty list means the photographer takes any service.
func (p *Photographer) Offers(serviceID int64) bool {
	return len(p.ServiceIDs) == 0 || slices.Contains(p.ServiceIDs, serviceID)
}
