package period

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidRange = errors.New("pay period end date cannot be before start date")

const keyDateFormat = "060102"

// PayPeriod is an immutable semi-monthly date range (1-15 or 16-end of month).
// Dates are compared at day precision; time-of-day is ignored.
type PayPeriod struct {
	StartDate time.Time
	EndDate   time.Time
}

func New(start, end time.Time) (PayPeriod, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return PayPeriod{}, ErrInvalidRange
	}
	return PayPeriod{StartDate: start, EndDate: end}, nil
}

// FromDateSemiMonthly resolves the semi-monthly period containing date:
// days 1-15 map to [1, 15], days 16+ map to [16, last day of month].
func FromDateSemiMonthly(date time.Time) PayPeriod {
	y, m, d := date.Date()

	if d <= 15 {
		return PayPeriod{
			StartDate: time.Date(y, m, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(y, m, 15, 0, 0, 0, 0, time.UTC),
		}
	}
	return PayPeriod{
		StartDate: time.Date(y, m, 16, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(y, m, lastDayOfMonth(y, m), 0, 0, 0, 0, time.UTC),
	}
}

// FirstHalf returns the 1-15 period of the given month.
func FirstHalf(year int, month time.Month) PayPeriod {
	return PayPeriod{
		StartDate: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(year, month, 15, 0, 0, 0, 0, time.UTC),
	}
}

// SecondHalf returns the 16-to-end-of-month period of the given month.
func SecondHalf(year int, month time.Month) PayPeriod {
	return PayPeriod{
		StartDate: time.Date(year, month, 16, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(year, month, lastDayOfMonth(year, month), 0, 0, 0, 0, time.UTC),
	}
}

// Key is the compact lookup identity, e.g. "240601-240615".
func (p PayPeriod) Key() string {
	return p.StartDate.Format(keyDateFormat) + "-" + p.EndDate.Format(keyDateFormat)
}

// Includes reports whether date falls within the period, inclusive on both ends.
func (p PayPeriod) Includes(date time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(p.StartDate)) && !d.After(truncateToDay(p.EndDate))
}

func (p PayPeriod) Equal(other PayPeriod) bool {
	return sameDay(p.StartDate, other.StartDate) && sameDay(p.EndDate, other.EndDate)
}

func (p PayPeriod) String() string {
	return fmt.Sprintf("PayPeriod{%s to %s}",
		p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"))
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
