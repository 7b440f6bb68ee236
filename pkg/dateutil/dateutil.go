// Package dateutil provides a validated calendar date with day arithmetic.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Default date used when a constructor receives an invalid triple
const (
	DefaultDay   = 1
	DefaultMonth = 1
	DefaultYear  = 2000
)

// Supported year range (four-digit years only)
const (
	MinYear = 1000
	MaxYear = 9999
)

// ErrInvalidDate is returned when text cannot be parsed as a DD/MM/YYYY calendar date
var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar day in the proleptic Gregorian calendar.
// A Date is always valid: invalid input falls back to 01/01/2000.
// The zero value is not a date; use New or Default.
type Date struct {
	day   int
	month int
	year  int
}

// New creates a Date, or the default date if the triple is not a real calendar day
func New(day, month, year int) Date {
	if !IsValid(day, month, year) {
		return Default()
	}
	return Date{day: day, month: month, year: year}
}

// Default returns 01/01/2000
func Default() Date {
	return Date{day: DefaultDay, month: DefaultMonth, year: DefaultYear}
}

// IsLeapYear reports whether year has a 29th of February
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the length of month in year, or 0 for an invalid month
func DaysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// IsValid checks that day/month/year form a real date with a four-digit year
func IsValid(day, month, year int) bool {
	if year < MinYear || year > MaxYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= DaysInMonth(month, year)
}

// dayNumber counts days from a fixed epoch. March is treated as the first
// month so that the leap day falls at the end of the counting year.
func dayNumber(day, month, year int) int {
	if month < 3 {
		year--
		month += 12
	}
	return 365*year + year/4 - year/100 + year/400 + (month+1)*306/10 + (day - 62)
}

func (d Date) Day() int { return d.day }
func (d Date) Month() int { return d.month }
func (d Date) Year() int { return d.year }

// SetDay changes the day if the result is still a valid date
func (d *Date) SetDay(day int) {
	if IsValid(day, d.month, d.year) {
		d.day = day
	}
}

// SetMonth changes the month if the result is still a valid date
func (d *Date) SetMonth(month int) {
	if IsValid(d.day, month, d.year) {
		d.month = month
	}
}

// SetYear changes the year if the result is still a valid date
func (d *Date) SetYear(year int) {
	if IsValid(d.day, d.month, year) {
		d.year = year
	}
}

// Equal returns true if both dates are the same calendar day
func (d Date) Equal(other Date) bool {
	return d.day == other.day && d.month == other.month && d.year == other.year
}

// Before returns true if d is strictly earlier than other
func (d Date) Before(other Date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// After returns true if d is strictly later than other
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Difference returns the absolute number of days between two dates
func (d Date) Difference(other Date) int {
	diff := dayNumber(d.day, d.month, d.year) - dayNumber(other.day, other.month, other.year)
	if diff < 0 {
		return -diff
	}
	return diff
}

// Tomorrow returns the following calendar day.
// The day after 31/12/9999 is outside the supported range and yields the default date.
func (d Date) Tomorrow() Date {
	if IsValid(d.day+1, d.month, d.year) {
		return New(d.day+1, d.month, d.year)
	}
	if IsValid(1, d.month+1, d.year) {
		return New(1, d.month+1, d.year)
	}
	return New(1, 1, d.year+1)
}

// String formats the date as DD/MM/YYYY
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%d", d.day, d.month, d.year)
}

// Time converts the date to midnight UTC
func (d Date) Time() time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC)
}

// FromTime takes the calendar day of t in its own location
func FromTime(t time.Time) Date {
	return New(t.Day(), int(t.Month()), t.Year())
}

// Today returns today's date
func Today() Date {
	return FromTime(time.Now())
}

// ParseDate parses DD/MM/YYYY (also accepts '.' and '-' separators).
// Unlike New, it rejects invalid dates instead of substituting the default.
func ParseDate(dateStr string) (Date, error) {
	s := strings.TrimSpace(dateStr)
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '.' || r == '-'
	})
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q: expected DD/MM/YYYY", ErrInvalidDate, dateStr)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, dateStr, err)
		}
		nums[i] = n
	}

	day, month, year := nums[0], nums[1], nums[2]
	if !IsValid(day, month, year) {
		return Date{}, fmt.Errorf("%w: %q is not a calendar day", ErrInvalidDate, dateStr)
	}

	return Date{day: day, month: month, year: year}, nil
}
