// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package weekflow

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
	months          = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// Month as an int.
type Month time.Month

func (m Month) String() string {
	return time.Month(m).String()
}

// ParseMonth parses a month in either numeric format (1-12) or as a month
// name of the form "Jan" to "Dec" or any other longer prefixes of "January"
// to "December" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	if n, err := strconv.Atoi(val); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("invalid month: %d", n)
		}
		return Month(n), nil
	}
	lc := strings.ToLower(val)
	if len(lc) < 3 {
		return 0, fmt.Errorf("invalid month: %s", val)
	}
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// CalendarDate represents a date with a year, month and day packed
// into a uint32 so that CalendarDate values are ordered by the < operator.
// It carries no time of day or time zone.
type CalendarDate uint32

// NewCalendarDate returns a CalendarDate for the given year, month and day.
// No validation is performed, use ValidCalendarDate or IsValid for that.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate(uint32(year&0xffff)<<16 | uint32(month&0xff)<<8 | uint32(day&0xff))
}

// ValidCalendarDate is like NewCalendarDate but returns an error
// wrapping ErrInvalidDate if the year, month and day do not name a real
// Gregorian date.
func ValidCalendarDate(year int, month Month, day int) (CalendarDate, error) {
	if year < 1 || year > 9999 {
		return 0, fmt.Errorf("year %d out of range: %w", year, ErrInvalidDate)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("month %d out of range: %w", month, ErrInvalidDate)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return 0, fmt.Errorf("day %d out of range for %v %d: %w", day, month, year, ErrInvalidDate)
	}
	return NewCalendarDate(year, month, day), nil
}

// CalendarDateFromTime returns the CalendarDate for t as observed in UTC.
// Years outside of 1-9999 are not detected, use ValidCalendarDateFromTime
// for that.
func CalendarDateFromTime(t time.Time) CalendarDate {
	u := t.UTC()
	return NewCalendarDate(u.Year(), Month(u.Month()), u.Day())
}

// ValidCalendarDateFromTime is like CalendarDateFromTime but returns an
// error wrapping ErrInvalidDate if the UTC year is outside of 1-9999.
func ValidCalendarDateFromTime(t time.Time) (CalendarDate, error) {
	u := t.UTC()
	return ValidCalendarDate(u.Year(), Month(u.Month()), u.Day())
}

// Year returns the year.
func (cd CalendarDate) Year() int {
	return int(cd >> 16 & 0xffff)
}

// Month returns the month.
func (cd CalendarDate) Month() Month {
	return Month(cd >> 8 & 0xff)
}

// Day returns the day of the month.
func (cd CalendarDate) Day() int {
	return int(cd & 0xff)
}

// IsValid returns true if the date names a real Gregorian date.
func (cd CalendarDate) IsValid() bool {
	_, err := ValidCalendarDate(cd.Year(), cd.Month(), cd.Day())
	return err == nil
}

// Time returns the date as a time.Time at midnight UTC.
func (cd CalendarDate) Time() time.Time {
	return time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(), 0, 0, 0, 0, time.UTC)
}

// midday is used for all arithmetic so that no daylight saving or
// leap second adjustment can move the date.
func (cd CalendarDate) midday() time.Time {
	return time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(), 12, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week.
func (cd CalendarDate) Weekday() time.Weekday {
	return cd.midday().Weekday()
}

// ISOWeekday returns the day of the week numbered from Monday = 1
// through to Sunday = 7.
func (cd CalendarDate) ISOWeekday() int {
	if wd := cd.Weekday(); wd != time.Sunday {
		return int(wd)
	}
	return 7
}

// AddDays returns the date n days after (or before for negative n) cd.
func (cd CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDateFromTime(cd.midday().AddDate(0, 0, n))
}

// Tomorrow returns the date of the next day.
func (cd CalendarDate) Tomorrow() CalendarDate {
	if cd.Day() < DaysInMonth(cd.Year(), cd.Month()) {
		return cd + 1
	}
	if cd.Month() == 12 {
		return NewCalendarDate(cd.Year()+1, 1, 1)
	}
	return NewCalendarDate(cd.Year(), cd.Month()+1, 1)
}

// Yesterday returns the date of the previous day.
func (cd CalendarDate) Yesterday() CalendarDate {
	if cd.Day() > 1 {
		return cd - 1
	}
	if cd.Month() == 1 {
		return NewCalendarDate(cd.Year()-1, 12, 31)
	}
	return NewCalendarDate(cd.Year(), cd.Month()-1, DaysInMonth(cd.Year(), cd.Month()-1))
}

// DaysSince returns the number of whole days from other to cd, which is
// negative if other is after cd.
func (cd CalendarDate) DaysSince(other CalendarDate) int {
	return int(cd.midday().Sub(other.midday()).Hours()) / 24
}

// String returns the date in YYYY-MM-DD format.
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year(), cd.Month(), cd.Day())
}

// MarshalText implements encoding.TextMarshaler.
func (cd CalendarDate) MarshalText() ([]byte, error) {
	return []byte(cd.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (cd *CalendarDate) UnmarshalText(text []byte) error {
	return cd.Parse(string(text))
}

var dateTimeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Parse parses a date in YYYY-MM-DD or YYYY/MM/DD format, or any of
// RFC3339, "2006-01-02 15:04:05" or "2006-01-02T15:04:05". Date and time
// values are converted to UTC before the date is extracted. Leading and
// trailing white space is ignored.
func (cd *CalendarDate) Parse(val string) error {
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected YYYY-MM-DD: %w", ErrInvalidDate)
	}
	if len(val) <= len("2006-01-02") {
		d, err := parseNumericDate(val)
		if err != nil {
			return err
		}
		*cd = d
		return nil
	}
	for _, format := range dateTimeFormats {
		if t, err := time.Parse(format, val); err == nil {
			d, err := ValidCalendarDateFromTime(t)
			if err != nil {
				return err
			}
			*cd = d
			return nil
		}
	}
	return fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC3339: %w", val, ErrInvalidDate)
}

// ParseCalendarDate is a convenience wrapper around CalendarDate.Parse.
func ParseCalendarDate(val string) (CalendarDate, error) {
	var cd CalendarDate
	err := cd.Parse(val)
	return cd, err
}

func parseNumericDate(val string) (CalendarDate, error) {
	sep := "-"
	if strings.Contains(val, "/") {
		sep = "/"
	}
	parts := strings.Split(val, sep)
	if len(parts) != 3 || !digits(parts[0], 4) || !digits(parts[1], 2) || !digits(parts[2], 2) {
		return 0, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", val, ErrInvalidDate)
	}
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])
	return ValidCalendarDate(year, Month(month), day)
}

// digits returns true if s consists of exactly n ascii digits.
func digits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
