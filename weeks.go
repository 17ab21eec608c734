// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package weekflow provides support for Monday to Sunday week numbers and
// week ranges.
//
// Week 1 of a year is the week that contains the first Monday of that
// year and every week is labeled under the year that contains its Monday.
// Consequently dates in early January that precede the first Monday
// belong to the final week of the previous year. All dates are
// normalized using UTC so that the same input always yields the same
// week regardless of the local time zone.
package weekflow

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDate is returned, wrapped, for input that cannot be
	// interpreted as a calendar date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidWeek is returned, wrapped, for week numbers that are out
	// of range for a given year.
	ErrInvalidWeek = errors.New("invalid week")
	// ErrRecursionBound is returned if the year boundary adjustment fails
	// to converge.
	ErrRecursionBound = errors.New("year boundary recursion bound exceeded")
)

// maxBoundaryDepth bounds the year boundary adjustment in weekNumber.
// Dec 31 of any year always lies on or after that year's first Monday so a
// single step is sufficient.
const maxBoundaryDepth = 1

// DateLike represents the types of value accepted as input.
type DateLike interface {
	time.Time | string | CalendarDate
}

// Normalize converts a DateLike value to a CalendarDate. Times are
// converted to UTC before the date is extracted and strings are parsed
// using CalendarDate.Parse. All three forms are limited to years 1-9999.
func Normalize[T DateLike](v T) (CalendarDate, error) {
	switch d := any(v).(type) {
	case time.Time:
		if d.IsZero() {
			return 0, fmt.Errorf("zero time: %w", ErrInvalidDate)
		}
		return ValidCalendarDateFromTime(d)
	case string:
		return ParseCalendarDate(d)
	case CalendarDate:
		if !d.IsValid() {
			return 0, fmt.Errorf("%v: %w", d, ErrInvalidDate)
		}
		return d, nil
	}
	panic("unreachable")
}

// Monday returns the Monday on or before cd.
func Monday(cd CalendarDate) CalendarDate {
	return cd.AddDays(1 - cd.ISOWeekday())
}

// FirstMonday returns the first Monday of the specified year.
func FirstMonday(year int) CalendarDate {
	jan1 := NewCalendarDate(year, 1, 1)
	return jan1.AddDays((8 - int(jan1.Weekday())) % 7)
}

// WeekNumber returns the week number for the supplied date. The result is
// always 1 or greater.
func WeekNumber[T DateLike](v T) (int, error) {
	cd, err := Normalize(v)
	if err != nil {
		return 0, err
	}
	n, _, err := weekNumber(Monday(cd), 0)
	return n, err
}

// Range returns the Monday to Sunday week that contains the supplied date.
func Range[T DateLike](v T) (WeekRange, error) {
	cd, err := Normalize(v)
	if err != nil {
		return WeekRange{}, err
	}
	return NewWeekRange(Monday(cd)), nil
}

// Info returns the week number, label year and range for the supplied date.
// The week number and range are derived from the same Monday and hence
// always describe the same week.
func Info[T DateLike](v T) (WeekInfo, error) {
	cd, err := Normalize(v)
	if err != nil {
		return WeekInfo{}, err
	}
	return infoFor(cd)
}

func infoFor(cd CalendarDate) (WeekInfo, error) {
	monday := Monday(cd)
	n, year, err := weekNumber(monday, 0)
	if err != nil {
		return WeekInfo{}, err
	}
	return WeekInfo{Number: n, Year: year, Range: NewWeekRange(monday)}, nil
}

// weekNumber returns the week number and label year for the week starting
// on monday.
func weekNumber(monday CalendarDate, depth int) (int, int, error) {
	first := FirstMonday(monday.Year())
	if monday < first {
		if depth >= maxBoundaryDepth {
			return 0, 0, fmt.Errorf("%v: %w", monday, ErrRecursionBound)
		}
		prev := NewCalendarDate(monday.Year()-1, 12, 31)
		return weekNumber(Monday(prev), depth+1)
	}
	return monday.DaysSince(first)/7 + 1, monday.Year(), nil
}
