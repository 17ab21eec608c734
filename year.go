// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package weekflow

import (
	"fmt"
	"iter"
	"time"
)

// WeeksInYear returns the number of weeks labeled under the specified
// year, that is, the number of Mondays in that year: either 52 or 53.
func WeeksInYear(year int) int {
	// 52 whole weeks plus one or two days, one of which may be a Monday.
	jan1 := NewCalendarDate(year, 1, 1)
	for i := range DaysInYear(year) - 52*7 {
		if jan1.AddDays(i).Weekday() == time.Monday {
			return 53
		}
	}
	return 52
}

// WeeksInMonth returns an iterator over the weeks labeled under the
// specified year whose Monday falls in the specified month.
func WeeksInMonth(year int, month Month) iter.Seq2[int, WeekRange] {
	return func(yield func(int, WeekRange) bool) {
		for week, wr := range Weeks(year) {
			if m := wr.Start.Month(); m < month {
				continue
			} else if m > month {
				return
			}
			if !yield(week, wr) {
				return
			}
		}
	}
}

// RangeForWeek returns the WeekRange for the specified week of the
// specified year. It is the inverse of WeekNumber.
func RangeForWeek(year, week int) (WeekRange, error) {
	if year < 1 || year > 9999 {
		return WeekRange{}, fmt.Errorf("year %d out of range: %w", year, ErrInvalidWeek)
	}
	if n := WeeksInYear(year); week < 1 || week > n {
		return WeekRange{}, fmt.Errorf("week %d out of range 1-%d for %d: %w", week, n, year, ErrInvalidWeek)
	}
	return NewWeekRange(FirstMonday(year).AddDays((week - 1) * 7)), nil
}

// Weeks returns an iterator over all of the weeks labeled under the
// specified year.
func Weeks(year int) iter.Seq2[int, WeekRange] {
	return func(yield func(int, WeekRange) bool) {
		monday := FirstMonday(year)
		for week := 1; monday.Year() == year; week++ {
			if !yield(week, NewWeekRange(monday)) {
				return
			}
			monday = monday.AddDays(7)
		}
	}
}
