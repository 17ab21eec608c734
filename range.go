// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package weekflow

import (
	"fmt"
	"iter"
	"time"
)

// WeekRange represents a Monday to Sunday week.
type WeekRange struct {
	Start CalendarDate `json:"start" yaml:"start"`
	End   CalendarDate `json:"end" yaml:"end"`
}

// NewWeekRange returns the WeekRange for the week that contains the
// specified date.
func NewWeekRange(cd CalendarDate) WeekRange {
	monday := Monday(cd)
	return WeekRange{Start: monday, End: monday.AddDays(6)}
}

// StartTime returns the start of the week as midnight UTC.
func (wr WeekRange) StartTime() time.Time {
	return wr.Start.Time()
}

// EndTime returns the last day of the week as midnight UTC.
func (wr WeekRange) EndTime() time.Time {
	return wr.End.Time()
}

// Contains returns true if cd falls within the week.
func (wr WeekRange) Contains(cd CalendarDate) bool {
	return cd >= wr.Start && cd <= wr.End
}

// Dates returns an iterator that yields each date in the week.
func (wr WeekRange) Dates() iter.Seq[CalendarDate] {
	return func(yield func(CalendarDate) bool) {
		for d := wr.Start; d <= wr.End; d = d.Tomorrow() {
			if !yield(d) {
				return
			}
		}
	}
}

func (wr WeekRange) String() string {
	return fmt.Sprintf("%s - %s", wr.Start, wr.End)
}

// WeekInfo represents a week number, the year that the week is labeled
// under and the range of dates that make up the week.
type WeekInfo struct {
	Number int       `json:"week" yaml:"week"`
	Year   int       `json:"year" yaml:"year"`
	Range  WeekRange `json:"range" yaml:"range"`
}

func (wi WeekInfo) String() string {
	return fmt.Sprintf("%04d-W%02d: %s", wi.Year, wi.Number, wi.Range)
}
