// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package weekflow_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/weekflow"
)

func mustParse(t *testing.T, val string) weekflow.CalendarDate {
	t.Helper()
	cd, err := weekflow.ParseCalendarDate(val)
	if err != nil {
		t.Fatalf("%v: %v", val, err)
	}
	return cd
}

func TestWeekNumber(t *testing.T) {
	for _, tc := range []struct {
		input string
		week  int
	}{
		{"2024-01-01", 1},
		{"2024-01-07", 1},
		{"2024-01-08", 2},
		{"2023-01-01", 52},
		{"2023-01-02", 1},
		{"2022-01-01", 52},
		{"2022-01-02", 52},
		{"2022-01-03", 1},
		{"2024-03-15", 11},
		{"2024-07-15", 29},
		{"2024-07-21", 29},
		{"2024-12-30", 53},
		{"2024-12-31", 53},
		{"2025-01-01", 53},
		{"2025-01-05", 53},
		{"2025-01-06", 1},
		{"2026-01-01", 52},
		{"2024/03/15", 11},
		{" 2024-03-15 ", 11},
	} {
		n, err := weekflow.WeekNumber(tc.input)
		if err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if got, want := n, tc.week; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}
}

func TestWeekNumberSameWeek(t *testing.T) {
	monday, err := weekflow.WeekNumber("2024-07-15")
	if err != nil {
		t.Fatal(err)
	}
	sunday, err := weekflow.WeekNumber("2024-07-21")
	if err != nil {
		t.Fatal(err)
	}
	if monday != sunday {
		t.Errorf("got %v, want %v", sunday, monday)
	}
}

func TestRange(t *testing.T) {
	for _, tc := range []struct {
		input      string
		start, end string
	}{
		{"2024-03-15", "2024-03-11", "2024-03-17"},
		{"2024-03-11", "2024-03-11", "2024-03-17"},
		{"2024-03-17", "2024-03-11", "2024-03-17"},
		{"2023-01-01", "2022-12-26", "2023-01-01"},
		{"2025-01-01", "2024-12-30", "2025-01-05"},
		{"2024-02-29", "2024-02-26", "2024-03-03"},
	} {
		wr, err := weekflow.Range(tc.input)
		if err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if got, want := wr.Start, mustParse(t, tc.start); got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
		if got, want := wr.End, mustParse(t, tc.end); got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
		if got, want := wr.StartTime(), time.Date(wr.Start.Year(), time.Month(wr.Start.Month()), wr.Start.Day(), 0, 0, 0, 0, time.UTC); !got.Equal(want) || got.Location() != time.UTC {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
		if got, want := wr.EndTime().Sub(wr.StartTime()), 6*24*time.Hour; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}
}

func TestInfo(t *testing.T) {
	for _, tc := range []struct {
		input string
		week  int
		year  int
		start string
	}{
		{"2024-01-01", 1, 2024, "2024-01-01"},
		{"2023-01-01", 52, 2022, "2022-12-26"},
		{"2025-01-01", 53, 2024, "2024-12-30"},
		{"2024-03-15", 11, 2024, "2024-03-11"},
	} {
		wi, err := weekflow.Info(tc.input)
		if err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if got, want := wi.Number, tc.week; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
		if got, want := wi.Year, tc.year; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
		if got, want := wi.Range.Start, mustParse(t, tc.start); got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}
	wi, _ := weekflow.Info("2023-01-01")
	if got, want := wi.String(), "2022-W52: 2022-12-26 - 2023-01-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTimeInput(t *testing.T) {
	east := time.FixedZone("east", 5*60*60)
	west := time.FixedZone("west", -8*60*60)
	for _, tc := range []struct {
		when  time.Time
		week  int
		start string
	}{
		// 2024-03-17T20:00Z, Sunday.
		{time.Date(2024, 3, 18, 1, 0, 0, 0, east), 11, "2024-03-11"},
		// 2024-03-18T04:00Z, Monday.
		{time.Date(2024, 3, 17, 20, 0, 0, 0, west), 12, "2024-03-18"},
		{time.Date(2024, 3, 17, 23, 59, 59, 0, time.UTC), 11, "2024-03-11"},
		{time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), 12, "2024-03-18"},
	} {
		wi, err := weekflow.Info(tc.when)
		if err != nil {
			t.Errorf("%v: %v", tc.when, err)
			continue
		}
		if got, want := wi.Number, tc.week; got != want {
			t.Errorf("%v: got %v, want %v", tc.when, got, want)
		}
		if got, want := wi.Range.Start, mustParse(t, tc.start); got != want {
			t.Errorf("%v: got %v, want %v", tc.when, got, want)
		}
	}

	for _, tc := range []struct {
		input string
		week  int
	}{
		{"2024-03-17T23:30:00-05:00", 12},
		{"2024-03-18T01:00:00+05:00", 11},
		{"2024-03-17T12:00:00Z", 11},
		{"2024-03-17 12:00:00", 11},
		{"2024-03-18T00:00:00.123456789Z", 12},
	} {
		n, err := weekflow.WeekNumber(tc.input)
		if err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if got, want := n, tc.week; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}
}

func TestInvalidInput(t *testing.T) {
	for _, input := range []string{
		"",
		"garbage",
		"2023-02-29",
		"2024-13-01",
		"2024-00-10",
		"2024-01-32",
		"24-01-01",
		"2024-01",
		"2024-01-01-01",
		"2024-03-15T25:00:00Z",
		"Jan-01-2024",
		"2024-3-5",
		"2024-+3-05",
		"10000-01-03",
	} {
		if _, err := weekflow.WeekNumber(input); !errors.Is(err, weekflow.ErrInvalidDate) {
			t.Errorf("%q: expected ErrInvalidDate, got %v", input, err)
		}
		if _, err := weekflow.Range(input); !errors.Is(err, weekflow.ErrInvalidDate) {
			t.Errorf("%q: expected ErrInvalidDate, got %v", input, err)
		}
		if _, err := weekflow.Info(input); !errors.Is(err, weekflow.ErrInvalidDate) {
			t.Errorf("%q: expected ErrInvalidDate, got %v", input, err)
		}
	}
	for _, tm := range []time.Time{
		{},
		time.Date(0, 6, 14, 12, 0, 0, 0, time.UTC),
		time.Date(-5, 6, 14, 12, 0, 0, 0, time.UTC),
		time.Date(70000, 6, 14, 12, 0, 0, 0, time.UTC),
		time.Date(10000, 1, 3, 12, 0, 0, 0, time.UTC),
		time.Date(1, 1, 1, 0, 30, 0, 0, time.FixedZone("", 3600)),
	} {
		if _, err := weekflow.WeekNumber(tm); !errors.Is(err, weekflow.ErrInvalidDate) {
			t.Errorf("%v: expected ErrInvalidDate, got %v", tm, err)
		}
		if _, err := weekflow.Range(tm); !errors.Is(err, weekflow.ErrInvalidDate) {
			t.Errorf("%v: expected ErrInvalidDate, got %v", tm, err)
		}
		if _, err := weekflow.Info(tm); !errors.Is(err, weekflow.ErrInvalidDate) {
			t.Errorf("%v: expected ErrInvalidDate, got %v", tm, err)
		}
	}
	// The limits of the supported range.
	for _, tm := range []time.Time{
		time.Date(1, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(9999, 12, 31, 12, 0, 0, 0, time.UTC),
	} {
		if _, err := weekflow.Info(tm); err != nil {
			t.Errorf("%v: %v", tm, err)
		}
	}
	for _, cd := range []weekflow.CalendarDate{
		0,
		weekflow.NewCalendarDate(2023, 2, 29),
		weekflow.NewCalendarDate(2023, 13, 1),
	} {
		if _, err := weekflow.Info(cd); !errors.Is(err, weekflow.ErrInvalidDate) {
			t.Errorf("%v: expected ErrInvalidDate, got %v", cd, err)
		}
	}
}

// yearDayWeek computes the week number independently using the day of
// the year of the week's Monday, since the first Monday always falls on
// one of the first seven days of the year.
func yearDayWeek(monday weekflow.CalendarDate) int {
	return (monday.Time().YearDay()-1)/7 + 1
}

func TestWeekProperties(t *testing.T) {
	from, to := weekflow.NewCalendarDate(2015, 1, 1), weekflow.NewCalendarDate(2032, 12, 31)
	for d := from; d <= to; d = d.Tomorrow() {
		wr, err := weekflow.Range(d)
		if err != nil {
			t.Fatalf("%v: %v", d, err)
		}
		if got, want := wr.Start.Weekday(), time.Monday; got != want {
			t.Errorf("%v: got %v, want %v", d, got, want)
		}
		if got, want := wr.End.Weekday(), time.Sunday; got != want {
			t.Errorf("%v: got %v, want %v", d, got, want)
		}
		if got, want := wr.End, wr.Start.AddDays(6); got != want {
			t.Errorf("%v: got %v, want %v", d, got, want)
		}
		if !wr.Contains(d) {
			t.Errorf("%v: not contained in %v", d, wr)
		}

		n, err := weekflow.WeekNumber(d)
		if err != nil {
			t.Fatalf("%v: %v", d, err)
		}
		wi, err := weekflow.Info(d)
		if err != nil {
			t.Fatalf("%v: %v", d, err)
		}
		if wi.Number != n || wi.Range != wr {
			t.Errorf("%v: info %v inconsistent with %v, %v", d, wi, n, wr)
		}
		if got, want := n, yearDayWeek(wr.Start); got != want {
			t.Errorf("%v: got %v, want %v", d, got, want)
		}
		if got, want := wi.Year, wr.Start.Year(); got != want {
			t.Errorf("%v: got %v, want %v", d, got, want)
		}
		if n < 1 || n > weekflow.WeeksInYear(wi.Year) {
			t.Errorf("%v: week %v out of range", d, n)
		}
		rw, err := weekflow.RangeForWeek(wi.Year, wi.Number)
		if err != nil {
			t.Fatalf("%v: %v", d, err)
		}
		if got, want := rw, wr; got != want {
			t.Errorf("%v: got %v, want %v", d, got, want)
		}

		again, _ := weekflow.Info(d)
		if again != wi {
			t.Errorf("%v: got %v, want %v", d, again, wi)
		}
	}
}

func TestMondayAndFirstMonday(t *testing.T) {
	for _, tc := range []struct {
		year  int
		first string
	}{
		{2018, "2018-01-01"},
		{2021, "2021-01-04"},
		{2022, "2022-01-03"},
		{2023, "2023-01-02"},
		{2024, "2024-01-01"},
		{2025, "2025-01-06"},
		{2026, "2026-01-05"},
		{2000, "2000-01-03"},
	} {
		if got, want := weekflow.FirstMonday(tc.year), mustParse(t, tc.first); got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
	if got, want := weekflow.Monday(mustParse(t, "2024-03-17")), mustParse(t, "2024-03-11"); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalize(t *testing.T) {
	want := weekflow.NewCalendarDate(2024, 3, 15)
	for i, tc := range []func() (weekflow.CalendarDate, error){
		func() (weekflow.CalendarDate, error) { return weekflow.Normalize("2024-03-15") },
		func() (weekflow.CalendarDate, error) { return weekflow.Normalize(want) },
		func() (weekflow.CalendarDate, error) {
			return weekflow.Normalize(time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC))
		},
	} {
		got, err := tc()
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}
